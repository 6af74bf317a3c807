package models

var SocialPlatforms = []string{"facebook", "instagram", "twitter", "linkedin", "whatsapp"}

type SiteSettings struct {
	Logo        string            `json:"logo"        yaml:"logo"`
	SiteName    string            `json:"siteName"    yaml:"siteName"`
	Phone       string            `json:"phone"       yaml:"phone"`
	Email       string            `json:"email"       yaml:"email"`
	Address     string            `json:"address"     yaml:"address"`
	QuickLinks  []string          `json:"quickLinks"  yaml:"quickLinks"`
	Categories  []string          `json:"categories"  yaml:"categories"`
	SocialMedia map[string]string `json:"socialMedia" yaml:"socialMedia"`
}

func (s SiteSettings) Clone() SiteSettings {
	cp := s
	cp.QuickLinks = append([]string(nil), s.QuickLinks...)
	cp.Categories = append([]string(nil), s.Categories...)
	cp.SocialMedia = make(map[string]string, len(s.SocialMedia))
	for k, v := range s.SocialMedia {
		cp.SocialMedia[k] = v
	}
	return cp
}
