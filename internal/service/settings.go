package service

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/mdshopp/storefront/internal/models"
)

func DefaultSettings() models.SiteSettings {
	social := make(map[string]string, len(models.SocialPlatforms))
	for _, p := range models.SocialPlatforms {
		social[p] = ""
	}
	return models.SiteSettings{
		Logo:        "",
		SiteName:    "MD shopp",
		Phone:       "+221 77 876 20 82",
		Email:       "contact@mdshopp.cm",
		Address:     "Douala, Cameroun",
		QuickLinks:  []string{"Accueil", "Produits", "À propos", "Contact", "FAQ"},
		Categories:  []string{"Électronique", "Mode & Beauté", "Maison & Jardin", "Sport & Loisirs", "Livres"},
		SocialMedia: social,
	}
}

// LoadSettingsFile overlays a YAML file on the defaults. Keys missing from
// the file keep their default value.
func LoadSettingsFile(path string) (models.SiteSettings, error) {
	s := DefaultSettings()
	b, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := normalizeSocial(&s); err != nil {
		return s, err
	}
	return s, nil
}

func normalizeSocial(s *models.SiteSettings) error {
	if s.SocialMedia == nil {
		s.SocialMedia = map[string]string{}
	}
	for k := range s.SocialMedia {
		if !slices.Contains(models.SocialPlatforms, k) {
			return fmt.Errorf("%w: unknown social platform %q", ErrValidation, k)
		}
	}
	for _, p := range models.SocialPlatforms {
		if _, ok := s.SocialMedia[p]; !ok {
			s.SocialMedia[p] = ""
		}
	}
	if s.QuickLinks == nil {
		s.QuickLinks = []string{}
	}
	if s.Categories == nil {
		s.Categories = []string{}
	}
	return nil
}

// SettingsService holds the site metadata for the process lifetime.
type SettingsService struct {
	mu       sync.RWMutex
	settings models.SiteSettings
}

func NewSettingsService(initial models.SiteSettings) *SettingsService {
	s := initial.Clone()
	_ = normalizeSocial(&s)
	return &SettingsService{settings: s}
}

func (s *SettingsService) Get(_ context.Context) models.SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone()
}

func (s *SettingsService) Replace(_ context.Context, next models.SiteSettings) (models.SiteSettings, error) {
	next = next.Clone()
	if err := normalizeSocial(&next); err != nil {
		return models.SiteSettings{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = next
	return s.settings.Clone(), nil
}

func (s *SettingsService) update(fn func(*models.SiteSettings) error) (models.SiteSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.settings.Clone()
	if err := fn(&work); err != nil {
		return models.SiteSettings{}, err
	}
	s.settings = work
	return work.Clone(), nil
}

func checkIndex(list []string, i int, what string) error {
	if i < 0 || i >= len(list) {
		return fmt.Errorf("%w: %s index %d out of range", ErrValidation, what, i)
	}
	return nil
}

func (s *SettingsService) AddQuickLink(_ context.Context, label string) (models.SiteSettings, error) {
	return s.update(func(st *models.SiteSettings) error {
		st.QuickLinks = append(st.QuickLinks, label)
		return nil
	})
}

func (s *SettingsService) UpdateQuickLink(_ context.Context, i int, label string) (models.SiteSettings, error) {
	return s.update(func(st *models.SiteSettings) error {
		if err := checkIndex(st.QuickLinks, i, "quick link"); err != nil {
			return err
		}
		st.QuickLinks[i] = label
		return nil
	})
}

func (s *SettingsService) RemoveQuickLink(_ context.Context, i int) (models.SiteSettings, error) {
	return s.update(func(st *models.SiteSettings) error {
		if err := checkIndex(st.QuickLinks, i, "quick link"); err != nil {
			return err
		}
		st.QuickLinks = slices.Delete(st.QuickLinks, i, i+1)
		return nil
	})
}

func (s *SettingsService) AddCategory(_ context.Context, label string) (models.SiteSettings, error) {
	return s.update(func(st *models.SiteSettings) error {
		st.Categories = append(st.Categories, label)
		return nil
	})
}

func (s *SettingsService) UpdateCategory(_ context.Context, i int, label string) (models.SiteSettings, error) {
	return s.update(func(st *models.SiteSettings) error {
		if err := checkIndex(st.Categories, i, "category"); err != nil {
			return err
		}
		st.Categories[i] = label
		return nil
	})
}

func (s *SettingsService) RemoveCategory(_ context.Context, i int) (models.SiteSettings, error) {
	return s.update(func(st *models.SiteSettings) error {
		if err := checkIndex(st.Categories, i, "category"); err != nil {
			return err
		}
		if len(st.Categories) == 1 {
			return fmt.Errorf("%w: at least one category is required", ErrValidation)
		}
		st.Categories = slices.Delete(st.Categories, i, i+1)
		return nil
	})
}

func (s *SettingsService) SetSocialLink(_ context.Context, platform, url string) (models.SiteSettings, error) {
	return s.update(func(st *models.SiteSettings) error {
		if !slices.Contains(models.SocialPlatforms, platform) {
			return fmt.Errorf("%w: unknown social platform %q", ErrValidation, platform)
		}
		st.SocialMedia[platform] = url
		return nil
	})
}
