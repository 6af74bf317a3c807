package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdshopp/storefront/internal/models"
)

func TestDefaultSettings(t *testing.T) {
	t.Parallel()
	s := DefaultSettings()
	assert.Equal(t, "MD shopp", s.SiteName)
	assert.Equal(t, "+221 77 876 20 82", s.Phone)
	assert.Equal(t, "contact@mdshopp.cm", s.Email)
	assert.Len(t, s.QuickLinks, 5)
	assert.Len(t, s.Categories, 5)
	for _, p := range models.SocialPlatforms {
		v, ok := s.SocialMedia[p]
		assert.True(t, ok, p)
		assert.Empty(t, v)
	}
}

func TestSettingsService_ListEdits(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewSettingsService(DefaultSettings())

	s, err := svc.AddQuickLink(ctx, "Promotions")
	require.NoError(t, err)
	assert.Equal(t, "Promotions", s.QuickLinks[5])

	s, err = svc.UpdateQuickLink(ctx, 0, "Home")
	require.NoError(t, err)
	assert.Equal(t, "Home", s.QuickLinks[0])

	s, err = svc.RemoveQuickLink(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Home", "À propos", "Contact", "FAQ", "Promotions"}, s.QuickLinks)

	_, err = svc.UpdateQuickLink(ctx, 5, "x")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.RemoveQuickLink(ctx, -1)
	assert.ErrorIs(t, err, ErrValidation)

	s, err = svc.AddCategory(ctx, "Jouets")
	require.NoError(t, err)
	s, err = svc.RemoveCategory(ctx, 0)
	require.NoError(t, err)
	s, err = svc.UpdateCategory(ctx, 0, "Mode")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mode", "Maison & Jardin", "Sport & Loisirs", "Livres", "Jouets"}, s.Categories)

	_, err = svc.RemoveCategory(ctx, 10)
	assert.ErrorIs(t, err, ErrValidation)

	// a failed edit leaves the stored settings untouched
	assert.Equal(t, s, svc.Get(ctx))

	single := DefaultSettings()
	single.Categories = []string{"Mode"}
	single.QuickLinks = []string{"Accueil"}
	one := NewSettingsService(single)
	_, err = one.RemoveCategory(ctx, 0)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "at least one category is required")
	assert.Equal(t, []string{"Mode"}, one.Get(ctx).Categories)

	s, err = one.RemoveQuickLink(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, s.QuickLinks)
}

func TestSettingsService_SocialLinks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewSettingsService(DefaultSettings())

	s, err := svc.SetSocialLink(ctx, "facebook", "https://facebook.com/mdshopp")
	require.NoError(t, err)
	assert.Equal(t, "https://facebook.com/mdshopp", s.SocialMedia["facebook"])

	_, err = svc.SetSocialLink(ctx, "myspace", "https://myspace.com/x")
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotContains(t, svc.Get(ctx).SocialMedia, "myspace")
}

func TestSettingsService_GetReturnsCopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewSettingsService(DefaultSettings())

	s := svc.Get(ctx)
	s.QuickLinks[0] = "changed"
	s.SocialMedia["twitter"] = "changed"

	fresh := svc.Get(ctx)
	assert.Equal(t, "Accueil", fresh.QuickLinks[0])
	assert.Empty(t, fresh.SocialMedia["twitter"])
}

func TestSettingsService_Replace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewSettingsService(DefaultSettings())

	next := DefaultSettings()
	next.SiteName = "MD shopp Yaoundé"
	next.SocialMedia = map[string]string{"instagram": "https://instagram.com/mdshopp"}

	got, err := svc.Replace(ctx, next)
	require.NoError(t, err)
	assert.Equal(t, "MD shopp Yaoundé", got.SiteName)
	assert.Equal(t, "https://instagram.com/mdshopp", got.SocialMedia["instagram"])
	assert.Len(t, got.SocialMedia, len(models.SocialPlatforms))

	next.SocialMedia = map[string]string{"myspace": "x"}
	_, err = svc.Replace(ctx, next)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "MD shopp Yaoundé", svc.Get(ctx).SiteName)
}

func TestLoadSettingsFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
siteName: Boutique Test
phone: "+237 600 00 00 00"
socialMedia:
  whatsapp: https://wa.me/237600000000
`), 0o600))

	s, err := LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Boutique Test", s.SiteName)
	assert.Equal(t, "+237 600 00 00 00", s.Phone)
	assert.Equal(t, "contact@mdshopp.cm", s.Email)
	assert.Equal(t, "https://wa.me/237600000000", s.SocialMedia["whatsapp"])
	assert.Contains(t, s.SocialMedia, "facebook")

	_, err = LoadSettingsFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
