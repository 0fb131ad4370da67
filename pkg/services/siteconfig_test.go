package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"docs-admin/pkg/models"
)

func TestLoadNavigationMaterializesDefault(t *testing.T) {
	adminData := t.TempDir()

	nav, err := LoadNavigation(adminData)
	require.NoError(t, err)
	require.Len(t, nav.Items, 4)
	assert.Equal(t, "Documentation", nav.Items[0].Label)

	// First read writes the file so later edits have a base.
	_, statErr := os.Stat(filepath.Join(adminData, NavigationFile))
	assert.NoError(t, statErr)
}

func TestSaveNavigationFillsOmittedFields(t *testing.T) {
	adminData := t.TempDir()

	nav, err := SaveNavigation(adminData, []models.NavItem{
		{Label: "Docs", URL: "/docs"},
		{},
	})
	require.NoError(t, err)
	require.Len(t, nav.Items, 2)

	assert.NotZero(t, nav.Items[0].ID)
	assert.Equal(t, "internal", nav.Items[0].Type)
	assert.Equal(t, 1, nav.Items[0].Position)

	assert.Equal(t, "Untitled", nav.Items[1].Label)
	assert.Equal(t, "#", nav.Items[1].URL)
	assert.Equal(t, 2, nav.Items[1].Position)
}

func TestSaveNavigationRejectsNilItems(t *testing.T) {
	_, err := SaveNavigation(t.TempDir(), nil)
	require.ErrorIs(t, err, ErrValidation)
}

func TestSaveNavigationRoundTrip(t *testing.T) {
	adminData := t.TempDir()

	_, err := SaveNavigation(adminData, []models.NavItem{{Label: "Guides", URL: "/guides"}})
	require.NoError(t, err)

	nav, err := LoadNavigation(adminData)
	require.NoError(t, err)
	require.Len(t, nav.Items, 1)
	assert.Equal(t, "Guides", nav.Items[0].Label)
}

func TestSaveFooterFillsOmittedFields(t *testing.T) {
	adminData := t.TempDir()

	footer, err := SaveFooter(adminData, models.Footer{
		Links: []models.FooterGroup{
			{Items: []models.FooterLink{{}}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Untitled Group", footer.Links[0].Title)
	assert.Equal(t, "Untitled Link", footer.Links[0].Items[0].Label)
	assert.Equal(t, "#", footer.Links[0].Items[0].To)
	assert.NotEmpty(t, footer.Copyright)
}

func TestSaveFooterRejectsNilLinks(t *testing.T) {
	_, err := SaveFooter(t.TempDir(), models.Footer{})
	require.ErrorIs(t, err, ErrValidation)
}

func TestLoadAppearanceMergesOverDefaults(t *testing.T) {
	adminData := t.TempDir()
	require.NoError(t, saveAdminJSON(adminData, AppearanceFile, map[string]interface{}{
		"primaryColor": "#FF0000",
	}))

	appearance, err := LoadAppearance(adminData)
	require.NoError(t, err)
	assert.Equal(t, "#FF0000", appearance.PrimaryColor)
	// Untouched fields keep their defaults.
	assert.Equal(t, "light", appearance.Theme)
	assert.Equal(t, "system-ui", appearance.BodyFont)
}

func TestSaveSettingsMergesOverStored(t *testing.T) {
	adminData := t.TempDir()

	_, err := SaveSettings(adminData, models.Settings{Title: "Docs Portal", AnalyticsID: "G-123"})
	require.NoError(t, err)

	off := false
	settings, err := SaveSettings(adminData, models.Settings{Tagline: "All the docs", EnableSearch: &off})
	require.NoError(t, err)

	assert.Equal(t, "Docs Portal", settings.Title)
	assert.Equal(t, "All the docs", settings.Tagline)
	require.NotNil(t, settings.EnableSearch)
	assert.False(t, *settings.EnableSearch)
	// AnalyticsID always takes the incoming value, clearing included.
	assert.Equal(t, "", settings.AnalyticsID)
}

func TestWriteSiteConfig(t *testing.T) {
	adminData := t.TempDir()

	_, err := SaveSettings(adminData, models.Settings{Title: "Docs Portal", AnalyticsID: "G-123"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(adminData, SiteConfigFile))
	require.NoError(t, err)

	var cfg models.SiteConfig
	require.NoError(t, yaml.Unmarshal(data, &cfg))

	assert.Equal(t, "Docs Portal", cfg.Title)
	assert.Equal(t, "light", cfg.ColorMode.DefaultMode)
	assert.True(t, cfg.SearchOn)
	require.NotNil(t, cfg.Analytics)
	assert.Equal(t, "G-123", cfg.Analytics.TrackingID)
	assert.True(t, cfg.Analytics.AnonymizeIP)
	assert.NotEmpty(t, cfg.Navbar.Items)
	assert.NotEmpty(t, cfg.Footer.Links)
}

func TestWriteSiteConfigOmitsAnalyticsWhenUnset(t *testing.T) {
	adminData := t.TempDir()

	_, err := SaveSettings(adminData, models.Settings{Title: "Plain"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(adminData, SiteConfigFile))
	require.NoError(t, err)

	var cfg models.SiteConfig
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Nil(t, cfg.Analytics)
}
