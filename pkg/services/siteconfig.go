package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"docs-admin/pkg/models"
)

// Admin data filenames under the admin-data directory.
const (
	NavigationFile = "navigation.json"
	FooterFile     = "footer.json"
	AppearanceFile = "appearance.json"
	SettingsFile   = "settings.json"

	// SiteConfigFile is the generated renderer configuration. It is written
	// wholesale from the structured settings instead of patching the
	// generator's own config file with regular expressions.
	SiteConfigFile = "site-config.yml"
)

// DefaultNavigation is the navbar used until the admin saves one.
func DefaultNavigation() models.Navigation {
	return models.Navigation{Items: []models.NavItem{
		{ID: 1, Label: "Documentation", URL: "/docs", Type: "internal", Position: 1},
		{ID: 2, Label: "Blog", URL: "/blog", Type: "internal", Position: 2},
		{ID: 3, Label: "Contact", URL: "/contact", Type: "internal", Position: 3},
		{ID: 4, Label: "GitHub", URL: "https://github.com", Type: "external", Position: 4, NewTab: true},
	}}
}

// DefaultFooter is the footer used until the admin saves one.
func DefaultFooter() models.Footer {
	return models.Footer{
		Links: []models.FooterGroup{
			{Title: "Docs", Items: []models.FooterLink{
				{Label: "Introduction", To: "/docs"},
			}},
			{Title: "Community", Items: []models.FooterLink{
				{Label: "Stack Overflow", Href: "https://stackoverflow.com"},
				{Label: "Discord", Href: "https://discord.com"},
			}},
			{Title: "More", Items: []models.FooterLink{
				{Label: "Blog", To: "/blog"},
				{Label: "GitHub", Href: "https://github.com"},
			}},
		},
		Copyright: fmt.Sprintf("Copyright © %d", time.Now().Year()),
	}
}

// DefaultAppearance is the theme used until the admin saves one.
func DefaultAppearance() models.Appearance {
	return models.Appearance{
		Theme:                "light",
		EnableDarkMode:       true,
		PrimaryColor:         "#2874A6",
		SecondaryColor:       "#F2F4F4",
		AccentColor:          "#27AE60",
		WarningColor:         "#F4D03F",
		LightBackgroundColor: "#FFFFFF",
		LightTextColor:       "#2C3E50",
		DarkBackgroundColor:  "#2C3E50",
		DarkTextColor:        "#FFFFFF",
		DarkPrimaryColor:     "#4193C8",
		HeadingFont:          "system-ui",
		BodyFont:             "system-ui",
		CodeFont:             "SFMono-Regular",
		LogoAlt:              "Site logo",
		ShowTitle:            true,
	}
}

// DefaultSettings is the site metadata used until the admin saves one.
func DefaultSettings() models.Settings {
	return models.Settings{
		Title:       "My Site",
		Tagline:     "My Site Description",
		URL:         "https://example.com",
		FaviconURL:  "/img/favicon.ico",
		SocialImage: "/img/social-card.jpg",
	}
}

func loadAdminJSON(adminDataDir, name string, out interface{}) (bool, error) {
	data, err := os.ReadFile(filepath.Join(adminDataDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

func saveAdminJSON(adminDataDir, name string, v interface{}) error {
	if err := os.MkdirAll(adminDataDir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(adminDataDir, name), append(data, '\n'))
}

// LoadNavigation reads the stored navbar, materializing the default on first
// use.
func LoadNavigation(adminDataDir string) (models.Navigation, error) {
	var nav models.Navigation
	found, err := loadAdminJSON(adminDataDir, NavigationFile, &nav)
	if err != nil {
		return models.Navigation{}, err
	}
	if !found {
		nav = DefaultNavigation()
		if err := saveAdminJSON(adminDataDir, NavigationFile, nav); err != nil {
			return models.Navigation{}, err
		}
	}
	return nav, nil
}

// SaveNavigation persists the navbar, filling omitted fields like the
// original admin did, and regenerates the renderer config.
func SaveNavigation(adminDataDir string, items []models.NavItem) (models.Navigation, error) {
	if items == nil {
		return models.Navigation{}, fmt.Errorf("%w: navigation items are required", ErrValidation)
	}
	now := time.Now().UnixMilli()
	for i := range items {
		if items[i].ID == 0 {
			items[i].ID = now + int64(i)
		}
		if items[i].Label == "" {
			items[i].Label = "Untitled"
		}
		if items[i].URL == "" {
			items[i].URL = "#"
		}
		if items[i].Type == "" {
			items[i].Type = "internal"
		}
		if items[i].Position == 0 {
			items[i].Position = i + 1
		}
	}

	nav := models.Navigation{Items: items}
	if err := saveAdminJSON(adminDataDir, NavigationFile, nav); err != nil {
		return models.Navigation{}, err
	}
	if err := WriteSiteConfig(adminDataDir); err != nil {
		return models.Navigation{}, err
	}
	return nav, nil
}

// LoadFooter reads the stored footer, materializing the default on first use.
func LoadFooter(adminDataDir string) (models.Footer, error) {
	var footer models.Footer
	found, err := loadAdminJSON(adminDataDir, FooterFile, &footer)
	if err != nil {
		return models.Footer{}, err
	}
	if !found {
		footer = DefaultFooter()
		if err := saveAdminJSON(adminDataDir, FooterFile, footer); err != nil {
			return models.Footer{}, err
		}
	}
	return footer, nil
}

// SaveFooter persists the footer and regenerates the renderer config.
func SaveFooter(adminDataDir string, footer models.Footer) (models.Footer, error) {
	if footer.Links == nil {
		return models.Footer{}, fmt.Errorf("%w: footer links are required", ErrValidation)
	}
	for gi := range footer.Links {
		if footer.Links[gi].Title == "" {
			footer.Links[gi].Title = "Untitled Group"
		}
		for ii := range footer.Links[gi].Items {
			item := &footer.Links[gi].Items[ii]
			if item.Label == "" {
				item.Label = "Untitled Link"
			}
			if item.To == "" && item.Href == "" {
				item.To = "#"
			}
		}
	}
	if footer.Copyright == "" {
		footer.Copyright = DefaultFooter().Copyright
	}

	if err := saveAdminJSON(adminDataDir, FooterFile, footer); err != nil {
		return models.Footer{}, err
	}
	if err := WriteSiteConfig(adminDataDir); err != nil {
		return models.Footer{}, err
	}
	return footer, nil
}

// LoadAppearance reads the stored theme merged over the defaults, so new
// fields always carry a value.
func LoadAppearance(adminDataDir string) (models.Appearance, error) {
	appearance := DefaultAppearance()
	if _, err := loadAdminJSON(adminDataDir, AppearanceFile, &appearance); err != nil {
		return models.Appearance{}, err
	}
	return appearance, nil
}

// SaveAppearance persists the theme and regenerates the renderer config.
func SaveAppearance(adminDataDir string, appearance models.Appearance) error {
	if err := saveAdminJSON(adminDataDir, AppearanceFile, appearance); err != nil {
		return err
	}
	return WriteSiteConfig(adminDataDir)
}

// LoadSettings reads the stored site metadata merged over the defaults.
func LoadSettings(adminDataDir string) (models.Settings, error) {
	settings := DefaultSettings()
	if _, err := loadAdminJSON(adminDataDir, SettingsFile, &settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

// SaveSettings merges the provided fields over the stored ones, persists the
// result, and regenerates the renderer config.
func SaveSettings(adminDataDir string, incoming models.Settings) (models.Settings, error) {
	settings, err := LoadSettings(adminDataDir)
	if err != nil {
		return models.Settings{}, err
	}

	if incoming.Title != "" {
		settings.Title = incoming.Title
	}
	if incoming.Tagline != "" {
		settings.Tagline = incoming.Tagline
	}
	if incoming.URL != "" {
		settings.URL = incoming.URL
	}
	if incoming.FaviconURL != "" {
		settings.FaviconURL = incoming.FaviconURL
	}
	if incoming.SocialImage != "" {
		settings.SocialImage = incoming.SocialImage
	}
	if incoming.EnableSearch != nil {
		settings.EnableSearch = incoming.EnableSearch
	}
	if incoming.EnableDarkMode != nil {
		settings.EnableDarkMode = incoming.EnableDarkMode
	}
	settings.AnalyticsID = incoming.AnalyticsID

	if err := saveAdminJSON(adminDataDir, SettingsFile, settings); err != nil {
		return models.Settings{}, err
	}
	if err := WriteSiteConfig(adminDataDir); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

// WriteSiteConfig serializes the merged logical settings into the renderer
// configuration document. The renderer reads this file; nothing here touches
// the generator's source config.
func WriteSiteConfig(adminDataDir string) error {
	nav, err := LoadNavigation(adminDataDir)
	if err != nil {
		return err
	}
	footer, err := LoadFooter(adminDataDir)
	if err != nil {
		return err
	}
	appearance, err := LoadAppearance(adminDataDir)
	if err != nil {
		return err
	}
	settings, err := LoadSettings(adminDataDir)
	if err != nil {
		return err
	}

	theme := appearance.Theme
	if theme == "auto" || theme == "" {
		theme = "light"
	}
	cfg := models.SiteConfig{
		Title:   settings.Title,
		Tagline: settings.Tagline,
		URL:     settings.URL,
		Favicon: settings.FaviconURL,
		Image:   settings.SocialImage,
		Navbar:  nav,
		Footer:  footer,
		ColorMode: models.ColorMode{
			DefaultMode:               theme,
			DisableSwitch:             !appearance.EnableDarkMode,
			RespectPrefersColorScheme: appearance.Theme == "auto",
		},
		SearchOn:   settings.EnableSearch == nil || *settings.EnableSearch,
		Appearance: appearance,
	}
	if settings.AnalyticsID != "" {
		cfg.Analytics = &models.Analytics{TrackingID: settings.AnalyticsID, AnonymizeIP: true}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(adminDataDir, 0o755); err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(adminDataDir, SiteConfigFile), data)
}
