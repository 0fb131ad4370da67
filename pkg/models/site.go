package models

// NavItem is a single navbar entry.
type NavItem struct {
	ID       int64  `json:"id"`
	Label    string `json:"label"`
	URL      string `json:"url"`
	Type     string `json:"type"` // internal or external
	Position int    `json:"position"`
	NewTab   bool   `json:"newTab"`
}

// Navigation is the ordered navbar configuration.
type Navigation struct {
	Items []NavItem `json:"items"`
}

// FooterLink is one link inside a footer group.
type FooterLink struct {
	Label string `json:"label"`
	To    string `json:"to,omitempty"`
	Href  string `json:"href,omitempty"`
}

// FooterGroup is a titled column of footer links.
type FooterGroup struct {
	Title string       `json:"title"`
	Items []FooterLink `json:"items"`
}

// Footer is the site footer configuration.
type Footer struct {
	Links     []FooterGroup `json:"links"`
	Copyright string        `json:"copyright"`
}

// Appearance holds theming settings.
type Appearance struct {
	Theme                string `json:"theme"` // light, dark, auto
	EnableDarkMode       bool   `json:"enableDarkMode"`
	PrimaryColor         string `json:"primaryColor"`
	SecondaryColor       string `json:"secondaryColor"`
	AccentColor          string `json:"accentColor"`
	WarningColor         string `json:"warningColor"`
	LightBackgroundColor string `json:"lightBackgroundColor"`
	LightTextColor       string `json:"lightTextColor"`
	DarkBackgroundColor  string `json:"darkBackgroundColor"`
	DarkTextColor        string `json:"darkTextColor"`
	DarkPrimaryColor     string `json:"darkPrimaryColor"`
	HeadingFont          string `json:"headingFont"`
	BodyFont             string `json:"bodyFont"`
	CodeFont             string `json:"codeFont"`
	LogoURL              string `json:"logoUrl"`
	LogoAlt              string `json:"logoAlt"`
	ShowTitle            bool   `json:"showTitle"`
	CustomCSS            string `json:"customCSS"`
}

// Settings holds the site-wide metadata the generator consumes.
type Settings struct {
	Title          string `json:"title"`
	Tagline        string `json:"tagline"`
	URL            string `json:"url"`
	FaviconURL     string `json:"faviconUrl"`
	SocialImage    string `json:"socialImage"`
	EnableSearch   *bool  `json:"enableSearch,omitempty"`
	EnableDarkMode *bool  `json:"enableDarkMode,omitempty"`
	AnalyticsID    string `json:"analyticsId,omitempty"`
}

// SiteConfig is the full logical configuration serialized for the renderer.
// It replaces ad-hoc text patching of the generator config file: the admin
// stores structured settings and a dedicated writer emits the whole document.
type SiteConfig struct {
	Title      string     `yaml:"title"`
	Tagline    string     `yaml:"tagline"`
	URL        string     `yaml:"url"`
	Favicon    string     `yaml:"favicon"`
	Image      string     `yaml:"image"`
	Navbar     Navigation `yaml:"navbar"`
	Footer     Footer     `yaml:"footer"`
	ColorMode  ColorMode  `yaml:"colorMode"`
	Analytics  *Analytics `yaml:"analytics,omitempty"`
	SearchOn   bool       `yaml:"search"`
	Appearance Appearance `yaml:"appearance"`
}

// ColorMode mirrors the renderer's color mode block.
type ColorMode struct {
	DefaultMode              string `yaml:"defaultMode"`
	DisableSwitch            bool   `yaml:"disableSwitch"`
	RespectPrefersColorScheme bool  `yaml:"respectPrefersColorScheme"`
}

// Analytics configures the tracking plugin when an ID is set.
type Analytics struct {
	TrackingID  string `yaml:"trackingID"`
	AnonymizeIP bool   `yaml:"anonymizeIP"`
}
