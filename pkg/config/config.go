package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	// SiteRoot is the root of the generated site's source tree.
	SiteRoot = "."

	// Content locations relative to SiteRoot.
	DocsPath      = "docs"
	BlogPath      = "blog"
	PagesPath     = filepath.Join("src", "pages")
	UploadsPath   = filepath.Join("static", "img", "uploads")
	AuthorsPath   = filepath.Join("blog", "authors.yml")
	AdminDataPath = "admin-data"

	// Auth settings. All three are mandatory.
	JWTSecret     = ""
	AdminUsername = ""
	AdminPassword = ""

	// TokenTTLHours controls issued token lifetime.
	TokenTTLHours = 24

	// MaxUploadBytes caps multipart media uploads.
	MaxUploadBytes = int64(10 * 1024 * 1024)

	// ListenAddr is the HTTP bind address.
	ListenAddr = ":3001"

	// CORSOrigin is the allowed admin UI origin.
	CORSOrigin = "http://localhost:3000"
)

func Init() error {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	SiteRoot = getEnv("SITE_ROOT", ".")
	ListenAddr = getEnv("LISTEN_ADDR", ":3001")
	CORSOrigin = getEnv("CORS_ORIGIN", "http://localhost:3000")

	JWTSecret = os.Getenv("JWT_SECRET")
	AdminUsername = os.Getenv("ADMIN_USERNAME")
	AdminPassword = os.Getenv("ADMIN_PASSWORD")

	if JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if AdminUsername == "" || AdminPassword == "" {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	if ttl := os.Getenv("TOKEN_TTL_HOURS"); ttl != "" {
		if val, err := strconv.Atoi(ttl); err == nil && val > 0 {
			TokenTTLHours = val
		}
	}

	if max := os.Getenv("MAX_UPLOAD_BYTES"); max != "" {
		if val, err := strconv.ParseInt(max, 10, 64); err == nil && val > 0 {
			MaxUploadBytes = val
		}
	}

	return nil
}

// DocsDir returns the absolute docs root.
func DocsDir() string { return filepath.Join(SiteRoot, DocsPath) }

// BlogDir returns the absolute blog root.
func BlogDir() string { return filepath.Join(SiteRoot, BlogPath) }

// PagesDir returns the absolute standalone pages root.
func PagesDir() string { return filepath.Join(SiteRoot, PagesPath) }

// UploadsDir returns the absolute media upload root.
func UploadsDir() string { return filepath.Join(SiteRoot, UploadsPath) }

// AuthorsFile returns the absolute path of the author registry.
func AuthorsFile() string { return filepath.Join(SiteRoot, AuthorsPath) }

// AdminDataDir returns the absolute admin data root.
func AdminDataDir() string { return filepath.Join(SiteRoot, AdminDataPath) }
