package models

import "time"

// Document represents a markdown file under the docs tree.
type Document struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Position     int       `json:"position"`
	FilePath     string    `json:"filePath"`
	LastModified time.Time `json:"lastModified"`
	Content      string    `json:"content"`
}

// BlogPost represents a markdown file under the blog tree.
type BlogPost struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Author       string    `json:"author"`
	Date         string    `json:"date"`
	Tags         []string  `json:"tags"`
	Published    bool      `json:"published"`
	FilePath     string    `json:"filePath"`
	LastModified time.Time `json:"lastModified"`
	Content      string    `json:"content"`
}

// Page represents a standalone markdown page under src/pages.
type Page struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Path         string    `json:"path"`
	LastModified time.Time `json:"lastModified"`
	Content      string    `json:"content"`
}
