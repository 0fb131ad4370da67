package models

// Category is a docs folder with optional sidecar metadata.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Position    int    `json:"position,omitempty"`
	ItemCount   int    `json:"itemCount"`
}

// CategorySidecar is the _category_.json file inside a category directory.
type CategorySidecar struct {
	Label       string `json:"label"`
	Position    int    `json:"position"`
	Description string `json:"description,omitempty"`
}

// Author is one entry of the shared authors.yml registry.
type Author struct {
	Name        string `json:"name" yaml:"name"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	ImageURL    string `json:"image_url" yaml:"image_url"`
	URL         string `json:"url" yaml:"url"`
}
