package models

import "strings"

// Category represents an admin-managed listing category.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Slug        string `json:"slug"`
}

// Slugify derives a URL slug from a category name: lowercase with runs of
// whitespace collapsed to single hyphens.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
