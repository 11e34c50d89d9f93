package store

import (
	"context"

	"github.com/Dosseh91/listinghub/internal/models"
)

// Categories returns a snapshot of all categories.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// CategoryByID returns the category with the given id.
func (s *Store) CategoryByID(id string) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// CreateCategory assigns a new id and appends the category. The slug is
// derived from the name when the caller leaves it empty.
func (s *Store) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if err := ctx.Err(); err != nil {
		return models.Category{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	category.ID = newID()
	if category.Slug == "" {
		category.Slug = models.Slugify(category.Name)
	}
	s.categories = append(s.categories, category)
	return category, nil
}

// UpdateCategory replaces the record matching the category's id. The existing
// slug is kept unless the caller provides a new one explicitly; it is not
// rederived from an edited name. Unknown ids are a silent no-op.
func (s *Store) UpdateCategory(ctx context.Context, category models.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID != category.ID {
			continue
		}
		if category.Slug == "" {
			category.Slug = s.categories[i].Slug
		}
		s.categories[i] = category
		return nil
	}
	return nil
}

// DeleteCategory removes the category with the given id.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return nil
}
