package menu

import "github.com/lezzet-duragi/menud/pkg/domain"

// CategoryAll is the sentinel category filter meaning "no filter".
const CategoryAll = "all"

// FilterByCategory returns the items belonging to the given category.
// An empty id or CategoryAll returns the input unfiltered. Filters are
// pure set intersections, so they compose in any order.
func FilterByCategory(items []domain.MenuItem, categoryID string) []domain.MenuItem {
	if categoryID == "" || categoryID == CategoryAll {
		return items
	}

	filtered := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Category == categoryID {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// FilterFeatured returns only the items flagged for promotional highlighting
func FilterFeatured(items []domain.MenuItem) []domain.MenuItem {
	filtered := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Featured {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// CategoryName resolves a category id to its display name. Unresolved ids
// report ok=false rather than an error; dangling references are tolerated
// at read time.
func CategoryName(categories []domain.Category, id string) (string, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c.Name, true
		}
	}
	return "", false
}
