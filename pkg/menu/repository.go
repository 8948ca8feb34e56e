// Package menu implements CRUD over the menu item collection inside the
// menu document, on top of a DocumentStore.
package menu

import (
	"log"
	"sync"

	"github.com/lezzet-duragi/menud/pkg/domain"
)

// Repository provides menu item CRUD with id assignment and field-default
// policies. Every operation re-reads the backing document, so there is no
// in-process cache to go stale. A write mutex serializes the
// read-modify-write cycle of Create/Update/Delete within one process;
// writers in other processes still race under last-write-wins.
type Repository struct {
	writeMu sync.Mutex
	store   domain.DocumentStore
}

// NewRepository creates a new repository over the given store
func NewRepository(store domain.DocumentStore) *Repository {
	return &Repository{store: store}
}

// List returns all menu items. Read errors degrade to an empty list so
// public browsing stays available even if the backing file is broken.
func (r *Repository) List() []domain.MenuItem {
	doc, err := r.store.Load()
	if err != nil {
		log.Printf("WARN: Menu data unavailable, serving empty list: %v", err)
		return []domain.MenuItem{}
	}
	if doc.MenuItems == nil {
		return []domain.MenuItem{}
	}
	return doc.MenuItems
}

// Categories returns the read-only category reference list, degrading to
// empty on read errors like List.
func (r *Repository) Categories() []domain.Category {
	doc, err := r.store.Load()
	if err != nil {
		log.Printf("WARN: Menu data unavailable, serving empty category list: %v", err)
		return []domain.Category{}
	}
	if doc.Categories == nil {
		return []domain.Category{}
	}
	return doc.Categories
}

// Get returns the item with the given id
func (r *Repository) Get(id int) (domain.MenuItem, error) {
	for _, item := range r.List() {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.MenuItem{}, domain.ErrNotFound
}

// Create validates the input, assigns the next id, applies defaults for
// omitted optional fields and persists the grown collection. Storage
// failures surface to the caller; the create must then be treated as
// failed, not partially applied.
func (r *Repository) Create(in domain.ItemInput) (domain.MenuItem, error) {
	if err := validateInput(in); err != nil {
		return domain.MenuItem{}, err
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	// A broken document is a hard failure on write paths, unlike List.
	doc, err := r.store.Load()
	if err != nil {
		return domain.MenuItem{}, err
	}

	item := domain.MenuItem{
		ID:          nextID(doc.MenuItems),
		Name:        *in.Name,
		Description: *in.Description,
		Price:       *in.Price,
		Category:    *in.Category,
		Image:       domain.PlaceholderImage,
		Featured:    false,
	}
	if in.Image != nil {
		item.Image = *in.Image
	}
	if in.Featured != nil {
		item.Featured = *in.Featured
	}

	doc.MenuItems = append(doc.MenuItems, item)
	if err := r.store.Save(doc); err != nil {
		return domain.MenuItem{}, err
	}
	return item, nil
}

// Update replaces all fields of the item except its id. Omitted (not
// merely empty) image/featured fields keep the item's current values.
func (r *Repository) Update(id int, in domain.ItemInput) (domain.MenuItem, error) {
	if err := validateInput(in); err != nil {
		return domain.MenuItem{}, err
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	doc, err := r.store.Load()
	if err != nil {
		return domain.MenuItem{}, err
	}

	idx := indexOf(doc.MenuItems, id)
	if idx < 0 {
		return domain.MenuItem{}, domain.ErrNotFound
	}

	prev := doc.MenuItems[idx]
	item := domain.MenuItem{
		ID:          id,
		Name:        *in.Name,
		Description: *in.Description,
		Price:       *in.Price,
		Category:    *in.Category,
		Image:       prev.Image,
		Featured:    prev.Featured,
	}
	if in.Image != nil {
		item.Image = *in.Image
	}
	if in.Featured != nil {
		item.Featured = *in.Featured
	}

	doc.MenuItems[idx] = item
	if err := r.store.Save(doc); err != nil {
		return domain.MenuItem{}, err
	}
	return item, nil
}

// Delete removes the item with the given id and returns its last snapshot
func (r *Repository) Delete(id int) (domain.MenuItem, error) {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	doc, err := r.store.Load()
	if err != nil {
		return domain.MenuItem{}, err
	}

	idx := indexOf(doc.MenuItems, id)
	if idx < 0 {
		return domain.MenuItem{}, domain.ErrNotFound
	}

	removed := doc.MenuItems[idx]
	doc.MenuItems = append(doc.MenuItems[:idx], doc.MenuItems[idx+1:]...)
	if err := r.store.Save(doc); err != nil {
		return domain.MenuItem{}, err
	}
	return removed, nil
}

// nextID returns 1 + max(existing ids), or 1 for an empty collection
func nextID(items []domain.MenuItem) int {
	maxID := 0
	for _, item := range items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	return maxID + 1
}

func indexOf(items []domain.MenuItem, id int) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
