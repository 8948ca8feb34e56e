package api

import (
	"sync"

	"github.com/lezzet-duragi/menud/pkg/domain"
)

// MockRepository provides a mock implementation of domain.MenuRepository
// for testing handlers without touching the filesystem.
type MockRepository struct {
	mu         sync.RWMutex
	items      []domain.MenuItem
	categories []domain.Category

	// When set, every write operation fails with this error after
	// validation and id lookup, simulating a storage fault.
	saveErr error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
}

// NewMockRepository creates a new empty mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{
		items:      []domain.MenuItem{},
		categories: []domain.Category{},
	}
}

// SeedItems replaces the mock's item collection
func (m *MockRepository) SeedItems(items []domain.MenuItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]domain.MenuItem{}, items...)
}

// SeedCategories replaces the mock's category list
func (m *MockRepository) SeedCategories(categories []domain.Category) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = append([]domain.Category{}, categories...)
}

// SetSaveError makes all subsequent write operations fail with err
func (m *MockRepository) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// List returns all items
func (m *MockRepository) List() []domain.MenuItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.listCalls++
	return append([]domain.MenuItem{}, m.items...)
}

// Categories returns the seeded category list
func (m *MockRepository) Categories() []domain.Category {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Category{}, m.categories...)
}

// Get returns the item with the given id
func (m *MockRepository) Get(id int) (domain.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, item := range m.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.MenuItem{}, domain.ErrNotFound
}

// Create mirrors the real repository's contract: required-field
// validation, max+1 id assignment and optional-field defaults.
func (m *MockRepository) Create(in domain.ItemInput) (domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++

	if err := checkRequired(in); err != nil {
		return domain.MenuItem{}, err
	}
	if m.saveErr != nil {
		return domain.MenuItem{}, m.saveErr
	}

	maxID := 0
	for _, item := range m.items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	item := domain.MenuItem{
		ID:          maxID + 1,
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

	m.items = append(m.items, item)
	return item, nil
}

// Update replaces an existing item's fields except its id
func (m *MockRepository) Update(id int, in domain.ItemInput) (domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateCalls++

	if err := checkRequired(in); err != nil {
		return domain.MenuItem{}, err
	}

	for i, prev := range m.items {
		if prev.ID != id {
			continue
		}
		if m.saveErr != nil {
			return domain.MenuItem{}, m.saveErr
		}
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
		m.items[i] = item
		return item, nil
	}
	return domain.MenuItem{}, domain.ErrNotFound
}

// Delete removes an item by id and returns its snapshot
func (m *MockRepository) Delete(id int) (domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls++

	for i, item := range m.items {
		if item.ID != id {
			continue
		}
		if m.saveErr != nil {
			return domain.MenuItem{}, m.saveErr
		}
		m.items = append(m.items[:i], m.items[i+1:]...)
		return item, nil
	}
	return domain.MenuItem{}, domain.ErrNotFound
}

// GetCreateCalls returns the number of Create calls made
func (m *MockRepository) GetCreateCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.createCalls
}

// GetItemCount returns the number of items currently held
func (m *MockRepository) GetItemCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func checkRequired(in domain.ItemInput) error {
	var fields []string
	if in.Name == nil || *in.Name == "" {
		fields = append(fields, "name")
	}
	if in.Description == nil || *in.Description == "" {
		fields = append(fields, "description")
	}
	if in.Price == nil || *in.Price < 0 {
		fields = append(fields, "price")
	}
	if in.Category == nil || *in.Category == "" {
		fields = append(fields, "category")
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
