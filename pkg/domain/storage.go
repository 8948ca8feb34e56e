package domain

// DocumentStore defines the interface for durable access to the menu
// document. Implementations read and write the document as a single unit.
type DocumentStore interface {
	Load() (*MenuDocument, error)
	Save(doc *MenuDocument) error
}

// MenuRepository defines CRUD operations over the menu item collection.
// This is the core business interface that implementations must conform to.
type MenuRepository interface {
	List() []MenuItem
	Get(id int) (MenuItem, error)
	Create(in ItemInput) (MenuItem, error)
	Update(id int, in ItemInput) (MenuItem, error)
	Delete(id int) (MenuItem, error)
	Categories() []Category
}
