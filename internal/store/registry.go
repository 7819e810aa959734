package store

import (
	"fmt"
	"io"
	"iter"

	"github.com/mesh-intelligence/curio/internal/tree"
	"github.com/mesh-intelligence/curio/pkg/types"
)

// Registry is the customer store. byID owns each customer and is addressed
// directly by ID; byName refers to the same instances and gives alphabetical
// enumeration. Add writes both so the views never diverge.
type Registry struct {
	byID   map[int]*types.Customer
	byName *tree.Tree[*types.Customer]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[int]*types.Customer),
		byName: tree.New[*types.Customer](),
	}
}

func validID(id int) bool {
	return id >= 0 && id < types.CustomerCapacity
}

// Add registers c. Returns ErrInvalidID when the ID is outside
// [0, CustomerCapacity) and ErrDuplicate when the ID is taken.
func (r *Registry) Add(c *types.Customer) error {
	if !validID(c.ID) {
		return fmt.Errorf("%w: %d", types.ErrInvalidID, c.ID)
	}
	if _, ok := r.byID[c.ID]; ok {
		return fmt.Errorf("%w: customer %03d", types.ErrDuplicate, c.ID)
	}
	if !r.byName.Insert(c) {
		return fmt.Errorf("%w: customer %03d, %s", types.ErrDuplicate, c.ID, c.Name)
	}
	r.byID[c.ID] = c
	return nil
}

// Get returns the customer with the given ID.
func (r *Registry) Get(id int) (*types.Customer, error) {
	if !validID(id) {
		return nil, fmt.Errorf("%w: %d", types.ErrInvalidID, id)
	}
	c, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: customer %03d", types.ErrNotFound, id)
	}
	return c, nil
}

// UpdateLog appends a transaction for item to the log of customer id.
// The log stores item as given; pass the canonical inventory entity.
func (r *Registry) UpdateLog(item *types.Collectible, id int, dir types.Direction) error {
	c, err := r.Get(id)
	if err != nil {
		return err
	}
	c.AddTransaction(item, dir)
	return nil
}

// Len returns the number of registered customers.
func (r *Registry) Len() int { return len(r.byID) }

// All iterates customers alphabetically by name, then ID.
func (r *Registry) All() iter.Seq[*types.Customer] {
	return r.byName.All()
}

// OutputLog writes the log of customer id followed by a blank line. Nothing
// is written when the customer does not exist.
func (r *Registry) OutputLog(w io.Writer, id int) error {
	c, err := r.Get(id)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, c.Render())
	return err
}

// OutputAll writes every customer's log in alphabetical order.
func (r *Registry) OutputAll(w io.Writer) error {
	for c := range r.All() {
		if _, err := fmt.Fprintln(w, c.Render()); err != nil {
			return err
		}
	}
	return nil
}

// Reset drops every customer.
func (r *Registry) Reset() {
	r.byName.Reset()
	clear(r.byID)
}
