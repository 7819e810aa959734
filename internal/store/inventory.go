package store

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"

	"github.com/mesh-intelligence/curio/internal/tree"
	"github.com/mesh-intelligence/curio/pkg/types"
)

// bucket holds every collectible of one kind. The kind is fixed by the
// first insert so a tree never mixes kinds.
type bucket struct {
	kind  types.Kind
	items *tree.Tree[*types.Collectible]
}

// Inventory is the collectible store: a sparse map from hash bucket to an
// ordered tree. The trees hold the canonical entities; everything else
// (customer logs, lookups) only refers to them.
type Inventory struct {
	buckets map[int]*bucket
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{buckets: make(map[int]*bucket)}
}

// Insert stores c in its kind's bucket, creating the bucket on first use.
// Returns ErrDuplicate if an equal collectible is present, in which case c
// is not stored, and ErrKindMismatch if c hashes into a bucket owned by
// another kind.
func (inv *Inventory) Insert(c *types.Collectible) error {
	h := c.Hash()
	b, ok := inv.buckets[h]
	if !ok {
		b = &bucket{kind: c.Kind, items: tree.New[*types.Collectible]()}
		inv.buckets[h] = b
	}
	if b.kind != c.Kind {
		return fmt.Errorf("%w: bucket %d holds %s, got %s", types.ErrKindMismatch, h, b.kind, c.Kind)
	}
	if !b.items.Insert(c) {
		return fmt.Errorf("%w: %s %q", types.ErrDuplicate, c.Kind, c.Name)
	}
	return nil
}

// Retrieve exchanges lookup for the stored collectible equal to it.
func (inv *Inventory) Retrieve(lookup *types.Collectible) (*types.Collectible, error) {
	b, ok := inv.buckets[lookup.Hash()]
	if !ok || b.kind != lookup.Kind {
		return nil, fmt.Errorf("%w: no %s in inventory", types.ErrNotFound, lookup.Kind)
	}
	c, ok := b.items.Retrieve(lookup)
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", types.ErrNotFound, lookup.Kind, lookup.Name)
	}
	return c, nil
}

// UpdateInventory applies delta to the stock of the stored collectible equal
// to lookup and returns that collectible. It fails with ErrNotFound when the
// kind has no bucket or the lookup misses, and with ErrOutOfStock when the
// stock would go negative. The lookup itself is never modified.
func (inv *Inventory) UpdateInventory(lookup *types.Collectible, delta int) (*types.Collectible, error) {
	c, err := inv.Retrieve(lookup)
	if err != nil {
		return nil, err
	}
	if err := c.UpdateStock(delta); err != nil {
		return nil, err
	}
	return c, nil
}

// Len returns the number of stored collectibles.
func (inv *Inventory) Len() int {
	n := 0
	for _, b := range inv.buckets {
		n += b.items.Len()
	}
	return n
}

// Buckets returns the occupied bucket indexes in ascending order.
func (inv *Inventory) Buckets() []int {
	return slices.Sorted(maps.Keys(inv.buckets))
}

// All iterates buckets in index order and each bucket in ascending order.
func (inv *Inventory) All() iter.Seq[*types.Collectible] {
	return func(yield func(*types.Collectible) bool) {
		for _, h := range inv.Buckets() {
			for c := range inv.buckets[h].items.All() {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// OutputAll writes one rendered line per collectible in All order, with a
// blank line after each bucket.
func (inv *Inventory) OutputAll(w io.Writer) error {
	for _, h := range inv.Buckets() {
		for c := range inv.buckets[h].items.All() {
			if _, err := fmt.Fprintln(w, c.Render()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// Reset drops every bucket and the collectibles they own.
func (inv *Inventory) Reset() {
	for _, b := range inv.buckets {
		b.items.Reset()
	}
	clear(inv.buckets)
}
