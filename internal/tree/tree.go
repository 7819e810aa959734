// Package tree implements an unbalanced binary search tree whose nodes live
// in a slice arena. Children are referenced by index rather than pointer, so
// tearing a tree down is a single slice drop.
//
// Ordering comes from the items themselves: an item that Equals a stored
// item is a duplicate, an item that is Less goes left, anything else goes
// right. Depth depends on insertion order; there is no rebalancing and no
// removal.
package tree

import "iter"

// Item is the ordering capability a tree element must provide. Less and
// Equal must be mutually exclusive and, together with the reverse Less,
// total over the items placed in one tree.
type Item[T any] interface {
	Less(other T) bool
	Equal(other T) bool
}

// none marks an absent child. The root always sits at index 0 and is never
// anyone's child, so 0 is free to mean "no node".
const none int32 = 0

type node[T any] struct {
	item        T
	left, right int32
}

// Tree is an unbalanced BST. The zero value is an empty tree ready to use.
type Tree[T Item[T]] struct {
	nodes []node[T]
}

// New returns an empty tree.
func New[T Item[T]]() *Tree[T] {
	return &Tree[T]{}
}

// Len returns the number of stored items.
func (t *Tree[T]) Len() int { return len(t.nodes) }

// IsEmpty reports whether the tree holds no items.
func (t *Tree[T]) IsEmpty() bool { return len(t.nodes) == 0 }

// Insert adds item and reports whether a new node was created. An item
// equal to a stored one is rejected and the tree is left untouched; the
// caller keeps the rejected item.
func (t *Tree[T]) Insert(item T) bool {
	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, node[T]{item: item})
		return true
	}

	cur := int32(0)
	for {
		n := &t.nodes[cur]
		if item.Equal(n.item) {
			return false
		}

		link := &n.right
		if item.Less(n.item) {
			link = &n.left
		}
		if *link == none {
			// Written before the append so a reallocation copies the link.
			*link = int32(len(t.nodes))
			t.nodes = append(t.nodes, node[T]{item: item})
			return true
		}
		cur = *link
	}
}

// Retrieve returns the stored item equal to key. The stored item, not the
// key, is returned so callers can exchange a lookup for the canonical entry.
func (t *Tree[T]) Retrieve(key T) (T, bool) {
	if i, ok := t.search(key); ok {
		return t.nodes[i].item, true
	}
	var zero T
	return zero, false
}

// Contains reports whether an item equal to key is stored.
func (t *Tree[T]) Contains(key T) bool {
	_, ok := t.search(key)
	return ok
}

func (t *Tree[T]) search(key T) (int32, bool) {
	if len(t.nodes) == 0 {
		return 0, false
	}
	cur := int32(0)
	for {
		n := &t.nodes[cur]
		if key.Equal(n.item) {
			return cur, true
		}
		next := n.right
		if key.Less(n.item) {
			next = n.left
		}
		if next == none {
			return 0, false
		}
		cur = next
	}
}

// All returns an in-order iterator over the stored items, ascending by Less.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.Walk(yield)
	}
}

// Walk calls fn for each item in ascending order until fn returns false.
func (t *Tree[T]) Walk(fn func(T) bool) {
	if len(t.nodes) == 0 {
		return
	}
	t.walk(0, fn)
}

func (t *Tree[T]) walk(i int32, fn func(T) bool) bool {
	n := &t.nodes[i]
	if n.left != none && !t.walk(n.left, fn) {
		return false
	}
	if !fn(n.item) {
		return false
	}
	return n.right == none || t.walk(n.right, fn)
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[T]) Height() int {
	if len(t.nodes) == 0 {
		return 0
	}
	return t.height(0)
}

func (t *Tree[T]) height(i int32) int {
	n := &t.nodes[i]
	h := 0
	if n.left != none {
		h = t.height(n.left)
	}
	if n.right != none {
		h = max(h, t.height(n.right))
	}
	return h + 1
}

// Reset drops every node and item. Safe on an empty tree.
func (t *Tree[T]) Reset() {
	clear(t.nodes)
	t.nodes = nil
}
