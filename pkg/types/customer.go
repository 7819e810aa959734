package types

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Direction records which way an item moved in a transaction.
type Direction uint8

const (
	// Bought means the store bought the item from the customer.
	Bought Direction = iota + 1
	// Sold means the store sold the item to the customer.
	Sold
)

func (d Direction) String() string {
	switch d {
	case Bought:
		return "bought"
	case Sold:
		return "sold"
	default:
		return "unknown"
	}
}

// MarshalText encodes the direction as its lowercase name.
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText decodes "bought" or "sold".
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "bought":
		*d = Bought
	case "sold":
		*d = Sold
	default:
		return fmt.Errorf("unknown direction %q", text)
	}
	return nil
}

// prefix returns the fixed-width line prefix used when rendering a log.
func (d Direction) prefix() string {
	if d == Sold {
		return "Sold a(n)   "
	}
	return "Bought a(n) "
}

// LogEntry is one transaction in a customer's log. Item points at the
// canonical inventory entity; the log does not own it.
type LogEntry struct {
	EntryID   string       `json:"entry_id"` // UUID v7, generated on append.
	Item      *Collectible `json:"item"`
	Direction Direction    `json:"direction"`
}

// Customer is a registered customer with an append-only transaction log.
type Customer struct {
	ID   int        `json:"id"`
	Name string     `json:"name"`
	Log  []LogEntry `json:"log"`
}

// NewCustomer returns a customer with an empty log.
func NewCustomer(id int, name string) *Customer {
	return &Customer{ID: id, Name: name}
}

// ParseCustomer builds a customer from a record of the form "<id>, <name>".
// The ID range is checked by the registry, not here.
func ParseCustomer(record string) (*Customer, error) {
	idField, name, ok := strings.Cut(strings.TrimSpace(record), ",")
	if !ok {
		return nil, fmt.Errorf("%w: customer record %q has no name", ErrInvalidRecord, record)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idField))
	if err != nil {
		return nil, fmt.Errorf("%w: customer id %q: %v", ErrInvalidRecord, idField, err)
	}
	return NewCustomer(id, strings.TrimSpace(name)), nil
}

// AddTransaction appends an entry to the log and returns it. Entries are
// never reordered or deduplicated.
func (c *Customer) AddTransaction(item *Collectible, dir Direction) LogEntry {
	entry := LogEntry{EntryID: newEntryID(), Item: item, Direction: dir}
	c.Log = append(c.Log, entry)
	return entry
}

// Hash returns the customer ID.
func (c *Customer) Hash() int { return c.ID }

// Less orders customers by name, then ID.
func (c *Customer) Less(other *Customer) bool {
	return cmp.Or(
		cmp.Compare(c.Name, other.Name),
		cmp.Compare(c.ID, other.ID),
	) < 0
}

// Equal compares name and ID. The log is not part of identity.
func (c *Customer) Equal(other *Customer) bool {
	return c.Name == other.Name && c.ID == other.ID
}

// Render returns the header line followed by one line per log entry.
func (c *Customer) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Customer transaction log for: %03d, %s\n", c.ID, c.Name)
	if len(c.Log) == 0 {
		b.WriteString("This customer has no logged transactions.\n")
	}
	for _, e := range c.Log {
		b.WriteString(e.Direction.prefix())
		b.WriteString(e.Item.Render())
		b.WriteByte('\n')
	}
	return b.String()
}

// newEntryID generates a UUID v7 for a log entry.
func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
