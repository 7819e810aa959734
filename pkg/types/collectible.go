package types

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Kind identifies one collectible variant.
type Kind uint8

// Collectible kinds. KindUnknown is the zero value and never parses.
const (
	KindUnknown Kind = iota
	KindCoin
	KindComicBook
	KindSportsCard
)

// kindInfo holds the per-kind constants: record tag, display descriptor,
// and the sentinel field values used by NewDefault.
var kindInfo = [...]struct {
	tag        byte
	descriptor string
	name       string
	typ        string
	grade      string
}{
	KindUnknown:    {'@', "Collectible", "NULL_COLLECTIBLE", "NULL_TYPE", "NULL_GRADE"},
	KindCoin:       {'M', "Coin", "NULL_COIN_NAME", "NULL_COIN_TYPE", "NULL_COIN_GRADE"},
	KindComicBook:  {'C', "Comic Book", "NULL_COMIC_TITLE", "NULL_COMIC_PUBLISHER", "NULL_COMIC_GRADE"},
	KindSportsCard: {'S', "Sports Card", "NULL_CARD_PLAYER", "NULL_CARD_MANUFACTURER", "NULL_CARD_GRADE"},
}

// Kinds lists the parseable kinds in tag registration order.
var Kinds = []Kind{KindCoin, KindComicBook, KindSportsCard}

// Default field values shared by every kind.
const (
	DefaultStock = -1
	DefaultYear  = 2077
)

func (k Kind) index() int {
	if int(k) >= len(kindInfo) {
		return int(KindUnknown)
	}
	return int(k)
}

// Tag returns the single-character record tag of the kind.
func (k Kind) Tag() byte { return kindInfo[k.index()].tag }

// Descriptor returns the display label of the kind.
func (k Kind) Descriptor() string { return kindInfo[k.index()].descriptor }

func (k Kind) String() string { return k.Descriptor() }

// MarshalText encodes the kind as its descriptor.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.Descriptor()), nil }

// UnmarshalText decodes a descriptor written by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for _, kind := range Kinds {
		if kind.Descriptor() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, text)
}

// KindForTag returns the kind registered under tag.
func KindForTag(tag byte) (Kind, bool) {
	for _, k := range Kinds {
		if k.Tag() == tag {
			return k, true
		}
	}
	return KindUnknown, false
}

// Collectible is a stocked item of one kind. Identity is every field except
// Stock; Stock is the only mutable field.
type Collectible struct {
	Kind  Kind   `json:"kind"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Grade string `json:"grade"`
	Year  int    `json:"year"`
	Stock int    `json:"stock"`
}

// NewDefault returns a collectible carrying the sentinel values of kind.
func NewDefault(kind Kind) *Collectible {
	info := kindInfo[kind.index()]
	return &Collectible{
		Kind:  kind,
		Name:  info.name,
		Type:  info.typ,
		Grade: info.grade,
		Year:  DefaultYear,
		Stock: DefaultStock,
	}
}

// ParseCollectible builds a collectible of kind from a record of the form
//
//	<tag>, <stock>, <year>, <grade>, <tail...>
//
// Coins carry a single tail field whose first word is the name and whose
// remainder is the type. Comic books and sports cards carry two tail
// fields, name then type.
func ParseCollectible(kind Kind, record string) (*Collectible, error) {
	if kind == KindUnknown {
		return nil, ErrUnknownKind
	}
	fields := splitRecord(record)
	if len(fields) < 5 {
		return nil, fmt.Errorf("%w: %s needs at least 5 fields, got %d", ErrInvalidRecord, kind, len(fields))
	}
	if len(fields[0]) != 1 || fields[0][0] != kind.Tag() {
		return nil, fmt.Errorf("%w: tag %q does not match %s", ErrInvalidRecord, fields[0], kind)
	}

	stock, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: stock %q: %v", ErrInvalidRecord, fields[1], err)
	}
	if stock < 0 {
		return nil, fmt.Errorf("%w: stock %d is negative", ErrInvalidRecord, stock)
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: year %q: %v", ErrInvalidRecord, fields[2], err)
	}

	c := &Collectible{Kind: kind, Grade: fields[3], Year: year, Stock: stock}

	switch kind {
	case KindCoin:
		if len(fields) != 5 {
			return nil, fmt.Errorf("%w: %s takes name and type in one field, got %d fields", ErrInvalidRecord, kind, len(fields))
		}
		name, typ, _ := strings.Cut(fields[4], " ")
		c.Name, c.Type = name, strings.TrimSpace(typ)
	default:
		if len(fields) < 6 {
			return nil, fmt.Errorf("%w: %s needs name and type fields", ErrInvalidRecord, kind)
		}
		c.Name = fields[4]
		c.Type = strings.Join(fields[5:], ", ")
	}
	return c, nil
}

// splitRecord splits a comma-separated record and trims each field.
func splitRecord(record string) []string {
	parts := strings.Split(strings.TrimSpace(record), ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Hash returns the bucket index of the collectible's kind. All collectibles
// of one kind share a bucket.
func (c *Collectible) Hash() int {
	return checksum(c.Kind.Descriptor())
}

// Less orders collectibles of the same kind along the kind's field chain:
//
//	Coin:        type, year, grade
//	Comic Book:  type, name, year, grade
//	Sports Card: name, year, type, grade
//
// Coins break remaining ties on name so that Less and Equal stay total.
// Comparing different kinds is logged with ErrKindMismatch and returns
// false; callers must not rely on cross-kind order.
func (c *Collectible) Less(other *Collectible) bool {
	if c.Kind != other.Kind {
		zap.L().Warn("collectible comparison",
			zap.Stringer("left", c.Kind),
			zap.Stringer("right", other.Kind),
			zap.Error(ErrKindMismatch))
		return false
	}
	return c.compare(other) < 0
}

func (c *Collectible) compare(o *Collectible) int {
	switch c.Kind {
	case KindCoin:
		return cmp.Or(
			cmp.Compare(c.Type, o.Type),
			cmp.Compare(c.Year, o.Year),
			cmp.Compare(c.Grade, o.Grade),
			cmp.Compare(c.Name, o.Name),
		)
	case KindComicBook:
		return cmp.Or(
			cmp.Compare(c.Type, o.Type),
			cmp.Compare(c.Name, o.Name),
			cmp.Compare(c.Year, o.Year),
			cmp.Compare(c.Grade, o.Grade),
		)
	case KindSportsCard:
		return cmp.Or(
			cmp.Compare(c.Name, o.Name),
			cmp.Compare(c.Year, o.Year),
			cmp.Compare(c.Type, o.Type),
			cmp.Compare(c.Grade, o.Grade),
		)
	default:
		return 0
	}
}

// Equal compares kind, name, type, grade and year. Stock is ignored.
func (c *Collectible) Equal(other *Collectible) bool {
	if c == other {
		return true
	}
	return c.Kind == other.Kind &&
		c.Name == other.Name &&
		c.Type == other.Type &&
		c.Grade == other.Grade &&
		c.Year == other.Year
}

// UpdateStock adds delta to Stock. A change that would leave Stock negative
// is rejected with ErrOutOfStock and Stock keeps its prior value.
func (c *Collectible) UpdateStock(delta int) error {
	if c.Stock+delta < 0 {
		return fmt.Errorf("%w: %s %q has %d, change %d", ErrOutOfStock, c.Kind, c.Name, c.Stock, delta)
	}
	c.Stock += delta
	return nil
}

// Render returns the fixed-width display line: descriptor, name, type,
// grade, year, stock.
func (c *Collectible) Render() string {
	return fmt.Sprintf("%-16s%-16s%-12s%-12s%-7d%-7d",
		c.Kind.Descriptor()+":", c.Name, c.Type, c.Grade, c.Year, c.Stock)
}

func (c *Collectible) String() string { return c.Render() }
