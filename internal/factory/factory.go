// Package factory turns serialized collectible records into entities by
// dispatching on the record's leading kind tag.
package factory

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/curio/pkg/types"
)

// ParseFunc builds a collectible from a full record, tag included.
type ParseFunc func(record string) (*types.Collectible, error)

// Factory maps kind tags to parse functions. The table is filled by New and
// never changes afterwards, so a Factory is safe to share.
type Factory struct {
	parsers map[byte]ParseFunc
}

// New returns a factory with every kind in types.Kinds registered.
func New() *Factory {
	f := &Factory{parsers: make(map[byte]ParseFunc, len(types.Kinds))}
	for _, k := range types.Kinds {
		f.parsers[k.Tag()] = parserFor(k)
	}
	return f
}

func parserFor(kind types.Kind) ParseFunc {
	return func(record string) (*types.Collectible, error) {
		return types.ParseCollectible(kind, record)
	}
}

// Create reads the leading tag of record and parses it with the matching
// registered parser. Unregistered tags return types.ErrUnknownKind and no
// entity; the caller skips the record.
func (f *Factory) Create(record string) (*types.Collectible, error) {
	record = strings.TrimSpace(record)
	if record == "" {
		return nil, fmt.Errorf("%w: empty record", types.ErrInvalidRecord)
	}
	parse, ok := f.parsers[record[0]]
	if !ok {
		return nil, fmt.Errorf("%w: tag %q", types.ErrUnknownKind, record[0])
	}
	return parse(record)
}

// Tags returns the registered tags.
func (f *Factory) Tags() []byte {
	tags := make([]byte, 0, len(f.parsers))
	for _, k := range types.Kinds {
		if _, ok := f.parsers[k.Tag()]; ok {
			tags = append(tags, k.Tag())
		}
	}
	return tags
}
