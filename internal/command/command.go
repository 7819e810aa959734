// Package command parses transaction records and applies them to the
// inventory and customer registry.
//
// A command record is a tag followed by comma-separated arguments:
//
//	B, 001, S, 1989, Near Mint, Ken Griffey Jr., Upper Deck   buy from customer 001
//	S, 001, S, 1989, Near Mint, Ken Griffey Jr., Upper Deck   sell to customer 001
//	D                                                           display inventory
//	C, 001                                                      show customer 001's log
//	H                                                           show every customer's log
package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/curio/pkg/types"
)

// Command tags.
const (
	TagBuy      byte = 'B'
	TagSell     byte = 'S'
	TagDisplay  byte = 'D'
	TagCustomer byte = 'C'
	TagHistory  byte = 'H'
)

// Command is one parsed command record.
type Command struct {
	Tag byte

	// CustomerID is set for buy, sell and customer commands.
	CustomerID int

	// Item is the collectible record a buy or sell refers to, rewritten with
	// a stock of 1 so the factory can parse it as a lookup.
	Item string
}

// Parse splits a command record into its tag and arguments. It does not
// check that the tag is known; the processor does that.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, fmt.Errorf("%w: empty command", types.ErrInvalidRecord)
	}

	tagField, rest, _ := strings.Cut(line, ",")
	tagField = strings.TrimSpace(tagField)
	if len(tagField) != 1 {
		return Command{}, fmt.Errorf("%w: command tag %q", types.ErrUnknownCommand, tagField)
	}
	cmd := Command{Tag: tagField[0]}

	switch cmd.Tag {
	case TagBuy, TagSell:
		idField, item, ok := strings.Cut(rest, ",")
		if !ok {
			return Command{}, fmt.Errorf("%w: %q has no item", types.ErrInvalidRecord, line)
		}
		id, err := parseID(idField)
		if err != nil {
			return Command{}, err
		}
		lookup, err := lookupRecord(item)
		if err != nil {
			return Command{}, err
		}
		cmd.CustomerID = id
		cmd.Item = lookup
	case TagCustomer:
		id, err := parseID(rest)
		if err != nil {
			return Command{}, err
		}
		cmd.CustomerID = id
	}
	return cmd, nil
}

func parseID(field string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("%w: customer id %q", types.ErrInvalidRecord, strings.TrimSpace(field))
	}
	return id, nil
}

// lookupRecord turns "<kind>, <year>, ..." into "<kind>, 1, <year>, ...".
func lookupRecord(item string) (string, error) {
	kindField, tail, ok := strings.Cut(item, ",")
	kindField = strings.TrimSpace(kindField)
	if !ok || kindField == "" {
		return "", fmt.Errorf("%w: item %q", types.ErrInvalidRecord, strings.TrimSpace(item))
	}
	return kindField + ", 1," + tail, nil
}
