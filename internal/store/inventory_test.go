package store

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/curio/internal/factory"
	"github.com/mesh-intelligence/curio/pkg/types"
)

const griffey = "S, 9, 1989, Near Mint, Ken Griffey Jr., Upper Deck"

func mustCreate(t *testing.T, record string) *types.Collectible {
	t.Helper()
	c, err := factory.New().Create(record)
	require.NoError(t, err)
	return c
}

func loadInventory(t *testing.T, records ...string) *Inventory {
	t.Helper()
	inv := NewInventory()
	for _, r := range records {
		require.NoError(t, inv.Insert(mustCreate(t, r)))
	}
	return inv
}

func TestInventoryInsertScenario(t *testing.T) {
	inv := loadInventory(t, griffey)

	assert.Equal(t, 1, inv.Len())
	assert.Equal(t, []int{11}, inv.Buckets(), "sports cards live in bucket 11")

	got, err := inv.Retrieve(mustCreate(t, griffey))
	require.NoError(t, err)
	assert.Equal(t, 9, got.Stock)
}

func TestInventoryInsertDuplicate(t *testing.T) {
	inv := loadInventory(t, griffey)

	dup := mustCreate(t, "S, 4, 1989, Near Mint, Ken Griffey Jr., Upper Deck")
	err := inv.Insert(dup)
	assert.ErrorIs(t, err, types.ErrDuplicate)
	assert.Equal(t, 1, inv.Len())

	got, err := inv.Retrieve(dup)
	require.NoError(t, err)
	assert.NotSame(t, dup, got)
	assert.Equal(t, 9, got.Stock, "failed insert does not touch the stored stock")
}

func TestInventoryRejectsForeignKindInBucket(t *testing.T) {
	inv := loadInventory(t, griffey)

	// Alias the card bucket under the coin index to simulate two kinds
	// whose descriptors checksum to the same bucket.
	intruder := &types.Collectible{Kind: types.KindCoin}
	inv.buckets[intruder.Hash()] = inv.buckets[11]

	err := inv.Insert(intruder)
	assert.ErrorIs(t, err, types.ErrKindMismatch)
	assert.Equal(t, 1, inv.buckets[11].items.Len())
}

func TestInventoryUpdateInventory(t *testing.T) {
	tests := []struct {
		name      string
		lookup     string
		delta     int
		wantErr   error
		wantStock int
	}{
		{name: "buy increments", lookup: "S, 1, 1989, Near Mint, Ken Griffey Jr., Upper Deck", delta: 1, wantStock: 10},
		{name: "sell decrements", lookup: "S, 1, 1989, Near Mint, Ken Griffey Jr., Upper Deck", delta: -1, wantStock: 8},
		{name: "sell everything", lookup: griffey, delta: -9, wantStock: 0},
		{name: "oversell rejected", lookup: griffey, delta: -10, wantErr: types.ErrOutOfStock, wantStock: 9},
		{name: "missing item", lookup: "S, 1, 1990, Mint, Ken Griffey Jr., Upper Deck", delta: 1, wantErr: types.ErrNotFound, wantStock: 9},
		{name: "missing bucket", lookup: "C, 1, 1938, Mint, Superman, DC", delta: 1, wantErr: types.ErrNotFound, wantStock: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := loadInventory(t, griffey)
			lookup := mustCreate(t, tt.lookup)
			lookupStock := lookup.Stock

			got, err := inv.UpdateInventory(lookup, tt.delta)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.NotSame(t, lookup, got, "returns the canonical entity")
			}
			assert.Equal(t, lookupStock, lookup.Stock, "lookup is never modified")

			stored, err := inv.Retrieve(mustCreate(t, griffey))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStock, stored.Stock)
		})
	}
}

func TestInventoryAllOrder(t *testing.T) {
	inv := loadInventory(t,
		"S, 1, 2001, Mint, Ichiro, Topps",
		"M, 3, 2001, 65, Lincoln Cent",
		"C, 1, 1938, Mint, Superman, DC",
		"S, 9, 1989, Near Mint, Ken Griffey Jr., Upper Deck",
		"M, 1, 1913, 70, Liberty Nickel",
		"C, 2, 1963, Fine, X-Men, Marvel",
		"C, 1, 1939, Mint, Batman, DC",
	)

	var got []string
	for c := range inv.All() {
		got = append(got, c.Name)
	}
	assert.Equal(t, []string{
		// Coin (bucket 3) by type.
		"Lincoln", "Liberty",
		// Comic Book (bucket 6) by publisher, then title.
		"Batman", "Superman", "X-Men",
		// Sports Card (bucket 11) by player.
		"Ichiro", "Ken Griffey Jr.",
	}, got)
}

func TestInventoryOutputAll(t *testing.T) {
	inv := loadInventory(t,
		"S, 9, 1989, Near Mint, Ken Griffey Jr., Upper Deck",
		"M, 3, 2001, 65, Lincoln Cent",
	)

	var buf bytes.Buffer
	require.NoError(t, inv.OutputAll(&buf))

	coin := mustCreate(t, "M, 3, 2001, 65, Lincoln Cent")
	card := mustCreate(t, griffey)
	assert.Equal(t, coin.Render()+"\n\n"+card.Render()+"\n\n", buf.String())
}

func TestInventoryOutputAllEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewInventory().OutputAll(&buf))
	assert.Empty(t, buf.String())
}

func TestInventoryReset(t *testing.T) {
	inv := loadInventory(t, griffey, "M, 3, 2001, 65, Lincoln Cent")
	inv.Reset()

	assert.Equal(t, 0, inv.Len())
	assert.Empty(t, inv.Buckets())
	_, err := inv.Retrieve(mustCreate(t, griffey))
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestInventoryStockMayReachZeroAndStayEnumerable(t *testing.T) {
	inv := loadInventory(t, "S, 1, 1989, Near Mint, Ken Griffey Jr., Upper Deck")
	_, err := inv.UpdateInventory(mustCreate(t, griffey), -1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, inv.OutputAll(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "Sports Card:"))
	assert.Equal(t, 1, inv.Len())
}
