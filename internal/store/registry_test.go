package store

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/curio/pkg/types"
)

func loadRegistry(t *testing.T, records ...string) *Registry {
	t.Helper()
	r := NewRegistry()
	for _, rec := range records {
		c, err := types.ParseCustomer(rec)
		require.NoError(t, err)
		require.NoError(t, r.Add(c))
	}
	return r
}

func TestRegistryAdd(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		wantErr error
	}{
		{name: "lowest id", id: 0},
		{name: "highest id", id: types.CustomerCapacity - 1},
		{name: "negative id", id: -1, wantErr: types.ErrInvalidID},
		{name: "id at capacity", id: types.CustomerCapacity, wantErr: types.ErrInvalidID},
		{name: "duplicate id", id: 1, wantErr: types.ErrDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := loadRegistry(t, "001, Existing")
			err := r.Add(types.NewCustomer(tt.id, "Someone"))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 1, r.Len())
				assert.Equal(t, 1, r.byName.Len(), "both views stay in step")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2, r.Len())
			assert.Equal(t, 2, r.byName.Len())
		})
	}
}

func TestRegistrySharesInstances(t *testing.T) {
	r := loadRegistry(t, "001, Ann")

	byID, err := r.Get(1)
	require.NoError(t, err)
	for c := range r.All() {
		assert.Same(t, byID, c)
	}
}

func TestRegistryUpdateLog(t *testing.T) {
	card := &types.Collectible{Kind: types.KindSportsCard, Name: "Ken Griffey Jr.", Type: "Upper Deck", Grade: "Near Mint", Year: 1989, Stock: 10}

	tests := []struct {
		name    string
		id      int
		wantErr error
	}{
		{name: "existing customer", id: 1},
		{name: "unknown customer", id: 2, wantErr: types.ErrNotFound},
		{name: "out of range", id: 1000, wantErr: types.ErrInvalidID},
		{name: "negative", id: -5, wantErr: types.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := loadRegistry(t, "001, Ann")
			err := r.UpdateLog(card, tt.id, types.Bought)

			c, getErr := r.Get(1)
			require.NoError(t, getErr)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, c.Log)
				return
			}
			require.NoError(t, err)
			require.Len(t, c.Log, 1)
			assert.Same(t, card, c.Log[0].Item)
			assert.Equal(t, types.Bought, c.Log[0].Direction)
		})
	}
}

func TestRegistryOutputLog(t *testing.T) {
	r := loadRegistry(t, "001, Ann")

	var buf bytes.Buffer
	require.NoError(t, r.OutputLog(&buf, 1))
	assert.Equal(t, "Customer transaction log for: 001, Ann\nThis customer has no logged transactions.\n\n", buf.String())

	buf.Reset()
	err := r.OutputLog(&buf, 42)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Empty(t, buf.String(), "unknown customer produces no output")

	err = r.OutputLog(&buf, 4200)
	assert.ErrorIs(t, err, types.ErrInvalidID)
	assert.Empty(t, buf.String())
}

func TestRegistryOutputAllAlphabetical(t *testing.T) {
	r := loadRegistry(t, "003, Carol", "001, Bob", "002, Alice", "004, Alice")

	var buf bytes.Buffer
	require.NoError(t, r.OutputAll(&buf))

	var headers []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "Customer transaction log for: ") {
			headers = append(headers, strings.TrimPrefix(line, "Customer transaction log for: "))
		}
	}
	assert.Equal(t, []string{"002, Alice", "004, Alice", "001, Bob", "003, Carol"}, headers)
}

func TestRegistryReset(t *testing.T) {
	r := loadRegistry(t, "001, Ann", "002, Bob")
	r.Reset()

	assert.Equal(t, 0, r.Len())
	_, err := r.Get(1)
	assert.ErrorIs(t, err, types.ErrNotFound)

	var buf bytes.Buffer
	require.NoError(t, r.OutputAll(&buf))
	assert.Empty(t, buf.String())
	require.NoError(t, r.Add(types.NewCustomer(1, "Ann")), "ids are free again after reset")
}
