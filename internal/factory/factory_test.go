package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/curio/pkg/types"
)

func TestCreate(t *testing.T) {
	f := New()

	tests := []struct {
		name     string
		record   string
		wantKind types.Kind
		wantName string
		wantErr  error
	}{
		{
			name:     "sports card",
			record:   "S, 9, 1989, Near Mint, Ken Griffey Jr., Upper Deck",
			wantKind: types.KindSportsCard,
			wantName: "Ken Griffey Jr.",
		},
		{
			name:     "comic book",
			record:   "C, 1, 1938, Mint, Superman, DC",
			wantKind: types.KindComicBook,
			wantName: "Superman",
		},
		{
			name:     "coin",
			record:   "M, 3, 2001, 65, Lincoln Cent",
			wantKind: types.KindCoin,
			wantName: "Lincoln",
		},
		{
			name:     "leading whitespace",
			record:   "   M, 3, 2001, 65, Lincoln Cent",
			wantKind: types.KindCoin,
			wantName: "Lincoln",
		},
		{
			name:    "unknown tag",
			record:  "Z, 1, 2000, Mint, Thing, Maker",
			wantErr: types.ErrUnknownKind,
		},
		{
			name:    "lowercase tag is not registered",
			record:  "s, 9, 1989, Near Mint, Ken Griffey Jr., Upper Deck",
			wantErr: types.ErrUnknownKind,
		},
		{
			name:    "empty record",
			record:  "   ",
			wantErr: types.ErrInvalidRecord,
		},
		{
			name:    "known tag with bad fields",
			record:  "S, nine, 1989, Near Mint, Ken Griffey Jr., Upper Deck",
			wantErr: types.ErrInvalidRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := f.Create(tt.record)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, c.Kind)
			assert.Equal(t, tt.wantName, c.Name)
		})
	}
}

func TestCreateReturnsFreshEntities(t *testing.T) {
	f := New()
	a, err := f.Create("C, 1, 1938, Mint, Superman, DC")
	require.NoError(t, err)
	b, err := f.Create("C, 1, 1938, Mint, Superman, DC")
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.True(t, a.Equal(b))
}

func TestTags(t *testing.T) {
	assert.Equal(t, []byte{'M', 'C', 'S'}, New().Tags())
}
