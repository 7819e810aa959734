package types

// BucketCount is the number of hash buckets in the collectible store.
// It is the next prime after the number of letter tags.
const BucketCount = 29

// CustomerCapacity bounds customer IDs: 0 <= id < CustomerCapacity.
const CustomerCapacity = 1000

// Entity is the capability every storable record implements. T is the
// concrete pointer type, so Less and Equal only accept the same type.
type Entity[T any] interface {
	// Hash returns the bucket index of the entity.
	Hash() int

	// Less reports whether the entity sorts before other.
	Less(other T) bool

	// Equal reports whether the entity has the same identity as other.
	// Mutable state (stock, logs) is not part of identity.
	Equal(other T) bool

	// Render returns the display form of the entity.
	Render() string
}

var (
	_ Entity[*Collectible] = (*Collectible)(nil)
	_ Entity[*Customer]    = (*Customer)(nil)
)

// checksum sums each byte of s modulo 3 and reduces the total into
// [0, BucketCount). Distinct descriptors may collide.
func checksum(s string) int {
	sum := 0
	for i := 0; i < len(s); i++ {
		sum += int(s[i]) % 3
	}
	return sum % BucketCount
}
