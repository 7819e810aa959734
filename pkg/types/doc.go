// Package types defines the entity capability, the collectible variant
// family, customers and their transaction logs, configuration, and the
// standard error values for the curio store.
//
// Every storable entity hashes to a bucket index, orders itself against
// entities of the same concrete type, and renders a fixed-width text line.
// Collectibles are a closed set of kinds sharing one struct; comparisons
// switch on the kind tag before delegating to the kind's field chain.
package types
