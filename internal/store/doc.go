// Package store composes hashing with ordering. Inventory partitions
// collectibles into hash buckets, one ordered tree per kind. Registry keeps
// customers addressable by ID and enumerable by name.
//
// Neither store is safe for concurrent use.
package store
