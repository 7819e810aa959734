// Package curio holds build metadata for the curio tool.
package curio

// Version is the curio release version.
const Version = "0.1.0"

// ModulePath is the Go module path.
const ModulePath = "github.com/mesh-intelligence/curio"
