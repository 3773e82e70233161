// Package manifest owns the spin-clean.toml application manifest.
//
// Ownership boundary:
// - component, build and clean schema
//
// - strict decoding and symmetric encoding
//
// - starter manifest template
package manifest
