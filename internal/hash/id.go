// Package hash provides xxHash64 identities for compound entry names.
//
// The safe writer tracks the names already written to a TAG_Compound by
// hashed identity rather than by retained string, keeping the per-frame
// bookkeeping small for compounds with many long names.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
