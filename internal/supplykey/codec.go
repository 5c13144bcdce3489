// Package supplykey implements the "{supplier_id}_{part_id}" composite
// identifier convention used by the supply collection. Several views group
// documents by the supplier half of the key, so the split lives here and
// nowhere else.
package supplykey

import "strings"

// Decode splits a composite key at the first underscore. A key without an
// underscore yields the whole key as the owner and an empty member; callers
// must treat an empty member as unknown. Decode never fails: the keys power
// display-side grouping, so a best-effort split beats an error.
//
// Owners must not contain underscores themselves. Decode always splits at
// the first one, so a key built from such an owner will not round-trip.
func Decode(key string) (ownerID, memberID string) {
	idx := strings.Index(key, "_")
	if idx < 0 {
		return key, ""
	}
	return key[:idx], key[idx+1:]
}

// Encode joins an owner and member id into a composite key. No escaping is
// applied; see the Decode caveat about underscores in the owner.
func Encode(ownerID, memberID string) string {
	return ownerID + "_" + memberID
}
