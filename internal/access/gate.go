// Package access is the single consent enforcement point. Every path to
// generation, whether a real request or a what-if rerun, resolves its data
// through Resolve with either the live snapshot or a caller-supplied
// hypothetical one; generation code never reads profiles directly.
package access

import (
	"consentlens/internal/consent"
	"consentlens/internal/profile"
)

// Bundle is the consent-filtered view of a profile. A revoked category is
// entirely absent from the map, never present with an empty slice, so
// downstream code can tell "deliberately blocked" from "granted but empty."
type Bundle map[consent.DataCategory][]string

// Has reports whether the category survived the gate.
func (b Bundle) Has(c consent.DataCategory) bool {
	_, ok := b[c]
	return ok
}

// Resolve copies each granted category's data verbatim into the bundle and
// omits revoked (or absent, treated as revoked) categories.
func Resolve(p profile.Profile, snapshot consent.Snapshot) Bundle {
	bundle := make(Bundle)
	for _, category := range consent.Categories {
		if snapshot.Granted(category) {
			bundle[category] = p.CategoryData(category)
		}
	}
	return bundle
}
