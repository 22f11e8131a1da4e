package profile

import (
	"fmt"
	"sort"

	"consentlens/internal/consent"
)

// Profile holds one user's data across the consented categories.
type Profile struct {
	UserID          string            `json:"user_id"`
	PurchaseHistory []string          `json:"purchase_history"`
	Preferences     map[string]string `json:"preferences"`
	Activity        []string          `json:"activity"`
}

// CategoryData returns the profile's data for a category as an ordered slice.
// Preferences are rendered as sorted "key: value" pairs so every read of the
// same profile yields identical data, which downstream generation depends on.
func (p Profile) CategoryData(category consent.DataCategory) []string {
	switch category {
	case consent.CategoryPurchaseHistory:
		return append([]string{}, p.PurchaseHistory...)
	case consent.CategoryPreferences:
		keys := make([]string, 0, len(p.Preferences))
		for k := range p.Preferences {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]string, 0, len(keys))
		for _, k := range keys {
			out = append(out, fmt.Sprintf("%s: %s", k, p.Preferences[k]))
		}
		return out
	case consent.CategoryActivity:
		return append([]string{}, p.Activity...)
	default:
		return nil
	}
}
