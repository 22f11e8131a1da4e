package generation

import (
	"fmt"
	"math"
	"strings"

	"consentlens/internal/access"
	"consentlens/internal/consent"
)

// Engine is the deterministic mock generation pipeline. Identical
// (prompt, bundle) inputs always yield byte-identical output and confidence,
// which is what makes what-if comparisons meaningful.
//
// The output is a total function over the power set of the category
// enumeration: every one of the 8 grant combinations takes its own branch, so
// output reflects exactly which categories were accessible rather than
// keyword overlap with the prompt.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

const (
	// baseConfidence is the floor reported when no data is accessible.
	baseConfidence = 0.30
	// confidencePerItem scales confidence with the amount of accessible data.
	confidencePerItem = 0.08
	// maxConfidence caps the score below certainty; this is a mock pipeline.
	maxConfidence = 0.95
)

// Generate produces the output text, confidence, and full attribution for the
// gated bundle. Attribution covers every enumerated category, not just bundle
// members: blocked categories appear with WasBlocked=true and empty DataUsed.
func (e *Engine) Generate(prompt string, bundle access.Bundle) (string, float64, []Attribution) {
	output := e.compose(prompt, bundle)
	confidence := e.confidence(bundle)

	attribution := make([]Attribution, 0, len(consent.Categories))
	for _, category := range consent.Categories {
		if data, ok := bundle[category]; ok {
			attribution = append(attribution, Attribution{
				Category:   category,
				DataUsed:   append([]string{}, data...),
				WasBlocked: false,
			})
		} else {
			attribution = append(attribution, Attribution{
				Category:   category,
				DataUsed:   []string{},
				WasBlocked: true,
			})
		}
	}
	return output, confidence, attribution
}

// confidence is monotonically non-decreasing under subset inclusion: granting
// an extra category can only add data points.
func (e *Engine) confidence(bundle access.Bundle) float64 {
	items := 0
	for _, category := range consent.Categories {
		items += len(bundle[category])
	}
	return round2(math.Min(maxConfidence, baseConfidence+float64(items)*confidencePerItem))
}

// compose branches on the exact combination of accessible categories. Each of
// the 8 combinations produces observably distinct text in both intent modes.
func (e *Engine) compose(prompt string, bundle access.Bundle) string {
	purchases := bundle[consent.CategoryPurchaseHistory]
	prefs := bundle[consent.CategoryPreferences]
	activity := bundle[consent.CategoryActivity]

	hasPurchases := bundle.Has(consent.CategoryPurchaseHistory)
	hasPrefs := bundle.Has(consent.CategoryPreferences)
	hasActivity := bundle.Has(consent.CategoryActivity)

	if wantsRecommendation(prompt) {
		switch {
		case hasPurchases && hasPrefs && hasActivity:
			return fmt.Sprintf(
				"Based on your complete profile, I can provide highly personalized recommendations. "+
					"Your purchases (%s), preferences (%s), and recent activity (%s) all point to "+
					"complementary accessories and products tailored to you.",
				head(purchases, 2), head(prefs, 2), last(activity))
		case hasPurchases && hasPrefs:
			return fmt.Sprintf(
				"Based on your purchase history (%s) and preferences (%s), I can suggest related "+
					"products. Access to your recent activity would help me understand your current "+
					"interests better.",
				head(purchases, 2), head(prefs, 2))
		case hasPurchases && hasActivity:
			return fmt.Sprintf(
				"Based on your purchases (%s) and recent activity (%s), I can recommend products. "+
					"Access to your preferences would let me personalize the experience further.",
				head(purchases, 2), last(activity))
		case hasPrefs && hasActivity:
			return fmt.Sprintf(
				"I can see your preferences (%s) and recent activity (%s), but without your purchase "+
					"history I can only offer general recommendations rather than personalized product "+
					"suggestions.",
				head(prefs, 2), last(activity))
		case hasPurchases:
			return fmt.Sprintf(
				"Based only on your purchase history (%s), I can recommend related items. Without "+
					"preferences or activity data, personalization is limited.",
				head(purchases, 2))
		case hasPrefs:
			return fmt.Sprintf(
				"I can see your preferences (%s), but without purchase history or activity data I can "+
					"only provide generic suggestions.",
				head(prefs, 2))
		case hasActivity:
			return fmt.Sprintf(
				"Based on your recent activity (%s), I can suggest some options, but without purchase "+
					"history or preferences my recommendations will be quite limited.",
				head(activity, 2))
		default:
			return "I'd be happy to recommend products, but I don't have access to your purchase " +
				"history, preferences, or activity data. Grant consent to these categories for " +
				"personalized recommendations."
		}
	}

	switch {
	case hasPurchases && hasPrefs && hasActivity:
		return fmt.Sprintf(
			"I have full access to your profile with %d purchases, %d preferences, and %d activity "+
				"events. I can provide comprehensive assistance.",
			len(purchases), len(prefs), len(activity))
	case hasPurchases && hasPrefs:
		return fmt.Sprintf(
			"I have access to your purchase history (%d items) and preferences (%d settings), but "+
				"I'm missing your activity data. Granting it would improve my responses.",
			len(purchases), len(prefs))
	case hasPurchases && hasActivity:
		return fmt.Sprintf(
			"I have access to your purchase history (%d items) and activity (%d events), but I'm "+
				"missing your preferences. Granting them would improve my responses.",
			len(purchases), len(activity))
	case hasPrefs && hasActivity:
		return fmt.Sprintf(
			"I have access to your preferences (%d settings) and activity (%d events), but I'm "+
				"missing your purchase history. Granting it would improve my responses.",
			len(prefs), len(activity))
	case hasPurchases:
		return fmt.Sprintf(
			"I have access to your purchase history (%d items) only. Preferences and activity are "+
				"blocked by consent.",
			len(purchases))
	case hasPrefs:
		return fmt.Sprintf(
			"I have access to your preferences (%d settings) only. Purchase history and activity "+
				"are blocked by consent.",
			len(prefs))
	case hasActivity:
		return fmt.Sprintf(
			"I have access to your activity (%d events) only. Purchase history and preferences are "+
				"blocked by consent.",
			len(activity))
	default:
		return "I can help you, but I have no access to your data. Consider granting consent to " +
			"purchase history, preferences, or activity for better assistance."
	}
}

func wantsRecommendation(prompt string) bool {
	p := strings.ToLower(prompt)
	return strings.Contains(p, "recommend") || strings.Contains(p, "suggest") || strings.Contains(p, "based on")
}

func head(items []string, n int) string {
	if len(items) == 0 {
		return "none"
	}
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}

func last(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return items[len(items)-1]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
