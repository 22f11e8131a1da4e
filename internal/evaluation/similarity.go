package evaluation

import (
	"math"
	"strings"
	"unicode"
)

// Tokenize lowercases the text and splits on non-alphanumeric boundaries.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// CosineSimilarity compares two texts as sparse term-frequency vectors.
// Defined as 1.0 when both texts tokenize to empty (identical emptiness) and
// 0.0 when exactly one does. Always within [0, 1].
func CosineSimilarity(a, b string) float64 {
	tokensA := Tokenize(a)
	tokensB := Tokenize(b)

	switch {
	case len(tokensA) == 0 && len(tokensB) == 0:
		return 1.0
	case len(tokensA) == 0 || len(tokensB) == 0:
		return 0.0
	}

	vecA := termFrequencies(tokensA)
	vecB := termFrequencies(tokensB)

	var dot, magA, magB float64
	for term, countA := range vecA {
		dot += float64(countA * vecB[term])
		magA += float64(countA * countA)
	}
	for _, countB := range vecB {
		magB += float64(countB * countB)
	}
	if magA == 0 || magB == 0 {
		return 0.0
	}
	// Single Sqrt over the product keeps self-comparison exact: magA*magB is
	// then a perfect square of an integer-valued float, so the division yields
	// exactly 1.0. The clamp covers residual float error on unequal texts.
	return math.Min(1.0, dot/math.Sqrt(magA*magB))
}

func termFrequencies(tokens []string) map[string]int {
	freq := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		freq[tok]++
	}
	return freq
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
