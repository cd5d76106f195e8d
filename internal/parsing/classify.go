package parsing

import (
	"strings"

	"github.com/gnames/gnameparser/pkg/nametype"
)

// isPlaceholder reports whether the whole string is placeholder vocabulary,
// or opens with a placeholder word ("unassigned Asteraceae").
func isPlaceholder(s string) bool {
	low := strings.ToLower(strings.TrimSpace(s))
	if placeholderNames.has(low) {
		return true
	}
	for _, p := range placeholderPrefixes {
		if low == p || strings.HasPrefix(low, p+" ") {
			return true
		}
	}
	return false
}

// classify picks the most specific NameType for a string the grammar
// rejected. The order goes from the most to the least recognisable kind.
func classify(s string) nametype.NameType {
	t := strings.TrimSpace(s)
	if t == "" {
		return nametype.NoName
	}
	if isPlaceholder(t) {
		return nametype.Placeholder
	}
	if reOTU.MatchString(t) {
		return nametype.OTU
	}
	if reVirus.MatchString(t) {
		return nametype.Virus
	}
	if reHybridFormula.MatchString(t) {
		return nametype.HybridFormula
	}
	if hasInformalMarker(t) {
		return nametype.Informal
	}
	return nametype.NoName
}

// hasInformalMarker looks for identification qualifiers or open
// nomenclature markers anywhere in the string.
func hasInformalMarker(s string) bool {
	for _, f := range strings.Fields(strings.ToLower(s)) {
		f = strings.TrimSuffix(f, ".")
		if qualifierMarkers.has(f) || indetMarkers.has(f) {
			return true
		}
	}
	return false
}
