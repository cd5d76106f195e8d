package rank

import "strings"

// markerRanks maps rank marker literals, as they appear inside scientific
// names, to their canonical rank. Markers are stored without a trailing dot;
// lookup strips one. Ambiguous markers ("f." is form botanically but also the
// filius suffix of an author) are resolved by the grammar, not here.
var markerRanks = map[string]Rank{
	"subsp":    Subspecies,
	"ssp":      Subspecies,
	"sspec":    Subspecies,
	"var":      Variety,
	"v":        Variety,
	"subvar":   Subvariety,
	"subv":     Subvariety,
	"f":        Form,
	"fo":       Form,
	"fa":       Form,
	"forma":    Form,
	"form":     Form,
	"subf":     Subform,
	"subform":  Subform,
	"sp":       Species,
	"spec":     Species,
	"species":  Species,
	"agg":      SpeciesAggregate,
	"aggr":     SpeciesAggregate,
	"sect":     Section,
	"section":  Section,
	"subsect":  Subsection,
	"ser":      Series,
	"serie":    Series,
	"subser":   Subseries,
	"subg":     Subgenus,
	"subgen":   Subgenus,
	"subgenus": Subgenus,
	"sg":       Subgenus,
	"fam":      Family,
	"subfam":   Subfamily,
	"trib":     Tribe,
	"subtrib":  Subtribe,
	"supertrib": Supertribe,
	"gx":       Grex,
	"grex":     Grex,
	"cv":       Cultivar,
	"convar":   Convariety,
	"proles":   Proles,
	"prole":    Proles,
	"natio":    Natio,
	"ab":       Aberration,
	"aberr":    Aberration,
	"morph":    Morph,
	"morpha":   Morph,
	"pv":       Pathovar,
	"pathovar": Pathovar,
	"biovar":   Biovar,
	"chemovar": Chemovar,
	"morphovar": Morphovar,
	"phagovar": Phagovar,
	"serovar":  Serovar,
	"strain":   Strain,
	"str":      Strain,
}

// FromMarker resolves a rank marker ("subsp.", "var.", "f.") to its Rank.
// A "notho" prefix is tolerated and stripped. The second return value
// reports whether the marker was recognised.
func FromMarker(marker string) (Rank, bool) {
	m := strings.ToLower(strings.TrimSpace(marker))
	m = strings.TrimSuffix(m, ".")
	m = strings.TrimPrefix(m, "notho")
	m = strings.TrimPrefix(m, "n-")
	r, ok := markerRanks[m]
	return r, ok
}

// Markers returns all known marker literals, longest first, for deterministic
// assembly of regular expression alternations.
func Markers() []string {
	res := make([]string, 0, len(markerRanks))
	for m := range markerRanks {
		res = append(res, m)
	}
	// longest first so "subsect" wins over "subs"+garbage, then lexical for
	// a stable pattern
	for i := 1; i < len(res); i++ {
		for j := i; j > 0; j-- {
			a, b := res[j-1], res[j]
			if len(b) > len(a) || (len(b) == len(a) && b < a) {
				res[j-1], res[j] = b, a
			} else {
				break
			}
		}
	}
	return res
}

// botanicalSuffixRanks and zoologicalSuffixRanks map monomial endings to the rank they conventionally denote.
// Botanical and zoological conventions differ; see FromSuffix.
var botanicalSuffixRanks = []struct {
	suffix string
	rank   Rank
}{
	{"mycetidae", Subclass},
	{"phycidae", Subclass},
	{"mycetes", Class},
	{"phyceae", Class},
	{"mycota", Phylum},
	{"phyta", Phylum},
	{"oideae", Subfamily},
	{"aceae", Family},
	{"ineae", Suborder},
	{"ales", Order},
	{"eae", Tribe},
}

var zoologicalSuffixRanks = []struct {
	suffix string
	rank   Rank
}{
	{"oidea", Superfamily},
	{"idae", Family},
	{"inae", Subfamily},
	{"ini", Tribe},
	{"ina", Subtribe},
}

// FromSuffix infers a rank from the ending of a monomial. Botanical endings
// are tried first unless zoological is true. Returns Unranked when nothing
// matches.
func FromSuffix(monomial string, zoological bool) Rank {
	s := strings.ToLower(monomial)
	first, second := botanicalSuffixRanks, zoologicalSuffixRanks
	if zoological {
		first, second = zoologicalSuffixRanks, botanicalSuffixRanks
	}
	for _, sr := range first {
		if strings.HasSuffix(s, sr.suffix) {
			return sr.rank
		}
	}
	for _, sr := range second {
		if strings.HasSuffix(s, sr.suffix) {
			return sr.rank
		}
	}
	return Unranked
}
