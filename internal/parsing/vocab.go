// Package parsing implements the name-parsing engine: vocabulary tables,
// the regex atom library, the normalisation pipeline and the parsing jobs.
// This is a pure package - parsing is computation, not I/O.
package parsing

// set is a string set literal helper.
type set map[string]struct{}

func newSet(words ...string) set {
	res := make(set, len(words))
	for _, w := range words {
		res[w] = struct{}{}
	}
	return res
}

func (s set) has(w string) bool {
	_, ok := s[w]
	return ok
}

// epithetBlacklist holds lower-case tokens that look like epithets but never
// are. A captured epithet found here is dropped and the name is flagged
// indetermined.
var epithetBlacklist = newSet(
	"sp", "ssp", "spp", "spec", "species", "subsp",
	"cf", "cfr", "conf", "aff", "nr", "sect",
	"indet", "ined", "inedit", "nov", "nova", "novum",
	"cv", "hort", "mihi", "group", "complex", "agg", "strain",
)

// nullEpithets are literal database artefacts in epithet position.
var nullEpithets = newSet("null", "none", "nil", "na")

// authorParticles are the lower-case name particles that may precede an
// author surname. A captured epithet found here means the grammar mistook
// an authorship for an epithet and the reduced patterns are retried.
var authorParticles = newSet(
	"van", "von", "vander", "vanden", "vant",
	"de", "del", "della", "delle", "den", "der", "des",
	"di", "da", "du", "dos", "das", "do",
	"la", "le", "les", "ter", "ten", "zur", "zum", "zu",
	"af", "av", "ab", "bis", "ex",
)

// placeholderNames are whole strings used in lieu of a real name.
var placeholderNames = newSet(
	"incertae sedis", "inc. sed.", "inc.sed.",
	"unknown", "unidentified", "unidentifiable", "unnamed", "unassigned",
	"unallocated", "unplaced", "undetermined", "unspecified", "uncultured",
	"not assigned", "not named", "awaiting allocation",
	"none", "null", "no name", "missing", "temp", "dummy", "mixed",
	"miscellaneous", "various", "undet", "indet",
	"?", "??", "???", "*", "-", "--", "∅", "na", "n/a",
)

// placeholderPrefixes mark a placeholder even when more text follows,
// e.g. "unassigned Asteraceae".
var placeholderPrefixes = []string{
	"unknown", "unidentified", "unassigned", "unallocated", "undetermined",
	"uncultured", "incertae sedis", "not assigned", "awaiting allocation",
}

// qualifierMarkers are identification qualifiers that make a name informal
// rather than indetermined.
var qualifierMarkers = newSet("cf", "cfr", "conf", "aff", "nr")

// indetMarkers terminate an indetermined name in place of its epithet.
var indetMarkers = newSet("sp", "spec", "species", "ssp", "subsp", "var",
	"subvar", "f", "forma", "subg", "subgen", "sect", "subsect", "ser",
	"indet")
