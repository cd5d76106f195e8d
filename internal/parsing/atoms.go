package parsing

import (
	"strings"

	"github.com/gnames/gnameparser/pkg/rank"
)

// The regex atom library. Atoms are named sub-pattern strings assembled from
// the vocabulary tables into the compiled top-level patterns. All atoms are
// RE2-compatible: no lookarounds, no backreferences. Epithet blacklisting is
// therefore enforced by the extractor, not by the grammar.
const (
	upperChars = `A-ZÀ-ÖØ-ÞĆČĐŁŃŘŚŠŹŻŽ`
	lowerChars = `a-zà-öø-ÿāăąćčďđēėęěīĭłńňōŏőœŕřśšťūŭůűźżž`

	// epithet is a lower-case morpheme of two letters or more; hyphenated
	// epithets are allowed.
	epithet = `[` + lowerChars + `][` + lowerChars + `-]+`

	// monomial is a capitalised genus-like token of two letters or more.
	monomial = `[` + upperChars + `][` + lowerChars + `-]+`

	// authorInitials: one to two capitals with a dot, optionally separated
	// from the next part by a space or hyphen ("H.Karst.", "J. C. Jones").
	authorInitials = `(?:[` + upperChars + `]{1,2}\.[ -]?)*`

	// authorParticlesAtom: lower-case surname particles, each followed by a
	// space; the elided d'/D' attaches directly to the surname.
	authorParticlesAtom = `(?:(?:van de[nr]|van der|van den|vande[nr]?|van|von de[nr]|von|v\.|de la|de los|del|della|delle|den|der|des|de|di|da|du|dos|das|do|la|le|les|ter|ten|zur|zum|zu|af|av) )*(?:[dD]'|St\.? ?|Mac|Mc|O')?`

	// authorSurname: a capitalised word, possibly abbreviated with a
	// trailing dot; all-capital abbreviations like "DC." are allowed.
	authorSurname = `[` + upperChars + `][` + upperChars + lowerChars + `'-]*\.?`

	// authorFilius: the filius/junior suffix of an author.
	authorFilius = `(?: ?(?:f|fil|filius|j|jr|jun|junior)\.)?`

	// authorToken is one author: initials, particles, surname, filius.
	// The lower-case placeholders hort. and anon. also act as authors.
	authorToken = `(?:hort\.|anon\.|` +
		authorInitials + authorParticlesAtom + authorSurname + authorFilius + `)`

	// teamDelim joins authors of one team.
	teamDelim = `(?:\s*[,&;]\s*|\s+(?:et|and|y|und)\s+)`

	// etAlTail closes an open-ended author team.
	etAlTail = `(?:(?:\s*[,&]\s*|\s+et\s+|\s+and\s+)al\.?)?`

	// authorTeam is one or more authors joined by team delimiters.
	authorTeam = authorToken + `(?:` + teamDelim + authorToken + `)*` + etAlTail

	// yearLoose: four digits with the loose decorations met in authorships:
	// brackets, ranges, letter suffixes, question marks.
	yearLoose = `\[?[12][0-9]{3}\]?(?:[-/][0-9]{1,4})?[a-c]?\??`
)

// rankMarkerAtom builds the alternation of the rank markers of the rank
// vocabulary, longest first. Species-level
// markers (sp, spec, species) never occur in epithet-marker position and are
// excluded to keep them from shadowing real epithets.
func rankMarkerAtom() string {
	var alts []string
	for _, m := range rank.Markers() {
		if m == "sp" || m == "spec" || m == "species" {
			continue
		}
		alts = append(alts, m)
	}
	return `(?:notho)?(?:` + strings.Join(alts, "|") + `)`
}

// authorshipAtom builds the three-group authorship fragment
// (ex-team, team, sanctioning author) with the given group-name prefix.
func authorshipAtom(prefix string) string {
	return `(?:(?P<` + prefix + `ex>` + authorTeam + `)\s+ex\.?\s+)?` +
		`(?P<` + prefix + `auth>` + authorTeam + `)` +
		`(?:\s?:\s?(?P<` + prefix + `sanct>` + authorToken + `))?`
}
