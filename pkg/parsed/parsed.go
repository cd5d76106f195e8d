// Package parsed defines the structured records produced by the name parser:
// ParsedName for whole scientific names and ParsedAuthorship for bare
// authorship strings.
package parsed

import (
	"strings"

	"github.com/gnames/gnameparser/pkg/nametype"
	"github.com/gnames/gnameparser/pkg/nomcode"
	"github.com/gnames/gnameparser/pkg/rank"
)

// State describes how much of the input a parse consumed.
type State int

const (
	// None means nothing was matched.
	None State = iota
	// Partial means the grammar matched a prefix and a remainder is kept
	// in Unparsed.
	Partial
	// Complete means the whole input was consumed.
	Complete
)

var stateNames = []string{"none", "partial", "complete"}

func (s State) String() string {
	if s < None || s > Complete {
		return "none"
	}
	return stateNames[s]
}

// NamePart identifies which component of a name a hybrid sign applies to.
type NamePart int

const (
	Generic NamePart = iota + 1
	Infrageneric
	Specific
	Infraspecific
)

var namePartNames = []string{"", "generic", "infrageneric", "specific", "infraspecific"}

func (np NamePart) String() string {
	if np < Generic || np > Infraspecific {
		return ""
	}
	return namePartNames[np]
}

// Authorship is one author group of a name: the authors themselves, authors
// the name was published ex, and the year of publication. Author strings are
// kept verbatim after normalisation.
type Authorship struct {
	Authors   []string `json:"authors,omitempty" yaml:"authors,omitempty"`
	ExAuthors []string `json:"exAuthors,omitempty" yaml:"ex_authors,omitempty"`
	Year      string   `json:"year,omitempty" yaml:"year,omitempty"`
}

// IsEmpty reports whether the authorship carries no information.
func (a Authorship) IsEmpty() bool {
	return len(a.Authors) == 0 && len(a.ExAuthors) == 0 && a.Year == ""
}

// String renders the authorship the conventional way, ex-authors first.
func (a Authorship) String() string {
	var b strings.Builder
	if len(a.ExAuthors) > 0 {
		b.WriteString(joinAuthors(a.ExAuthors))
		b.WriteString(" ex ")
	}
	b.WriteString(joinAuthors(a.Authors))
	if a.Year != "" {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.Year)
	}
	return b.String()
}

func joinAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return authors[0]
	}
	return strings.Join(authors[:len(authors)-1], ", ") + " & " +
		authors[len(authors)-1]
}

// ParsedAuthorship is the structured result of parsing a bare authorship
// string. It is also embedded in ParsedName.
type ParsedAuthorship struct {
	CombinationAuthorship *Authorship `json:"combinationAuthorship,omitempty" yaml:"combination_authorship,omitempty"`
	BasionymAuthorship    *Authorship `json:"basionymAuthorship,omitempty" yaml:"basionym_authorship,omitempty"`
	SanctioningAuthor     string      `json:"sanctioningAuthor,omitempty" yaml:"sanctioning_author,omitempty"`

	TaxonomicNote     string `json:"taxonomicNote,omitempty" yaml:"taxonomic_note,omitempty"`
	NomenclaturalNote string `json:"nomenclaturalNote,omitempty" yaml:"nomenclatural_note,omitempty"`
	PublishedIn       string `json:"publishedIn,omitempty" yaml:"published_in,omitempty"`
	Remarks           string `json:"remarks,omitempty" yaml:"remarks,omitempty"`

	Manuscript bool `json:"manuscript,omitempty" yaml:"manuscript,omitempty"`

	State    State    `json:"state" yaml:"state"`
	Unparsed []string `json:"unparsed,omitempty" yaml:"unparsed,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// AddWarning records a warning once, keeping insertion order.
func (pa *ParsedAuthorship) AddWarning(w string) {
	for _, have := range pa.Warnings {
		if have == w {
			return
		}
	}
	pa.Warnings = append(pa.Warnings, w)
}

// HasWarning reports whether the warning was recorded.
func (pa *ParsedAuthorship) HasWarning(w string) bool {
	for _, have := range pa.Warnings {
		if have == w {
			return true
		}
	}
	return false
}

// AddUnparsed records a leftover fragment and downgrades the state.
func (pa *ParsedAuthorship) AddUnparsed(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	pa.Unparsed = append(pa.Unparsed, s)
	pa.State = Partial
}

// ParsedName is the structured result of parsing a scientific name.
// It is populated by a parsing job and immutable after being returned.
type ParsedName struct {
	Uninomial           string `json:"uninomial,omitempty" yaml:"uninomial,omitempty"`
	Genus               string `json:"genus,omitempty" yaml:"genus,omitempty"`
	InfragenericEpithet string `json:"infragenericEpithet,omitempty" yaml:"infrageneric_epithet,omitempty"`
	SpecificEpithet     string `json:"specificEpithet,omitempty" yaml:"specific_epithet,omitempty"`
	InfraspecificEpithet string `json:"infraspecificEpithet,omitempty" yaml:"infraspecific_epithet,omitempty"`
	CultivarEpithet     string `json:"cultivarEpithet,omitempty" yaml:"cultivar_epithet,omitempty"`
	Strain              string `json:"strain,omitempty" yaml:"strain,omitempty"`
	Phrase              string `json:"phrase,omitempty" yaml:"phrase,omitempty"`

	Notho NamePart      `json:"notho,omitempty" yaml:"notho,omitempty"`
	Rank  rank.Rank     `json:"rank" yaml:"rank"`
	Code  nomcode.Code  `json:"code,omitempty" yaml:"code,omitempty"`

	Type       nametype.NameType `json:"type" yaml:"type"`
	Candidatus bool              `json:"candidatus,omitempty" yaml:"candidatus,omitempty"`
	Doubtful   bool              `json:"doubtful,omitempty" yaml:"doubtful,omitempty"`

	ParsedAuthorship `yaml:",inline"`
}

// Indetermined reports whether the name misses its terminal epithet for the
// rank it claims, e.g. "Abies sp." or "subsp. alpina" without a binomial.
func (pn *ParsedName) Indetermined() bool {
	return pn.HasWarning(WarnIndetermined)
}

// Canonical renders the name back into its canonical string form: epithets,
// hybrid signs, rank marker and authorships, without notes or references.
func (pn *ParsedName) Canonical(withAuthorship bool) string {
	var parts []string
	switch {
	case pn.Uninomial != "":
		u := pn.Uninomial
		if pn.Notho == Generic {
			u = "×" + u
		}
		parts = append(parts, u)
	case pn.Genus != "":
		g := pn.Genus
		if pn.Notho == Generic {
			g = "×" + g
		}
		parts = append(parts, g)
	}
	if pn.InfragenericEpithet != "" {
		ig := pn.InfragenericEpithet
		if pn.Notho == Infrageneric {
			ig = "×" + ig
		}
		parts = append(parts, "("+ig+")")
	}
	if pn.SpecificEpithet != "" {
		ep := pn.SpecificEpithet
		if pn.Notho == Specific {
			ep = "×" + ep
		}
		parts = append(parts, ep)
	}
	if pn.InfraspecificEpithet != "" {
		if m := canonicalMarker(pn.Rank); m != "" {
			parts = append(parts, m)
		}
		ep := pn.InfraspecificEpithet
		if pn.Notho == Infraspecific {
			ep = "×" + ep
		}
		parts = append(parts, ep)
	}
	if pn.CultivarEpithet != "" {
		parts = append(parts, "'"+pn.CultivarEpithet+"'")
	}
	if pn.Phrase != "" {
		parts = append(parts, pn.Phrase)
	}
	if pn.Strain != "" {
		parts = append(parts, pn.Strain)
	}
	if withAuthorship {
		if pn.BasionymAuthorship != nil && !pn.BasionymAuthorship.IsEmpty() {
			parts = append(parts, "("+pn.BasionymAuthorship.String()+")")
		}
		if pn.CombinationAuthorship != nil && !pn.CombinationAuthorship.IsEmpty() {
			auth := pn.CombinationAuthorship.String()
			if pn.SanctioningAuthor != "" {
				auth += " : " + pn.SanctioningAuthor
			}
			parts = append(parts, auth)
		}
	}
	return strings.Join(parts, " ")
}

func canonicalMarker(r rank.Rank) string {
	switch r {
	case rank.Subspecies:
		return "subsp."
	case rank.Variety:
		return "var."
	case rank.Subvariety:
		return "subvar."
	case rank.Form:
		return "f."
	case rank.Subform:
		return "subf."
	case rank.Cultivar:
		return "cv."
	case rank.Grex:
		return "gx"
	case rank.Proles:
		return "proles"
	case rank.Natio:
		return "natio"
	case rank.Aberration:
		return "ab."
	case rank.Morph:
		return "morph"
	case rank.Pathovar:
		return "pv."
	}
	return ""
}
