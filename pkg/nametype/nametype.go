// Package nametype classifies name strings into the recognised kinds of
// input a name parser encounters.
package nametype

// NameType is the parser's classification of an input string.
type NameType int

const (
	// NoName marks strings that carry no parsable name at all.
	NoName NameType = iota
	// Placeholder marks strings like "incertae sedis" or "unknown" used in
	// lieu of a real name.
	Placeholder
	// Informal marks names with qualified or provisional material, e.g.
	// "Abies cf. alba".
	Informal
	// OTU marks operational taxonomic unit identifiers (BOLD, UNITE).
	OTU
	// HybridFormula marks two parent names joined by a hybrid sign; these
	// are not decomposable into a single parsed name.
	HybridFormula
	// Virus marks virus, viroid, phage and similar names that follow no
	// Linnaean grammar.
	Virus
	// Scientific marks regular Linnaean names.
	Scientific
)

var nameTypeNames = []string{
	"no name",
	"placeholder",
	"informal",
	"otu",
	"hybrid formula",
	"virus",
	"scientific",
}

func (nt NameType) String() string {
	if nt < NoName || nt > Scientific {
		return "no name"
	}
	return nameTypeNames[nt]
}

// Parsable reports whether the type can produce a structured name record.
func (nt NameType) Parsable() bool {
	return nt == Scientific || nt == Informal
}
