// Package nomcode enumerates the nomenclatural codes a scientific name can
// be governed by.
package nomcode

import "strings"

// Code is a nomenclatural code.
type Code int

const (
	Unknown Code = iota
	Bacterial
	Botanical
	Cultivars
	Virus
	Zoological
)

var codeNames = []string{
	"",
	"bacterial",
	"botanical",
	"cultivars",
	"virus",
	"zoological",
}

func (c Code) String() string {
	if c < Unknown || c > Zoological {
		return ""
	}
	return codeNames[c]
}

// New converts a string to a Code. It accepts full names and the usual
// shorthands (icn, icnp, icncp, iczn, icvcn). Unrecognised input maps to
// Unknown.
func New(s string) Code {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bacterial", "icnp", "icnb", "bact":
		return Bacterial
	case "botanical", "icn", "icbn", "bot":
		return Botanical
	case "cultivars", "icncp", "cult":
		return Cultivars
	case "virus", "icvcn", "viral":
		return Virus
	case "zoological", "iczn", "zoo":
		return Zoological
	}
	return Unknown
}
