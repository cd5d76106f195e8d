package parsed

import (
	"fmt"

	"github.com/gnames/gnameparser/pkg/nametype"
)

// UnparsableNameError reports that an input string cannot be expressed as a
// ParsedName, together with the classifier's best guess at what the string
// is. Virus names and hybrid formulas are reported this way by design.
type UnparsableNameError struct {
	Type nametype.NameType
	Name string
}

func (e *UnparsableNameError) Error() string {
	return fmt.Sprintf("unparsable %s: %q", e.Type, e.Name)
}

// UnparsableAuthorshipError reports that a string is not a parsable
// authorship.
type UnparsableAuthorshipError struct {
	Text string
}

func (e *UnparsableAuthorshipError) Error() string {
	return fmt.Sprintf("unparsable authorship: %q", e.Text)
}
