package parsing

import (
	"context"
	"regexp"
)

// findNamed applies a compiled pattern and returns its named groups.
// The context is checked first, so every application of a top-level pattern
// is a cooperative cancellation point of a parse. A nil map means no match.
func findNamed(ctx context.Context, re *regexp.Regexp, s string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil, nil
	}
	res := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name == "" || i >= len(m) || m[i] == "" {
			continue
		}
		res[name] = m[i]
	}
	return res, nil
}
