package ioconfig

import (
	"fmt"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gnameparser/pkg/errcode"
	"github.com/gnames/gnameparser/pkg/gnameparser"
	"github.com/gnames/gnameparser/pkg/parsed"
	"gopkg.in/yaml.v3"
)

// overridesFile is the YAML shape of a curator overrides file: exact input
// strings mapped to their pre-parsed records.
type overridesFile struct {
	Names       map[string]parsed.ParsedName       `yaml:"names"`
	Authorships map[string]parsed.ParsedAuthorship `yaml:"authorships"`
}

// LoadOverrides reads a curator overrides YAML file into the parser's
// override store. Overrides loaded this way behave identically to overrides
// set at runtime.
func LoadOverrides(path string, configs *gnameparser.ParserConfigs) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, &gn.Error{
			Code: errcode.OverridesFileError,
			Msg:  "Cannot read overrides file <em>%s</em>",
			Vars: []any{path},
			Err:  fmt.Errorf("failed to read overrides: %w", err),
		}
	}

	var of overridesFile
	if err := yaml.Unmarshal(data, &of); err != nil {
		return 0, &gn.Error{
			Code: errcode.OverridesParseError,
			Msg:  "Cannot parse overrides file <em>%s</em>",
			Vars: []any{path},
			Err:  fmt.Errorf("failed to parse overrides: %w", err),
		}
	}

	var count int
	for name, pn := range of.Names {
		configs.SetName(name, pn)
		count++
	}
	for text, pa := range of.Authorships {
		configs.SetAuthorship(text, pa)
		count++
	}
	return count, nil
}
