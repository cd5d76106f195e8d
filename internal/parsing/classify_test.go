package parsing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gnames/gnameparser/internal/parsing"
	"github.com/gnames/gnameparser/pkg/nametype"
	"github.com/gnames/gnameparser/pkg/nomcode"
	"github.com/gnames/gnameparser/pkg/parsed"
	"github.com/gnames/gnameparser/pkg/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classifyInput(t *testing.T, input string) nametype.NameType {
	t.Helper()
	job := parsing.NewNameJob(input, rank.Unranked, nomcode.Unknown)
	_, err := job.Run(context.Background())
	require.Error(t, err, "expected %q to be unparsable", input)
	var unp *parsed.UnparsableNameError
	require.True(t, errors.As(err, &unp))
	return unp.Type
}

func TestClassifyPlaceholders(t *testing.T) {
	for _, input := range []string{
		"incertae sedis",
		"Incertae sedis",
		"unknown",
		"unidentified",
		"not assigned",
		"awaiting allocation",
		"?",
		"∅",
		"unassigned Asteraceae",
	} {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, nametype.Placeholder, classifyInput(t, input))
		})
	}
}

func TestClassifyViruses(t *testing.T) {
	for _, input := range []string{
		"Tobacco mosaic virus",
		"Potato leafroll viroid",
		"Vibrio phage CTX",
		"Bovine prion",
	} {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, nametype.Virus, classifyInput(t, input))
		})
	}
}

func TestClassifyOTUs(t *testing.T) {
	for _, input := range []string{
		"BOLD:AAX3687",
		"bold:aax3687",
		"SH215351.07FU",
	} {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, nametype.OTU, classifyInput(t, input))
		})
	}
}

func TestClassifyHybridFormulas(t *testing.T) {
	for _, input := range []string{
		"Pinus alba × Abies picea Mill.",
		"Agropyron × Elymus",
		"Asplenium septentrionale x Asplenium trichomanes",
	} {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, nametype.HybridFormula, classifyInput(t, input))
		})
	}
}

func TestClassifyNoNames(t *testing.T) {
	for _, input := range []string{
		"a a a a a a",
		"....",
		"123 456",
	} {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, nametype.NoName, classifyInput(t, input))
		})
	}
}
