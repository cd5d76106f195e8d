package parsing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gnames/gnameparser/internal/parsing"
	"github.com/gnames/gnameparser/pkg/parsed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseAuthorship(t *testing.T, text string) (parsed.ParsedAuthorship, error) {
	t.Helper()
	job := parsing.NewAuthorshipJob(text)
	return job.Run(context.Background())
}

func TestAuthorshipBasionymAndCombination(t *testing.T) {
	pa, err := parseAuthorship(t, "(Cleve, 1899) Jørgensen, 1905")
	require.NoError(t, err)

	require.NotNil(t, pa.BasionymAuthorship)
	assert.Equal(t, []string{"Cleve"}, pa.BasionymAuthorship.Authors)
	assert.Equal(t, "1899", pa.BasionymAuthorship.Year)

	require.NotNil(t, pa.CombinationAuthorship)
	assert.Equal(t, []string{"Jørgensen"}, pa.CombinationAuthorship.Authors)
	assert.Equal(t, "1905", pa.CombinationAuthorship.Year)

	assert.Equal(t, parsed.Complete, pa.State)
	assert.Empty(t, pa.Unparsed)
}

func TestAuthorshipSingleAuthor(t *testing.T) {
	pa, err := parseAuthorship(t, "L.")
	require.NoError(t, err)

	require.NotNil(t, pa.CombinationAuthorship)
	assert.Equal(t, []string{"L."}, pa.CombinationAuthorship.Authors)
	assert.Nil(t, pa.BasionymAuthorship)
	assert.Equal(t, parsed.Complete, pa.State)
}

func TestAuthorshipTeam(t *testing.T) {
	pa, err := parseAuthorship(t, "Balf.f. & Forrest")
	require.NoError(t, err)

	require.NotNil(t, pa.CombinationAuthorship)
	assert.Equal(t, []string{"Balf.f.", "Forrest"},
		pa.CombinationAuthorship.Authors)
}

func TestAuthorshipEtAl(t *testing.T) {
	pa, err := parseAuthorship(t, "Miller et al.")
	require.NoError(t, err)

	require.NotNil(t, pa.CombinationAuthorship)
	assert.Equal(t, []string{"Miller", "al."},
		pa.CombinationAuthorship.Authors)
}

func TestAuthorshipExAuthors(t *testing.T) {
	pa, err := parseAuthorship(t, "Seem. ex Benth.")
	require.NoError(t, err)

	require.NotNil(t, pa.CombinationAuthorship)
	assert.Equal(t, []string{"Benth."}, pa.CombinationAuthorship.Authors)
	assert.Equal(t, []string{"Seem."}, pa.CombinationAuthorship.ExAuthors)
}

func TestAuthorshipSanctioning(t *testing.T) {
	pa, err := parseAuthorship(t, "Pers. : Fr.")
	require.NoError(t, err)

	require.NotNil(t, pa.CombinationAuthorship)
	assert.Equal(t, []string{"Pers."}, pa.CombinationAuthorship.Authors)
	assert.Equal(t, "Fr.", pa.SanctioningAuthor)
}

func TestAuthorshipPartial(t *testing.T) {
	pa, err := parseAuthorship(t, "Mill. whatever remains here")
	require.NoError(t, err)

	require.NotNil(t, pa.CombinationAuthorship)
	assert.Equal(t, []string{"Mill."}, pa.CombinationAuthorship.Authors)
	assert.Equal(t, parsed.Partial, pa.State)
	assert.Equal(t, []string{"whatever remains here"}, pa.Unparsed)
}

func TestAuthorshipUnparsable(t *testing.T) {
	for _, input := range []string{"12", "gibberish lowercase"} {
		t.Run(input, func(t *testing.T) {
			_, err := parseAuthorship(t, input)
			require.Error(t, err)
			var unp *parsed.UnparsableAuthorshipError
			require.True(t, errors.As(err, &unp))
			assert.Equal(t, input, unp.Text)
		})
	}
}
