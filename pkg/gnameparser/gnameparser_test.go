package gnameparser_test

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gnames/gnameparser/pkg/config"
	"github.com/gnames/gnameparser/pkg/gnameparser"
	"github.com/gnames/gnameparser/pkg/nametype"
	"github.com/gnames/gnameparser/pkg/nomcode"
	"github.com/gnames/gnameparser/pkg/parsed"
	"github.com/gnames/gnameparser/pkg/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newParser(t *testing.T) gnameparser.GNameParser {
	t.Helper()
	parser := gnameparser.New(config.New())
	t.Cleanup(parser.Close)
	return parser
}

func TestParse(t *testing.T) {
	parser := newParser(t)

	pn, err := parser.Parse("Abies alba Mill.", rank.Unranked, nomcode.Unknown)
	require.NoError(t, err)

	assert.Equal(t, "Abies", pn.Genus)
	assert.Equal(t, "alba", pn.SpecificEpithet)
	assert.Equal(t, rank.Species, pn.Rank)
	assert.Equal(t, nametype.Scientific, pn.Type)
	assert.Equal(t, parsed.Complete, pn.State)
	require.NotNil(t, pn.CombinationAuthorship)
	assert.Equal(t, []string{"Mill."}, pn.CombinationAuthorship.Authors)
}

func TestParseEmpty(t *testing.T) {
	parser := newParser(t)

	_, err := parser.Parse("", rank.Unranked, nomcode.Unknown)
	require.Error(t, err)
	var unp *parsed.UnparsableNameError
	require.True(t, errors.As(err, &unp))
	assert.Equal(t, nametype.NoName, unp.Type)
}

func TestParseUnparsable(t *testing.T) {
	parser := newParser(t)

	_, err := parser.Parse("BOLD:AAX3687", rank.Unranked, nomcode.Unknown)
	require.Error(t, err)
	var unp *parsed.UnparsableNameError
	require.True(t, errors.As(err, &unp))
	assert.Equal(t, nametype.OTU, unp.Type)
	assert.Equal(t, "BOLD:AAX3687", unp.Name)
}

func TestParsePathologicalWithinTimeout(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptTimeoutMillis(500)})
	parser := gnameparser.New(cfg)
	defer parser.Close()

	pathological := strings.Repeat("a ", 200)
	start := time.Now()
	_, err := parser.Parse(pathological, rank.Unranked, nomcode.Unknown)
	elapsed := time.Since(start)

	require.Error(t, err)
	var unp *parsed.UnparsableNameError
	require.True(t, errors.As(err, &unp))
	assert.Less(t, elapsed, 800*time.Millisecond)
}

func TestParseAuthorship(t *testing.T) {
	parser := newParser(t)

	pa, err := parser.ParseAuthorship("(Cleve, 1899) Jørgensen, 1905")
	require.NoError(t, err)

	require.NotNil(t, pa.BasionymAuthorship)
	assert.Equal(t, []string{"Cleve"}, pa.BasionymAuthorship.Authors)
	assert.Equal(t, "1899", pa.BasionymAuthorship.Year)
	require.NotNil(t, pa.CombinationAuthorship)
	assert.Equal(t, []string{"Jørgensen"}, pa.CombinationAuthorship.Authors)
	assert.Equal(t, "1905", pa.CombinationAuthorship.Year)
	assert.Equal(t, parsed.Complete, pa.State)
}

func TestParseAuthorshipEmpty(t *testing.T) {
	parser := newParser(t)

	_, err := parser.ParseAuthorship("")
	require.Error(t, err)
	var unp *parsed.UnparsableAuthorshipError
	require.True(t, errors.As(err, &unp))
}

func TestOverridePrecedence(t *testing.T) {
	parser := newParser(t)

	over := parsed.ParsedName{
		Uninomial: "Curated",
		Rank:      rank.Genus,
		Type:      nametype.Scientific,
		ParsedAuthorship: parsed.ParsedAuthorship{
			State: parsed.Complete,
		},
	}
	parser.Configs().SetName("Some pathological string", over)

	pn, err := parser.Parse("Some pathological string",
		rank.Unranked, nomcode.Unknown)
	require.NoError(t, err)
	assert.Equal(t, over, pn)

	// without the override the string goes through the grammar, which reads
	// it as a trinomial
	parser.Configs().DeleteName("Some pathological string")
	pn, err = parser.Parse("Some pathological string",
		rank.Unranked, nomcode.Unknown)
	require.NoError(t, err)
	assert.NotEqual(t, over, pn)
}

func TestOverrideAuthorship(t *testing.T) {
	parser := newParser(t)

	over := parsed.ParsedAuthorship{
		CombinationAuthorship: &parsed.Authorship{Authors: []string{"Curated"}},
		State:                 parsed.Complete,
	}
	parser.Configs().SetAuthorship("impossible authorship", over)

	pa, err := parser.ParseAuthorship("impossible authorship")
	require.NoError(t, err)
	assert.Equal(t, over, pa)
}

func TestOverridesConcurrent(t *testing.T) {
	parser := newParser(t)
	configs := parser.Configs()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				configs.SetName("Abies alba", parsed.ParsedName{Genus: "Abies"})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if pn, ok := configs.ForName("Abies alba"); ok {
					assert.Equal(t, "Abies", pn.Genus)
				}
			}
		}()
	}
	wg.Wait()
}

func TestParseConcurrent(t *testing.T) {
	parser := newParser(t)

	numGoroutines := 20
	namesPerGoroutine := 10

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()

			name := "Abies alba Mill."
			if id%2 == 0 {
				name = "Picea abies (L.) H.Karst."
			}
			for j := 0; j < namesPerGoroutine; j++ {
				pn, err := parser.Parse(name, rank.Unranked, nomcode.Unknown)
				if err != nil {
					t.Errorf("Goroutine %d: Parse failed: %v", id, err)
					return
				}
				if pn.Genus == "" {
					t.Errorf("Goroutine %d: no genus for %s", id, name)
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestClose(t *testing.T) {
	parser := gnameparser.New(config.New())

	_, err := parser.Parse("Abies alba Mill.", rank.Unranked, nomcode.Unknown)
	require.NoError(t, err)

	parser.Close()
	// idempotent
	parser.Close()

	start := time.Now()
	_, err = parser.Parse("Abies alba Mill.", rank.Unranked, nomcode.Unknown)
	elapsed := time.Since(start)

	require.Error(t, err)
	var unp *parsed.UnparsableNameError
	require.True(t, errors.As(err, &unp))
	assert.Less(t, elapsed, time.Second)

	_, err = parser.ParseAuthorship("L.")
	assert.Error(t, err)
}

func TestSharedPool(t *testing.T) {
	p1 := gnameparser.New(config.New())
	p2 := gnameparser.New(config.New())

	_, err := p1.Parse("Abies alba Mill.", rank.Unranked, nomcode.Unknown)
	require.NoError(t, err)

	// closing one parser keeps the shared pool alive for the other
	p1.Close()
	pn, err := p2.Parse("Picea abies (L.) H.Karst.", rank.Unranked, nomcode.Unknown)
	require.NoError(t, err)
	assert.Equal(t, "Picea", pn.Genus)

	p2.Close()
}
