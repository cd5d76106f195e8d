package parsing

import (
	"context"
	"strings"

	"github.com/gnames/gnameparser/pkg/parsed"
)

// authorshipJob parses a bare authorship string. It shares the name job's
// normalisation pipeline but expects no epithets: the dedicated authorship
// pattern is more reliable here than the full grammar.
type authorshipJob struct {
	nameJob
}

// NewAuthorshipJob prepares a parsing job for one authorship string,
// including basionym and ex-authors, a nomenclatural reference and status
// remarks.
func NewAuthorshipJob(authorship string) *authorshipJob {
	return &authorshipJob{nameJob{verbatim: authorship}}
}

// Run executes the normalisation pipeline and the authorship pattern.
func (j *authorshipJob) Run(ctx context.Context) (parsed.ParsedAuthorship, error) {
	fail := func() (parsed.ParsedAuthorship, error) {
		return parsed.ParsedAuthorship{},
			&parsed.UnparsableAuthorshipError{Text: j.verbatim}
	}

	j.name = j.preClean(j.verbatim)
	j.name = j.preparseNomRef(j.name)
	j.name = j.removePlaceholderAuthor(j.name)

	j.name = j.normalize(j.name)
	if j.name == "" {
		return fail()
	}
	j.name = j.extractNomStatus(j.name)
	j.name = j.extractSecReference(j.name)
	j.name = j.extractPublishedIn(j.name)

	j.name = j.normalizeHort(j.name)
	j.name = j.noQMarks(j.name)
	j.name = j.normBrackets(j.name)
	j.name = j.normWsPunct(j.name)
	if j.name == "" {
		return fail()
	}

	groups, err := findNamed(ctx, reAuthorship, j.name)
	if err != nil {
		return parsed.ParsedAuthorship{}, err
	}
	if groups == nil || (groups["basauth"] == "" && groups["combauth"] == "" &&
		groups["combyear"] == "") {
		return fail()
	}

	j.extractAuthorship(groups)

	if tail := strings.TrimSpace(groups["tail"]); tail != "" {
		j.pn.AddUnparsed(tail)
	} else {
		j.pn.State = parsed.Complete
	}
	return j.pn.ParsedAuthorship, nil
}
