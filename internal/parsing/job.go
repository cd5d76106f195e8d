package parsing

import (
	"context"
	"regexp"
	"strings"

	"github.com/gnames/gnameparser/pkg/nametype"
	"github.com/gnames/gnameparser/pkg/nomcode"
	"github.com/gnames/gnameparser/pkg/parsed"
	"github.com/gnames/gnameparser/pkg/rank"
)

// nameJob parses one scientific name. A job is used once and thrown away.
type nameJob struct {
	verbatim string
	rankHint rank.Rank
	codeHint nomcode.Code

	name string
	pn   parsed.ParsedName
}

// NewNameJob prepares a parsing job for one scientific name. Rank and code
// are hints: rank biases the interpretation of ambiguous strings, code
// biases rank-marker and suffix resolution.
func NewNameJob(scientificName string, rankHint rank.Rank, codeHint nomcode.Code) *nameJob {
	return &nameJob{
		verbatim: scientificName,
		rankHint: rankHint,
		codeHint: codeHint,
	}
}

// unparsable aborts the job with the classifier's best guess.
func (j *nameJob) unparsable(t nametype.NameType) (parsed.ParsedName, error) {
	return parsed.ParsedName{}, &parsed.UnparsableNameError{Type: t, Name: j.verbatim}
}

// Run executes the normalisation pipeline and the grammar on the job's
// input. The context is observed between the pipeline stages and before
// every top-level pattern application; cancellation surfaces
// as an unparsable no-name result at the harness level.
func (j *nameJob) Run(ctx context.Context) (parsed.ParsedName, error) {
	j.pn.Rank = rank.Unranked
	j.pn.Type = nametype.Scientific
	j.pn.Code = j.codeHint

	j.name = j.preClean(j.verbatim)
	if j.name == "" {
		return j.unparsable(nametype.NoName)
	}

	if err := ctx.Err(); err != nil {
		return parsed.ParsedName{}, err
	}

	// whole-string placeholders and OTU identifiers are decided before any
	// rewriting
	if isPlaceholder(j.name) {
		return j.unparsable(nametype.Placeholder)
	}
	if reOTU.MatchString(j.name) {
		return j.unparsable(nametype.OTU)
	}

	j.name = j.preparseNomRef(j.name)
	j.name = j.removePlaceholderAuthor(j.name)
	if j.name == "" {
		return j.unparsable(nametype.Placeholder)
	}

	// further unparsable kinds: viruses and hybrid formulas
	if reVirus.MatchString(j.name) {
		return j.unparsable(nametype.Virus)
	}
	if reHybridFormula.MatchString(j.name) {
		return j.unparsable(nametype.HybridFormula)
	}

	if err := ctx.Err(); err != nil {
		return parsed.ParsedName{}, err
	}

	j.name = j.normalize(j.name)
	if j.name == "" {
		return j.unparsable(nametype.NoName)
	}

	j.name = j.extractNomStatus(j.name)
	j.name = j.extractSecReference(j.name)
	j.name = j.extractPublishedIn(j.name)

	j.name = j.normalizeHort(j.name)
	j.name = j.noQMarks(j.name)
	j.name = j.normBrackets(j.name)
	j.name = j.normWsPunct(j.name)
	if j.name == "" {
		return j.unparsable(nametype.NoName)
	}

	if m := reCandidatus.FindString(j.name); m != "" {
		j.pn.Candidatus = true
		if j.pn.Code == nomcode.Unknown {
			j.pn.Code = nomcode.Bacterial
		}
		j.name = strings.TrimSpace(j.name[len(m):])
		if j.name == "" {
			return j.unparsable(nametype.NoName)
		}
	}

	if err := ctx.Err(); err != nil {
		return parsed.ParsedName{}, err
	}

	// a name that opens with a rank marker misses its genus
	if m := reMissingGenus.FindStringSubmatch(j.name); m != nil {
		return j.missingGenus(m[1], m[2])
	}

	// a lower-case monomial is salvaged when the rank hint allows a name
	// above species level
	if reLCMonomial.MatchString(j.name) {
		if j.rankHint.IsSpeciesOrBelow() {
			return j.unparsable(nametype.NoName)
		}
		j.pn.AddWarning(parsed.WarnLCMonomial)
		j.name = capitalize(j.name)
	}

	// indetermined names, identification qualifiers, strains and phrases
	if done, res, err := j.parseIndetermined(ctx); done {
		return res, err
	}

	return j.parseNormalized(ctx)
}

// missingGenus handles "subsp. alpina" style inputs: an infraspecific
// epithet without any genus context.
func (j *nameJob) missingGenus(marker, ep string) (parsed.ParsedName, error) {
	r, ok := rank.FromMarker(marker)
	if !ok {
		return j.unparsable(nametype.NoName)
	}
	j.pn.InfraspecificEpithet = ep
	j.pn.Rank = r
	j.pn.AddWarning(parsed.WarnMissingGenus)
	j.pn.AddWarning(parsed.WarnIndetermined)
	j.pn.State = parsed.Complete
	return j.pn, nil
}

// parseIndetermined handles names whose terminal epithet is replaced by a
// rank marker or an identification qualifier: "Abies sp.", "Abies cf.
// alba", "Acinetobacter sp. CIP 102129", "Pultenaea sp. Olinda (R.Coveny
// 6616)". Returns done=false when the string should go through the main
// grammar instead.
func (j *nameJob) parseIndetermined(ctx context.Context) (bool, parsed.ParsedName, error) {
	m := reIndet.FindStringSubmatch(j.name)
	if m == nil {
		return false, parsed.ParsedName{}, nil
	}
	prefix, marker, tail := m[1], m[2], strings.TrimSpace(m[3])

	// "Balf.f." and "Mill. f." carry the filius suffix of an author, not a
	// form marker
	if marker == "f" && strings.HasSuffix(prefix, ".") {
		return false, parsed.ParsedName{}, nil
	}

	if qualifierMarkers.has(marker) {
		// identification qualifier makes the name informal; parse the
		// name without the qualifier
		if tail == "" || !reEpithet.MatchString(strings.Fields(tail)[0]) {
			return false, parsed.ParsedName{}, nil
		}
		j.name = strings.TrimSpace(prefix + " " + tail)
		res, err := j.parseNormalized(ctx)
		if err != nil {
			return true, res, err
		}
		res.Type = nametype.Informal
		if res.Remarks == "" {
			res.Remarks = marker + "."
		}
		return true, res, nil
	}

	markerRank, known := rank.FromMarker(marker)

	// an infrageneric marker followed by a capitalised epithet is a
	// subgenus/section name, not an indetermined one
	if known && markerRank.IsInfrageneric() {
		if done, res, err := j.parseInfrageneric(ctx, prefix, marker, tail); done {
			return true, res, err
		}
	}

	if !indetMarkers.has(marker) {
		return false, parsed.ParsedName{}, nil
	}

	switch {
	case tail == "":
		// marker terminates the name: indetermined
	case markerRank == rank.Species && rePhrase.MatchString(tail) &&
		strings.Contains(tail, "("):
		j.pn.Phrase = tail
		j.pn.Type = nametype.Informal
	case markerRank == rank.Species && reStrain.MatchString(tail):
		j.pn.Strain = tail
	default:
		// a real epithet follows the marker; the main grammar handles it
		return false, parsed.ParsedName{}, nil
	}

	res, err := j.parsePrefixName(ctx, prefix)
	if err != nil {
		return true, res, err
	}
	if markerRank != rank.Unranked {
		res.Rank = markerRank
	}
	res.AddWarning(parsed.WarnIndetermined)
	return true, res, nil
}

// parseInfrageneric handles "Quercus sect. Lobatae Loudon" style names.
func (j *nameJob) parseInfrageneric(ctx context.Context, prefix, marker, tail string) (bool, parsed.ParsedName, error) {
	if tail == "" || !reMonomial.MatchString(strings.Fields(tail)[0]) {
		return false, parsed.ParsedName{}, nil
	}
	fields := strings.Fields(tail)
	if !reMonomial.MatchString(prefix) {
		return false, parsed.ParsedName{}, nil
	}
	markerRank, _ := rank.FromMarker(marker)
	j.pn.Genus = prefix
	j.pn.InfragenericEpithet = fields[0]
	j.pn.Rank = markerRank
	j.pn.State = parsed.Complete

	rest := strings.TrimSpace(strings.TrimPrefix(tail, fields[0]))
	if rest != "" {
		groups, err := findNamed(ctx, reAuthorship, rest)
		if err != nil {
			return true, parsed.ParsedName{}, err
		}
		j.extractAuthorship(groups)
		j.finishTail(groups)
	}
	return true, j.pn, nil
}

// parsePrefixName parses the name part preceding an indetermined marker.
func (j *nameJob) parsePrefixName(ctx context.Context, prefix string) (parsed.ParsedName, error) {
	if prefix == "" {
		return j.unparsable(nametype.NoName)
	}
	j.name = prefix
	res, err := j.parseNormalized(ctx)
	if err != nil {
		return res, err
	}
	// an indetermined name sits at species level or below: its monomial is
	// a genus, not an uninomial
	if res.Uninomial != "" && res.Genus == "" {
		res.Genus = res.Uninomial
		res.Uninomial = ""
	}
	return res, nil
}

// parseNormalized runs the grammar cascade on the normalised name and fills
// the record from the captured groups.
func (j *nameJob) parseNormalized(ctx context.Context) (parsed.ParsedName, error) {
	groups, err := findNamed(ctx, reName, j.name)
	if err != nil {
		return parsed.ParsedName{}, err
	}
	if groups == nil {
		return j.unparsable(j.classify())
	}

	// the grammar cannot blacklist epithets (no lookahead); validate the
	// captures and fall back to reduced patterns when the full pattern
	// mistook an authorship for an epithet
	if bad, pat := j.retryPattern(groups); bad {
		groups, err = findNamed(ctx, pat, j.name)
		if err != nil {
			return parsed.ParsedName{}, err
		}
		if groups == nil {
			return j.unparsable(j.classify())
		}
	}

	j.extractName(groups)
	j.extractAuthorship(groups)
	j.validateEpithets()
	j.resolveRank()
	j.resolveCode()
	j.finishTail(groups)

	return j.pn, nil
}

// retryPattern decides whether captured epithets are author particles in
// disguise and picks the reduced pattern to retry with.
func (j *nameJob) retryPattern(groups map[string]string) (bool, *regexp.Regexp) {
	if authorParticles.has(groups["infraepithet"]) {
		return true, reNameNoInfra
	}
	if authorParticles.has(groups["epithet"]) {
		return true, reUninomial
	}
	// a capitalised-lower-case pair under a genus rank hint is a monomial
	// with an authorship particle, not a binomial
	if groups["epithet"] != "" && j.rankHint == rank.Genus &&
		groups["combauth"] == "" && groups["basauth"] == "" {
		return true, reUninomial
	}
	// a parenthesised monomial right after the genus is a bracket author,
	// not an infrageneric epithet, when the rank hint rules out an
	// infrageneric name
	if groups["infragen"] != "" && groups["epithet"] == "" &&
		j.rankHint != rank.Unranked && !j.rankHint.IsInfrageneric() {
		return true, reUninomial
	}
	return false, nil
}

// extractName maps the name-part groups onto the record. The mapping is
// table-driven by group name; extractAuthorship handles the author groups.
func (j *nameJob) extractName(groups map[string]string) {
	setters := map[string]func(string){
		"genus":        func(s string) { j.pn.Genus = capitalize(s) },
		"infragen":     func(s string) { j.pn.InfragenericEpithet = capitalize(s) },
		"epithet":      func(s string) { j.pn.SpecificEpithet = s },
		"infraepithet": func(s string) { j.pn.InfraspecificEpithet = s },
		"cultivar":     func(s string) { j.pn.CultivarEpithet = s },
	}
	for name, setter := range setters {
		if v, ok := groups[name]; ok {
			setter(v)
		}
	}

	// with several hybrid signs the lowest marked part wins
	switch {
	case groups["nothoinfra"] != "":
		j.pn.Notho = parsed.Infraspecific
	case groups["nothosp"] != "":
		j.pn.Notho = parsed.Specific
	case groups["nothoig"] != "":
		j.pn.Notho = parsed.Infrageneric
	case groups["nothogen"] != "":
		j.pn.Notho = parsed.Generic
	}

	// a monomial without epithets is an uninomial, not a genus
	if j.pn.SpecificEpithet == "" && j.pn.InfragenericEpithet == "" &&
		j.pn.CultivarEpithet == "" {
		j.pn.Uninomial = j.pn.Genus
		j.pn.Genus = ""
	}

	if marker, ok := groups["rankmarker"]; ok {
		if r, known := rank.FromMarker(marker); known {
			j.pn.Rank = r
			if strings.HasPrefix(marker, "notho") {
				j.pn.Notho = parsed.Infraspecific
			}
		}
	}
}

// extractAuthorship maps the six authorship groups and two years onto the
// basionym and combination Authorship values.
func (j *nameJob) extractAuthorship(groups map[string]string) {
	bas := buildAuthorship(groups["basex"], groups["basauth"], groups["basyear"])
	if bas != nil {
		j.pn.BasionymAuthorship = bas
	}
	comb := buildAuthorship(groups["combex"], groups["combauth"], groups["combyear"])
	if comb != nil {
		j.pn.CombinationAuthorship = comb
	}
	if s, ok := groups["combsanct"]; ok {
		j.pn.SanctioningAuthor = s
	} else if s, ok := groups["bassanct"]; ok {
		j.pn.SanctioningAuthor = s
	}
}

// validateEpithets enforces the vocabulary rules the grammar cannot: null
// epithets and blacklisted tokens are dropped and flagged.
func (j *nameJob) validateEpithets() {
	check := func(ep *string) {
		if *ep == "" {
			return
		}
		if nullEpithets.has(*ep) {
			*ep = ""
			j.pn.AddWarning(parsed.WarnNullEpithet)
			j.pn.AddWarning(parsed.WarnIndetermined)
			return
		}
		if epithetBlacklist.has(*ep) {
			*ep = ""
			j.pn.AddWarning(parsed.WarnBlacklistedEpithet)
			j.pn.AddWarning(parsed.WarnIndetermined)
		}
	}
	check(&j.pn.InfraspecificEpithet)
	check(&j.pn.SpecificEpithet)

	if j.pn.SpecificEpithet == "" && j.pn.InfraspecificEpithet != "" &&
		!j.pn.Indetermined() {
		j.pn.AddWarning(parsed.WarnIndetermined)
	}
}

// resolveRank infers the rank from the marker, the populated epithet slots
// and the rank hint, in that order, and flags mismatches.
func (j *nameJob) resolveRank() {
	hint := j.rankHint
	inferred := rank.Unranked

	switch {
	case j.pn.Rank != rank.Unranked:
		// marker already decided the rank
		if hint != rank.Unranked && hint != j.pn.Rank {
			j.pn.AddWarning(parsed.WarnRankMismatch)
		}
		return
	case j.pn.CultivarEpithet != "":
		inferred = rank.Cultivar
	case j.pn.InfraspecificEpithet != "":
		inferred = rank.Subspecies
		if hint.IsInfraspecific() {
			inferred = hint
		} else if hint == rank.Species {
			j.pn.AddWarning(parsed.WarnSubspeciesAssigned)
		}
	case j.pn.SpecificEpithet != "":
		inferred = rank.Species
		if hint != rank.Unranked && hint != rank.Species {
			if hint < rank.SpeciesAggregate {
				j.pn.AddWarning(parsed.WarnHigherRankBinomial)
			} else {
				j.pn.AddWarning(parsed.WarnRankMismatch)
			}
		}
	case j.pn.InfragenericEpithet != "":
		inferred = rank.Subgenus
		if hint.IsInfrageneric() {
			inferred = hint
		}
	case j.pn.Uninomial != "":
		if hint != rank.Unranked {
			inferred = hint
		} else {
			inferred = rank.FromSuffix(j.pn.Uninomial,
				j.codeHint == nomcode.Zoological)
		}
	}
	j.pn.Rank = inferred
}

// resolveCode infers the nomenclatural code when the caller gave none.
func (j *nameJob) resolveCode() {
	if j.pn.Code != nomcode.Unknown {
		return
	}
	switch {
	case j.pn.CultivarEpithet != "":
		j.pn.Code = nomcode.Cultivars
	case j.pn.Candidatus:
		j.pn.Code = nomcode.Bacterial
	case j.pn.SanctioningAuthor != "":
		// sanctioned names exist only in fungi
		j.pn.Code = nomcode.Botanical
	case j.pn.BasionymAuthorship != nil && j.pn.BasionymAuthorship.Year != "":
		// a year inside the parenthesis is zoological style
		j.pn.Code = nomcode.Zoological
	}
	if j.pn.Code == nomcode.Unknown && j.pn.Rank == rank.Cultivar {
		j.pn.Code = nomcode.Cultivars
	}
}

// finishTail computes the final state from the unmatched remainder.
func (j *nameJob) finishTail(groups map[string]string) {
	tail := strings.TrimSpace(groups["tail"])
	if tail == "" {
		if j.pn.State != parsed.Partial {
			j.pn.State = parsed.Complete
		}
		return
	}
	j.pn.AddUnparsed(tail)
}

// classify picks the most specific NameType for a string the grammar
// rejected.
func (j *nameJob) classify() nametype.NameType {
	return classify(j.name)
}

// buildAuthorship assembles one Authorship value from the raw ex-team, team
// and year captures. Returns nil when all three are empty.
func buildAuthorship(ex, team, year string) *parsed.Authorship {
	if ex == "" && team == "" && year == "" {
		return nil
	}
	res := &parsed.Authorship{Year: strings.TrimSpace(year)}
	res.Authors = splitAuthorTeam(team)
	res.ExAuthors = splitAuthorTeam(ex)
	return res
}

// splitAuthorTeam cuts one author team capture into its author strings.
// Author strings stay verbatim; only delimiters are removed.
func splitAuthorTeam(team string) []string {
	team = strings.TrimSpace(team)
	if team == "" {
		return nil
	}
	var etAl bool
	if m := reEtAl.FindStringIndex(team); m != nil {
		team = strings.TrimSpace(team[:m[0]])
		etAl = true
	}
	var res []string
	for _, a := range reTeamDelim.Split(team, -1) {
		a = strings.TrimSpace(a)
		if a != "" {
			res = append(res, a)
		}
	}
	if etAl {
		res = append(res, "al.")
	}
	return res
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
