package parsing

import (
	"html"
	"strings"

	"github.com/gnames/gnameparser/pkg/parsed"
	"golang.org/x/text/unicode/norm"
)

// charNormalizer unifies typographic variants before any pattern runs.
var charNormalizer = strings.NewReplacer(
	"’", "'", "‘", "'", "´", "'", "`", "'", "ʹ", "'",
	"“", `"`, "”", `"`, "„", `"`, "«", `"`, "»", `"`,
	"–", "-", "—", "-", "‐", "-", "‑", "-", "‒", "-", "−", "-",
	"✕", "×", "𝗑", "×",
	"\t", " ", "\n", " ", "\r", " ",
)

// preClean strips seriously wrong things from the raw input: control
// characters, HTML entities and XML tags, then brings the string to NFC and
// unifies quotes, dashes and the hybrid sign.
func (j *nameJob) preClean(s string) string {
	s = reControlChars.ReplaceAllString(s, "")

	if strings.ContainsRune(s, '&') {
		if u := html.UnescapeString(s); u != s {
			s = u
			j.pn.AddWarning(parsed.WarnHTMLEntities)
		}
	}
	if reXMLTags.MatchString(s) {
		s = reXMLTags.ReplaceAllString(s, "")
		j.pn.AddWarning(parsed.WarnXMLTags)
	}

	s = norm.NFC.String(s)
	s = charNormalizer.Replace(s)

	if m := reEnclQuotes.FindStringSubmatch(s); m != nil {
		s = m[1]
		j.pn.AddWarning(parsed.WarnReplEnclosingQuote)
	}

	// the letter x as hybrid sign
	s = reHybridX.ReplaceAllString(s, "$1×$2")
	s = reHybridLeadX.ReplaceAllString(s, "×$1")

	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// preparseNomRef excises a bibliographic citation ("in Jones, Flora 12:3.
// 1880") before normalisation can mangle it.
func (j *nameJob) preparseNomRef(s string) string {
	m := rePublishedIn.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	j.pn.PublishedIn = strings.TrimSpace(s[m[2]:m[3]])
	j.pn.AddWarning(parsed.WarnNomenclaturalReference)
	return strings.TrimSpace(s[:m[0]])
}

// removePlaceholderAuthor strips auct./anon./hort. author placeholders from
// the end of the name.
func (j *nameJob) removePlaceholderAuthor(s string) string {
	if m := rePlaceholderAuthor.FindStringIndex(s); m != nil {
		// "hort. ex Author" is a real ex-authorship, not a placeholder
		if !strings.HasPrefix(strings.TrimSpace(s[m[0]:]), "hort. ex") {
			s = strings.TrimSpace(s[:m[0]])
		}
	}
	return s
}

// normalize collapses whitespace and punctuation, attaches hybrid signs to
// their epithets, fixes shouting names and strips unusual characters.
func (j *nameJob) normalize(s string) string {
	if reAllCaps.MatchString(s) && strings.ContainsRune(s, ' ') {
		s = capitalize(strings.ToLower(s))
	}

	if reUnusualChars.MatchString(s) {
		s = reUnusualChars.ReplaceAllString(s, "")
		j.pn.AddWarning(parsed.WarnUnusualCharacters)
		j.pn.Doubtful = true
	}

	// attach hybrid signs: "× russatum" -> "×russatum", leading "× Abies"
	// -> "×Abies"
	s = reHybridAttach.ReplaceAllString(s, "×$1")
	s = reHybridLead.ReplaceAllString(s, "×")

	s = reSpaces.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "( ", "(")
	s = strings.ReplaceAll(s, " )", ")")
	return strings.TrimSpace(s)
}

// extractNomStatus removes a trailing nomenclatural status phrase into
// NomenclaturalNote. Manuscript markers also set the manuscript flag.
func (j *nameJob) extractNomStatus(s string) string {
	m := reNomStatus.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	note := strings.TrimSpace(s[m[2]:m[3]])
	if j.pn.NomenclaturalNote == "" {
		j.pn.NomenclaturalNote = note
	} else {
		j.pn.NomenclaturalNote += ", " + note
	}
	low := strings.ToLower(note)
	if strings.HasPrefix(low, "ined") || strings.HasPrefix(low, "ms") ||
		strings.HasPrefix(low, "manuscript") {
		j.pn.Manuscript = true
	}
	return strings.TrimSpace(s[:m[0]])
}

// extractSecReference removes a trailing taxonomic concept reference
// ("sensu ...", "sec. ...") into TaxonomicNote.
func (j *nameJob) extractSecReference(s string) string {
	m := reSecRef.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	j.pn.TaxonomicNote = strings.TrimSpace(s[m[2]:m[3]])
	return strings.TrimSpace(s[:m[0]])
}

// extractPublishedIn picks up residual citation forms that survived
// normalisation.
func (j *nameJob) extractPublishedIn(s string) string {
	if j.pn.PublishedIn != "" {
		return s
	}
	return j.preparseNomRef(s)
}

// normalizeHort fixes the gardeners' ex-authorship spelled without a dot.
func (j *nameJob) normalizeHort(s string) string {
	s = strings.ReplaceAll(s, "hort ex ", "hort. ex ")
	s = strings.ReplaceAll(s, "Hort. ex ", "hort. ex ")
	s = strings.ReplaceAll(s, "Hort ex ", "hort. ex ")
	return s
}

// noQMarks removes question marks; they mark the name as doubtful.
func (j *nameJob) noQMarks(s string) string {
	if !strings.ContainsRune(s, '?') {
		return s
	}
	j.pn.Doubtful = true
	j.pn.AddWarning(parsed.WarnQuestionMarksRemoved)
	return strings.TrimSpace(reQMarks.ReplaceAllString(s, ""))
}

// normBrackets unifies square and curly brackets to parentheses and drops
// empty pairs.
func (j *nameJob) normBrackets(s string) string {
	s = reBracketOpen.ReplaceAllString(s, "(")
	s = reBracketClose.ReplaceAllString(s, ")")
	return reEmptyParens.ReplaceAllString(s, "")
}

// normWsPunct is the final whitespace and punctuation cleanup.
func (j *nameJob) normWsPunct(s string) string {
	s = reSpaces.ReplaceAllString(s, " ")
	s = strings.Trim(s, " ,;:")
	return s
}
