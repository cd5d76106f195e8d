package parsed

// Standard warning strings attached to parsed names. The set is closed;
// warnings are informative and never part of the error contract.
const (
	WarnNullEpithet        = "epithet with literal value null"
	WarnUnusualCharacters  = "unusual characters"
	WarnSubspeciesAssigned = "Name was considered species but contains infraspecific epithet"
	WarnLCMonomial         = "lower case monomial match"
	WarnIndetermined       = "indetermined name missing its terminal epithet"
	WarnHigherRankBinomial = "binomial with rank higher than species aggregate"
	WarnQuestionMarksRemoved = "question marks removed"
	WarnReplEnclosingQuote = "removed enclosing quotes"
	WarnMissingGenus       = "epithet without genus"
	WarnRankMismatch       = "rank does not fit the parsed name"
	WarnHTMLEntities       = "html entities unescaped"
	WarnXMLTags            = "xml tags removed"
	WarnBlacklistedEpithet = "blacklisted epithet used"
	WarnNomenclaturalReference = "nomenclatural reference removed"
)
