package convert

// germanQuoteRules rewrites every German "quote digraph to its ISO 8859-1
// character, including digraphs at the start of a word or line. Shared with
// the German TeX decode table, where the digraphs appear after the plain
// TeX macro rules.
var germanQuoteRules = []Rule{
	{`"a`, "ä"},
	{`"A`, "Ä"},
	{`"o`, "ö"},
	{`"O`, "Ö"},
	{`"u`, "ü"},
	{`"U`, "Ü"},
	{`"s`, "ß"},
	{`\\3`, "ß"},
}

// GermanToISOAggressiveTab rewrites every "quote digraph unconditionally.
// Double quotes used as quotation marks before a/o/u/s are rewritten too,
// which is why this variant is not the default.
var GermanToISOAggressiveTab = MustTable("german2iso-aggressive", germanQuoteRules)

// GermanToISOConservativeTab rewrites German "quote digraphs only when a
// letter precedes the digraph, so quotation marks at word boundaries are
// left alone. The context class includes the umlauts because digraphs can
// be adjacent (Gr"u"se) and the earlier rewrite must still count as
// context. The preceding letter is kept via ${1}.
var GermanToISOConservativeTab = MustTable("german2iso", []Rule{
	{`([a-zA-ZäöüÄÖÜ])"a`, "${1}ä"},
	{`([a-zA-ZäöüÄÖÜ])"A`, "${1}Ä"},
	{`([a-zA-ZäöüÄÖÜ])"o`, "${1}ö"},
	{`([a-zA-ZäöüÄÖÜ])"O`, "${1}Ö"},
	{`([a-zA-ZäöüÄÖÜ])"u`, "${1}ü"},
	{`([a-zA-ZäöüÄÖÜ])"U`, "${1}Ü"},
	{`([a-zA-ZäöüÄÖÜ])"s`, "${1}ß"},
	{`([a-zA-ZäöüÄÖÜ])\\3`, "${1}ß"},
})
