package convert

// isoToTeXCommon holds the ISO -> TeX rules shared by the plain TeX and
// German TeX encode tables: everything except the umlauts and sharp s,
// which the German table spells as "quote digraphs instead.
var isoToTeXCommon = []Rule{
	{"à", "{\\`a}"},
	{"á", `{\'a}`},
	{"â", `{\^a}`},
	{"ã", `{\~a}`},
	{"å", `{\aa}`},
	{"æ", `{\ae}`},
	{"ç", `{\c c}`},
	{"è", "{\\`e}"},
	{"é", `{\'e}`},
	{"ê", `{\^e}`},
	{"ë", `{\"e}`},
	{"ì", "{\\`\\i}"},
	{"í", `{\'\i}`},
	{"î", `{\^\i}`},
	{"ï", `{\"\i}`},
	{"ñ", `{\~n}`},
	{"ò", "{\\`o}"},
	{"ó", `{\'o}`},
	{"ô", `{\^o}`},
	{"õ", `{\~o}`},
	{"ø", `{\o}`},
	{"ù", "{\\`u}"},
	{"ú", `{\'u}`},
	{"û", `{\^u}`},
	{"ý", `{\'y}`},
	{"ÿ", `{\"y}`},
	{"À", "{\\`A}"},
	{"Á", `{\'A}`},
	{"Â", `{\^A}`},
	{"Ã", `{\~A}`},
	{"Å", `{\AA}`},
	{"Æ", `{\AE}`},
	{"Ç", `{\c C}`},
	{"È", "{\\`E}"},
	{"É", `{\'E}`},
	{"Ê", `{\^E}`},
	{"Ë", `{\"E}`},
	{"Ì", "{\\`I}"},
	{"Í", `{\'I}`},
	{"Î", `{\^I}`},
	{"Ï", `{\"I}`},
	{"Ñ", `{\~N}`},
	{"Ò", "{\\`O}"},
	{"Ó", `{\'O}`},
	{"Ô", `{\^O}`},
	{"Õ", `{\~O}`},
	{"Ø", `{\O}`},
	{"Ù", "{\\`U}"},
	{"Ú", `{\'U}`},
	{"Û", `{\^U}`},
	{"Ý", `{\'Y}`},
	{"¿", "?`"},
	{"¡", "!`"},
}

// ISOToTeXTab rewrites ISO 8859-1 accented characters to braced TeX accent
// macros. The braced form is always emitted so the output never depends on
// trailing whitespace.
var ISOToTeXTab = MustTable("iso2tex", append([]Rule{
	{"ä", `{\"a}`},
	{"ö", `{\"o}`},
	{"ü", `{\"u}`},
	{"ß", `{\ss}`},
	{"Ä", `{\"A}`},
	{"Ö", `{\"O}`},
	{"Ü", `{\"U}`},
}, isoToTeXCommon...))

// ISOToGTeXTab rewrites ISO 8859-1 accented characters for TeX sources
// using german.sty: umlauts and sharp s become "quote digraphs, everything
// else keeps the braced TeX form.
var ISOToGTeXTab = MustTable("iso2gtex", append([]Rule{
	{"ä", `"a`},
	{"ö", `"o`},
	{"ü", `"u`},
	{"ß", `"s`},
	{"Ä", `"A`},
	{"Ö", `"O`},
	{"Ü", `"U`},
}, isoToTeXCommon...))

// texToISORules decodes TeX accent macros to ISO 8859-1. Per character the
// spellings are tried longest first: braced {\"a}, then \"{a}, then bare
// \"a. The dotless-i entries additionally carry a variant with a trailing
// blank, because a bare \i macro consumes the following space in TeX; that
// variant must stay ahead of the blank-less one or the space survives
// conversion. TeX's accent grammar is richer than any fixed table; this
// covers the spellings the encode table and common sources produce.
var texToISORules = []Rule{
	// a
	{`\{\\"a\}`, "ä"},
	{`\\"\{a\}`, "ä"},
	{`\\"a`, "ä"},
	{"\\{\\\\`a\\}", "à"},
	{"\\\\`\\{a\\}", "à"},
	{"\\\\`a", "à"},
	{`\{\\'a\}`, "á"},
	{`\\'\{a\}`, "á"},
	{`\\'a`, "á"},
	{`\{\\\^a\}`, "â"},
	{`\\\^\{a\}`, "â"},
	{`\\\^a`, "â"},
	{`\{\\~a\}`, "ã"},
	{`\\~\{a\}`, "ã"},
	{`\\~a`, "ã"},
	// e
	{`\{\\"e\}`, "ë"},
	{`\\"\{e\}`, "ë"},
	{`\\"e`, "ë"},
	{"\\{\\\\`e\\}", "è"},
	{"\\\\`\\{e\\}", "è"},
	{"\\\\`e", "è"},
	{`\{\\'e\}`, "é"},
	{`\\'\{e\}`, "é"},
	{`\\'e`, "é"},
	{`\{\\\^e\}`, "ê"},
	{`\\\^\{e\}`, "ê"},
	{`\\\^e`, "ê"},
	// dotless i
	{`\{\\"\\i\}`, "ï"},
	{`\\"\{\\i\}`, "ï"},
	{`\\"\\i `, "ï"},
	{`\\"\\i`, "ï"},
	{"\\{\\\\`\\\\i\\}", "ì"},
	{"\\\\`\\{\\\\i\\}", "ì"},
	{"\\\\`\\\\i ", "ì"},
	{"\\\\`\\\\i", "ì"},
	{`\{\\'\\i\}`, "í"},
	{`\\'\{\\i\}`, "í"},
	{`\\'\\i `, "í"},
	{`\\'\\i`, "í"},
	{`\{\\\^\\i\}`, "î"},
	{`\\\^\{\\i\}`, "î"},
	{`\\\^\\i `, "î"},
	{`\\\^\\i`, "î"},
	// n
	{`\{\\~n\}`, "ñ"},
	{`\\~\{n\}`, "ñ"},
	{`\\~n`, "ñ"},
	// o
	{`\{\\"o\}`, "ö"},
	{`\\"\{o\}`, "ö"},
	{`\\"o`, "ö"},
	{"\\{\\\\`o\\}", "ò"},
	{"\\\\`\\{o\\}", "ò"},
	{"\\\\`o", "ò"},
	{`\{\\'o\}`, "ó"},
	{`\\'\{o\}`, "ó"},
	{`\\'o`, "ó"},
	{`\{\\\^o\}`, "ô"},
	{`\\\^\{o\}`, "ô"},
	{`\\\^o`, "ô"},
	{`\{\\~o\}`, "õ"},
	{`\\~\{o\}`, "õ"},
	{`\\~o`, "õ"},
	// u
	{`\{\\"u\}`, "ü"},
	{`\\"\{u\}`, "ü"},
	{`\\"u`, "ü"},
	{"\\{\\\\`u\\}", "ù"},
	{"\\\\`\\{u\\}", "ù"},
	{"\\\\`u", "ù"},
	{`\{\\'u\}`, "ú"},
	{`\\'\{u\}`, "ú"},
	{`\\'u`, "ú"},
	{`\{\\\^u\}`, "û"},
	{`\\\^\{u\}`, "û"},
	{`\\\^u`, "û"},
	// y
	{`\{\\'y\}`, "ý"},
	{`\\'\{y\}`, "ý"},
	{`\\'y`, "ý"},
	{`\{\\"y\}`, "ÿ"},
	{`\\"\{y\}`, "ÿ"},
	{`\\"y`, "ÿ"},
	// letterless macros; the space-eating variant precedes the bare one
	{`\{\\ss\}`, "ß"},
	{`\\ss `, "ß"},
	{`\\ss`, "ß"},
	{`\{\\ae\}`, "æ"},
	{`\\ae `, "æ"},
	{`\\ae`, "æ"},
	{`\{\\aa\}`, "å"},
	{`\\aa `, "å"},
	{`\\aa`, "å"},
	// \o and \O have no bare entry: it would swallow the start of \omega
	{`\{\\o\}`, "ø"},
	{`\\o `, "ø"},
	// cedilla
	{`\{\\c c\}`, "ç"},
	{`\\c\{c\}`, "ç"},
	{`\{\\c C\}`, "Ç"},
	{`\\c\{C\}`, "Ç"},
	// A
	{`\{\\"A\}`, "Ä"},
	{`\\"\{A\}`, "Ä"},
	{`\\"A`, "Ä"},
	{"\\{\\\\`A\\}", "À"},
	{"\\\\`\\{A\\}", "À"},
	{"\\\\`A", "À"},
	{`\{\\'A\}`, "Á"},
	{`\\'\{A\}`, "Á"},
	{`\\'A`, "Á"},
	{`\{\\\^A\}`, "Â"},
	{`\\\^\{A\}`, "Â"},
	{`\\\^A`, "Â"},
	{`\{\\~A\}`, "Ã"},
	{`\\~\{A\}`, "Ã"},
	{`\\~A`, "Ã"},
	// E
	{`\{\\"E\}`, "Ë"},
	{`\\"\{E\}`, "Ë"},
	{`\\"E`, "Ë"},
	{"\\{\\\\`E\\}", "È"},
	{"\\\\`\\{E\\}", "È"},
	{"\\\\`E", "È"},
	{`\{\\'E\}`, "É"},
	{`\\'\{E\}`, "É"},
	{`\\'E`, "É"},
	{`\{\\\^E\}`, "Ê"},
	{`\\\^\{E\}`, "Ê"},
	{`\\\^E`, "Ê"},
	// I
	{`\{\\"I\}`, "Ï"},
	{`\\"\{I\}`, "Ï"},
	{`\\"I`, "Ï"},
	{"\\{\\\\`I\\}", "Ì"},
	{"\\\\`\\{I\\}", "Ì"},
	{"\\\\`I", "Ì"},
	{`\{\\'I\}`, "Í"},
	{`\\'\{I\}`, "Í"},
	{`\\'I`, "Í"},
	{`\{\\\^I\}`, "Î"},
	{`\\\^\{I\}`, "Î"},
	{`\\\^I`, "Î"},
	// N
	{`\{\\~N\}`, "Ñ"},
	{`\\~\{N\}`, "Ñ"},
	{`\\~N`, "Ñ"},
	// O
	{`\{\\"O\}`, "Ö"},
	{`\\"\{O\}`, "Ö"},
	{`\\"O`, "Ö"},
	{"\\{\\\\`O\\}", "Ò"},
	{"\\\\`\\{O\\}", "Ò"},
	{"\\\\`O", "Ò"},
	{`\{\\'O\}`, "Ó"},
	{`\\'\{O\}`, "Ó"},
	{`\\'O`, "Ó"},
	{`\{\\\^O\}`, "Ô"},
	{`\\\^\{O\}`, "Ô"},
	{`\\\^O`, "Ô"},
	{`\{\\~O\}`, "Õ"},
	{`\\~\{O\}`, "Õ"},
	{`\\~O`, "Õ"},
	// U
	{`\{\\"U\}`, "Ü"},
	{`\\"\{U\}`, "Ü"},
	{`\\"U`, "Ü"},
	{"\\{\\\\`U\\}", "Ù"},
	{"\\\\`\\{U\\}", "Ù"},
	{"\\\\`U", "Ù"},
	{`\{\\'U\}`, "Ú"},
	{`\\'\{U\}`, "Ú"},
	{`\\'U`, "Ú"},
	{`\{\\\^U\}`, "Û"},
	{`\\\^\{U\}`, "Û"},
	{`\\\^U`, "Û"},
	// Y
	{`\{\\'Y\}`, "Ý"},
	{`\\'\{Y\}`, "Ý"},
	{`\\'Y`, "Ý"},
	// ligatures and punctuation
	{`\{\\AE\}`, "Æ"},
	{`\\AE `, "Æ"},
	{`\\AE`, "Æ"},
	{`\{\\AA\}`, "Å"},
	{`\\AA `, "Å"},
	{`\\AA`, "Å"},
	{`\{\\O\}`, "Ø"},
	{`\\O `, "Ø"},
	{"\\?`", "¿"},
	{"!`", "¡"},
}

// TeXToISOTab rewrites TeX accent macros to ISO 8859-1 characters.
var TeXToISOTab = MustTable("tex2iso", texToISORules)

// GTeXToISOTab rewrites TeX sources using german.sty: the plain TeX macros
// decode first (so \"a is consumed before the digraph rules can see its
// quote), then the "quote digraphs.
var GTeXToISOTab = MustTable("gtex2iso",
	append(append([]Rule{}, texToISORules...), germanQuoteRules...))
