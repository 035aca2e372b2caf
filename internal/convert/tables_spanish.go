package convert

// SpanishToISOTab rewrites the Spanish ASCII digraph convention to
// ISO 8859-1. Accent digraphs require a preceding letter so that ordinary
// apostrophes in running text survive; the letter is kept via ${1}.
var SpanishToISOTab = MustTable("spanish2iso", []Rule{
	{`~n`, "ñ"},
	{`~N`, "Ñ"},
	{`([a-zA-Z])'a`, "${1}á"},
	{`([a-zA-Z])'A`, "${1}Á"},
	{`([a-zA-Z])'e`, "${1}é"},
	{`([a-zA-Z])'E`, "${1}É"},
	{`([a-zA-Z])'i`, "${1}í"},
	{`([a-zA-Z])'I`, "${1}Í"},
	{`([a-zA-Z])'o`, "${1}ó"},
	{`([a-zA-Z])'O`, "${1}Ó"},
	{`([a-zA-Z])'u`, "${1}ú"},
	{`([a-zA-Z])'U`, "${1}Ú"},
	{`([a-zA-Z])"u`, "${1}ü"},
	{`([a-zA-Z])"U`, "${1}Ü"},
})
