package convert

// ISOToSGMLTab rewrites ISO 8859-1 accented Latin letters to SGML named
// entities per the ISO 8879 "Added Latin 1" entity set. Letters only; the
// symbol entities (&nbsp; and friends) are outside the repertoire of these
// conversions.
var ISOToSGMLTab = MustTable("iso2sgml", []Rule{
	{"À", "&Agrave;"},
	{"Á", "&Aacute;"},
	{"Â", "&Acirc;"},
	{"Ã", "&Atilde;"},
	{"Ä", "&Auml;"},
	{"Å", "&Aring;"},
	{"Æ", "&AElig;"},
	{"Ç", "&Ccedil;"},
	{"È", "&Egrave;"},
	{"É", "&Eacute;"},
	{"Ê", "&Ecirc;"},
	{"Ë", "&Euml;"},
	{"Ì", "&Igrave;"},
	{"Í", "&Iacute;"},
	{"Î", "&Icirc;"},
	{"Ï", "&Iuml;"},
	{"Ð", "&ETH;"},
	{"Ñ", "&Ntilde;"},
	{"Ò", "&Ograve;"},
	{"Ó", "&Oacute;"},
	{"Ô", "&Ocirc;"},
	{"Õ", "&Otilde;"},
	{"Ö", "&Ouml;"},
	{"Ø", "&Oslash;"},
	{"Ù", "&Ugrave;"},
	{"Ú", "&Uacute;"},
	{"Û", "&Ucirc;"},
	{"Ü", "&Uuml;"},
	{"Ý", "&Yacute;"},
	{"Þ", "&THORN;"},
	{"ß", "&szlig;"},
	{"à", "&agrave;"},
	{"á", "&aacute;"},
	{"â", "&acirc;"},
	{"ã", "&atilde;"},
	{"ä", "&auml;"},
	{"å", "&aring;"},
	{"æ", "&aelig;"},
	{"ç", "&ccedil;"},
	{"è", "&egrave;"},
	{"é", "&eacute;"},
	{"ê", "&ecirc;"},
	{"ë", "&euml;"},
	{"ì", "&igrave;"},
	{"í", "&iacute;"},
	{"î", "&icirc;"},
	{"ï", "&iuml;"},
	{"ð", "&eth;"},
	{"ñ", "&ntilde;"},
	{"ò", "&ograve;"},
	{"ó", "&oacute;"},
	{"ô", "&ocirc;"},
	{"õ", "&otilde;"},
	{"ö", "&ouml;"},
	{"ø", "&oslash;"},
	{"ù", "&ugrave;"},
	{"ú", "&uacute;"},
	{"û", "&ucirc;"},
	{"ü", "&uuml;"},
	{"ý", "&yacute;"},
	{"þ", "&thorn;"},
	{"ÿ", "&yuml;"},
})

// SGMLToISOTab rewrites SGML named entities back to ISO 8859-1 characters.
// Unknown entities are left untouched.
var SGMLToISOTab = MustTable("sgml2iso", []Rule{
	{"&Agrave;", "À"},
	{"&Aacute;", "Á"},
	{"&Acirc;", "Â"},
	{"&Atilde;", "Ã"},
	{"&Auml;", "Ä"},
	{"&Aring;", "Å"},
	{"&AElig;", "Æ"},
	{"&Ccedil;", "Ç"},
	{"&Egrave;", "È"},
	{"&Eacute;", "É"},
	{"&Ecirc;", "Ê"},
	{"&Euml;", "Ë"},
	{"&Igrave;", "Ì"},
	{"&Iacute;", "Í"},
	{"&Icirc;", "Î"},
	{"&Iuml;", "Ï"},
	{"&ETH;", "Ð"},
	{"&Ntilde;", "Ñ"},
	{"&Ograve;", "Ò"},
	{"&Oacute;", "Ó"},
	{"&Ocirc;", "Ô"},
	{"&Otilde;", "Õ"},
	{"&Ouml;", "Ö"},
	{"&Oslash;", "Ø"},
	{"&Ugrave;", "Ù"},
	{"&Uacute;", "Ú"},
	{"&Ucirc;", "Û"},
	{"&Uuml;", "Ü"},
	{"&Yacute;", "Ý"},
	{"&THORN;", "Þ"},
	{"&szlig;", "ß"},
	{"&agrave;", "à"},
	{"&aacute;", "á"},
	{"&acirc;", "â"},
	{"&atilde;", "ã"},
	{"&auml;", "ä"},
	{"&aring;", "å"},
	{"&aelig;", "æ"},
	{"&ccedil;", "ç"},
	{"&egrave;", "è"},
	{"&eacute;", "é"},
	{"&ecirc;", "ê"},
	{"&euml;", "ë"},
	{"&igrave;", "ì"},
	{"&iacute;", "í"},
	{"&icirc;", "î"},
	{"&iuml;", "ï"},
	{"&eth;", "ð"},
	{"&ntilde;", "ñ"},
	{"&ograve;", "ò"},
	{"&oacute;", "ó"},
	{"&ocirc;", "ô"},
	{"&otilde;", "õ"},
	{"&ouml;", "ö"},
	{"&oslash;", "ø"},
	{"&ugrave;", "ù"},
	{"&uacute;", "ú"},
	{"&ucirc;", "û"},
	{"&uuml;", "ü"},
	{"&yacute;", "ý"},
	{"&thorn;", "þ"},
	{"&yuml;", "ÿ"},
})
