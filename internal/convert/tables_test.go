package convert

import (
	"strings"
	"testing"

	"github.com/dshills/isoconv/internal/engine/buffer"
)

func TestGermanAggressive(t *testing.T) {
	got := applyString(t, GermanToISOAggressiveTab, `Gr"u"se und "Anfang`)
	want := "Grüße und Änfang"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGermanConservative(t *testing.T) {
	// Digraphs fire only after a letter; leading quotes survive.
	got := applyString(t, GermanToISOConservativeTab, `"Alle Gr"u"se aus D"usseldorf"`)
	want := `"Alle Grüße aus Düsseldorf"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGermanConservativeAdjacentDigraphs(t *testing.T) {
	// The "s digraph follows a freshly rewritten "u: the umlaut must count
	// as context or the second digraph never fires.
	if got := applyString(t, GermanToISOConservativeTab, `Gr"u"se`); got != "Grüße" {
		t.Errorf("got %q, want %q", got, "Grüße")
	}
}

func TestGermanBackslashThree(t *testing.T) {
	if got := applyString(t, GermanToISOAggressiveTab, `gro\3`); got != "groß" {
		t.Errorf("got %q, want %q", got, "groß")
	}
	if got := applyString(t, GermanToISOConservativeTab, `gro\3`); got != "groß" {
		t.Errorf("got %q, want %q", got, "groß")
	}
}

func TestGermanCaseSensitivity(t *testing.T) {
	// "A must not match "a and vice versa, regardless of any case-fold
	// configuration elsewhere.
	if got := applyString(t, GermanToISOAggressiveTab, `"a "A`); got != "ä Ä" {
		t.Errorf("got %q, want %q", got, "ä Ä")
	}
	// No rule exists for "S; it must not be folded onto "s.
	if got := applyString(t, GermanToISOAggressiveTab, `ma"S`); got != `ma"S` {
		t.Errorf("got %q, want unchanged %q", got, `ma"S`)
	}
}

func TestSpanish(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Espa~na", "España"},
		{"~Nandu", "Ñandu"},
		{"Mar'ia", "María"},
		{"coraz'on", "corazón"},
		{"alg'un", "algún"},
	}

	for _, tt := range tests {
		if got := applyString(t, SpanishToISOTab, tt.in); got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.in, got, tt.want)
		}
	}

	if got := applyString(t, SpanishToISOTab, `ping"uino`); got != "pingüino" {
		t.Errorf("got %q, want %q", got, "pingüino")
	}

	// A bare apostrophe with no following vowel survives.
	if got := applyString(t, SpanishToISOTab, "it's"); got != "it's" {
		t.Errorf("got %q, want unchanged %q", got, "it's")
	}
}

func TestTeXDecode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{\"u}ber`, "über"},
		{`\"uber`, "über"},
		{`\"{u}ber`, "über"},
		{`Gr{\"o}{\ss}e`, "Größe"},
		{`na{\"\i}ve`, "naïve"},
		{`Pe{\~n}a... {\~n}`, "Peña... ñ"},
		{`{\c c}a va`, "ça va"},
		{"?`Qu\\'e?", "¿Qué?"},
	}
	for _, tt := range tests {
		if got := applyString(t, TeXToISOTab, tt.in); got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTeXDotlessISpaceCleanup(t *testing.T) {
	// The bare \i macro consumes the following blank in TeX, so the decode
	// entry with a trailing blank must win over the blank-less one. Rule
	// order inside the table is a frozen contract; this is its regression
	// test.
	if got := applyString(t, TeXToISOTab, `na\"\i ve`); got != "naïve" {
		t.Errorf(`na\"\i ve: got %q, want %q`, got, "naïve")
	}
	// Without a trailing blank the shorter entry still fires.
	if got := applyString(t, TeXToISOTab, `na\"\i`); got != "naï" {
		t.Errorf(`na\"\i: got %q, want %q`, got, "naï")
	}
}

func TestTeXEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"über", `{\"u}ber`},
		{"Größe", `Gr{\"o}{\ss}e`},
		{"façade", `fa{\c c}ade`},
		{"¿Qué?", "?`Qu{\\'e}?"},
	}
	for _, tt := range tests {
		if got := applyString(t, ISOToTeXTab, tt.in); got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGTeX(t *testing.T) {
	// Encode spells umlauts as "quote digraphs, other accents as TeX.
	if got := applyString(t, ISOToGTeXTab, "Größe déjà"); got != `Gr"o"se d{\'e}j{\`+"`"+`a}` {
		t.Errorf("encode: got %q", got)
	}

	// Decode handles both digraphs and plain TeX macros; the TeX rules run
	// first so \"a is not mistaken for a quote digraph.
	if got := applyString(t, GTeXToISOTab, `Gr"o"se und \"Apfel`); got != "Größe und Äpfel" {
		t.Errorf("decode: got %q, want %q", got, "Größe und Äpfel")
	}
}

func TestSGML(t *testing.T) {
	if got := applyString(t, SGMLToISOTab, "K&auml;se &amp; Brot"); got != "Käse &amp; Brot" {
		t.Errorf("decode: got %q", got)
	}
	if got := applyString(t, ISOToSGMLTab, "Käse"); got != "K&auml;se" {
		t.Errorf("encode: got %q", got)
	}
}

func TestDudenLossyOneWay(t *testing.T) {
	got := applyString(t, ISOToDudenTab, "Äußerst schöne Grüße")
	want := "Aeusserst schoene Gruesse"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// isoRepertoire is the accented character repertoire the TeX tables cover.
const isoRepertoire = "àáâãäåæçèéêëìíîïñòóôõöøùúûüýÿ" +
	"ÀÁÂÃÄÅÆÇÈÉÊËÌÍÎÏÑÒÓÔÕÖØÙÚÛÜÝ¿¡ß"

// sgmlRepertoire additionally includes the letters that have entities but
// no TeX macro.
const sgmlRepertoire = isoRepertoire + "ðþÐÞ"

func roundTrip(t *testing.T, encode, decode *Table, text string) {
	t.Helper()

	buf := buffer.NewBufferFromString(text)
	if _, err := ApplyAll(buf, encode); err != nil {
		t.Fatalf("encode: %v", err)
	}
	encoded := buf.Text()
	if _, err := ApplyAll(buf, decode); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if buf.Text() != text {
		t.Errorf("round trip via %s/%s: %q -> %q -> %q",
			encode.Name(), decode.Name(), text, encoded, buf.Text())
	}
}

func TestTeXRoundTrip(t *testing.T) {
	roundTrip(t, ISOToTeXTab, TeXToISOTab, isoRepertoire)
	roundTrip(t, ISOToTeXTab, TeXToISOTab, "¿Señor Müller übt Käsespätzle in Ångström?")
}

func TestGTeXRoundTrip(t *testing.T) {
	roundTrip(t, ISOToGTeXTab, GTeXToISOTab, isoRepertoire)
	roundTrip(t, ISOToGTeXTab, GTeXToISOTab, "Die größte Öffnung für Übermut")
}

func TestSGMLRoundTrip(t *testing.T) {
	roundTrip(t, ISOToSGMLTab, SGMLToISOTab, sgmlRepertoire)
	roundTrip(t, ISOToSGMLTab, SGMLToISOTab, "Grüße aus Ðjúpivogur með þökk")
}

func TestDecodeIdempotentOnPlainText(t *testing.T) {
	// Decoding text that carries no escapes must leave it untouched:
	// unmatched text is not an error and not modified.
	plain := "The quick brown fox, 42 times."
	for _, tab := range []*Table{TeXToISOTab, GTeXToISOTab, SGMLToISOTab, SpanishToISOTab} {
		if got := applyString(t, tab, plain); got != plain {
			t.Errorf("table %s modified plain text: %q", tab.Name(), got)
		}
	}
}

func TestTableForCoversAllDirections(t *testing.T) {
	for _, dir := range Directions() {
		tab, err := TableFor(dir, Conservative)
		if err != nil {
			t.Errorf("TableFor(%s): %v", dir, err)
			continue
		}
		if tab.Len() == 0 {
			t.Errorf("TableFor(%s): empty table", dir)
		}
	}

	if _, err := TableFor(Direction(200), Conservative); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestTableForGermanStrictness(t *testing.T) {
	cons, _ := TableFor(GermanToISO, Conservative)
	aggr, _ := TableFor(GermanToISO, Aggressive)

	if cons.Name() != "german2iso" {
		t.Errorf("conservative table = %q", cons.Name())
	}
	if aggr.Name() != "german2iso-aggressive" {
		t.Errorf("aggressive table = %q", aggr.Name())
	}
}

func TestParseDirection(t *testing.T) {
	for _, dir := range Directions() {
		got, err := ParseDirection(dir.String())
		if err != nil {
			t.Errorf("ParseDirection(%q): %v", dir.String(), err)
			continue
		}
		if got != dir {
			t.Errorf("ParseDirection(%q) = %v, want %v", dir.String(), got, dir)
		}
	}

	if _, err := ParseDirection("nope"); err == nil {
		t.Error("expected error for unknown direction name")
	}
}

func TestParseStrictness(t *testing.T) {
	if s, err := ParseStrictness("aggressive"); err != nil || s != Aggressive {
		t.Errorf("ParseStrictness(aggressive) = %v, %v", s, err)
	}
	if s, err := ParseStrictness("conservative"); err != nil || s != Conservative {
		t.Errorf("ParseStrictness(conservative) = %v, %v", s, err)
	}
	if _, err := ParseStrictness("bold"); err == nil {
		t.Error("expected error for unknown strictness")
	}
}

func TestEntryPoints(t *testing.T) {
	type entry struct {
		name string
		fn   func(*buffer.Buffer, buffer.ByteOffset, buffer.ByteOffset) (buffer.ByteOffset, error)
		in   string
		want string
	}
	entries := []entry{
		{"spanish", ConvertSpanishToISO, "Espa~na", "España"},
		{"iso2tex", ConvertISOToTeX, "ü", `{\"u}`},
		{"tex2iso", ConvertTeXToISO, `{\"u}`, "ü"},
		{"gtex2iso", ConvertGTeXToISO, `Gr"u"se`, "Grüße"},
		{"iso2gtex", ConvertISOToGTeX, "Grüße", `Gr"u"se`},
		{"iso2duden", ConvertISOToDuden, "Grüße", "Gruesse"},
		{"iso2sgml", ConvertISOToSGML, "ä", "&auml;"},
		{"sgml2iso", ConvertSGMLToISO, "&auml;", "ä"},
	}

	for _, e := range entries {
		buf := buffer.NewBufferFromString(e.in)
		end, err := e.fn(buf, 0, buf.Len())
		if err != nil {
			t.Errorf("%s: %v", e.name, err)
			continue
		}
		if buf.Text() != e.want {
			t.Errorf("%s: got %q, want %q", e.name, buf.Text(), e.want)
		}
		if end != int64(len(e.want)) {
			t.Errorf("%s: end = %d, want %d", e.name, end, len(e.want))
		}
	}

	// German with explicit strictness.
	buf := buffer.NewBufferFromString(`"uber Gr"u"se`)
	if _, err := ConvertGermanToISO(buf, 0, buf.Len(), Conservative); err != nil {
		t.Fatalf("german conservative: %v", err)
	}
	if buf.Text() != `"uber Grüße` {
		t.Errorf("conservative: got %q", buf.Text())
	}

	buf = buffer.NewBufferFromString(`"uber Gr"u"se`)
	if _, err := ConvertGermanToISO(buf, 0, buf.Len(), Aggressive); err != nil {
		t.Fatalf("german aggressive: %v", err)
	}
	if buf.Text() != "über Grüße" {
		t.Errorf("aggressive: got %q", buf.Text())
	}
}

func TestEncodeProducesOnlyASCIIEscapes(t *testing.T) {
	buf := buffer.NewBufferFromString(isoRepertoire)
	if _, err := ApplyAll(buf, ISOToTeXTab); err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, r := range buf.Text() {
		if r > 127 {
			t.Fatalf("non-ASCII rune %q survived TeX encoding of %q", r, isoRepertoire)
		}
	}
	if strings.ContainsRune(buf.Text(), 'ß') {
		t.Error("sharp s survived encoding")
	}
}
