package format

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/isoconv/internal/convert"
	"github.com/dshills/isoconv/internal/engine/buffer"
)

// Registry holds registered formats in registration order. Order matters:
// DetectFormat probes formats first to last, so more specific detectors
// should be registered first.
type Registry struct {
	mu      sync.RWMutex
	formats []*Format
	byName  map[string]*Format
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Format),
	}
}

// Register adds a format. The name must be unique within the registry.
// The format is stamped with a unique ID used for menu item identity.
func (r *Registry) Register(f *Format) error {
	if f.Name == "" {
		return fmt.Errorf("format name must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[f.Name]; exists {
		return fmt.Errorf("format %q already registered", f.Name)
	}

	f.id = uuid.NewString()
	r.formats = append(r.formats, f)
	r.byName[f.Name] = f
	return nil
}

// Lookup returns the format registered under name.
func (r *Registry) Lookup(name string) (*Format, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byName[name]
	return f, ok
}

// Formats returns the registered formats in registration order.
func (r *Registry) Formats() []*Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Format, len(r.formats))
	copy(out, r.formats)
	return out
}

// DetectFormat returns the first registered format whose detection
// predicate matches the content sample.
func (r *Registry) DetectFormat(sample string) (*Format, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.formats {
		if f.Detect != nil && f.Detect(sample) {
			return f, true
		}
	}
	return nil, false
}

// Builtin returns a registry with the builtin formats registered. The
// German strictness applies to the german format's decode table.
func Builtin(strict convert.Strictness) *Registry {
	r := NewRegistry()

	// gtex is registered ahead of tex: its detector also fires on plain
	// TeX umlaut macros, which is benign because its decode table is a
	// superset of the tex one.
	// Registration cannot fail here: the names are distinct literals.
	_ = r.Register(&Format{
		Name:        "gtex",
		Description: "TeX with german.sty quote digraphs",
		Detect:      DetectPattern(`"[aouAOUs]|\\3`),
		Decode:      convert.ConvertGTeXToISO,
		Encode:      convert.ConvertISOToGTeX,
	})
	_ = r.Register(&Format{
		Name:        "tex",
		Description: "TeX accent macros",
		Detect:      DetectPattern("\\\\[\"'`^~]|\\\\(ss|ae|aa|AE|AA|[oO])[ }]"),
		Decode:      convert.ConvertTeXToISO,
		Encode:      convert.ConvertISOToTeX,
	})
	_ = r.Register(&Format{
		Name:        "sgml",
		Description: "SGML named entities",
		Detect:      DetectPattern(`&[a-zA-Z]+;`),
		Decode:      convert.ConvertSGMLToISO,
		Encode:      convert.ConvertISOToSGML,
	})
	_ = r.Register(&Format{
		Name:        "german",
		Description: "German quote digraphs",
		Decode: func(buf *buffer.Buffer, from, to buffer.ByteOffset) (buffer.ByteOffset, error) {
			return convert.ConvertGermanToISO(buf, from, to, strict)
		},
	})
	_ = r.Register(&Format{
		Name:        "spanish",
		Description: "Spanish tilde and accent digraphs",
		Decode:      convert.ConvertSpanishToISO,
	})
	_ = r.Register(&Format{
		Name:        "duden",
		Description: "Duden ASCII transliteration",
		Encode:      convert.ConvertISOToDuden,
	})

	return r
}
