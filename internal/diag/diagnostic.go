package diag

import (
	"fmt"

	"volt/internal/source"
)

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is an immutable finding built from a catalog Kind.
// Modified copies are produced only through Clone.
type Diagnostic struct {
	Kind     *Kind
	Severity Severity
	Primary  source.Span
	Pos      source.Position // resolved start of Primary
	Details  Details
	Notes    []Note
	// MissingDialect names the dialect(s) that would make the construct
	// valid. Present exactly when the failure is solely due to an
	// inactive dialect.
	MissingDialect []string
}

// New builds a diagnostic from the kind. Required detail keys are checked
// here; a missing key is a programmer error and panics.
func (k *Kind) New(primary source.Span, pos source.Position, details Details) Diagnostic {
	for _, key := range k.Required {
		if _, ok := details[key]; !ok {
			panic(fmt.Errorf("diag: kind %q requires detail %q", k.Reason, key))
		}
	}
	d := Diagnostic{
		Kind:     k,
		Severity: k.Severity,
		Primary:  primary,
		Pos:      pos,
		Details:  details,
	}
	// Только кинды диалектного диапазона означают «включите диалект D»;
	// jsx-синтаксические кинды возникают уже при активном диалекте.
	if k.Code >= DialInfo && k.Code < DialInfo+1000 && k.Dialect != "" {
		d.MissingDialect = []string{k.Dialect}
	}
	return d
}

// Message renders the diagnostic text lazily:
// "<rendered> (<line>:<col>)".
func (d Diagnostic) Message() string {
	return fmt.Sprintf("%s (%d:%d)", d.Kind.render(d.Details), d.Pos.Line, d.Pos.Col)
}

// Text renders the message without the position suffix.
func (d Diagnostic) Text() string {
	return d.Kind.render(d.Details)
}

// Fatal reports whether the diagnostic aborts parsing.
func (d Diagnostic) Fatal() bool {
	return d.Kind.Fatal
}

// CloneOption overrides a single field of a cloned diagnostic.
type CloneOption func(*Diagnostic)

// WithPos replaces the resolved position.
func WithPos(p source.Position) CloneOption {
	return func(d *Diagnostic) { d.Pos = p }
}

// WithSpan replaces the primary span.
func WithSpan(sp source.Span) CloneOption {
	return func(d *Diagnostic) { d.Primary = sp }
}

// WithDetail merges a single detail over the cloned payload.
func WithDetail(key string, v any) CloneOption {
	return func(d *Diagnostic) { d.Details[key] = v }
}

// Clone returns a copy with the supplied overrides applied. Fields without
// an override keep their current values; Kind is always preserved; the
// details map is copied before merging so the original stays untouched.
func (d Diagnostic) Clone(opts ...CloneOption) Diagnostic {
	out := d
	out.Details = make(Details, len(d.Details))
	for k, v := range d.Details {
		out.Details[k] = v
	}
	if len(d.Notes) > 0 {
		out.Notes = append([]Note(nil), d.Notes...)
	}
	if len(d.MissingDialect) > 0 {
		out.MissingDialect = append([]string(nil), d.MissingDialect...)
	}
	for _, opt := range opts {
		opt(&out)
	}
	return out
}

// WithNote returns a copy carrying an extra note.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	out := d.Clone()
	out.Notes = append(out.Notes, Note{Span: sp, Msg: msg})
	return out
}
