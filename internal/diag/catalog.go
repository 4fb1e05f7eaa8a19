package diag

import (
	"fmt"
	"sort"
)

// Details carries the structured payload a diagnostic is rendered from.
type Details map[string]any

// Kind is a catalog entry describing one class of diagnostics.
// Fatal is a fixed property of the kind: raising a fatal kind stops the
// current parse, recoverable kinds are queued and parsing continues.
type Kind struct {
	Code     Code
	Reason   string
	Dialect  string // identifier of the syntax dialect this kind belongs to
	Fatal    bool
	Severity Severity
	Required []string
	render   func(Details) string
}

var (
	byCode   = map[Code]*Kind{}
	byReason = map[string]*Kind{}
)

// KindOption настраивает создаваемый Kind.
type KindOption func(*Kind)

// WithDialect tags the kind with a syntax dialect identifier. Diagnostics
// of such kinds carry MissingDialect when the dialect is inactive.
func WithDialect(tag string) KindOption {
	return func(k *Kind) { k.Dialect = tag }
}

// Fatal marks the kind as parse-aborting.
func Fatal() KindOption {
	return func(k *Kind) { k.Fatal = true }
}

// WithSeverity overrides the default SevError.
func WithSeverity(s Severity) KindOption {
	return func(k *Kind) { k.Severity = s }
}

// WithRequired lists detail keys that must be present at construction.
func WithRequired(keys ...string) KindOption {
	return func(k *Kind) { k.Required = keys }
}

// Define registers a diagnostic kind in the catalog and returns it.
// Повторная регистрация кода или reason — ошибка композиции, паникуем.
func Define(code Code, reason string, render func(Details) string, opts ...KindOption) *Kind {
	if render == nil {
		panic(fmt.Errorf("diag: kind %q has no render function", reason))
	}
	if _, dup := byCode[code]; dup {
		panic(fmt.Errorf("diag: duplicate code %d for kind %q", code, reason))
	}
	if _, dup := byReason[reason]; dup {
		panic(fmt.Errorf("diag: duplicate reason %q", reason))
	}
	k := &Kind{
		Code:     code,
		Reason:   reason,
		Severity: SevError,
		render:   render,
	}
	for _, opt := range opts {
		opt(k)
	}
	byCode[code] = k
	byReason[reason] = k
	return k
}

// Static wraps a fixed message as a render function.
func Static(msg string) func(Details) string {
	return func(Details) string { return msg }
}

// Lookup returns the kind registered for the code.
func Lookup(code Code) (*Kind, bool) {
	k, ok := byCode[code]
	return k, ok
}

// ByReason returns the kind registered under the reason identifier.
func ByReason(reason string) (*Kind, bool) {
	k, ok := byReason[reason]
	return k, ok
}

// ForDialect returns all kinds tagged with the dialect identifier, sorted
// by code so tooling can enumerate them deterministically.
func ForDialect(tag string) []*Kind {
	var out []*Kind
	for _, k := range byCode {
		if k.Dialect == tag {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
