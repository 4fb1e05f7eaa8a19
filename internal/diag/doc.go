// Package diag defines the diagnostic model shared by the lexer and parser.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by the lexical and syntactic phases.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//   - Model every error as a catalogued Kind so that each diagnostic carries
//     a stable machine-readable code, a reason identifier, and a message
//     rendered from structured details.
//
// # Data model
//
// Kind is a catalog entry: numeric Code, stable Reason string, optional
// syntax-dialect tag, a Fatal flag (whether raising it aborts the parse),
// required detail keys, and a render function over the details payload.
// Kinds are registered once at package init via Define; duplicate codes or
// reasons panic — that is a composition-time programmer error, never a
// user-facing diagnostic.
//
// Diagnostic is the immutable value built from a Kind plus a span, a
// resolved position, and a details map. Message() renders lazily as
// "<text> (<line>:<col>)". Clone produces a modified copy: supplied fields
// replace, everything else (including the Kind) is preserved, and details
// are shallow-merged.
//
// Diagnostics raised because a construct belongs to an inactive syntax
// dialect carry MissingDialect, so tooling can tell "valid under dialect D"
// apart from "plainly invalid".
//
// # Emitting diagnostics
//
// Phases emit through a Reporter. BagReporter aggregates into a Bag, which
// supports a cap, stable position sorting, and deduplication. Whether a
// diagnostic is fatal or recoverable is a fixed property of its Kind; the
// parser consults Kind.Fatal, it never decides per call site.
package diag
