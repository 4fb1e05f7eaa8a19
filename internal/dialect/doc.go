// Package dialect names the optional syntax extensions the parser can
// compose: JSX, type annotations, decorators, and the pipeline operator.
//
// A dialect Set is fixed per parse invocation before parsing starts and
// never changes mid-parse. The parser consults the set to decide between
// "parse this construct" and "raise an unsupported-syntax diagnostic that
// names the dialect which would accept it".
package dialect
