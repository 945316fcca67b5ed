// Package resolver implements the parameter resolver of SPEC_FULL.md
// §4.1: given a mapping of name to (numeric literal | unit-bearing
// literal | symbolic expression), it produces a mapping of name to
// finite float64, evaluated in dependency order.
//
// Expressions are compiled and evaluated with
// github.com/expr-lang/expr; free-identifier extraction for the
// dependency graph walks the AST from expr-lang's own parser rather than
// a second ad-hoc tokenizer, so the dependency graph and the evaluator
// agree on what an expression references.
package resolver
