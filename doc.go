// Package cnum is a toolkit of composable numeric types: small, orthogonal
// integer wrappers that nest to buy exactly the arithmetic guarantees you
// need — widening, overflow policies, fixed-point scaling, exact ratios.
//
// 🚀 What is cnum?
//
//	A value-semantics library built around one protocol (trait.Rep) and
//	five families that compose through it:
//		• trait/    — the representation protocol, storage ladder & machine words
//		• elastic/  — widening integers: results grow, values never overflow
//		• checked/  — overflow tags: contract, saturate, modulo, sticky
//		• scaled/   — fixed-point values over any wrapped representation
//		• fraction/ — exact unreduced ratios with explicit reduction
//		• compose/  — heterogeneous operators: lifting, promotion, decay
//
// ✨ Why choose cnum?
//
//   - Pay-as-you-go guarantees – each wrapper adds one concern, nothing more
//   - Immutable value types – every operation returns a new value
//   - Honest failure – sentinel errors for contract violations, never panics
//   - Composable – scaled<checked<word>> and friends just work
//
// Quick example:
//
//	e := elastic.Of(100)          // elastic<7, int8>
//	p, _ := e.Mul(elastic.Of(5))  // elastic<10, int8> — room for any product
//	r, _ := compose.Add(p, 12)    // native operands promote automatically
//
// Dive into the package docs for each family's laws and the README for a
// tour of the composition rules.
//
//	go get github.com/katalvlaran/cnum
package cnum
