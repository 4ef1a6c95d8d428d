// Package classify maps raw lexical tokens to the small public category
// taxonomy consumed by syntax-aware tooling.
//
// Classification is a pure total function: context-flag override rules
// run first in fixed priority order, then a static kind table, then the
// Unknown fallback. No input can make it fail.
package classify
