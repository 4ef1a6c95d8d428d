// Package token defines the raw lexical kinds, context flags, and token
// shape produced by the upstream tokenizer.
// Invariants:
//   - RawToken.Extent.Text is exactly the source slice the offsets cover.
//   - Kind values are stable per tokenizer revision; dumps carry kind
//     names, not ordinals, so reserved future slots decode as Unknown.
//   - Flags are orthogonal to Kind: the same lexical kind may carry
//     different context flags depending on syntactic position.
package token
