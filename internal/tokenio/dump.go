package tokenio

import (
	"fmt"

	"fortio.org/safecast"

	"slate/internal/source"
	"slate/internal/token"
)

// Current schema version - increment when the dump format changes.
const dumpSchemaVersion uint16 = 1

// Dump is the interchange form the external tokenizer hands across the
// process boundary: the original source text plus one record per token.
// Positions are not carried; they are rederived from Source so a dump
// can never disagree with its own text.
type Dump struct {
	Schema uint16   `json:"schema" msgpack:"schema"`
	Source string   `json:"source" msgpack:"source"`
	Tokens []Record `json:"tokens" msgpack:"tokens"`
}

// Record is one raw token in dump form. Kind and flags travel as names,
// not ordinals, so dumps survive tokenizer enum growth.
type Record struct {
	Kind  string   `json:"kind" msgpack:"kind"`
	Flags []string `json:"flags,omitempty" msgpack:"flags,omitempty"`
	Start uint32   `json:"start" msgpack:"start"`
	End   uint32   `json:"end" msgpack:"end"`
	Value string   `json:"value,omitempty" msgpack:"value,omitempty"`
	Path  string   `json:"path,omitempty" msgpack:"path,omitempty"`
}

// ToRawTokens materializes a dump into raw tokens, rederiving extents
// from the dump's source text. Kind names from newer tokenizer
// revisions resolve to Unknown; unknown flag names are an error since
// flags drive classification.
func (d *Dump) ToRawTokens() ([]token.RawToken, error) {
	if d.Schema != dumpSchemaVersion {
		return nil, fmt.Errorf("unsupported dump schema %d, want %d", d.Schema, dumpSchemaVersion)
	}
	content := []byte(d.Source)
	srcLen, err := safecast.Conv[uint32](len(content))
	if err != nil {
		return nil, fmt.Errorf("source length overflow: %w", err)
	}
	lineIdx := source.BuildLineIndex(content)

	out := make([]token.RawToken, 0, len(d.Tokens))
	for i, rec := range d.Tokens {
		if rec.End > srcLen {
			return nil, fmt.Errorf("token %d: end offset %d past source length %d", i, rec.End, srcLen)
		}
		kind, ok := token.KindFromName(rec.Kind)
		if !ok {
			kind = token.Unknown
		}
		var flags token.Flags
		for _, name := range rec.Flags {
			f, ok := token.FlagFromName(name)
			if !ok {
				return nil, fmt.Errorf("token %d: unknown flag %q", i, name)
			}
			flags |= f
		}
		extent, err := source.NewExtent(content, lineIdx, rec.Start, rec.End)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		out = append(out, token.RawToken{
			Kind:   kind,
			Flags:  flags,
			Extent: extent,
			Value:  rec.Value,
			Path:   rec.Path,
		})
	}
	return out, nil
}

// FromRawTokens builds a dump for the given source and token stream,
// the inverse of ToRawTokens.
func FromRawTokens(src string, tokens []token.RawToken) *Dump {
	records := make([]Record, 0, len(tokens))
	for _, t := range tokens {
		records = append(records, Record{
			Kind:  t.Kind.String(),
			Flags: t.Flags.Names(),
			Start: t.Extent.StartOffset,
			End:   t.Extent.EndOffset,
			Value: t.Value,
			Path:  t.Path,
		})
	}
	return &Dump{
		Schema: dumpSchemaVersion,
		Source: src,
		Tokens: records,
	}
}
