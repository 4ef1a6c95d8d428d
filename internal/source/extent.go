package source

import (
	"fmt"
)

// Extent describes the source range a raw token covers.
// Offsets are 0-based bytes; line and column numbers are 1-based.
type Extent struct {
	StartOffset uint32 // inclusive
	EndOffset   uint32 // exclusive
	StartLine   uint32
	StartColumn uint32
	EndLine     uint32
	EndColumn   uint32
	Text        string // raw source text covered by the range
}

// Length returns the number of bytes covered by the extent.
// A malformed extent with EndOffset < StartOffset reports 0.
func (e Extent) Length() uint32 {
	if e.EndOffset < e.StartOffset {
		return 0
	}
	return e.EndOffset - e.StartOffset
}

// Empty reports whether the extent covers no bytes.
func (e Extent) Empty() bool {
	return e.Length() == 0
}

func (e Extent) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", e.StartLine, e.StartColumn, e.EndLine, e.EndColumn)
}

// Cover returns the smallest extent spanning both e and other.
func (e Extent) Cover(other Extent) Extent {
	if other.StartOffset < e.StartOffset {
		e.StartOffset = other.StartOffset
		e.StartLine = other.StartLine
		e.StartColumn = other.StartColumn
	}
	if other.EndOffset > e.EndOffset {
		e.EndOffset = other.EndOffset
		e.EndLine = other.EndLine
		e.EndColumn = other.EndColumn
	}
	e.Text = ""
	return e
}

// NewExtent builds an extent over content[start:end], resolving line and
// column numbers through the given line index (see BuildLineIndex).
func NewExtent(content []byte, lineIdx []uint32, start, end uint32) (Extent, error) {
	if end < start {
		return Extent{}, fmt.Errorf("extent end %d before start %d", end, start)
	}
	if int(end) > len(content) {
		return Extent{}, fmt.Errorf("extent end %d past content length %d", end, len(content))
	}
	startLC := ToLineCol(lineIdx, start)
	endLC := ToLineCol(lineIdx, end)
	return Extent{
		StartOffset: start,
		EndOffset:   end,
		StartLine:   startLC.Line,
		StartColumn: startLC.Col,
		EndLine:     endLC.Line,
		EndColumn:   endLC.Col,
		Text:        string(content[start:end]),
	}, nil
}
