package domain

// Remote is a configured git remote.
type Remote struct {
	Name string
	URL  string
}

// Region is a selection span inside a file. Lines and columns are both
// zero-based; a collapsed region (start == end) represents a bare cursor
// position.
type Region struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// Collapsed reports whether the region is a single position.
func (r Region) Collapsed() bool {
	return r.StartLine == r.EndLine && r.StartCol == r.EndCol
}

// NormalizeEnd pulls an end position that rests at the start of a line back
// onto the previous line. Selecting whole lines in an editor leaves the end
// just after the trailing newline; the link should point at the last line
// that actually contains selected text, not the empty one after it.
//
// lineLen reports the length of a zero-based line and may be nil when the
// file content is unavailable, in which case the end column becomes 0.
func (r Region) NormalizeEnd(lineLen func(int) int) Region {
	if r.EndLine <= r.StartLine || r.EndCol != 0 {
		return r
	}
	r.EndLine--
	r.EndCol = 0
	if lineLen != nil {
		r.EndCol = lineLen(r.EndLine)
	}
	return r
}
