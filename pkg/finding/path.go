package finding

import (
	"fmt"
	"strings"
)

// Path points at a field inside a canonical document using dotted field
// names and bracketed list indexes, e.g. "items[2].subtotal". The zero
// value means "no specific field".
type Path struct {
	segments []string
}

// Root returns an empty path to build from.
func Root() Path {
	return Path{}
}

// Field appends a field-name segment.
func (p Path) Field(name string) Path {
	segs := make([]string, len(p.segments), len(p.segments)+1)
	copy(segs, p.segments)
	return Path{segments: append(segs, name)}
}

// Index appends a zero-based list index segment to the last field.
func (p Path) Index(i int) Path {
	if len(p.segments) == 0 {
		return Path{segments: []string{fmt.Sprintf("[%d]", i)}}
	}
	segs := make([]string, len(p.segments))
	copy(segs, p.segments)
	segs[len(segs)-1] = fmt.Sprintf("%s[%d]", segs[len(segs)-1], i)
	return Path{segments: segs}
}

// IsZero reports whether the path points at no field.
func (p Path) IsZero() bool {
	return len(p.segments) == 0
}

func (p Path) String() string {
	return strings.Join(p.segments, ".")
}

// MarshalJSON renders the path as its dotted string form.
func (p Path) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", p.String())), nil
}
