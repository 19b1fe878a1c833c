package motion

import "strings"

// Contact is a set of walls.
type Contact uint8

const (
	// ContactLeft is the x = 0 wall.
	ContactLeft Contact = 1 << iota
	// ContactRight is the x = width - size wall.
	ContactRight
	// ContactTop is the y = 0 wall.
	ContactTop
	// ContactBottom is the y = height - size wall.
	ContactBottom
)

// contactLow and contactHigh are the axis-neutral results of clampAxis.
// horizontal and vertical map them onto concrete walls.
const (
	contactLow  = ContactLeft
	contactHigh = ContactRight
)

func (c Contact) horizontal() Contact { return c }

func (c Contact) vertical() Contact { return c << 2 }

// Has reports whether every wall in w is in c.
func (c Contact) Has(w Contact) bool { return c&w == w }

// Names lists the walls in c in a fixed order, or nil when c is empty.
func (c Contact) Names() []string {
	if c == 0 {
		return nil
	}
	var names []string
	for _, w := range []struct {
		c    Contact
		name string
	}{
		{ContactLeft, "left"},
		{ContactRight, "right"},
		{ContactTop, "top"},
		{ContactBottom, "bottom"},
	} {
		if c.Has(w.c) {
			names = append(names, w.name)
		}
	}
	return names
}

// String joins the wall names with "|", or returns "none".
func (c Contact) String() string {
	names := c.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// clampAxis confines position p to [0, limit]. Landing exactly on an edge is
// inside the field and leaves v and a untouched. A clamped axis loses its velocity
// and acceleration so a stale sample cannot push it back into the wall.
func clampAxis(p, v, a, limit float64) (float64, float64, float64, Contact) {
	switch {
	case p < 0:
		return 0, 0, 0, contactLow
	case p > limit:
		return limit, 0, 0, contactHigh
	default:
		return p, v, a, 0
	}
}
