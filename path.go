package clip

import (
	"strconv"
	"strings"
)

type PathCmd int

const (
	MoveToCmd PathCmd = iota
	LineToCmd
	CloseCmd
)

// cmdLen returns the number of coordinates a command carries in the data array.
func cmdLen(cmd PathCmd) int {
	switch cmd {
	case MoveToCmd, LineToCmd:
		return 2
	case CloseCmd:
		return 0
	}
	panic("bug: unknown path command")
}

// Path is a sequence of move and line commands forming one or more polygonal
// subpaths. Curved segments are not modeled; flatten curves to lines before
// constructing a Path.
type Path struct {
	cmds   []PathCmd
	d      []float64
	x0, y0 float64 // start of current subpath
}

// Empty returns true if the path has no commands.
func (p *Path) Empty() bool {
	return len(p.cmds) == 0
}

// Pos returns the current position, ie. the end point of the last command.
func (p *Path) Pos() (float64, float64) {
	if 0 < len(p.cmds) && p.cmds[len(p.cmds)-1] == CloseCmd {
		return p.x0, p.y0
	}
	if 1 < len(p.d) {
		return p.d[len(p.d)-2], p.d[len(p.d)-1]
	}
	return 0.0, 0.0
}

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	p.cmds = append(p.cmds, MoveToCmd)
	p.d = append(p.d, x, y)
	p.x0, p.y0 = x, y
}

// LineTo adds a line towards (x,y).
func (p *Path) LineTo(x, y float64) {
	p.cmds = append(p.cmds, LineToCmd)
	p.d = append(p.d, x, y)
}

// Close closes the current subpath, connecting the current position to the
// subpath's start with a line.
func (p *Path) Close() {
	p.cmds = append(p.cmds, CloseCmd)
}

// Append concatenates q to p and returns the combined path.
func (p *Path) Append(q *Path) *Path {
	if q == nil || q.Empty() {
		return p
	}
	r := &Path{}
	r.cmds = append(append(r.cmds, p.cmds...), q.cmds...)
	r.d = append(append(r.d, p.d...), q.d...)
	r.x0, r.y0 = q.x0, q.y0
	return r
}

// Copy returns a deep copy of the path.
func (p *Path) Copy() *Path {
	q := &Path{
		cmds: make([]PathCmd, len(p.cmds)),
		d:    make([]float64, len(p.d)),
		x0:   p.x0,
		y0:   p.y0,
	}
	copy(q.cmds, p.cmds)
	copy(q.d, p.d)
	return q
}

// Closed returns true if all subpaths end in a close command.
func (p *Path) Closed() bool {
	for i, cmd := range p.cmds {
		if cmd == MoveToCmd && 0 < i && p.cmds[i-1] != CloseCmd {
			return false
		}
	}
	return 0 < len(p.cmds) && p.cmds[len(p.cmds)-1] == CloseCmd
}

// CloseSubpaths closes all open subpaths by connecting their last point to
// their first.
func (p *Path) CloseSubpaths() {
	var cmds []PathCmd
	for i, cmd := range p.cmds {
		if cmd == MoveToCmd && 0 < i && p.cmds[i-1] != CloseCmd {
			cmds = append(cmds, CloseCmd)
		}
		cmds = append(cmds, cmd)
	}
	if 0 < len(cmds) && cmds[len(cmds)-1] != CloseCmd {
		cmds = append(cmds, CloseCmd)
	}
	p.cmds = cmds
}

// Subpaths splits the path at its move commands into single-subpath paths.
func (p *Path) Subpaths() []*Path {
	var subpaths []*Path
	var q *Path
	i := 0
	for _, cmd := range p.cmds {
		if cmd == MoveToCmd {
			if q != nil && !q.Empty() {
				subpaths = append(subpaths, q)
			}
			q = &Path{}
		} else if q == nil {
			q = &Path{}
		}
		n := cmdLen(cmd)
		q.cmds = append(q.cmds, cmd)
		q.d = append(q.d, p.d[i:i+n]...)
		if cmd == MoveToCmd {
			q.x0, q.y0 = p.d[i], p.d[i+1]
		}
		i += n
	}
	if q != nil && !q.Empty() {
		subpaths = append(subpaths, q)
	}
	return subpaths
}

// Line is a directed straight line segment.
type Line struct {
	Start, End Point
}

// Lines decomposes the path into its directed line segments. Close commands
// produce the line back to the subpath start, which is zero-length when the
// subpath already returned there.
func (p *Path) Lines() []Line {
	var lines []Line
	var cur, start Point
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			cur = Point{p.d[i], p.d[i+1]}
			start = cur
			i += 2
		case LineToCmd:
			end := Point{p.d[i], p.d[i+1]}
			lines = append(lines, Line{cur, end})
			cur = end
			i += 2
		case CloseCmd:
			lines = append(lines, Line{cur, start})
			cur = start
		}
	}
	return lines
}

// Coords returns the end point coordinates of all commands. A close command
// contributes the subpath's starting point, so a closed subpath begins and
// ends on the same coordinate.
func (p *Path) Coords() []Point {
	var coords []Point
	var start Point
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			start = Point{p.d[i], p.d[i+1]}
			coords = append(coords, start)
			i += 2
		case LineToCmd:
			coords = append(coords, Point{p.d[i], p.d[i+1]})
			i += 2
		case CloseCmd:
			coords = append(coords, start)
		}
	}
	return coords
}

// Area returns the signed area enclosed by the path using the shoelace
// formula, summed over all subpaths. Open subpaths are treated as implicitly
// closed.
func (p *Path) Area() float64 {
	area := 0.0
	var cur, start Point
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			area += cur.PerpDot(start) // close previous subpath, zero if already closed
			cur = Point{p.d[i], p.d[i+1]}
			start = cur
			i += 2
		case LineToCmd:
			end := Point{p.d[i], p.d[i+1]}
			area += cur.PerpDot(end)
			cur = end
			i += 2
		case CloseCmd:
			area += cur.PerpDot(start)
			cur = start
		}
	}
	area += cur.PerpDot(start)
	return area / 2.0
}

func ftos(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String returns the path in SVG path data notation.
func (p *Path) String() string {
	sb := strings.Builder{}
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			sb.WriteString("M")
			sb.WriteString(ftos(p.d[i]))
			sb.WriteString(" ")
			sb.WriteString(ftos(p.d[i+1]))
			i += 2
		case LineToCmd:
			sb.WriteString("L")
			sb.WriteString(ftos(p.d[i]))
			sb.WriteString(" ")
			sb.WriteString(ftos(p.d[i+1]))
			i += 2
		case CloseCmd:
			sb.WriteString("z")
		}
	}
	return sb.String()
}
