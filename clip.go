package clip

import (
	"container/list"
	"fmt"
	"strings"
)

// Op selects a Boolean operation between two polygons.
type Op int

const (
	Intersection Op = iota
	Union
	Difference
	DifferenceReversed
	Xor
)

// ParseOp parses an operation name such as "union" or "difference-reversed".
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(s) {
	case "intersection", "intersect", "and":
		return Intersection, nil
	case "union", "or":
		return Union, nil
	case "difference", "not":
		return Difference, nil
	case "difference-reversed", "rdifference":
		return DifferenceReversed, nil
	case "xor":
		return Xor, nil
	}
	return 0, fmt.Errorf("unknown operation '%s'", s)
}

func (op Op) String() string {
	switch op {
	case Intersection:
		return "intersection"
	case Union:
		return "union"
	case Difference:
		return "difference"
	case DifferenceReversed:
		return "difference-reversed"
	case Xor:
		return "xor"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Fill is a tri-state annotation describing whether the region on one side of
// a segment is inside a polygon.
type Fill int8

const (
	FillUnknown Fill = iota
	FillOutside
	FillInside
)

func (f Fill) invert() Fill {
	switch f {
	case FillOutside:
		return FillInside
	case FillInside:
		return FillOutside
	}
	panic("bug: inverting unknown fill")
}

func (f Fill) String() string {
	switch f {
	case FillOutside:
		return "outside"
	case FillInside:
		return "inside"
	}
	return "unknown"
}

// Side records which side of a selected segment lies inside the result.
type Side int8

const (
	SideNone Side = iota
	SideAbove
	SideBelow
)

// Segment is a directed line segment annotated with fill information for the
// regions above and below it, for the polygon the segment originates from
// (self) and for the other polygon of a combine pass.
type Segment struct {
	Start, End Point

	SelfFillAbove  Fill
	SelfFillBelow  Fill
	OtherFillAbove Fill
	OtherFillBelow Fill

	Side Side
}

func (s Segment) String() string {
	return fmt.Sprintf("%v->%v self:(%v,%v) other:(%v,%v)",
		s.Start, s.End, s.SelfFillAbove, s.SelfFillBelow, s.OtherFillAbove, s.OtherFillBelow)
}

// Polygon is a set of annotated segments, the intermediate form between paths
// and Boolean operations on them.
type Polygon []Segment

// A selection table maps the 16 possible fill annotation combinations of a
// combined segment to what an operation keeps of it. The index is built from
// the four annotations as selfAbove<<3 | selfBelow<<2 | otherAbove<<1 |
// otherBelow, each bit set when the respective region is inside.
type selection int8

const (
	selDiscard selection = iota
	selFillAbove
	selFillBelow
)

var unionTable = [16]selection{
	selDiscard, selFillBelow, selFillAbove, selDiscard,
	selFillBelow, selFillBelow, selDiscard, selDiscard,
	selFillAbove, selDiscard, selFillAbove, selDiscard,
	selDiscard, selDiscard, selDiscard, selDiscard,
}

var intersectTable = [16]selection{
	selDiscard, selDiscard, selDiscard, selDiscard,
	selDiscard, selFillBelow, selDiscard, selFillBelow,
	selDiscard, selDiscard, selFillAbove, selFillAbove,
	selDiscard, selFillBelow, selFillAbove, selDiscard,
}

var differenceTable = [16]selection{
	selDiscard, selDiscard, selDiscard, selDiscard,
	selFillBelow, selDiscard, selFillBelow, selDiscard,
	selFillAbove, selFillAbove, selDiscard, selDiscard,
	selDiscard, selFillAbove, selFillBelow, selDiscard,
}

var differenceReversedTable = [16]selection{
	selDiscard, selFillBelow, selFillAbove, selDiscard,
	selDiscard, selDiscard, selFillAbove, selFillAbove,
	selDiscard, selFillBelow, selDiscard, selFillBelow,
	selDiscard, selDiscard, selDiscard, selDiscard,
}

var xorTable = [16]selection{
	selDiscard, selFillBelow, selFillAbove, selDiscard,
	selFillBelow, selDiscard, selDiscard, selFillAbove,
	selFillAbove, selDiscard, selDiscard, selFillBelow,
	selDiscard, selFillAbove, selFillBelow, selDiscard,
}

func (op Op) table() *[16]selection {
	switch op {
	case Intersection:
		return &intersectTable
	case Union:
		return &unionTable
	case Difference:
		return &differenceTable
	case DifferenceReversed:
		return &differenceReversedTable
	case Xor:
		return &xorTable
	}
	panic("bug: unknown operation")
}

// event is a sweep event for one end of a segment. Start and end events of the
// same segment reference each other through other.
type event struct {
	isStart bool
	primary bool
	seg     *Segment
	other   *event

	queueElem  *list.Element
	statusElem *list.Element
}

func (e *event) point() Point {
	if e.isStart {
		return e.seg.Start
	}
	return e.seg.End
}

func (e *event) otherPoint() Point {
	if e.isStart {
		return e.seg.End
	}
	return e.seg.Start
}

// compare orders events left-to-right, with ties broken so the sweep stays
// consistent: equal points with distinct far points order end events before
// start events, and two start (or two end) events at the same point order by
// which segment is above the other.
func (e *event) compare(o *event) int {
	if cmp := comparePoints(e.point(), o.point()); cmp != 0 {
		return cmp
	}
	if e.otherPoint().Equals(o.otherPoint()) {
		return 0
	}
	if e.isStart != o.isStart {
		if e.isStart {
			return 1
		}
		return -1
	}
	if aboveOrOnLine(e.otherPoint(), o.seg.Start, o.seg.End) {
		return 1
	}
	return -1
}

// clipper runs the sweep over one polygon (annotation pass) or over the
// segments of two polygons at once (combine pass).
type clipper struct {
	combining bool
	queue     *list.List // *event ordered by compare
	status    *list.List // *event of active segments, topmost first
}

func newClipper(combining bool) *clipper {
	return &clipper{
		combining: combining,
		queue:     list.New(),
		status:    list.New(),
	}
}

// enqueue inserts e into the event queue at its sorted position.
func (c *clipper) enqueue(e *event) {
	for elem := c.queue.Front(); elem != nil; elem = elem.Next() {
		if e.compare(elem.Value.(*event)) < 0 {
			e.queueElem = c.queue.InsertBefore(e, elem)
			return
		}
	}
	e.queueElem = c.queue.PushBack(e)
}

// addSegment creates paired start and end events for seg and enqueues both.
func (c *clipper) addSegment(seg *Segment, primary bool) *event {
	start := &event{isStart: true, primary: primary, seg: seg}
	end := &event{isStart: false, primary: primary, seg: seg, other: start}
	start.other = end
	c.enqueue(start)
	c.enqueue(end)
	return start
}

// addPolygon enqueues all segments of a polygon, skipping degenerate
// zero-length ones and canonicalizing direction so Start comes before End in
// sweep order.
func (c *clipper) addPolygon(poly Polygon, primary bool) {
	for i := range poly {
		seg := poly[i]
		cmp := comparePoints(seg.Start, seg.End)
		if cmp == 0 {
			continue
		}
		if cmp > 0 {
			seg.Start, seg.End = seg.End, seg.Start
		}
		s := &Segment{Start: seg.Start, End: seg.End}
		if c.combining {
			s.SelfFillAbove = seg.SelfFillAbove
			s.SelfFillBelow = seg.SelfFillBelow
		}
		c.addSegment(s, primary)
	}
}

// findTransition locates the first active segment at or below e's segment,
// returning the status element to insert before (nil appends at the bottom).
func (c *clipper) findTransition(e *event) *list.Element {
	for elem := c.status.Front(); elem != nil; elem = elem.Next() {
		o := elem.Value.(*event)
		if c.segmentBelow(e, o) {
			return elem
		}
	}
	return nil
}

// segmentBelow reports whether o's segment is at or below e's segment, ie. e
// lies above or on o's carrier line.
func (c *clipper) segmentBelow(e, o *event) bool {
	a1, a2 := e.seg.Start, e.seg.End
	b1, b2 := o.seg.Start, o.seg.End
	if collinear(a1, b1, b2) {
		if collinear(a2, b1, b2) {
			return true
		}
		return aboveOrOnLine(a2, b1, b2)
	}
	return aboveOrOnLine(a1, b1, b2)
}

// intersectResult classifies how two segments relate.
type intersectResult int

const (
	intersectNone intersectResult = iota
	intersectCrossing
	intersectCoincident
)

// lineIntersection intersects the segments a1-a2 and b1-b2. For a proper
// crossing within both segments it returns the crossing point. Parallel
// segments on the same carrier line report coincident; parallel on distinct
// lines, or crossings outside either segment, report none.
func lineIntersection(a1, a2, b1, b2 Point) (Point, intersectResult) {
	da := a2.Sub(a1)
	db := b2.Sub(b1)
	denom := da.PerpDot(db)
	if equal(denom, 0.0) {
		if collinear(a1, b1, b2) {
			return Point{}, intersectCoincident
		}
		return Point{}, intersectNone
	}
	d := a1.Sub(b1)
	ta := db.PerpDot(d) / denom
	tb := da.PerpDot(d) / denom
	if !interval(ta, 0.0, 1.0) || !interval(tb, 0.0, 1.0) {
		return Point{}, intersectNone
	}
	return a1.Interpolate(a2, ta), intersectCrossing
}

// splitEvent splits e's segment at p: e keeps the head up to p and a new
// segment covers the tail from p. The tail inherits e's self fill annotations;
// its combined annotations are recomputed when the sweep reaches it.
func (c *clipper) splitEvent(e *event, p Point) {
	if !e.isStart {
		panic("bug: splitting an end event")
	}
	tail := &Segment{
		Start:         p,
		End:           e.seg.End,
		SelfFillAbove: e.seg.SelfFillAbove,
		SelfFillBelow: e.seg.SelfFillBelow,
	}
	c.queue.Remove(e.other.queueElem)
	e.seg.End = p
	c.enqueue(e.other)
	c.addSegment(tail, e.primary)
}

// resolveIntersection intersects the segments of events a and b, where b's
// segment became active before a's, splitting them as needed. When a's
// segment ends up duplicating b's it returns b, to merge into, otherwise nil.
func (c *clipper) resolveIntersection(a, b *event) *event {
	a1, a2 := a.seg.Start, a.seg.End
	b1, b2 := b.seg.Start, b.seg.End

	p, res := lineIntersection(a1, a2, b1, b2)
	switch res {
	case intersectNone:
		return nil
	case intersectCrossing:
		// split each segment the crossing point does not fall on an end of
		if comparePoints(p, a1) != 0 && comparePoints(p, a2) != 0 {
			c.splitEvent(a, p)
		}
		if comparePoints(p, b1) != 0 && comparePoints(p, b2) != 0 {
			c.splitEvent(b, p)
		}
		return nil
	}

	// coincident carrier lines: split until a duplicates a piece of b,
	// leaving the merge to the sweep. Segments merely joined end-to-end
	// need no action.
	a1b1 := comparePoints(a1, b1) == 0
	a2b2 := comparePoints(a2, b2) == 0
	if a1b1 && a2b2 {
		return b
	}

	a1Between := !a1b1 && comparePoints(a1, b2) != 0 && pointBetween(a1, b1, b2)
	a2Between := !a2b2 && comparePoints(a2, b1) != 0 && pointBetween(a2, b1, b2)

	if a1b1 {
		// same start, different end: split the longer at the shorter's end
		if a2Between {
			c.splitEvent(b, a2)
		} else {
			c.splitEvent(a, b2)
		}
		return b
	}
	if a1Between {
		if !a2b2 {
			if a2Between {
				c.splitEvent(b, a2)
			} else {
				c.splitEvent(a, b2)
			}
		}
		// b's tail now duplicates a; they merge when the tail starts
		c.splitEvent(b, a1)
	}
	return nil
}

// mergeOrSplit handles an intersection between the newly started event e and
// an active neighbor o. It reports whether e was consumed by merging into a
// duplicate of o's segment, removing e from the queue if so.
func (c *clipper) mergeOrSplit(e, o *event) bool {
	dup := c.resolveIntersection(e, o)
	if dup == nil {
		return false
	}
	// e duplicates o's segment; merge the annotations into o and drop e
	kept := dup.seg
	if c.combining {
		kept.OtherFillAbove = e.seg.SelfFillAbove
		kept.OtherFillBelow = e.seg.SelfFillBelow
	} else {
		toggle := e.seg.SelfFillBelow == FillUnknown || e.seg.SelfFillAbove != e.seg.SelfFillBelow
		if toggle {
			kept.SelfFillAbove = kept.SelfFillAbove.invert()
		}
	}
	c.queue.Remove(e.other.queueElem)
	c.queue.Remove(e.queueElem)
	return true
}

// annotateSelf fills in the self annotations of e's segment from the active
// segment below it.
func (c *clipper) annotateSelf(e *event, below *event) {
	toggle := e.seg.SelfFillBelow == FillUnknown || e.seg.SelfFillAbove != e.seg.SelfFillBelow
	if below == nil {
		e.seg.SelfFillBelow = FillOutside
	} else {
		e.seg.SelfFillBelow = below.seg.SelfFillAbove
	}
	if toggle {
		e.seg.SelfFillAbove = e.seg.SelfFillBelow.invert()
	} else {
		e.seg.SelfFillAbove = e.seg.SelfFillBelow
	}
}

// annotateCombined fills in the other-polygon annotations of e's segment from
// the active segment below it.
func (c *clipper) annotateCombined(e *event, below *event) {
	if e.seg.OtherFillAbove != FillUnknown {
		return
	}
	var inside Fill
	if below == nil {
		inside = FillOutside
	} else if e.primary == below.primary {
		inside = below.seg.OtherFillAbove
	} else {
		inside = below.seg.SelfFillAbove
	}
	if inside == FillUnknown {
		panic("bug: fill annotation below is unknown")
	}
	e.seg.OtherFillAbove = inside
	e.seg.OtherFillBelow = inside
}

// run processes the event queue and returns the retired, fully annotated
// segments in sweep order.
func (c *clipper) run() Polygon {
	var result Polygon
	for c.queue.Len() > 0 {
		front := c.queue.Front()
		e := front.Value.(*event)

		if e.isStart {
			transition := c.findTransition(e)
			var above, below *event
			if transition != nil {
				below = transition.Value.(*event)
				if prev := transition.Prev(); prev != nil {
					above = prev.Value.(*event)
				}
			} else if back := c.status.Back(); back != nil {
				above = back.Value.(*event)
			}

			if above != nil && c.mergeOrSplit(e, above) {
				continue
			}
			if below != nil && c.mergeOrSplit(e, below) {
				continue
			}
			// splits may have pushed a new event ahead of e
			if c.queue.Front() != front {
				continue
			}

			if c.combining {
				c.annotateCombined(e, below)
			} else {
				c.annotateSelf(e, below)
			}
			if transition != nil {
				e.statusElem = c.status.InsertBefore(e, transition)
			} else {
				e.statusElem = c.status.PushBack(e)
			}
		} else {
			start := e.other
			elem := start.statusElem
			if elem == nil {
				panic("bug: end event without active start")
			}
			var prev, next *event
			if p := elem.Prev(); p != nil {
				prev = p.Value.(*event)
			}
			if n := elem.Next(); n != nil {
				next = n.Value.(*event)
			}
			if prev != nil && next != nil {
				c.mergeOrSplit(prev, next)
			}
			c.status.Remove(elem)
			start.statusElem = nil

			seg := *e.seg
			if c.combining && !e.primary {
				// normalize so self always refers to the first polygon
				seg.SelfFillAbove, seg.OtherFillAbove = seg.OtherFillAbove, seg.SelfFillAbove
				seg.SelfFillBelow, seg.OtherFillBelow = seg.OtherFillBelow, seg.SelfFillBelow
			}
			result = append(result, seg)
		}
		c.queue.Remove(front)
	}
	return result
}

// ConvertToPolygon decomposes a path into an annotated polygon. Open subpaths
// are implicitly closed and self-intersections are resolved, so every
// resulting segment carries consistent inside/outside annotations.
func ConvertToPolygon(p *Path, primary bool) Polygon {
	q := p.Copy()
	q.CloseSubpaths()

	c := newClipper(false)
	for _, line := range q.Lines() {
		start, end := line.Start, line.End
		cmp := comparePoints(start, end)
		if cmp == 0 {
			continue
		}
		if cmp > 0 {
			start, end = end, start
		}
		c.addSegment(&Segment{Start: start, End: end}, primary)
	}
	return c.run()
}

// Combine merges two annotated polygons into one whose segments carry fill
// annotations for both, ready for segment selection by any operation.
func Combine(a, b Polygon) Polygon {
	c := newClipper(true)
	c.addPolygon(a, true)
	c.addPolygon(b, false)
	return c.run()
}

// SelectSegments keeps the segments of a combined polygon that bound the
// result of op, tagging each with the side that lies inside the result. The
// fill annotations are left untouched, so selecting from an already selected
// polygon gives the same result.
func SelectSegments(poly Polygon, op Op) Polygon {
	table := op.table()
	var result Polygon
	for _, seg := range poly {
		idx := 0
		if seg.SelfFillAbove == FillInside {
			idx |= 8
		}
		if seg.SelfFillBelow == FillInside {
			idx |= 4
		}
		if seg.OtherFillAbove == FillInside {
			idx |= 2
		}
		if seg.OtherFillBelow == FillInside {
			idx |= 1
		}
		switch table[idx] {
		case selFillAbove:
			seg.Side = SideAbove
			result = append(result, seg)
		case selFillBelow:
			seg.Side = SideBelow
			result = append(result, seg)
		}
	}
	return result
}

// chain is an open polyline under construction during path reconstruction.
type chain []Point

func (ch chain) head() Point {
	return ch[0]
}

func (ch chain) tail() Point {
	return ch[len(ch)-1]
}

func reverseChain(ch chain) {
	for i, j := 0, len(ch)-1; i < j; i, j = i+1, j-1 {
		ch[i], ch[j] = ch[j], ch[i]
	}
}

func chainToPath(ch chain) *Path {
	p := &Path{}
	p.MoveTo(ch[0].X, ch[0].Y)
	for i := 1; i < len(ch)-1; i++ {
		p.LineTo(ch[i].X, ch[i].Y)
	}
	p.Close()
	return p
}

// closeChain converts ch to a closed path if its ends meet and it has enough
// points to enclose area, dropping degenerate slivers.
func closeChain(ch chain) (*Path, bool) {
	if comparePoints(ch.head(), ch.tail()) != 0 {
		return nil, false
	}
	if len(ch) <= 3 {
		// first equals last, so at most two distinct points
		return nil, true
	}
	return chainToPath(ch), true
}

// ConvertToPath reconstructs closed paths from the segments of a selected
// polygon by greedily joining segments at shared endpoints. It returns an
// error if the segments do not form closed loops.
func ConvertToPath(poly Polygon) ([]*Path, error) {
	var paths []*Path
	var chains []chain

	addPath := func(p *Path) {
		if p != nil {
			paths = append(paths, p)
		}
	}

	for _, seg := range poly {
		start, end := seg.Start, seg.End

		type match struct {
			index    int
			head     bool // segment touches the chain's head, not its tail
			segStart bool // the chain touches the segment's start, not its end
		}
		var matches []match
		for i, ch := range chains {
			var m match
			if comparePoints(ch.head(), start) == 0 {
				m = match{i, true, true}
			} else if comparePoints(ch.head(), end) == 0 {
				m = match{i, true, false}
			} else if comparePoints(ch.tail(), start) == 0 {
				m = match{i, false, true}
			} else if comparePoints(ch.tail(), end) == 0 {
				m = match{i, false, false}
			} else {
				continue
			}
			matches = append(matches, m)
			if len(matches) == 2 {
				break
			}
		}

		switch len(matches) {
		case 0:
			chains = append(chains, chain{start, end})

		case 1:
			m := matches[0]
			ch := chains[m.index]
			p := end
			if !m.segStart {
				p = start
			}
			if m.head {
				// drop the shared point if the new point is collinear with
				// the first two
				if len(ch) >= 2 && collinear(p, ch[0], ch[1]) {
					ch[0] = p
				} else {
					ch = append(chain{p}, ch...)
				}
			} else {
				if len(ch) >= 2 && collinear(p, ch[len(ch)-1], ch[len(ch)-2]) {
					ch[len(ch)-1] = p
				} else {
					ch = append(ch, p)
				}
			}
			chains[m.index] = ch

			if p, ok := closeChain(chains[m.index]); ok {
				addPath(p)
				chains = append(chains[:m.index], chains[m.index+1:]...)
			}

		case 2:
			f, s := matches[0], matches[1]
			first, second := chains[f.index], chains[s.index]

			// join the two chains through the segment; reverse the shorter
			reverseFirst := len(first) < len(second)

			if f.head {
				if s.head {
					if reverseFirst {
						reverseChain(first)
						first = append(first, second...)
					} else {
						reverseChain(second)
						first = append(second, first...)
					}
				} else {
					first = append(second, first...)
				}
			} else {
				if s.head {
					first = append(first, second...)
				} else {
					if reverseFirst {
						reverseChain(first)
						first = append(second, first...)
					} else {
						reverseChain(second)
						first = append(first, second...)
					}
				}
			}

			lo, hi := f.index, s.index
			if hi < lo {
				lo, hi = hi, lo
			}
			chains = append(chains[:hi], chains[hi+1:]...)
			chains[lo] = first

			if p, ok := closeChain(chains[lo]); ok {
				addPath(p)
				chains = append(chains[:lo], chains[lo+1:]...)
			}
		}
	}

	if len(chains) != 0 {
		return nil, fmt.Errorf("clip: %d open chains remain, segments do not form closed loops", len(chains))
	}
	return paths, nil
}

// Clip applies op to the closed paths a and b and returns the resulting
// paths.
func Clip(a, b *Path, op Op) ([]*Path, error) {
	if op == DifferenceReversed {
		return Clip(b, a, Difference)
	}
	pa := ConvertToPolygon(a, true)
	pb := ConvertToPolygon(b, false)
	combined := Combine(pa, pb)
	return ConvertToPath(SelectSegments(combined, op))
}

func clipToPath(a, b *Path, op Op) (*Path, error) {
	ps, err := Clip(a, b, op)
	if err != nil {
		return nil, err
	}
	r := &Path{}
	for _, p := range ps {
		r = r.Append(p)
	}
	return r, nil
}

// And returns the intersection of p and q.
func (p *Path) And(q *Path) (*Path, error) {
	return clipToPath(p, q, Intersection)
}

// Or returns the union of p and q.
func (p *Path) Or(q *Path) (*Path, error) {
	return clipToPath(p, q, Union)
}

// Xor returns the symmetric difference of p and q.
func (p *Path) Xor(q *Path) (*Path, error) {
	return clipToPath(p, q, Xor)
}

// Not returns the parts of p not covered by q.
func (p *Path) Not(q *Path) (*Path, error) {
	return clipToPath(p, q, Difference)
}
