package geometry

// Point is an integer pixel offset.
type Point struct {
	X int
	Y int
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Size is a width/height pair.
type Size struct {
	W int
	H int
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X int
	Y int
	W int
	H int
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Inset shrinks r by n pixels on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}

// Square returns the largest square centered in r.
func (r Rect) Square() Rect {
	side := r.W
	if r.H < side {
		side = r.H
	}
	c := r.Center()
	return Rect{X: c.X - side/2, Y: c.Y - side/2, W: side, H: side}
}

// CircleBounds returns the square box of a circle with the given radius.
func CircleBounds(center Point, radius int) Rect {
	return Rect{X: center.X - radius, Y: center.Y - radius, W: 2 * radius, H: 2 * radius}
}

// OffsetPolygon translates every point by (0, dy). It never rotates and never
// changes the point count.
func OffsetPolygon(points []Point, dy int) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: p.X, Y: p.Y + dy}
	}
	return out
}

// Path is a polygon defined around an origin. The base points never change after
// NewPath; rotation and offset are applied when Points is called, into a buffer
// owned by the path.
type Path struct {
	turn     Turn
	base     []Point
	rotation Angle
	offset   Point
	out      []Point
}

// NewPath copies points into a new path rotated with turn.
func NewPath(turn Turn, points ...Point) *Path {
	base := make([]Point, len(points))
	copy(base, points)
	return &Path{turn: turn, base: base, out: make([]Point, len(points))}
}

func (p *Path) RotateTo(a Angle) { p.rotation = a }

func (p *Path) MoveTo(pt Point) { p.offset = pt }

func (p *Path) Len() int { return len(p.base) }

// Base returns a copy of the untransformed points.
func (p *Path) Base() []Point {
	out := make([]Point, len(p.base))
	copy(out, p.base)
	return out
}

// Points returns the rotated and translated points. The slice is reused by the
// next call.
func (p *Path) Points() []Point {
	for i, pt := range p.base {
		p.out[i] = p.turn.Rotate(pt, p.rotation).Add(p.offset)
	}
	return p.out
}
