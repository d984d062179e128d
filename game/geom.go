package game

import "math"

// Pure geometry: polygon construction, separating-axis overlap, point
// containment and ray casting. Everything here is derived from a piece's
// (x, y, size, orientation, angle) on the fly; vertices are never cached.

type Point struct {
	X, Y float64
}

const geomEps = 1e-9

// Rotate rotates a point about the origin.
func Rotate(p Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Vertices returns the footprint polygon of a piece. Standing pieces are
// axis-aligned squares of the size's base width. Pointing pieces are
// triangles: tip ahead of center along the facing angle, two rear corners
// half a base width to either side.
func (c Config) Vertices(p Piece) []Point {
	w := c.Width(p.Size)
	if p.Orient == Standing {
		h := w / 2
		return []Point{
			{p.X - h, p.Y - h},
			{p.X + h, p.Y - h},
			{p.X + h, p.Y + h},
			{p.X - h, p.Y + h},
		}
	}
	sin, cos := math.Sincos(p.Angle)
	tip := c.TipOffsetRatio * w
	half := w / 2
	return []Point{
		{p.X + cos*tip, p.Y + sin*tip},   // tip
		{p.X - sin*half, p.Y + cos*half}, // rear corner
		{p.X + sin*half, p.Y - cos*half}, // rear corner
	}
}

// Tip returns the attack origin of a pointing piece.
func (c Config) Tip(p Piece) Point {
	sin, cos := math.Sincos(p.Angle)
	tip := c.TipOffsetRatio * c.Width(p.Size)
	return Point{X: p.X + cos*tip, Y: p.Y + sin*tip}
}

// Overlap reports whether two pieces' polygons interpenetrate, via the
// separating-axis theorem over the edge normals of both polygons. Exact edge
// touching is not overlap: an axis where the projections merely meet
// separates the pieces.
func (c Config) Overlap(a, b Piece) bool {
	pa := c.Vertices(a)
	pb := c.Vertices(b)
	for _, axis := range satAxes(pa, pb) {
		minA, maxA := project(pa, axis)
		minB, maxB := project(pb, axis)
		if maxA-minB <= geomEps || maxB-minA <= geomEps {
			return false
		}
	}
	return true
}

// satAxes collects the edge-normal axes of both polygons, deduplicated by
// direction (parallel axes test the same separation).
func satAxes(pa, pb []Point) []Point {
	axes := make([]Point, 0, len(pa)+len(pb))
	add := func(poly []Point) {
		for i := range poly {
			a := poly[i]
			b := poly[(i+1)%len(poly)]
			n := Point{X: -(b.Y - a.Y), Y: b.X - a.X}
			l := math.Hypot(n.X, n.Y)
			if l < geomEps {
				continue
			}
			n.X /= l
			n.Y /= l
			dup := false
			for _, ax := range axes {
				if math.Abs(ax.X*n.Y-ax.Y*n.X) < geomEps {
					dup = true
					break
				}
			}
			if !dup {
				axes = append(axes, n)
			}
		}
	}
	add(pa)
	add(pb)
	return axes
}

func project(poly []Point, axis Point) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, p := range poly {
		d := p.X*axis.X + p.Y*axis.Y
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// PointInPolygon is a crossing-number test, used for cursor-style queries.
func PointInPolygon(pt Point, poly []Point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a := poly[i]
		b := poly[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// rayPolygon casts a ray from origin along dir against a polygon's edges and
// returns the smallest non-negative hit distance.
func rayPolygon(origin, dir Point, poly []Point) (float64, bool) {
	best := math.Inf(1)
	hit := false
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		ex := b.X - a.X
		ey := b.Y - a.Y
		denom := dir.X*ey - dir.Y*ex
		if math.Abs(denom) < geomEps {
			continue // edge parallel to the ray
		}
		ox := a.X - origin.X
		oy := a.Y - origin.Y
		t := (ox*ey - oy*ex) / denom
		u := (ox*dir.Y - oy*dir.X) / denom
		if u < -geomEps || u > 1+geomEps || t < -geomEps {
			continue
		}
		if t < 0 {
			t = 0
		}
		if t < best {
			best = t
			hit = true
		}
	}
	return best, hit
}

// InFrontOf reports whether the attacker's attack ray hits the target's
// polygon ahead of the tip.
func (c Config) InFrontOf(att, tgt Piece) bool {
	if att.ID == tgt.ID {
		return false
	}
	sin, cos := math.Sincos(att.Angle)
	_, ok := rayPolygon(c.Tip(att), Point{X: cos, Y: sin}, c.Vertices(tgt))
	return ok
}

// WithinRange reports whether the target's near edge lies inside the
// attacker's reach along the attack ray.
func (c Config) WithinRange(att, tgt Piece) bool {
	if att.ID == tgt.ID {
		return false
	}
	sin, cos := math.Sincos(att.Angle)
	t, ok := rayPolygon(c.Tip(att), Point{X: cos, Y: sin}, c.Vertices(tgt))
	return ok && t <= c.Reach(att.Size)
}

// InBounds reports whether the whole footprint sits inside the play area.
func (c Config) InBounds(p Piece) bool {
	for _, v := range c.Vertices(p) {
		if v.X < 0 || v.X > c.BoardWidth || v.Y < 0 || v.Y > c.BoardHeight {
			return false
		}
	}
	return true
}

func centerDistance(a, b Piece) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
