package geo

import "github.com/paulmach/orb"

// DefaultPadding is the fraction of the screen left blank on each side
// of the projected map.
const DefaultPadding = 0.1

// Projector maps geographic coordinates into screen space. It is built
// once from the bounding box of all campus coordinates and is pure and
// stateless afterwards: the same Coord always maps to the same pixel.
//
// Screen Y grows downward, so latitude is inverted during projection.
type Projector struct {
	bound   orb.Bound
	width   float64
	height  float64
	padding float64
}

// NewProjector builds a Projector over the bounding box of coords for a
// screen of width×height pixels, keeping DefaultPadding of blank margin
// on each side. Returns ErrNoCoords when coords is empty.
func NewProjector(coords []Coord, width, height float64) (*Projector, error) {
	if len(coords) == 0 {
		return nil, ErrNoCoords
	}

	bound := orb.Bound{Min: coords[0].Point(), Max: coords[0].Point()}
	for _, c := range coords[1:] {
		bound = bound.Extend(c.Point())
	}

	return &Projector{
		bound:   bound,
		width:   width,
		height:  height,
		padding: DefaultPadding,
	}, nil
}

// ToScreen projects c into screen space: X right, Y down, with the
// configured padding around the campus bounding box.
func (p *Projector) ToScreen(c Coord) (x, y float64) {
	spanLon := p.bound.Max[0] - p.bound.Min[0]
	spanLat := p.bound.Max[1] - p.bound.Min[1]
	// A single-point or degenerate bound collapses to the screen center.
	nx, ny := 0.5, 0.5
	if spanLon > 0 {
		nx = (c.Lon - p.bound.Min[0]) / spanLon
	}
	if spanLat > 0 {
		ny = (p.bound.Max[1] - c.Lat) / spanLat // inverted Y for screen coords
	}

	usableW := p.width * (1 - 2*p.padding)
	usableH := p.height * (1 - 2*p.padding)
	x = nx*usableW + p.width*p.padding
	y = ny*usableH + p.height*p.padding

	return x, y
}

// Bound returns the geographic bounding box the projector was built from.
func (p *Projector) Bound() orb.Bound {
	return p.bound
}
