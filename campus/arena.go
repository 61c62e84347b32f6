package campus

import "github.com/vcnav/campusnav/geo"

// Arena owns every Location record for the process lifetime and hands
// out stable integer ids in dataset order. All other components hold
// ids into the arena, never the records themselves.
type Arena struct {
	locs   []*Location
	byName map[string]*Location
}

// NewArena validates the dataset and builds the arena. Ids are assigned
// in dataset order starting at 0.
func NewArena(ds Dataset) (*Arena, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	a := &Arena{
		locs:   make([]*Location, 0, len(ds.Locations)),
		byName: make(map[string]*Location, len(ds.Locations)),
	}
	for i, rec := range ds.Locations {
		loc := &Location{
			ID:          i,
			Name:        rec.Name,
			Coord:       geo.Coord{Lat: rec.Lat, Lon: rec.Lon},
			Description: rec.Description,
			Kind:        kindOf(rec.Category, rec.Name, rec.Description),
			Category:    rec.Category,
			Academic:    rec.Academic,
			Hostel:      rec.Hostel,
		}
		a.locs = append(a.locs, loc)
		a.byName[loc.Name] = loc
	}

	return a, nil
}

// ByID returns the location with the given id.
func (a *Arena) ByID(id int) (*Location, bool) {
	if id < 0 || id >= len(a.locs) {
		return nil, false
	}

	return a.locs[id], true
}

// ByName returns the location with the given (exact) name.
func (a *Arena) ByName(name string) (*Location, bool) {
	loc, ok := a.byName[name]

	return loc, ok
}

// All returns the locations in id order. The slice is a copy; the
// records it points to are shared and must be treated as read-only.
func (a *Arena) All() []*Location {
	out := make([]*Location, len(a.locs))
	copy(out, a.locs)

	return out
}

// Coords returns every location coordinate in id order, ready to feed a
// geo.Projector.
func (a *Arena) Coords() []geo.Coord {
	out := make([]geo.Coord, len(a.locs))
	for i, loc := range a.locs {
		out[i] = loc.Coord
	}

	return out
}

// Len returns the number of locations.
func (a *Arena) Len() int { return len(a.locs) }
