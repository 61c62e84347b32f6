package campus

import (
	"strings"

	"github.com/vcnav/campusnav/geo"
)

// Kind discriminates visible buildings from hidden turn waypoints.
type Kind int

const (
	// KindBuilding is a visible, labeled campus point.
	KindBuilding Kind = iota
	// KindWaypoint is a hidden turn point used only for route shaping.
	KindWaypoint
)

// HiddenDescription is the sentinel description marking a record as a
// hidden waypoint regardless of its name.
const HiddenDescription = "[hidden]"

// hiddenNamePrefix marks turn waypoints by naming convention.
const hiddenNamePrefix = "turn_"

// Gender classifies hostel buildings for the info panel.
type Gender string

const (
	GenderUnspecified Gender = ""
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
)

// AcademicInfo is the category payload of academic buildings. It is
// consumed only by the info-panel renderer; the planner never reads it.
type AcademicInfo struct {
	Departments []string `yaml:"departments,omitempty"`
	Classrooms  int      `yaml:"classrooms,omitempty"`
	Labs        int      `yaml:"labs,omitempty"`
}

// HostelInfo is the category payload of hostel buildings.
type HostelInfo struct {
	Capacity   int    `yaml:"capacity,omitempty"`
	Occupancy  int    `yaml:"occupancy,omitempty"`
	Floors     int    `yaml:"floors,omitempty"`
	Gender     Gender `yaml:"gender,omitempty"`
	CommonRoom bool   `yaml:"common_room,omitempty"`
}

// Location is one campus point. Records are created once at startup,
// owned exclusively by the Arena, and immutable for the process
// lifetime; every other component refers to a Location by its ID.
//
// At most one of Academic/Hostel is non-nil, mirroring the building
// category; both are nil for generic buildings and waypoints.
type Location struct {
	ID          int
	Name        string
	Coord       geo.Coord
	Description string
	Kind        Kind
	Category    string

	Academic *AcademicInfo
	Hostel   *HostelInfo
}

// Hidden reports whether the location is a turn waypoint that label and
// marker drawing should skip.
func (l *Location) Hidden() bool { return l.Kind == KindWaypoint }

// kindOf derives the building/waypoint discriminant from the record's
// category, name prefix and description sentinel.
func kindOf(category, name, description string) Kind {
	if category == "waypoint" ||
		strings.HasPrefix(name, hiddenNamePrefix) ||
		description == HiddenDescription {
		return KindWaypoint
	}

	return KindBuilding
}
