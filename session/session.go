package session

import (
	"fmt"

	"github.com/vcnav/campusnav/navigator"
	"github.com/vcnav/campusnav/route"
)

// UIMode selects how the session interprets a location pick.
type UIMode int

const (
	// ModeExplore inspects locations without touching route state.
	ModeExplore UIMode = iota
	// ModeNavigate collects route endpoints and plans between them.
	ModeNavigate
)

// String returns the mode name for logs and UI labels.
func (m UIMode) String() string {
	switch m {
	case ModeExplore:
		return "Explore"
	case ModeNavigate:
		return "Navigate"
	default:
		return fmt.Sprintf("UIMode(%d)", int(m))
	}
}

// None is the id sentinel for "no location selected".
const None = -1

// Viewport zoom limits and step.
const (
	ZoomStep = 1.1
	MinZoom  = 0.5
	MaxZoom  = 3.0
)

// Session holds the interactive state: the UI mode, the selected
// endpoints and vias, the current route, the last surfaced error, and
// the renderer's viewport.
type Session struct {
	nav *navigator.Navigator

	uiMode    UIMode
	start     int
	end       int
	inspected int
	vias      []int

	current  route.Path
	hasRoute bool
	lastErr  string

	zoom             float64
	offsetX, offsetY float64
	dragging         bool
	dragX, dragY     float64
}

// New wraps an initialized Navigator in a fresh session: Explore mode,
// nothing selected, zoom 1.0, no pan.
func New(nav *navigator.Navigator) *Session {
	return &Session{
		nav:       nav,
		uiMode:    ModeExplore,
		start:     None,
		end:       None,
		inspected: None,
		zoom:      1.0,
	}
}

// UIMode returns the active UI mode.
func (s *Session) UIMode() UIMode { return s.uiMode }

// SetUIMode switches between Explore and Navigate. Always succeeds;
// the inspection pointer is cleared because it belongs to the mode
// being left. Route selections survive the switch.
func (s *Session) SetUIMode(m UIMode) {
	s.uiMode = m
	s.inspected = None
}

// Select handles a location pick under the active UI mode.
//
// Explore: the pick becomes the inspected location.
//
// Navigate: with nothing selected the pick becomes the start; with a
// start the pick becomes the end and planning runs immediately (a
// repeated pick of the start is ignored); with both set the pick
// starts a new selection — it replaces the start and clears the end,
// the route, and any surfaced error. A selected endpoint is removed
// from the via list, the two roles never overlap.
func (s *Session) Select(id int) {
	if _, ok := s.nav.LocationByID(id); !ok {
		s.lastErr = fmt.Sprintf("unknown location id %d", id)
		return
	}

	if s.uiMode == ModeExplore {
		s.inspected = id
		return
	}

	switch {
	case s.start == None:
		s.start = id
		s.dropVia(id)
	case s.end == None:
		if id == s.start {
			return
		}
		s.end = id
		s.dropVia(id)
		s.recompute()
	default:
		s.start = id
		s.end = None
		s.dropVia(id)
		s.clearRoute()
		s.lastErr = ""
	}
}

// ToggleVia inserts id into the ordered via list, or removes it when
// already present. Picks of the start or end are ignored, as are
// unknown ids. An existing route is replanned under the new via list.
func (s *Session) ToggleVia(id int) {
	if id == s.start || id == s.end {
		return
	}
	if _, ok := s.nav.LocationByID(id); !ok {
		s.lastErr = fmt.Sprintf("unknown location id %d", id)
		return
	}

	if !s.dropVia(id) {
		s.vias = append(s.vias, id)
	}
	if s.hasRoute {
		s.recompute()
	}
}

// SetTravelMode switches the travel mode and replans an existing route
// under the new speeds. A zero mode is surfaced in LastError and
// changes nothing.
func (s *Session) SetTravelMode(m navigator.Mode) {
	if err := s.nav.SetMode(m); err != nil {
		s.lastErr = err.Error()
		return
	}
	if s.hasRoute {
		s.recompute()
	}
}

// Clear resets the selection state: start, end, vias, route, error,
// and the inspection pointer. The UI mode and the viewport are kept.
func (s *Session) Clear() {
	s.start = None
	s.end = None
	s.inspected = None
	s.vias = nil
	s.clearRoute()
	s.lastErr = ""
}

// recompute plans start→end through the current vias. On failure the
// route is cleared, the selections stay, and the error is surfaced.
func (s *Session) recompute() {
	p, err := s.nav.FindPathIDs(s.start, s.end, s.vias...)
	if err != nil {
		s.clearRoute()
		s.lastErr = err.Error()
		return
	}
	s.current = p
	s.hasRoute = true
	s.lastErr = ""
}

func (s *Session) clearRoute() {
	s.current = route.Path{}
	s.hasRoute = false
	s.nav.ClearLastPath()
}

// dropVia removes id from the via list, reporting whether it was there.
func (s *Session) dropVia(id int) bool {
	for i, v := range s.vias {
		if v == id {
			s.vias = append(s.vias[:i], s.vias[i+1:]...)
			return true
		}
	}

	return false
}

// ZoomIn magnifies the viewport one step, up to MaxZoom.
func (s *Session) ZoomIn() {
	s.zoom *= ZoomStep
	if s.zoom > MaxZoom {
		s.zoom = MaxZoom
	}
}

// ZoomOut shrinks the viewport one step, down to MinZoom.
func (s *Session) ZoomOut() {
	s.zoom /= ZoomStep
	if s.zoom < MinZoom {
		s.zoom = MinZoom
	}
}

// BeginDrag starts a pan gesture at screen position (x, y).
func (s *Session) BeginDrag(x, y float64) {
	s.dragging = true
	s.dragX, s.dragY = x, y
}

// DragTo continues a pan gesture, accumulating the pointer movement
// into the viewport offset. Ignored outside a gesture.
func (s *Session) DragTo(x, y float64) {
	if !s.dragging {
		return
	}
	s.offsetX += x - s.dragX
	s.offsetY += y - s.dragY
	s.dragX, s.dragY = x, y
}

// EndDrag finishes the pan gesture.
func (s *Session) EndDrag() { s.dragging = false }

// Start returns the route start id, or None.
func (s *Session) Start() int { return s.start }

// End returns the route end id, or None.
func (s *Session) End() int { return s.end }

// Inspected returns the Explore-mode inspection id, or None.
func (s *Session) Inspected() int { return s.inspected }

// Vias returns a copy of the ordered via list.
func (s *Session) Vias() []int {
	out := make([]int, len(s.vias))
	copy(out, s.vias)

	return out
}

// Route returns the current route and whether one exists.
func (s *Session) Route() (route.Path, bool) { return s.current, s.hasRoute }

// LastError returns the last surfaced failure, or "" when the most
// recent operation succeeded.
func (s *Session) LastError() string { return s.lastErr }

// Zoom returns the viewport zoom factor.
func (s *Session) Zoom() float64 { return s.zoom }

// Offset returns the accumulated pan offset in screen pixels.
func (s *Session) Offset() (x, y float64) { return s.offsetX, s.offsetY }

// Navigator exposes the wrapped navigator, for info panels that need
// location details or time estimates.
func (s *Session) Navigator() *navigator.Navigator { return s.nav }
