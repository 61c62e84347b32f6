// Command campusnav is a console walkthrough of the campus navigation
// core: it loads a campus dataset, plans a handful of routes, and
// drives the interactive session state machine the way a map UI would.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/vcnav/campusnav/campus"
	"github.com/vcnav/campusnav/navigator"
	"github.com/vcnav/campusnav/session"
)

func main() {
	var (
		dataPath  = flag.String("data", "", "campus dataset YAML (default: embedded IIITDM campus)")
		modesPath = flag.String("modes", "", "travel-mode speed overrides YAML")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(newLogHandler(os.Stdout, level))

	if err := run(log, *dataPath, *modesPath); err != nil {
		log.Error("campusnav failed", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, dataPath, modesPath string) error {
	// 1) Dataset: embedded campus unless -data points elsewhere.
	ds := campus.DefaultDataset()
	if dataPath != "" {
		loaded, err := campus.LoadDataset(dataPath)
		if err != nil {
			return err
		}
		ds = loaded
		log.Info("dataset loaded", "path", dataPath)
	}

	// 2) Mode speeds: defaults unless -modes overrides them.
	cfg := navigator.DefaultModeConfig()
	if modesPath != "" {
		loaded, err := navigator.LoadModeConfig(modesPath)
		if err != nil {
			return err
		}
		cfg = loaded
		log.Info("mode speeds loaded", "walking_kmh", cfg.WalkingKmh, "cycling_kmh", cfg.CyclingKmh)
	}

	nav, err := navigator.NewWithConfig(cfg)
	if err != nil {
		return err
	}
	if err = nav.InitializeGraph(ds); err != nil {
		return err
	}
	log.Info("campus graph built",
		"locations", nav.Graph().NodeCount(),
		"walkways", nav.Graph().EdgeCount())

	if err = planDemoRoutes(log, nav, cfg); err != nil {
		return err
	}
	driveSession(log, nav)

	return nil
}

// planDemoRoutes runs the sample queries against the navigator facade.
func planDemoRoutes(log *slog.Logger, nav *navigator.Navigator, cfg navigator.ModeConfig) error {
	// Plain two-point route.
	p, err := nav.FindPath("Main Gate", "Mess")
	if err != nil {
		return err
	}
	minutes, err := nav.EstimatedTime()
	if err != nil {
		return err
	}
	log.Info("route planned",
		"from", "Main Gate", "to", "Mess",
		"path", routeNames(nav, p.Nodes()),
		"meters", fmt.Sprintf("%.2f", p.TotalDistance()),
		"mode", nav.Mode().Name,
		"minutes", fmt.Sprintf("%.2f", minutes))

	// Same trip forced through the Library.
	p, err = nav.FindPath("Main Gate", "Mess", "Library")
	if err != nil {
		return err
	}
	log.Info("route planned",
		"from", "Main Gate", "to", "Mess", "via", "Library",
		"path", routeNames(nav, p.Nodes()),
		"meters", fmt.Sprintf("%.2f", p.TotalDistance()))

	// Switch to cycling and re-estimate.
	if err = nav.SetMode(cfg.Cycling()); err != nil {
		return err
	}
	minutes, err = nav.EstimatedTime()
	if err != nil {
		return err
	}
	log.Info("mode switched", "mode", nav.Mode().Name, "minutes", fmt.Sprintf("%.2f", minutes))

	return nav.SetMode(cfg.Walking())
}

// driveSession clicks through the state machine like a pointer would.
func driveSession(log *slog.Logger, nav *navigator.Navigator) {
	s := session.New(nav)

	// Explore: inspect a hostel for the info panel.
	hostel, _ := nav.LocationByName("Hostel C")
	s.Select(hostel.ID)
	if loc, ok := nav.LocationByID(s.Inspected()); ok && loc.Hostel != nil {
		log.Info("inspected",
			"name", loc.Name,
			"capacity", loc.Hostel.Capacity,
			"occupancy", loc.Hostel.Occupancy,
			"gender", loc.Hostel.Gender)
	}

	// Navigate: gate → sports complex, then drag the viewport around.
	s.SetUIMode(session.ModeNavigate)
	gate, _ := nav.LocationByName("Main Gate")
	sports, _ := nav.LocationByName("Sports Complex")
	s.Select(gate.ID)
	s.Select(sports.ID)
	if p, ok := s.Route(); ok {
		log.Info("session route",
			"path", routeNames(nav, p.Nodes()),
			"meters", fmt.Sprintf("%.2f", p.TotalDistance()))
	} else {
		log.Warn("session route failed", "err", s.LastError())
	}

	s.ZoomIn()
	s.BeginDrag(450, 400)
	s.DragTo(480, 370)
	s.EndDrag()
	x, y := s.Offset()
	log.Debug("viewport", "zoom", fmt.Sprintf("%.2f", s.Zoom()),
		"offset", fmt.Sprintf("(%.0f, %.0f)", x, y))
}

// routeNames renders a path's node ids as an arrow-joined name list.
func routeNames(nav *navigator.Navigator, ids []int) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if loc, ok := nav.LocationByID(id); ok {
			names = append(names, loc.Name)
		}
	}

	return strings.Join(names, " -> ")
}
