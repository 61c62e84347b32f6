package campus

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed campus.yaml
var defaultCampusYAML []byte

// LocationRecord is one YAML location entry.
type LocationRecord struct {
	Name        string  `yaml:"name"`
	Lat         float64 `yaml:"lat"`
	Lon         float64 `yaml:"lon"`
	Description string  `yaml:"description,omitempty"`
	Category    string  `yaml:"category,omitempty"`

	Academic *AcademicInfo `yaml:"academic,omitempty"`
	Hostel   *HostelInfo   `yaml:"hostel,omitempty"`
}

// Connection is one YAML walkway entry: a bidirectional link between
// two named locations. Meters == 0 means "derive from coordinates".
type Connection struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Meters float64 `yaml:"meters,omitempty"`
}

// Dataset is the full static input feed: an ordered list of named
// points and an ordered list of named-pair connections.
type Dataset struct {
	Locations   []LocationRecord `yaml:"locations"`
	Connections []Connection     `yaml:"connections"`
}

// DefaultDataset returns the embedded IIITDM Kancheepuram campus.
// The embedded file is validated at build time by the package tests, so
// a parse failure here is a broken binary, not a runtime condition.
func DefaultDataset() Dataset {
	ds, err := parseDataset(defaultCampusYAML)
	if err != nil {
		panic(fmt.Sprintf("campus: embedded dataset invalid: %v", err))
	}

	return ds
}

// LoadDataset reads and validates a YAML dataset from path.
func LoadDataset(path string) (Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("campus: read dataset: %w", err)
	}

	return parseDataset(raw)
}

func parseDataset(raw []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return Dataset{}, fmt.Errorf("campus: parse dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}

	return ds, nil
}

// Validate checks the dataset invariants: non-empty unique names, GPS
// coordinates in range, non-negative connection distances, and
// connection endpoints that resolve to a listed location.
func (ds Dataset) Validate() error {
	seen := make(map[string]struct{}, len(ds.Locations))
	for i, rec := range ds.Locations {
		if rec.Name == "" {
			return fmt.Errorf("%w: location %d", ErrEmptyName, i)
		}
		if _, dup := seen[rec.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, rec.Name)
		}
		seen[rec.Name] = struct{}{}
		if rec.Lat < -90 || rec.Lat > 90 || rec.Lon < -180 || rec.Lon > 180 {
			return fmt.Errorf("%w: %q (%v, %v)", ErrBadCoordinate, rec.Name, rec.Lat, rec.Lon)
		}
	}

	for _, conn := range ds.Connections {
		if conn.Meters < 0 {
			return fmt.Errorf("%w: %s–%s", ErrNegativeDistance, conn.From, conn.To)
		}
		if _, ok := seen[conn.From]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownLocation, conn.From)
		}
		if _, ok := seen[conn.To]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownLocation, conn.To)
		}
	}

	return nil
}
