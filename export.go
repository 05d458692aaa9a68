package spacesim

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/soniakeys/meeus/julian"
)

// ExportConfig configures the startup-time path export.
type ExportConfig struct {
	Filename  string // base name of the catalog file
	Timestamp bool   // whether to timestamp the generated file names
}

// PathCatalog is the catalog handed to an external curve renderer: one entry
// per body, pointing at the file holding its orbit path points.
type PathCatalog struct {
	Version string      `json:"version"`
	Name    string      `json:"name"`
	Items   []*PathItem `json:"items"`
}

func (c *PathCatalog) String() string {
	return c.Name + "(" + c.Version + ")"
}

// PathItem describes one body of the catalog.
type PathItem struct {
	Name        string  `json:"name"`
	Radius      float64 `json:"radius"`
	Tilt        float64 `json:"tilt"`
	Source      string  `json:"source"`
	SampleCount int     `json:"sampleCount"`
	Ring        *Ring   `json:"ring,omitempty"`
}

// createPathFile returns a file which requires a defer close statement!
func createPathFile(filename string, stamped bool) (*os.File, error) {
	conf := simConfig()
	if stamped {
		t := time.Now()
		filename = fmt.Sprintf("%s/path-%s-%d-%02d-%02dT%02d.%02d.%02d.xyz", conf.outputDir, filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		filename = fmt.Sprintf("%s/path-%s.xyz", conf.outputDir, filename)
	}
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	// Header
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s (JD %.5f)
# Records are <x> <y> <z>
#   Position in AU scaled by %d
`, time.Now().UTC(), julian.TimeToJD(time.Now().UTC()), DistanceScale))
	return f, nil
}

// ExportPaths writes every body's orbit path as a points file and the catalog
// JSON tying them together. This is the one-shot startup output for a renderer
// which displays the orbits as static curves.
func ExportPaths(s *System, conf ExportConfig) error {
	catalog := PathCatalog{Version: "1.0", Name: conf.Filename, Items: []*PathItem{}}
	for _, b := range s.Bodies() {
		f, err := createPathFile(b.Name, conf.Timestamp)
		if err != nil {
			return err
		}
		for _, pt := range b.Path().Points() {
			f.WriteString(fmt.Sprintf("%f %f %f\n", pt[0], pt[1], pt[2]))
		}
		item := &PathItem{Name: b.Name, Radius: b.Radius, Tilt: b.Tilt, Source: fmt.Sprintf("path-%s.xyz", b.Name), SampleCount: b.Path().Len()}
		if ring := b.Ring(); ring != nil {
			item.Ring = ring
		}
		catalog.Items = append(catalog.Items, item)
		if err = f.Close(); err != nil {
			return err
		}
	}
	fc, err := os.Create(fmt.Sprintf("%s/catalog-%s.json", simConfig().outputDir, conf.Filename))
	if err != nil {
		return err
	}
	defer fc.Close()
	marsh, err := json.Marshal(catalog)
	if err != nil {
		return err
	}
	_, err = fc.Write(marsh)
	return err
}
