package icongen

import (
	"fmt"
	"path/filepath"
)

// WorkingSize is the canonical resolution icons are composed at, before
// being resampled to the exported sizes.
const WorkingSize = 512

// Composer builds an icon image from compile-time constants.
type Composer interface {
	Compose() (*Canvas, error)
}

// Icon binds a composer to the table of files it is exported to.
type Icon struct {
	Name     string
	Composer Composer
	Spec     ExportSpec
	// BaseDir is the output directory the Spec paths are relative to.
	BaseDir string
}

// Generate composes the icon once and fans the result out to every export target.
// The output is written under root joined with the icon base directory.
func (i Icon) Generate(root string, e *Exporter) error {
	canvas, err := i.Composer.Compose()
	if err != nil {
		return fmt.Errorf("compose %s icon: %w", i.Name, err)
	}
	// The exporter only receives a snapshot of the composed canvas.
	return e.Export(canvas.Clone(), i.Spec, filepath.Join(root, i.BaseDir))
}
