package icongen

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/icongen/container"
	"github.com/pkg/errors"
)

// Format is the file format of an export target.
type Format int

const (
	// PNG is a single raster image.
	PNG Format = iota
	// ICO is a Windows multi-resolution icon container.
	ICO
	// ICNS is an Apple multi-resolution icon container.
	ICNS
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case ICO:
		return "ico"
	case ICNS:
		return "icns"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// Target describes one exported file.
type Target struct {
	// Name is the logical identifier of the target, also used as file name.
	Name string
	// Dir is the directory of the file, relative to the export base directory.
	Dir string
	// Size is the edge length of a PNG target.
	Size int
	// Retina requests a companion file at twice the size, named with an @2x suffix.
	Retina bool
	// Sizes are the renditions packed into a container target.
	Sizes  []int
	Format Format
}

// Path returns the location of the target file under baseDir.
func (t Target) Path(baseDir string) string {
	return filepath.Join(baseDir, t.Dir, t.Name)
}

// ExportSpec is the static table of files an icon is exported to.
type ExportSpec []Target

// Lookup returns the target with the given identifier.
func (s ExportSpec) Lookup(name string) (Target, bool) {
	for _, t := range s {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

// RetinaName returns the file name of the double resolution companion of name.
func RetinaName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "@2x" + ext
}

// Exporter resamples a composed canvas to the sizes of an export table and writes the files.
type Exporter struct {
	// Filter is the resampling filter. Nil selects Lanczos.
	Filter *imaging.ResampleFilter
	// Report, when set, is called after every written file.
	Report func(path string, size int)
}

// NewExporter returns an exporter using the Lanczos resampling filter.
func NewExporter() *Exporter {
	return &Exporter{Filter: &imaging.Lanczos}
}

// Resample scales the canvas to size×size pixels.
func (e *Exporter) Resample(c *Canvas, size int) *image.NRGBA {
	filter := imaging.Lanczos
	if e.Filter != nil {
		filter = *e.Filter
	}
	return imaging.Resize(c.Image(), size, size, filter)
}

// Export writes every target of the spec under baseDir. Missing directories
// are created and existing files are overwritten. The first failure aborts
// the export; the files written up to that point are left on disk.
func (e *Exporter) Export(c *Canvas, spec ExportSpec, baseDir string) error {
	for _, t := range spec {
		dir := filepath.Join(baseDir, t.Dir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "create directory %s", dir)
		}

		switch t.Format {
		case PNG:
			if err := e.writePNG(c, t.Path(baseDir), t.Size); err != nil {
				return err
			}
			if t.Retina {
				if err := e.writePNG(c, filepath.Join(dir, RetinaName(t.Name)), 2*t.Size); err != nil {
					return err
				}
			}
		case ICO, ICNS:
			if err := e.writeContainer(c, t, t.Path(baseDir)); err != nil {
				return err
			}
		default:
			return fmt.Errorf("target %s: unsupported format %v", t.Name, t.Format)
		}
	}
	return nil
}

func (e *Exporter) writePNG(c *Canvas, path string, size int) error {
	img := e.Resample(c, size)
	err := writeFile(path, func(w io.Writer) error {
		return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	})
	if err != nil {
		return err
	}
	e.report(path, size)
	return nil
}

func (e *Exporter) writeContainer(c *Canvas, t Target, path string) error {
	if len(t.Sizes) == 0 {
		return fmt.Errorf("target %s: no sizes to pack", t.Name)
	}

	images := make([]image.Image, 0, len(t.Sizes))
	for _, size := range t.Sizes {
		images = append(images, e.Resample(c, size))
	}

	encode := container.EncodeICO
	if t.Format == ICNS {
		encode = container.EncodeICNS
	}

	err := writeFile(path, func(w io.Writer) error {
		return encode(w, images)
	})
	if err != nil {
		return err
	}
	e.report(path, t.Sizes[len(t.Sizes)-1])
	return nil
}

func (e *Exporter) report(path string, size int) {
	if e.Report != nil {
		e.Report(path, size)
	}
}

// writeFile creates (or truncates) the file at path and fills it using encode.
func writeFile(path string, encode func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	if err := encode(f); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
