package icongen

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/esimov/icongen/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradientCanvas(size int) *Canvas {
	c := NewCanvas(size)
	c.FillGradient(turquoise, darkTurquoise)
	c.ApplyMask(NewRoundedMask(size, float64(size/8)))
	return c
}

func decodeConfig(t *testing.T, path string) image.Config {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err, path)
	return cfg
}

func TestExporter_RetinaName(t *testing.T) {
	assert.Equal(t, "icon@2x.png", RetinaName("icon.png"))
	assert.Equal(t, "icon_16x16@2x.png", RetinaName("icon_16x16.png"))
	assert.Equal(t, "icon@2x", RetinaName("icon"))
}

func TestExporter_Lookup(t *testing.T) {
	target, ok := WebSpec.Lookup("apple-touch-icon.png")
	require.True(t, ok)
	assert.Equal(t, 180, target.Size)
	assert.Equal(t, PNG, target.Format)

	target, ok = WebSpec.Lookup("favicon.ico")
	require.True(t, ok)
	assert.Equal(t, []int{16, 32, 48}, target.Sizes)
	assert.Equal(t, "ico", target.Format.String())

	_, ok = MacSpec.Lookup("favicon.ico")
	assert.False(t, ok)
}

func TestExporter_ResampleIsDeterministic(t *testing.T) {
	c := gradientCanvas(128)
	e := NewExporter()

	first := e.Resample(c, 48)
	second := e.Resample(c, 48)
	assert.Equal(t, image.Rect(0, 0, 48, 48), first.Bounds())
	assert.Equal(t, first.Pix, second.Pix)

	// The zero value exporter resamples with Lanczos too.
	assert.Equal(t, first.Pix, (&Exporter{}).Resample(c, 48).Pix)
}

func TestExporter_ResampleHonoursNearestNeighbor(t *testing.T) {
	c := gradientCanvas(128)
	nearest := (&Exporter{Filter: &imaging.NearestNeighbor}).Resample(c, 48)

	assert.Equal(t, imaging.Resize(c.Image(), 48, 48, imaging.NearestNeighbor).Pix, nearest.Pix)
	assert.NotEqual(t, NewExporter().Resample(c, 48).Pix, nearest.Pix)
}

func TestExporter_WebSpec(t *testing.T) {
	dir := t.TempDir()
	var (
		mu      sync.Mutex
		written = map[string]int{}
	)
	e := NewExporter()
	e.Report = func(path string, size int) {
		mu.Lock()
		defer mu.Unlock()
		written[path] = size
	}
	require.NoError(t, e.Export(gradientCanvas(128), WebSpec, dir))
	assert.Len(t, written, len(WebSpec))

	for _, target := range WebSpec {
		path := target.Path(dir)
		require.FileExists(t, path)
		if target.Format != PNG {
			continue
		}
		cfg := decodeConfig(t, path)
		assert.Equal(t, target.Size, cfg.Width, target.Name)
		assert.Equal(t, target.Size, cfg.Height, target.Name)
		assert.Equal(t, target.Size, written[path])
	}

	f, err := os.Open(filepath.Join(dir, "favicon.ico"))
	require.NoError(t, err)
	defer f.Close()
	sizes, err := container.DecodeICOSizes(f)
	require.NoError(t, err)
	assert.Equal(t, []image.Point{{16, 16}, {32, 32}, {48, 48}}, sizes)
}

func TestExporter_MacSpec(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewExporter().Export(gradientCanvas(64), MacSpec, dir))

	for _, target := range MacSpec {
		if target.Format != PNG {
			continue
		}
		cfg := decodeConfig(t, target.Path(dir))
		assert.Equal(t, target.Size, cfg.Width, target.Name)

		require.True(t, target.Retina)
		retina := decodeConfig(t, filepath.Join(dir, target.Dir, RetinaName(target.Name)))
		assert.Equal(t, 2*target.Size, retina.Width, target.Name)
		assert.Equal(t, 2*target.Size, retina.Height, target.Name)
	}
	assert.FileExists(t, filepath.Join(dir, "icon.iconset", "icon_512x512@2x.png"))

	f, err := os.Open(filepath.Join(dir, "icon.icns"))
	require.NoError(t, err)
	defer f.Close()
	sizes, err := container.DecodeICNSSizes(f)
	require.NoError(t, err)
	require.Len(t, sizes, 7)
	assert.Equal(t, image.Pt(16, 16), sizes[0])
	assert.Equal(t, image.Pt(1024, 1024), sizes[6])
}

func TestExporter_OverwritesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	spec := ExportSpec{{Name: "icon.png", Size: 16}}
	path := spec[0].Path(dir)
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	require.NoError(t, NewExporter().Export(gradientCanvas(32), spec, dir))
	assert.Equal(t, 16, decodeConfig(t, path).Width)
}

func TestExporter_FilesystemErrorsAbortTheExport(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "public")
	require.NoError(t, os.WriteFile(base, nil, 0644))

	err := NewExporter().Export(gradientCanvas(32), WebSpec, base)
	assert.Error(t, err)

	// A directory in place of the target file fails the write.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "out", "icon.png"), 0755))
	err = NewExporter().Export(gradientCanvas(32), ExportSpec{{Name: "icon.png", Size: 16}}, filepath.Join(dir, "out"))
	assert.Error(t, err)
}

func TestExporter_RejectsInvalidTargets(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter()
	c := gradientCanvas(32)

	assert.Error(t, e.Export(c, ExportSpec{{Name: "empty.ico", Format: ICO}}, dir))
	assert.Error(t, e.Export(c, ExportSpec{{Name: "huge.ico", Sizes: []int{512}, Format: ICO}}, dir))
	assert.Error(t, e.Export(c, ExportSpec{{Name: "odd.icns", Sizes: []int{48}, Format: ICNS}}, dir))
	assert.Error(t, e.Export(c, ExportSpec{{Name: "icon.bmp", Size: 16, Format: Format(7)}}, dir))
	assert.Equal(t, "format(7)", Format(7).String())
}
