package main

import (
	"errors"
	"image/color"
	"io"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/esimov/icongen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var names = []string{"briefcase", "skull"}

func TestConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig(nil, names, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, allIcons, cfg.Icon)
	assert.Equal(t, ".", cfg.OutDir)
	assert.Empty(t, cfg.Font)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, names, cfg.selected(names))
}

func TestConfig_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("ICONGEN_OUT_DIR", "/tmp/from-env")
	t.Setenv("ICONGEN_FONT", "/fonts/env.ttf")
	t.Setenv("ICONGEN_WORKERS", "3")

	cfg, err := parseConfig(nil, names, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env", cfg.OutDir)
	assert.Equal(t, "/fonts/env.ttf", cfg.Font)
	assert.Equal(t, 3, cfg.Workers)

	cfg, err = parseConfig([]string{"-out", "build", "-icon", "skull", "-conc", "2"}, names, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "build", cfg.OutDir)
	assert.Equal(t, "/fonts/env.ttf", cfg.Font)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, []string{"skull"}, cfg.selected(names))
}

func TestConfig_Rejections(t *testing.T) {
	_, err := parseConfig([]string{"-icon", "teapot"}, names, io.Discard)
	assert.Error(t, err)

	_, err = parseConfig([]string{"-bogus"}, names, io.Discard)
	assert.Error(t, err)

	t.Setenv("ICONGEN_WORKERS", "many")
	_, err = parseConfig(nil, names, io.Discard)
	assert.Error(t, err)
}

func TestConfig_WorkersAreCapped(t *testing.T) {
	cfg, err := parseConfig([]string{"-conc", "100"}, names, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
}

type flatComposer struct {
	err error
}

func (f flatComposer) Compose() (*icongen.Canvas, error) {
	if f.err != nil {
		return nil, f.err
	}
	c := icongen.NewCanvas(32)
	fill := color.NRGBA{R: 0xff, A: 0xff}
	c.FillGradient(fill, fill)
	return c, nil
}

func TestGenerate_RunsEveryIcon(t *testing.T) {
	dir := t.TempDir()
	spec := icongen.ExportSpec{{Name: "icon.png", Size: 16}}
	icons := []icongen.Icon{
		{Name: "one", Composer: flatComposer{}, Spec: spec, BaseDir: "one"},
		{Name: "two", Composer: flatComposer{}, Spec: spec, BaseDir: "two"},
		{Name: "three", Composer: flatComposer{err: errors.New("boom")}, Spec: spec, BaseDir: "three"},
	}

	got := map[string]result{}
	for res := range generate(icons, dir, 2, icongen.NewExporter()) {
		got[res.name] = res
	}
	require.Len(t, got, 3)

	assert.NoError(t, got["one"].err)
	assert.NoError(t, got["two"].err)
	assert.Error(t, got["three"].err)
	assert.Equal(t, filepath.Join(dir, "one"), got["one"].dir)
	assert.FileExists(t, filepath.Join(dir, "one", "icon.png"))
	assert.FileExists(t, filepath.Join(dir, "two", "icon.png"))

	assert.True(t, printStatus(got["one"]))
	assert.False(t, printStatus(got["three"]))
}
