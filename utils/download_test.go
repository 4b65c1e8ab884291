package utils

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ttfHeader is the sfnt version tag of a TrueType font, enough for content sniffing.
var ttfHeader = []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x0c, 0x00, 0x80}

func TestUtils_ShouldDownloadFont(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(ttfHeader)
	}))
	defer srv.Close()

	f, err := DownloadFile(srv.URL+"/font.ttf", "font/")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	defer f.Close()

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, ttfHeader, data)
}

func TestUtils_ShouldRejectUnexpectedContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>not a font</body></html>"))
	}))
	defer srv.Close()

	f, err := DownloadFile(srv.URL, "font/")
	assert.Error(t, err)
	assert.Nil(t, f)
}

func TestUtils_ShouldFailOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := DownloadFile(srv.URL, "font/")
	assert.Error(t, err)
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	assert.True(t, IsValidUrl("https://github.com/esimov/icongen/"))
	assert.False(t, IsValidUrl("/System/Library/Fonts/Helvetica.ttc"))
	assert.False(t, IsValidUrl("fonts/Inter.ttf"))
}

func TestUtils_ShouldDetectContentType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font.ttf")
	require.NoError(t, os.WriteFile(path, ttfHeader, 0644))

	ctype, err := DetectContentType(path)
	require.NoError(t, err)
	assert.Equal(t, "font/ttf", ctype)
}

func TestUtils_Contains(t *testing.T) {
	assert.True(t, Contains([]int{16, 32, 48}, 32))
	assert.False(t, Contains([]string{"png", "ico"}, "icns"))
}

func TestUtils_Math(t *testing.T) {
	assert.Equal(t, 2, Min(2, 5))
	assert.Equal(t, 5, Max(2, 5))
	assert.Equal(t, 255, Clamp(300, 0, 255))
	assert.Equal(t, 0, Clamp(-4, 0, 255))
}
