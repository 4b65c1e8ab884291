// Package container packs several renditions of the same icon into a single
// multi-resolution file: a Windows ICO or an Apple ICNS. Every rendition
// is stored as an embedded PNG stream.
package container

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// maxICOSize is the largest dimension an ICO directory entry can describe.
const maxICOSize = 256

type iconDir struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type iconDirEntry struct {
	Width    uint8
	Height   uint8
	Colors   uint8
	Reserved uint8
	Planes   uint16
	BitCount uint16
	Size     uint32
	Offset   uint32
}

const (
	iconDirSize   = 6
	iconEntrySize = 16
)

// EncodeICO writes the images as one ICO file. Each image must be square
// and at most 256 pixels wide.
func EncodeICO(w io.Writer, images []image.Image) error {
	if len(images) == 0 {
		return fmt.Errorf("ico: no images to encode")
	}

	payloads := make([][]byte, len(images))
	for i, img := range images {
		b := img.Bounds()
		if b.Dx() != b.Dy() {
			return fmt.Errorf("ico: image %d is not square (%dx%d)", i, b.Dx(), b.Dy())
		}
		if b.Dx() <= 0 || b.Dx() > maxICOSize {
			return fmt.Errorf("ico: unsupported size %d", b.Dx())
		}
		data, err := encodePNG(img)
		if err != nil {
			return errors.Wrapf(err, "ico: encode %dx%d", b.Dx(), b.Dy())
		}
		payloads[i] = data
	}

	if err := binary.Write(w, binary.LittleEndian, iconDir{Type: 1, Count: uint16(len(images))}); err != nil {
		return err
	}

	offset := iconDirSize + iconEntrySize*len(images)
	for i, img := range images {
		dim := img.Bounds().Dx()
		entry := iconDirEntry{
			Width:    uint8(dim % maxICOSize), // 0 means 256
			Height:   uint8(dim % maxICOSize),
			Planes:   1,
			BitCount: 32,
			Size:     uint32(len(payloads[i])),
			Offset:   uint32(offset),
		}
		if err := binary.Write(w, binary.LittleEndian, entry); err != nil {
			return err
		}
		offset += len(payloads[i])
	}

	for _, data := range payloads {
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// DecodeICOSizes reads the ICO directory and returns the dimensions of the embedded images.
func DecodeICOSizes(r io.Reader) ([]image.Point, error) {
	entries, err := readICODir(r)
	if err != nil {
		return nil, err
	}

	sizes := make([]image.Point, len(entries))
	for i, e := range entries {
		sizes[i] = image.Pt(icoDim(e.Width), icoDim(e.Height))
	}
	return sizes, nil
}

// DecodeICO decodes every image embedded into an ICO file.
// Only PNG compressed entries are supported.
func DecodeICO(r io.Reader) ([]image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	entries, err := readICODir(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	images := make([]image.Image, 0, len(entries))
	for i, e := range entries {
		end := int(e.Offset) + int(e.Size)
		if end > len(data) {
			return nil, fmt.Errorf("ico: entry %d points outside of the file", i)
		}
		img, err := png.Decode(bytes.NewReader(data[e.Offset:end]))
		if err != nil {
			return nil, errors.Wrapf(err, "ico: decode entry %d", i)
		}
		images = append(images, img)
	}
	return images, nil
}

func readICODir(r io.Reader) ([]iconDirEntry, error) {
	var dir iconDir
	if err := binary.Read(r, binary.LittleEndian, &dir); err != nil {
		return nil, errors.Wrap(err, "ico: read header")
	}
	if dir.Reserved != 0 || dir.Type != 1 {
		return nil, fmt.Errorf("ico: not an icon file")
	}

	entries := make([]iconDirEntry, dir.Count)
	if err := binary.Read(r, binary.LittleEndian, entries); err != nil {
		return nil, errors.Wrap(err, "ico: read directory")
	}
	return entries, nil
}

func icoDim(v uint8) int {
	if v == 0 {
		return maxICOSize
	}
	return int(v)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
