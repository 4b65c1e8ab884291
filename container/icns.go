package container

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"
	"sort"

	"github.com/pkg/errors"
)

var icnsMagic = [4]byte{'i', 'c', 'n', 's'}

// icnsTypes maps the pixel size of a PNG rendition to its ICNS element type.
var icnsTypes = map[int]string{
	16:   "icp4",
	32:   "icp5",
	64:   "icp6",
	128:  "ic07",
	256:  "ic08",
	512:  "ic09",
	1024: "ic10",
}

// ICNSSizes returns the rendition sizes an ICNS file can hold, in ascending order.
func ICNSSizes() []int {
	sizes := make([]int, 0, len(icnsTypes))
	for s := range icnsTypes {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)
	return sizes
}

type icnsHeader struct {
	Type   [4]byte
	Length uint32
}

const icnsHeaderSize = 8

// EncodeICNS writes the images as one ICNS file. Each image must be square
// and its size one of ICNSSizes.
func EncodeICNS(w io.Writer, images []image.Image) error {
	if len(images) == 0 {
		return fmt.Errorf("icns: no images to encode")
	}

	var body bytes.Buffer
	for i, img := range images {
		b := img.Bounds()
		if b.Dx() != b.Dy() {
			return fmt.Errorf("icns: image %d is not square (%dx%d)", i, b.Dx(), b.Dy())
		}
		typ, ok := icnsTypes[b.Dx()]
		if !ok {
			return fmt.Errorf("icns: unsupported size %d", b.Dx())
		}
		data, err := encodePNG(img)
		if err != nil {
			return errors.Wrapf(err, "icns: encode %dx%d", b.Dx(), b.Dy())
		}

		var hdr icnsHeader
		copy(hdr.Type[:], typ)
		hdr.Length = uint32(icnsHeaderSize + len(data))
		if err := binary.Write(&body, binary.BigEndian, hdr); err != nil {
			return err
		}
		body.Write(data)
	}

	hdr := icnsHeader{Type: icnsMagic, Length: uint32(icnsHeaderSize + body.Len())}
	if err := binary.Write(w, binary.BigEndian, hdr); err != nil {
		return err
	}
	_, err := body.WriteTo(w)
	return err
}

// DecodeICNSSizes returns the pixel sizes of the PNG renditions stored in an ICNS file.
// Elements which are not PNG renditions (e.g. table of contents) are skipped.
func DecodeICNSSizes(r io.Reader) ([]image.Point, error) {
	var hdr icnsHeader
	if err := binary.Read(r, binary.BigEndian, &hdr); err != nil {
		return nil, errors.Wrap(err, "icns: read header")
	}
	if hdr.Type != icnsMagic {
		return nil, fmt.Errorf("icns: not an icns file")
	}
	if hdr.Length < icnsHeaderSize {
		return nil, fmt.Errorf("icns: invalid length %d", hdr.Length)
	}

	var sizes []image.Point
	for remaining := int64(hdr.Length) - icnsHeaderSize; remaining > 0; {
		var elem icnsHeader
		if remaining < icnsHeaderSize {
			return nil, fmt.Errorf("icns: trailing %d bytes", remaining)
		}
		if err := binary.Read(r, binary.BigEndian, &elem); err != nil {
			return nil, errors.Wrap(err, "icns: read element")
		}
		if elem.Length < icnsHeaderSize || int64(elem.Length) > remaining {
			return nil, fmt.Errorf("icns: element %q has invalid length %d", elem.Type[:], elem.Length)
		}

		data := &io.LimitedReader{R: r, N: int64(elem.Length) - icnsHeaderSize}
		if cfg, err := png.DecodeConfig(data); err == nil {
			sizes = append(sizes, image.Pt(cfg.Width, cfg.Height))
		}
		if _, err := io.Copy(io.Discard, data); err != nil {
			return nil, errors.Wrapf(err, "icns: skip element %q", elem.Type[:])
		}
		if data.N > 0 {
			return nil, fmt.Errorf("icns: element %q is truncated", elem.Type[:])
		}
		remaining -= int64(elem.Length)
	}
	return sizes, nil
}
