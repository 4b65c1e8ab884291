/*
Package icongen draws application icons procedurally and exports them to the
fixed set of sizes and file formats the target platforms expect.

An icon is composed once at a canonical working resolution by layering shape
primitives on a Canvas (gradient or flat background, rounded corner mask,
glyph made of ellipses, polygons and rectangles, outlined text label).
The Exporter then resamples the composed image with a high quality filter to
every size of an ExportSpec and writes PNG files and multi-resolution ICO/ICNS
containers.

The package provides a command line interface generating the built-in icons:

	$ icongen --help

In case you wish to export a custom icon, here is a simple example:

	package main

	import (
		"log"

		"github.com/esimov/icongen"
	)

	func main() {
		canvas, err := icongen.NewBriefcase().Compose()
		if err != nil {
			log.Fatal(err)
		}

		spec := icongen.ExportSpec{
			{Name: "icon-128x128.png", Size: 128},
			{Name: "favicon.ico", Sizes: []int{16, 32, 48}, Format: icongen.ICO},
		}
		if err := icongen.NewExporter().Export(canvas, spec, "public"); err != nil {
			log.Fatalf("Error exporting the icon: %v", err)
		}
	}
*/
package icongen
