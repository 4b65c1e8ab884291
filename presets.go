package icongen

import "sort"

// WebSpec lists the favicon and progressive web app icons.
var WebSpec = ExportSpec{
	{Name: "favicon.ico", Sizes: []int{16, 32, 48}, Format: ICO},
	{Name: "favicon-16x16.png", Size: 16},
	{Name: "favicon-32x32.png", Size: 32},
	{Name: "favicon-48x48.png", Size: 48},
	{Name: "icon-72x72.png", Dir: "icons", Size: 72},
	{Name: "icon-96x96.png", Dir: "icons", Size: 96},
	{Name: "icon-128x128.png", Dir: "icons", Size: 128},
	{Name: "icon-144x144.png", Dir: "icons", Size: 144},
	{Name: "icon-152x152.png", Dir: "icons", Size: 152},
	{Name: "icon-192x192.png", Dir: "icons", Size: 192},
	{Name: "icon-384x384.png", Dir: "icons", Size: 384},
	{Name: "icon-512x512.png", Dir: "icons", Size: 512},
	{Name: "apple-touch-icon.png", Size: 180},
	{Name: "logo.png", Size: 512},
	{Name: "favicon.png", Size: 32},
}

// MacSpec lists the desktop application icons: the window icon, the
// iconset consumed by iconutil and the compiled ICNS container.
var MacSpec = ExportSpec{
	{Name: "icon.png", Size: 512, Retina: true},
	{Name: "icon_16x16.png", Dir: "icon.iconset", Size: 16, Retina: true},
	{Name: "icon_32x32.png", Dir: "icon.iconset", Size: 32, Retina: true},
	{Name: "icon_128x128.png", Dir: "icon.iconset", Size: 128, Retina: true},
	{Name: "icon_256x256.png", Dir: "icon.iconset", Size: 256, Retina: true},
	{Name: "icon_512x512.png", Dir: "icon.iconset", Size: 512, Retina: true},
	{Name: "icon.icns", Sizes: []int{16, 32, 64, 128, 256, 512, 1024}, Format: ICNS},
}

// Catalog returns the icons known to the generator, keyed by name.
// The fontPath is used by the icons rendering text; empty selects the default font.
func Catalog(fontPath string) map[string]Icon {
	return map[string]Icon{
		"briefcase": {
			Name:     "briefcase",
			Composer: NewBriefcase(),
			Spec:     WebSpec,
			BaseDir:  "public",
		},
		"skull": {
			Name:     "skull",
			Composer: NewSkull(fontPath),
			Spec:     MacSpec,
			BaseDir:  "assets",
		},
	}
}

// Names returns the catalog icon names in alphabetical order.
func Names(catalog map[string]Icon) []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
