// Package palette holds the fixed theme and tone catalogs. Lookups never
// fail: unknown names degrade to documented defaults.
package palette

// RGB is a single palette entry, channels 0-255.
type RGB struct {
	R, G, B uint8
}

// Palette is an ordered colour sequence. Order is significant: synthesizers
// cycle and interpolate through entries in index order.
type Palette []RGB

// DefaultTheme is the palette returned for unrecognised theme names.
const DefaultTheme = "chakra"

// DefaultFrequency is the fallback for unrecognised tone names. It is kept
// beside the catalog on purpose: the HTTP-level default tone name ("432hz")
// is not a catalog entry, so default requests resolve here.
const DefaultFrequency = 432

var themes = map[string]Palette{
	"chakra": {
		{255, 0, 0},     // Root
		{255, 165, 0},   // Sacral
		{255, 255, 0},   // Solar Plexus
		{0, 255, 0},     // Heart
		{0, 191, 255},   // Throat
		{75, 0, 130},    // Third Eye
		{238, 130, 238}, // Crown
	},
	"ocean_waves": {
		{0, 119, 190},   // Deep Ocean
		{0, 180, 216},   // Ocean Blue
		{144, 224, 239}, // Light Blue
		{173, 216, 230}, // Powder Blue
		{240, 248, 255}, // Alice Blue
	},
	"forest_meditation": {
		{34, 139, 34},   // Forest Green
		{107, 142, 35},  // Olive Drab
		{154, 205, 50},  // Yellow Green
		{144, 238, 144}, // Light Green
		{240, 255, 240}, // Honeydew
	},
	"sacred_geometry": {
		{138, 43, 226},  // Blue Violet
		{147, 112, 219}, // Medium Purple
		{221, 160, 221}, // Plum
		{255, 182, 193}, // Light Pink
		{255, 240, 245}, // Lavender Blush
	},
	"crystal_healing": {
		{230, 230, 250}, // Lavender
		{221, 160, 221}, // Plum
		{255, 192, 203}, // Pink
		{255, 255, 224}, // Light Yellow
		{240, 255, 255}, // Azure
	},
	"sunset_peace": {
		{255, 94, 77},   // Sunset Red
		{255, 154, 0},   // Orange
		{255, 206, 84},  // Golden
		{255, 238, 173}, // Light Golden
		{255, 248, 220}, // Cornsilk
	},
	"northern_lights": {
		{0, 255, 127},   // Spring Green
		{64, 224, 208},  // Turquoise
		{138, 43, 226},  // Blue Violet
		{186, 85, 211},  // Medium Orchid
		{221, 160, 221}, // Plum
	},
	"mandala_flow": {
		{255, 215, 0},  // Gold
		{255, 140, 0},  // Dark Orange
		{220, 20, 60},  // Crimson
		{128, 0, 128},  // Purple
		{75, 0, 130},   // Indigo
	},
}

// Solfeggio healing tones (Hz).
var tones = map[string]int{
	"396hz": 396, // Liberating guilt and fear
	"417hz": 417, // Undoing situations, facilitating change
	"528hz": 528, // Love frequency
	"639hz": 639, // Connecting, relationships
	"741hz": 741, // Awakening intuition
	"852hz": 852, // Returning to spiritual order
	"963hz": 963, // Crown chakra
}

// For returns the palette for a theme name, or the chakra palette when the
// name is unrecognised.
func For(theme string) Palette {
	if p, ok := themes[theme]; ok {
		return p
	}
	return themes[DefaultTheme]
}

// Frequency returns the Hz value for a tone name, or DefaultFrequency when
// the name is unrecognised.
func Frequency(tone string) int {
	if hz, ok := tones[tone]; ok {
		return hz
	}
	return DefaultFrequency
}

// Themes lists every registered theme name.
func Themes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	return names
}

// Tones lists every registered tone name.
func Tones() []string {
	names := make([]string, 0, len(tones))
	for name := range tones {
		names = append(names, name)
	}
	return names
}
