package palette

import (
	"sort"
	"testing"
)

// TestFor_KnownThemes verifies every registered theme resolves to a
// non-empty palette and that order is stable between lookups.
func TestFor_KnownThemes(t *testing.T) {
	for _, name := range Themes() {
		t.Run(name, func(t *testing.T) {
			p := For(name)
			if len(p) == 0 {
				t.Fatalf("For(%q) returned empty palette", name)
			}

			again := For(name)
			if len(again) != len(p) {
				t.Fatalf("palette length changed between lookups: %d vs %d", len(p), len(again))
			}
			for i := range p {
				if p[i] != again[i] {
					t.Errorf("palette entry %d changed between lookups: %v vs %v", i, p[i], again[i])
				}
			}
		})
	}
}

// TestFor_ChakraOrder pins the chakra palette to its canonical root-to-crown
// ordering. Synthesizer output depends on this order.
func TestFor_ChakraOrder(t *testing.T) {
	want := Palette{
		{255, 0, 0},
		{255, 165, 0},
		{255, 255, 0},
		{0, 255, 0},
		{0, 191, 255},
		{75, 0, 130},
		{238, 130, 238},
	}

	got := For("chakra")
	if len(got) != len(want) {
		t.Fatalf("chakra palette has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chakra[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestFor_UnknownThemeFallsBack verifies unrecognised names degrade to the
// chakra palette rather than erroring.
func TestFor_UnknownThemeFallsBack(t *testing.T) {
	testCases := []string{"", "rainbow", "CHAKRA", "ocean waves"}

	chakra := For(DefaultTheme)
	for _, name := range testCases {
		t.Run("fallback/"+name, func(t *testing.T) {
			got := For(name)
			if len(got) != len(chakra) {
				t.Fatalf("For(%q) returned %d colours, want chakra's %d", name, len(got), len(chakra))
			}
			for i := range chakra {
				if got[i] != chakra[i] {
					t.Errorf("For(%q)[%d] = %v, want %v", name, i, got[i], chakra[i])
				}
			}
		})
	}
}

// TestFrequency_Catalog verifies the solfeggio catalog and the 432 Hz
// fallback for anything outside it, including the HTTP default tone name.
func TestFrequency_Catalog(t *testing.T) {
	testCases := []struct {
		tone string
		want int
	}{
		{"396hz", 396},
		{"417hz", 417},
		{"528hz", 528},
		{"639hz", 639},
		{"741hz", 741},
		{"852hz", 852},
		{"963hz", 963},
		{"432hz", 432}, // not a catalog entry; resolves via fallback
		{"", 432},
		{"110hz", 432},
	}

	for _, tc := range testCases {
		t.Run(tc.tone, func(t *testing.T) {
			if got := Frequency(tc.tone); got != tc.want {
				t.Errorf("Frequency(%q) = %d, want %d", tc.tone, got, tc.want)
			}
		})
	}
}

// TestThemes_ContainsSynthesizerVariants verifies the enumeration includes
// every theme that has a dedicated synthesizer.
func TestThemes_ContainsSynthesizerVariants(t *testing.T) {
	names := Themes()
	sort.Strings(names)

	for _, want := range []string{"chakra", "mandala_flow", "ocean_waves", "sacred_geometry"} {
		i := sort.SearchStrings(names, want)
		if i >= len(names) || names[i] != want {
			t.Errorf("Themes() missing %q", want)
		}
	}
}
