package prompt

import "testing"

func TestResolveStyleKnownNames(t *testing.T) {
	tests := []struct {
		name string
		want Style
	}{
		{"professional", StyleProfessional},
		{"colorful", StyleColorful},
		{"minimal", StyleMinimal},
		{"", StyleGeneric},
		{"generic", StyleGeneric},
	}

	for _, tt := range tests {
		got := ResolveStyle(tt.name)
		if got.Name != tt.want.Name {
			t.Errorf("ResolveStyle(%q).Name = %q, want %q", tt.name, got.Name, tt.want.Name)
		}
	}
}

func TestResolveStyleUnknownFallsBack(t *testing.T) {
	got := ResolveStyle("vaporwave")
	if got.Name != StyleGeneric.Name {
		t.Errorf("ResolveStyle(unknown).Name = %q, want %q", got.Name, StyleGeneric.Name)
	}
}

func TestStyleDirectiveSetsAreDisjoint(t *testing.T) {
	styles := []Style{StyleProfessional, StyleColorful, StyleMinimal}

	// Palette lines must never be shared between styles: each template is a
	// complete prescription, not a diff against a base.
	for i := range styles {
		for j := i + 1; j < len(styles); j++ {
			if styles[i].Directives[0] == styles[j].Directives[0] {
				t.Errorf("styles %q and %q share a palette directive",
					styles[i].Name, styles[j].Name)
			}
		}
	}
}

func TestStylesHaveDirectives(t *testing.T) {
	for _, s := range []Style{StyleProfessional, StyleColorful, StyleMinimal, StyleGeneric} {
		if len(s.Directives) == 0 {
			t.Errorf("style %q has no directives", s.Name)
		}
	}
}
