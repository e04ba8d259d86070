package palette

import (
	"image/color"
	"testing"
)

func TestGet(t *testing.T) {
	if p := Get("mono"); p.Name != "mono" {
		t.Errorf("expected mono, got %s", p.Name)
	}
	if p := Get("nonexistent"); p.Name != Default.Name {
		t.Errorf("expected fallback to %s, got %s", Default.Name, p.Name)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(Palettes) {
		t.Fatalf("expected %d names, got %d", len(Palettes), len(names))
	}
	if names[0] != "paymee" {
		t.Errorf("expected paymee first, got %s", names[0])
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		hex  string
		want color.NRGBA
		ok   bool
	}{
		{"#FF6B81", color.NRGBA{R: 0xff, G: 0x6b, B: 0x81, A: 0xff}, true},
		{"#a5e4ff", color.NRGBA{R: 0xa5, G: 0xe4, B: 0xff, A: 0xff}, true},
		{"#000000", color.NRGBA{A: 0xff}, true},
		{"FF6B81", color.NRGBA{}, false},
		{"#GGGGGG", color.NRGBA{}, false},
		{"", color.NRGBA{}, false},
	}

	for _, tt := range tests {
		got, err := Parse(tt.hex)
		if tt.ok != (err == nil) {
			t.Errorf("Parse(%q) error = %v, want ok=%v", tt.hex, err, tt.ok)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestAllPaletteColorsParse(t *testing.T) {
	roles := []string{"coral", "celeste", "lavanda", "grey_qr", "background", "text", "title",
		"arrow", "note", "dark_celeste", "dark_lavanda", "dark_grey_qr"}
	for _, p := range Palettes {
		for _, role := range roles {
			hex, ok := p.Role(role)
			if !ok {
				t.Errorf("%s: missing role %s", p.Name, role)
				continue
			}
			if _, err := Parse(hex); err != nil {
				t.Errorf("%s.%s: %v", p.Name, role, err)
			}
		}
		if _, err := Parse(p.Fallback); err != nil {
			t.Errorf("%s fallback: %v", p.Name, err)
		}
	}
}

func TestRole_Unknown(t *testing.T) {
	if _, ok := Paymee.Role("magenta"); ok {
		t.Error("expected unknown role to be rejected")
	}
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(MustParse("#FF6B81"), 0.2)
	n := c.(color.NRGBA)
	if n.A != 51 {
		t.Errorf("expected alpha 51, got %d", n.A)
	}
	if n.R != 0xff || n.G != 0x6b || n.B != 0x81 {
		t.Errorf("channels changed: %v", n)
	}

	if WithAlpha(n, 2).(color.NRGBA).A != 255 {
		t.Error("alpha should clamp to 255")
	}
	if WithAlpha(n, -1).(color.NRGBA).A != 0 {
		t.Error("alpha should clamp to 0")
	}
}
