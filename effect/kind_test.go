package effect

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		want    Kind
		wantErr bool
	}{
		{"rotation", Rotation, false},
		{"3d_rotation", Rotation, false},
		{"WAVE", Wave, false},
		{" spiral ", Spiral, false},
		{"bounce", Bounce, false},
		{"pulse", Pulse, false},
		{"rainbow_pulse", Pulse, false},
		{"twirl", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestFromKey(t *testing.T) {
	for _, k := range Kinds {
		got, ok := FromKey(k.Key())
		if !ok || got != k {
			t.Errorf("FromKey(%q) = %v,%v want %v", k.Key(), got, ok, k)
		}
		upper := k.Key() - 'a' + 'A'
		if got, ok := FromKey(upper); !ok || got != k {
			t.Errorf("FromKey(%q) = %v,%v want %v", upper, got, ok, k)
		}
	}

	for _, r := range []rune{'f', 'z', '1', ' ', '`', 'a' + 256, 'é'} {
		if _, ok := FromKey(r); ok {
			t.Errorf("FromKey(%q) should not match", r)
		}
	}
}

func TestKindStrings(t *testing.T) {
	if Rotation.Title() != "3D Rotation" || Pulse.Title() != "Rainbow Pulse" {
		t.Error("Unexpected effect titles")
	}
	if Kind(9).Valid() {
		t.Error("Kind(9) should be invalid")
	}
	if Kind(9).String() != "Kind(9)" {
		t.Errorf("Unexpected string for invalid kind: %s", Kind(9).String())
	}
}
