package effect

import (
	"fmt"
	"strings"
)

// Kind selects one of the fixed frame effects
type Kind uint8

const (
	Rotation Kind = iota
	Wave
	Spiral
	Bounce
	Pulse

	kindCount
)

// Kinds lists all effects in menu order
var Kinds = [kindCount]Kind{Rotation, Wave, Spiral, Bounce, Pulse}

var kindNames = [kindCount]string{
	Rotation: "rotation",
	Wave:     "wave",
	Spiral:   "spiral",
	Bounce:   "bounce",
	Pulse:    "pulse",
}

var kindTitles = [kindCount]string{
	Rotation: "3D Rotation",
	Wave:     "Wave",
	Spiral:   "Spiral",
	Bounce:   "Bounce",
	Pulse:    "Rainbow Pulse",
}

// kindAliases accepts the long identifiers as well
var kindAliases = map[string]Kind{
	"3d_rotation":   Rotation,
	"3d":            Rotation,
	"rainbow_pulse": Pulse,
	"rainbow":       Pulse,
}

// String returns the short identifier
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Title returns the human-readable menu name
func (k Kind) Title() string {
	if !k.Valid() {
		return k.String()
	}
	return kindTitles[k]
}

// Key returns the menu key selecting this effect, 'a' through 'e'
func (k Kind) Key() rune {
	return 'a' + rune(k)
}

// Valid reports whether k is one of the defined effects
func (k Kind) Valid() bool {
	return k < kindCount
}

// Parse resolves an effect name, case-insensitive
func Parse(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, kn := range kindNames {
		if kn == n {
			return Kind(k), nil
		}
	}
	if k, ok := kindAliases[n]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown effect %q", name)
}

// FromKey maps a menu key ('a'-'e', either case) to an effect
func FromKey(r rune) (Kind, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r >= 'a'+rune(kindCount) {
		return 0, false
	}
	return Kind(r - 'a'), true
}
