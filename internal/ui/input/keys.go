// Package input turns key presses into window actions.
package input

import "strings"

// Modifier represents keyboard modifier flags. Values match GdkModifierType.
type Modifier uint

const (
	// ModNone indicates no modifier is pressed.
	ModNone Modifier = 0
	// ModShift indicates the Shift key is pressed.
	ModShift Modifier = 1 << 0
	// ModCtrl indicates the Control key is pressed.
	ModCtrl Modifier = 1 << 2
	// ModAlt indicates the Alt key is pressed.
	ModAlt Modifier = 1 << 3
)

// modifierMask filters out lock and pointer-button bits from GDK state.
const modifierMask = ModCtrl | ModShift | ModAlt

// GDK keyvals used by the default bindings and the key-name table.
const (
	KeyEscape    uint = 0xff1b
	KeyReturn    uint = 0xff0d
	KeyTab       uint = 0xff09
	KeyBackSpace uint = 0xff08
	KeyDelete    uint = 0xffff
	KeyHome      uint = 0xff50
	KeyLeft      uint = 0xff51
	KeyUp        uint = 0xff52
	KeyRight     uint = 0xff53
	KeyDown      uint = 0xff54
	KeyPageUp    uint = 0xff55
	KeyPageDown  uint = 0xff56
	KeyEnd       uint = 0xff57
	KeyF1        uint = 0xffbe
	KeySpace     uint = 0x20
	KeyPlus      uint = 0x2b
	KeyMinus     uint = 0x2d
	KeySlash     uint = 0x2f
	KeyEqual     uint = 0x3d
	KeyQuestion  uint = 0x3f
)

var keyvalByName = map[string]uint{
	"escape":     KeyEscape,
	"esc":        KeyEscape,
	"return":     KeyReturn,
	"enter":      KeyReturn,
	"tab":        KeyTab,
	"space":      KeySpace,
	"backspace":  KeyBackSpace,
	"delete":     KeyDelete,
	"del":        KeyDelete,
	"home":       KeyHome,
	"end":        KeyEnd,
	"pageup":     KeyPageUp,
	"page_up":    KeyPageUp,
	"pagedown":   KeyPageDown,
	"page_down":  KeyPageDown,
	"left":       KeyLeft,
	"arrowleft":  KeyLeft,
	"right":      KeyRight,
	"arrowright": KeyRight,
	"up":         KeyUp,
	"arrowup":    KeyUp,
	"down":       KeyDown,
	"arrowdown":  KeyDown,
	"plus":       KeyPlus,
	"minus":      KeyMinus,
	"-":          KeyMinus,
	"equal":      KeyEqual,
	"=":          KeyEqual,
	"slash":      KeySlash,
	"/":          KeySlash,
	"question":   KeyQuestion,
	"?":          KeyQuestion,
}

// KeyBinding represents a single key combination.
type KeyBinding struct {
	Keyval    uint
	Modifiers Modifier
}

// NewKeyBinding builds a binding from a raw GDK key event. Shifted ASCII
// letters are folded to lowercase so "ctrl+shift+r" matches GDK's "R".
func NewKeyBinding(keyval uint, state uint) KeyBinding {
	if keyval >= 'A' && keyval <= 'Z' {
		keyval += 'a' - 'A'
	}
	return KeyBinding{Keyval: keyval, Modifiers: Modifier(state) & modifierMask}
}

// ParseKeyString parses strings like "ctrl+shift+r", "alt+left" or "f5".
func ParseKeyString(s string) (KeyBinding, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return KeyBinding{}, false
	}
	if s == "+" {
		return KeyBinding{Keyval: KeyPlus}, true
	}

	var modifiers Modifier
	var keyPart string
	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch strings.ToLower(part) {
		case "ctrl", "control":
			modifiers |= ModCtrl
		case "shift":
			modifiers |= ModShift
		case "alt":
			modifiers |= ModAlt
		default:
			if keyPart != "" {
				return KeyBinding{}, false
			}
			keyPart = part
		}
	}

	// "ctrl++" binds the plus key.
	if keyPart == "" && strings.HasSuffix(s, "++") {
		keyPart = "+"
	}
	if keyPart == "" {
		return KeyBinding{}, false
	}

	// Uppercase single letters imply Shift.
	if len(keyPart) == 1 && keyPart[0] >= 'A' && keyPart[0] <= 'Z' {
		modifiers |= ModShift
		keyPart = strings.ToLower(keyPart)
	}

	keyval, ok := stringToKeyval(keyPart)
	if !ok {
		return KeyBinding{}, false
	}
	return KeyBinding{Keyval: keyval, Modifiers: modifiers}, true
}

func stringToKeyval(s string) (uint, bool) {
	lower := strings.ToLower(s)
	if keyval, ok := keyvalByName[lower]; ok {
		return keyval, true
	}
	if s == "+" {
		return KeyPlus, true
	}

	// f1..f12 are contiguous.
	if len(lower) >= 2 && lower[0] == 'f' {
		n := 0
		for _, c := range lower[1:] {
			if c < '0' || c > '9' {
				return 0, false
			}
			n = n*10 + int(c-'0')
		}
		if n >= 1 && n <= 12 {
			return KeyF1 + uint(n-1), true
		}
		return 0, false
	}

	// ASCII letters and digits share their keyval with the character.
	if len(lower) == 1 {
		c := lower[0]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			return uint(c), true
		}
	}
	return 0, false
}
