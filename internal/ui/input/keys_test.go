package input

import "testing"

func TestParseKeyString_SingleKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  KeyBinding
	}{
		{name: "escape", input: "escape", want: KeyBinding{Keyval: KeyEscape}},
		{name: "esc alias", input: "esc", want: KeyBinding{Keyval: KeyEscape}},
		{name: "enter alias", input: "enter", want: KeyBinding{Keyval: KeyReturn}},
		{name: "plus symbol", input: "+", want: KeyBinding{Keyval: KeyPlus}},
		{name: "f5", input: "f5", want: KeyBinding{Keyval: KeyF1 + 4}},
		{name: "f12", input: "F12", want: KeyBinding{Keyval: KeyF1 + 11}},
		{name: "letter", input: "u", want: KeyBinding{Keyval: 'u'}},
		{name: "digit", input: "0", want: KeyBinding{Keyval: '0'}},
		{name: "slash name", input: "slash", want: KeyBinding{Keyval: KeySlash}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseKeyString(tt.input)
			if !ok {
				t.Fatalf("ParseKeyString(%q) failed", tt.input)
			}
			if got != tt.want {
				t.Errorf("ParseKeyString(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseKeyString_WithModifiers(t *testing.T) {
	tests := []struct {
		input string
		want  KeyBinding
	}{
		{"ctrl+r", KeyBinding{Keyval: 'r', Modifiers: ModCtrl}},
		{"control+r", KeyBinding{Keyval: 'r', Modifiers: ModCtrl}},
		{"ctrl+shift+r", KeyBinding{Keyval: 'r', Modifiers: ModCtrl | ModShift}},
		{"Ctrl+R", KeyBinding{Keyval: 'r', Modifiers: ModCtrl | ModShift}},
		{"alt+left", KeyBinding{Keyval: KeyLeft, Modifiers: ModAlt}},
		{"ctrl+/", KeyBinding{Keyval: KeySlash, Modifiers: ModCtrl}},
		{"ctrl++", KeyBinding{Keyval: KeyPlus, Modifiers: ModCtrl}},
		{" ctrl + l ", KeyBinding{Keyval: 'l', Modifiers: ModCtrl}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseKeyString(tt.input)
			if !ok {
				t.Fatalf("ParseKeyString(%q) failed", tt.input)
			}
			if got != tt.want {
				t.Errorf("ParseKeyString(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseKeyString_Invalid(t *testing.T) {
	tests := []string{
		"",
		"ctrl+",
		"unknownkey",
		"ctrl+unknownkey",
		"ctrl+a+b",
		"f13",
		"f1x",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, ok := ParseKeyString(input); ok {
				t.Errorf("ParseKeyString(%q) should have failed", input)
			}
		})
	}
}

func TestNewKeyBinding_NormalizesEvent(t *testing.T) {
	const capsLock = 1 << 1
	const button1 = 1 << 8

	got := NewKeyBinding('R', uint(ModCtrl|ModShift)|capsLock|button1)
	want := KeyBinding{Keyval: 'r', Modifiers: ModCtrl | ModShift}
	if got != want {
		t.Errorf("NewKeyBinding = %+v, want %+v", got, want)
	}
}
