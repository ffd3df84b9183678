package hotkey

import (
	"testing"

	"golang.design/x/hotkey"
)

func TestParseModifiers(t *testing.T) {
	mods, err := parseModifiers([]string{"Ctrl", "shift"})
	if err != nil {
		t.Fatal(err)
	}
	if len(mods) != 2 || mods[0] != hotkey.ModCtrl || mods[1] != hotkey.ModShift {
		t.Errorf("mods = %v", mods)
	}

	// alt and win map to different masks per platform but must resolve
	// everywhere.
	for _, name := range []string{"alt", "option", "win", "cmd", "super"} {
		if _, err := parseModifiers([]string{name}); err != nil {
			t.Errorf("parseModifiers(%q): %v", name, err)
		}
	}

	if _, err := parseModifiers([]string{"hyper"}); err == nil {
		t.Error("unknown modifier should error")
	}
}

func TestParseKey(t *testing.T) {
	cases := map[string]hotkey.Key{
		"z":     hotkey.KeyZ,
		"Z":     hotkey.KeyZ,
		"5":     hotkey.Key5,
		"f3":    hotkey.KeyF3,
		"space": hotkey.KeySpace,
		"esc":   hotkey.KeyEscape,
		"enter": hotkey.KeyReturn,
	}
	for in, want := range cases {
		got, err := parseKey(in)
		if err != nil {
			t.Errorf("parseKey(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("parseKey(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := parseKey("hyperspace"); err == nil {
		t.Error("unknown key should error")
	}
}
