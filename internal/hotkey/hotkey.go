// Package hotkey registers the global toggle shortcut. Modifier masks differ
// per OS (virtual-key flags, X11 Mod1/Mod4, Carbon); the name tables live in
// platform files and the parsing and registration plumbing here is shared.
package hotkey

import (
	"fmt"
	"strings"

	"golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"
)

// Binding is one registered global shortcut.
type Binding struct {
	hk *hotkey.Hotkey
}

// Register registers the shortcut described by modifiers and key. The caller
// receives keydown events from Keydown until Unregister.
func Register(modifiers []string, key string) (*Binding, error) {
	mods, err := parseModifiers(modifiers)
	if err != nil {
		return nil, err
	}
	k, err := parseKey(key)
	if err != nil {
		return nil, err
	}

	hk := hotkey.New(mods, k)
	if err := hk.Register(); err != nil {
		return nil, fmt.Errorf("registering hotkey: %w", err)
	}
	return &Binding{hk: hk}, nil
}

// Keydown delivers one value per shortcut press.
func (b *Binding) Keydown() <-chan hotkey.Event {
	return b.hk.Keydown()
}

// Unregister releases the shortcut.
func (b *Binding) Unregister() error {
	return b.hk.Unregister()
}

// RunOnMainThread runs fn on the OS main thread. Hotkey registration
// requires it on some platforms; call this from main before anything else.
func RunOnMainThread(fn func()) {
	mainthread.Init(fn)
}

// parseModifiers resolves modifier names against the platform table.
func parseModifiers(mods []string) ([]hotkey.Modifier, error) {
	var result []hotkey.Modifier
	for _, mod := range mods {
		m, ok := modifierNames[strings.ToLower(mod)]
		if !ok {
			return nil, fmt.Errorf("unknown modifier %q", mod)
		}
		result = append(result, m)
	}
	return result, nil
}

// keyNames maps configuration key names to the package constants, which carry
// the right platform code (virtual-key, X11 keysym, Carbon) on every OS.
var keyNames = map[string]hotkey.Key{
	"a": hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD,
	"e": hotkey.KeyE, "f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH,
	"i": hotkey.KeyI, "j": hotkey.KeyJ, "k": hotkey.KeyK, "l": hotkey.KeyL,
	"m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO, "p": hotkey.KeyP,
	"q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX,
	"y": hotkey.KeyY, "z": hotkey.KeyZ,

	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,

	"f1": hotkey.KeyF1, "f2": hotkey.KeyF2, "f3": hotkey.KeyF3,
	"f4": hotkey.KeyF4, "f5": hotkey.KeyF5, "f6": hotkey.KeyF6,
	"f7": hotkey.KeyF7, "f8": hotkey.KeyF8, "f9": hotkey.KeyF9,
	"f10": hotkey.KeyF10, "f11": hotkey.KeyF11, "f12": hotkey.KeyF12,

	"space":  hotkey.KeySpace,
	"return": hotkey.KeyReturn, "enter": hotkey.KeyReturn,
	"escape": hotkey.KeyEscape, "esc": hotkey.KeyEscape,
	"tab":    hotkey.KeyTab,
	"delete": hotkey.KeyDelete, "del": hotkey.KeyDelete,
	"up": hotkey.KeyUp, "down": hotkey.KeyDown,
	"left": hotkey.KeyLeft, "right": hotkey.KeyRight,
}

func parseKey(key string) (hotkey.Key, error) {
	k, ok := keyNames[strings.ToLower(key)]
	if !ok {
		return 0, fmt.Errorf("unknown key %q", key)
	}
	return k, nil
}
