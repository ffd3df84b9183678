//go:build linux

package hotkey

import "golang.design/x/hotkey"

// Mod1 is the alt mask and Mod4 the super mask under the stock X modifier map.
var modifierNames = map[string]hotkey.Modifier{
	"ctrl": hotkey.ModCtrl, "control": hotkey.ModCtrl,
	"shift": hotkey.ModShift,
	"alt":   hotkey.Mod1, "option": hotkey.Mod1,
	"win": hotkey.Mod4, "cmd": hotkey.Mod4,
	"command": hotkey.Mod4, "super": hotkey.Mod4,
}
