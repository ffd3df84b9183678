//go:build windows

package hotkey

import "golang.design/x/hotkey"

var modifierNames = map[string]hotkey.Modifier{
	"ctrl": hotkey.ModCtrl, "control": hotkey.ModCtrl,
	"shift": hotkey.ModShift,
	"alt":   hotkey.ModAlt, "option": hotkey.ModAlt,
	"win": hotkey.ModWin, "cmd": hotkey.ModWin,
	"command": hotkey.ModWin, "super": hotkey.ModWin,
}
