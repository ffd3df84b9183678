//go:build windows

package pointer

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32       = windows.NewLazySystemDLL("user32.dll")
	getCursorPos = user32.NewProc("GetCursorPos")
)

type cursorPoint struct {
	x, y int32
}

type systemSource struct{}

// System returns the native pointer source.
func System() (Source, error) {
	return systemSource{}, nil
}

func (systemSource) Position() (Position, error) {
	var pt cursorPoint
	ret, _, err := getCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ret == 0 {
		return Position{}, err
	}
	return Position{X: int(pt.x), Y: int(pt.y)}, nil
}
