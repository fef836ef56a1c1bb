//go:build windows

package dialog

import (
	"golang.org/x/sys/windows"
)

const available = true

func messageBox(title, message string, style uint32) (int32, error) {
	text, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return 0, err
	}
	caption, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, err
	}
	return windows.MessageBox(0, text, caption, style)
}
