//go:build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

const codePageUTF8 = 65001

// Init switches the console to UTF-8 and turns on VT escape handling so
// lipgloss output renders in cmd.exe and older PowerShell hosts.
func Init() {
	_ = windows.SetConsoleOutputCP(codePageUTF8)
	_ = windows.SetConsoleCP(codePageUTF8)

	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		handle := windows.Handle(f.Fd())
		var mode uint32
		if err := windows.GetConsoleMode(handle, &mode); err == nil {
			_ = windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
		}
	}
}
