//go:build windows

package webview2

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

const (
	seeMaskNoCloseProcess = 0x00000040
	seeMaskNoAsync        = 0x00000100
	swShowNormal          = 1

	coinitApartmentThreaded = 0x2
	coinitDisableOLE1DDE    = 0x4

	// CoInitializeEx reports an apartment that was already initialized on
	// this thread as S_FALSE; it still has to be balanced by CoUninitialize.
	sFalse = syscall.Errno(1)
)

// RunElevated launches the installer through a UAC elevation request and
// waits up to timeout for it to finish. The calling goroutine is pinned to its
// OS thread for the lifetime of the COM apartment.
func (ExecLauncher) RunElevated(_ context.Context, path string, args []string, timeout time.Duration) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	apartment, err := enterApartment()
	if err != nil {
		return err
	}
	defer apartment.Close()

	proc, err := shellExecuteRunas(path, args)
	if err != nil {
		return err
	}
	defer proc.Close()

	log.Debugf("waiting up to %s for elevated installer", timeout)
	event, waitErr := windows.WaitForSingleObject(proc.handle, timeoutMillis(timeout))
	if err := classifyWait(event, waitErr); err != nil {
		return err
	}

	code, err := proc.exitCode()
	if err != nil {
		return &LaunchError{Path: path, ExitCode: -1, Err: err}
	}
	if code != 0 {
		return &LaunchError{Path: path, ExitCode: int(code)}
	}
	return nil
}

// comApartment is an initialized single-threaded COM apartment.
type comApartment struct {
	closed bool
}

func enterApartment() (*comApartment, error) {
	err := windows.CoInitializeEx(0, coinitApartmentThreaded|coinitDisableOLE1DDE)
	if err != nil && !errors.Is(err, sFalse) {
		return nil, &ComInitError{Err: err}
	}
	return &comApartment{}, nil
}

func (a *comApartment) Close() {
	if a.closed {
		return
	}
	a.closed = true
	windows.CoUninitialize()
}

// processHandle owns a process handle returned by ShellExecuteEx.
type processHandle struct {
	handle windows.Handle
}

func (p *processHandle) Close() {
	if p.handle == 0 {
		return
	}
	if err := windows.CloseHandle(p.handle); err != nil {
		log.Warnf("failed to close installer process handle: %v", err)
	}
	p.handle = 0
}

func (p *processHandle) exitCode() (uint32, error) {
	var code uint32
	if err := windows.GetExitCodeProcess(p.handle, &code); err != nil {
		return 0, err
	}
	return code, nil
}

func shellExecuteRunas(path string, args []string) (*processHandle, error) {
	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return nil, &LaunchError{Path: path, ExitCode: -1, Err: err}
	}
	file, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, &LaunchError{Path: path, ExitCode: -1, Err: err}
	}
	params, err := windows.UTF16PtrFromString(joinArgs(args))
	if err != nil {
		return nil, &LaunchError{Path: path, ExitCode: -1, Err: err}
	}

	info := &windows.SHELLEXECUTEINFO{
		Mask:       seeMaskNoCloseProcess | seeMaskNoAsync,
		Verb:       verb,
		File:       file,
		Parameters: params,
		Show:       swShowNormal,
	}

	// ERROR_CANCELLED here means the UAC prompt was refused.
	if err := windows.ShellExecuteEx(info); err != nil {
		return nil, &LaunchError{Path: path, ExitCode: -1, Err: err}
	}
	if info.Process == 0 {
		return nil, &LaunchError{Path: path, ExitCode: -1, Err: errors.New("no process handle returned")}
	}
	return &processHandle{handle: info.Process}, nil
}

func joinArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = windows.EscapeArg(a)
	}
	return strings.Join(quoted, " ")
}
