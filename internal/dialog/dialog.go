// Package dialog shows confirmation and error dialogs through the Windows
// MessageBox API.
package dialog

import (
	"fmt"

	"github.com/Thunder-Compute/wv2setup/internal/webview2"
	log "github.com/sirupsen/logrus"
)

// MessageBox styles and return codes from winuser.h.
const (
	mbOK            uint32 = 0x00000000
	mbYesNo         uint32 = 0x00000004
	mbIconError     uint32 = 0x00000010
	mbIconQuestion  uint32 = 0x00000020
	mbIconInfo      uint32 = 0x00000040
	mbSetForeground uint32 = 0x00010000

	idOK     int32 = 1
	idCancel int32 = 2
	idYes    int32 = 6
	idNo     int32 = 7
)

type showFunc func(title, message string, style uint32) (int32, error)

// Prompter implements webview2.Prompter with modal message boxes.
type Prompter struct {
	show showFunc
}

// New returns a prompter backed by the native MessageBox.
func New() *Prompter {
	return &Prompter{show: messageBox}
}

// Available reports whether native dialogs can be shown on this platform.
func Available() bool {
	return available
}

// Confirm shows a Yes/No question box.
func (p *Prompter) Confirm(title, message string) (webview2.Answer, error) {
	code, err := p.show(title, message, mbYesNo|mbIconQuestion|mbSetForeground)
	if code == 0 && err != nil {
		return webview2.AnswerCancel, fmt.Errorf("show confirmation dialog: %w", err)
	}
	return MapResult(code)
}

// ShowInfo shows an information box. Failures are only logged.
func (p *Prompter) ShowInfo(title, message string) {
	if _, err := p.show(title, message, mbOK|mbIconInfo|mbSetForeground); err != nil {
		log.Warnf("failed to show info dialog: %v", err)
	}
}

// ShowError shows an error box. Failures are only logged.
func (p *Prompter) ShowError(title, message string) {
	if _, err := p.show(title, message, mbOK|mbIconError|mbSetForeground); err != nil {
		log.Warnf("failed to show error dialog: %v", err)
	}
}

// MapResult converts a MessageBox return code into an answer.
func MapResult(code int32) (webview2.Answer, error) {
	switch code {
	case idYes:
		return webview2.AnswerYes, nil
	case idNo:
		return webview2.AnswerNo, nil
	case idCancel:
		return webview2.AnswerCancel, nil
	default:
		return webview2.AnswerCancel, &webview2.UnknownDialogResultError{Value: code}
	}
}
