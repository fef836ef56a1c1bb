package tui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Thunder-Compute/wv2setup/internal/webview2"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(interactive bool, accepted bool, err error) *TerminalPrompter {
	return &TerminalPrompter{
		out:        &bytes.Buffer{},
		isTerminal: func() bool { return interactive },
		confirm: func(string, string) (bool, error) {
			return accepted, err
		},
	}
}

func TestTerminalPrompterConfirm(t *testing.T) {
	tests := []struct {
		name     string
		accepted bool
		err      error
		want     webview2.Answer
	}{
		{name: "yes", accepted: true, want: webview2.AnswerYes},
		{name: "no", accepted: false, want: webview2.AnswerNo},
		{name: "aborted", err: huh.ErrUserAborted, want: webview2.AnswerCancel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, err := newTestPrompter(true, tt.accepted, tt.err).Confirm("title", "message")
			require.NoError(t, err)
			assert.Equal(t, tt.want, answer)
		})
	}
}

func TestTerminalPrompterConfirm_FormError(t *testing.T) {
	cause := errors.New("tty closed")
	_, err := newTestPrompter(true, false, cause).Confirm("title", "message")
	assert.ErrorIs(t, err, cause)
}

func TestTerminalPrompterConfirm_NotInteractive(t *testing.T) {
	called := false
	p := newTestPrompter(false, true, nil)
	p.confirm = func(string, string) (bool, error) {
		called = true
		return true, nil
	}

	_, err := p.Confirm("title", "message")
	assert.ErrorIs(t, err, ErrNotInteractive)
	assert.False(t, called)
}

func TestTerminalPrompterShowError(t *testing.T) {
	var out bytes.Buffer
	p := &TerminalPrompter{out: &out}

	p.ShowError("WebView2 Runtime", "download failed")
	assert.Contains(t, out.String(), "download failed")
}

func TestTerminalPrompterShowInfo(t *testing.T) {
	var out bytes.Buffer
	p := &TerminalPrompter{out: &out}

	p.ShowInfo("WebView2 Runtime", "WebView2 Runtime Version: 120.0.2210.91")
	assert.Contains(t, out.String(), "WebView2 Runtime Version: 120.0.2210.91")
}
