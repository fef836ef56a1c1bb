package dialog

import (
	"errors"
	"testing"

	"github.com/Thunder-Compute/wv2setup/internal/webview2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapResult(t *testing.T) {
	tests := []struct {
		code int32
		want webview2.Answer
	}{
		{idYes, webview2.AnswerYes},
		{idNo, webview2.AnswerNo},
		{idCancel, webview2.AnswerCancel},
	}
	for _, tt := range tests {
		got, err := MapResult(tt.code)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestMapResult_Unknown(t *testing.T) {
	for _, code := range []int32{0, idOK, 3, 42} {
		_, err := MapResult(code)
		var dlgErr *webview2.UnknownDialogResultError
		require.ErrorAs(t, err, &dlgErr, "code %d", code)
		assert.Equal(t, code, dlgErr.Value)
	}
}

func TestPrompterConfirm_UsesYesNoQuestion(t *testing.T) {
	var gotTitle, gotMessage string
	var gotStyle uint32
	p := &Prompter{show: func(title, message string, style uint32) (int32, error) {
		gotTitle, gotMessage, gotStyle = title, message, style
		return idYes, nil
	}}

	answer, err := p.Confirm("WebView2 Runtime", "Install now?")
	require.NoError(t, err)
	assert.Equal(t, webview2.AnswerYes, answer)
	assert.Equal(t, "WebView2 Runtime", gotTitle)
	assert.Equal(t, "Install now?", gotMessage)
	assert.Equal(t, mbYesNo, gotStyle&0xF)
	assert.NotZero(t, gotStyle&mbIconQuestion)
}

func TestPrompterConfirm_ShowFailure(t *testing.T) {
	cause := errors.New("no desktop")
	p := &Prompter{show: func(string, string, uint32) (int32, error) { return 0, cause }}

	_, err := p.Confirm("t", "m")
	assert.ErrorIs(t, err, cause)
}

func TestPrompterShowError_UsesErrorIcon(t *testing.T) {
	var gotStyle uint32
	p := &Prompter{show: func(_ string, _ string, style uint32) (int32, error) {
		gotStyle = style
		return idOK, nil
	}}

	p.ShowError("t", "boom")
	assert.NotZero(t, gotStyle&mbIconError)
	assert.Zero(t, gotStyle&mbYesNo)
}

func TestPrompterShowInfo_UsesInformationIcon(t *testing.T) {
	var gotMessage string
	var gotStyle uint32
	p := &Prompter{show: func(_ string, message string, style uint32) (int32, error) {
		gotMessage, gotStyle = message, style
		return idOK, nil
	}}

	p.ShowInfo("WebView2 Runtime", "WebView2 Runtime Version: 120.0.2210.91")
	assert.Equal(t, "WebView2 Runtime Version: 120.0.2210.91", gotMessage)
	assert.Equal(t, mbOK, gotStyle&0xF)
	assert.NotZero(t, gotStyle&mbIconInfo)
	assert.Zero(t, gotStyle&mbIconError)
}
