package testutils

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/Thunder-Compute/wv2setup/internal/webview2"
)

type MockHTTPClient struct {
	DoFunc func(req *http.Request) (*http.Response, error)

	mu       sync.Mutex
	Requests []*http.Request
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()
	if m.DoFunc != nil {
		return m.DoFunc(req)
	}
	return nil, nil
}

// PromptCall records one confirmation shown to the user.
type PromptCall struct {
	Title   string
	Message string
}

type MockPrompter struct {
	ConfirmFunc   func(title, message string) (webview2.Answer, error)
	ShowInfoFunc  func(title, message string)
	ShowErrorFunc func(title, message string)

	Confirms []PromptCall
	Infos    []PromptCall
	Errors   []PromptCall
}

func (m *MockPrompter) Confirm(title, message string) (webview2.Answer, error) {
	m.Confirms = append(m.Confirms, PromptCall{Title: title, Message: message})
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(title, message)
	}
	return webview2.AnswerNo, nil
}

func (m *MockPrompter) ShowInfo(title, message string) {
	m.Infos = append(m.Infos, PromptCall{Title: title, Message: message})
	if m.ShowInfoFunc != nil {
		m.ShowInfoFunc(title, message)
	}
}

func (m *MockPrompter) ShowError(title, message string) {
	m.Errors = append(m.Errors, PromptCall{Title: title, Message: message})
	if m.ShowErrorFunc != nil {
		m.ShowErrorFunc(title, message)
	}
}

// Answers returns a ConfirmFunc replying with answers in order, then no.
func Answers(answers ...webview2.Answer) func(string, string) (webview2.Answer, error) {
	i := 0
	return func(string, string) (webview2.Answer, error) {
		if i >= len(answers) {
			return webview2.AnswerNo, nil
		}
		a := answers[i]
		i++
		return a, nil
	}
}

type MockInstaller struct {
	InstallFunc func(ctx context.Context, elevate bool) error

	// AlreadyElevated makes every attempt run directly, as it does when the
	// process holds administrator rights.
	AlreadyElevated bool

	// Calls holds the elevate flag of every attempt.
	Calls []bool
}

func (m *MockInstaller) Install(ctx context.Context, elevate bool) (bool, error) {
	m.Calls = append(m.Calls, elevate)
	elevated := elevate && !m.AlreadyElevated
	if m.InstallFunc != nil {
		return elevated, m.InstallFunc(ctx, elevate)
	}
	return elevated, nil
}

type MockFetcher struct {
	FetchFunc func(ctx context.Context) (string, error)
	Calls     int
}

func (m *MockFetcher) Fetch(ctx context.Context) (string, error) {
	m.Calls++
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return "", nil
}

type MockLauncher struct {
	RunFunc         func(ctx context.Context, path string, args []string) error
	RunElevatedFunc func(ctx context.Context, path string, args []string, timeout time.Duration) error

	RunCalls      int
	ElevatedCalls int
	LastTimeout   time.Duration
}

func (m *MockLauncher) Run(ctx context.Context, path string, args []string) error {
	m.RunCalls++
	if m.RunFunc != nil {
		return m.RunFunc(ctx, path, args)
	}
	return nil
}

func (m *MockLauncher) RunElevated(ctx context.Context, path string, args []string, timeout time.Duration) error {
	m.ElevatedCalls++
	m.LastTimeout = timeout
	if m.RunElevatedFunc != nil {
		return m.RunElevatedFunc(ctx, path, args, timeout)
	}
	return nil
}
