package webview2

import (
	"fmt"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// ProbeFunc reports the installed runtime version, if any.
type ProbeFunc func() (string, bool)

// validVersion filters the placeholder EdgeUpdate leaves behind after an
// uninstall.
func validVersion(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0.0.0.0"
}

// ValidateMinimum rejects a minimum version that cannot be compared. An
// empty minimum is valid.
func ValidateMinimum(minimum string) error {
	_, err := parseMinimum(minimum)
	return err
}

func parseMinimum(minimum string) (*goversion.Version, error) {
	minimum = strings.TrimSpace(minimum)
	if minimum == "" {
		return nil, nil
	}
	v, err := goversion.NewVersion(minimum)
	if err != nil {
		return nil, fmt.Errorf("parse minimum version %q: %w", minimum, err)
	}
	return v, nil
}

// MeetsMinimum reports whether installed is at least minimum. An empty
// minimum accepts any version.
func MeetsMinimum(installed, minimum string) (bool, error) {
	want, err := parseMinimum(minimum)
	if err != nil {
		return false, err
	}
	if want == nil {
		return true, nil
	}
	have, err := goversion.NewVersion(strings.TrimSpace(installed))
	if err != nil {
		return false, fmt.Errorf("parse installed version %q: %w", installed, err)
	}
	return have.GreaterThanOrEqual(want), nil
}
