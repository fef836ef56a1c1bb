//go:build windows

package webview2

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/windows/registry"
)

type clientKey struct {
	root registry.Key
	path string
}

// https://learn.microsoft.com/en-us/microsoft-edge/webview2/concepts/distribution#detect-if-a-webview2-runtime-is-already-installed
var clientKeys = []clientKey{
	{registry.LOCAL_MACHINE, `SOFTWARE\WOW6432Node\Microsoft\EdgeUpdate\Clients\` + clientGUID},
	{registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\EdgeUpdate\Clients\` + clientGUID},
	{registry.CURRENT_USER, `Software\Microsoft\EdgeUpdate\Clients\` + clientGUID},
}

// InstalledVersion reads the runtime version registered with EdgeUpdate.
func InstalledVersion() (string, bool) {
	for _, ck := range clientKeys {
		if v, ok := readClientVersion(ck); ok {
			return v, true
		}
	}
	return "", false
}

func readClientVersion(ck clientKey) (string, bool) {
	k, err := registry.OpenKey(ck.root, ck.path, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer k.Close()

	v, _, err := k.GetStringValue("pv")
	if err != nil {
		log.Debugf("read pv under %s: %v", ck.path, err)
		return "", false
	}
	if !validVersion(v) {
		return "", false
	}
	return strings.TrimSpace(v), true
}
