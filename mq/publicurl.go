package mq

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Config cache so we don't keep re-reading env vars
var (
	publicBaseURL     string
	publicStripPrefix string
)

func init() {
	publicBaseURL = strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/")
	if publicBaseURL == "" {
		publicBaseURL = "http://localhost:8080"
	}
	publicStripPrefix = filepath.ToSlash(strings.TrimRight(os.Getenv("PUBLIC_STRIP_PREFIX"), "/"))
}

// ToPublicURL converts a local upload path into an accessible HTTP URL.
func ToPublicURL(p string) string {
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	p = filepath.ToSlash(p)

	if publicStripPrefix != "" {
		p = strings.TrimPrefix(p, publicStripPrefix)
	}

	// path.Clean, not filepath.Clean, to keep the URL separator
	return publicBaseURL + path.Clean("/"+p)
}
