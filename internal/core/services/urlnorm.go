package services

import (
	"net/url"
	"strings"
)

// canonicalSchemes are the schemes NormaliseURL rebuilds.
var canonicalSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
}

// NormaliseURL canonicalises a crawled URL.
// Only scheme, host, port and path are kept; an empty path becomes "/".
// Query strings and fragments are dropped so that pages differing only in
// them map to the same document. Input that cannot be parsed, has no host,
// or uses another scheme is returned trimmed and otherwise unchanged.
func NormaliseURL(raw string) string {
	trimmed := strings.TrimSpace(raw)

	u, err := url.Parse(raw)
	if err != nil {
		return trimmed
	}
	if u.Host == "" || u.Hostname() == "" || !canonicalSchemes[u.Scheme] {
		return trimmed
	}

	path, rawPath := u.Path, u.RawPath
	if path == "" {
		path, rawPath = "/", ""
	}

	canonical := &url.URL{
		Scheme:  u.Scheme,
		Host:    u.Host,
		Path:    path,
		RawPath: rawPath,
	}
	out := strings.TrimSpace(canonical.String())

	// A rebuilt URL that no longer parses is not canonical.
	if _, err := url.Parse(out); err != nil {
		return trimmed
	}
	return out
}
