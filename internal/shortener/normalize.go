package shortener

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"path"
	"sort"
	"strings"
)

var (
	// ErrUnsupportedScheme is returned for URLs that are not http or https.
	ErrUnsupportedScheme = errors.New("only http and https URLs can be shortened")
	// ErrMissingHost is returned for URLs without a host.
	ErrMissingHost = errors.New("URL has no host")
)

// NormalizeURL returns a canonical representation of an http(s) URL so the
// same target is always stored the same way:
//   - Lower-case the scheme and host
//   - Ensure path is present; empty path becomes "/"
//   - Clean the path (resolve dot-segments, collapse duplicate slashes)
//   - Remove a trailing slash (except for the root path "/")
//   - Drop default ports (http:80, https:443), keep non-default ports
//   - Sort query parameters by key and by value for stable ordering
//
// The fragment is kept since the redirect must land on it. URLs that cannot
// be parsed, use another scheme or have no host are rejected.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %w", err)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", ErrUnsupportedScheme
	}
	if u.Host == "" {
		return "", ErrMissingHost
	}

	if u.Path == "" {
		u.Path = "/"
	}
	cleaned := path.Clean(u.Path)
	if !strings.HasPrefix(cleaned, "/") {
		cleaned = "/" + cleaned
	}
	u.Path = cleaned
	u.RawPath = ""

	// path.Clean already drops trailing slashes except for the root
	host := strings.ToLower(u.Host)
	if h, port, err := net.SplitHostPort(host); err == nil {
		if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
			host = h
			if strings.Contains(h, ":") {
				host = "[" + h + "]"
			}
		}
	}
	u.Host = host

	if u.RawQuery != "" {
		q := u.Query()
		for k := range q {
			sort.Strings(q[k])
		}
		// url.Values.Encode() sorts keys lexicographically
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
