package shortener_test

import (
	"homoglyph/internal/shortener"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
		ok   bool
	}{
		{
			name: "lowercase scheme and host; add root path",
			in:   "HTTP://Example.COM",
			out:  "http://example.com/",
			ok:   true,
		},
		{
			name: "surrounding spaces are ignored",
			in:   "  https://example.com/a  ",
			out:  "https://example.com/a",
			ok:   true,
		},
		{
			name: "remove default http port",
			in:   "http://example.com:80/path",
			out:  "http://example.com/path",
			ok:   true,
		},
		{
			name: "remove default https port",
			in:   "https://example.com:443/",
			out:  "https://example.com/",
			ok:   true,
		},
		{
			name: "keep non-default port",
			in:   "http://example.com:8080/",
			out:  "http://example.com:8080/",
			ok:   true,
		},
		{
			name: "clean path and drop trailing slash",
			in:   "http://example.com//a/./b/../c/",
			out:  "http://example.com/a/c",
			ok:   true,
		},
		{
			name: "sort query keys and values",
			in:   "http://EXAMPLE.com/path?b=2&a=2&a=1",
			out:  "http://example.com/path?a=1&a=2&b=2",
			ok:   true,
		},
		{
			name: "keep fragment",
			in:   "https://example.com/path?x=1#Section-2",
			out:  "https://example.com/path?x=1#Section-2",
			ok:   true,
		},
		{
			name: "ipv6 host with port (non-default kept)",
			in:   "http://[2001:db8::1]:8080/a",
			out:  "http://[2001:db8::1]:8080/a",
			ok:   true,
		},
		{
			name: "ipv6 host with default port",
			in:   "https://[2001:db8::1]:443/a",
			out:  "https://[2001:db8::1]/a",
			ok:   true,
		},
		{
			name: "already normalized",
			in:   "https://example.com/foo?bar=1&baz=2",
			out:  "https://example.com/foo?bar=1&baz=2",
			ok:   true,
		},
		{
			name: "invalid url returns error",
			in:   "http://exa mple.com",
			ok:   false,
		},
		{
			name: "unsupported scheme",
			in:   "javascript:alert(1)",
			ok:   false,
		},
		{
			name: "ftp is rejected",
			in:   "ftp://example.com/file",
			ok:   false,
		},
		{
			name: "relative url is rejected",
			in:   "example.com/path",
			ok:   false,
		},
		{
			name: "missing host",
			in:   "https:///path",
			ok:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := shortener.NormalizeURL(tc.in)
			if !tc.ok {
				require.Error(t, err, "result %q", got)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.out, got)
		})
	}
}
