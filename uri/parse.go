package uri

import (
	"net/url"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpmsg/internal/errorutil"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

// Parse parses a URI reference from the given input s (string or []byte).
//
// Components are kept in their escaped form, so the canonical form of the result
// reproduces the input authority. User info is re-escaped by [url.Userinfo],
// so "@", ":", "/" and "?" inside user or password stay percent-encoded. An empty port ("host:") is dropped.
func Parse[T ~string | ~[]byte](s T) (URI, error) {
	if len(s) == 0 {
		return URI{}, errtrace.Wrap(ErrEmptyInput)
	}

	pu, err := url.Parse(string(s))
	if err != nil {
		return URI{}, errtrace.Wrap(newMalformedInputErr(err))
	}

	c := Components{
		Scheme:   pu.Scheme,
		Query:    pu.RawQuery,
		Fragment: pu.EscapedFragment(),
	}
	if pu.Opaque != "" {
		c.Path = pu.Opaque
	} else {
		c.Path = pu.EscapedPath()
	}

	c.Host = strings.TrimSuffix(pu.Host, ":")
	if ps := pu.Port(); ps != "" {
		c.Host = strings.TrimSuffix(c.Host, ":"+ps)
		port, err := strconv.Atoi(ps)
		if err != nil || port < minPort || port > maxPort {
			return URI{}, errtrace.Wrap(newMalformedInputErr("invalid port %q", ps))
		}
		c.Port = port
	}

	if pu.User != nil {
		c.User, c.Password, _ = strings.Cut(pu.User.String(), ":")
	}

	u, err := New(c)
	if err != nil {
		return URI{}, errtrace.Wrap(newMalformedInputErr(err))
	}
	return u, nil
}
