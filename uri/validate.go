package uri

import (
	"net"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/httpmsg/internal/errorutil"
)

func newInvalidURIErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidURI, args...) //errtrace:skip
}

// Validate checks the URI syntax according to RFC 3986:
//   - scheme must start with a letter followed by letters, digits, "+", "-" or ".";
//   - host must be an IP literal or a domain name;
//   - path must begin with "/" or be empty when the host is present;
//   - path must not begin with "//" when the host is absent.
//
// Filters applied by [New] and With* methods do not perform these checks.
// All violations are reported at once, each of them wraps [ErrInvalidURI].
func (u URI) Validate() error {
	var errs []error
	if u.scheme != "" && !isScheme(u.scheme) {
		errs = append(errs, newInvalidURIErr("malformed scheme %q", u.scheme))
	}
	if u.host != "" && !isHost(u.host) {
		errs = append(errs, newInvalidURIErr("malformed host %q", u.host))
	}
	if u.host == "" && (u.user != "" || u.password != "" || u.hasPort) {
		errs = append(errs, newInvalidURIErr("user info or port without host"))
	}
	if u.host != "" && u.path != "" && u.path[0] != '/' {
		errs = append(errs, newInvalidURIErr("path %q must be absolute or empty when host is present", u.path))
	}
	if u.host == "" && strings.HasPrefix(u.path, "//") {
		errs = append(errs, newInvalidURIErr("path %q must not begin with \"//\" when host is absent", u.path))
	}
	return errtrace.Wrap(errorutil.JoinPrefix("URI validation failed:", errs...))
}

// IsValid reports whether [URI.Validate] passes.
func (u URI) IsValid() bool { return u.Validate() == nil }

func isScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

func isHost(s string) bool {
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		ip := net.ParseIP(s[1 : len(s)-1])
		return ip != nil && ip.To4() == nil
	}
	if net.ParseIP(s) != nil {
		return true
	}
	if strings.ContainsAny(s, " \t/?#@[]") {
		return false
	}
	_, ok := dns.IsDomainName(s)
	return ok
}
