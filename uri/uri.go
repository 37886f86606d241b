package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpmsg/internal/ioutil"
	"github.com/ghettovoice/httpmsg/internal/types"
	"github.com/ghettovoice/httpmsg/internal/util"
	"github.com/ghettovoice/httpmsg/log"
)

// RenderOptions contains options for rendering URIs.
type RenderOptions = types.RenderOptions

// DefaultPath is the path used by [NewComponents].
const DefaultPath = "/"

// Components is the set of URI components passed to [New].
type Components struct {
	Scheme string
	Host   string
	// Port is the port number, zero means no port.
	Port     int
	Path     string
	Query    string // without leading "?"
	Fragment string // without leading "#"
	User     string
	Password string
}

// NewComponents returns components with the scheme, host and [DefaultPath].
func NewComponents(scheme, host string) Components {
	return Components{
		Scheme: scheme,
		Host:   host,
		Path:   DefaultPath,
	}
}

// URI is an immutable URI value.
// The zero value is an empty URI that renders as "".
type URI struct {
	scheme   string
	host     string
	port     uint16
	hasPort  bool
	path     string
	query    string
	fragment string
	user     string
	password string
}

// New builds a URI from the components.
// Every component goes through its filter, the first filter error is returned.
// A port out of range 1-65535 fails with [ErrInvalidArgument].
func New(c Components) (URI, error) {
	var (
		u   URI
		err error
	)
	if u.scheme, err = filterScheme(c.Scheme); err != nil {
		return URI{}, errtrace.Wrap(err)
	}
	if u.host, err = filterHost(c.Host); err != nil {
		return URI{}, errtrace.Wrap(err)
	}
	if c.Port != 0 {
		if u.port, err = filterPort(c.Port); err != nil {
			return URI{}, errtrace.Wrap(err)
		}
		u.hasPort = true
	}
	if u.path, err = filterPath(c.Path); err != nil {
		return URI{}, errtrace.Wrap(err)
	}
	if u.query, err = filterQuery(c.Query); err != nil {
		return URI{}, errtrace.Wrap(err)
	}
	if u.fragment, err = filterFragment(c.Fragment); err != nil {
		return URI{}, errtrace.Wrap(err)
	}
	if u.user, err = filterUser(c.User); err != nil {
		return URI{}, errtrace.Wrap(err)
	}
	if u.password, err = filterPassword(c.Password); err != nil {
		return URI{}, errtrace.Wrap(err)
	}
	return u, nil
}

// MustNew is like [New] but panics on error.
func MustNew(c Components) URI { return util.Must2(New(c)) }

// Components returns the stored components.
// The port is returned as stored, even when it is the scheme default.
func (u URI) Components() Components {
	c := Components{
		Scheme:   u.scheme,
		Host:     u.host,
		Path:     u.path,
		Query:    u.query,
		Fragment: u.fragment,
		User:     u.user,
		Password: u.password,
	}
	if u.hasPort {
		c.Port = int(u.port)
	}
	return c
}

func (u URI) Scheme() string { return u.scheme }

func (u URI) Host() string { return u.host }

func (u URI) Path() string { return u.path }

// Query returns the query without leading "?".
func (u URI) Query() string { return u.query }

// Fragment returns the fragment without leading "#".
func (u URI) Fragment() string { return u.fragment }

func (u URI) User() string { return u.user }

func (u URI) Password() string { return u.password }

// UserInfo returns "user" or "user:password" when the password is not empty.
func (u URI) UserInfo() string {
	if u.password == "" {
		return u.user
	}
	return u.user + ":" + u.password
}

// Port returns the port and true, unless the port is not set or
// it equals the default port of the scheme.
func (u URI) Port() (uint16, bool) {
	if !u.hasPort {
		return 0, false
	}
	if def, ok := DefaultPort(u.scheme); ok && def == u.port {
		return 0, false
	}
	return u.port, true
}

// Authority returns "[userinfo@]host[:port]" or empty string if the host is empty.
func (u URI) Authority() string { return u.RenderAuthority(nil) }

// RenderAuthority is like [URI.Authority] but respects the render options.
func (u URI) RenderAuthority(opts *RenderOptions) string {
	if u.host == "" {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.renderAuthority(sb, opts) //nolint:errcheck
	return sb.String()
}

func (u URI) WithScheme(scheme string) (URI, error) {
	v, err := filterScheme(scheme)
	if err != nil {
		return u, errtrace.Wrap(err)
	}
	u.scheme = v
	return u, nil
}

func (u URI) WithHost(host string) (URI, error) {
	v, err := filterHost(host)
	if err != nil {
		return u, errtrace.Wrap(err)
	}
	u.host = v
	return u, nil
}

// WithPort returns a copy of the URI with the port replaced.
// The port must be in range 1-65535, otherwise [ErrInvalidArgument] is returned
// along with the unchanged URI.
func (u URI) WithPort(port int) (URI, error) {
	v, err := filterPort(port)
	if err != nil {
		return u, errtrace.Wrap(err)
	}
	u.port, u.hasPort = v, true
	return u, nil
}

// WithoutPort returns a copy of the URI without port.
func (u URI) WithoutPort() URI {
	u.port, u.hasPort = 0, false
	return u
}

func (u URI) WithPath(path string) (URI, error) {
	v, err := filterPath(path)
	if err != nil {
		return u, errtrace.Wrap(err)
	}
	u.path = v
	return u, nil
}

func (u URI) WithQuery(query string) (URI, error) {
	v, err := filterQuery(query)
	if err != nil {
		return u, errtrace.Wrap(err)
	}
	u.query = v
	return u, nil
}

func (u URI) WithFragment(fragment string) (URI, error) {
	v, err := filterFragment(fragment)
	if err != nil {
		return u, errtrace.Wrap(err)
	}
	u.fragment = v
	return u, nil
}

// WithUserInfo returns a copy of the URI with user and password replaced.
// Password is optional and defaults to empty string, only the first one is used.
func (u URI) WithUserInfo(user string, password ...string) (URI, error) {
	var pwd string
	if len(password) > 0 {
		pwd = password[0]
	}

	usr, err := filterUser(user)
	if err != nil {
		return u, errtrace.Wrap(err)
	}
	if pwd, err = filterPassword(pwd); err != nil {
		return u, errtrace.Wrap(err)
	}
	u.user, u.password = usr, pwd
	return u, nil
}

// IsZero reports whether all components are empty.
func (u URI) IsZero() bool { return u == URI{} }

// RenderTo writes the canonical form of the URI to the writer.
func (u URI) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if u.scheme != "" {
		cw.WriteStrings(u.scheme, ":")
	}
	if u.host != "" {
		cw.WriteStrings("//")
		cw.Call(func(w io.Writer) (int, error) { return u.renderAuthority(w, opts) })
	}
	cw.WriteStrings(u.path)
	if u.query != "" {
		cw.WriteStrings("?", u.query)
	}
	if u.fragment != "" {
		cw.WriteStrings("#", u.fragment)
	}
	return errtrace.Wrap2(cw.Result())
}

const redactedPassword = "xxxxx"

func (u URI) renderAuthority(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if u.user != "" || u.password != "" {
		pwd := u.password
		if pwd != "" && opts != nil && opts.RedactPassword {
			pwd = redactedPassword
		}
		cw.WriteStrings(u.user)
		if pwd != "" {
			cw.WriteStrings(":", pwd)
		}
		cw.WriteStrings("@")
	}
	cw.WriteStrings(u.host)
	if p, ok := u.Port(); ok {
		cw.WriteStrings(":", strconv.FormatUint(uint64(p), 10))
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the canonical form of the URI.
func (u URI) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the canonical form of the URI.
func (u URI) String() string { return u.Render(nil) }

// Format implements [fmt.Formatter] for custom formatting of the URI.
//
//   - %s and %v render the canonical form, with '+' flag the password is hidden;
//   - %q renders the quoted canonical form;
//   - %#v and other verbs print the [Components].
func (u URI) Format(f fmt.State, verb rune) {
	switch {
	case verb == 's' || verb == 'v' && !f.Flag('#'):
		var opts *RenderOptions
		if f.Flag('+') {
			opts = &RenderOptions{RedactPassword: true}
		}
		u.RenderTo(f, opts) //nolint:errcheck
	case verb == 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), u.Components())
	}
}

// LogValue implements [slog.LogValuer], the password is redacted.
func (u URI) LogValue() slog.Value {
	return log.StringValue(u.Render(&RenderOptions{RedactPassword: true})).LogValue()
}

// Equal compares this URI with another for equality.
// Ports are compared as reported by [URI.Port], so an explicit default port
// equals an absent one.
func (u URI) Equal(val any) bool {
	var other URI
	switch v := val.(type) {
	case URI:
		other = v
	case *URI:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	p1, ok1 := u.Port()
	p2, ok2 := other.Port()
	return u.scheme == other.scheme &&
		u.host == other.host &&
		p1 == p2 && ok1 == ok2 &&
		u.path == other.path &&
		u.query == other.query &&
		u.fragment == other.fragment &&
		u.user == other.user &&
		u.password == other.password
}

// MarshalText implements [encoding.TextMarshaler].
func (u URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*u = URI{}
		return nil
	}
	u1, err := Parse(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = u1
	return nil
}

var (
	_ types.Renderer    = URI{}
	_ types.Equalable   = URI{}
	_ types.ValidFlag   = URI{}
	_ types.Validatable = URI{}
	_ slog.LogValuer    = URI{}
)
