// Package uri provides an immutable URI value used by HTTP messages.
//
// # Overview
//
// [URI] holds the generic RFC 3986 components: scheme, user info, host, port,
// path, query and fragment. A URI is a plain value: it has no exported fields
// and none of its methods mutate the receiver. Modified copies are produced by
// the With* methods, which run the new component through the same filter that
// [New] uses and return a fresh value:
//
//	u, err := uri.New(uri.Components{
//	    Scheme: "https",
//	    Host:   "example.com",
//	    Path:   "/index.html",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	u2, err := u.WithPort(8443)
//	// u is unchanged, u2 renders as "https://example.com:8443/index.html"
//
// # Ports
//
// The port is optional. [URI.Port] reports no port when it was not set or when it
// equals the well-known default port of the scheme (see [DefaultPort]), so
// "https://example.com:443" and "https://example.com" have the same authority.
// [URI.WithPort] accepts ports in range 1-65535 and fails with [ErrInvalidArgument]
// otherwise; use [URI.WithoutPort] to drop the port.
//
// # Rendering
//
// [URI.String] reconstructs the canonical form:
//
//	[scheme ":"] ["//" authority] path ["?" query] ["#" fragment]
//
// Every optional part is emitted only when it is non-empty.
// The authority is "[userinfo "@"] host [":" port]" and is empty when the host is empty.
//
// # Filters
//
// Components pass through named filters on construction and in the With* methods.
// Except for the port filter they currently keep the input verbatim: no
// percent-encoding and no case normalization are applied. Use [URI.Validate] to check
// the URI syntax explicitly.
//
// # Thread Safety
//
// URI values are immutable and can be shared between goroutines without synchronization.
package uri
