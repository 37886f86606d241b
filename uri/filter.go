package uri

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/httpmsg/internal/errorutil"
)

// Component filters. Each component of a URI goes through its filter both in [New]
// and in the corresponding With* method.
// Only filterPort rejects input for now, others keep the value as is.

func filterScheme(s string) (string, error) { return s, nil }

func filterHost(s string) (string, error) { return s, nil }

func filterPath(s string) (string, error) { return s, nil }

func filterQuery(s string) (string, error) { return s, nil }

func filterFragment(s string) (string, error) { return s, nil }

func filterUser(s string) (string, error) { return s, nil }

func filterPassword(s string) (string, error) { return s, nil }

func filterPort(p int) (uint16, error) {
	if p < minPort || p > maxPort {
		return 0, errtrace.Wrap(errorutil.NewInvalidArgumentError(
			"port must be an integer between %d and %d, got %d", minPort, maxPort, p,
		))
	}
	return uint16(p), nil
}
