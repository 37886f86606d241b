package uri

import "github.com/ghettovoice/httpmsg/internal/util"

const (
	HTTPDefaultPort  uint16 = 80
	HTTPSDefaultPort uint16 = 443
)

var defaultPorts = map[string]uint16{
	"http":  HTTPDefaultPort,
	"https": HTTPSDefaultPort,
}

// DefaultPort returns the well-known port of the scheme.
// Scheme is matched case-insensitively.
func DefaultPort(scheme string) (uint16, bool) {
	p, ok := defaultPorts[util.LCase(scheme)]
	return p, ok
}

const (
	minPort = 1
	maxPort = 1<<16 - 1
)
