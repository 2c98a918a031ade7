// Package proxy parses the constrained proxy endpoint grammar used in
// configuration values:
//
//	"http://host.at.some.domain:80/"
//	"http://host.at.some.domain/"
//	"host.at.some.domain:8080"
//	"host.at.some.domain"
//	""
//
// The scheme prefix is optional and case-insensitive, the port
// defaults to 80, and an empty value disables the proxy. The grammar
// is narrower than a URL; net/url accepts inputs this must reject.
package proxy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultPort is used when the value carries no explicit port.
const DefaultPort = 80

var (
	ErrEmptyHost = errors.New("proxy host is empty")
	ErrBadPort   = errors.New("invalid proxy port")
	ErrTrailing  = errors.New("unexpected characters after proxy endpoint")
)

// Endpoint is an optional proxy target. A zero Host means no proxy.
type Endpoint struct {
	Host string
	Port int
}

// Enabled reports whether a proxy target is configured.
func (e *Endpoint) Enabled() bool { return e.Host != "" }

// Disable clears the endpoint to the "no proxy" state.
func (e *Endpoint) Disable() { e.Host = "" }

// String renders the endpoint for display.
func (e *Endpoint) String() string {
	if !e.Enabled() {
		return "(none)"
	}
	return fmt.Sprintf("%s:%d", e.Host, e.Port)
}

// Set parses value and replaces the endpoint on success; on error the
// endpoint is left unchanged. An empty value is a success meaning
// "disable proxy". A bare separator with no host before it is an
// error: the empty host is only valid when the whole value is empty.
func (e *Endpoint) Set(value string) error {
	rest := value
	port := DefaultPort

	if len(rest) >= 7 && strings.EqualFold(rest[:7], "http://") {
		rest = rest[7:]
	}
	hostLen := strings.IndexAny(rest, ":/")
	if hostLen < 0 {
		hostLen = len(rest)
	}
	if hostLen == 0 {
		if rest != "" {
			return fmt.Errorf("%w: %q", ErrEmptyHost, value)
		}
		e.Disable()
		return nil
	}
	host := rest[:hostLen]
	rest = rest[hostLen:]

	switch {
	case rest == "":
	case rest[0] == ':':
		rest = rest[1:]
		if rest != "" && rest[0] >= '0' && rest[0] <= '9' {
			n := 1
			for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
				n++
			}
			p, err := strconv.Atoi(rest[:n])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrBadPort, rest[:n])
			}
			port = p
			rest = rest[n:]
		}
		// A colon not followed by a digit keeps the default port and
		// falls through to the trailing-content check below, which
		// rejects anything but "" or a single "/". Historical
		// behavior, kept as-is.
		switch rest {
		case "", "/":
		default:
			return fmt.Errorf("%w: %q", ErrTrailing, rest)
		}
	case rest[0] == '/':
		if len(rest) > 1 {
			return fmt.Errorf("%w: %q", ErrTrailing, rest[1:])
		}
	}

	e.Host = host
	e.Port = port
	return nil
}

// Parse is a convenience wrapper over Set starting from a disabled
// endpoint.
func Parse(value string) (Endpoint, error) {
	var e Endpoint
	if err := e.Set(value); err != nil {
		return Endpoint{}, err
	}
	return e, nil
}
