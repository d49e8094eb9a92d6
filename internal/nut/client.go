// Package nut fetches variable snapshots from a Network UPS Tools daemon.
package nut

import (
	"fmt"
	"strconv"

	gonut "github.com/robbiet480/go.nut"
)

// Snapshot is one fetched set of UPS variables, keyed by NUT variable
// name. Values are normalized to strings; callers parse as needed.
type Snapshot map[string]string

// VarSource provides the current variable set for a named UPS. Tests
// inject fakes; production code uses Client.
type VarSource interface {
	Vars(ups string) (Snapshot, error)
}

// Client fetches snapshots from a NUT daemon over its TCP query protocol.
// Every call dials a fresh connection, so a single Client is safe for
// concurrent use.
type Client struct {
	host string
	port int
}

// NewClient creates a Client for the daemon at host:port.
func NewClient(host string, port int) *Client {
	return &Client{host: host, port: port}
}

// Vars connects to the daemon, lists all variables for the named UPS and
// returns them as a Snapshot. The connection is closed before returning.
// There is no internal timeout; a slow daemon blocks the caller until the
// underlying network call returns or errors.
func (c *Client) Vars(ups string) (Snapshot, error) {
	conn, err := gonut.Connect(c.host, c.port)
	if err != nil {
		return nil, fmt.Errorf("connect to NUT daemon at %s:%d: %w", c.host, c.port, err)
	}
	defer func() {
		_, _ = conn.Disconnect()
	}()

	dev, err := gonut.NewUPS(ups, &conn)
	if err != nil {
		return nil, fmt.Errorf("open UPS %q: %w", ups, err)
	}

	vars, err := dev.GetVariables()
	if err != nil {
		return nil, fmt.Errorf("list variables for UPS %q: %w", ups, err)
	}

	snap := make(Snapshot, len(vars))
	for _, v := range vars {
		snap[v.Name] = formatValue(v.Value)
	}
	return snap, nil
}

// formatValue renders a go.nut variable value back to its wire string.
// The library parses numeric-looking values into typed Go values; the
// collector wants the flat string form the daemon sent.
func formatValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
