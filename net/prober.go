// Package prevetnet provides network-backed implementations of the engine's
// collaborator ports.
package prevetnet

import (
	"log/slog"
	"net"
	"strconv"
	"time"
)

// DefaultProbeTimeout bounds a single connection attempt.
const DefaultProbeTimeout = 5 * time.Second

// DefaultProbePort is probed when the caller did not request a port.
// Echo is a neutral default; most callers pass an explicit port.
const DefaultProbePort = 7

// TCPProber implements ports.Prober with a plain TCP connect. A completed
// handshake counts as reachable; anything else (refused, timeout, no
// route) counts as unreachable.
type TCPProber struct {
	// Timeout bounds each probe. Zero means DefaultProbeTimeout.
	Timeout time.Duration
}

// NewTCPProber creates a prober with the default timeout.
func NewTCPProber() *TCPProber {
	return &TCPProber{Timeout: DefaultProbeTimeout}
}

// Probe implements ports.Prober.
func (p *TCPProber) Probe(address string, port int) bool {
	if port == 0 {
		port = DefaultProbePort
	}
	timeout := p.Timeout
	if timeout == 0 {
		timeout = DefaultProbeTimeout
	}

	target := net.JoinHostPort(address, strconv.Itoa(port))
	conn, err := net.DialTimeout("tcp", target, timeout)
	if err != nil {
		slog.Debug("tcp probe failed", "target", target, "error", err)
		return false
	}
	_ = conn.Close()
	return true
}
