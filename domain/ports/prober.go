package ports

// Prober defines the interface for reachability probes. The engine treats
// any non-true result as unreachable and does not retry.
type Prober interface {
	// Probe reports whether the address answers. A port of 0 means no port
	// was requested; implementations choose a sensible default transport.
	// Implementations own their timeout policy.
	Probe(address string, port int) bool
}

// ProberFunc adapts a plain function to the Prober interface.
type ProberFunc func(address string, port int) bool

// Probe implements Prober.
func (f ProberFunc) Probe(address string, port int) bool {
	return f(address, port)
}
