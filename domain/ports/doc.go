// Package ports defines interfaces for the external capabilities the
// validation engine delegates to. Infrastructure adapters implement them.
package ports
