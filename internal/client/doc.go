// Package client implements the interactive client application runtime.
//
// It wires the transport adapter, local session storage, client services, and
// the terminal UI into a single process lifecycle.
package client
