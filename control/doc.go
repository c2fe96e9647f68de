// Package control
// Author: momentics <momentics@gmail.com>
//
// Debug introspection layer for hioload-ring.
//
// Provides concurrent-safe state handling primitives including:
//   - Probe registration and state export
//   - Ring snapshot probes
//   - Timestamped metrics collection from probes
package control
