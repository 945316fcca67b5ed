// Package netgraph implements the Netlist Graph (§4.2): it consolidates
// every (component, port, net) connection into a canonical net-name set
// and derives a stable net->index map, assigning the ground net (if
// present) index 0 and sorting the remainder lexicographically.
//
// Graph is a derived, immutable-after-build view over a core.CircuitModel;
// it never mutates the model and is safe to share by reference across
// sweep workers once built.
package netgraph
