// Package resolver computes the effective launch arguments and data path of a server
// by merging the global settings with the server's own overrides.
//
// # Ordering
//
// The merged argument list is deterministic: global keys keep their stored order,
// overridden keys keep the global position with the entry's value, and entry-only
// keys follow in the entry's order. An empty merge flattens to "".
//
// # Data path
//
// The entry's data path wins whenever it is set. The global path is only consulted
// when the entry has none and global settings are included. Paths are returned in
// absolute form; nil means the launched process gets no data path override.
package resolver
