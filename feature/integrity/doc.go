// Package integrity checks that the launcher configuration can actually be used.
//
// # Checks Provided
//
//   - Executable: the server executable resolves beside the launcher or on PATH.
//   - Ports: no two servers in the start-all batch share a port (warning).
//   - DataPaths: every effective app data path is an existing directory (warning).
//
// Only a missing executable makes a report fail; the other findings are printed
// so the operator can decide.
package integrity
