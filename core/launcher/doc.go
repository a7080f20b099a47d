// Package launcher starts server processes for configured entries.
//
// Each start resolves the entry's effective arguments, builds the command line
//
//	<LocalAdmin[.exe]> <port> <key> [value] ... [-appdatapath <path>]
//
// and spawns it detached: a new console on Windows, a new session on Unix. The
// launcher never waits on, supervises or restarts the children.
//
// # Batches
//
//   - LaunchAll starts every entry with IncludeInLaunchAll, in stored order.
//   - LaunchSelected starts an explicit list.
//   - An empty batch returns ErrNothingToStart and starts nothing.
//
// A spawn failure is recorded in the Report and the batch continues; deciding what
// to tell the operator is up to the caller.
package launcher
