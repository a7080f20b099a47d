// Package servers implements the editing operations on the launcher configuration.
//
// The Service owns the single loaded Configuration. Every operation locks it,
// mutates it and saves the whole document before returning, so the file on disk
// always matches what the operator last saw.
//
// # Targets
//
// Settings operations take an optional *server.Entry: nil edits the global
// settings, an entry edits that server's overrides. Entries are matched by
// identity; an entry that is no longer part of the configuration yields
// server.ErrServerNotFound.
//
// # Operations
//
//   - Servers: AddServer, DeleteServer, RenameServer, SetPort, ToggleLaunchAll
//   - Settings: SetDataPath, AddArg, SetArg, SetArgValue, RenameArg, DeleteArg
//   - Queries: Servers, Lookup, Resolve, ResolveOwn
package servers
