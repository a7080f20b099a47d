// Package server holds the launcher's configuration model.
//
// # Model
//
//   - Settings: ordered launch arguments plus an optional data path override.
//     Blank data paths are never stored; assigning one unsets the override.
//   - Entry: a named server with a port, its own Settings and a flag for the
//     start-all batch.
//   - Configuration: the persisted root, owning the ordered entries and the
//     global Settings.
//
// # Identity
//
// Entries are referenced by pointer. Names and ports may repeat, so deletion
// and editing always act on a specific *Entry rather than on matching values.
//
// # Usage
//
//	cfg := server.NewConfiguration()
//	e := server.NewEntry()
//	e.Settings.LaunchArgs.Set("-maxPlayers", "20")
//	cfg.AddServer(e)
//	cfg.SettingsFor(nil).SetDataPath("/srv/data")
package server
