// Package storage persists the launcher configuration.
//
// The whole Configuration is re-serialized on every save; there is no incremental
// update. Writes go to a temporary file in the target directory which is then renamed
// over the previous file, so an interrupted save leaves the old document intact.
//
// # Store Interface
//
// The Store interface abstracts the file so that the editing service and the menu can
// be tested against the mock in core/storage/mocks.
//
// # Errors
//
//   - A missing file is not an error: Load creates, saves and returns a default configuration.
//   - A file that cannot be parsed yields ErrDecode. Callers must not fall back to defaults.
//
// # Usage
//
//	store := storage.NewFileStore(layout.ConfigFile, logg)
//	cfg, err := store.Load()
//	cfg.AddServer(server.NewEntry())
//	err = store.Save(cfg)
package storage
