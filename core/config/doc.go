// Package config provides configuration management for the launcher itself.
//
// It utilizes Viper for loading settings from struct-tag defaults, an optional
// launcher.yaml, a .env file and LAUNCHER_* environment variables.
//
// # Configuration Structure
//
//   - Log: logging level and format
//   - Paths: product folder, config file name, host policy file, forced config dir
//   - Launcher: executable override, delay between spawns, new console window
//
// The server definitions are deliberately not part of this package. Launch argument
// keys are case-sensitive and ordered, which Viper's lower-cased keys cannot represent;
// they are stored by core/storage.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Launcher.StartDelayMS)
package config
