package launcher

// Config holds configuration for starting server processes.
type Config struct {
	// Executable overrides the platform default server executable name or path.
	Executable string `mapstructure:"executable" default:""`
	// StartDelayMS is the pause before each spawn, in milliseconds.
	StartDelayMS int `mapstructure:"start_delay_ms" default:"500"`
	// NewWindow opens a separate console for each server where the platform supports it.
	NewWindow bool `mapstructure:"new_window" default:"true"`
}
