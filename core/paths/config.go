package paths

// Config holds configuration for locating the launcher's files.
type Config struct {
	// Product is the subfolder of the per-user data directory that holds the config.
	Product string `mapstructure:"product" default:"SCP Secret Laboratory"`
	// File is the configuration file name.
	File string `mapstructure:"file" default:"config_serverlauncher.json"`
	// PolicyFile is the host policy file looked up in the working directory.
	PolicyFile string `mapstructure:"policy_file" default:"hoster_policy.txt"`
	// ConfigDir forces the configuration directory, bypassing all resolution when set.
	ConfigDir string `mapstructure:"config_dir" default:""`
}
