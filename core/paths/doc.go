// Package paths resolves where the launcher keeps its configuration.
//
// # Layout
//
// The configuration file lives at
//
//	<per-user data dir>/<product>/config/<file>
//
// where the per-user data dir is os.UserConfigDir (AppData\Roaming on Windows,
// ~/.config on Linux). When it cannot be determined the launcher falls back to a
// config directory next to its executable.
//
// # Host Policy
//
// A policy file (hoster_policy.txt by default) in the working directory containing
// "gamedir_for_configs: true" moves the root to an AppData directory next to the
// executable. The policy is read once, when Resolve is called at startup.
package paths
