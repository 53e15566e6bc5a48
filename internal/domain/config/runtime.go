package config

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string
	ConfigPath  string // treb.toml, may not exist yet

	// Execution settings
	Debug          bool
	NonInteractive bool

	// Resolved project configuration (defaults applied)
	Project *ProjectConfig
}
