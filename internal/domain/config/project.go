package config

import "strings"

const (
	// ProjectConfigFile is the project configuration file at the project root
	ProjectConfigFile = "treb.toml"
	// DataDirName is the project subdirectory holding tool state
	DataDirName = ".treb"

	DefaultCompiler  = "solc"
	DefaultArtifacts = "artifacts"
)

// ProjectConfig mirrors treb.toml
type ProjectConfig struct {
	Compiler   CompilerConfig   `toml:"compiler"`
	Sources    SourcesConfig    `toml:"sources"`
	Deployment DeploymentConfig `toml:"deployment"`
}

// CompilerConfig selects the compiler and its options
type CompilerConfig struct {
	Cmd     string   `toml:"cmd"`
	Options []string `toml:"options"`
}

// SourcesConfig locates contract sources and compiled artifacts
type SourcesConfig struct {
	Artifacts      string   `toml:"artifacts"`
	SmartContracts []string `toml:"smart_contracts"`
}

// DeploymentConfig holds constructor arguments keyed by contract name
type DeploymentConfig struct {
	Args map[string][]string `toml:"args"`
}

// DefaultProjectConfig returns the configuration used when treb.toml is absent
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		Compiler: CompilerConfig{Cmd: DefaultCompiler},
		Sources: SourcesConfig{
			Artifacts:      DefaultArtifacts,
			SmartContracts: []string{"contracts/*.sol"},
		},
		Deployment: DeploymentConfig{Args: map[string][]string{}},
	}
}

// ApplyDefaults fills in empty fields from DefaultProjectConfig
func (c *ProjectConfig) ApplyDefaults() {
	def := DefaultProjectConfig()
	if c.Compiler.Cmd == "" {
		c.Compiler.Cmd = def.Compiler.Cmd
	}
	if c.Sources.Artifacts == "" {
		c.Sources.Artifacts = def.Sources.Artifacts
	}
	if len(c.Sources.SmartContracts) == 0 {
		c.Sources.SmartContracts = def.Sources.SmartContracts
	}
	if c.Deployment.Args == nil {
		c.Deployment.Args = def.Deployment.Args
	}
}

// ConfigKey represents a settable treb.toml key
type ConfigKey string

const (
	ConfigKeyCompilerCmd     ConfigKey = "compiler.cmd"
	ConfigKeyCompilerOptions ConfigKey = "compiler.options"
	ConfigKeyArtifacts       ConfigKey = "sources.artifacts"
	ConfigKeySmartContracts  ConfigKey = "sources.smart_contracts"

	// ConfigKeyDeploymentArgs is a prefix, completed with a contract name
	ConfigKeyDeploymentArgs ConfigKey = "deployment.args"
)

// ValidConfigKeys returns all fixed configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeyCompilerCmd,
		ConfigKeyCompilerOptions,
		ConfigKeyArtifacts,
		ConfigKeySmartContracts,
		ConfigKeyDeploymentArgs,
	}
}

// IsValidConfigKey checks if a key is valid
func IsValidConfigKey(key string) bool {
	if strings.HasPrefix(key, string(ConfigKeyDeploymentArgs)+".") {
		return len(key) > len(ConfigKeyDeploymentArgs)+1
	}
	for _, validKey := range ValidConfigKeys() {
		if string(validKey) == key && validKey != ConfigKeyDeploymentArgs {
			return true
		}
	}
	return false
}

// IsListKey reports whether the key holds an array of strings
func IsListKey(key string) bool {
	return key == string(ConfigKeyCompilerOptions) ||
		key == string(ConfigKeySmartContracts) ||
		strings.HasPrefix(key, string(ConfigKeyDeploymentArgs)+".")
}
