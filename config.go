package devon

// Config holds the settings read from the optional configuration file.
type Config struct {
	LogLevel string     `toml:"log_level"`
	TabWidth int        `toml:"tab_width"`
	Syntax   bool       `toml:"syntax"` // highlight excerpt lines
	Pyright  ToolConfig `toml:"pyright"`
	Flake8   ToolConfig `toml:"flake8"`
}

// ToolConfig controls how one analyzer is invoked.
type ToolConfig struct {
	Disabled bool     `toml:"disabled"`
	Command  string   `toml:"command"`
	Args     []string `toml:"args"`
}

// DefaultConfig returns the settings used when no configuration file exists.
func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
		TabWidth: 4,
		Syntax:   true,
		Pyright: ToolConfig{
			Command: "pyright",
			Args:    []string{"--outputjson", "."},
		},
		Flake8: ToolConfig{
			Command: "flake8",
			Args:    []string{"."},
		},
	}
}
