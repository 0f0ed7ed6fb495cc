// Package toml loads devon configuration files.
package toml

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/elbaro/devon"
)

// Load reads the configuration at path over devon.DefaultConfig. A missing
// file yields the defaults. Unknown keys and empty commands are rejected.
func Load(path string) (devon.Config, error) {
	cfg := devon.DefaultConfig()

	st, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", devon.ErrInvalidConfig, err)
	}
	if st.IsDir() {
		return cfg, fmt.Errorf("%w: %s is a directory", devon.ErrInvalidConfig, path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", devon.ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w: %s: unknown keys: %s", devon.ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values the decoder cannot.
func Validate(cfg devon.Config) error {
	if cfg.TabWidth < 1 {
		return fmt.Errorf("%w: tab_width must be positive, got %d", devon.ErrInvalidConfig, cfg.TabWidth)
	}
	tools := []struct {
		name string
		cfg  devon.ToolConfig
	}{{"pyright", cfg.Pyright}, {"flake8", cfg.Flake8}}
	for _, tool := range tools {
		if !tool.cfg.Disabled && strings.TrimSpace(tool.cfg.Command) == "" {
			return fmt.Errorf("%w: %s.command is empty", devon.ErrInvalidConfig, tool.name)
		}
	}
	return nil
}
