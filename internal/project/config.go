package project

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the effective prim.toml configuration. The zero value is not
// meaningful; start from Default and overlay a manifest on top of it.
type Config struct {
	Style StyleConfig `toml:"style"`
	Files FilesConfig `toml:"files"`
	Rules RulesConfig `toml:"rules"`
}

// StyleConfig holds the [style] section.
type StyleConfig struct {
	MaxBlankLines       int  `toml:"max_blank_lines"`
	RequireFinalNewline bool `toml:"require_final_newline"`
}

// FilesConfig holds the [files] section.
type FilesConfig struct {
	Extensions []string `toml:"extensions"`
	Exclude    []string `toml:"exclude"`
}

// RulesConfig holds the [rules] section.
type RulesConfig struct {
	Disabled []string `toml:"disabled"`
}

// Default returns the configuration that applies when no prim.toml is found.
func Default() Config {
	return Config{
		Style: StyleConfig{
			MaxBlankLines:       2,
			RequireFinalNewline: true,
		},
		Files: FilesConfig{
			Extensions: []string{".c", ".h", ".cc", ".cpp", ".hpp", ".cs"},
			Exclude:    []string{".git", "build", "vendor"},
		},
	}
}

// Load reads a prim.toml manifest, overlaying it on Default values. Keys the
// schema does not know are tolerated and returned so callers can surface
// them; values the schema cannot accept are errors.
func Load(path string) (Config, []string, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return Config{}, nil, err
	}
	var unknown []string
	for _, key := range meta.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return cfg, unknown, nil
}

func (c Config) validate(path string) error {
	if c.Style.MaxBlankLines < 1 {
		return fmt.Errorf("%s: invalid [style].max_blank_lines %d: must be at least 1", path, c.Style.MaxBlankLines)
	}
	if len(c.Files.Extensions) == 0 {
		return fmt.Errorf("%s: [files].extensions must list at least one extension", path)
	}
	for _, ext := range c.Files.Extensions {
		if len(ext) < 2 || ext[0] != '.' {
			return fmt.Errorf("%s: invalid [files].extensions entry %q: must start with '.'", path, ext)
		}
	}
	for _, name := range c.Files.Exclude {
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%s: invalid [files].exclude entry %q: must be a directory name, not a path", path, name)
		}
	}
	return nil
}

// RuleEnabled reports whether the manifest leaves a rule switched on.
func (c Config) RuleEnabled(name string) bool {
	return !slices.Contains(c.Rules.Disabled, name)
}

// UnknownRules returns [rules].disabled entries that name no known rule, in
// manifest order without duplicates.
func (c Config) UnknownRules(known []string) []string {
	if len(c.Rules.Disabled) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(known))
	for _, name := range known {
		set[name] = struct{}{}
	}
	seen := make(map[string]struct{}, len(c.Rules.Disabled))
	var unknown []string
	for _, name := range c.Rules.Disabled {
		if _, ok := set[name]; ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		unknown = append(unknown, name)
	}
	return unknown
}

// MatchesExtension reports whether path carries one of the configured source
// extensions. Matching is exact, so ".c" does not cover ".C".
func (c Config) MatchesExtension(path string) bool {
	return slices.Contains(c.Files.Extensions, filepath.Ext(path))
}

// ExcludedDir reports whether a directory basename is excluded from walks.
func (c Config) ExcludedDir(name string) bool {
	return slices.Contains(c.Files.Exclude, name)
}
