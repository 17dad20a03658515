package main

import (
	"fmt"
	"os"
	"path/filepath"

	"prim/internal/diag"
	"prim/internal/project"
	"prim/internal/rules"

	"github.com/spf13/cobra"
)

// resolveConfig загружает действующую конфигурацию для цели. Явный --config
// имеет приоритет; иначе ищем ближайший prim.toml вверх от цели. Без
// манифеста действуют значения по умолчанию.
func resolveConfig(cmd *cobra.Command, target string) (project.Config, error) {
	configPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return project.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}

	var (
		cfg     project.Config
		unknown []string
	)

	if configPath != "" {
		cfg, unknown, err = project.Load(configPath)
		if err != nil {
			return project.Config{}, fmt.Errorf("%s: %w", diag.ProjInvalidManifest.ID(), err)
		}
	} else {
		startDir := target
		if st, statErr := os.Stat(target); statErr == nil && !st.IsDir() {
			startDir = filepath.Dir(target)
		}
		manifest, found, loadErr := project.LoadManifest(startDir)
		if loadErr != nil {
			return project.Config{}, fmt.Errorf("%s: %w", diag.ProjInvalidManifest.ID(), loadErr)
		}
		if !found {
			return project.Default(), nil
		}
		cfg = manifest.Config
		unknown = manifest.Unknown
	}

	warnConfigIssues(cmd, cfg, unknown)
	return cfg, nil
}

// warnConfigIssues печатает в stderr проигнорированные ключи и неизвестные
// правила. Это не ошибки: манифест терпим к ключам будущих версий.
func warnConfigIssues(cmd *cobra.Command, cfg project.Config, unknown []string) {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil || quiet {
		return
	}
	for _, key := range unknown {
		fmt.Fprintf(os.Stderr, "warning: prim.toml: unknown key %q ignored\n", key)
	}
	for _, name := range cfg.UnknownRules(rules.Default().Names()) {
		fmt.Fprintf(os.Stderr, "warning[%s]: unknown rule %q in [rules].disabled\n", diag.ProjUnknownRule.ID(), name)
	}
}
