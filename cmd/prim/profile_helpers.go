package main

import (
	"fmt"
	"os"

	"prim/internal/prof"

	"github.com/spf13/cobra"
)

// setupProfiling включает профилирование по глобальным флагам и возвращает
// функцию завершения. Повторный вызов cleanup безопасен.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	cpuProfile, err := cmd.Root().PersistentFlags().GetString("cpu-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	memProfile, err := cmd.Root().PersistentFlags().GetString("mem-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}

	if cpuProfile != "" {
		if err := prof.StartCPU(cpuProfile); err != nil {
			return nil, fmt.Errorf("failed to start cpu profile: %w", err)
		}
	}

	cleaned := false
	cleanup := func() {
		if cleaned {
			return
		}
		cleaned = true
		if cpuProfile != "" {
			prof.StopCPU()
		}
		if memProfile != "" {
			if err := prof.WriteMem(memProfile); err != nil {
				fmt.Fprintf(os.Stderr, "failed to write memory profile: %v\n", err)
			}
		}
	}
	return cleanup, nil
}
