package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"prim/internal/driver"
	"prim/internal/source"
	"prim/internal/ui"
)

type checkOutcome struct {
	fileSet *source.FileSet
	results []driver.CheckDirResult
	err     error
}

// runCheckDirWithUI запускает обход директории в горутине и рисует прогресс
// поверх канала событий. Канал закрывает CheckDir.
func runCheckDirWithUI(ctx context.Context, title, dir string, opts driver.CheckOptions) (*source.FileSet, []driver.CheckDirResult, error) {
	files, err := driver.ListSourceFiles(dir, opts.Config)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		runOpts := opts
		runOpts.Events = events
		fs, results, err := driver.CheckDir(ctx, dir, runOpts)
		outcomeCh <- checkOutcome{fileSet: fs, results: results, err: err}
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()

	// UI мог завершиться раньше обхода (ошибка терминала или ctrl+c):
	// снимаем блокировку отправителей и дожидаемся результата.
	cancel()
	for range events {
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
