package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"volt/internal/driver"
	"volt/internal/source"
	"volt/internal/ui"
)

type parseDirOutcome struct {
	fs      *source.FileSet
	results []driver.ParseDirResult
	err     error
}

// parseDirWithUI запускает driver.ParseDir в фоне и рисует прогресс через
// Bubble Tea, пока канал событий не закроется.
func parseDirWithUI(cmd *cobra.Command, dir string, cfg driver.Config, jobs int, cache *driver.DiskCache) (*source.FileSet, []driver.ParseDirResult, error) {
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan driver.FileEvent, 256)
	outcomeCh := make(chan parseDirOutcome, 1)

	go func() {
		cfgCopy := cfg
		cfgCopy.Progress = func(ev driver.FileEvent) {
			events <- ev
		}
		fs, results, err := driver.ParseDir(cmd.Context(), dir, cfgCopy, jobs, cache)
		outcomeCh <- parseDirOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("parsing "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
