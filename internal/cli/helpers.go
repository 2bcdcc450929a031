package cli

import (
	"fmt"
	"time"

	"obsidian-logging/internal/config"
	"obsidian-logging/internal/files"
	"obsidian-logging/internal/journal"
)

// now is swapped out in tests to make timestamps deterministic.
var now = time.Now

// resolveDate returns the target day, counting back from today.
func resolveDate(back int) time.Time {
	if back < 0 {
		back = 0
	}
	return now().AddDate(0, 0, -back)
}

// resolveClock parses the --time flag, defaulting to the current wall clock.
func resolveClock(timeFlag string) (journal.Clock, error) {
	if timeFlag == "" {
		t := now()
		return journal.NewClock(t.Hour(), t.Minute(), t.Second())
	}
	clock, err := journal.ParseClock(timeFlag)
	if err != nil {
		return journal.Clock{}, fmt.Errorf("parse --time %q: %w", timeFlag, err)
	}
	return clock, nil
}

// openVault validates the configuration and builds the vault accessor.
func openVault(cfg config.Config) (*files.Vault, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return files.NewVault(cfg.Vault, cfg.FilePathFormat)
}

// syncOptions merges the configuration with per-run flag overrides into the
// options the synchronizer consumes. listTypeChanged marks an explicit -T so
// the override wins over the notation detected in the document.
func syncOptions(cfg config.Config, flags *rootFlags, listTypeChanged bool) (journal.Options, error) {
	header, err := cfg.HeaderFor(flags.category)
	if err != nil {
		return journal.Options{}, err
	}

	list := cfg.ListType
	if flags.listType != "" {
		list, err = journal.ParseListType(flags.listType)
		if err != nil {
			return journal.Options{}, err
		}
	}

	format := cfg.TimeFormat
	if flags.timeFormat != "" {
		format, err = journal.ParseTimeFormat(flags.timeFormat)
		if err != nil {
			return journal.Options{}, err
		}
	}

	return journal.Options{
		Header: header,
		List:   list,
		Forced: listTypeChanged,
		Format: format,
		Labels: cfg.Labels(),
	}, nil
}
