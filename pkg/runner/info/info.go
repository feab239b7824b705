package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/calm/pkg/config"
	"tableflip.dev/calm/pkg/journal"
	"tableflip.dev/calm/pkg/narration"
)

// Info reports where calm keeps its data and what it found there.
type Info struct {
	Config   *config.Config
	Storage  journal.Storage
	Narrator narration.Narrator
	Out      io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	if n.Out == nil {
		n.Out = color.Output
	}
	w := n.Out

	if override := os.Getenv("CALM_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(w, "CALM_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(w, "CALM_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = config.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(w, "Config.path: ", n.Config.BasePath())
	_, _ = fmt.Fprintln(w, "Config.storage: ", n.Config.Storage)
	_, _ = fmt.Fprintln(w, "Config.log.file: ", n.Config.Log.File)

	if n.Storage == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	entries, err := journal.ReadEntries(n.Storage, journal.DefaultEntriesKey)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "Journal entries: %d\n", len(entries))

	_, hasDraft, err := n.Storage.Get(journal.DefaultDraftKey)
	if err != nil {
		return err
	}
	if hasDraft {
		_, _ = fmt.Fprintln(w, "Draft: saved draft waiting in the editor")
	} else {
		_, _ = fmt.Fprintln(w, "Draft: none")
	}

	switch v := n.Narrator.(type) {
	case *narration.Command:
		_, _ = fmt.Fprintln(w, "Narration: ", v.Path)
	default:
		_, _ = fmt.Fprintln(w, "Narration: unavailable")
	}
	return nil
}
