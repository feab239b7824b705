package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/calm/pkg/entry"
	"tableflip.dev/calm/pkg/journal"
	"tableflip.dev/calm/pkg/printers"
	"tableflip.dev/calm/pkg/store"
)

// Watcher streams storage change events.
type Watcher interface {
	Watch(ctx context.Context) (<-chan store.Event, error)
}

// Log prints committed journal entries.
type Log struct {
	Storage journal.Storage
	Key     string
	// Limit keeps only the newest entries; zero prints all.
	Limit int
	// Month prints a calendar of the days with entries for On's month.
	Month bool
	On    time.Time
	JSON  bool
	// Follow keeps running and prints entries as they are committed. It
	// needs Watcher.
	Follow  bool
	Watcher Watcher

	Out io.Writer
}

func (n *Log) Do(ctx context.Context) error {
	if n.Storage == nil {
		return errors.New("can not get, no persistence")
	}
	if n.Key == "" {
		n.Key = journal.DefaultEntriesKey
	}
	if n.Out == nil {
		n.Out = color.Output
	}
	if n.On.IsZero() {
		n.On = time.Now()
	}
	pp := printers.PrettyPrint{Out: n.Out}

	entries, err := journal.ReadEntries(n.Storage, n.Key)
	if err != nil {
		return err
	}

	switch {
	case n.JSON:
		if err := n.printJSON(tail(entries, n.Limit)); err != nil {
			return err
		}
	case n.Month:
		pp.Title(n.On.Format("January 2006"))
		pp.Month(n.On, entries...)
	default:
		pp.TitleWithCount("Journal", len(entries))
		pp.Entries(tail(entries, n.Limit)...)
	}

	if !n.Follow {
		return nil
	}
	if n.Watcher == nil {
		return errors.New("follow needs the diskv storage backend")
	}
	return n.follow(ctx, &pp, len(entries))
}

func (n *Log) follow(ctx context.Context, pp *printers.PrettyPrint, seen int) error {
	events, err := n.Watcher.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !ev.Invalidated && ev.Key != n.Key {
				continue
			}
			entries, err := journal.ReadEntries(n.Storage, n.Key)
			if err != nil {
				_, _ = fmt.Fprintf(color.Error, "warning: %v\n", err)
				continue
			}
			if len(entries) < seen {
				// The log was replaced; start over.
				seen = 0
			}
			fresh := entries[seen:]
			seen = len(entries)
			if len(fresh) == 0 {
				continue
			}
			if n.JSON {
				if err := n.printJSON(fresh); err != nil {
					return err
				}
				continue
			}
			pp.Entries(fresh...)
		}
	}
}

func (n *Log) printJSON(entries []entry.Entry) error {
	enc := json.NewEncoder(n.Out)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}

func tail(entries []entry.Entry, limit int) []entry.Entry {
	if limit <= 0 || limit >= len(entries) {
		return entries
	}
	return entries[len(entries)-limit:]
}
