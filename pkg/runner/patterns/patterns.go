// Package patterns lists the exercise catalog.
package patterns

import (
	"context"
	"encoding/json"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/calm/pkg/exercise"
	"tableflip.dev/calm/pkg/printers"
)

type Patterns struct {
	// Name shows the phases of one pattern instead of the catalog.
	Name string
	JSON bool
	Out  io.Writer
}

// PatternJSON is the transport form of a pattern.
type PatternJSON struct {
	Name   string      `json:"name"`
	Title  string      `json:"title"`
	Rhythm string      `json:"rhythm"`
	Phases []PhaseJSON `json:"phases"`
}

type PhaseJSON struct {
	Name        string  `json:"name"`
	Seconds     float64 `json:"seconds"`
	Instruction string  `json:"instruction"`
}

// ToJSON converts a pattern to its transport form.
func ToJSON(p exercise.Pattern) PatternJSON {
	out := PatternJSON{Name: p.Name, Title: p.Title, Rhythm: p.Rhythm()}
	for _, ph := range p.Phases {
		out.Phases = append(out.Phases, PhaseJSON{
			Name:        ph.Name,
			Seconds:     ph.Duration.Seconds(),
			Instruction: ph.Text(),
		})
	}
	return out
}

func (n *Patterns) Do(ctx context.Context) error {
	if n.Out == nil {
		n.Out = color.Output
	}
	list := exercise.Presets()
	if n.Name != "" {
		p, err := exercise.Lookup(n.Name)
		if err != nil {
			return err
		}
		list = []exercise.Pattern{p}
	}

	if n.JSON {
		out := make([]PatternJSON, 0, len(list))
		for _, p := range list {
			out = append(out, ToJSON(p))
		}
		enc := json.NewEncoder(n.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.Name != "" {
		pp.Phases(list[0])
		return nil
	}
	pp.Patterns(list...)
	return nil
}
