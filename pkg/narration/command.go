package narration

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os/exec"
	"path/filepath"
	"strconv"
)

// Command narrates by running a speech program once per utterance.
type Command struct {
	// Program is the base name used to pick the argument style.
	Program string
	Path    string
}

func (c *Command) Available() bool { return c.Path != "" }

func (c *Command) Speak(ctx context.Context, text string, v Voice) error {
	args := c.Args(text, v)
	slog.Debug("narrating", "program", c.Program, "args", args)
	cmd := exec.CommandContext(ctx, c.Path, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("narration: %s: %w: %s", c.Program, err, out)
	}
	return nil
}

// Args builds the command line for text in the program's own units.
func (c *Command) Args(text string, v Voice) []string {
	v = normalize(v)
	var args []string
	switch filepath.Base(c.Program) {
	case "say":
		// words per minute, default around 175
		args = append(args, "-r", itoa(175*v.Rate))
		if v.Name != "" {
			args = append(args, "-v", v.Name)
		}
	case "espeak", "espeak-ng":
		args = append(args,
			"-s", itoa(175*v.Rate),
			"-p", itoa(clamp(50*v.Pitch, 0, 99)),
			"-a", itoa(clamp(100*v.Volume, 0, 200)),
		)
		if v.Name != "" {
			args = append(args, "-v", v.Name)
		}
	case "spd-say":
		// -100..100 around zero
		args = append(args,
			"--wait",
			"-r", itoa(clamp(100*(v.Rate-1), -100, 100)),
			"-p", itoa(clamp(100*(v.Pitch-1), -100, 100)),
			"-i", itoa(clamp(100*(v.Volume-1), -100, 100)),
		)
		if v.Name != "" {
			args = append(args, "-y", v.Name)
		}
	}
	return append(args, text)
}

func normalize(v Voice) Voice {
	if v.Rate <= 0 {
		v.Rate = 1
	}
	if v.Pitch <= 0 {
		v.Pitch = 1
	}
	if v.Volume < 0 {
		v.Volume = 1
	}
	return v
}

func clamp(f, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, f))
}

func itoa(f float64) string {
	return strconv.Itoa(int(math.Round(f)))
}
