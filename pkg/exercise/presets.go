package exercise

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	second = time.Second
)

func breath(name string, d time.Duration) Phase {
	return Phase{Name: name, Duration: d}
}

func step(name, instruction string, d time.Duration) Phase {
	return Phase{Name: name, Duration: d, Instruction: instruction}
}

var presets = map[string]Pattern{
	"simple": {
		Name:  "simple",
		Title: "Simple breathing",
		Phases: []Phase{
			breath(Inhale, 4*second),
			breath(Exhale, 4*second),
		},
	},
	"triangle": {
		Name:  "triangle",
		Title: "Calm breathing",
		Phases: []Phase{
			breath(Inhale, 4*second),
			breath(Hold, 4*second),
			breath(Exhale, 4*second),
		},
	},
	"box": {
		Name:  "box",
		Title: "Box breathing",
		Phases: []Phase{
			breath(Inhale, 4*second),
			breath(Hold, 4*second),
			breath(Exhale, 4*second),
			breath(Hold, 4*second),
		},
	},
	"478": {
		Name:  "478",
		Title: "4-7-8 breathing",
		Phases: []Phase{
			breath(Inhale, 4*second),
			breath(Hold, 7*second),
			breath(Exhale, 8*second),
		},
	},
	"grounding": {
		Name:  "grounding",
		Title: "5-4-3-2-1 grounding",
		Phases: []Phase{
			step("see", "Look around and name 5 things you can see.", 10*second),
			step("touch", "Notice 4 things you can touch.", 10*second),
			step("hear", "Listen for 3 sounds you can hear.", 10*second),
			step("smell", "Identify 2 things you can smell.", 10*second),
			step("taste", "Focus on 1 thing you can taste.", 10*second),
		},
	},
	"relaxation": {
		Name:  "relaxation",
		Title: "Progressive muscle relaxation",
		Phases: []Phase{
			step("feet", "Tense your feet by curling your toes for 5 seconds, then release.", 10*second),
			step("legs", "Tighten your leg muscles for 5 seconds, then relax.", 10*second),
			step("arms", "Clench your fists and tense your arms for 5 seconds, then let go.", 10*second),
			step("shoulders", "Raise your shoulders towards your ears, hold for 5 seconds, then drop them.", 10*second),
			step("face", "Scrunch your face tightly for 5 seconds, then relax.", 10*second),
		},
	},
	"visualization": {
		Name:  "visualization",
		Title: "Beach visualization",
		Phases: []Phase{
			step("breathe", "Close your eyes and take a deep breath.", 8*second),
			step("beach", "Imagine yourself on a beautiful beach.", 8*second),
			step("sand", "Feel the warm sand between your toes.", 8*second),
			step("waves", "Hear the gentle waves lapping at the shore.", 8*second),
			step("air", "Smell the fresh, salty air.", 8*second),
			step("sky", "See the clear blue sky and the sun shining down.", 8*second),
			step("stay", "Stay in this peaceful place for a few moments.", 8*second),
		},
	},
	"activity": {
		Name:  "activity",
		Title: "Follow the circle",
		Phases: []Phase{
			step(Inhale, "Inhale", 4*second),
			step(Exhale, "Exhale", 4*second),
		},
	},
}

// Aliases map the exercise names used by the command line to presets.
var aliases = map[string]string{
	"breathing":   "triangle",
	"breathe":     "triangle",
	"mindfulness": "grounding",
	"ground":      "grounding",
	"relax":       "relaxation",
	"visualize":   "visualization",
	"visualise":   "visualization",
	"4-7-8":       "478",
}

// Lookup returns a copy of the named preset.
func Lookup(name string) (Pattern, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if a, ok := aliases[key]; ok {
		key = a
	}
	p, ok := presets[key]
	if !ok {
		return Pattern{}, fmt.Errorf("unknown pattern %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return p.Clone(), nil
}

// Names lists the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Presets returns copies of every preset, sorted by name.
func Presets() []Pattern {
	names := Names()
	out := make([]Pattern, 0, len(names))
	for _, name := range names {
		out = append(out, presets[name].Clone())
	}
	return out
}
