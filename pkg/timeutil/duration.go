package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]*)`)
	unitMap        = map[string]time.Duration{
		"":        time.Second,
		"ms":      time.Millisecond,
		"msec":    time.Millisecond,
		"msecs":   time.Millisecond,
		"s":       time.Second,
		"sec":     time.Second,
		"secs":    time.Second,
		"second":  time.Second,
		"seconds": time.Second,
		"m":       time.Minute,
		"min":     time.Minute,
		"mins":    time.Minute,
		"minute":  time.Minute,
		"minutes": time.Minute,
	}
)

// ParseDuration parses a human-friendly duration such as "4s", "1500ms" or
// "1m30s". A bare number is read as seconds.
func ParseDuration(input string) (time.Duration, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, fmt.Errorf("empty duration")
	}

	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid duration segment %q", strings.TrimSpace(remaining))
		}
		valueStr := matches[1]
		unitStr := matches[2]

		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration value %q: %w", valueStr, err)
		}
		base, ok := unitMap[unitStr]
		if !ok {
			return 0, fmt.Errorf("unsupported duration unit %q", unitStr)
		}
		total += time.Duration(value) * base

		remaining = strings.TrimSpace(remaining[len(matches[0]):])
	}

	if total <= 0 {
		return 0, fmt.Errorf("duration must be greater than zero")
	}
	return total, nil
}

// Format renders a duration compactly: whole seconds as "4s", anything with
// a sub-second part as "1.5s", and minutes as "1m30s".
func Format(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	if d < time.Minute {
		if d%time.Second == 0 {
			return fmt.Sprintf("%ds", d/time.Second)
		}
		return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
	}

	type unit struct {
		label string
		value time.Duration
	}
	units := []unit{
		{"m", time.Minute},
		{"s", time.Second},
	}

	var parts []string
	remaining := d.Truncate(time.Second)
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	return strings.Join(parts, "")
}

// Countdown renders the time left in a phase rounded up to whole seconds,
// so a phase never shows "0" while it is still running.
func Countdown(left time.Duration) string {
	if left <= 0 {
		return "0"
	}
	secs := (left + time.Second - 1) / time.Second
	return strconv.FormatInt(int64(secs), 10)
}
