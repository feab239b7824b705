package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutDate      = "2006-1-2"
	layoutDateShort = "1/2"
)

// OnOptions selects the day a journal view is centered on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-2-28" or --on="2/28".`)
}

func (o *OnOptions) GetOn() (*time.Time, error) {
	return o.on(time.Now())
}

// on parses OnString relative to now. A date without a year is the most
// recent one that is not after now; the journal only holds the past.
func (o *OnOptions) on(now time.Time) (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(layoutDate, o.OnString, now.Location())
	if err == nil {
		return &t, nil
	}
	short, err := time.ParseInLocation(layoutDateShort, o.OnString, now.Location())
	if err != nil {
		return nil, err
	}
	t = time.Date(now.Year(), short.Month(), short.Day(), 0, 0, 0, 0, now.Location())
	if t.After(now) {
		t = t.AddDate(-1, 0, 0)
	}
	return &t, nil
}
