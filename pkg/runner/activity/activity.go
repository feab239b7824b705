// Package activity prints movement suggestions and can follow them with the
// breathing guide.
package activity

import (
	"context"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/calm/pkg/content"
	"tableflip.dev/calm/pkg/printers"
)

// Doer is a runner.
type Doer interface {
	Do(ctx context.Context) error
}

type Activity struct {
	// Guide runs after the suggestions are printed, when set.
	Guide Doer
	Out   io.Writer
}

func (n *Activity) Do(ctx context.Context) error {
	if n.Out == nil {
		n.Out = color.Output
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Suggestions("How movement helps", content.Benefits()...)
	pp.Suggestions("Activities to try", content.Activities()...)
	pp.Suggestions("Getting started", content.Tips()...)

	if n.Guide == nil {
		return nil
	}
	return n.Guide.Do(ctx)
}
