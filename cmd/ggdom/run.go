package main

import (
	"fmt"
	"io"

	"go.uber.org/multierr"

	"github.com/gogpu/ggdom"
	"github.com/gogpu/ggdom/edit"
)

type runOptions struct {
	validate bool
	strict   bool
}

// validateScenario checks every frame and reports all problems at once.
func validateScenario(sc *Scenario) error {
	var errs error
	for i, fr := range sc.Frames {
		if err := edit.Validate(fr.Mutations); err != nil {
			for _, e := range multierr.Errors(err) {
				errs = multierr.Append(errs, fmt.Errorf("frame %d (%s): %w", i+1, fr.Name, e))
			}
		}
	}
	return errs
}

// runScenario applies every frame of sc to a new document and writes one
// summary line per frame to w.
func runScenario(w io.Writer, sc *Scenario, ro runOptions) (*ggdom.Document, []ggdom.Frame, error) {
	if ro.validate {
		if err := validateScenario(sc); err != nil {
			return nil, nil, err
		}
	}

	opts := []ggdom.Option{
		ggdom.WithViewport(sc.Viewport.Width, sc.Viewport.Height),
		ggdom.WithStrictLayout(sc.Strict || ro.strict),
		ggdom.WithRecover(true),
	}
	if sc.Scale > 0 {
		opts = append(opts, ggdom.WithScaleFactor(sc.Scale))
	}
	doc, err := ggdom.NewDocument(opts...)
	if err != nil {
		return nil, nil, err
	}

	frames := make([]ggdom.Frame, 0, len(sc.Frames))
	for i, fr := range sc.Frames {
		f, err := doc.ApplyFrame(fr.Mutations)
		if err != nil {
			return doc, frames, fmt.Errorf("frame %d (%s): %w", i+1, fr.Name, err)
		}
		frames = append(frames, f)

		dirty := "none"
		if f.HasDirty {
			dirty = f.DirtyRect.String()
		}
		fmt.Fprintf(w, "frame %d %-12s applied=%d derived=%d relayered=%d reshaped=%d removed=%d relayout=%t dirty=%s\n",
			f.Number, fr.Name, f.Applied, f.Derived, f.Relayered, f.Reshaped, f.Removed, f.Relayout, dirty)
		ggdom.Logger().Info("frame applied", "frame", f.Number, "name", fr.Name)
	}
	return doc, frames, nil
}
