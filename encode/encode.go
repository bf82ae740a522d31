// Package encode renders edit scripts for consumers: a human-readable
// text listing, machine-readable JSON, and LSP text edits.
package encode

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	jsdiff "github.com/treeline-dev/jsdiff"
)

type config struct {
	color *bool
}

type Option func(*config)

// Colors forces colored output on or off.  Without it, color is used
// when the writer is a terminal.
func Colors(v bool) Option {
	return func(c *config) { c.color = &v }
}

func useColor(w io.Writer, cfg *config) bool {
	if cfg.color != nil {
		return *cfg.color
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// Text writes a line-oriented listing of changes.  Replaces of
// single-line nodes get a character-level diff when color is on.
func Text(w io.Writer, changes []jsdiff.LocatedChange, opts ...Option) error {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}
	colored := useColor(w, cfg)
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)
	if !colored {
		red.DisableColor()
		green.DisableColor()
	}

	for i := range changes {
		c := &changes[i]
		switch c.Kind {
		case jsdiff.Replace:
			oldText := c.Old.Span().Text()
			newText := c.New.Span().Text()
			if _, err := fmt.Fprintf(w, "%s replace %s\n", c.Span, c.Old.Kind); err != nil {
				return err
			}
			if colored && oneLine(oldText) && oneLine(newText) {
				if err := charDiff(w, red, green, oldText, newText); err != nil {
					return err
				}
				continue
			}
			if _, err := red.Fprintf(w, "- %s\n", oldText); err != nil {
				return err
			}
			if _, err := green.Fprintf(w, "+ %s\n", newText); err != nil {
				return err
			}
		case jsdiff.Insert:
			if _, err := fmt.Fprintf(w, "%s insert\n", c.Span); err != nil {
				return err
			}
			for _, n := range c.Inserted {
				if _, err := green.Fprintf(w, "+ %s\n", n.Span().Text()); err != nil {
					return err
				}
			}
		case jsdiff.Delete:
			if _, err := fmt.Fprintf(w, "%s delete %s\n", c.Span, c.Old.Kind); err != nil {
				return err
			}
			if _, err := red.Fprintf(w, "- %s\n", c.Old.Span().Text()); err != nil {
				return err
			}
		}
	}
	return nil
}

func oneLine(s string) bool {
	return s != "" && !strings.Contains(s, "\n")
}

// charDiff renders an intra-line character diff of a replace.
func charDiff(w io.Writer, red, green *color.Color, oldText, newText string) error {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			b.WriteString(red.Sprint(d.Text))
		case diffpatch.DiffInsert:
			b.WriteString(green.Sprint(d.Text))
		default:
			b.WriteString(d.Text)
		}
	}
	_, err := fmt.Fprintf(w, "~ %s\n", b.String())
	return err
}
