package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	jsdiff "github.com/treeline-dev/jsdiff"
	"github.com/treeline-dev/jsdiff/ast"
	"github.com/treeline-dev/jsdiff/encode"
	"github.com/treeline-dev/jsdiff/parse"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runDiff(cfg, cc, args)
}

func runDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	if err := cfg.loadFileDefaults(); err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	differs, err := diffOnce(cfg, cc, args[0], args[1])
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffOnce parses, diffs and renders one pair of files, reporting
// whether any difference was found.
func diffOnce(cfg *DiffConfig, cc *cli.Context, oldPath, newPath string) (bool, error) {
	oldSrc, err := os.ReadFile(oldPath)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", oldPath, err)
	}
	newSrc, err := os.ReadFile(newPath)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", newPath, err)
	}

	hashes := map[ast.Node]uint64{}
	popts := cfg.parseOpts(hashes)
	oldProg, err := parse.Parse(oldSrc, popts...)
	if err != nil {
		return false, fmt.Errorf("parsing %s: %w", oldPath, err)
	}
	newProg, err := parse.Parse(newSrc, popts...)
	if err != nil {
		return false, fmt.Errorf("parsing %s: %w", newPath, err)
	}

	changes := jsdiff.Diff(oldProg, newProg, cfg.diffOpts(hashes)...)
	if cfg.Filter != "" {
		changes, err = filterChanges(changes, cfg.Filter)
		if err != nil {
			return false, err
		}
	}

	w, closeW, err := cfg.output(cc)
	if err != nil {
		return false, err
	}
	defer closeW()

	if err := render(cfg, w, changes, oldProg, newProg); err != nil {
		return false, err
	}
	return len(changes) > 0, nil
}

func render(cfg *DiffConfig, w io.Writer, changes []jsdiff.LocatedChange, oldProg, newProg *ast.Program) error {
	switch cfg.format() {
	case "text":
		var opts []encode.Option
		if cfg.Color {
			opts = append(opts, encode.Colors(true))
		}
		return encode.Text(w, changes, opts...)
	case "json":
		return encode.JSON(w, changes)
	case "lsp":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(encode.TextEdits(changes))
	case "mergepatch":
		return mergePatch(w, oldProg, newProg)
	default:
		return fmt.Errorf("%w: unknown output format %q", cli.ErrUsage, cfg.Format)
	}
}

// mergePatch emits an RFC 7386 merge patch between the two serialized
// trees, a coarse document-level alternative to the edit script.
func mergePatch(w io.Writer, oldProg, newProg *ast.Program) error {
	oldDoc, err := json.Marshal(oldProg)
	if err != nil {
		return err
	}
	newDoc, err := json.Marshal(newProg)
	if err != nil {
		return err
	}
	patch, err := jsonpatch.CreateMergePatch(oldDoc, newDoc)
	if err != nil {
		return fmt.Errorf("computing merge patch: %w", err)
	}
	if _, err := w.Write(patch); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// filterEnv is the expr environment visible to -filter predicates.
type filterEnv struct {
	Kind string `expr:"kind"`
	Node string `expr:"node"`
	Line int    `expr:"line"`
	Text string `expr:"text"`
}

func filterChanges(changes []jsdiff.LocatedChange, src string) ([]jsdiff.LocatedChange, error) {
	prog, err := expr.Compile(src, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter: %w", err)
	}
	var res []jsdiff.LocatedChange
	for i := range changes {
		c := &changes[i]
		env := filterEnv{Kind: c.Kind.String(), Text: c.Span.Text()}
		switch c.Kind {
		case jsdiff.Insert:
			if len(c.Inserted) > 0 {
				env.Node = c.Inserted[0].Kind.String()
			}
		default:
			env.Node = c.Old.Kind.String()
		}
		if d := c.Span.Doc(); d != nil {
			env.Line, _ = d.LineCol(c.Span.Start)
		}
		out, err := expr.Run(prog, env)
		if err != nil {
			return nil, fmt.Errorf("running filter: %w", err)
		}
		if keep, _ := out.(bool); keep {
			res = append(res, *c)
		}
	}
	return res, nil
}
