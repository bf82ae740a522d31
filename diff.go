package jsdiff

import (
	"github.com/treeline-dev/jsdiff/ast"
	"github.com/treeline-dev/jsdiff/debug"
	"github.com/treeline-dev/jsdiff/listdiff"
)

// Config controls a diff run.
type Config struct {
	Algo   listdiff.Algorithm
	Hashes map[ast.Node]uint64
}

type Opt func(*Config)

// Algorithm selects the list-diff algorithm used on sequence
// children.  The default is listdiff.Standard.
func Algorithm(a listdiff.Algorithm) Opt {
	return func(c *Config) { c.Algo = a }
}

// Hashes supplies content hashes (see ast.HashTree) used to widen
// referential equality.  Required for sensible results when the two
// programs were parsed independently, since then no subtree of one is
// referentially shared with the other.
func Hashes(m map[ast.Node]uint64) Opt {
	return func(c *Config) { c.Hashes = m }
}

// Diff computes the edit script transforming old into new.  The
// result is ordered by position in the old source; same-position ties
// keep the sequence-edit order (inserts before the delete they abut,
// replaces before an insert tail split off a fused replace).  Diff
// always returns a valid script: when no finer-grained edit can be
// expressed the whole program is replaced.
func Diff(old, new *ast.Program, opts ...Opt) []LocatedChange {
	cfg := &Config{Algo: listdiff.Standard}
	for _, o := range opts {
		o(cfg)
	}
	d := &differ{cfg: cfg}
	return d.program(old, new)
}

type differ struct {
	cfg *Config
}

// same is the universal "definitely unchanged" test: referential
// equality, widened by content hashes when available.
func (d *differ) same(a, b ast.Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if len(d.cfg.Hashes) == 0 {
		return false
	}
	ha, aok := d.cfg.Hashes[a]
	hb, bok := d.cfg.Hashes[b]
	return aok && bok && ha == hb
}

func (d *differ) program(a, b *ast.Program) []LocatedChange {
	if d.same(a, b) {
		return nil
	}
	if cs, ok := d.statements(a.Body, b.Body); ok {
		return cs
	}
	if debug.Diff() {
		debug.Logf("jsdiff: whole-program replace at %s\n", a.Span())
	}
	return []LocatedChange{replaceAt(a.Span(), ProgramOf(a), ProgramOf(b))}
}

func (d *differ) statements(old, new []ast.Stmt) ([]LocatedChange, bool) {
	return diffAndRecurse(d, old, new, StatementOf,
		func(a, b ast.Stmt) ([]LocatedChange, bool) {
			return d.statement(a, b), true
		})
}
