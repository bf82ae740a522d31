// Package listdiff computes minimal edit scripts between ordered
// sequences.  It is generic over the element type; elements are only
// ever compared through a caller-supplied sameness predicate, which
// for AST use is referential equality (optionally widened by content
// hashes).
//
// Edit positions refer to the OLD sequence.  For Insert edits the
// index is the position AFTER which the new elements go; -1 inserts
// before the first element.
package listdiff

import "slices"

// Algorithm selects the diff strategy.
type Algorithm int

const (
	// Standard is the Myers O((N+M)*D) shortest edit script.
	Standard Algorithm = iota
	// Trivial only handles equal-length sequences, replacing
	// position-wise; it gives up on anything else.
	Trivial
)

func (a Algorithm) String() string {
	if a == Trivial {
		return "trivial"
	}
	return "standard"
}

// Kind discriminates changes.  The declaration order is the tie-break
// order used when sorting raw scripts: inserts at an index sort
// before the delete of the following element, which is what enables
// replace fusion.
type Kind int

const (
	Insert Kind = iota
	Delete
	Replace
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	}
	return "replace"
}

// Change describes a single edit.  Replace carries Old and New,
// Delete carries Old, Insert carries Items (never empty).
type Change[T any] struct {
	Kind  Kind
	Old   T
	New   T
	Items []T
}

// Edit is a Change positioned against the old sequence.
type Edit[T any] struct {
	Index int
	Change[T]
}

// Diff computes an ordered edit script transforming old into new, or
// reports ok == false when the chosen algorithm gives up and the
// caller should fall back to a whole replacement.  The Standard
// algorithm is given the always-sufficient distance bound
// len(old)+len(new) and therefore never gives up.
func Diff[T any](algo Algorithm, old, new []T, same func(T, T) bool) ([]Edit[T], bool) {
	switch algo {
	case Trivial:
		return trivial(old, new, same)
	default:
		return standard(old, new, len(old)+len(new), same)
	}
}

func trivial[T any](old, new []T, same func(T, T) bool) ([]Edit[T], bool) {
	if len(old) != len(new) {
		return nil, false
	}
	var res []Edit[T]
	for i := range old {
		if !same(old[i], new[i]) {
			res = append(res, Edit[T]{
				Index:  i,
				Change: Change[T]{Kind: Replace, Old: old[i], New: new[i]},
			})
		}
	}
	return res, true
}

// trace is a reversed list of match points (x, y) with
// old[x] same new[y].  Reversal lets endpoints share prefixes.
type trace struct {
	x, y int
	prev *trace
}

type endpoint struct {
	x, y int
	tr   *trace
}

// standard is the forward Myers shortest-edit-script search: breadth
// first over edit distance, extending every move by its snake, with a
// visited set so each lattice point is expanded once.
func standard[T any](old, new []T, maxDist int, same func(T, T) bool) ([]Edit[T], bool) {
	n, m := len(old), len(new)

	// follow the snake from (x, y), recording match points
	follow := func(x, y int, tr *trace) endpoint {
		for x < n && y < m && same(old[x], new[y]) {
			tr = &trace{x: x, y: y, prev: tr}
			x++
			y++
		}
		return endpoint{x: x, y: y, tr: tr}
	}

	seen := make(map[[2]int]bool)
	start := follow(0, 0, nil)
	seen[[2]int{start.x, start.y}] = true
	if start.x == n && start.y == m {
		return buildScript(old, new, start.tr), true
	}

	frontier := []endpoint{start}
	for d := 1; d <= maxDist; d++ {
		var next []endpoint
		for _, e := range frontier {
			if e.x < n {
				ep := follow(e.x+1, e.y, e.tr)
				if !seen[[2]int{ep.x, ep.y}] {
					seen[[2]int{ep.x, ep.y}] = true
					if ep.x == n && ep.y == m {
						return buildScript(old, new, ep.tr), true
					}
					next = append(next, ep)
				}
			}
			if e.y < m {
				ep := follow(e.x, e.y+1, e.tr)
				if !seen[[2]int{ep.x, ep.y}] {
					seen[[2]int{ep.x, ep.y}] = true
					if ep.x == n && ep.y == m {
						return buildScript(old, new, ep.tr), true
					}
					next = append(next, ep)
				}
			}
		}
		frontier = next
	}
	return nil, false
}

// buildScript turns the optimal trace into a sorted, replace-fused
// edit script.
func buildScript[T any](old, new []T, tr *trace) []Edit[T] {
	var points [][2]int
	for p := tr; p != nil; p = p.prev {
		points = append(points, [2]int{p.x, p.y})
	}
	slices.Reverse(points)

	var edits []Edit[T]

	// every old index off the trace is deleted
	onTrace := make([]bool, len(old))
	for _, p := range points {
		onTrace[p[0]] = true
	}
	for x := range old {
		if !onTrace[x] {
			edits = append(edits, Edit[T]{
				Index:  x,
				Change: Change[T]{Kind: Delete, Old: old[x]},
			})
		}
	}

	// new elements between adjacent match points are inserted after
	// the earlier point's old index; sentinels cover the ends
	padded := make([][2]int, 0, len(points)+2)
	padded = append(padded, [2]int{-1, -1})
	padded = append(padded, points...)
	padded = append(padded, [2]int{len(old), len(new)})
	for k := 0; k+1 < len(padded); k++ {
		a, b := padded[k], padded[k+1]
		if a[1]+1 < b[1] {
			edits = append(edits, Edit[T]{
				Index:  a[0],
				Change: Change[T]{Kind: Insert, Items: slices.Clone(new[a[1]+1 : b[1]])},
			})
		}
	}

	slices.SortStableFunc(edits, func(a, b Edit[T]) int {
		if a.Index != b.Index {
			return a.Index - b.Index
		}
		return int(a.Kind) - int(b.Kind)
	})
	return fuseReplaces(edits)
}

// fuseReplaces coalesces an insert directly before a delete of the
// next old element into a replace, so that tree diffing can recurse
// into the pair.  A multi-element insert donates its head and keeps
// the tail at the replaced index, where it may fuse again.
func fuseReplaces[T any](edits []Edit[T]) []Edit[T] {
	res := make([]Edit[T], 0, len(edits))
	i := 0
	for i < len(edits) {
		if i+1 < len(edits) &&
			edits[i].Kind == Insert &&
			edits[i+1].Kind == Delete &&
			edits[i].Index == edits[i+1].Index-1 {
			del := edits[i+1]
			items := edits[i].Items
			res = append(res, Edit[T]{
				Index:  del.Index,
				Change: Change[T]{Kind: Replace, Old: del.Old, New: items[0]},
			})
			if len(items) > 1 {
				edits[i+1] = Edit[T]{
					Index:  del.Index,
					Change: Change[T]{Kind: Insert, Items: items[1:]},
				}
				i++
				continue
			}
			i += 2
			continue
		}
		res = append(res, edits[i])
		i++
	}
	return res
}
