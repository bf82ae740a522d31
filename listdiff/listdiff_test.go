package listdiff

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func eq(a, b string) bool { return a == b }

// apply replays an edit script against old, interpreting positions
// against the original sequence.
func apply(old []string, edits []Edit[string]) []string {
	var res []string
	for _, e := range edits {
		if e.Index == -1 && e.Kind == Insert {
			res = append(res, e.Items...)
		}
	}
	for i, v := range old {
		removed := false
		replaced := false
		var repl string
		for _, e := range edits {
			if e.Index != i {
				continue
			}
			switch e.Kind {
			case Delete:
				removed = true
			case Replace:
				replaced = true
				repl = e.New
			}
		}
		switch {
		case replaced:
			res = append(res, repl)
		case removed:
		default:
			res = append(res, v)
		}
		for _, e := range edits {
			if e.Index == i && e.Kind == Insert {
				res = append(res, e.Items...)
			}
		}
	}
	return res
}

// editCost counts primitive inserts+deletes, a replace costing one of
// each.
func editCost(edits []Edit[string]) int {
	cost := 0
	for _, e := range edits {
		switch e.Kind {
		case Insert:
			cost += len(e.Items)
		case Delete:
			cost++
		case Replace:
			cost += 2
		}
	}
	return cost
}

// lcsLen is an independent O(N*M) reference for the optimal distance.
func lcsLen(a, b []string) int {
	n, m := len(a), len(b)
	prev := make([]int, m+1)
	cur := make([]int, m+1)
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else {
				cur[j] = max(prev[j], cur[j-1])
			}
		}
		copy(prev, cur)
	}
	return prev[m]
}

func split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, " ")
}

type scriptTest struct {
	name string
	old  string
	new  string
	want []Edit[string]
}

var scriptTests = []scriptTest{
	{
		name: "identical",
		old:  "a b c",
		new:  "a b c",
		want: nil,
	},
	{
		name: "insert at head",
		old:  "b",
		new:  "a b",
		want: []Edit[string]{
			{Index: -1, Change: Change[string]{Kind: Insert, Items: []string{"a"}}},
		},
	},
	{
		name: "delete middle",
		old:  "a b c",
		new:  "a c",
		want: []Edit[string]{
			{Index: 1, Change: Change[string]{Kind: Delete, Old: "b"}},
		},
	},
	{
		name: "fused replace",
		old:  "a b c",
		new:  "a x c",
		want: []Edit[string]{
			{Index: 1, Change: Change[string]{Kind: Replace, Old: "b", New: "x"}},
		},
	},
	{
		name: "fusion keeps insert tail",
		old:  "x",
		new:  "a b",
		want: []Edit[string]{
			{Index: 0, Change: Change[string]{Kind: Replace, Old: "x", New: "a"}},
			{Index: 0, Change: Change[string]{Kind: Insert, Items: []string{"b"}}},
		},
	},
	{
		name: "tail fuses into next delete",
		old:  "x y",
		new:  "a b",
		want: []Edit[string]{
			{Index: 0, Change: Change[string]{Kind: Replace, Old: "x", New: "a"}},
			{Index: 1, Change: Change[string]{Kind: Replace, Old: "y", New: "b"}},
		},
	},
	{
		name: "mixed run",
		old:  "1 2 3 3 3 7 8",
		new:  "2 3 3 3 4 7 9",
		want: []Edit[string]{
			{Index: 0, Change: Change[string]{Kind: Delete, Old: "1"}},
			{Index: 4, Change: Change[string]{Kind: Insert, Items: []string{"4"}}},
			{Index: 6, Change: Change[string]{Kind: Replace, Old: "8", New: "9"}},
		},
	},
	{
		name: "empty old",
		old:  "",
		new:  "a b",
		want: []Edit[string]{
			{Index: -1, Change: Change[string]{Kind: Insert, Items: []string{"a", "b"}}},
		},
	},
	{
		name: "empty new",
		old:  "a b",
		new:  "",
		want: []Edit[string]{
			{Index: 0, Change: Change[string]{Kind: Delete, Old: "a"}},
			{Index: 1, Change: Change[string]{Kind: Delete, Old: "b"}},
		},
	},
}

func TestStandardScripts(t *testing.T) {
	for _, tt := range scriptTests {
		t.Run(tt.name, func(t *testing.T) {
			old, new := split(tt.old), split(tt.new)
			got, ok := Diff(Standard, old, new, eq)
			if !ok {
				t.Fatal("standard diff gave up")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("script mismatch (-want +got):\n%s", diff)
			}
			if applied := apply(old, got); !slices.Equal(applied, new) {
				t.Errorf("apply: got %v, want %v", applied, new)
			}
		})
	}
}

func TestTrivial(t *testing.T) {
	if _, ok := Diff(Trivial, split("a b"), split("a"), eq); ok {
		t.Error("trivial accepted sequences of different lengths")
	}
	got, ok := Diff(Trivial, split("a b c"), split("a x c"), eq)
	if !ok {
		t.Fatal("trivial gave up on equal lengths")
	}
	want := []Edit[string]{
		{Index: 1, Change: Change[string]{Kind: Replace, Old: "b", New: "x"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("script mismatch (-want +got):\n%s", diff)
	}
}

func TestAllDifferentGivesReplaces(t *testing.T) {
	old := split("a b c d")
	new := split("w x y z")
	got, ok := Diff(Standard, old, new, eq)
	if !ok {
		t.Fatal("diff gave up")
	}
	if len(got) != len(old) {
		t.Fatalf("got %d edits, want %d", len(got), len(old))
	}
	for i, e := range got {
		if e.Kind != Replace || e.Index != i {
			t.Errorf("edit %d: got %v %q at %d, want replace at %d", i, e.Kind, e.New, e.Index, i)
		}
	}
}

func TestOrderingInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		old := randomSeq(r)
		new := randomSeq(r)
		edits, ok := Diff(Standard, old, new, eq)
		if !ok {
			t.Fatal("diff gave up")
		}
		for i := 1; i < len(edits); i++ {
			if edits[i].Index < edits[i-1].Index {
				t.Fatalf("indices not non-decreasing: %v", edits)
			}
		}
	}
}

func randomSeq(r *rand.Rand) []string {
	n := r.Intn(13)
	res := make([]string, n)
	for i := range res {
		res[i] = string(rune('a' + r.Intn(3)))
	}
	return res
}

func TestRandomPatchSoundness(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		old := randomSeq(r)
		new := randomSeq(r)

		edits, ok := Diff(Standard, old, new, eq)
		if !ok {
			t.Fatalf("standard gave up on %v -> %v", old, new)
		}
		if applied := apply(old, edits); !slices.Equal(applied, new) {
			t.Fatalf("standard apply: %v -> %v gave %v (script %v)", old, new, applied, edits)
		}

		// optimality against the DP reference
		wantCost := len(old) + len(new) - 2*lcsLen(old, new)
		if got := editCost(edits); got != wantCost {
			t.Fatalf("edit cost %d, want %d for %v -> %v", got, wantCost, old, new)
		}

		if tEdits, ok := Diff(Trivial, old, new, eq); ok {
			if applied := apply(old, tEdits); !slices.Equal(applied, new) {
				t.Fatalf("trivial apply: %v -> %v gave %v", old, new, applied)
			}
		} else if len(old) == len(new) {
			t.Fatalf("trivial gave up on equal lengths %v -> %v", old, new)
		}
	}
}
