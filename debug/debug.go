// Package debug holds process-wide debug switches, read once from the
// environment at startup.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Diff  bool
	List  bool
	Parse bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("JSDIFF_DEBUG_DIFF")
	d.List = boolEnv("JSDIFF_DEBUG_LIST")
	d.Parse = boolEnv("JSDIFF_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func List() bool {
	return d.List
}
func Parse() bool {
	return d.Parse
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
