package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	jsdiff "github.com/treeline-dev/jsdiff"
	"github.com/treeline-dev/jsdiff/ast"
	"github.com/treeline-dev/jsdiff/listdiff"
	"github.com/treeline-dev/jsdiff/parse"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='force colored output'"`
	TS      bool   `cli:"name=ts desc='parse with the typescript grammar (annotations)'"`
	Trivial bool   `cli:"name=trivial desc='use the trivial list-diff algorithm'"`
	Format  string `cli:"name=O aliases=ofmt desc='output format: text, json, lsp, mergepatch'"`
	Out     string `cli:"name=o desc='output file (default stdout)'"`

	Main *cli.Command
}

// fileConfig are defaults read from .jsdiff.yaml in the working
// directory; flags take precedence.
type fileConfig struct {
	Format     string `yaml:"format"`
	Color      bool   `yaml:"color"`
	TypeScript bool   `yaml:"typescript"`
	Trivial    bool   `yaml:"trivial"`
}

const configFile = ".jsdiff.yaml"

func (cfg *MainConfig) loadFileDefaults() error {
	d, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", configFile, err)
	}
	fc := &fileConfig{}
	if err := yaml.Unmarshal(d, fc); err != nil {
		return fmt.Errorf("parsing %s: %w", configFile, err)
	}
	if cfg.Format == "" {
		cfg.Format = fc.Format
	}
	cfg.Color = cfg.Color || fc.Color
	cfg.TS = cfg.TS || fc.TypeScript
	cfg.Trivial = cfg.Trivial || fc.Trivial
	return nil
}

func (cfg *MainConfig) format() string {
	if cfg.Format == "" {
		return "text"
	}
	return cfg.Format
}

func (cfg *MainConfig) parseOpts(hashes map[ast.Node]uint64) []parse.ParseOption {
	res := []parse.ParseOption{parse.ParseHashes(hashes)}
	if cfg.TS {
		res = append(res, parse.ParseTypeScript())
	}
	return res
}

func (cfg *MainConfig) diffOpts(hashes map[ast.Node]uint64) []jsdiff.Opt {
	res := []jsdiff.Opt{jsdiff.Hashes(hashes)}
	if cfg.Trivial {
		res = append(res, jsdiff.Algorithm(listdiff.Trivial))
	}
	return res
}

// output returns the destination writer and a close func.
func (cfg *MainConfig) output(cc *cli.Context) (io.Writer, func() error, error) {
	if cfg.Out == "" {
		return cc.Out, func() error { return nil }, nil
	}
	f, err := os.Create(cfg.Out)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", cfg.Out, err)
	}
	return f, f.Close, nil
}

type DiffConfig struct {
	*MainConfig
	Filter string `cli:"name=filter desc='expr predicate over changes'"`

	Diff *cli.Command
}

type WatchConfig struct {
	*DiffConfig
	Gops bool `cli:"name=gops desc='start a gops diagnostics agent'"`

	Watch *cli.Command
}
