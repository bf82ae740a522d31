package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "jsdiff").
		WithSynopsis("jsdiff [opts] command [opts]").
		WithDescription("jsdiff computes structural diffs of javascript source trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diffMain(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg),
			WatchCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff [opts] old.js new.js").
		WithDescription("diff two source files and print the edit script").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func WatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WatchConfig{DiffConfig: &DiffConfig{MainConfig: mainCfg}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("watch").
		WithAliases("w").
		WithSynopsis("watch [opts] old.js new.js").
		WithDescription("re-diff the two files whenever either changes on disk").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return watch(cfg, cc, args)
		})
	cfg.Watch = cmd
	return cmd
}

// diffMain lets `jsdiff a.js b.js` work without the subcommand.  The
// root command already parsed its options, so it goes straight to the
// run step.
func diffMain(mainCfg *MainConfig, cc *cli.Context, args []string) error {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cfg.Diff = mainCfg.Main
	return runDiff(cfg, cc, args)
}
