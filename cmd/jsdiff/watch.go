package main

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

// watch re-runs the diff whenever either input changes.  Events are
// debounced because editors produce bursts of writes per save.
func watch(cfg *WatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Watch.Parse(cc, args)
	if err != nil {
		cfg.Watch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if err := cfg.loadFileDefaults(); err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: watch requires 2 args, got %v", cli.ErrUsage, args)
	}

	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			return fmt.Errorf("starting gops agent: %w", err)
		}
		defer agent.Close()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()
	for _, p := range args {
		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}
	}

	if _, err := diffOnce(cfg.DiffConfig, cc, args[0], args[1]); err != nil {
		return err
	}

	const debounce = 100 * time.Millisecond
	var pending *time.Timer
	fire := make(chan struct{}, 1)
	count := 0
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
			// some editors replace the file, dropping the watch
			watcher.Add(ev.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)
		case <-fire:
			count++
			fmt.Fprintf(cc.Out, "--- %s (run %d)\n", time.Now().Format(time.RFC3339), count)
			if _, err := diffOnce(cfg.DiffConfig, cc, args[0], args[1]); err != nil {
				return err
			}
		}
	}
}
