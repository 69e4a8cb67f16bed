// Command cascade-demo exercises the engine end to end: a static banner,
// a ticking feed that rewrites its tail in place, a selectable list, and
// an editor line wired to the feed.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	cascade "github.com/petrellis/go-cascade"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:           "cascade-demo",
		Short:         "Interactive demo of the cascade line-diff renderer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a yaml config file")
	return cmd
}

func run(cfg Config) error {
	app, err := cascade.NewApp()
	if err != nil {
		return err
	}

	app.Add(cascade.NewText(cfg.Banner))
	app.Add(cascade.NewText(""))

	feed := cascade.NewContainer()
	status := cascade.NewText("starting...")
	log := cascade.NewText("")
	feed.Add(status)
	feed.Add(log)
	app.AddContainer(feed)

	app.Add(cascade.NewText(""))
	list := cascade.NewList(cfg.Items)
	list.OnSelect = func(_ int, item string) {
		log.Append(fmt.Sprintf("selected %s\n", item))
	}
	app.Add(list)

	editor := cascade.NewEditor("> ")
	editor.OnSubmit = func(line string) {
		if line == "" {
			return
		}
		log.Append(line + "\n")
	}
	app.Add(editor)
	app.SetFocus(editor)

	go func() {
		ticker := time.NewTicker(time.Duration(cfg.TickInterval))
		defer ticker.Stop()
		n := 0
		for range ticker.C {
			n++
			tick := n
			app.QueueUpdate(func() {
				status.SetText(fmt.Sprintf("tick %d at %s", tick, time.Now().Format("15:04:05")))
				app.MarkDirty()
			})
		}
	}()

	return app.Run()
}
