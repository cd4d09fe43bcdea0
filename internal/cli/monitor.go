package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/keymapd/internal/config"
	"github.com/dshills/keymapd/internal/config/notify"
	"github.com/dshills/keymapd/internal/config/watcher"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor [config...]",
	Short: "Watch configuration files and recompile on change",
	Long: `Compile the given configuration files (or every *.conf file in the
settings config_dir) and recompile whenever one changes. Each successful
recompile publishes a fresh snapshot; the previous one is discarded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := args
		if len(paths) == 0 {
			var err error
			paths, err = filepath.Glob(filepath.Join(settings.ConfigDir, "*.conf"))
			if err != nil {
				return err
			}
		}
		if len(paths) == 0 {
			return fmt.Errorf("no configuration files to monitor")
		}

		notifier := notify.New()
		notifier.Subscribe(func(r notify.Reload) {
			if r.Err != nil {
				log.Errorf("%s: reload failed, keeping previous snapshot: %v", r.Path, r.Err)
				return
			}
			for _, w := range r.Config.Warnings {
				log.Warnf("%s", w)
			}
			log.Infof("%s: loaded snapshot %s (%d layers)", r.Path, r.Config.ID, len(r.Config.Layers))
		})

		reload := func(path string) {
			cfg, err := config.Parse(path)
			notifier.Publish(notify.Reload{Path: path, Config: cfg, Err: err})
		}

		w, err := watcher.New()
		if err != nil {
			return err
		}
		defer w.Stop()

		w.SetDebounce(time.Duration(settings.DebounceMS) * time.Millisecond)
		w.OnChange(func(ev watcher.Event) {
			log.Debugf("%s: %s event", ev.Path, ev.Op)
			if ev.Op == watcher.OpRemove {
				return
			}
			reload(ev.Path)
		})

		for _, path := range paths {
			if err := w.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
			reload(path)
		}
		w.Start()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		return nil
	},
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}
