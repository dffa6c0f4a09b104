package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the burst of events an editor save produces
const reloadDebounce = 200 * time.Millisecond

// Watch reloads path whenever it changes and passes the result to onChange
// until ctx is done. The parent directory is watched so atomic renames by
// editors are seen. onChange runs on the watcher goroutine; a reload that
// fails to parse or validate is reported with a nil config.
func Watch(ctx context.Context, path string, onChange func(*Config, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	go watchLoop(ctx, w, abs, onChange)
	return nil
}

func watchLoop(ctx context.Context, w *fsnotify.Watcher, path string, onChange func(*Config, error)) {
	defer w.Close()

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDebounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			cfg, err := Load(path)
			onChange(cfg, err)

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			onChange(nil, fmt.Errorf("watch %s: %w", path, err))
		}
	}
}
