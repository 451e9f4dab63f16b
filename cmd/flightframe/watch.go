package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mobil-koeln/flightframe/internal/output"
)

// runWatch re-renders whenever path is written or replaced
func runWatch(path string, render func() error) error {
	watcher, err := newFileWatcher(path)
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	sigChan := output.SetupSignalHandler()
	screen := output.NewScreen(os.Stdout)
	screen.Begin()
	defer screen.End()

	for {
		screen.Redraw(fmt.Sprintf("Watching %s | Last render: %s | Press Ctrl+C to exit",
			watcher.path, time.Now().Format("15:04:05")))

		if err := render(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		select {
		case <-watcher.changed:
			continue
		case err := <-watcher.errs:
			return fmt.Errorf("watch failed: %w", err)
		case <-sigChan:
			return nil
		}
	}
}

// fileWatcher reports changes to a single file. It watches the parent
// directory so editors that replace the file by rename are still seen.
type fileWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	changed chan struct{}
	errs    chan error
}

func (w *fileWatcher) loop() {
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isChangeTo(ev, w.path) {
				continue
			}
			select {
			case w.changed <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

func (w *fileWatcher) Close() error {
	return w.watcher.Close()
}

func newFileWatcher(path string) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	w := &fileWatcher{
		path:    abs,
		watcher: watcher,
		changed: make(chan struct{}, 1),
		errs:    make(chan error, 1),
	}
	go w.loop()
	return w, nil
}

// isChangeTo reports whether ev writes or recreates path
func isChangeTo(ev fsnotify.Event, path string) bool {
	if filepath.Clean(ev.Name) != path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
