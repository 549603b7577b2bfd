package config

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/rackaracka123/terraforming-mars-sub000/internal/watcher"
)

// Watch starts watching the config file at path for changes. An empty
// path falls back to DefaultPath(). It calls onChange with the new
// config when a change is detected and returns a close function to
// stop watching.
func Watch(path string, onChange func(*Config)) (func(), error) {
	if path == "" {
		path = DefaultPath()
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	path = absPath

	// Debounce so a single editor save does not trigger several reloads
	w, err := watcher.New(func(events []watcher.Event) {
		cfg, err := LoadOrDefault(path)
		if err != nil {
			log.Printf("Error reloading config: %v", err)
			return
		}
		if onChange != nil {
			onChange(cfg)
		}
	}, watcher.WithDebounceDuration(500*time.Millisecond))
	if err != nil {
		return nil, fmt.Errorf("creating config watcher: %w", err)
	}

	// Watch the file itself, or its directory while the file does not
	// exist yet.
	if err := w.Add(path); err != nil {
		dir := filepath.Dir(path)
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("watching config path %s: %w", path, err)
		}
	}

	return func() {
		w.Close()
	}, nil
}
