// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// watcher.go - Config hot-reload via fsnotify.
package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the active config file and delivers reloaded configs
// on its channel. Editors replace files with rename+create, so the
// watch covers the config directory rather than the file itself, with
// debouncing to coalesce write bursts.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	updates  chan *Config

	mu      sync.Mutex
	pending bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewWatcher creates a watcher for the active config path.
func NewWatcher(debounce time.Duration) (*Watcher, error) {
	path, err := ActivePath()
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		watcher:  fw,
		path:     path,
		debounce: debounce,
		updates:  make(chan *Config, 1),
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Updates returns the channel on which reloaded configs arrive. Configs
// that fail to load or validate are dropped silently; the previous
// config stays in effect.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Watch starts watching. The config directory must exist.
func (w *Watcher) Watch() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	go w.processEvents()
	return nil
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the stale config remains valid.
		}
	}
}

// scheduleReload coalesces events within the debounce window into one
// reload.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	if w.pending {
		w.mu.Unlock()
		return
	}
	w.pending = true
	w.mu.Unlock()

	time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		w.pending = false
		w.mu.Unlock()

		cfg, err := Load()
		if err != nil {
			return
		}
		select {
		case w.updates <- cfg:
		case <-w.ctx.Done():
		default:
			// A previous update is still unconsumed; replace it.
			select {
			case <-w.updates:
			default:
			}
			select {
			case w.updates <- cfg:
			default:
			}
		}
	})
}
