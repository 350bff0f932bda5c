package kbbi

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// CorpusWatcher invalidates the Service indices when corpus shard files
// change on disk, so the next resolution rebuilds from the new data.
type CorpusWatcher struct {
	svc     *Service
	watcher *fsnotify.Watcher
	globs   []string
	log     zerolog.Logger
}

// NewCorpusWatcher watches dir for changes to files matching any of globs
// (base-name patterns, e.g. "kbbi_v_part*.json"). Call Start to begin
// receiving events and Close to release the watch.
func NewCorpusWatcher(dir string, globs []string, svc *Service, log zerolog.Logger) (*CorpusWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	return &CorpusWatcher{svc: svc, watcher: w, globs: globs, log: log}, nil
}

// Start consumes filesystem events until ctx is done or the watcher is
// closed. It blocks; run it in its own goroutine.
func (cw *CorpusWatcher) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			if !cw.matches(filepath.Base(ev.Name)) {
				continue
			}
			cw.log.Info().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("corpus file changed, invalidating indices")
			cw.svc.Invalidate()
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.log.Warn().Err(err).Msg("corpus watcher error")
		}
	}
}

// matches reports whether a changed file's base name matches any watched
// shard pattern.
func (cw *CorpusWatcher) matches(base string) bool {
	for _, g := range cw.globs {
		if ok, err := filepath.Match(g, base); err == nil && ok {
			return true
		}
	}
	return false
}

// Close stops the underlying filesystem watcher.
func (cw *CorpusWatcher) Close() error {
	return cw.watcher.Close()
}
