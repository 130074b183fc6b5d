package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"yulfmt/internal/dialect"
)

// Watch formats files under paths whenever they are created or written and
// passes each result to onResult. It blocks until ctx is cancelled.
func Watch(ctx context.Context, paths []string, opts Options, onResult func(Result)) error {
	d, err := dialect.Resolve(opts.Version)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Files named explicitly are watched through their directory; trees
	// holds the directories whose every .yul file is formatted.
	explicit := make(map[string]struct{})
	trees := make(map[string]struct{})
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			explicit[filepath.Clean(p)] = struct{}{}
			if err := w.Add(filepath.Dir(p)); err != nil {
				return err
			}
			continue
		}
		if err := addTree(w, p, trees); err != nil {
			return err
		}
	}

	wanted := func(path string) bool {
		path = filepath.Clean(path)
		if _, ok := explicit[path]; ok {
			return true
		}
		_, inTree := trees[filepath.Dir(path)]
		return inTree && filepath.Ext(path) == SourceExt
	}

	log.Infof("watching %d paths", len(paths))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addTree(w, ev.Name, trees); err != nil {
						log.Warningf("watch %s: %s", ev.Name, err)
					}
					continue
				}
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 || !wanted(ev.Name) {
				continue
			}
			log.Debugf("change detected: %s", ev.Name)
			onResult(formatFile(ev.Name, d, opts))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Errorf("watcher: %s", err)
		}
	}
}

func addTree(w *fsnotify.Watcher, root string, trees map[string]struct{}) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && len(d.Name()) > 1 && d.Name()[0] == '.' {
			return filepath.SkipDir
		}
		trees[filepath.Clean(path)] = struct{}{}
		return w.Add(path)
	})
}
