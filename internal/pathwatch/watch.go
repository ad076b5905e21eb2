// Package pathwatch provides file change notifications.
package pathwatch

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// A Watcher sends a notification on the channel returned by Changes whenever the file at a
// path is created, written, replaced or removed. Notifications that the receiver hasn't
// picked up yet are merged into one.
// The specific nature of the change is not reported; it is up to the user to determine
// what happened.
//
// Any errors that the Watcher encounters while monitoring the path are delivered on the
// channel returned by Errors.
type Watcher struct {
	path    string
	fw      *fsnotify.Watcher
	changes chan struct{}
	errors  chan error
	done    chan struct{}
}

// Watch starts watching the file at path. The directory containing it must exist; the
// file itself need not.
// When no longer in use, the user should call Close to release resources associated with it.
func Watch(path string) (*Watcher, error) {
	path = filepath.Clean(path)
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "watch "+path)
	}
	// Watch the directory rather than the file, since many programs save files by
	// replacing them.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, errors.Wrap(err, "watch "+path)
	}
	w := &Watcher{path: path, fw: fw, changes: make(chan struct{}, 1), errors: make(chan error, 10), done: make(chan struct{})}
	go w.run()
	return w, nil
}

// Changes returns the channel on which change notifications are delivered.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// Errors returns a channel on which the Watcher delivers errors it encounters.
func (w *Watcher) Errors() <-chan error { return w.errors }

// Close stops delivering change notifications and releases all resources
// associated with the watcher.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op == fsnotify.Chmod {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}
