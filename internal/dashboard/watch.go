package dashboard

import "github.com/smileynet/rolodex/internal/contact"

// watcher records store notifications so the model can re-read the store
// after any mutation. It is shared by every copy of a Model and is not safe
// for concurrent use; it lives on the Bubble Tea update goroutine.
type watcher struct {
	dirty  bool
	last   contact.Change
	cancel func()
}

func newWatcher(s *contact.Store) *watcher {
	w := &watcher{}
	w.cancel = s.Subscribe(func(c contact.Change) {
		w.dirty = true
		w.last = c
	})
	return w
}

// take reports whether a change arrived since the last call and resets it.
func (w *watcher) take() bool {
	dirty := w.dirty
	w.dirty = false
	return dirty
}
