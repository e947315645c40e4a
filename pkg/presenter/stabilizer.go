package presenter

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"

	"github.com/go-drift/conduit/pkg/widget"
)

// stabilizer replaces the callbacks of freshly built widgets with
// long-lived proxies, so that a widget rebuilt with a new closure compares
// equal to the previous render. Each callback slot is identified by the
// presenter, the widget type, the widget key and the slot name; its proxy
// forwards to the callback of the most recent build.
type stabilizer struct {
	namespace uuid.UUID

	mu      sync.Mutex
	latest  map[uuid.UUID]widget.Callback
	proxies map[uuid.UUID]widget.Callback
}

func newStabilizer() *stabilizer {
	return &stabilizer{
		namespace: uuid.New(),
		latest:    make(map[uuid.UUID]widget.Callback),
		proxies:   make(map[uuid.UUID]widget.Callback),
	}
}

// stabilize rewrites the callbacks of every widget in ui. Slots that
// carried a callback in the previous build but not in this one are
// forgotten, so a late invocation of their proxy does nothing.
func (s *stabilizer) stabilize(ui *widget.Builder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[uuid.UUID]struct{}, len(s.latest))
	ui.Update(func(w widget.Widget) widget.Widget {
		key := widget.KeyOf(w)
		prefix := fmt.Sprintf("%s|%T|%v|", widget.TypeName(w), key, key)
		return w.WithCallbacks(func(slot string, cb widget.Callback) widget.Callback {
			id := uuid.NewSHA1(s.namespace, []byte(prefix+slot))
			seen[id] = struct{}{}
			s.latest[id] = cb

			proxy, ok := s.proxies[id]
			if !ok || reflect.TypeOf(proxy) != reflect.TypeOf(cb) {
				proxy = widget.Forward(cb, func() widget.Callback { return s.resolve(id) })
				s.proxies[id] = proxy
			}
			return proxy
		})
	})

	for id := range s.latest {
		if _, ok := seen[id]; !ok {
			delete(s.latest, id)
			delete(s.proxies, id)
		}
	}
}

func (s *stabilizer) resolve(id uuid.UUID) widget.Callback {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest[id]
}

// size returns the number of tracked callback slots.
func (s *stabilizer) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.proxies)
}
