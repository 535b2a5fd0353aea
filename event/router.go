package event

// Handler applies the side effect of one event
type Handler func(ev Event)

// Router dispatches events to per-type handlers
//
// Architecture:
//   - Single-threaded dispatch
//   - Multiple handlers can register for the same type
//   - Handlers run in registration order
type Router struct {
	handlers map[Type][]Handler
	any      []Handler
}

func NewRouter() *Router {
	return &Router{
		handlers: make(map[Type][]Handler),
	}
}

// On registers h for the given types
func (r *Router) On(h Handler, types ...Type) *Router {
	for _, t := range types {
		r.handlers[t] = append(r.handlers[t], h)
	}
	return r
}

// OnAny registers h for every event, after the typed handlers
func (r *Router) OnAny(h Handler) *Router {
	r.any = append(r.any, h)
	return r
}

// Dispatch routes ev to its handlers
func (r *Router) Dispatch(ev Event) {
	for _, h := range r.handlers[ev.Type] {
		h(ev)
	}
	for _, h := range r.any {
		h(ev)
	}
}

// HandlerCount returns the number of typed handlers registered for t
func (r *Router) HandlerCount(t Type) int {
	return len(r.handlers[t])
}
