package event

// Source is a lazily resumable event sequence
// Each Next advances the underlying algorithm by exactly one event; ok is
// false once the sequence is exhausted and stays false afterwards
type Source interface {
	Next() (ev Event, ok bool)
}

// SourceFunc adapts a function to Source
type SourceFunc func() (Event, bool)

func (f SourceFunc) Next() (Event, bool) {
	return f()
}

// Slice returns a Source that yields evs in order
func Slice(evs []Event) Source {
	i := 0
	return SourceFunc(func() (Event, bool) {
		if i >= len(evs) {
			return Event{}, false
		}
		ev := evs[i]
		i++
		return ev, true
	})
}

// Drain runs src to exhaustion and returns every event
func Drain(src Source) []Event {
	var out []Event
	for {
		ev, ok := src.Next()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}
