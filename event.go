package tagmark

// EventKind identifies a lifecycle notification.
type EventKind string

const (
	EventShow    EventKind = "show"
	EventShown   EventKind = "shown"
	EventHide    EventKind = "hide"
	EventHidden  EventKind = "hidden"
	EventChange  EventKind = "change"
	EventChanged EventKind = "changed"
)

// Namespace prefixes every event name.
const Namespace = "tagmark"

// Event is a single lifecycle notification carrying the Tag it concerns and
// the surface it targets. Intent kinds (show, hide, change) are cancelable:
// any handler may call Cancel to veto the pending mutation. Confirm kinds
// (shown, hidden, changed) are not.
type Event struct {
	Kind    EventKind
	Tag     *Tag
	Surface *Surface

	cancelable bool
	canceled   bool
}

// Name returns the namespaced event name, e.g. "tagmark.tag.show".
func (e *Event) Name() string { return Namespace + ".tag." + string(e.Kind) }

// Cancelable reports whether handlers may veto this event.
func (e *Event) Cancelable() bool { return e.cancelable }

// Cancel vetoes the pending mutation. On a non-cancelable event it does
// nothing.
func (e *Event) Cancel() {
	if e.cancelable {
		e.canceled = true
	}
}

// Canceled reports whether any handler vetoed the event.
func (e *Event) Canceled() bool { return e.canceled }

// ===== Handlers =====

type Handler interface {
	HandleEvent(ev *Event)
}

type HandlerFunc func(ev *Event)

func (f HandlerFunc) HandleEvent(ev *Event) { f(ev) }

// ===== Emitter =====

// Emitter dispatches events to subscribed handlers, synchronously and in
// subscription order. An emitter may have a parent: every event dispatched on
// a child also reaches the parent's handlers, so containers chained above a
// Tag observe everything its surfaces emit.
type Emitter struct {
	parent   *Emitter
	handlers map[EventKind][]Handler
}

func NewEmitter() *Emitter {
	return &Emitter{handlers: map[EventKind][]Handler{}}
}

// SetParent chains this emitter to an ancestor bus. Events keep propagating
// upward as long as parents are chained.
func (em *Emitter) SetParent(parent *Emitter) { em.parent = parent }

// On subscribes h to events of the given kind.
func (em *Emitter) On(kind EventKind, h Handler) {
	em.handlers[kind] = append(em.handlers[kind], h)
}

// OnFunc subscribes a plain function to events of the given kind.
func (em *Emitter) OnFunc(kind EventKind, fn func(*Event)) {
	em.On(kind, HandlerFunc(fn))
}

// Emit runs every handler for ev.Kind on this emitter and each ancestor
// before returning, so the veto decision is final when it does. Handler
// slices are snapshotted first: subscriptions changed by a handler take
// effect for later events only. A handler that mutates the same Tag runs the
// nested operation to completion before dispatch resumes (depth-first, last
// write wins).
func (em *Emitter) Emit(ev *Event) {
	for e := em; e != nil; e = e.parent {
		hs := e.handlers[ev.Kind]
		if len(hs) == 0 {
			continue
		}
		snapshot := make([]Handler, len(hs))
		copy(snapshot, hs)
		for _, h := range snapshot {
			h.HandleEvent(ev)
		}
	}
}
