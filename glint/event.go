package glint

import "errors"

// Stop terminates the event loop without an error when returned from a
// Handler.
var Stop = errors.New("glint: stop")

// Handler receives every lifecycle event of a Window, in order.
type Handler func(Event) error

// Event is one of the lifecycle events delivered by Window.Run:
// Created, Resized, Redraw or CloseRequested.
type Event interface {
	isEvent()
}

// Created is delivered exactly once, before any other event, as soon
// as the window is usable. It carries the initial framebuffer size.
type Created struct {
	Width, Height uint32
}

// Resized is delivered after the framebuffer size changed. Either
// dimension may be zero while the window is minimized.
type Resized struct {
	Width, Height uint32
}

// Redraw asks the handler to produce exactly one new frame.
type Redraw struct{}

// CloseRequested is delivered when the user asked to close the window.
type CloseRequested struct{}

func (Created) isEvent()        {}
func (Resized) isEvent()        {}
func (Redraw) isEvent()         {}
func (CloseRequested) isEvent() {}

// eventQueue collects events between two handler dispatches. GLFW
// callbacks push into it while PollEvents runs, drain hands them to
// the handler afterwards. Everything happens on the main thread.
type eventQueue struct {
	events []Event
}

func (q *eventQueue) push(ev Event) {
	q.events = append(q.events, ev)
}

// drain delivers all queued events in order. Delivery stops at the
// first handler error; events that were not delivered stay queued.
func (q *eventQueue) drain(handler Handler) error {
	for len(q.events) > 0 {
		ev := q.events[0]
		q.events = q.events[1:]

		if err := handler(ev); err != nil {
			return err
		}
	}

	return nil
}
