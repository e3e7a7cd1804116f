package picker

// Coordinator event names. Subscribers re-query StartDate/EndDate as needed;
// events carry no payload.
const (
	EventChangeStart = "change:start"
	EventChangeEnd   = "change:end"
)

// DrawEvent is the payload delivered to draw handlers: the granularity the
// cells were built at and the cells themselves, in render order. Handlers may
// mutate cell markers in place before the caller styles them.
type DrawEvent struct {
	Granularity Granularity
	Cells       []*Cell
}

type changeSub struct {
	id int
	fn func()
}

type drawSub struct {
	id int
	fn func(DrawEvent)
}

// notifier fans out a picker's change and draw notifications to subscribers
// in registration order.
type notifier struct {
	nextID int
	change []changeSub
	draw   []drawSub
}

func (n *notifier) OnChange(fn func()) int {
	n.nextID++
	n.change = append(n.change, changeSub{id: n.nextID, fn: fn})
	return n.nextID
}

func (n *notifier) OnDraw(fn func(DrawEvent)) int {
	n.nextID++
	n.draw = append(n.draw, drawSub{id: n.nextID, fn: fn})
	return n.nextID
}

// Off removes the subscription with the given id, whichever kind it is.
func (n *notifier) Off(id int) {
	for i, s := range n.change {
		if s.id == id {
			n.change = append(n.change[:i], n.change[i+1:]...)
			return
		}
	}
	for i, s := range n.draw {
		if s.id == id {
			n.draw = append(n.draw[:i], n.draw[i+1:]...)
			return
		}
	}
}

func (n *notifier) offAll() {
	n.change = nil
	n.draw = nil
}

func (n *notifier) emitChange() {
	for _, s := range append([]changeSub(nil), n.change...) {
		s.fn()
	}
}

func (n *notifier) emitDraw(ev DrawEvent) {
	for _, s := range append([]drawSub(nil), n.draw...) {
		s.fn(ev)
	}
}
