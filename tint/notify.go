package tint

// Listener is invoked synchronously on every broadcast. Listeners are
// expected to be cheap: typically they mark a view dirty or push into a
// channel, and re-resolve on the next frame.
type Listener func()

// Subscription identifies a registered listener so it can be removed.
type Subscription uint64

// Notifier delivers change notifications to listeners in subscription
// order, once per Broadcast call, with no coalescing. It is embedded in
// Store but usable on its own.
//
// Like the rest of the engine, a Notifier is not internally locked; all
// calls must come from the same goroutine that mutates the Store.
type Notifier struct {
	nextID    Subscription
	listeners []subscriber
}

type subscriber struct {
	id Subscription
	fn Listener
}

// Subscribe registers a listener and returns its handle. A listener added
// during a broadcast does not receive that broadcast.
func (n *Notifier) Subscribe(fn Listener) Subscription {
	n.nextID++
	n.listeners = append(n.listeners, subscriber{id: n.nextID, fn: fn})
	return n.nextID
}

// Unsubscribe removes the listener with the given handle. Unknown handles
// are ignored.
func (n *Notifier) Unsubscribe(sub Subscription) {
	for i, s := range n.listeners {
		if s.id == sub {
			n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
			return
		}
	}
}

// Broadcast invokes every registered listener, in subscription order.
// Delivery iterates a snapshot, so subscribing or unsubscribing from
// inside a listener takes effect on the next broadcast.
func (n *Notifier) Broadcast() {
	snapshot := make([]subscriber, len(n.listeners))
	copy(snapshot, n.listeners)
	for _, s := range snapshot {
		s.fn()
	}
}

// Len returns the number of registered listeners.
func (n *Notifier) Len() int { return len(n.listeners) }
