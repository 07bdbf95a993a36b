package eventbus

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"refstudio/internal/logger"
)

var (
	ErrClosed     = errors.New("event bus closed")
	ErrBufferFull = errors.New("event bus buffer full")
)

// Event is a named notification with no payload. The name is the exact
// string subscribers registered for.
type Event struct {
	ID        string
	Name      string
	Timestamp time.Time
}

type Handler interface {
	Handle(event Event)
	GetID() string
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc struct {
	ID string
	Fn func(Event)
}

func (h HandlerFunc) Handle(event Event) { h.Fn(event) }
func (h HandlerFunc) GetID() string      { return h.ID }

// Bus delivers events to subscribers on a single worker goroutine in publish
// order. Publishing never blocks the caller.
type Bus struct {
	subscribers map[string][]Handler
	mu          sync.RWMutex
	buffer      chan Event
	closed      bool
	closeMu     sync.RWMutex
	wg          sync.WaitGroup
	logger      logger.Logger
}

func NewBus(bufferSize int, log logger.Logger) *Bus {
	bus := &Bus{
		subscribers: make(map[string][]Handler),
		buffer:      make(chan Event, bufferSize),
		logger:      log,
	}

	bus.startWorker()
	return bus
}

// Publish queues a named event and returns without waiting for handlers.
func (b *Bus) Publish(name string) error {
	b.closeMu.RLock()
	defer b.closeMu.RUnlock()

	if b.closed {
		return ErrClosed
	}

	event := Event{
		ID:        uuid.NewString(),
		Name:      name,
		Timestamp: time.Now(),
	}

	select {
	case b.buffer <- event:
		return nil
	default:
		return ErrBufferFull
	}
}

func (b *Bus) Subscribe(name string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[name] = append(b.subscribers[name], handler)
}

func (b *Bus) Unsubscribe(name string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.subscribers[name]
	for i, h := range handlers {
		if h.GetID() == handler.GetID() {
			b.subscribers[name] = append(handlers[:i:i], handlers[i+1:]...)
			break
		}
	}
}

// Shutdown stops accepting events, drains the queue and waits for the worker.
func (b *Bus) Shutdown() {
	b.closeMu.Lock()
	if b.closed {
		b.closeMu.Unlock()
		return
	}
	b.closed = true
	close(b.buffer)
	b.closeMu.Unlock()

	b.wg.Wait()
}

func (b *Bus) startWorker() {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		for event := range b.buffer {
			b.dispatchEvent(event)
		}
	}()
}

func (b *Bus) dispatchEvent(event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.subscribers[event.Name]))
	copy(handlers, b.subscribers[event.Name])
	b.mu.RUnlock()

	if len(handlers) == 0 {
		b.logger.Debug("EventBus", "event has no subscribers", map[string]interface{}{
			"event": event.Name,
		})
		return
	}

	for _, handler := range handlers {
		b.invoke(handler, event)
	}
}

func (b *Bus) invoke(h Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Warning("EventBus", "handler panicked", map[string]interface{}{
				"event":   event.Name,
				"handler": h.GetID(),
				"panic":   r,
			})
		}
	}()
	h.Handle(event)
}
