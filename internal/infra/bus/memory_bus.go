// Package bus is the in-process implementation of the change bus.
package bus

import (
	"context"
	"log/slog"
	"sync"

	"subsplit/config"
	deliverycontext "subsplit/internal/delivery/context"
	"subsplit/internal/domain/service"

	"go.uber.org/fx"
)

const defaultMailboxSize = 64

// Params holds dependencies for the bus, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// memoryBus fans events out to listeners. Every listener owns a buffered
// mailbox and a goroutine draining it.
type memoryBus struct {
	mu        sync.RWMutex
	listeners map[*listener]struct{}
	closed    bool

	mailboxSize int
	logger      *slog.Logger

	done chan struct{}
	wg   sync.WaitGroup
}

type listener struct {
	bus     *memoryBus
	topic   service.Topic
	filter  service.ChangeFilter
	handler service.ChangeHandler
	mailbox chan service.ChangeEvent

	quit      chan struct{}
	closeOnce sync.Once
}

// New creates the bus and closes it when the application stops.
func New(params Params) service.ChangeBus {
	size := defaultMailboxSize
	if params.Config.Bus != nil && params.Config.Bus.MailboxSize > 0 {
		size = params.Config.Bus.MailboxSize
	}

	b := NewMemoryBus(size, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing change bus")

			return b.Close()
		},
	})

	return b
}

// NewMemoryBus builds a bus whose listeners buffer up to mailboxSize events
// before publishing falls back to a goroutine per event.
func NewMemoryBus(mailboxSize int, logger *slog.Logger) service.ChangeBus {
	if mailboxSize <= 0 {
		mailboxSize = defaultMailboxSize
	}

	return &memoryBus{
		listeners:   make(map[*listener]struct{}),
		mailboxSize: mailboxSize,
		logger:      logger,
		done:        make(chan struct{}),
	}
}

// Publish hands events to every matching listener and returns immediately.
func (b *memoryBus) Publish(events ...service.ChangeEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for _, event := range events {
		for l := range b.listeners {
			if !l.accepts(event) {
				continue
			}

			select {
			case l.mailbox <- event:
			default:
				// Mailbox full: deliver from a goroutine so the publisher never waits.
				go l.deliverLate(event)
			}
		}
	}
}

// Subscribe registers handler for topic. A nil filter accepts every event of the topic.
func (b *memoryBus) Subscribe(topic service.Topic, filter service.ChangeFilter, handler service.ChangeHandler) service.Registration {
	l := &listener{
		bus:     b,
		topic:   topic,
		filter:  filter,
		handler: handler,
		mailbox: make(chan service.ChangeEvent, b.mailboxSize),
		quit:    make(chan struct{}),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		l.closeOnce.Do(func() { close(l.quit) })

		return l
	}

	b.listeners[l] = struct{}{}
	b.wg.Add(1)
	go l.run()

	return l
}

// Close stops every listener and waits for in-flight handlers to return.
func (b *memoryBus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()

		return nil
	}
	b.closed = true
	close(b.done)

	listeners := make([]*listener, 0, len(b.listeners))
	for l := range b.listeners {
		listeners = append(listeners, l)
	}
	b.listeners = make(map[*listener]struct{})
	b.mu.Unlock()

	for _, l := range listeners {
		l.stop()
	}

	b.wg.Wait()

	return nil
}

func (l *listener) accepts(event service.ChangeEvent) bool {
	if l.topic != service.TopicAll && l.topic != event.Topic {
		return false
	}

	return l.filter == nil || l.filter(event)
}

func (l *listener) run() {
	defer l.bus.wg.Done()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for {
		select {
		case <-l.quit:
			return
		case event := <-l.mailbox:
			l.handle(ctx, event)
		}
	}
}

func (l *listener) handle(ctx context.Context, event service.ChangeEvent) {
	if event.RequestID != "" {
		ctx = deliverycontext.WithRequestID(ctx, event.RequestID)
	}

	defer func() {
		if r := recover(); r != nil {
			l.bus.logger.Error("Change listener panicked",
				slog.String("topic", string(event.Topic)),
				slog.String("row_id", event.RowID.String()),
				slog.Any("panic", r),
			)
		}
	}()

	l.handler(ctx, event)
}

func (l *listener) deliverLate(event service.ChangeEvent) {
	select {
	case l.mailbox <- event:
	case <-l.quit:
	case <-l.bus.done:
	}
}

func (l *listener) stop() {
	l.closeOnce.Do(func() { close(l.quit) })
}

// Close unregisters the listener. Events still queued are dropped.
func (l *listener) Close() {
	l.bus.mu.Lock()
	delete(l.bus.listeners, l)
	l.bus.mu.Unlock()

	l.stop()
}
