package event

import "sync"

type Handler func(payload any)

// Publisher - то, что нужно автомату для отправки уведомлений
type Publisher interface {
	Publish(event string, payload any)
}

// Bus вызывает обработчики синхронно, в порядке подписки.
type Bus struct {
	handlers map[string][]Handler
	mu       sync.RWMutex
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
	}
}

func (b *Bus) Subscribe(event string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[event] = append(b.handlers[event], handler)
}

func (b *Bus) Publish(event string, payload any) {
	// Копируем список, чтобы обработчик мог подписываться во время рассылки
	b.mu.RLock()
	hs := append([]Handler(nil), b.handlers[event]...)
	b.mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}

type nop struct{}

func (nop) Publish(string, any) {}

// Nop возвращает Publisher, который ничего не делает
func Nop() Publisher {
	return nop{}
}
