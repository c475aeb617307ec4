package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"roguelike_slots/internal/converter"
	"roguelike_slots/internal/event"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	// Размер очереди исходящих сообщений одного клиента
	sendBuffer = 64
	writeWait  = 5 * time.Second
)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub рассылает уведомления автомата всем подключённым клиентам.
// Рассылка не блокирует вызывающего: медленный клиент теряет сообщения.
type Hub struct {
	clients  map[uuid.UUID]*client
	mu       sync.Mutex
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients: make(map[uuid.UUID]*client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger,
	}
}

// Subscribe подписывает хаб на все уведомления шины
func (h *Hub) Subscribe(bus *event.Bus) {
	for _, name := range event.Names {
		name := name
		bus.Subscribe(name, func(payload any) {
			data, err := json.Marshal(converter.ToEventMessage(name, payload))
			if err != nil {
				h.logger.Error("marshal event", zap.String("event", name), zap.Error(err))
				return
			}
			h.Broadcast(data)
		})
	}
}

func (h *Hub) Broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.logger.Warn("client queue is full, message dropped", zap.String("client", id.String()))
		}
	}
}

// Clients - количество подключённых клиентов
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP поднимает websocket и держит соединение, пока клиент не отключится
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	id := uuid.New()
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	h.clients[id] = c
	h.mu.Unlock()
	h.logger.Debug("client connected", zap.String("client", id.String()))

	go h.writePump(c)

	defer func() {
		h.mu.Lock()
		delete(h.clients, id)
		h.mu.Unlock()
		close(c.send)
		h.logger.Debug("client disconnected", zap.String("client", id.String()))
	}()

	// Входящие сообщения не нужны, читаем только чтобы заметить закрытие
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()

	for data := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
