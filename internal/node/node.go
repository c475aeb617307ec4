package node

import (
	"context"
	"errors"
	"roguelike_slots/internal/model"
	"roguelike_slots/internal/service"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	PropertyBetAmount = "bet_amount"
	PropertyCredits   = "credits"
)

var (
	ErrReadOnlyProperty = errors.New("property is read-only")
	ErrUnknownProperty  = errors.New("unknown property")
)

// Node - узел хоста, владеющий автоматом.
// Автомат не потокобезопасен, поэтому все вызовы хоста идут через мьютекс узла,
// как будто они выполняются в одном игровом потоке.
type Node struct {
	id      uuid.UUID
	mtx     sync.Mutex
	machine service.SlotMachine
	logger  *zap.Logger

	ready   bool
	frames  uint64
	elapsed float64
}

func New(machine service.SlotMachine, logger *zap.Logger) *Node {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.New()
	return &Node{
		id:      id,
		machine: machine,
		logger:  logger.With(zap.String("node", id.String())),
	}
}

func (n *Node) ID() uuid.UUID {
	return n.id
}

// Ready вызывает хук автомата один раз за время жизни узла
func (n *Node) Ready() {
	n.mtx.Lock()
	defer n.mtx.Unlock()

	if n.ready {
		return
	}
	n.ready = true
	n.machine.Ready()
}

// Process - один кадр обновления
func (n *Node) Process(delta float64) {
	n.mtx.Lock()
	defer n.mtx.Unlock()

	n.frames++
	n.elapsed += delta
	n.machine.Process(delta)
}

// Run вызывает Process с заданным шагом, пока не отменён ctx
func (n *Node) Run(ctx context.Context, frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			n.logger.Debug("frame loop stopped", zap.Uint64("frames", n.Frames()))
			return
		case now := <-ticker.C:
			n.Process(now.Sub(last).Seconds())
			last = now
		}
	}
}

// Frames - сколько кадров обработано
func (n *Node) Frames() uint64 {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	return n.frames
}

// Uptime - суммарное время кадров в секундах
func (n *Node) Uptime() float64 {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	return n.elapsed
}

// Do выполняет fn с эксклюзивным доступом к автомату.
// Уведомления, вызванные внутри fn, доставляются в том же вызове.
func (n *Node) Do(fn func(m service.SlotMachine)) {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	fn(n.machine)
}

// State возвращает снимок состояния автомата
func (n *Node) State() model.SlotState {
	var st model.SlotState
	n.Do(func(m service.SlotMachine) {
		st = m.State()
	})
	return st
}

// Properties - свойства для инспектора хоста
func (n *Node) Properties() model.Properties {
	var p model.Properties
	n.Do(func(m service.SlotMachine) {
		p = model.Properties{
			BetAmount: m.GetBet(),
			Credits:   m.GetCredits(),
		}
	})
	return p
}

// SetProperty записывает свойство через сеттер автомата.
// bet_amount проходит через SetBet и может быть молча отклонён, credits только для чтения.
func (n *Node) SetProperty(name string, value int) error {
	switch name {
	case PropertyBetAmount:
		n.Do(func(m service.SlotMachine) {
			m.SetBet(value)
		})
		return nil
	case PropertyCredits:
		return ErrReadOnlyProperty
	default:
		return ErrUnknownProperty
	}
}
