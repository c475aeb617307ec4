package slot

import (
	"roguelike_slots/internal/event"
	"roguelike_slots/internal/model"
	"roguelike_slots/internal/service"
	"roguelike_slots/pkg/random"

	"go.uber.org/zap"
)

const (
	// Количество символов на барабане (индексы 0..5)
	symbols = 6
	// Стартовый баланс
	initialCredits = 100
	// Стартовая ставка
	initialBet = 1
)

type serv struct {
	credits    int
	betAmount  int
	isSpinning bool
	reelValues [model.Reels]int

	rnd    random.Source
	bus    event.Publisher
	logger *zap.Logger
}

// NewSlotMachine Создать автомат с тремя барабанами.
// nil-зависимости заменяются на значения по умолчанию.
func NewSlotMachine(bus event.Publisher, rnd random.Source, logger *zap.Logger) service.SlotMachine {
	if bus == nil {
		bus = event.Nop()
	}
	if rnd == nil {
		rnd = random.NewDefault()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &serv{
		credits:   initialCredits,
		betAmount: initialBet,
		rnd:       rnd,
		bus:       bus,
		logger:    logger,
	}
}

// Ready вызывается хостом один раз, когда узел добавлен в сцену
func (s *serv) Ready() {
	s.logger.Info("slot machine initialized", zap.Int("credits", s.credits))
}

// Process - покадровый хук. Анимация вращения остаётся на стороне хоста.
func (s *serv) Process(delta float64) {}

func (s *serv) IsSpinning() bool {
	return s.isSpinning
}

// State возвращает копию текущего состояния
func (s *serv) State() model.SlotState {
	return model.SlotState{
		Credits:    s.credits,
		BetAmount:  s.betAmount,
		IsSpinning: s.isSpinning,
		ReelValues: s.reelValues,
	}
}
