package slot

import (
	"roguelike_slots/internal/event"
	"roguelike_slots/internal/model"

	"go.uber.org/zap"
)

// SetBet меняет ставку, только если 0 < amount <= credits
func (s *serv) SetBet(amount int) {
	if err := s.TrySetBet(amount); err != nil {
		s.logger.Debug("bet ignored", zap.Int("amount", amount), zap.Error(err))
	}
}

func (s *serv) TrySetBet(amount int) error {
	if amount <= 0 || amount > s.credits {
		return ErrInvalidBet
	}
	s.betAmount = amount
	return nil
}

func (s *serv) GetBet() int {
	return s.betAmount
}

// AddCredits - знак amount не проверяется, отрицательное значение уменьшает баланс.
// Баланс при этом не опускается ниже нуля.
func (s *serv) AddCredits(amount int) {
	s.setCredits(s.credits + amount)
}

// RemoveCredits - списание с обрезкой до нуля
func (s *serv) RemoveCredits(amount int) {
	s.setCredits(s.credits - amount)
}

func (s *serv) GetCredits() int {
	return s.credits
}

func (s *serv) setCredits(credits int) {
	if credits < 0 {
		credits = 0
	}
	s.credits = credits
	s.bus.Publish(event.CreditsChanged, model.CreditsChanged{NewAmount: s.credits})
}
