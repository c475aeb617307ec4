package slot

import (
	"roguelike_slots/internal/event"
	"roguelike_slots/internal/model"

	"go.uber.org/zap"
)

// Spin запускает вращение. Недопустимый вызов молча игнорируется.
func (s *serv) Spin() {
	if err := s.TrySpin(); err != nil {
		s.logger.Debug("spin ignored", zap.Error(err))
	}
}

// TrySpin то же, что Spin, но сообщает причину отказа
func (s *serv) TrySpin() error {
	if s.isSpinning {
		return ErrAlreadySpinning
	}
	if s.credits < s.betAmount {
		return ErrInsufficientCredits
	}

	s.isSpinning = true
	// Ставка списывается сразу
	s.RemoveCredits(s.betAmount)
	s.bus.Publish(event.SpinStarted, nil)

	for i := 0; i < model.Reels; i++ {
		s.reelValues[i] = s.rnd.IntN(symbols)
	}
	return nil
}

// StopSpin останавливает вращение и начисляет выигрыш
func (s *serv) StopSpin() {
	if err := s.TryStopSpin(); err != nil {
		s.logger.Debug("stop spin ignored", zap.Error(err))
	}
}

func (s *serv) TryStopSpin() error {
	if !s.isSpinning {
		return ErrNotSpinning
	}

	s.isSpinning = false
	s.bus.Publish(event.SpinStopped, model.SpinStopped{Results: s.reelValues})

	if winnings := s.CalculateWinnings(); winnings > 0 {
		s.AddCredits(winnings)
		s.bus.Publish(event.Win, model.Win{Amount: winnings})
	}
	return nil
}

// GetReelValue возвращает символ барабана или -1 для индекса вне [0, 3)
func (s *serv) GetReelValue(index int) int {
	if index >= 0 && index < model.Reels {
		return s.reelValues[index]
	}
	return -1
}
