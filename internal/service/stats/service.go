package stats

import (
	"roguelike_slots/internal/event"
	"roguelike_slots/internal/model"
	"roguelike_slots/internal/repository"
	"roguelike_slots/internal/service"
)

// meter - часть автомата, из которой берутся ставка и выигрыш
type meter interface {
	GetBet() int
	CalculateWinnings() int
}

type serv struct {
	repo    repository.StatsRepository
	machine meter

	pendingBet int
	spinning   bool
}

// NewStatsService Сервис статистики, который слушает уведомления автомата
func NewStatsService(repo repository.StatsRepository, machine meter) service.StatsService {
	return &serv{
		repo:    repo,
		machine: machine,
	}
}

// Subscribe подписывает сервис на spin_started и spin_stopped.
// Ставка фиксируется на старте (она уже списана), выигрыш считается
// на остановке до начисления, по тем же барабанам и ставке, что и у автомата.
func (s *serv) Subscribe(bus *event.Bus) {
	bus.Subscribe(event.SpinStarted, func(any) {
		s.pendingBet = s.machine.GetBet()
		s.spinning = true
	})
	bus.Subscribe(event.SpinStopped, func(any) {
		if !s.spinning {
			return
		}
		s.spinning = false
		s.repo.UpdateState(s.pendingBet, s.machine.CalculateWinnings())
	})
}

func (s *serv) Snapshot() model.SlotStats {
	return s.repo.Stats()
}
