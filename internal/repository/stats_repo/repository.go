package stats_repo

import (
	"roguelike_slots/internal/model"
	repoModel "roguelike_slots/internal/repository/stats_repo/model"
	"sync"
)

const defaultWindowSize = 500

// Реализация репозитория статистики спинов. Хранится только в памяти.
type StateRepo struct {
	mtx   sync.RWMutex
	state repoModel.StatsState
}

// NewStatsRepository Конструктор репозитория с пустым состоянием
func NewStatsRepository(windowSize int) *StateRepo {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StateRepo{
		state: repoModel.StatsState{
			SpinWindow: make([]repoModel.SpinResult, 0, windowSize),
			WindowSize: windowSize,
		},
	}
}

// Stats возвращает агрегаты без окна
func (r *StateRepo) Stats() model.SlotStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return model.SlotStats{
		TotalSpins:  r.state.TotalSpins,
		TotalWins:   r.state.TotalWins,
		TotalBet:    r.state.TotalBet,
		TotalPayout: r.state.TotalPayout,
		CurrentRTP:  r.state.CurrentRTP,
		WindowRTP:   r.state.WindowRTP,
		WindowSize:  r.state.WindowSize,
	}
}

// UpdateState Обновление статистики после остановки спина
func (r *StateRepo) UpdateState(bet, payout int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	if payout > 0 {
		r.state.TotalWins++
	}
	r.state.TotalBet += bet
	r.state.TotalPayout += payout
	if r.state.TotalBet > 0 {
		r.state.CurrentRTP = float64(r.state.TotalPayout) / float64(r.state.TotalBet) * 100
	}

	// Добавляем спин в окно
	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinResult{
		Bet:    bet,
		Payout: payout,
	})

	// Поддерживаем размер окна
	if len(r.state.SpinWindow) > r.state.WindowSize {
		r.state.SpinWindow = r.state.SpinWindow[1:]
	}

	var windowBet, windowPayout int
	for _, spin := range r.state.SpinWindow {
		windowBet += spin.Bet
		windowPayout += spin.Payout
	}

	if windowBet > 0 {
		r.state.WindowRTP = float64(windowPayout) / float64(windowBet) * 100
	} else {
		r.state.WindowRTP = 0
	}
}
