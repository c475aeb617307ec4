package service

import (
	"roguelike_slots/internal/event"
	"roguelike_slots/internal/model"
)

// SlotMachine - поверхность методов автомата, которую вызывает хост
type SlotMachine interface {
	// Управление
	Spin()
	TrySpin() error
	StopSpin()
	TryStopSpin() error
	SetBet(amount int)
	TrySetBet(amount int) error
	GetBet() int

	// Кредиты
	AddCredits(amount int)
	RemoveCredits(amount int)
	GetCredits() int

	// Барабаны и выигрыш
	GetReelValue(index int) int
	CalculateWinnings() int
	CheckWin() bool

	IsSpinning() bool
	State() model.SlotState

	// Хуки хоста
	Ready()
	Process(delta float64)
}

type StatsService interface {
	Subscribe(bus *event.Bus)
	Snapshot() model.SlotStats
}
