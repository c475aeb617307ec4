package model

// SlotStats - агрегированная статистика спинов
type SlotStats struct {
	TotalSpins  int
	TotalWins   int
	TotalBet    int
	TotalPayout int
	CurrentRTP  float64
	WindowRTP   float64
	WindowSize  int
}
