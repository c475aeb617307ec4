package model

// Состояние статистики автомата
type StatsState struct {
	TotalSpins  int // Сколько всего спинов сделано
	TotalWins   int // Сколько спинов закончились выигрышем
	TotalBet    int // Сумма всех ставок
	TotalPayout int // Сумма всех выплат

	CurrentRTP float64 // Текущий RTP = (TotalPayout/TotalBet)*100

	SpinWindow []SpinResult // Окно последних спинов
	WindowRTP  float64      // RTP в окне последних спинов
	WindowSize int          // Размер окна
}

// Результат спина для окна
type SpinResult struct {
	Bet    int
	Payout int
}
