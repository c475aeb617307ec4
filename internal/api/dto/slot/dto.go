package slot

type AmountRequest struct {
	Amount int `json:"amount"` // Сумма кредитов или ставка
}

type StateResponse struct {
	Credits    int    `json:"credits"`           // Баланс
	BetAmount  int    `json:"bet_amount"`        // Текущая ставка
	IsSpinning bool   `json:"is_spinning"`       // Идёт ли вращение
	ReelValues [3]int `json:"reel_values"`       // Символы барабанов 0-5
	Ignored    string `json:"ignored,omitempty"` // Почему вызов не изменил состояние
}

type BetResponse struct {
	BetAmount int `json:"bet_amount"`
}

type CreditsResponse struct {
	Credits int `json:"credits"`
}

type ReelResponse struct {
	Index int `json:"index"`
	Value int `json:"value"` // -1, если индекс вне диапазона
}

type WinningsResponse struct {
	Winnings int  `json:"winnings"`
	Win      bool `json:"win"`
}

type PropertiesResponse struct {
	BetAmount int `json:"bet_amount"` // чтение и запись
	Credits   int `json:"credits"`    // только чтение
}

type PropertiesRequest struct {
	BetAmount *int `json:"bet_amount,omitempty"`
	Credits   *int `json:"credits,omitempty"`
}

type StatsResponse struct {
	TotalSpins  int     `json:"total_spins"`
	TotalWins   int     `json:"total_wins"`
	TotalBet    int     `json:"total_bet"`
	TotalPayout int     `json:"total_payout"`
	CurrentRTP  float64 `json:"current_rtp"`
	WindowRTP   float64 `json:"window_rtp"`
	WindowSize  int     `json:"window_size"`
}

type HealthResponse struct {
	Status string  `json:"status"`
	Node   string  `json:"node"`
	Frames uint64  `json:"frames"`
	Uptime float64 `json:"uptime"`
}

// EventMessage - уведомление автомата в потоке /slot/events
type EventMessage struct {
	Event   string `json:"event"`
	Payload any    `json:"payload,omitempty"`
}

type SpinStoppedPayload struct {
	Results [3]int `json:"results"`
}

type WinPayload struct {
	Amount int `json:"amount"`
}

type CreditsChangedPayload struct {
	NewAmount int `json:"new_amount"`
}
