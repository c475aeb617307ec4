package model

// Reels - количество барабанов автомата
const Reels = 3

// SlotState - снимок состояния автомата
type SlotState struct {
	Credits    int
	BetAmount  int
	IsSpinning bool
	ReelValues [Reels]int
}

// Properties - свойства, видимые инструментам хоста.
// BetAmount доступен на чтение и запись, Credits только на чтение.
type Properties struct {
	BetAmount int
	Credits   int
}

// SpinStopped - данные уведомления spin_stopped
type SpinStopped struct {
	Results [Reels]int
}

// Win - данные уведомления win
type Win struct {
	Amount int
}

// CreditsChanged - данные уведомления credits_changed
type CreditsChanged struct {
	NewAmount int
}
