package event

const (
	SpinStarted    = "spin_started"
	SpinStopped    = "spin_stopped"
	Win            = "win"
	CreditsChanged = "credits_changed"
)

// Names - все уведомления автомата в порядке объявления
var Names = []string{SpinStarted, SpinStopped, Win, CreditsChanged}
