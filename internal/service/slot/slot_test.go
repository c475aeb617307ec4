package slot

import (
	"errors"
	"testing"

	"roguelike_slots/internal/event"
	"roguelike_slots/internal/model"
	"roguelike_slots/pkg/random"
)

type notification struct {
	name    string
	payload any
}

func newTestMachine(t *testing.T, draws ...int) (*serv, *[]notification) {
	t.Helper()

	bus := event.NewBus()
	var got []notification
	for _, name := range event.Names {
		name := name
		bus.Subscribe(name, func(payload any) {
			got = append(got, notification{name: name, payload: payload})
		})
	}

	m := NewSlotMachine(bus, random.NewScripted(draws...), nil).(*serv)
	return m, &got
}

func TestNewSlotMachine_InitialState(t *testing.T) {
	m, _ := newTestMachine(t)

	want := model.SlotState{Credits: 100, BetAmount: 1}
	if got := m.State(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSpin_DeductsBetAndDraws(t *testing.T) {
	m, got := newTestMachine(t, 4, 1, 5)

	m.Spin()

	if m.GetCredits() != 99 {
		t.Fatalf("expected 99 credits, got %d", m.GetCredits())
	}
	if !m.IsSpinning() {
		t.Fatalf("expected spinning after spin")
	}
	for i, want := range []int{4, 1, 5} {
		if v := m.GetReelValue(i); v != want {
			t.Errorf("reel %d: expected %d, got %d", i, want, v)
		}
	}

	// credits_changed приходит до spin_started
	if len(*got) != 2 {
		t.Fatalf("expected 2 notifications, got %v", *got)
	}
	if (*got)[0].name != event.CreditsChanged || (*got)[0].payload != (model.CreditsChanged{NewAmount: 99}) {
		t.Errorf("unexpected first notification: %+v", (*got)[0])
	}
	if (*got)[1].name != event.SpinStarted || (*got)[1].payload != nil {
		t.Errorf("unexpected second notification: %+v", (*got)[1])
	}
}

func TestSpin_IgnoredWhileSpinning(t *testing.T) {
	m, got := newTestMachine(t, 1, 2, 3, 5, 5, 5)
	m.Spin()
	before := m.State()
	notified := len(*got)

	if err := m.TrySpin(); !errors.Is(err, ErrAlreadySpinning) {
		t.Fatalf("expected ErrAlreadySpinning, got %v", err)
	}
	m.Spin()

	if m.State() != before {
		t.Fatalf("state changed: %+v -> %+v", before, m.State())
	}
	if len(*got) != notified {
		t.Fatalf("unexpected notifications: %v", (*got)[notified:])
	}
}

func TestSpin_IgnoredWithoutCredits(t *testing.T) {
	m, got := newTestMachine(t)
	m.SetBet(50)
	m.RemoveCredits(60)
	*got = nil
	before := m.State()

	if err := m.TrySpin(); !errors.Is(err, ErrInsufficientCredits) {
		t.Fatalf("expected ErrInsufficientCredits, got %v", err)
	}
	m.Spin()

	if m.State() != before {
		t.Fatalf("state changed: %+v -> %+v", before, m.State())
	}
	if len(*got) != 0 {
		t.Fatalf("expected no notifications, got %v", *got)
	}
}

func TestSpin_ExactCreditsAllowed(t *testing.T) {
	m, _ := newTestMachine(t)
	m.SetBet(100)

	if err := m.TrySpin(); err != nil {
		t.Fatalf("expected spin with credits == bet, got %v", err)
	}
	if m.GetCredits() != 0 {
		t.Fatalf("expected 0 credits, got %d", m.GetCredits())
	}
}

func TestStopSpin_ThreeOfAKindScenario(t *testing.T) {
	m, got := newTestMachine(t, 3, 3, 3)

	m.Spin()
	if m.GetCredits() != 99 || !m.IsSpinning() {
		t.Fatalf("unexpected state after spin: %+v", m.State())
	}
	*got = nil

	if w := m.CalculateWinnings(); w != 40 {
		t.Fatalf("expected winnings 40, got %d", w)
	}

	m.StopSpin()

	if m.IsSpinning() {
		t.Fatalf("expected idle after stop")
	}
	if m.GetCredits() != 139 {
		t.Fatalf("expected 139 credits, got %d", m.GetCredits())
	}

	want := []notification{
		{event.SpinStopped, model.SpinStopped{Results: [3]int{3, 3, 3}}},
		{event.CreditsChanged, model.CreditsChanged{NewAmount: 139}},
		{event.Win, model.Win{Amount: 40}},
	}
	if len(*got) != len(want) {
		t.Fatalf("expected %d notifications, got %v", len(want), *got)
	}
	for i := range want {
		if (*got)[i] != want[i] {
			t.Errorf("notification %d: expected %+v, got %+v", i, want[i], (*got)[i])
		}
	}
}

func TestStopSpin_NoWin(t *testing.T) {
	m, got := newTestMachine(t, 1, 2, 3)
	m.Spin()
	*got = nil

	m.StopSpin()

	if m.GetCredits() != 99 {
		t.Fatalf("expected 99 credits, got %d", m.GetCredits())
	}
	if len(*got) != 1 || (*got)[0].name != event.SpinStopped {
		t.Fatalf("expected only spin_stopped, got %v", *got)
	}
}

func TestStopSpin_Idempotent(t *testing.T) {
	m, got := newTestMachine(t, 2, 2, 5)
	m.Spin()
	m.StopSpin()
	credits := m.GetCredits()
	notified := len(*got)

	if err := m.TryStopSpin(); !errors.Is(err, ErrNotSpinning) {
		t.Fatalf("expected ErrNotSpinning, got %v", err)
	}
	m.StopSpin()

	if m.GetCredits() != credits {
		t.Fatalf("credits changed on second stop: %d -> %d", credits, m.GetCredits())
	}
	if len(*got) != notified {
		t.Fatalf("unexpected notifications: %v", (*got)[notified:])
	}
}

func TestStopSpin_WhileIdle(t *testing.T) {
	m, got := newTestMachine(t)
	m.StopSpin()

	if m.State() != (model.SlotState{Credits: 100, BetAmount: 1}) {
		t.Fatalf("state changed: %+v", m.State())
	}
	if len(*got) != 0 {
		t.Fatalf("expected no notifications, got %v", *got)
	}
}

func TestSpin_Cycles(t *testing.T) {
	m, _ := newTestMachine(t, 0, 1, 2)
	for i := 0; i < 5; i++ {
		m.Spin()
		m.StopSpin()
	}
	if m.GetCredits() != 95 {
		t.Fatalf("expected 95 credits after 5 losing spins, got %d", m.GetCredits())
	}
}

func TestSetBet(t *testing.T) {
	tests := []struct {
		name   string
		amount int
		want   int
		err    error
	}{
		{"valid", 10, 10, nil},
		{"equal to credits", 100, 100, nil},
		{"zero", 0, 1, ErrInvalidBet},
		{"negative", -5, 1, ErrInvalidBet},
		{"above credits", 101, 1, ErrInvalidBet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, got := newTestMachine(t)

			if err := m.TrySetBet(tt.amount); !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if m.GetBet() != tt.want {
				t.Fatalf("expected bet %d, got %d", tt.want, m.GetBet())
			}
			if len(*got) != 0 {
				t.Fatalf("set_bet must not notify, got %v", *got)
			}
		})
	}
}

func TestSetBet_NotReboundWhenCreditsDrop(t *testing.T) {
	m, _ := newTestMachine(t)
	m.SetBet(80)
	m.RemoveCredits(50)

	if m.GetBet() != 80 {
		t.Fatalf("expected bet to stay 80, got %d", m.GetBet())
	}
}

func TestRemoveCredits_ClampsToZero(t *testing.T) {
	for _, start := range []int{0, 1, 100, 500} {
		m, got := newTestMachine(t)
		m.RemoveCredits(100)
		m.AddCredits(start)
		*got = nil

		m.RemoveCredits(start + 1)

		if m.GetCredits() != 0 {
			t.Fatalf("start %d: expected 0 credits, got %d", start, m.GetCredits())
		}
		if len(*got) != 1 || (*got)[0].payload != (model.CreditsChanged{NewAmount: 0}) {
			t.Fatalf("start %d: expected credits_changed(0), got %v", start, *got)
		}
	}
}

func TestAddCredits(t *testing.T) {
	m, got := newTestMachine(t)

	m.AddCredits(25)
	if m.GetCredits() != 125 {
		t.Fatalf("expected 125, got %d", m.GetCredits())
	}

	m.AddCredits(-30)
	if m.GetCredits() != 95 {
		t.Fatalf("expected negative amount to decrease credits to 95, got %d", m.GetCredits())
	}

	m.AddCredits(-1000)
	if m.GetCredits() != 0 {
		t.Fatalf("expected credits clamped to 0, got %d", m.GetCredits())
	}

	if len(*got) != 3 {
		t.Fatalf("expected 3 credits_changed, got %v", *got)
	}
}

func TestGetReelValue_Range(t *testing.T) {
	m, _ := newTestMachine(t, 5, 0, 3)
	m.Spin()

	for _, idx := range []int{-100, -1, 3, 4, 1 << 20} {
		if v := m.GetReelValue(idx); v != -1 {
			t.Errorf("index %d: expected -1, got %d", idx, v)
		}
	}
	for idx := 0; idx < 3; idx++ {
		if v := m.GetReelValue(idx); v < 0 || v > 5 {
			t.Errorf("index %d: value out of range: %d", idx, v)
		}
	}
}

func TestSpin_DefaultSourceStaysInRange(t *testing.T) {
	m := NewSlotMachine(nil, nil, nil)
	m.AddCredits(1000)
	for i := 0; i < 200; i++ {
		m.Spin()
		for idx := 0; idx < 3; idx++ {
			if v := m.GetReelValue(idx); v < 0 || v > 5 {
				t.Fatalf("reel %d out of range: %d", idx, v)
			}
		}
		m.StopSpin()
	}
}

func TestCalculateWinnings(t *testing.T) {
	tests := []struct {
		name  string
		reels [3]int
		bet   int
		want  int
	}{
		{"three zeros", [3]int{0, 0, 0}, 1, 10},
		{"three threes", [3]int{3, 3, 3}, 1, 40},
		{"three fives", [3]int{5, 5, 5}, 2, 120},
		{"pair first two", [3]int{2, 2, 5}, 5, 10},
		{"pair last two", [3]int{1, 4, 4}, 3, 6},
		{"pair outer", [3]int{4, 0, 4}, 1, 2},
		{"no match", [3]int{1, 2, 3}, 1, 0},
		{"no match big bet", [3]int{0, 5, 3}, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMachine(t)
			m.reelValues = tt.reels
			m.betAmount = tt.bet

			if got := m.CalculateWinnings(); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
			if m.CheckWin() != (tt.want > 0) {
				t.Fatalf("check_win mismatch for %v", tt.reels)
			}
		})
	}
}

func TestStopSpin_UsesBetAtStopTime(t *testing.T) {
	m, _ := newTestMachine(t, 1, 1, 4)
	m.Spin()
	m.SetBet(10)

	m.StopSpin()

	// 99 после списания ставки 1, пара при ставке 10 даёт 20
	if m.GetCredits() != 119 {
		t.Fatalf("expected 119 credits, got %d", m.GetCredits())
	}
}
