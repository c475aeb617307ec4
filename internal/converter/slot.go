package converter

import (
	"roguelike_slots/internal/api/dto/slot"
	"roguelike_slots/internal/model"
)

func ToStateResponse(st model.SlotState, ignored error) slot.StateResponse {
	res := slot.StateResponse{
		Credits:    st.Credits,
		BetAmount:  st.BetAmount,
		IsSpinning: st.IsSpinning,
		ReelValues: st.ReelValues,
	}
	if ignored != nil {
		res.Ignored = ignored.Error()
	}
	return res
}

func ToPropertiesResponse(p model.Properties) slot.PropertiesResponse {
	return slot.PropertiesResponse{
		BetAmount: p.BetAmount,
		Credits:   p.Credits,
	}
}

func ToStatsResponse(s model.SlotStats) slot.StatsResponse {
	return slot.StatsResponse{
		TotalSpins:  s.TotalSpins,
		TotalWins:   s.TotalWins,
		TotalBet:    s.TotalBet,
		TotalPayout: s.TotalPayout,
		CurrentRTP:  s.CurrentRTP,
		WindowRTP:   s.WindowRTP,
		WindowSize:  s.WindowSize,
	}
}

// ToEventMessage переводит уведомление шины в сообщение для клиента
func ToEventMessage(name string, payload any) slot.EventMessage {
	msg := slot.EventMessage{Event: name}

	switch p := payload.(type) {
	case model.SpinStopped:
		msg.Payload = slot.SpinStoppedPayload{Results: p.Results}
	case model.Win:
		msg.Payload = slot.WinPayload{Amount: p.Amount}
	case model.CreditsChanged:
		msg.Payload = slot.CreditsChangedPayload{NewAmount: p.NewAmount}
	}
	return msg
}
