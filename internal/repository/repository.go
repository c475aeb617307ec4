package repository

import (
	"roguelike_slots/internal/model"
)

type StatsRepository interface {
	Stats() model.SlotStats
	UpdateState(bet, payout int)
}
