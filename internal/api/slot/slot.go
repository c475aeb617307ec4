package slot

import (
	"errors"
	"net/http"
	"strconv"

	dto "roguelike_slots/internal/api/dto/slot"
	"roguelike_slots/internal/converter"
	"roguelike_slots/internal/node"
	"roguelike_slots/internal/service"
	"roguelike_slots/pkg/req"
	"roguelike_slots/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Node  *node.Node
	Stats service.StatsService
}

type Handler struct {
	node  *node.Node
	stats service.StatsService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		node:  deps.Node,
		stats: deps.Stats,
	}
}

// Routes регистрирует методы автомата
func (h *Handler) Routes(r chi.Router) {
	r.Post("/spin", h.Spin)
	r.Post("/stop", h.StopSpin)
	r.Get("/bet", h.GetBet)
	r.Put("/bet", h.SetBet)
	r.Get("/credits", h.GetCredits)
	r.Post("/credits/add", h.AddCredits)
	r.Post("/credits/remove", h.RemoveCredits)
	r.Get("/reels/{index}", h.GetReelValue)
	r.Get("/winnings", h.Winnings)
	r.Get("/properties", h.GetProperties)
	r.Patch("/properties", h.SetProperties)
	r.Get("/stats", h.Stats)
}

// Spin запускает вращение. Отклонённый вызов не ошибка: 200 и причина в поле ignored
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, func(m service.SlotMachine) error {
		return m.TrySpin()
	})
}

func (h *Handler) StopSpin(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, func(m service.SlotMachine) error {
		return m.TryStopSpin()
	})
}

func (h *Handler) SetBet(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.AmountRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeState(w, func(m service.SlotMachine) error {
		return m.TrySetBet(payload.Amount)
	})
}

func (h *Handler) GetBet(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, dto.BetResponse{
		BetAmount: h.node.State().BetAmount,
	})
}

func (h *Handler) AddCredits(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.AmountRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeState(w, func(m service.SlotMachine) error {
		m.AddCredits(payload.Amount)
		return nil
	})
}

func (h *Handler) RemoveCredits(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.AmountRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeState(w, func(m service.SlotMachine) error {
		m.RemoveCredits(payload.Amount)
		return nil
	})
}

func (h *Handler) GetCredits(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, dto.CreditsResponse{
		Credits: h.node.State().Credits,
	})
}

// GetReelValue - индекс вне диапазона возвращает -1, нечисловой индекс это 400
func (h *Handler) GetReelValue(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "reel index must be an integer")
		return
	}

	var value int
	h.node.Do(func(m service.SlotMachine) {
		value = m.GetReelValue(index)
	})

	resp.WriteJSONResponse(w, http.StatusOK, dto.ReelResponse{
		Index: index,
		Value: value,
	})
}

func (h *Handler) Winnings(w http.ResponseWriter, r *http.Request) {
	var res dto.WinningsResponse
	h.node.Do(func(m service.SlotMachine) {
		res.Winnings = m.CalculateWinnings()
		res.Win = m.CheckWin()
	})

	resp.WriteJSONResponse(w, http.StatusOK, res)
}

func (h *Handler) GetProperties(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPropertiesResponse(h.node.Properties()))
}

// SetProperties - bet_amount пишется через SetBet, запись credits запрещена
func (h *Handler) SetProperties(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PropertiesRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if payload.Credits != nil {
		err = h.node.SetProperty(node.PropertyCredits, *payload.Credits)
		if errors.Is(err, node.ErrReadOnlyProperty) {
			resp.WriteError(w, http.StatusBadRequest, "credits: "+err.Error())
			return
		}
	}

	if payload.BetAmount != nil {
		if err = h.node.SetProperty(node.PropertyBetAmount, *payload.BetAmount); err != nil {
			resp.WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPropertiesResponse(h.node.Properties()))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.stats.Snapshot()))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status: "ok",
		Node:   h.node.ID().String(),
		Frames: h.node.Frames(),
		Uptime: h.node.Uptime(),
	})
}

// writeState выполняет операцию под замком узла и отвечает состоянием после неё
func (h *Handler) writeState(w http.ResponseWriter, op func(m service.SlotMachine) error) {
	var (
		ignored error
		res     dto.StateResponse
	)
	h.node.Do(func(m service.SlotMachine) {
		ignored = op(m)
		res = converter.ToStateResponse(m.State(), ignored)
	})

	resp.WriteJSONResponse(w, http.StatusOK, res)
}
