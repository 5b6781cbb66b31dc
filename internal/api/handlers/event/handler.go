package event

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/event-notifier/internal/api/dto"
	"github.com/aliskhannn/event-notifier/internal/api/respond"
	"github.com/aliskhannn/event-notifier/internal/config"
	"github.com/aliskhannn/event-notifier/internal/model"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/event/mock.go -package=mocks

type eventService interface {
	SubmitEvent(ctx context.Context, strategy retry.Strategy, ev model.Event) (uuid.UUID, error)
}

type Handler struct {
	service   eventService
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(
	s eventService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Submit validates and records an event, then enqueues one delivery job for
// its target. Invalid requests are rejected before anything is persisted.
func (h *Handler) Submit(c *ginext.Context) {
	var req dto.SubmitEventRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	ev := model.Event{
		Type:     req.Type,
		ActorID:  req.ActorID,
		TargetID: req.TargetID,
		Payload:  req.Payload,
	}

	id, err := h.service.SubmitEvent(c.Request.Context(), h.cfg.Retry, ev)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("type", ev.Type).Msg("failed to submit event")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, dto.SubmitEventResponse{Success: true, EventID: id})
}
