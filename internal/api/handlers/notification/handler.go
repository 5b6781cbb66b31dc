package notification

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/event-notifier/internal/api/respond"
	"github.com/aliskhannn/event-notifier/internal/model"
	"github.com/aliskhannn/event-notifier/internal/repository/notification"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks

type notificationService interface {
	ListForUser(ctx context.Context, userID string) ([]model.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) (model.Notification, error)
}

type Handler struct {
	service notificationService
}

func NewHandler(s notificationService) *Handler {
	return &Handler{service: s}
}

// List returns the user's notifications, newest first, capped at the
// configured limit.
func (h *Handler) List(c *ginext.Context) {
	userID := c.Param("userId")
	if userID == "" {
		zlog.Logger.Warn().Msg("missing userId")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing userId"))
		return
	}

	notifications, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to list notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}

// MarkRead marks a single notification as read and returns the updated
// record. Marking an already-read notification is a no-op.
func (h *Handler) MarkRead(c *ginext.Context) {
	idStr := c.Param("notificationId")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	n, err := h.service.MarkRead(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Msg("notification not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to mark notification read")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, n)
}
