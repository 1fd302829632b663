package http

import (
	"errors"
	"net/http"
	"time"

	approverDomain "approve-hub/internal/domain/approver"
	groupDomain "approve-hub/internal/domain/group"
	itemDomain "approve-hub/internal/domain/item"
	approverUC "approve-hub/internal/usecase/approver"
	groupUC "approve-hub/internal/usecase/group"
	itemUC "approve-hub/internal/usecase/item"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// writeDomainError maps domain/usecase sentinel errors to HTTP codes.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, groupDomain.ErrNotFound),
		errors.Is(err, approverDomain.ErrNotFound),
		errors.Is(err, itemDomain.ErrNotFound),
		errors.Is(err, itemDomain.ErrCheckNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, itemDomain.ErrNoApprovers):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "group has no approvers"})
	case errors.Is(err, groupUC.ErrInvalidInput),
		errors.Is(err, approverUC.ErrInvalidInput),
		errors.Is(err, itemUC.ErrInvalidInput):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid input"})
	case errors.Is(err, groupDomain.ErrSlugExhausted):
		// retry budget exhausted: fail loudly, never hand out a colliding slug
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
