package http

import (
	"log"
	"net/http"

	"approve-hub/internal/usecase/group"

	"github.com/labstack/echo/v4"
)

type GroupHandler struct{ uc *group.Usecase }

func NewGroupHandler(uc *group.Usecase) *GroupHandler { return &GroupHandler{uc: uc} }

type createGroupReq struct {
	Title string `json:"title" validate:"required,notblank,max=255"`
}

type renameGroupReq struct {
	Title string `json:"title" validate:"required,notblank,max=255"`
}

// CreateGroup mints a new group with a fresh share slug. The listing page is
// an entry point, so stale groups are swept first; a sweep failure is logged
// but never blocks creation.
func (h *GroupHandler) CreateGroup(c echo.Context) error {
	var req createGroupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	ctx := c.Request().Context()
	if _, err := h.uc.SweepInactive(ctx, 0); err != nil {
		log.Printf("sweep on listing: %v", err)
	}

	dto, err := h.uc.Create(ctx, group.CreateGroupInput{Title: req.Title})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// ViewGroup serves the share link: /g/:slug. The usecase sweeps stale groups
// (preserving this one) and counts the view as activity.
func (h *GroupHandler) ViewGroup(c echo.Context) error {
	dto, err := h.uc.View(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *GroupHandler) RenameGroup(c echo.Context) error {
	var req renameGroupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Rename(c.Request().Context(), c.Param("group_id"), req.Title)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *GroupHandler) DeleteGroup(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("group_id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
