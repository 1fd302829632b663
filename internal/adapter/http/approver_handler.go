package http

import (
	"net/http"

	"approve-hub/internal/usecase/approver"

	"github.com/labstack/echo/v4"
)

type ApproverHandler struct{ uc *approver.Usecase }

func NewApproverHandler(uc *approver.Usecase) *ApproverHandler { return &ApproverHandler{uc: uc} }

type approverNameReq struct {
	Name string `json:"name" validate:"required,notblank,max=255"`
}

func (h *ApproverHandler) AddApprover(c echo.Context) error {
	var req approverNameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Add(c.Request().Context(), c.Param("group_id"), req.Name)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ApproverHandler) RenameApprover(c echo.Context) error {
	var req approverNameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Rename(c.Request().Context(), c.Param("approver_id"), req.Name)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApproverHandler) DeleteApprover(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("approver_id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
