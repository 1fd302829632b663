package http

import (
	"net/http"

	"approve-hub/internal/usecase/item"

	"github.com/labstack/echo/v4"
)

type ItemHandler struct{ uc *item.Usecase }

func NewItemHandler(uc *item.Usecase) *ItemHandler { return &ItemHandler{uc: uc} }

type createItemReq struct {
	Title     string `json:"title" validate:"required,notblank,max=255"`
	Details   string `json:"details" validate:"required,notblank"`
	Requester string `json:"requester" validate:"max=255"`
}

type updateItemReq struct {
	Title   string `json:"title" validate:"required,notblank,max=255"`
	Details string `json:"details" validate:"required,notblank"`
}

type toggleCheckReq struct {
	// pointer so an explicit false binds and validates
	Approved *bool `json:"approved" validate:"required"`
}

type addCommentReq struct {
	Author string `json:"author" validate:"required,notblank,max=255"`
	Body   string `json:"body" validate:"required,notblank"`
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	var req createItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), item.CreateItemInput{
		GroupID:   c.Param("group_id"),
		Title:     req.Title,
		Details:   req.Details,
		Requester: req.Requester,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ItemHandler) UpdateItem(c echo.Context) error {
	var req updateItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Update(c.Request().Context(), c.Param("item_id"), req.Title, req.Details)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ItemHandler) ToggleCheck(c echo.Context) error {
	var req toggleCheckReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Toggle(c.Request().Context(), c.Param("check_id"), *req.Approved)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ItemHandler) AddComment(c echo.Context) error {
	var req addCommentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.AddComment(c.Request().Context(), c.Param("item_id"), req.Author, req.Body)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
