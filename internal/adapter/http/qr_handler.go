package http

import (
	"net/http"
	"strings"

	"approve-hub/internal/usecase/group"

	"github.com/labstack/echo/v4"
	qrcode "github.com/skip2/go-qrcode"
)

const qrSize = 256

// QRHandler renders the share URL as a QR PNG for the group page's share
// modal. Generated fresh per request, never persisted.
type QRHandler struct {
	uc      *group.Usecase
	baseURL string
}

func NewQRHandler(uc *group.Usecase, baseURL string) *QRHandler {
	return &QRHandler{uc: uc, baseURL: strings.TrimRight(baseURL, "/")}
}

func (h *QRHandler) ShareQR(c echo.Context) error {
	dto, err := h.uc.Resolve(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeDomainError(c, err)
	}

	png, err := qrcode.Encode(h.baseURL+dto.SharePath, qrcode.Medium, qrSize)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "qr encoding failed"})
	}
	return c.Blob(http.StatusOK, "image/png", png)
}
