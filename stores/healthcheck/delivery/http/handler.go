package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/base/delivery"
	hcdomain "github.com/bearmarket/goapi/domain/healthcheck"
)

type handler struct {
	healthCheck hcdomain.UseCase
}

// New will initialize the status endpoint
func New(e *echo.Echo, us hcdomain.UseCase) {
	h := &handler{
		healthCheck: us,
	}
	g := e.Group("/api")
	g.GET("/status", h.status)
}

func (h *handler) status(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	if err := h.healthCheck.Check(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}
