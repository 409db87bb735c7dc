package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/base/delivery"
	"github.com/bearmarket/goapi/domain/metadata"
	"github.com/bearmarket/goapi/middleware"
	"github.com/bearmarket/goapi/service/redis"
)

const nftsCacheTTL = 30 * time.Second

type handler struct {
	metadata metadata.UseCase
}

// New will initialize the metadata endpoints. cache may be nil to serve
// uncached.
func New(e *echo.Echo, us metadata.UseCase, cache redis.Service) {
	h := &handler{
		metadata: us,
	}
	g := e.Group("/api")
	if cache != nil {
		g.GET("/nfts", h.getNfts, middleware.CacheHttp(cache, nftsCacheTTL))
	} else {
		g.GET("/nfts", h.getNfts)
	}
}

func (h *handler) getNfts(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.metadata.GetAll(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, delivery.JsonResponse{"nfts": res})
}
