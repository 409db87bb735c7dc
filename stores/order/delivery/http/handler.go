package http

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/base/delivery"
	"github.com/bearmarket/goapi/base/validator"
	"github.com/bearmarket/goapi/domain"
	"github.com/bearmarket/goapi/domain/order"
)

const latestOrdersLimit = 500

type handler struct {
	order order.UseCase
}

// New will initialize the order endpoints
func New(e *echo.Echo, us order.UseCase) {
	h := &handler{
		order: us,
	}
	g := e.Group("/api")
	g.GET("/orders", h.getOrders)
	g.POST("/order", h.postOrder)
	g.POST("/buy", h.postBuy)
	g.POST("/reconcile", h.reconcile)
}

func (h *handler) getOrders(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.order.LatestOrders(ctx, latestOrdersLimit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, delivery.JsonResponse{"orders": res})
}

func (h *handler) postOrder(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		TokenId             domain.TokenId   `json:"tokenid"`
		Price               string           `json:"price"`
		NftContract         domain.Address   `json:"nft_contract"`
		MarketplaceContract domain.Address   `json:"marketplace_contract"`
		SellerAddress       domain.Address   `json:"seller_address"`
		SeaportOrder        json.RawMessage  `json:"seaport_order"`
		OrderHash           domain.OrderHash `json:"order_hash"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	switch {
	case len(p.TokenId) == 0:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.New("missing tokenid"))
	case len(p.SellerAddress) == 0:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.New("missing seller_address"))
	case len(p.SeaportOrder) == 0:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.New("missing seaport_order"))
	case len(p.OrderHash) == 0:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.New("missing order_hash"))
	}
	if !validator.IsValidTokenId(string(p.TokenId)) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.New("invalid tokenid"))
	}
	if !validator.IsValidAddress(string(p.SellerAddress)) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.New("invalid seller_address"))
	}

	signed, err := order.Normalize(p.SeaportOrder)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	_order := &order.Order{
		TokenId:             p.TokenId,
		Price:               p.Price,
		NftContract:         p.NftContract,
		MarketplaceContract: p.MarketplaceContract,
		Seller:              p.SellerAddress,
		SeaportOrder:        signed,
		OrderHash:           p.OrderHash,
	}
	if err := h.order.MakeOrder(ctx, _order); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) postBuy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		TokenId      domain.TokenId   `json:"tokenid"`
		BuyerAddress domain.Address   `json:"buyer_address"`
		OrderHash    domain.OrderHash `json:"order_hash"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	switch {
	case len(p.OrderHash) == 0:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.New("missing order_hash"))
	case len(p.BuyerAddress) == 0:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.New("missing buyer_address"))
	}
	if !validator.IsValidAddress(string(p.BuyerAddress)) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.New("invalid buyer_address"))
	}

	res, err := h.order.FulfillOrder(ctx, p.OrderHash, p.BuyerAddress, p.TokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, delivery.JsonResponse{"order": res.Order})
}

func (h *handler) reconcile(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	count, err := h.order.ReconcileMetadata(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, delivery.JsonResponse{"reconciled": count})
}
