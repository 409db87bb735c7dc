package marketapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	bCtx "github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/domain"
	"github.com/bearmarket/goapi/domain/metadata"
	"github.com/bearmarket/goapi/domain/order"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

// ApiError carries the error message the server put in its response body.
type ApiError struct {
	StatusCode int
	Message    string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

type ClientCfg struct {
	BaseUrl    string
	HttpClient http.Client
	Timeout    time.Duration
}

// OrderRequest is the new-listing payload.
type OrderRequest struct {
	TokenId             domain.TokenId     `json:"tokenid"`
	Price               string             `json:"price"`
	NftContract         domain.Address     `json:"nft_contract"`
	MarketplaceContract domain.Address     `json:"marketplace_contract"`
	SellerAddress       domain.Address     `json:"seller_address"`
	SeaportOrder        *order.SignedOrder `json:"seaport_order"`
	OrderHash           domain.OrderHash   `json:"order_hash"`
	OnChain             bool               `json:"on_chain"`
}

// BuyRequest marks a listing fulfilled.
type BuyRequest struct {
	TokenId      domain.TokenId   `json:"tokenid"`
	BuyerAddress domain.Address   `json:"buyer_address"`
	OrderHash    domain.OrderHash `json:"order_hash"`
}

type StatusResp struct {
	Ok   bool   `json:"ok"`
	Time string `json:"time"`
}

type Client interface {
	GetNfts(bCtx.Ctx) ([]*metadata.Metadata, error)
	GetOrders(bCtx.Ctx) ([]*order.Order, error)
	PostOrder(bCtx.Ctx, *OrderRequest) error
	PostBuy(bCtx.Ctx, *BuyRequest) error
	GetStatus(bCtx.Ctx) (*StatusResp, error)
}
