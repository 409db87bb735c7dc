package seaport

import (
	"math/big"
	"time"

	bCtx "github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/domain"
	"github.com/bearmarket/goapi/domain/order"
	"github.com/bearmarket/goapi/domain/wallet"
)

// CreateOrderRequest describes a fixed-price sell listing: one ERC-721 token
// offered, its full price in native currency asked back for the offerer.
type CreateOrderRequest struct {
	Collection domain.Address
	TokenId    domain.TokenId
	PriceWei   *big.Int
	StartTime  time.Time
	EndTime    time.Time
}

// CreateOrderPlan is a prepared listing. The order hash is fixed as soon as
// the plan exists; ExecuteAndWait only adds the offerer's signature.
type CreateOrderPlan interface {
	OrderHash() domain.OrderHash
	ExecuteAndWait(bCtx.Ctx) (*order.SignedOrder, error)
}

// FulfillOrderPlan is a prepared purchase. ExecuteAndWait submits the
// fulfillment transaction and blocks until it is mined.
type FulfillOrderPlan interface {
	ExecuteAndWait(bCtx.Ctx) (*wallet.Receipt, error)
}

// Service wraps the seaport exchange contract behind plan-then-execute
// calls, so flows can inspect what will happen before anything is signed
// or sent.
type Service interface {
	CreateOrder(ctx bCtx.Ctx, session wallet.Session, req *CreateOrderRequest) (CreateOrderPlan, error)
	FulfillOrder(ctx bCtx.Ctx, session wallet.Session, signed *order.SignedOrder) (FulfillOrderPlan, error)
	OrderHash(params *order.Parameters) (domain.OrderHash, error)
}
