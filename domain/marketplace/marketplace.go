package marketplace

import (
	"github.com/shopspring/decimal"

	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/domain"
	"github.com/bearmarket/goapi/domain/metadata"
	"github.com/bearmarket/goapi/domain/wallet"
)

// ListResult reports a completed listing flow.
type ListResult struct {
	OrderHash domain.OrderHash
	Validated bool
}

// BuyResult reports a completed purchase flow.
type BuyResult struct {
	TxHash domain.TxHash
}

// UseCase drives the two marketplace flows end to end: on-chain
// interaction first, then the off-chain record. Price is in native
// units, not wei.
type UseCase interface {
	List(ctx.Ctx, wallet.Session, domain.TokenId, decimal.Decimal) (*ListResult, error)
	Buy(ctx.Ctx, wallet.Session, *metadata.Metadata) (*BuyResult, error)
}
