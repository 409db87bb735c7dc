package order

import (
	"time"

	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/domain"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusFulfilled Status = "fulfilled"
)

// Order is the durable record of a listing or sale attempt, keyed by
// OrderHash. Re-submitting the same hash overwrites the row.
type Order struct {
	Id                  string           `json:"id" bson:"id"`
	TokenId             domain.TokenId   `json:"tokenid" bson:"tokenId"`
	Price               string           `json:"price" bson:"price"`
	NftContract         domain.Address   `json:"nft_contract" bson:"nftContract"`
	MarketplaceContract domain.Address   `json:"marketplace_contract" bson:"marketplaceContract"`
	Seller              domain.Address   `json:"seller_address" bson:"sellerAddress"`
	Buyer               *domain.Address  `json:"buyer_address" bson:"buyerAddress"`
	SeaportOrder        *SignedOrder     `json:"seaport_order" bson:"seaportOrder"`
	OrderHash           domain.OrderHash `json:"order_hash" bson:"orderHash"`
	// OnChain is true once the order has been fulfilled on chain.
	// OnChain implies Buyer is set and Status is fulfilled.
	OnChain   bool      `json:"on_chain" bson:"onChain"`
	Status    Status    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdat" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedat" bson:"updatedAt"`
}

func (o *Order) LowerCase() {
	o.OrderHash = o.OrderHash.ToLower()
	o.Seller = o.Seller.ToLower()
	o.NftContract = o.NftContract.ToLower()
	o.MarketplaceContract = o.MarketplaceContract.ToLower()
	if o.Buyer != nil {
		b := o.Buyer.ToLower()
		o.Buyer = &b
	}
}

// Fulfill marks the order settled by buyer, keeping the on-chain invariant
// in one place.
func (o *Order) Fulfill(buyer domain.Address, at time.Time) {
	b := buyer.ToLower()
	o.Buyer = &b
	o.Status = StatusFulfilled
	o.OnChain = true
	o.UpdatedAt = at
}

type Patchable struct {
	Buyer     *domain.Address `bson:"buyerAddress,omitempty"`
	Status    *Status         `bson:"status,omitempty"`
	OnChain   *bool           `bson:"onChain,omitempty"`
	UpdatedAt *time.Time      `bson:"updatedAt,omitempty"`
}

type FindAllOptions struct {
	TokenId *domain.TokenId
	Seller  *domain.Address
	Status  *Status
	Limit   *int32
	Sort    *string
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithTokenId(tokenId domain.TokenId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.TokenId = &tokenId
		return nil
	}
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		seller = seller.ToLower()
		options.Seller = &seller
		return nil
	}
}

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
		return nil
	}
}

func WithLimit(limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Limit = &limit
		return nil
	}
}

func WithSort(sort string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

type Repo interface {
	FindAll(ctx.Ctx, ...FindAllOptionsFunc) ([]*Order, error)
	FindByHash(ctx.Ctx, domain.OrderHash) (*Order, error)
	// Upsert replaces the row keyed by order hash, inserting when absent
	Upsert(ctx.Ctx, *Order) error
	Patch(ctx.Ctx, domain.OrderHash, Patchable) error
}

// FulfillResult reports the outcome of a buy notification. Order is nil when
// no order row matched the hash and only the metadata fallback applied.
type FulfillResult struct {
	Order *Order
}

type UseCase interface {
	// MakeOrder upserts the order row and then, best effort, its metadata
	// projection. A projection failure is logged, not returned.
	MakeOrder(ctx.Ctx, *Order) error
	// FulfillOrder marks the order row fulfilled and clears the listing
	// fields of the matching metadata row; when no order row matches the
	// hash it falls back to clearing metadata by token id.
	FulfillOrder(ctx.Ctx, domain.OrderHash, domain.Address, domain.TokenId) (*FulfillResult, error)
	// LatestOrders returns up to limit rows, newest first
	LatestOrders(ctx.Ctx, int32) ([]*Order, error)
	// ReconcileMetadata re-projects every active order onto its metadata
	// row, repairing projections left stale by earlier best-effort writes.
	// It returns the number of rows re-projected.
	ReconcileMetadata(ctx.Ctx) (int, error)
}
