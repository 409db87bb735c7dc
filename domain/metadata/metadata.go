package metadata

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/domain"
	"github.com/bearmarket/goapi/domain/order"
)

// Metadata is the denormalized per-token view served to the storefront:
// static attributes from ingestion plus the current listing state the order
// coordinator writes. One row per token id.
type Metadata struct {
	TokenId             domain.TokenId     `json:"tokenid" bson:"tokenId"`
	Name                string             `json:"name,omitempty" bson:"name,omitempty"`
	Image               string             `json:"image,omitempty" bson:"image,omitempty"`
	NftContract         domain.Address     `json:"nft_contract,omitempty" bson:"nftContract,omitempty"`
	MarketplaceContract domain.Address     `json:"marketplace_contract,omitempty" bson:"marketplaceContract,omitempty"`
	Price               *string            `json:"price" bson:"price"`
	SeaportOrder        *order.SignedOrder `json:"seaport_order" bson:"seaportOrder"`
	OrderHash           *domain.OrderHash  `json:"order_hash" bson:"orderHash"`
	Buyer               *domain.Address    `json:"buyer_address" bson:"buyerAddress"`
	OnChain             bool               `json:"on_chain" bson:"onChain"`
	UpdatedAt           time.Time          `json:"updatedat" bson:"updatedAt"`
}

// UnmarshalJSON tolerates rows written by older clients: the signed order
// may sit under a historical field name or arrive string-encoded, so it is
// recovered through order.NormalizeRecord instead of a plain field decode.
// A row whose order cannot be normalized keeps SeaportOrder nil.
func (m *Metadata) UnmarshalJSON(b []byte) error {
	type plain Metadata
	aux := struct {
		*plain
		SeaportOrder json.RawMessage `json:"seaport_order"`
	}{plain: (*plain)(m)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	// token ids and uint256 order fields exceed float64 precision
	dec.UseNumber()
	var record map[string]interface{}
	if err := dec.Decode(&record); err != nil {
		return err
	}

	signed, err := order.NormalizeRecord(record)
	if err != nil {
		m.SeaportOrder = nil
		return nil
	}
	m.SeaportOrder = signed
	return nil
}

// Listing carries the fields POST /api/order projects onto a metadata row.
// Name and image already present on the row are left alone.
type Listing struct {
	TokenId             domain.TokenId
	Price               string
	NftContract         domain.Address
	MarketplaceContract domain.Address
	SeaportOrder        *order.SignedOrder
	OrderHash           domain.OrderHash
}

type Repo interface {
	// FindAll returns every row ordered by token id ascending
	FindAll(ctx.Ctx) ([]*Metadata, error)
	FindByTokenId(ctx.Ctx, domain.TokenId) (*Metadata, error)
	// SetListing patches the listing fields of the row keyed by token id,
	// inserting the row when absent and preserving name/image
	SetListing(ctx.Ctx, *Listing) error
	// ClearListingByOrderHash zeroes price and clears order fields of the
	// row carrying the hash, recording the buyer
	ClearListingByOrderHash(ctx.Ctx, domain.OrderHash, domain.Address) error
	// ClearListingByTokenId does the same keyed by token id, the fallback
	// when no row carries the hash
	ClearListingByTokenId(ctx.Ctx, domain.TokenId, domain.Address) error
}

type UseCase interface {
	// GetAll returns the catalog rows, token id ascending
	GetAll(ctx.Ctx) ([]*Metadata, error)
}
