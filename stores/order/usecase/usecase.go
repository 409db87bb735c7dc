package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/base/log"
	"github.com/bearmarket/goapi/base/ptr"
	"github.com/bearmarket/goapi/domain"
	"github.com/bearmarket/goapi/domain/metadata"
	"github.com/bearmarket/goapi/domain/order"
)

var timeNow = time.Now

type impl struct {
	orderRepo    order.Repo
	metadataRepo metadata.Repo
}

func New(orderRepo order.Repo, metadataRepo metadata.Repo) order.UseCase {
	return &impl{
		orderRepo:    orderRepo,
		metadataRepo: metadataRepo,
	}
}

func (im *impl) MakeOrder(ctx ctx.Ctx, _order *order.Order) error {
	now := timeNow()
	if _order.Id == "" {
		_order.Id = uuid.NewString()
	}
	_order.Status = order.StatusActive
	_order.Buyer = nil
	if _order.CreatedAt.IsZero() {
		_order.CreatedAt = now
	}
	_order.UpdatedAt = now
	_order.LowerCase()

	if err := im.orderRepo.Upsert(ctx, _order); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"orderHash": _order.OrderHash,
		}).Error("orderRepo.Upsert failed")
		return err
	}

	// the metadata projection is best effort, the order row is the source
	// of truth
	listing := &metadata.Listing{
		TokenId:             _order.TokenId,
		Price:               _order.Price,
		NftContract:         _order.NftContract,
		MarketplaceContract: _order.MarketplaceContract,
		SeaportOrder:        _order.SeaportOrder,
		OrderHash:           _order.OrderHash,
	}
	if err := im.metadataRepo.SetListing(ctx, listing); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"tokenId": _order.TokenId,
		}).Warn("metadataRepo.SetListing failed")
	}

	return nil
}

func (im *impl) FulfillOrder(ctx ctx.Ctx, hash domain.OrderHash, buyer domain.Address, tokenId domain.TokenId) (*order.FulfillResult, error) {
	hash = hash.ToLower()
	buyer = buyer.ToLower()

	found, err := im.orderRepo.FindByHash(ctx, hash)
	if err == domain.ErrNotFound {
		// no order row carries the hash, fall back to the token id so the
		// storefront at least stops showing the listing
		if err := im.metadataRepo.ClearListingByTokenId(ctx, tokenId, buyer); err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"tokenId": tokenId,
			}).Error("metadataRepo.ClearListingByTokenId failed")
			return nil, err
		}
		return &order.FulfillResult{}, nil
	} else if err != nil {
		return nil, err
	}

	now := timeNow()
	patchable := order.Patchable{
		Buyer:     &buyer,
		Status:    statusPtr(order.StatusFulfilled),
		OnChain:   ptr.Bool(true),
		UpdatedAt: &now,
	}
	if err := im.orderRepo.Patch(ctx, hash, patchable); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"orderHash": hash,
		}).Error("orderRepo.Patch failed")
		return nil, err
	}
	found.Fulfill(buyer, now)

	if err := im.metadataRepo.ClearListingByOrderHash(ctx, hash, buyer); err != nil {
		// the order row already says fulfilled, leave the projection to a
		// later reconcile instead of failing the request
		ctx.WithFields(log.Fields{
			"err":       err,
			"orderHash": hash,
		}).Warn("metadataRepo.ClearListingByOrderHash failed")
	}

	return &order.FulfillResult{Order: found}, nil
}

func (im *impl) LatestOrders(ctx ctx.Ctx, limit int32) ([]*order.Order, error) {
	res, err := im.orderRepo.FindAll(ctx,
		order.WithSort("-createdAt"),
		order.WithLimit(limit),
	)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("orderRepo.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) ReconcileMetadata(ctx ctx.Ctx) (int, error) {
	rows, err := im.orderRepo.FindAll(ctx, order.WithStatus(order.StatusActive))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("orderRepo.FindAll failed")
		return 0, err
	}

	count := 0
	for _, row := range rows {
		listing := &metadata.Listing{
			TokenId:             row.TokenId,
			Price:               row.Price,
			NftContract:         row.NftContract,
			MarketplaceContract: row.MarketplaceContract,
			SeaportOrder:        row.SeaportOrder,
			OrderHash:           row.OrderHash,
		}
		if err := im.metadataRepo.SetListing(ctx, listing); err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"tokenId": row.TokenId,
			}).Error("metadataRepo.SetListing failed")
			return count, err
		}
		count++
	}
	return count, nil
}

func statusPtr(s order.Status) *order.Status {
	return &s
}
