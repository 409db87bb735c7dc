package usecase

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/base/log"
	"github.com/bearmarket/goapi/base/metrics"
	"github.com/bearmarket/goapi/domain"
	"github.com/bearmarket/goapi/domain/catalog"
	"github.com/bearmarket/goapi/domain/marketplace"
	"github.com/bearmarket/goapi/domain/metadata"
	"github.com/bearmarket/goapi/domain/wallet"
	"github.com/bearmarket/goapi/service/chain/contract"
	"github.com/bearmarket/goapi/service/marketapi"
	"github.com/bearmarket/goapi/service/seaport"
)

const listingDuration = 30 * 24 * time.Hour

var weiPerUnit = decimal.New(1, 18)

type Cfg struct {
	NftContract         domain.Address
	MarketplaceContract domain.Address
}

type impl struct {
	cfg     Cfg
	erc721  contract.Erc721Contract
	seaport seaport.Service
	api     marketapi.Client
	catalog catalog.UseCase
	met     metrics.Service
}

func New(cfg Cfg, erc721 contract.Erc721Contract, sp seaport.Service, api marketapi.Client, cat catalog.UseCase) marketplace.UseCase {
	return &impl{
		cfg:     cfg,
		erc721:  erc721,
		seaport: sp,
		api:     api,
		catalog: cat,
		met:     metrics.New("marketplace"),
	}
}

func (im *impl) List(ctx ctx.Ctx, session wallet.Session, tokenId domain.TokenId, price decimal.Decimal) (*marketplace.ListResult, error) {
	defer im.met.BumpTime("list.time").End()

	if session == nil {
		return nil, domain.ErrNoSession
	}

	id, err := tokenId.ToBig()
	if err != nil {
		return nil, err
	}

	priceWei, err := toWei(price)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"price": price,
		}).Error("invalid price")
		return nil, err
	}

	// the offer is only fillable if the session owns the token, check
	// before asking for any signature
	owner, err := im.erc721.OwnerOf(ctx, session.ChainId(), im.cfg.NftContract, id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
		}).Error("erc721.OwnerOf failed")
		return nil, err
	}
	if !owner.Equals(session.Address()) {
		ctx.WithFields(log.Fields{
			"owner":   owner,
			"session": session.Address(),
		}).Warn("token not owned by session")
		return nil, domain.ErrNotOwner
	}

	if err := im.ensureApproval(ctx, session); err != nil {
		return nil, err
	}

	now := time.Now()
	plan, err := im.seaport.CreateOrder(ctx, session, &seaport.CreateOrderRequest{
		Collection: im.cfg.NftContract,
		TokenId:    tokenId,
		PriceWei:   priceWei,
		StartTime:  now,
		EndTime:    now.Add(listingDuration),
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("seaport.CreateOrder failed")
		return nil, err
	}

	signed, err := plan.ExecuteAndWait(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"orderHash": plan.OrderHash(),
		}).Error("signing order failed")
		return nil, err
	}

	if err := im.api.PostOrder(ctx, &marketapi.OrderRequest{
		TokenId:             tokenId,
		Price:               price.String(),
		NftContract:         im.cfg.NftContract,
		MarketplaceContract: im.cfg.MarketplaceContract,
		SellerAddress:       session.Address(),
		SeaportOrder:        signed,
		OrderHash:           plan.OrderHash(),
		OnChain:             false,
	}); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"orderHash": plan.OrderHash(),
		}).Error("api.PostOrder failed")
		return nil, err
	}

	// the catalog no longer reflects the listing set
	im.catalog.Invalidate()

	im.met.BumpSum("list.count", 1)
	return &marketplace.ListResult{
		OrderHash: plan.OrderHash(),
		Validated: true,
	}, nil
}

func (im *impl) Buy(ctx ctx.Ctx, session wallet.Session, item *metadata.Metadata) (*marketplace.BuyResult, error) {
	defer im.met.BumpTime("buy.time").End()

	if session == nil {
		return nil, domain.ErrNoSession
	}
	if item == nil || item.SeaportOrder == nil || item.OrderHash == nil {
		return nil, domain.ErrNoOrder
	}

	plan, err := im.seaport.FulfillOrder(ctx, session, item.SeaportOrder)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"orderHash": *item.OrderHash,
		}).Error("seaport.FulfillOrder failed")
		return nil, err
	}

	receipt, err := plan.ExecuteAndWait(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"orderHash": *item.OrderHash,
		}).Error("fulfillment transaction failed")
		return nil, err
	}

	if err := im.api.PostBuy(ctx, &marketapi.BuyRequest{
		TokenId:      item.TokenId,
		BuyerAddress: session.Address(),
		OrderHash:    *item.OrderHash,
	}); err != nil {
		// the sale already settled on chain, report the record gap but
		// do not fail the purchase
		ctx.WithFields(log.Fields{
			"err":       err,
			"orderHash": *item.OrderHash,
		}).Warn("api.PostBuy failed")
	}

	// ownership changed on chain, drop the cached catalog either way
	im.catalog.Invalidate()

	im.met.BumpSum("buy.count", 1)
	return &marketplace.BuyResult{
		TxHash: receipt.TxHash,
	}, nil
}

// ensureApproval grants the exchange operator approval for the collection
// once. Already-approved sessions skip the transaction entirely.
func (im *impl) ensureApproval(ctx ctx.Ctx, session wallet.Session) error {
	approved, err := im.erc721.IsApprovedForAll(ctx, session.ChainId(), im.cfg.NftContract, session.Address(), im.cfg.MarketplaceContract)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("erc721.IsApprovedForAll failed")
		return err
	}
	if approved {
		return nil
	}

	if _, err := im.erc721.SetApprovalForAll(ctx, session, im.cfg.NftContract, im.cfg.MarketplaceContract, true); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("erc721.SetApprovalForAll failed")
		return err
	}
	return nil
}

// toWei converts a native-unit price to wei, rejecting anything with more
// than 18 decimal places.
func toWei(price decimal.Decimal) (*big.Int, error) {
	if price.Sign() <= 0 {
		return nil, domain.ErrInvalidNumberFormat
	}
	wei := price.Mul(weiPerUnit)
	bi := wei.BigInt()
	if !wei.Equal(decimal.NewFromBigInt(bi, 0)) {
		return nil, domain.ErrInvalidNumberFormat
	}
	return bi, nil
}
