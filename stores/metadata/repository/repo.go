package repository

import (
	"math/big"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/base/log"
	"github.com/bearmarket/goapi/domain"
	"github.com/bearmarket/goapi/domain/metadata"
	"github.com/bearmarket/goapi/service/query"
)

type metadataRepoImpl struct {
	q query.Mongo
}

func NewMetadataRepo(q query.Mongo) metadata.Repo {
	return &metadataRepoImpl{q}
}

func (im *metadataRepoImpl) FindAll(ctx ctx.Ctx) ([]*metadata.Metadata, error) {
	res := []*metadata.Metadata{}
	err := im.q.Search(ctx, domain.TableMetadata, 0, 0, "", bson.M{}, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.Search")
		return nil, err
	}

	// token ids are decimal strings wider than any mongo integer, sort
	// numerically here instead of lexicographically in the query
	sort.SliceStable(res, func(i, j int) bool {
		a, aOk := new(big.Int).SetString(string(res[i].TokenId), 10)
		b, bOk := new(big.Int).SetString(string(res[j].TokenId), 10)
		if !aOk || !bOk {
			return res[i].TokenId < res[j].TokenId
		}
		return a.Cmp(b) < 0
	})

	return res, nil
}

func (im *metadataRepoImpl) FindByTokenId(ctx ctx.Ctx, tokenId domain.TokenId) (*metadata.Metadata, error) {
	qry := bson.M{"tokenId": tokenId}

	res := metadata.Metadata{}
	err := im.q.FindOne(ctx, domain.TableMetadata, qry, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return &res, nil
}

func (im *metadataRepoImpl) SetListing(ctx ctx.Ctx, listing *metadata.Listing) error {
	selector := bson.M{"tokenId": listing.TokenId}
	orderHash := listing.OrderHash.ToLower()

	// $set merge keeps name and image written by ingestion
	updater := bson.M{
		"tokenId":             listing.TokenId,
		"price":               listing.Price,
		"nftContract":         listing.NftContract.ToLower(),
		"marketplaceContract": listing.MarketplaceContract.ToLower(),
		"seaportOrder":        listing.SeaportOrder,
		"orderHash":           orderHash,
		"buyerAddress":        nil,
		"onChain":             false,
		"updatedAt":           time.Now(),
	}

	err := im.q.Patch(ctx, domain.TableMetadata, selector, updater, query.WithPatchUpsert(true))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("failed to q.Patch")
		return err
	}
	return nil
}

func (im *metadataRepoImpl) ClearListingByOrderHash(ctx ctx.Ctx, hash domain.OrderHash, buyer domain.Address) error {
	return im.clearListing(ctx, bson.M{"orderHash": hash.ToLower()}, buyer)
}

func (im *metadataRepoImpl) ClearListingByTokenId(ctx ctx.Ctx, tokenId domain.TokenId, buyer domain.Address) error {
	return im.clearListing(ctx, bson.M{"tokenId": tokenId}, buyer)
}

func (im *metadataRepoImpl) clearListing(ctx ctx.Ctx, selector bson.M, buyer domain.Address) error {
	updater := bson.M{
		"price":        "0",
		"seaportOrder": nil,
		"orderHash":    nil,
		"buyerAddress": buyer.ToLower(),
		"onChain":      true,
		"updatedAt":    time.Now(),
	}

	err := im.q.Patch(ctx, domain.TableMetadata, selector, updater)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("failed to q.Patch")
		return err
	}
	return nil
}
