package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/base/database/mongoclient"
	"github.com/bearmarket/goapi/base/log"
	"github.com/bearmarket/goapi/domain"
	"github.com/bearmarket/goapi/domain/order"
	"github.com/bearmarket/goapi/service/query"
)

type orderRepoImpl struct {
	q query.Mongo
}

func NewOrderRepo(q query.Mongo) order.Repo {
	return &orderRepoImpl{q}
}

func (im *orderRepoImpl) makeQuery(opts ...order.FindAllOptionsFunc) (bson.M, int, string, error) {
	options, err := order.GetFindAllOptions(opts...)
	if err != nil {
		return nil, 0, "", err
	}
	qry := bson.M{}

	if options.TokenId != nil {
		qry["tokenId"] = *options.TokenId
	}

	if options.Seller != nil {
		qry["sellerAddress"] = *options.Seller
	}

	if options.Status != nil {
		qry["status"] = *options.Status
	}

	limit := 0
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	sort := "_id"
	if options.Sort != nil {
		sort = *options.Sort
	}

	return qry, limit, sort, nil
}

func (im *orderRepoImpl) FindAll(ctx ctx.Ctx, opts ...order.FindAllOptionsFunc) ([]*order.Order, error) {
	qry, limit, sort, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	res := []*order.Order{}
	err = im.q.Search(ctx, domain.TableOrders, 0, limit, sort, qry, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *orderRepoImpl) FindByHash(ctx ctx.Ctx, hash domain.OrderHash) (*order.Order, error) {
	qry := bson.M{"orderHash": hash.ToLower()}

	res := order.Order{}
	err := im.q.FindOne(ctx, domain.TableOrders, qry, &res)
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

func (im *orderRepoImpl) Upsert(ctx ctx.Ctx, _order *order.Order) error {
	_order.LowerCase()
	selector := bson.M{"orderHash": _order.OrderHash}

	err := im.q.Upsert(ctx, domain.TableOrders, selector, _order)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"order":    *_order,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}

func (im *orderRepoImpl) Patch(ctx ctx.Ctx, hash domain.OrderHash, patchable order.Patchable) error {
	selector := bson.M{"orderHash": hash.ToLower()}

	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Patch(ctx, domain.TableOrders, selector, updater)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"updater":  updater,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}
