package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/base/database/mongoclient"
	hcdomain "github.com/bearmarket/goapi/domain/healthcheck"
	"github.com/bearmarket/goapi/domain/keys"
	"github.com/bearmarket/goapi/service/redis"
)

const pingTimeout = 2 * time.Second

type impl struct {
	mgoClient  *mongoclient.Client
	redisCache redis.Service
}

// New creates the healthcheck repo over the two stores the API depends on
func New(
	mgoClient *mongoclient.Client,
	redisCache redis.Service,
) hcdomain.Repo {
	return &impl{
		mgoClient:  mgoClient,
		redisCache: redisCache,
	}
}

// Ping reports the first store check that fails, mongo before redis
func (im *impl) Ping(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := im.pingMongo(ctx); err != nil {
		return err
	}
	return im.pingRedis(ctx)
}

func (im *impl) pingMongo(context ctx.Ctx) error {
	if err := im.mgoClient.Ping(context, readpref.Primary()); err != nil {
		context.WithField("err", err).Error("mongo ping failed")
		return err
	}
	return nil
}

// pingRedis writes a short-lived key, a read-only check would pass on a
// replica that cannot take the cache writes the API depends on
func (im *impl) pingRedis(context ctx.Ctx) error {
	key := keys.RedisKey(keys.PfxHealthCheck, "ping")
	if err := im.redisCache.Set(context, key, []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("redis ping failed")
		return err
	}
	return nil
}
