package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/base/database/mongoclient"
	"github.com/bearmarket/goapi/base/database/redisclient"
	"github.com/bearmarket/goapi/base/log"
	"github.com/bearmarket/goapi/base/metrics"
	bValidator "github.com/bearmarket/goapi/base/validator"
	mmiddleware "github.com/bearmarket/goapi/middleware"
	"github.com/bearmarket/goapi/service/query"
	"github.com/bearmarket/goapi/service/redis"
	hc_delivery "github.com/bearmarket/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/bearmarket/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/bearmarket/goapi/stores/healthcheck/usecase"
	metadata_delivery "github.com/bearmarket/goapi/stores/metadata/delivery/http"
	metadata_repository "github.com/bearmarket/goapi/stores/metadata/repository"
	metadata_usecase "github.com/bearmarket/goapi/stores/metadata/usecase"
	order_delivery "github.com/bearmarket/goapi/stores/order/delivery/http"
	order_repository "github.com/bearmarket/goapi/stores/order/repository"
	order_usecase "github.com/bearmarket/goapi/stores/order/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient)

	// init redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd)
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	metadataRepo := metadata_repository.NewMetadataRepo(q)
	orderRepo := order_repository.NewOrderRepo(q)

	hc := hc_usecase.New(hcRepo)
	metadataUC := metadata_usecase.New(metadataRepo)
	orderUC := order_usecase.New(orderRepo, metadataRepo)

	hc_delivery.New(e, hc)
	metadata_delivery.New(e, metadataUC, redisCache)
	order_delivery.New(e, orderUC)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	sCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(sCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
