package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	bCtx "github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/domain"
	"github.com/bearmarket/goapi/domain/catalog"
	"github.com/bearmarket/goapi/domain/marketplace"
	"github.com/bearmarket/goapi/domain/wallet"
	"github.com/bearmarket/goapi/service/chain"
	"github.com/bearmarket/goapi/service/chain/contract"
	"github.com/bearmarket/goapi/service/marketapi"
	"github.com/bearmarket/goapi/service/seaport"
	walletService "github.com/bearmarket/goapi/service/wallet"
	catalog_usecase "github.com/bearmarket/goapi/stores/catalog/usecase"
	marketplace_usecase "github.com/bearmarket/goapi/stores/marketplace/usecase"
)

var (
	action  = pflag.String("action", "browse", "browse, list, buy or status")
	tokenId = pflag.String("token-id", "", "token id to list or buy")
	price   = pflag.String("price", "", "listing price in native units")
)

func init() {
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	// the signing key never lives in the config file
	viper.BindEnv("wallet_private_key", "WALLET_PRIVATE_KEY")
}

func fail(ctx bCtx.Ctx, err error, msg string) {
	ctx.WithField("err", err).Error(msg)
	os.Exit(1)
}

func main() {
	ctx := bCtx.Background()

	api := marketapi.NewClient(&marketapi.ClientCfg{
		BaseUrl:    viper.GetString("api.baseUrl"),
		HttpClient: http.Client{},
		Timeout:    viper.GetDuration("api.timeout"),
	})

	catalogUC := catalog_usecase.New(api)

	switch *action {
	case "status":
		status(ctx, api)
	case "browse":
		browse(ctx, catalogUC)
	case "list":
		runList(ctx, api, catalogUC)
	case "buy":
		runBuy(ctx, api, catalogUC)
	default:
		fmt.Fprintf(os.Stderr, "unknown action %q\n", *action)
		os.Exit(1)
	}
}

func status(ctx bCtx.Ctx, api marketapi.Client) {
	resp, err := api.GetStatus(ctx)
	if err != nil {
		fail(ctx, err, "status check failed")
	}
	fmt.Printf("ok=%v time=%s\n", resp.Ok, resp.Time)
}

func browse(ctx bCtx.Ctx, catalogUC catalog.UseCase) {
	for page := 1; ; page++ {
		batch, err := catalogUC.NextBatch(ctx)
		if err != nil {
			fail(ctx, err, "fetching catalog failed")
		}
		if len(batch) == 0 {
			return
		}
		fmt.Printf("--- page %d ---\n", page)
		for _, item := range batch {
			line := fmt.Sprintf("#%s %s %s", item.TokenId, item.Name, item.Image)
			if item.Price != nil {
				line += fmt.Sprintf(" listed at %s", *item.Price)
			}
			fmt.Println(line)
		}
	}
}

func runList(ctx bCtx.Ctx, api marketapi.Client, catalogUC catalog.UseCase) {
	if *tokenId == "" || *price == "" {
		fmt.Fprintln(os.Stderr, "list needs --token-id and --price")
		os.Exit(1)
	}
	p, err := decimal.NewFromString(*price)
	if err != nil {
		fail(ctx, err, "invalid price")
	}

	marketplaceUC, session := connect(ctx, api, catalogUC)
	res, err := marketplaceUC.List(ctx, session, domain.TokenId(*tokenId), p)
	if err != nil {
		fail(ctx, err, "listing failed")
	}
	fmt.Printf("listed, order hash %s\n", res.OrderHash)
}

func runBuy(ctx bCtx.Ctx, api marketapi.Client, catalogUC catalog.UseCase) {
	if *tokenId == "" {
		fmt.Fprintln(os.Stderr, "buy needs --token-id")
		os.Exit(1)
	}

	nfts, err := api.GetNfts(ctx)
	if err != nil {
		fail(ctx, err, "fetching nfts failed")
	}
	for _, nft := range nfts {
		if nft.TokenId != domain.TokenId(*tokenId) {
			continue
		}
		marketplaceUC, session := connect(ctx, api, catalogUC)
		res, err := marketplaceUC.Buy(ctx, session, nft)
		if err != nil {
			fail(ctx, err, "purchase failed")
		}
		fmt.Printf("bought token %s, tx %s\n", *tokenId, res.TxHash)
		return
	}
	fail(ctx, domain.ErrNotFound, "token not found")
}

// connect dials the chain, opens the wallet session and wires the
// marketplace flows around it.
func connect(ctx bCtx.Ctx, api marketapi.Client, catalogUC catalog.UseCase) (marketplace.UseCase, wallet.Session) {
	chainId := domain.ChainId(viper.GetInt32("network.chainId"))
	rpcUrl := viper.GetString("network.rpcUrl")
	nftContract := domain.Address(viper.GetString("contracts.nft")).ToLower()
	marketplaceContract := domain.Address(viper.GetString("contracts.marketplace")).ToLower()

	chainService, err := chain.NewClient(ctx, &chain.ClientCfg{
		RpcUrls: map[domain.ChainId]string{chainId: rpcUrl},
	})
	if err != nil {
		ctx.WithField("err", err).Warn("chainService started with error")
	}

	connector := walletService.NewConnector(chainService, &walletService.ConnectorCfg{
		ChainId:    chainId,
		PrivateKey: viper.GetString("wallet_private_key"),
	})
	session, err := connector.Connect(ctx)
	if err != nil {
		fail(ctx, err, "connecting wallet failed")
	}

	seaportService := seaport.New(contract.NewSeaport(chainService), marketplaceContract)
	marketplaceUC := marketplace_usecase.New(marketplace_usecase.Cfg{
		NftContract:         nftContract,
		MarketplaceContract: marketplaceContract,
	}, contract.NewErc721(chainService), seaportService, api, catalogUC)

	return marketplaceUC, session
}
