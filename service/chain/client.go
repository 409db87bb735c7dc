package chain

import (
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/base/log"
	"github.com/bearmarket/goapi/domain"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

const receiptPollInterval = time.Second

type ClientCfg struct {
	RpcUrls map[domain.ChainId]string
}

// Client talks to ethereum nodes. Read calls go through Call, writes are
// split into SendTransaction plus WaitMined so callers decide how long to
// block on mining.
type Client interface {
	Call(bCtx.Ctx, domain.ChainId, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)
	ChainID(bCtx.Ctx, domain.ChainId) (domain.ChainId, error)
	PendingNonceAt(bCtx.Ctx, domain.ChainId, common.Address) (uint64, error)
	SuggestGasPrice(bCtx.Ctx, domain.ChainId) (*big.Int, error)
	EstimateGas(bCtx.Ctx, domain.ChainId, ethereum.CallMsg) (uint64, error)
	SendTransaction(bCtx.Ctx, domain.ChainId, *types.Transaction) error
	WaitMined(bCtx.Ctx, domain.ChainId, common.Hash) (*types.Receipt, error)
}

type clientImpl struct {
	clients map[domain.ChainId]*ethclient.Client
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var anyerr error
	clients := make(map[domain.ChainId]*ethclient.Client)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the caller start
			continue
		}
		clients[chainId] = client
	}
	return &clientImpl{
		clients: clients,
	}, anyerr
}

func (c *clientImpl) get(chainId domain.ChainId) (*ethclient.Client, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	return client, nil
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, err := c.get(chainId)
	if err != nil {
		return nil, err
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) ChainID(ctx bCtx.Ctx, chainId domain.ChainId) (domain.ChainId, error) {
	client, err := c.get(chainId)
	if err != nil {
		return 0, err
	}
	id, err := client.ChainID(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.ChainID failed")
		return 0, err
	}
	return domain.ChainId(id.Int64()), nil
}

func (c *clientImpl) PendingNonceAt(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address) (uint64, error) {
	client, err := c.get(chainId)
	if err != nil {
		return 0, err
	}
	return client.PendingNonceAt(ctx, addr)
}

func (c *clientImpl) SuggestGasPrice(ctx bCtx.Ctx, chainId domain.ChainId) (*big.Int, error) {
	client, err := c.get(chainId)
	if err != nil {
		return nil, err
	}
	return client.SuggestGasPrice(ctx)
}

func (c *clientImpl) EstimateGas(ctx bCtx.Ctx, chainId domain.ChainId, msg ethereum.CallMsg) (uint64, error) {
	client, err := c.get(chainId)
	if err != nil {
		return 0, err
	}
	return client.EstimateGas(ctx, msg)
}

func (c *clientImpl) SendTransaction(ctx bCtx.Ctx, chainId domain.ChainId, tx *types.Transaction) error {
	client, err := c.get(chainId)
	if err != nil {
		return err
	}
	if err := client.SendTransaction(ctx, tx); err != nil {
		ctx.WithFields(log.Fields{"err": err, "txHash": tx.Hash().Hex()}).Error("client.SendTransaction failed")
		return err
	}
	return nil
}

// WaitMined polls for the receipt until it shows up or the context ends.
func (c *clientImpl) WaitMined(ctx bCtx.Ctx, chainId domain.ChainId, txHash common.Hash) (*types.Receipt, error) {
	client, err := c.get(chainId)
	if err != nil {
		return nil, err
	}

	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := client.TransactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}
		if err != ethereum.NotFound {
			ctx.WithFields(log.Fields{"err": err, "txHash": txHash.Hex()}).Warn("fetch receipt failed")
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
