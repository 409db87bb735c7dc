package wallet

import (
	"crypto/ecdsa"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	bCtx "github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/base/log"
	"github.com/bearmarket/goapi/domain"
	"github.com/bearmarket/goapi/domain/wallet"
	"github.com/bearmarket/goapi/service/chain"
)

type ConnectorCfg struct {
	ChainId    domain.ChainId
	PrivateKey string
}

type connector struct {
	chainService chain.Client
	cfg          *ConnectorCfg
}

// NewConnector builds a private-key backed wallet connector.
func NewConnector(chainService chain.Client, cfg *ConnectorCfg) wallet.Connector {
	return &connector{
		chainService: chainService,
		cfg:          cfg,
	}
}

func (c *connector) Connect(ctx bCtx.Ctx) (wallet.Session, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(c.cfg.PrivateKey, "0x"))
	if err != nil {
		ctx.WithField("err", err).Error("parse private key failed")
		return nil, err
	}

	nodeChainId, err := c.chainService.ChainID(ctx, c.cfg.ChainId)
	if err != nil {
		return nil, err
	}
	if nodeChainId != c.cfg.ChainId {
		ctx.WithFields(log.Fields{
			"want": c.cfg.ChainId,
			"got":  nodeChainId,
		}).Error("rpc endpoint serves another chain")
		return nil, domain.ErrWrongChain
	}

	addr := crypto.PubkeyToAddress(key.PublicKey)
	ctx.WithFields(log.Fields{
		"address": addr.Hex(),
		"chainId": c.cfg.ChainId,
	}).Info("wallet connected")

	return &session{
		chainService: c.chainService,
		key:          key,
		address:      domain.Address(addr.Hex()).ToLower(),
		chainId:      c.cfg.ChainId,
	}, nil
}

type session struct {
	chainService chain.Client
	key          *ecdsa.PrivateKey
	address      domain.Address
	chainId      domain.ChainId
}

func (s *session) Address() domain.Address {
	return s.address
}

func (s *session) ChainId() domain.ChainId {
	return s.chainId
}

func (s *session) SignTypedData(ctx bCtx.Ctx, typedData apitypes.TypedData) (string, error) {
	domainSeparator, err := typedData.HashStruct("EIP712Domain", typedData.Domain.Map())
	if err != nil {
		ctx.WithField("err", err).Error("hash domain failed")
		return "", err
	}
	messageHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		ctx.WithField("err", err).Error("hash message failed")
		return "", err
	}

	raw := append([]byte("\x19\x01"), append(domainSeparator, messageHash...)...)
	digest := crypto.Keccak256(raw)

	sig, err := crypto.Sign(digest, s.key)
	if err != nil {
		ctx.WithField("err", err).Error("sign failed")
		return "", err
	}
	// recovery id to ethereum convention
	sig[64] += 27
	return hexutil.Encode(sig), nil
}

func (s *session) Transact(ctx bCtx.Ctx, txn *wallet.Txn) (*wallet.Receipt, error) {
	from := common.HexToAddress(string(s.address))
	to := common.HexToAddress(string(txn.To))

	nonce, err := s.chainService.PendingNonceAt(ctx, s.chainId, from)
	if err != nil {
		ctx.WithField("err", err).Error("fetch nonce failed")
		return nil, err
	}
	gasPrice, err := s.chainService.SuggestGasPrice(ctx, s.chainId)
	if err != nil {
		ctx.WithField("err", err).Error("fetch gas price failed")
		return nil, err
	}
	gas, err := s.chainService.EstimateGas(ctx, s.chainId, ethereum.CallMsg{
		From:  from,
		To:    &to,
		Value: txn.Value,
		Data:  txn.Data,
	})
	if err != nil {
		ctx.WithField("err", err).Error("estimate gas failed")
		return nil, err
	}

	tx := types.NewTransaction(nonce, to, txn.Value, gas, gasPrice, txn.Data)
	signer := types.NewEIP155Signer(big.NewInt(int64(s.chainId)))
	signedTx, err := types.SignTx(tx, signer, s.key)
	if err != nil {
		ctx.WithField("err", err).Error("sign tx failed")
		return nil, err
	}

	if err := s.chainService.SendTransaction(ctx, s.chainId, signedTx); err != nil {
		return nil, err
	}

	ctx.WithFields(log.Fields{
		"txHash": signedTx.Hash().Hex(),
		"to":     txn.To,
	}).Info("transaction sent")

	receipt, err := s.chainService.WaitMined(ctx, s.chainId, signedTx.Hash())
	if err != nil {
		return nil, err
	}

	return &wallet.Receipt{
		TxHash:      domain.TxHash(receipt.TxHash.Hex()),
		Status:      receipt.Status,
		BlockNumber: receipt.BlockNumber.Uint64(),
	}, nil
}
