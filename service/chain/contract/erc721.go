package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/bearmarket/goapi/base/abi"
	bCtx "github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/domain"
	"github.com/bearmarket/goapi/domain/wallet"
	"github.com/bearmarket/goapi/service/chain"
)

type Erc721Contract interface {
	OwnerOf(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, tokenId *big.Int) (domain.Address, error)
	IsApprovedForAll(ctx bCtx.Ctx, chainId domain.ChainId, addr, owner, operator domain.Address) (bool, error)
	TokenURI(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, tokenId *big.Int) (string, error)
	Name(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address) (string, error)
	SetApprovalForAll(ctx bCtx.Ctx, session wallet.Session, addr, operator domain.Address, approved bool) (*wallet.Receipt, error)
}

type Erc721 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc721(chainService chain.Client) *Erc721 {
	return &Erc721{
		abi:          baseabi.ERC721TokenABI,
		chainService: chainService,
	}
}

func (e *Erc721) OwnerOf(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, tokenId *big.Int) (domain.Address, error) {
	method := "ownerOf"
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(string(addr)), nil, e.abi, method, tokenId)
	if err != nil {
		return "", err
	}
	return domain.Address(unpacked[0].(common.Address).String()).ToLower(), nil
}

func (e *Erc721) IsApprovedForAll(ctx bCtx.Ctx, chainId domain.ChainId, addr, owner, operator domain.Address) (bool, error) {
	method := "isApprovedForAll"
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(string(addr)), nil, e.abi, method,
		common.HexToAddress(string(owner)), common.HexToAddress(string(operator)))
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *Erc721) TokenURI(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, tokenId *big.Int) (string, error) {
	method := "tokenURI"
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(string(addr)), nil, e.abi, method, tokenId)
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

func (e *Erc721) Name(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address) (string, error) {
	method := "name"
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(string(addr)), nil, e.abi, method)
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

func (e *Erc721) SetApprovalForAll(ctx bCtx.Ctx, session wallet.Session, addr, operator domain.Address, approved bool) (*wallet.Receipt, error) {
	method := "setApprovalForAll"
	data, err := e.abi.Pack(method, common.HexToAddress(string(operator)), approved)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Pack failed")
		return nil, err
	}
	return session.Transact(ctx, &wallet.Txn{
		To:    addr,
		Value: big.NewInt(0),
		Data:  data,
	})
}
