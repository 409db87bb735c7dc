package wallet

import (
	"math/big"

	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/domain"
)

// Txn is a transaction request against the connected chain.
type Txn struct {
	To    domain.Address
	Value *big.Int
	Data  []byte
}

// Receipt reports a mined transaction.
type Receipt struct {
	TxHash      domain.TxHash
	Status      uint64
	BlockNumber uint64
}

// Session is an active wallet connection. It replaces the usual pile of
// module-level provider/signer globals: flows receive a session explicitly
// and a disconnected wallet simply has no session value.
//
// Transact blocks until the transaction is mined; there is no timeout beyond
// the context's own deadline.
type Session interface {
	Address() domain.Address
	ChainId() domain.ChainId
	SignTypedData(ctx.Ctx, apitypes.TypedData) (string, error)
	Transact(ctx.Ctx, *Txn) (*Receipt, error)
}

// Connector opens sessions. Connect fails when the RPC endpoint serves a
// chain other than the configured one.
type Connector interface {
	Connect(ctx.Ctx) (Session, error)
}
