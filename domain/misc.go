package domain

import (
	"math/big"
	"strings"
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

// EmptyConduitKey routes fulfillment directly through the marketplace
// contract instead of a conduit.
const EmptyConduitKey = "0x0000000000000000000000000000000000000000000000000000000000000000"

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// TokenId is a decimal string. Token ids are uint256 on chain and routinely
// exceed float64 precision, so they are never held in a native number.
type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// ToBig parses the id as an arbitrary-precision integer. Returns
// ErrInvalidNumberFormat for anything but a plain decimal string.
func (i TokenId) ToBig() (*big.Int, error) {
	id, ok := new(big.Int).SetString(string(i), 10)
	if !ok || id.Sign() < 0 {
		return nil, ErrInvalidNumberFormat
	}
	return id, nil
}

type OrderHash string

func (h OrderHash) ToLower() OrderHash {
	return OrderHash(strings.ToLower(string(h)))
}

func (h OrderHash) IsEmpty() bool {
	return len(h) == 0
}

type TxHash string

// Table is a database collection name
type Table string

const (
	TableOrders   Table = "orders"
	TableMetadata Table = "metadata"
)

// ToBigInt parses a batch of decimal strings into big integers
func ToBigInt(nums []string) ([]*big.Int, error) {
	var bns []*big.Int
	for _, n := range nums {
		bn, ok := new(big.Int).SetString(n, 10)
		if !ok {
			return nil, ErrInvalidNumberFormat
		}
		bns = append(bns, bn)
	}
	return bns, nil
}
