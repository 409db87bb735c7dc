package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var SeaportABI abi.ABI

var seaportABI = `[{"type":"function","name":"getCounter","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"address","name":"offerer"}],"outputs":[{"type":"uint256","name":"counter"}]},{"type":"function","name":"fulfillOrder","constant":false,"stateMutability":"payable","payable":true,"inputs":[{"type":"tuple","name":"order","components":[{"type":"tuple","name":"parameters","components":[{"type":"address","name":"offerer"},{"type":"address","name":"zone"},{"type":"tuple[]","name":"offer","components":[{"type":"uint8","name":"itemType"},{"type":"address","name":"token"},{"type":"uint256","name":"identifierOrCriteria"},{"type":"uint256","name":"startAmount"},{"type":"uint256","name":"endAmount"}]},{"type":"tuple[]","name":"consideration","components":[{"type":"uint8","name":"itemType"},{"type":"address","name":"token"},{"type":"uint256","name":"identifierOrCriteria"},{"type":"uint256","name":"startAmount"},{"type":"uint256","name":"endAmount"},{"type":"address","name":"recipient"}]},{"type":"uint8","name":"orderType"},{"type":"uint256","name":"startTime"},{"type":"uint256","name":"endTime"},{"type":"bytes32","name":"zoneHash"},{"type":"uint256","name":"salt"},{"type":"bytes32","name":"conduitKey"},{"type":"uint256","name":"totalOriginalConsiderationItems"}]},{"type":"bytes","name":"signature"}]},{"type":"bytes32","name":"fulfillerConduitKey"}],"outputs":[{"type":"bool","name":"fulfilled"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(seaportABI))
	if err != nil {
		panic("Failed to parse seaport abi")
	}
	SeaportABI = _abi
}

// Argument structs for packing seaport calldata. Field order matters, it has
// to line up with the tuple components above.

type SeaportOfferItem struct {
	ItemType             uint8
	Token                common.Address
	IdentifierOrCriteria *big.Int
	StartAmount          *big.Int
	EndAmount            *big.Int
}

type SeaportConsiderationItem struct {
	ItemType             uint8
	Token                common.Address
	IdentifierOrCriteria *big.Int
	StartAmount          *big.Int
	EndAmount            *big.Int
	Recipient            common.Address
}

type SeaportOrderParameters struct {
	Offerer                         common.Address
	Zone                            common.Address
	Offer                           []SeaportOfferItem
	Consideration                   []SeaportConsiderationItem
	OrderType                       uint8
	StartTime                       *big.Int
	EndTime                         *big.Int
	ZoneHash                        [32]byte
	Salt                            *big.Int
	ConduitKey                      [32]byte
	TotalOriginalConsiderationItems *big.Int
}

type SeaportOrder struct {
	Parameters SeaportOrderParameters
	Signature  []byte
}
