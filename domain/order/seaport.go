package order

import (
	"crypto/rand"
	"math/big"

	"github.com/bearmarket/goapi/domain"
)

// Seaport item and order type enums, as defined by the exchange contract.
type ItemType int

const (
	ItemTypeNative  ItemType = 0
	ItemTypeErc20   ItemType = 1
	ItemTypeErc721  ItemType = 2
	ItemTypeErc1155 ItemType = 3
)

type OrderType int

const (
	// OrderTypeFullOpen is fulfillable by anyone, no zone restrictions
	OrderTypeFullOpen OrderType = 0
)

const ZeroZoneHash = "0x0000000000000000000000000000000000000000000000000000000000000000"

// OfferItem is one asset offered by the order signer. All uint256 fields are
// decimal strings; token ids and amounts must never pass through a native
// float, which silently truncates above 53 bits.
type OfferItem struct {
	ItemType             ItemType       `json:"itemType" bson:"itemType"`
	Token                domain.Address `json:"token" bson:"token"`
	IdentifierOrCriteria string         `json:"identifierOrCriteria" bson:"identifierOrCriteria"`
	StartAmount          string         `json:"startAmount" bson:"startAmount"`
	EndAmount            string         `json:"endAmount" bson:"endAmount"`
}

// ConsiderationItem is one asset the order signer asks for in return.
type ConsiderationItem struct {
	ItemType             ItemType       `json:"itemType" bson:"itemType"`
	Token                domain.Address `json:"token" bson:"token"`
	IdentifierOrCriteria string         `json:"identifierOrCriteria" bson:"identifierOrCriteria"`
	StartAmount          string         `json:"startAmount" bson:"startAmount"`
	EndAmount            string         `json:"endAmount" bson:"endAmount"`
	Recipient            domain.Address `json:"recipient" bson:"recipient"`
}

// Parameters is the canonical in-memory form of a Seaport order. Stored
// payloads from older clients arrive in several shapes; Normalize converts
// them all into this one.
type Parameters struct {
	Offerer                         domain.Address      `json:"offerer" bson:"offerer"`
	Zone                            domain.Address      `json:"zone" bson:"zone"`
	Offer                           []OfferItem         `json:"offer" bson:"offer"`
	Consideration                   []ConsiderationItem `json:"consideration" bson:"consideration"`
	OrderType                       OrderType           `json:"orderType" bson:"orderType"`
	StartTime                       string              `json:"startTime" bson:"startTime"`
	EndTime                         string              `json:"endTime" bson:"endTime"`
	ZoneHash                        string              `json:"zoneHash" bson:"zoneHash"`
	Salt                            string              `json:"salt" bson:"salt"`
	ConduitKey                      string              `json:"conduitKey" bson:"conduitKey"`
	TotalOriginalConsiderationItems int                 `json:"totalOriginalConsiderationItems" bson:"totalOriginalConsiderationItems"`
	Counter                         string              `json:"counter" bson:"counter"`
}

// SignedOrder pairs order parameters with the offerer's EIP-712 signature.
type SignedOrder struct {
	Parameters Parameters `json:"parameters" bson:"parameters"`
	Signature  string     `json:"signature" bson:"signature"`
}

func (p *Parameters) LowerCase() {
	p.Offerer = p.Offerer.ToLower()
	p.Zone = p.Zone.ToLower()
	for i := range p.Offer {
		p.Offer[i].Token = p.Offer[i].Token.ToLower()
	}
	for i := range p.Consideration {
		p.Consideration[i].Token = p.Consideration[i].Token.ToLower()
		p.Consideration[i].Recipient = p.Consideration[i].Recipient.ToLower()
	}
}

// NativeConsiderationTotal sums the start amounts of the native-currency
// consideration items, the value a fulfiller must attach.
func (p *Parameters) NativeConsiderationTotal() (*big.Int, error) {
	total := new(big.Int)
	for _, c := range p.Consideration {
		if c.ItemType != ItemTypeNative {
			continue
		}
		amount, ok := new(big.Int).SetString(c.StartAmount, 10)
		if !ok {
			return nil, domain.ErrInvalidNumberFormat
		}
		total.Add(total, amount)
	}
	return total, nil
}

// NewSalt draws a fresh random 256-bit salt, returned as a decimal string.
func NewSalt() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return new(big.Int).SetBytes(buf).String(), nil
}
