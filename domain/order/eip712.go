package order

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/bearmarket/goapi/domain"
)

const (
	PrimaryType      = "OrderComponents"
	Eip712DomainName = "EIP712Domain"

	seaportName    = "Seaport"
	seaportVersion = "1.6"
)

func GetDomainSeparator(chainId domain.ChainId, address domain.Address) apitypes.TypedDataDomain {
	return apitypes.TypedDataDomain{
		Name:              seaportName,
		Version:           seaportVersion,
		ChainId:           math.NewHexOrDecimal256(int64(chainId)),
		VerifyingContract: address.ToLowerStr(),
	}
}

var OrderTypes = apitypes.Types{
	"OrderComponents": {
		{Name: "offerer", Type: "address"},
		{Name: "zone", Type: "address"},
		{Name: "offer", Type: "OfferItem[]"},
		{Name: "consideration", Type: "ConsiderationItem[]"},
		{Name: "orderType", Type: "uint8"},
		{Name: "startTime", Type: "uint256"},
		{Name: "endTime", Type: "uint256"},
		{Name: "zoneHash", Type: "bytes32"},
		{Name: "salt", Type: "uint256"},
		{Name: "conduitKey", Type: "bytes32"},
		{Name: "counter", Type: "uint256"},
	},
	"OfferItem": {
		{Name: "itemType", Type: "uint8"},
		{Name: "token", Type: "address"},
		{Name: "identifierOrCriteria", Type: "uint256"},
		{Name: "startAmount", Type: "uint256"},
		{Name: "endAmount", Type: "uint256"},
	},
	"ConsiderationItem": {
		{Name: "itemType", Type: "uint8"},
		{Name: "token", Type: "address"},
		{Name: "identifierOrCriteria", Type: "uint256"},
		{Name: "startAmount", Type: "uint256"},
		{Name: "endAmount", Type: "uint256"},
		{Name: "recipient", Type: "address"},
	},
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
}

func (i *OfferItem) ToMessage() apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"itemType":             itemTypeStr(i.ItemType),
		"token":                i.Token.ToLowerStr(),
		"identifierOrCriteria": i.IdentifierOrCriteria,
		"startAmount":          i.StartAmount,
		"endAmount":            i.EndAmount,
	}
}

func (i *ConsiderationItem) ToMessage() apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"itemType":             itemTypeStr(i.ItemType),
		"token":                i.Token.ToLowerStr(),
		"identifierOrCriteria": i.IdentifierOrCriteria,
		"startAmount":          i.StartAmount,
		"endAmount":            i.EndAmount,
		"recipient":            i.Recipient.ToLowerStr(),
	}
}

func (p *Parameters) ToMessage() apitypes.TypedDataMessage {
	offer := []interface{}{}
	for i := range p.Offer {
		offer = append(offer, p.Offer[i].ToMessage())
	}
	consideration := []interface{}{}
	for i := range p.Consideration {
		consideration = append(consideration, p.Consideration[i].ToMessage())
	}
	return apitypes.TypedDataMessage{
		"offerer":       p.Offerer.ToLowerStr(),
		"zone":          p.Zone.ToLowerStr(),
		"offer":         offer,
		"consideration": consideration,
		"orderType":     orderTypeStr(p.OrderType),
		"startTime":     p.StartTime,
		"endTime":       p.EndTime,
		"zoneHash":      p.ZoneHash,
		"salt":          p.Salt,
		"conduitKey":    p.ConduitKey,
		"counter":       p.Counter,
	}
}

// TypedData assembles the full EIP-712 payload a wallet signs.
func (p *Parameters) TypedData(chainId domain.ChainId, verifyingContract domain.Address) apitypes.TypedData {
	return apitypes.TypedData{
		Types:       OrderTypes,
		PrimaryType: PrimaryType,
		Domain:      GetDomainSeparator(chainId, verifyingContract),
		Message:     p.ToMessage(),
	}
}

// Hash computes the canonical order hash, the struct hash of the order
// components. It depends only on the parameters, matching the on-chain
// getOrderHash.
func (p *Parameters) Hash() (domain.OrderHash, error) {
	typedData := apitypes.TypedData{
		Types:       OrderTypes,
		PrimaryType: PrimaryType,
		// the struct hash does not cover the domain; any one will do
		Domain:  GetDomainSeparator(1, domain.EmptyAddress),
		Message: p.ToMessage(),
	}
	hash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return "", err
	}
	return domain.OrderHash(hexutil.Encode(hash)), nil
}

func itemTypeStr(t ItemType) string {
	return strconv.Itoa(int(t))
}

func orderTypeStr(t OrderType) string {
	return strconv.Itoa(int(t))
}
