package order

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strings"

	"golang.org/x/xerrors"

	"github.com/bearmarket/goapi/domain"
)

// Stored order payloads drifted across client versions: different field
// names, string-encoded vs parsed objects, an extra {order: ...} wrapper,
// and ethers-v5 BigNumber objects ({type:"BigNumber",hex:...} or {_hex:...})
// in place of plain values. Normalize absorbs all of that at the persistence
// boundary and produces the one canonical SignedOrder, with every uint256
// field re-rendered as a decimal string.

// legacy field names a signed order may be stored under, newest first
var legacyOrderKeys = []string{"seaport_order", "seaportOrderJSON", "signedOrder"}

// NormalizeRecord pulls a signed order out of a loosely-shaped record map,
// trying each historical field name. Returns ErrNoOrder when none of them
// holds a payload with a non-empty parameters section.
func NormalizeRecord(record map[string]interface{}) (*SignedOrder, error) {
	for _, key := range legacyOrderKeys {
		raw, ok := record[key]
		if !ok || raw == nil {
			continue
		}
		signed, err := NormalizeValue(raw)
		if err == nil {
			return signed, nil
		}
		if !xerrors.Is(err, domain.ErrNoOrder) {
			return nil, err
		}
	}
	return nil, domain.ErrNoOrder
}

// Normalize parses raw JSON in any historical shape.
func Normalize(raw []byte) (*SignedOrder, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	// preserve integer literals beyond float64 precision
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, xerrors.Errorf("decode order payload: %w", err)
	}
	return NormalizeValue(v)
}

// NormalizeValue normalizes an already-decoded payload. Strings are treated
// as embedded JSON documents.
func NormalizeValue(v interface{}) (*SignedOrder, error) {
	if s, ok := v.(string); ok {
		return Normalize([]byte(s))
	}

	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, domain.ErrNoOrder
	}
	// unwrap {order: ...} / {signedOrder: ...} envelopes
	if _, ok := obj["parameters"]; !ok {
		for _, key := range []string{"order", "signedOrder"} {
			if inner, ok := obj[key].(map[string]interface{}); ok {
				obj = inner
				break
			}
		}
	}

	params, ok := obj["parameters"].(map[string]interface{})
	if !ok || len(params) == 0 {
		return nil, domain.ErrNoOrder
	}

	p, err := normalizeParameters(params)
	if err != nil {
		return nil, err
	}

	signed := &SignedOrder{Parameters: *p}
	if sig, ok := obj["signature"].(string); ok {
		signed.Signature = strings.ToLower(sig)
	}
	return signed, nil
}

func normalizeParameters(params map[string]interface{}) (*Parameters, error) {
	p := &Parameters{
		Offerer:    normAddress(params["offerer"]),
		Zone:       normAddress(params["zone"]),
		ZoneHash:   normHexDefault(params["zoneHash"], ZeroZoneHash),
		ConduitKey: normHexDefault(params["conduitKey"], domain.EmptyConduitKey),
	}
	if p.Zone.IsEmpty() {
		p.Zone = domain.EmptyAddress
	}

	var err error
	if p.StartTime, err = normUint(params["startTime"]); err != nil {
		return nil, xerrors.Errorf("startTime: %w", err)
	}
	if p.EndTime, err = normUint(params["endTime"]); err != nil {
		return nil, xerrors.Errorf("endTime: %w", err)
	}
	if p.Salt, err = normUint(params["salt"]); err != nil {
		return nil, xerrors.Errorf("salt: %w", err)
	}

	orderType, err := normInt(params["orderType"])
	if err != nil {
		return nil, xerrors.Errorf("orderType: %w", err)
	}
	p.OrderType = OrderType(orderType)

	// older payloads predate the counter rename and still say nonce
	counter := params["counter"]
	if counter == nil {
		counter = params["nonce"]
	}
	if counter == nil {
		p.Counter = "0"
	} else if p.Counter, err = normUint(counter); err != nil {
		return nil, xerrors.Errorf("counter: %w", err)
	}

	offer, _ := params["offer"].([]interface{})
	for i, raw := range offer {
		item, ok := raw.(map[string]interface{})
		if !ok {
			return nil, xerrors.Errorf("offer[%d]: not an object", i)
		}
		oi, err := normalizeOfferItem(item)
		if err != nil {
			return nil, xerrors.Errorf("offer[%d]: %w", i, err)
		}
		p.Offer = append(p.Offer, *oi)
	}

	consideration, _ := params["consideration"].([]interface{})
	for i, raw := range consideration {
		item, ok := raw.(map[string]interface{})
		if !ok {
			return nil, xerrors.Errorf("consideration[%d]: not an object", i)
		}
		oi, err := normalizeOfferItem(item)
		if err != nil {
			return nil, xerrors.Errorf("consideration[%d]: %w", i, err)
		}
		p.Consideration = append(p.Consideration, ConsiderationItem{
			ItemType:             oi.ItemType,
			Token:                oi.Token,
			IdentifierOrCriteria: oi.IdentifierOrCriteria,
			StartAmount:          oi.StartAmount,
			EndAmount:            oi.EndAmount,
			Recipient:            normAddress(item["recipient"]),
		})
	}

	if total, err := normInt(params["totalOriginalConsiderationItems"]); err == nil {
		p.TotalOriginalConsiderationItems = total
	} else {
		p.TotalOriginalConsiderationItems = len(p.Consideration)
	}

	p.LowerCase()
	return p, nil
}

func normalizeOfferItem(item map[string]interface{}) (*OfferItem, error) {
	itemType, err := normInt(item["itemType"])
	if err != nil {
		return nil, xerrors.Errorf("itemType: %w", err)
	}
	oi := &OfferItem{
		ItemType: ItemType(itemType),
		Token:    normAddress(item["token"]),
	}
	if oi.IdentifierOrCriteria, err = normUint(item["identifierOrCriteria"]); err != nil {
		return nil, xerrors.Errorf("identifierOrCriteria: %w", err)
	}
	if oi.StartAmount, err = normUint(item["startAmount"]); err != nil {
		return nil, xerrors.Errorf("startAmount: %w", err)
	}
	if oi.EndAmount, err = normUint(item["endAmount"]); err != nil {
		return nil, xerrors.Errorf("endAmount: %w", err)
	}
	return oi, nil
}

// normUint renders any accepted encoding of a uint256 as a decimal string.
func normUint(v interface{}) (string, error) {
	switch n := v.(type) {
	case nil:
		return "", domain.ErrInvalidNumberFormat
	case string:
		return parseBigString(n)
	case json.Number:
		return parseBigString(n.String())
	case float64:
		// only reachable for payloads decoded without UseNumber; reject
		// anything that cannot be represented exactly
		i, frac := big.NewFloat(n).Int(nil)
		if frac != big.Exact || i.Sign() < 0 {
			return "", domain.ErrInvalidNumberFormat
		}
		return i.String(), nil
	case map[string]interface{}:
		// ethers-v5 BigNumber: {type:"BigNumber",hex:"0x..."} or {_hex:"0x..."}
		if hex, ok := n["hex"].(string); ok {
			return parseBigString(hex)
		}
		if hex, ok := n["_hex"].(string); ok {
			return parseBigString(hex)
		}
		return "", domain.ErrInvalidNumberFormat
	default:
		return "", domain.ErrInvalidNumberFormat
	}
}

func parseBigString(s string) (string, error) {
	s = strings.TrimSpace(s)
	var (
		i  *big.Int
		ok bool
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		i, ok = new(big.Int).SetString(s[2:], 16)
	} else {
		i, ok = new(big.Int).SetString(s, 10)
	}
	if !ok || i.Sign() < 0 {
		return "", domain.ErrInvalidNumberFormat
	}
	return i.String(), nil
}

func normInt(v interface{}) (int, error) {
	s, err := normUint(v)
	if err != nil {
		return 0, err
	}
	i, ok := new(big.Int).SetString(s, 10)
	if !ok || !i.IsInt64() {
		return 0, domain.ErrInvalidNumberFormat
	}
	return int(i.Int64()), nil
}

func normAddress(v interface{}) domain.Address {
	switch a := v.(type) {
	case string:
		return domain.Address(a).ToLower()
	case map[string]interface{}:
		if hex, ok := a["_hex"].(string); ok {
			return domain.Address(hex).ToLower()
		}
	}
	return ""
}

func normHexDefault(v interface{}, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return strings.ToLower(s)
	}
	return def
}
