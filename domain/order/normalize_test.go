package order

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/bearmarket/goapi/domain"
)

const canonicalOrderJSON = `{
	"parameters": {
		"offerer": "0x939AE6A4C8dFdbB1F7085189574f0A938013952a",
		"zone": "0x0000000000000000000000000000000000000000",
		"offer": [{
			"itemType": 2,
			"token": "0x1B36536C2A51Ab687559a8934C7C9E5B1f8E4f5c",
			"identifierOrCriteria": "99194853094755497178469",
			"startAmount": "1",
			"endAmount": "1"
		}],
		"consideration": [{
			"itemType": 0,
			"token": "0x0000000000000000000000000000000000000000",
			"identifierOrCriteria": "0",
			"startAmount": "1500000000000000000",
			"endAmount": "1500000000000000000",
			"recipient": "0x939AE6A4C8dFdbB1F7085189574f0A938013952a"
		}],
		"orderType": 0,
		"startTime": "1700000000",
		"endTime": "1702592000",
		"zoneHash": "0x0000000000000000000000000000000000000000000000000000000000000000",
		"salt": "51554318750052919242239586902764882909813386335783989439029196026053892616972",
		"conduitKey": "0x0000000000000000000000000000000000000000000000000000000000000000",
		"totalOriginalConsiderationItems": 1,
		"counter": "0"
	},
	"signature": "0xDEADBEEF"
}`

type normalizeSuite struct {
	suite.Suite
}

func TestNormalizeSuite(t *testing.T) {
	suite.Run(t, new(normalizeSuite))
}

func (s *normalizeSuite) TestCanonicalShape() {
	signed, err := Normalize([]byte(canonicalOrderJSON))
	s.Require().NoError(err)

	p := signed.Parameters
	s.Equal(domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a"), p.Offerer)
	s.Require().Len(p.Offer, 1)
	s.Equal("99194853094755497178469", p.Offer[0].IdentifierOrCriteria)
	s.Equal(ItemTypeErc721, p.Offer[0].ItemType)
	s.Require().Len(p.Consideration, 1)
	s.Equal("1500000000000000000", p.Consideration[0].StartAmount)
	s.Equal(1, p.TotalOriginalConsiderationItems)
	s.Equal("0xdeadbeef", signed.Signature)
}

func (s *normalizeSuite) TestRoundTrip() {
	signed, err := Normalize([]byte(canonicalOrderJSON))
	s.Require().NoError(err)

	// serializing the canonical form and normalizing again is idempotent
	raw, err := json.Marshal(signed)
	s.Require().NoError(err)
	again, err := Normalize(raw)
	s.Require().NoError(err)
	s.Equal(signed, again)
}

func (s *normalizeSuite) TestStringEncodedPayload() {
	quoted, err := json.Marshal(canonicalOrderJSON)
	s.Require().NoError(err)

	signed, err := Normalize(quoted)
	s.Require().NoError(err)
	s.Equal("99194853094755497178469", signed.Parameters.Offer[0].IdentifierOrCriteria)
}

func (s *normalizeSuite) TestEnvelopeUnwrap() {
	wrapped := `{"order": ` + canonicalOrderJSON + `}`

	signed, err := Normalize([]byte(wrapped))
	s.Require().NoError(err)
	s.Equal("0xdeadbeef", signed.Signature)
}

func (s *normalizeSuite) TestBigNumberValues() {
	payload := `{
		"parameters": {
			"offerer": "0x939ae6a4c8dfdbb1f7085189574f0a938013952a",
			"offer": [{
				"itemType": 2,
				"token": "0x1b36536c2a51ab687559a8934c7c9e5b1f8e4f5c",
				"identifierOrCriteria": {"type": "BigNumber", "hex": "0x15015d1f74d2f6d07565"},
				"startAmount": {"_hex": "0x01"},
				"endAmount": "1"
			}],
			"consideration": [],
			"orderType": 0,
			"startTime": 1700000000,
			"endTime": "1702592000",
			"salt": "1",
			"counter": "0"
		},
		"signature": "0x"
	}`

	signed, err := Normalize([]byte(payload))
	s.Require().NoError(err)
	s.Equal("99194853094755497178469", signed.Parameters.Offer[0].IdentifierOrCriteria)
	s.Equal("1", signed.Parameters.Offer[0].StartAmount)
	s.Equal("1700000000", signed.Parameters.StartTime)
}

func (s *normalizeSuite) TestNonceFallsBackToCounter() {
	payload := `{
		"parameters": {
			"offerer": "0x939ae6a4c8dfdbb1f7085189574f0a938013952a",
			"offer": [],
			"consideration": [],
			"orderType": 0,
			"startTime": "0",
			"endTime": "1",
			"salt": "1",
			"nonce": "5"
		}
	}`

	signed, err := Normalize([]byte(payload))
	s.Require().NoError(err)
	s.Equal("5", signed.Parameters.Counter)
}

func (s *normalizeSuite) TestMissingCounterDefaultsToZero() {
	payload := `{
		"parameters": {
			"offerer": "0x939ae6a4c8dfdbb1f7085189574f0a938013952a",
			"offer": [],
			"consideration": [],
			"orderType": 0,
			"startTime": "0",
			"endTime": "1",
			"salt": "1"
		}
	}`

	signed, err := Normalize([]byte(payload))
	s.Require().NoError(err)
	s.Equal("0", signed.Parameters.Counter)
}

func (s *normalizeSuite) TestNegativeNumberRejected() {
	payload := `{
		"parameters": {
			"offerer": "0x939ae6a4c8dfdbb1f7085189574f0a938013952a",
			"offer": [],
			"consideration": [],
			"orderType": 0,
			"startTime": "-1",
			"endTime": "1",
			"salt": "1",
			"counter": "0"
		}
	}`

	_, err := Normalize([]byte(payload))
	s.Error(err)
}

func (s *normalizeSuite) TestNormalizeRecordLegacyKeys() {
	var inner interface{}
	s.Require().NoError(json.Unmarshal([]byte(canonicalOrderJSON), &inner))

	for _, key := range []string{"seaport_order", "seaportOrderJSON", "signedOrder"} {
		record := map[string]interface{}{key: inner}
		signed, err := NormalizeRecord(record)
		s.Require().NoError(err, key)
		s.Equal("0xdeadbeef", signed.Signature, key)
	}

	_, err := NormalizeRecord(map[string]interface{}{"something": "else"})
	s.ErrorIs(err, domain.ErrNoOrder)
}

func (s *normalizeSuite) TestEmptyParametersRejected() {
	_, err := Normalize([]byte(`{"parameters": {}}`))
	s.ErrorIs(err, domain.ErrNoOrder)

	_, err = Normalize([]byte(`"not an order"`))
	s.Error(err)
}
