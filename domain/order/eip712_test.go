package order

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/suite"

	"github.com/bearmarket/goapi/domain"
)

func testParameters() *Parameters {
	return &Parameters{
		Offerer: domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a"),
		Zone:    domain.EmptyAddress,
		Offer: []OfferItem{{
			ItemType:             ItemTypeErc721,
			Token:                domain.Address("0x1b36536c2a51ab687559a8934c7c9e5b1f8e4f5c"),
			IdentifierOrCriteria: "99194853094755497178469",
			StartAmount:          "1",
			EndAmount:            "1",
		}},
		Consideration: []ConsiderationItem{{
			ItemType:             ItemTypeNative,
			Token:                domain.EmptyAddress,
			IdentifierOrCriteria: "0",
			StartAmount:          "1500000000000000000",
			EndAmount:            "1500000000000000000",
			Recipient:            domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a"),
		}},
		OrderType:                       OrderTypeFullOpen,
		StartTime:                       "1700000000",
		EndTime:                         "1702592000",
		ZoneHash:                        ZeroZoneHash,
		Salt:                            "12345",
		ConduitKey:                      domain.EmptyConduitKey,
		TotalOriginalConsiderationItems: 1,
		Counter:                         "0",
	}
}

type eip712Suite struct {
	suite.Suite
}

func TestEip712Suite(t *testing.T) {
	suite.Run(t, new(eip712Suite))
}

func (s *eip712Suite) TestHashIsDeterministic() {
	a, err := testParameters().Hash()
	s.Require().NoError(err)
	b, err := testParameters().Hash()
	s.Require().NoError(err)
	s.Equal(a, b)

	s.True(strings.HasPrefix(string(a), "0x"))
	s.Len(string(a), 66)
}

func (s *eip712Suite) TestHashCoversEveryField() {
	base, err := testParameters().Hash()
	s.Require().NoError(err)

	mutations := map[string]func(*Parameters){
		"salt":    func(p *Parameters) { p.Salt = "54321" },
		"counter": func(p *Parameters) { p.Counter = "1" },
		"price":   func(p *Parameters) { p.Consideration[0].StartAmount = "2500000000000000000" },
		"tokenId": func(p *Parameters) { p.Offer[0].IdentifierOrCriteria = "7" },
		"endTime": func(p *Parameters) { p.EndTime = "1702592001" },
		"offerer": func(p *Parameters) { p.Offerer = domain.Address("0x1b36536c2a51ab687559a8934c7c9e5b1f8e4f5c") },
	}
	for name, mutate := range mutations {
		p := testParameters()
		mutate(p)
		mutated, err := p.Hash()
		s.Require().NoError(err, name)
		s.NotEqual(base, mutated, name)
	}
}

func (s *eip712Suite) TestTypedData() {
	td := testParameters().TypedData(domain.ChainId(1), domain.Address("0x0000000000000068F116a894984e2DB1123eB395"))

	s.Equal("OrderComponents", td.PrimaryType)
	s.Equal("Seaport", td.Domain.Name)
	s.Equal("1.6", td.Domain.Version)
	s.Equal("0x0000000000000068f116a894984e2db1123eb395", td.Domain.VerifyingContract)

	// the struct hash must survive the full typed-data signing path
	structHash, err := td.HashStruct(td.PrimaryType, td.Message)
	s.Require().NoError(err)
	own, err := testParameters().Hash()
	s.Require().NoError(err)
	s.Equal(string(own), hexutil.Encode(structHash))
}

func (s *eip712Suite) TestNativeConsiderationTotal() {
	p := testParameters()
	p.Consideration = append(p.Consideration, ConsiderationItem{
		ItemType:    ItemTypeNative,
		StartAmount: "500000000000000000",
		EndAmount:   "500000000000000000",
	}, ConsiderationItem{
		// non-native items never contribute to the attached value
		ItemType:    ItemTypeErc20,
		StartAmount: "999",
		EndAmount:   "999",
	})

	total, err := p.NativeConsiderationTotal()
	s.Require().NoError(err)
	s.Equal("2000000000000000000", total.String())
}

func (s *eip712Suite) TestNewSalt() {
	a, err := NewSalt()
	s.Require().NoError(err)
	b, err := NewSalt()
	s.Require().NoError(err)

	s.NotEqual(a, b)
	_, ok := new(big.Int).SetString(a, 10)
	s.True(ok)
}
