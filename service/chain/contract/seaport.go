package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	baseabi "github.com/bearmarket/goapi/base/abi"
	bCtx "github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/domain"
	"github.com/bearmarket/goapi/domain/order"
	"github.com/bearmarket/goapi/domain/wallet"
	"github.com/bearmarket/goapi/service/chain"
)

type SeaportContract interface {
	GetCounter(ctx bCtx.Ctx, chainId domain.ChainId, addr, offerer domain.Address) (*big.Int, error)
	FulfillOrder(ctx bCtx.Ctx, session wallet.Session, addr domain.Address, signed *order.SignedOrder) (*wallet.Receipt, error)
}

type Seaport struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewSeaport(chainService chain.Client) *Seaport {
	return &Seaport{
		abi:          baseabi.SeaportABI,
		chainService: chainService,
	}
}

func (s *Seaport) GetCounter(ctx bCtx.Ctx, chainId domain.ChainId, addr, offerer domain.Address) (*big.Int, error) {
	method := "getCounter"
	unpacked, err := s.chainService.Call(ctx, chainId, common.HexToAddress(string(addr)), nil, s.abi, method,
		common.HexToAddress(string(offerer)))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

// FulfillOrder submits the fulfillment transaction, attaching the summed
// native consideration as value, and waits for it to be mined.
func (s *Seaport) FulfillOrder(ctx bCtx.Ctx, session wallet.Session, addr domain.Address, signed *order.SignedOrder) (*wallet.Receipt, error) {
	abiOrder, err := toAbiOrder(signed)
	if err != nil {
		ctx.WithField("err", err).Error("order conversion failed")
		return nil, err
	}

	value, err := signed.Parameters.NativeConsiderationTotal()
	if err != nil {
		return nil, err
	}

	method := "fulfillOrder"
	data, err := s.abi.Pack(method, abiOrder, [32]byte{})
	if err != nil {
		ctx.WithField("err", err).Error("abi.Pack failed")
		return nil, err
	}

	return session.Transact(ctx, &wallet.Txn{
		To:    addr,
		Value: value,
		Data:  data,
	})
}

func toAbiOrder(signed *order.SignedOrder) (*baseabi.SeaportOrder, error) {
	p := signed.Parameters

	offer := make([]baseabi.SeaportOfferItem, 0, len(p.Offer))
	for _, o := range p.Offer {
		identifier, err := parseUint256(o.IdentifierOrCriteria)
		if err != nil {
			return nil, err
		}
		startAmount, err := parseUint256(o.StartAmount)
		if err != nil {
			return nil, err
		}
		endAmount, err := parseUint256(o.EndAmount)
		if err != nil {
			return nil, err
		}
		offer = append(offer, baseabi.SeaportOfferItem{
			ItemType:             uint8(o.ItemType),
			Token:                common.HexToAddress(string(o.Token)),
			IdentifierOrCriteria: identifier,
			StartAmount:          startAmount,
			EndAmount:            endAmount,
		})
	}

	consideration := make([]baseabi.SeaportConsiderationItem, 0, len(p.Consideration))
	for _, c := range p.Consideration {
		identifier, err := parseUint256(c.IdentifierOrCriteria)
		if err != nil {
			return nil, err
		}
		startAmount, err := parseUint256(c.StartAmount)
		if err != nil {
			return nil, err
		}
		endAmount, err := parseUint256(c.EndAmount)
		if err != nil {
			return nil, err
		}
		consideration = append(consideration, baseabi.SeaportConsiderationItem{
			ItemType:             uint8(c.ItemType),
			Token:                common.HexToAddress(string(c.Token)),
			IdentifierOrCriteria: identifier,
			StartAmount:          startAmount,
			EndAmount:            endAmount,
			Recipient:            common.HexToAddress(string(c.Recipient)),
		})
	}

	startTime, err := parseUint256(p.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := parseUint256(p.EndTime)
	if err != nil {
		return nil, err
	}
	salt, err := parseUint256(p.Salt)
	if err != nil {
		return nil, err
	}

	signature, err := hexutil.Decode(signed.Signature)
	if err != nil {
		return nil, err
	}

	return &baseabi.SeaportOrder{
		Parameters: baseabi.SeaportOrderParameters{
			Offerer:                         common.HexToAddress(string(p.Offerer)),
			Zone:                            common.HexToAddress(string(p.Zone)),
			Offer:                           offer,
			Consideration:                   consideration,
			OrderType:                       uint8(p.OrderType),
			StartTime:                       startTime,
			EndTime:                         endTime,
			ZoneHash:                        [32]byte(common.HexToHash(p.ZoneHash)),
			Salt:                            salt,
			ConduitKey:                      [32]byte(common.HexToHash(p.ConduitKey)),
			TotalOriginalConsiderationItems: big.NewInt(int64(p.TotalOriginalConsiderationItems)),
		},
		Signature: signature,
	}, nil
}

func parseUint256(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	return n, nil
}
