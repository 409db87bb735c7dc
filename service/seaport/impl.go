package seaport

import (
	"strconv"

	bCtx "github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/base/log"
	"github.com/bearmarket/goapi/domain"
	"github.com/bearmarket/goapi/domain/order"
	"github.com/bearmarket/goapi/domain/wallet"
	"github.com/bearmarket/goapi/service/chain/contract"
)

type impl struct {
	seaport contract.SeaportContract
	// addr is the exchange contract, also the EIP-712 verifying contract
	addr domain.Address
}

func New(seaport contract.SeaportContract, addr domain.Address) Service {
	return &impl{
		seaport: seaport,
		addr:    addr.ToLower(),
	}
}

func (im *impl) CreateOrder(ctx bCtx.Ctx, session wallet.Session, req *CreateOrderRequest) (CreateOrderPlan, error) {
	counter, err := im.seaport.GetCounter(ctx, session.ChainId(), im.addr, session.Address())
	if err != nil {
		ctx.WithField("err", err).Error("get counter failed")
		return nil, err
	}

	salt, err := order.NewSalt()
	if err != nil {
		return nil, err
	}

	params := &order.Parameters{
		Offerer: session.Address().ToLower(),
		Zone:    domain.EmptyAddress,
		Offer: []order.OfferItem{
			{
				ItemType:             order.ItemTypeErc721,
				Token:                req.Collection.ToLower(),
				IdentifierOrCriteria: string(req.TokenId),
				StartAmount:          "1",
				EndAmount:            "1",
			},
		},
		Consideration: []order.ConsiderationItem{
			{
				ItemType:             order.ItemTypeNative,
				Token:                domain.EmptyAddress,
				IdentifierOrCriteria: "0",
				StartAmount:          req.PriceWei.String(),
				EndAmount:            req.PriceWei.String(),
				Recipient:            session.Address().ToLower(),
			},
		},
		OrderType:                       order.OrderTypeFullOpen,
		StartTime:                       strconv.FormatInt(req.StartTime.Unix(), 10),
		EndTime:                         strconv.FormatInt(req.EndTime.Unix(), 10),
		ZoneHash:                        order.ZeroZoneHash,
		Salt:                            salt,
		ConduitKey:                      domain.EmptyConduitKey,
		TotalOriginalConsiderationItems: 1,
		Counter:                         counter.String(),
	}

	hash, err := params.Hash()
	if err != nil {
		ctx.WithField("err", err).Error("hash order failed")
		return nil, err
	}

	return &createOrderPlan{
		im:      im,
		session: session,
		params:  params,
		hash:    hash,
	}, nil
}

type createOrderPlan struct {
	im      *impl
	session wallet.Session
	params  *order.Parameters
	hash    domain.OrderHash
}

func (p *createOrderPlan) OrderHash() domain.OrderHash {
	return p.hash
}

func (p *createOrderPlan) ExecuteAndWait(ctx bCtx.Ctx) (*order.SignedOrder, error) {
	typedData := p.params.TypedData(p.session.ChainId(), p.im.addr)
	signature, err := p.session.SignTypedData(ctx, typedData)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "orderHash": p.hash}).Error("sign order failed")
		return nil, err
	}
	return &order.SignedOrder{
		Parameters: *p.params,
		Signature:  signature,
	}, nil
}

func (im *impl) FulfillOrder(ctx bCtx.Ctx, session wallet.Session, signed *order.SignedOrder) (FulfillOrderPlan, error) {
	// surface malformed orders before anything is sent
	if _, err := signed.Parameters.NativeConsiderationTotal(); err != nil {
		return nil, err
	}
	return &fulfillOrderPlan{
		im:      im,
		session: session,
		signed:  signed,
	}, nil
}

type fulfillOrderPlan struct {
	im      *impl
	session wallet.Session
	signed  *order.SignedOrder
}

func (p *fulfillOrderPlan) ExecuteAndWait(ctx bCtx.Ctx) (*wallet.Receipt, error) {
	receipt, err := p.im.seaport.FulfillOrder(ctx, p.session, p.im.addr, p.signed)
	if err != nil {
		ctx.WithField("err", err).Error("fulfill order failed")
		return nil, err
	}
	return receipt, nil
}

func (im *impl) OrderHash(params *order.Parameters) (domain.OrderHash, error) {
	return params.Hash()
}
