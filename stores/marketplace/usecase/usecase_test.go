package usecase

import (
	"errors"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/domain"
	mCatalog "github.com/bearmarket/goapi/domain/catalog/mocks"
	"github.com/bearmarket/goapi/domain/metadata"
	"github.com/bearmarket/goapi/domain/order"
	"github.com/bearmarket/goapi/domain/wallet"
	mWallet "github.com/bearmarket/goapi/domain/wallet/mocks"
	mContract "github.com/bearmarket/goapi/service/chain/contract/mocks"
	"github.com/bearmarket/goapi/service/marketapi"
	mMarketapi "github.com/bearmarket/goapi/service/marketapi/mocks"
	"github.com/bearmarket/goapi/service/seaport"
	mSeaport "github.com/bearmarket/goapi/service/seaport/mocks"
)

const (
	nftContract         = domain.Address("0x1b36536c2a51ab687559a8934c7c9e5b1f8e4f5c")
	marketplaceContract = domain.Address("0x0000000000000068f116a894984e2db1123eb395")
	sellerAddress       = domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a")
)

type marketplaceUseCaseSuite struct {
	suite.Suite

	erc721  *mContract.Erc721Contract
	seaport *mSeaport.Service
	api     *mMarketapi.Client
	catalog *mCatalog.UseCase
	session *mWallet.Session
	im      *impl
}

func (s *marketplaceUseCaseSuite) SetupTest() {
	s.erc721 = &mContract.Erc721Contract{}
	s.seaport = &mSeaport.Service{}
	s.api = &mMarketapi.Client{}
	s.catalog = &mCatalog.UseCase{}
	s.session = &mWallet.Session{}
	s.session.On("Address").Return(sellerAddress).Maybe()
	s.session.On("ChainId").Return(domain.ChainId(1)).Maybe()
	s.im = New(Cfg{
		NftContract:         nftContract,
		MarketplaceContract: marketplaceContract,
	}, s.erc721, s.seaport, s.api, s.catalog).(*impl)
}

func TestMarketplaceUseCaseSuite(t *testing.T) {
	suite.Run(t, new(marketplaceUseCaseSuite))
}

func (s *marketplaceUseCaseSuite) TestList() {
	_ctx := ctx.Background()
	hash := domain.OrderHash("0xdef1")
	signed := &order.SignedOrder{Signature: "0xdeadbeef"}

	s.erc721.On("OwnerOf", mock.Anything, domain.ChainId(1), nftContract, big.NewInt(7)).Return(sellerAddress, nil).Once()
	s.erc721.On("IsApprovedForAll", mock.Anything, domain.ChainId(1), nftContract, sellerAddress, marketplaceContract).Return(true, nil).Once()

	plan := &mSeaport.CreateOrderPlan{}
	plan.On("OrderHash").Return(hash)
	plan.On("ExecuteAndWait", mock.Anything).Return(signed, nil).Once()

	s.seaport.On("CreateOrder", mock.Anything, s.session, mock.MatchedBy(func(req *seaport.CreateOrderRequest) bool {
		return req.Collection == nftContract &&
			req.TokenId == domain.TokenId("7") &&
			req.PriceWei.Cmp(big.NewInt(1500000000000000000)) == 0 &&
			req.EndTime.Sub(req.StartTime) == listingDuration
	})).Return(plan, nil).Once()

	s.api.On("PostOrder", mock.Anything, mock.MatchedBy(func(req *marketapi.OrderRequest) bool {
		return req.OrderHash == hash &&
			req.SellerAddress == sellerAddress &&
			req.Price == "1.5" &&
			req.SeaportOrder == signed &&
			!req.OnChain
	})).Return(nil).Once()
	s.catalog.On("Invalidate").Return().Once()

	res, err := s.im.List(_ctx, s.session, domain.TokenId("7"), decimal.RequireFromString("1.5"))
	s.NoError(err)
	s.Equal(hash, res.OrderHash)
	s.True(res.Validated)

	s.erc721.AssertNotCalled(s.T(), "SetApprovalForAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.api.AssertExpectations(s.T())
	s.catalog.AssertExpectations(s.T())
	plan.AssertExpectations(s.T())
}

func (s *marketplaceUseCaseSuite) TestListNotOwner() {
	_ctx := ctx.Background()
	other := domain.Address("0x0000000000000000000000000000000000000bad")

	s.erc721.On("OwnerOf", mock.Anything, domain.ChainId(1), nftContract, big.NewInt(7)).Return(other, nil).Once()

	_, err := s.im.List(_ctx, s.session, domain.TokenId("7"), decimal.RequireFromString("1.5"))
	s.Equal(domain.ErrNotOwner, err)

	// nothing is signed or sent when the session does not own the token
	s.seaport.AssertNotCalled(s.T(), "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	s.session.AssertNotCalled(s.T(), "SignTypedData", mock.Anything, mock.Anything)
	s.api.AssertNotCalled(s.T(), "PostOrder", mock.Anything, mock.Anything)
	s.catalog.AssertNotCalled(s.T(), "Invalidate")
}

func (s *marketplaceUseCaseSuite) TestListGrantsApprovalOnce() {
	_ctx := ctx.Background()
	hash := domain.OrderHash("0xdef1")

	s.erc721.On("OwnerOf", mock.Anything, domain.ChainId(1), nftContract, big.NewInt(7)).Return(sellerAddress, nil).Once()
	s.erc721.On("IsApprovedForAll", mock.Anything, domain.ChainId(1), nftContract, sellerAddress, marketplaceContract).Return(false, nil).Once()
	s.erc721.On("SetApprovalForAll", mock.Anything, s.session, nftContract, marketplaceContract, true).Return(&wallet.Receipt{Status: 1}, nil).Once()

	plan := &mSeaport.CreateOrderPlan{}
	plan.On("OrderHash").Return(hash)
	plan.On("ExecuteAndWait", mock.Anything).Return(&order.SignedOrder{}, nil).Once()

	s.seaport.On("CreateOrder", mock.Anything, s.session, mock.Anything).Return(plan, nil).Once()
	s.api.On("PostOrder", mock.Anything, mock.Anything).Return(nil).Once()
	s.catalog.On("Invalidate").Return().Once()

	_, err := s.im.List(_ctx, s.session, domain.TokenId("7"), decimal.RequireFromString("1"))
	s.NoError(err)
	s.erc721.AssertNumberOfCalls(s.T(), "SetApprovalForAll", 1)
}

func (s *marketplaceUseCaseSuite) TestListApiFailureKeepsCatalog() {
	_ctx := ctx.Background()

	s.erc721.On("OwnerOf", mock.Anything, domain.ChainId(1), nftContract, big.NewInt(7)).Return(sellerAddress, nil).Once()
	s.erc721.On("IsApprovedForAll", mock.Anything, domain.ChainId(1), nftContract, sellerAddress, marketplaceContract).Return(true, nil).Once()

	plan := &mSeaport.CreateOrderPlan{}
	plan.On("OrderHash").Return(domain.OrderHash("0xdef1"))
	plan.On("ExecuteAndWait", mock.Anything).Return(&order.SignedOrder{}, nil).Once()

	s.seaport.On("CreateOrder", mock.Anything, s.session, mock.Anything).Return(plan, nil).Once()
	s.api.On("PostOrder", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

	_, err := s.im.List(_ctx, s.session, domain.TokenId("7"), decimal.RequireFromString("1"))
	s.Error(err)
	s.catalog.AssertNotCalled(s.T(), "Invalidate")
}

func (s *marketplaceUseCaseSuite) TestListBadTokenId() {
	_ctx := ctx.Background()

	_, err := s.im.List(_ctx, s.session, domain.TokenId("0x1f"), decimal.RequireFromString("1"))
	s.Equal(domain.ErrInvalidNumberFormat, err)

	// token ids are unsigned
	_, err = s.im.List(_ctx, s.session, domain.TokenId("-7"), decimal.RequireFromString("1"))
	s.Equal(domain.ErrInvalidNumberFormat, err)
	s.erc721.AssertNotCalled(s.T(), "OwnerOf", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *marketplaceUseCaseSuite) TestListBadPrice() {
	_ctx := ctx.Background()

	_, err := s.im.List(_ctx, s.session, domain.TokenId("7"), decimal.Zero)
	s.Equal(domain.ErrInvalidNumberFormat, err)

	// more precision than wei can carry
	_, err = s.im.List(_ctx, s.session, domain.TokenId("7"), decimal.RequireFromString("0.0000000000000000001"))
	s.Equal(domain.ErrInvalidNumberFormat, err)
}

func (s *marketplaceUseCaseSuite) TestBuy() {
	_ctx := ctx.Background()
	hash := domain.OrderHash("0xdef1")
	signed := &order.SignedOrder{Signature: "0xdeadbeef"}
	item := &metadata.Metadata{
		TokenId:      domain.TokenId("7"),
		SeaportOrder: signed,
		OrderHash:    &hash,
	}

	plan := &mSeaport.FulfillOrderPlan{}
	plan.On("ExecuteAndWait", mock.Anything).Return(&wallet.Receipt{
		TxHash: domain.TxHash("0xfeed"),
		Status: 1,
	}, nil).Once()

	s.seaport.On("FulfillOrder", mock.Anything, s.session, signed).Return(plan, nil).Once()
	s.api.On("PostBuy", mock.Anything, mock.MatchedBy(func(req *marketapi.BuyRequest) bool {
		return req.OrderHash == hash &&
			req.BuyerAddress == sellerAddress &&
			req.TokenId == domain.TokenId("7")
	})).Return(nil).Once()
	s.catalog.On("Invalidate").Return().Once()

	res, err := s.im.Buy(_ctx, s.session, item)
	s.NoError(err)
	s.Equal(domain.TxHash("0xfeed"), res.TxHash)
	s.api.AssertExpectations(s.T())
	s.catalog.AssertExpectations(s.T())
}

func (s *marketplaceUseCaseSuite) TestBuyRecordFailureIsNotFatal() {
	_ctx := ctx.Background()
	hash := domain.OrderHash("0xdef1")
	item := &metadata.Metadata{
		TokenId:      domain.TokenId("7"),
		SeaportOrder: &order.SignedOrder{},
		OrderHash:    &hash,
	}

	plan := &mSeaport.FulfillOrderPlan{}
	plan.On("ExecuteAndWait", mock.Anything).Return(&wallet.Receipt{TxHash: domain.TxHash("0xfeed")}, nil).Once()

	s.seaport.On("FulfillOrder", mock.Anything, s.session, mock.Anything).Return(plan, nil).Once()
	s.api.On("PostBuy", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()
	s.catalog.On("Invalidate").Return().Once()

	res, err := s.im.Buy(_ctx, s.session, item)
	s.NoError(err)
	s.Equal(domain.TxHash("0xfeed"), res.TxHash)
	// the purchase settled on chain, the cached catalog is stale regardless
	// of the record write failing
	s.catalog.AssertExpectations(s.T())
}

func (s *marketplaceUseCaseSuite) TestBuyWithoutOrder() {
	_ctx := ctx.Background()

	_, err := s.im.Buy(_ctx, s.session, &metadata.Metadata{TokenId: domain.TokenId("7")})
	s.Equal(domain.ErrNoOrder, err)

	s.seaport.AssertNotCalled(s.T(), "FulfillOrder", mock.Anything, mock.Anything, mock.Anything)
}

func (s *marketplaceUseCaseSuite) TestBuyWithoutSession() {
	_ctx := ctx.Background()

	_, err := s.im.Buy(_ctx, nil, &metadata.Metadata{})
	s.Equal(domain.ErrNoSession, err)
}
