package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/domain"
	mMetadata "github.com/bearmarket/goapi/domain/metadata/mocks"
	"github.com/bearmarket/goapi/domain/order"
	mOrder "github.com/bearmarket/goapi/domain/order/mocks"
)

type orderUseCaseSuite struct {
	suite.Suite

	orderRepo    *mOrder.Repo
	metadataRepo *mMetadata.Repo
	im           order.UseCase
}

func (s *orderUseCaseSuite) SetupTest() {
	s.orderRepo = &mOrder.Repo{}
	s.metadataRepo = &mMetadata.Repo{}
	s.im = New(s.orderRepo, s.metadataRepo)
}

func TestOrderUseCaseSuite(t *testing.T) {
	suite.Run(t, new(orderUseCaseSuite))
}

func (s *orderUseCaseSuite) TestMakeOrder() {
	_ctx := ctx.Background()
	_order := &order.Order{
		TokenId:   domain.TokenId("99194853094755497178469"),
		Price:     "1.5",
		Seller:    domain.Address("0x939AE6A4C8DFDBB1F7085189574F0A938013952A"),
		OrderHash: domain.OrderHash("0xABCD"),
	}

	s.orderRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		return o.Status == order.StatusActive &&
			o.Seller == domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a") &&
			o.OrderHash == domain.OrderHash("0xabcd") &&
			o.Id != "" &&
			!o.CreatedAt.IsZero()
	})).Return(nil).Once()
	s.metadataRepo.On("SetListing", mock.Anything, mock.Anything).Return(nil).Once()

	s.NoError(s.im.MakeOrder(_ctx, _order))
	s.NotEmpty(_order.Id)
	s.orderRepo.AssertExpectations(s.T())
	s.metadataRepo.AssertExpectations(s.T())
}

func (s *orderUseCaseSuite) TestMakeOrderMetadataFailureIsNotFatal() {
	_ctx := ctx.Background()
	_order := &order.Order{
		TokenId:   domain.TokenId("7"),
		Price:     "2",
		OrderHash: domain.OrderHash("0xabcd"),
	}

	s.orderRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil).Once()
	s.metadataRepo.On("SetListing", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

	s.NoError(s.im.MakeOrder(_ctx, _order))
}

func (s *orderUseCaseSuite) TestMakeOrderRepoFailure() {
	_ctx := ctx.Background()
	_order := &order.Order{OrderHash: domain.OrderHash("0xabcd")}

	s.orderRepo.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

	s.Error(s.im.MakeOrder(_ctx, _order))
	s.metadataRepo.AssertNotCalled(s.T(), "SetListing", mock.Anything, mock.Anything)
}

func (s *orderUseCaseSuite) TestFulfillOrder() {
	_ctx := ctx.Background()
	hash := domain.OrderHash("0xABCD")
	buyer := domain.Address("0x939AE6A4C8DFDBB1F7085189574F0A938013952A")
	tokenId := domain.TokenId("7")

	existing := &order.Order{
		TokenId:   tokenId,
		OrderHash: domain.OrderHash("0xabcd"),
		Status:    order.StatusActive,
		CreatedAt: time.Now(),
	}

	s.orderRepo.On("FindByHash", mock.Anything, domain.OrderHash("0xabcd")).Return(existing, nil).Once()
	s.orderRepo.On("Patch", mock.Anything, domain.OrderHash("0xabcd"), mock.MatchedBy(func(p order.Patchable) bool {
		return p.Buyer != nil && *p.Buyer == domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a") &&
			p.Status != nil && *p.Status == order.StatusFulfilled &&
			p.OnChain != nil && *p.OnChain
	})).Return(nil).Once()
	s.metadataRepo.On("ClearListingByOrderHash", mock.Anything, domain.OrderHash("0xabcd"), domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a")).Return(nil).Once()

	res, err := s.im.FulfillOrder(_ctx, hash, buyer, tokenId)
	s.NoError(err)
	s.NotNil(res.Order)
	s.Equal(order.StatusFulfilled, res.Order.Status)
	s.True(res.Order.OnChain)
	s.orderRepo.AssertExpectations(s.T())
	s.metadataRepo.AssertExpectations(s.T())
}

func (s *orderUseCaseSuite) TestFulfillOrderFallsBackToTokenId() {
	_ctx := ctx.Background()
	hash := domain.OrderHash("0xdead")
	buyer := domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a")
	tokenId := domain.TokenId("99194853094755497178469")

	s.orderRepo.On("FindByHash", mock.Anything, hash).Return(nil, domain.ErrNotFound).Once()
	s.metadataRepo.On("ClearListingByTokenId", mock.Anything, tokenId, buyer).Return(nil).Once()

	res, err := s.im.FulfillOrder(_ctx, hash, buyer, tokenId)
	s.NoError(err)
	s.Nil(res.Order)
	s.orderRepo.AssertNotCalled(s.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
	s.metadataRepo.AssertExpectations(s.T())
}

func (s *orderUseCaseSuite) TestFulfillOrderMetadataFailureIsNotFatal() {
	_ctx := ctx.Background()
	hash := domain.OrderHash("0xabcd")

	existing := &order.Order{OrderHash: hash, Status: order.StatusActive}

	s.orderRepo.On("FindByHash", mock.Anything, hash).Return(existing, nil).Once()
	s.orderRepo.On("Patch", mock.Anything, hash, mock.Anything).Return(nil).Once()
	s.metadataRepo.On("ClearListingByOrderHash", mock.Anything, hash, mock.Anything).Return(errors.New("boom")).Once()

	res, err := s.im.FulfillOrder(_ctx, hash, domain.Address("0x1"), domain.TokenId("7"))
	s.NoError(err)
	s.NotNil(res.Order)
}

func (s *orderUseCaseSuite) TestReconcileMetadata() {
	_ctx := ctx.Background()
	rows := []*order.Order{
		{TokenId: domain.TokenId("1"), OrderHash: domain.OrderHash("0x1")},
		{TokenId: domain.TokenId("2"), OrderHash: domain.OrderHash("0x2")},
	}

	s.orderRepo.On("FindAll", mock.Anything, mock.Anything).Return(rows, nil).Once()
	s.metadataRepo.On("SetListing", mock.Anything, mock.Anything).Return(nil).Twice()

	count, err := s.im.ReconcileMetadata(_ctx)
	s.NoError(err)
	s.Equal(2, count)
	s.metadataRepo.AssertExpectations(s.T())
}

func (s *orderUseCaseSuite) TestLatestOrders() {
	_ctx := ctx.Background()
	rows := []*order.Order{
		{OrderHash: domain.OrderHash("0x2")},
		{OrderHash: domain.OrderHash("0x1")},
	}

	s.orderRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return(rows, nil).Once()

	res, err := s.im.LatestOrders(_ctx, 500)
	s.NoError(err)
	s.Len(res, 2)
	s.orderRepo.AssertExpectations(s.T())
}
