package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/domain"
	"github.com/bearmarket/goapi/domain/metadata"
	mMarketapi "github.com/bearmarket/goapi/service/marketapi/mocks"
)

type catalogUseCaseSuite struct {
	suite.Suite

	api *mMarketapi.Client
	im  *impl
}

func (s *catalogUseCaseSuite) SetupTest() {
	s.api = &mMarketapi.Client{}
	s.im = New(s.api).(*impl)
}

func TestCatalogUseCaseSuite(t *testing.T) {
	suite.Run(t, new(catalogUseCaseSuite))
}

func makeNfts(n int) []*metadata.Metadata {
	nfts := make([]*metadata.Metadata, 0, n)
	for i := 0; i < n; i++ {
		nfts = append(nfts, &metadata.Metadata{
			TokenId: domain.TokenId(fmt.Sprint(i)),
			Image:   fmt.Sprintf("ipfs://QmHash/%d.png", i),
		})
	}
	return nfts
}

func (s *catalogUseCaseSuite) TestNextBatchPages() {
	_ctx := ctx.Background()

	// one fetch serves every batch
	s.api.On("GetNfts", mock.Anything).Return(makeNfts(30), nil).Once()

	first, err := s.im.NextBatch(_ctx)
	s.NoError(err)
	s.Len(first, 12)
	s.Equal(domain.TokenId("0"), first[0].TokenId)

	second, err := s.im.NextBatch(_ctx)
	s.NoError(err)
	s.Len(second, 12)
	s.Equal(domain.TokenId("12"), second[0].TokenId)

	third, err := s.im.NextBatch(_ctx)
	s.NoError(err)
	s.Len(third, 6)

	exhausted, err := s.im.NextBatch(_ctx)
	s.NoError(err)
	s.Empty(exhausted)

	s.api.AssertExpectations(s.T())
}

func (s *catalogUseCaseSuite) TestNextBatchRewritesImage() {
	_ctx := ctx.Background()

	s.api.On("GetNfts", mock.Anything).Return(makeNfts(1), nil).Once()

	batch, err := s.im.NextBatch(_ctx)
	s.NoError(err)
	s.Require().Len(batch, 1)
	s.Equal("https://ipfs.io/ipfs/QmHash/0.png", batch[0].Image)
}

func (s *catalogUseCaseSuite) TestInvalidateRefetches() {
	_ctx := ctx.Background()

	s.api.On("GetNfts", mock.Anything).Return(makeNfts(3), nil).Twice()

	_, err := s.im.NextBatch(_ctx)
	s.NoError(err)

	s.im.Invalidate()

	batch, err := s.im.NextBatch(_ctx)
	s.NoError(err)
	s.Len(batch, 3)
	s.Equal(domain.TokenId("0"), batch[0].TokenId)

	s.api.AssertExpectations(s.T())
}

func (s *catalogUseCaseSuite) TestNextBatchError() {
	_ctx := ctx.Background()

	s.api.On("GetNfts", mock.Anything).Return(nil, errors.New("boom")).Once()

	_, err := s.im.NextBatch(_ctx)
	s.Error(err)
}

func (s *catalogUseCaseSuite) TestGatewayImagePassthrough() {
	s.Equal("https://example.com/a.png", GatewayImage("https://example.com/a.png"))
	s.Equal("", GatewayImage(""))
}
