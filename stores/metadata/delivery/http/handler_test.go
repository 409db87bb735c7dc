package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/domain"
	"github.com/bearmarket/goapi/domain/metadata"
	mMetadata "github.com/bearmarket/goapi/domain/metadata/mocks"
)

type metadataHandlerSuite struct {
	suite.Suite

	echo    *echo.Echo
	useCase *mMetadata.UseCase
}

func (s *metadataHandlerSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	s.useCase = &mMetadata.UseCase{}
	New(s.echo, s.useCase, nil)
}

func TestMetadataHandlerSuite(t *testing.T) {
	suite.Run(t, new(metadataHandlerSuite))
}

func (s *metadataHandlerSuite) TestGetNfts() {
	price := "1.5"
	rows := []*metadata.Metadata{
		{TokenId: domain.TokenId("2"), Name: "Bear #2"},
		{TokenId: domain.TokenId("10"), Name: "Bear #10", Price: &price},
	}
	s.useCase.On("GetAll", mock.Anything).Return(rows, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/nfts", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	res := map[string]interface{}{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	s.Equal(true, res["success"])
	s.Len(res["nfts"], 2)
}

func (s *metadataHandlerSuite) TestGetNftsError() {
	s.useCase.On("GetAll", mock.Anything).Return(nil, errors.New("boom")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/nfts", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	s.Equal(http.StatusInternalServerError, rec.Code)
	res := map[string]interface{}{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	s.Equal(false, res["success"])
	s.Equal("boom", res["error"])
}
