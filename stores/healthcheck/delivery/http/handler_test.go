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
	mHealthcheck "github.com/bearmarket/goapi/domain/healthcheck/mocks"
)

type statusHandlerSuite struct {
	suite.Suite

	echo    *echo.Echo
	useCase *mHealthcheck.UseCase
}

func (s *statusHandlerSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	s.useCase = &mHealthcheck.UseCase{}
	New(s.echo, s.useCase)
}

func TestStatusHandlerSuite(t *testing.T) {
	suite.Run(t, new(statusHandlerSuite))
}

func (s *statusHandlerSuite) TestStatusOk() {
	s.useCase.On("Check", mock.Anything).Return(nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	res := map[string]interface{}{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	s.Equal(true, res["ok"])
	s.NotEmpty(res["time"])
}

func (s *statusHandlerSuite) TestStatusUnhealthy() {
	s.useCase.On("Check", mock.Anything).Return(errors.New("mongo down")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	s.Equal(http.StatusInternalServerError, rec.Code)
}
