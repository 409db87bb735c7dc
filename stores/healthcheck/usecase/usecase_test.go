package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bearmarket/goapi/base/ctx"
	mHealthcheck "github.com/bearmarket/goapi/domain/healthcheck/mocks"
)

type healthcheckUseCaseSuite struct {
	suite.Suite

	repo *mHealthcheck.Repo
}

func (s *healthcheckUseCaseSuite) SetupTest() {
	s.repo = &mHealthcheck.Repo{}
}

func TestHealthcheckUseCaseSuite(t *testing.T) {
	suite.Run(t, new(healthcheckUseCaseSuite))
}

func (s *healthcheckUseCaseSuite) TestCheck() {
	s.repo.On("Ping", mock.Anything).Return(nil).Once()
	s.NoError(New(s.repo).Check(ctx.Background()))

	s.repo.On("Ping", mock.Anything).Return(errors.New("boom")).Once()
	s.Error(New(s.repo).Check(ctx.Background()))
}
