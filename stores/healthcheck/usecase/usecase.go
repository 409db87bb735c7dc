package usecase

import (
	"github.com/bearmarket/goapi/base/ctx"
	hcdomain "github.com/bearmarket/goapi/domain/healthcheck"
)

type impl struct {
	repo hcdomain.Repo
}

func New(repo hcdomain.Repo) hcdomain.UseCase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) error {
	return im.repo.Ping(context)
}
