package usecase

import (
	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/base/log"
	"github.com/bearmarket/goapi/domain/metadata"
)

type impl struct {
	metadataRepo metadata.Repo
}

func New(metadataRepo metadata.Repo) metadata.UseCase {
	return &impl{
		metadataRepo: metadataRepo,
	}
}

func (im *impl) GetAll(ctx ctx.Ctx) ([]*metadata.Metadata, error) {
	res, err := im.metadataRepo.FindAll(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("metadataRepo.FindAll failed")
		return nil, err
	}
	return res, nil
}
