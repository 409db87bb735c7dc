package healthcheck

import (
	"github.com/bearmarket/goapi/base/ctx"
)

// UseCase represents the healthcheck's usecases
type UseCase interface {
	Check(context ctx.Ctx) error
}

// Repo probes the backing stores the API cannot serve without
type Repo interface {
	Ping(context ctx.Ctx) error
}
