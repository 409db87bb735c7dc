package catalog

import (
	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/domain/metadata"
)

// Item is one catalog entry ready for display. Image already points at an
// HTTP gateway, never an ipfs:// URI.
type Item struct {
	metadata.Metadata
	Image string `json:"image"`
}

// UseCase pages through the marketplace catalog in fixed-size batches.
type UseCase interface {
	// NextBatch returns the next unseen batch, or an empty slice once the
	// catalog is exhausted.
	NextBatch(ctx.Ctx) ([]*Item, error)
	// Invalidate drops the cached listing so the next NextBatch refetches
	// from the beginning.
	Invalidate()
}
