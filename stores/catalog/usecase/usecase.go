package usecase

import (
	"strings"
	"sync"

	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/base/log"
	"github.com/bearmarket/goapi/domain/catalog"
	"github.com/bearmarket/goapi/domain/metadata"
	"github.com/bearmarket/goapi/service/marketapi"
)

const (
	batchSize   = 12
	ipfsScheme  = "ipfs://"
	ipfsGateway = "https://ipfs.io/ipfs/"
)

type impl struct {
	api marketapi.Client

	mu     sync.Mutex
	cached []*catalog.Item
	cursor int
}

func New(api marketapi.Client) catalog.UseCase {
	return &impl{api: api}
}

func (im *impl) NextBatch(ctx ctx.Ctx) ([]*catalog.Item, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.cached == nil {
		nfts, err := im.api.GetNfts(ctx)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err": err,
			}).Error("api.GetNfts failed")
			return nil, err
		}
		im.cached = makeItems(nfts)
		im.cursor = 0
	}

	if im.cursor >= len(im.cached) {
		return []*catalog.Item{}, nil
	}

	end := im.cursor + batchSize
	if end > len(im.cached) {
		end = len(im.cached)
	}
	batch := im.cached[im.cursor:end]
	im.cursor = end
	return batch, nil
}

func (im *impl) Invalidate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.cached = nil
	im.cursor = 0
}

func makeItems(nfts []*metadata.Metadata) []*catalog.Item {
	items := make([]*catalog.Item, 0, len(nfts))
	for _, nft := range nfts {
		items = append(items, &catalog.Item{
			Metadata: *nft,
			Image:    GatewayImage(nft.Image),
		})
	}
	return items
}

// GatewayImage rewrites ipfs:// URIs to a public HTTP gateway so the result
// renders anywhere. Non-ipfs URIs pass through untouched.
func GatewayImage(uri string) string {
	if strings.HasPrefix(uri, ipfsScheme) {
		return ipfsGateway + strings.TrimPrefix(uri, ipfsScheme)
	}
	return uri
}
