package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bearmarket/goapi/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	type PatchableListing struct {
		Price     *string `bson:"price,omitempty"`
		OnChain   *bool   `bson:"onChain,omitempty"`
		OrderHash string  `bson:"orderHash"`
		Status    string  `bson:"status"`
	}

	patchable := &PatchableListing{}
	patchable.Price = ptr.String("")
	patchable.OnChain = ptr.Bool(true)
	patchable.Status = "fulfilled"

	updater, err := MakeBsonM(patchable)

	assert.NoError(t, err)
	assert.Equal(
		t,
		bson.M{
			"price":   "",
			"onChain": true,
			// orderHash is empty and not a pointer, so it is skipped
			"status": "fulfilled",
		},
		updater,
	)
}
