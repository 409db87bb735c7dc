package query

/*
	Package query provides an interface for querying mongo db.
	It is a thin wrap over https://github.com/mongodb/mongo-go-driver
	so refer to https://godoc.org/go.mongodb.org/mongo-driver/mongo
	for the semantics of each call.
*/

import (
	"fmt"

	"github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")
)

type patchOp struct {
	patchMany bool
	upsert    bool
}

// PatchOp is an alias for functional argument
type PatchOp func(*patchOp)

// WithPatchMany specifies patchMany setting. To patch all entries selected, set patchMany = true.
func WithPatchMany(patchMany bool) PatchOp {
	return func(o *patchOp) {
		o.patchMany = patchMany
	}
}

// WithPatchUpsert inserts the patched fields as a new entry when the
// selector matches nothing. Ignored when combined with WithPatchMany.
func WithPatchUpsert(upsert bool) PatchOp {
	return func(o *patchOp) {
		o.upsert = upsert
	}
}

// Mongo abstract the mongo layer.
type Mongo interface {
	// Insert inserts a new document to the table
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne get data from the table
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Count return counting for matched entry in the table
	Count(context ctx.Ctx, table domain.Table, selector interface{}) (n int, err error)

	// Upsert update an entry , if the selector is already exist.
	// Upsert insert an entry , if the selector is not exist.
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Search sort order by `sort` argument (ex "timestamp" ascending, or "-timestamp" descending)
	// if `sort` is "", the sort action is skipped, and the MongoDB does not guarantee the order of query results.
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// Remove remove an entry from the table
	// Return ErrNotFound if selector does not match any documents
	Remove(context ctx.Ctx, table domain.Table, selector interface{}) error

	// RemoveAll removes every entry matching the selector and returns the
	// removed count. A selector matching nothing is not an error.
	RemoveAll(context ctx.Ctx, table domain.Table, selector interface{}) (int, error)

	// Patch patch an entry, if the selector not exist, return err.
	// To patch all entries selected, set WithPatchMany(true).
	// Return ErrNotFound if selector does not match any documents
	Patch(context ctx.Ctx, table domain.Table, selector, update interface{}, ops ...PatchOp) error

	// Ping round-trips to the server, for liveness checks.
	Ping(context ctx.Ctx) error
}
