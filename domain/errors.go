package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidChainId      = errors.New("invalid chain id")
	ErrInvalidAddress      = errors.New("Invalid address")

	// ErrNotOwner is returned when listing a token the session does not own
	ErrNotOwner = errors.New("token not owned by seller")
	// ErrNoOrder is returned when a stored record carries no usable signed order
	ErrNoOrder = errors.New("no signed order on record")
	// ErrWrongChain is returned when the RPC endpoint serves a different chain
	// than the configured one
	ErrWrongChain = errors.New("connected to wrong chain")
	// ErrNoSession is returned by flows invoked without a connected wallet
	ErrNoSession = errors.New("wallet not connected")
)
