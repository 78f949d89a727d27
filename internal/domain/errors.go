package domain

import "errors"

var (
	// ErrWrongNetwork is returned when the node is connected to a chain other than the configured one
	ErrWrongNetwork = errors.New("wrong network")

	// ErrContractNotDeployed is returned when there is no code at the configured contract address
	ErrContractNotDeployed = errors.New("no contract found at specified address")

	// ErrNoAccount is returned when the wallet exposes no account
	ErrNoAccount = errors.New("no account available")

	// ErrInvalidRequest is returned when a mint request is missing required fields
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidTokenID is returned when a token ID is not a non-negative integer
	ErrInvalidTokenID = errors.New("invalid token id")

	// ErrInvalidPrice is returned when a price is not a positive ether amount
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInvalidImage is returned when the uploaded ticket image is missing or not an image
	ErrInvalidImage = errors.New("invalid ticket image")

	// ErrTicketNotFound is returned when the contract has no record of a token
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrExecutionReverted is returned when a contract call or transaction is reverted
	ErrExecutionReverted = errors.New("execution reverted")

	// ErrTransactionFailed is returned when a mined transaction has a failed receipt status
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrMetadataNotFound is returned when ticket metadata cannot be retrieved from any gateway
	ErrMetadataNotFound = errors.New("metadata not found")
)
