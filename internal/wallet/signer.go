package wallet

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer is the account that authorizes ticket transactions.
// Key custody belongs to the wallet; this package only adapts already provisioned key material.
//
//go:generate mockgen -source=signer.go -destination=../mocks/signer.go -package=mocks -mock_names=Signer=MockSigner
type Signer interface {
	// Address returns the account address
	Address() common.Address

	// SignTx signs the transaction for the given chain
	SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

type keySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewKeySigner creates a signer from a hex encoded secp256k1 private key, with or without 0x prefix
func NewKeySigner(hexKey string) (Signer, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if hexKey == "" {
		return nil, errors.New("private key is empty")
	}

	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return &keySigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

func (s *keySigner) Address() common.Address {
	return s.address
}

func (s *keySigner) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
}
