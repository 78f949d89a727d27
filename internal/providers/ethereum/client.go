package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/ticket-marketplace/internal/adapter"
	"github.com/feral-file/ticket-marketplace/internal/domain"
	"github.com/feral-file/ticket-marketplace/internal/logger"
	"github.com/feral-file/ticket-marketplace/internal/wallet"
)

// TicketMinted is a decoded TicketMinted event
type TicketMinted struct {
	Buyer       common.Address
	TokenID     *big.Int
	Price       *big.Int
	BlockNumber uint64
	TxHash      common.Hash
}

// Config holds the ticket contract client configuration
type Config struct {
	ContractAddress     common.Address
	GasLimit            uint64
	StartBlock          uint64
	LogStepSize         uint64
	ReceiptPollInterval time.Duration
	ReceiptTimeout      time.Duration
}

// TicketContract is the binding of the deployed ticket contract.
// Ticket rules (ownership, pricing, resale approval, double use) are enforced by the contract itself.
//
//go:generate mockgen -source=client.go -destination=../../mocks/ticket_contract.go -package=mocks -mock_names=TicketContract=MockTicketContract
type TicketContract interface {
	// Address returns the contract address
	Address() common.Address

	// Account returns the signing account
	Account() common.Address

	// ChainID returns the chain ID of the connected node
	ChainID(ctx context.Context) (*big.Int, error)

	// HasCode reports whether contract code exists at the contract address
	HasCode(ctx context.Context) (bool, error)

	// Balance returns the wei balance of the signing account
	Balance(ctx context.Context) (*big.Int, error)

	// TicketPrice returns the contract's default mint price in wei
	TicketPrice(ctx context.Context) (*big.Int, error)

	// IsUsed reports whether the ticket has been used
	IsUsed(ctx context.Context, tokenID *big.Int) (bool, error)

	// OriginalPrice returns the price paid at mint in wei
	OriginalPrice(ctx context.Context, tokenID *big.Int) (*big.Int, error)

	// GetApprovedPrice returns the approved resale price in wei, zero when not listed
	GetApprovedPrice(ctx context.Context, tokenID *big.Int) (*big.Int, error)

	// TokenURI returns the metadata URI of the ticket
	TokenURI(ctx context.Context, tokenID *big.Int) (string, error)

	// OwnerOf returns the current owner of the ticket
	OwnerOf(ctx context.Context, tokenID *big.Int) (common.Address, error)

	// MintTicket submits a mintTicket transaction paying value wei
	MintTicket(ctx context.Context, tokenURI string, value *big.Int) (common.Hash, error)

	// UseTicket submits a useTicket transaction
	UseTicket(ctx context.Context, tokenID *big.Int) (common.Hash, error)

	// ResellTicket submits a resellTicket transaction with the asked price in wei
	ResellTicket(ctx context.Context, tokenID *big.Int, price *big.Int) (common.Hash, error)

	// WaitMined blocks until the transaction is mined and returns its receipt.
	// A reverted transaction returns the receipt together with domain.ErrTransactionFailed.
	WaitMined(ctx context.Context, txHash common.Hash) (*types.Receipt, error)

	// FilterTicketMinted returns every TicketMinted event emitted for the buyer
	FilterTicketMinted(ctx context.Context, buyer common.Address) ([]TicketMinted, error)

	// ParseTicketMinted extracts the TicketMinted event from a receipt
	ParseTicketMinted(receipt *types.Receipt) (*TicketMinted, error)
}

type ticketContract struct {
	config Config
	abi    abi.ABI
	client adapter.EthClient
	signer wallet.Signer

	// txMu serializes nonce assignment and submission for the signing account
	txMu sync.Mutex
}

// NewTicketContract creates a ticket contract binding
func NewTicketContract(cfg Config, client adapter.EthClient, signer wallet.Signer) (TicketContract, error) {
	parsed, err := abi.JSON(strings.NewReader(TicketNFTABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	if cfg.GasLimit == 0 {
		cfg.GasLimit = domain.DEFAULT_GAS_LIMIT
	}
	if cfg.LogStepSize == 0 {
		cfg.LogStepSize = 100000
	}
	if cfg.ReceiptPollInterval == 0 {
		cfg.ReceiptPollInterval = 500 * time.Millisecond
	}
	if cfg.ReceiptTimeout == 0 {
		cfg.ReceiptTimeout = 2 * time.Minute
	}

	return &ticketContract{
		config: cfg,
		abi:    parsed,
		client: client,
		signer: signer,
	}, nil
}

func (c *ticketContract) Address() common.Address {
	return c.config.ContractAddress
}

func (c *ticketContract) Account() common.Address {
	return c.signer.Address()
}

func (c *ticketContract) ChainID(ctx context.Context) (*big.Int, error) {
	return c.client.ChainID(ctx)
}

func (c *ticketContract) HasCode(ctx context.Context) (bool, error) {
	code, err := c.client.CodeAt(ctx, c.config.ContractAddress, nil)
	if err != nil {
		return false, fmt.Errorf("failed to get contract code: %w", err)
	}
	return len(code) > 0, nil
}

func (c *ticketContract) Balance(ctx context.Context) (*big.Int, error) {
	return c.client.BalanceAt(ctx, c.signer.Address(), nil)
}

func (c *ticketContract) TicketPrice(ctx context.Context) (*big.Int, error) {
	return c.callBigInt(ctx, methodTicketPrice)
}

func (c *ticketContract) IsUsed(ctx context.Context, tokenID *big.Int) (bool, error) {
	out, err := c.call(ctx, methodIsUsed, tokenID)
	if err != nil {
		return false, err
	}
	used, ok := out[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected %s output type %T", methodIsUsed, out[0])
	}
	return used, nil
}

func (c *ticketContract) OriginalPrice(ctx context.Context, tokenID *big.Int) (*big.Int, error) {
	return c.callBigInt(ctx, methodOriginalPrice, tokenID)
}

func (c *ticketContract) GetApprovedPrice(ctx context.Context, tokenID *big.Int) (*big.Int, error) {
	return c.callBigInt(ctx, methodGetApprovedPrice, tokenID)
}

func (c *ticketContract) TokenURI(ctx context.Context, tokenID *big.Int) (string, error) {
	out, err := c.call(ctx, methodTokenURI, tokenID)
	if err != nil {
		return "", err
	}
	uri, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("unexpected %s output type %T", methodTokenURI, out[0])
	}
	return uri, nil
}

func (c *ticketContract) OwnerOf(ctx context.Context, tokenID *big.Int) (common.Address, error) {
	out, err := c.call(ctx, methodOwnerOf, tokenID)
	if err != nil {
		return common.Address{}, err
	}
	owner, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("unexpected %s output type %T", methodOwnerOf, out[0])
	}
	return owner, nil
}

func (c *ticketContract) MintTicket(ctx context.Context, tokenURI string, value *big.Int) (common.Hash, error) {
	return c.transact(ctx, value, methodMintTicket, tokenURI)
}

func (c *ticketContract) UseTicket(ctx context.Context, tokenID *big.Int) (common.Hash, error) {
	return c.transact(ctx, nil, methodUseTicket, tokenID)
}

func (c *ticketContract) ResellTicket(ctx context.Context, tokenID *big.Int, price *big.Int) (common.Hash, error) {
	return c.transact(ctx, nil, methodResellTicket, tokenID, price)
}

// call packs a view call, executes it against the latest block and unpacks the outputs
func (c *ticketContract) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	contractAddr := c.config.ContractAddress
	result, err := c.client.CallContract(ctx, ethereum.CallMsg{
		From: c.signer.Address(),
		To:   &contractAddr,
		Data: data,
	}, nil)
	if err != nil {
		if isRevertError(err) {
			return nil, fmt.Errorf("%w: %s: %s", domain.ErrExecutionReverted, method, err.Error())
		}
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}

	out, err := c.abi.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty %s output", method)
	}

	return out, nil
}

func (c *ticketContract) callBigInt(ctx context.Context, method string, args ...interface{}) (*big.Int, error) {
	out, err := c.call(ctx, method, args...)
	if err != nil {
		return nil, err
	}
	v, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected %s output type %T", method, out[0])
	}
	return v, nil
}

// transact signs and submits a transaction with the configured fixed gas limit
func (c *ticketContract) transact(ctx context.Context, value *big.Int, method string, args ...interface{}) (common.Hash, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to pack %s: %w", method, err)
	}
	if value == nil {
		value = new(big.Int)
	}

	chainID, err := c.client.ChainID(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get chain id: %w", err)
	}

	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to suggest gas price: %w", err)
	}

	c.txMu.Lock()
	defer c.txMu.Unlock()

	from := c.signer.Address()
	nonce, err := c.client.PendingNonceAt(ctx, from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get nonce: %w", err)
	}

	contractAddr := c.config.ContractAddress
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      c.config.GasLimit,
		To:       &contractAddr,
		Value:    value,
		Data:     data,
	})

	signedTx, err := c.signer.SignTx(tx, chainID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign %s transaction: %w", method, err)
	}

	if err := c.client.SendTransaction(ctx, signedTx); err != nil {
		if isRevertError(err) {
			return common.Hash{}, fmt.Errorf("%w: %s: %s", domain.ErrExecutionReverted, method, err.Error())
		}
		return common.Hash{}, fmt.Errorf("failed to send %s transaction: %w", method, err)
	}

	logger.InfoCtx(ctx, "Submitted ticket transaction",
		zap.String("method", method),
		zap.String("txHash", signedTx.Hash().Hex()),
		zap.String("from", from.Hex()),
		zap.Uint64("nonce", nonce),
		zap.String("value", value.String()))

	return signedTx.Hash(), nil
}

func (c *ticketContract) WaitMined(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	// The deadline surfaces as context.DeadlineExceeded instead of the last NotFound
	ctx, cancel := context.WithTimeout(ctx, c.config.ReceiptTimeout)
	defer cancel()

	var receipt *types.Receipt

	operation := func() error {
		r, err := c.client.TransactionReceipt(ctx, txHash)
		if err != nil {
			if !errors.Is(err, ethereum.NotFound) {
				logger.WarnCtx(ctx, "Failed to get transaction receipt, retrying",
					zap.String("txHash", txHash.Hex()),
					zap.Error(err))
			}
			return err
		}
		receipt = r
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.config.ReceiptPollInterval
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 0
	b.Multiplier = 1.5

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("failed to wait for transaction %s: %w", txHash.Hex(), err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%w: %s reverted in block %d", domain.ErrTransactionFailed, txHash.Hex(), receipt.BlockNumber.Uint64())
	}

	logger.InfoCtx(ctx, "Transaction mined",
		zap.String("txHash", txHash.Hex()),
		zap.Uint64("blockNumber", receipt.BlockNumber.Uint64()),
		zap.Uint64("gasUsed", receipt.GasUsed))

	return receipt, nil
}

func (c *ticketContract) FilterTicketMinted(ctx context.Context, buyer common.Address) ([]TicketMinted, error) {
	event := c.abi.Events[eventTicketMinted]
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(c.config.StartBlock),
		Addresses: []common.Address{c.config.ContractAddress},
		Topics: [][]common.Hash{
			{event.ID},
			{common.BytesToHash(buyer.Bytes())},
		},
	}

	logs, err := c.filterLogsWithPagination(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to filter %s logs: %w", eventTicketMinted, err)
	}

	var minted []TicketMinted
	for _, vLog := range logs {
		if vLog.Removed {
			continue
		}
		m, err := c.decodeTicketMinted(vLog)
		if err != nil {
			return nil, err
		}
		minted = append(minted, *m)
	}

	sort.SliceStable(minted, func(i, j int) bool {
		return minted[i].TokenID.Cmp(minted[j].TokenID) < 0
	})

	return minted, nil
}

func (c *ticketContract) ParseTicketMinted(receipt *types.Receipt) (*TicketMinted, error) {
	if receipt == nil {
		return nil, errors.New("receipt is nil")
	}

	eventID := c.abi.Events[eventTicketMinted].ID
	for _, vLog := range receipt.Logs {
		if vLog == nil || vLog.Address != c.config.ContractAddress {
			continue
		}
		if len(vLog.Topics) == 0 || vLog.Topics[0] != eventID {
			continue
		}
		return c.decodeTicketMinted(*vLog)
	}

	return nil, fmt.Errorf("no %s event in transaction %s", eventTicketMinted, receipt.TxHash.Hex())
}

func (c *ticketContract) decodeTicketMinted(vLog types.Log) (*TicketMinted, error) {
	if len(vLog.Topics) != 3 {
		return nil, fmt.Errorf("invalid %s log: expected 3 topics, got %d", eventTicketMinted, len(vLog.Topics))
	}

	out, err := c.abi.Unpack(eventTicketMinted, vLog.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s data: %w", eventTicketMinted, err)
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("invalid %s data: expected 1 value, got %d", eventTicketMinted, len(out))
	}
	price, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected %s price type %T", eventTicketMinted, out[0])
	}

	return &TicketMinted{
		Buyer:       common.BytesToAddress(vLog.Topics[1].Bytes()),
		TokenID:     new(big.Int).SetBytes(vLog.Topics[2].Bytes()),
		Price:       price,
		BlockNumber: vLog.BlockNumber,
		TxHash:      vLog.TxHash,
	}, nil
}

// filterLogsWithPagination splits the query range into chunks to stay under provider log limits
func (c *ticketContract) filterLogsWithPagination(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	fromBlock := big.NewInt(0)
	if query.FromBlock != nil {
		fromBlock = query.FromBlock
	}

	toBlock := query.ToBlock
	if toBlock == nil {
		latest, err := c.client.HeaderByNumber(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to get latest block: %w", err)
		}
		toBlock = latest.Number
	}

	if fromBlock.Cmp(toBlock) > 0 {
		return nil, nil
	}

	rangeQuery := query
	rangeQuery.FromBlock = new(big.Int).Set(fromBlock)
	rangeQuery.ToBlock = new(big.Int).Set(toBlock)

	return c.getLogsWithRetry(ctx, rangeQuery, c.config.LogStepSize)
}

// getLogsWithRetry walks the query range in chunks of stepSize blocks,
// halving the step whenever the provider reports too many results
func (c *ticketContract) getLogsWithRetry(ctx context.Context, query ethereum.FilterQuery, stepSize uint64) ([]types.Log, error) {
	currentStepSize := stepSize

	var allLogs []types.Log
	currentFrom := new(big.Int).Set(query.FromBlock)

	for currentFrom.Cmp(query.ToBlock) <= 0 {
		currentTo := new(big.Int).Add(currentFrom, new(big.Int).SetUint64(currentStepSize-1))
		if currentTo.Cmp(query.ToBlock) > 0 {
			currentTo.Set(query.ToBlock)
		}

		chunk := query
		chunk.FromBlock = new(big.Int).Set(currentFrom)
		chunk.ToBlock = new(big.Int).Set(currentTo)

		logs, err := c.client.FilterLogs(ctx, chunk)
		if err == nil {
			allLogs = append(allLogs, logs...)
			currentFrom.Add(currentTo, big.NewInt(1))
			continue
		}

		if !isTooManyResultsError(err) {
			return nil, err
		}
		if currentStepSize == 1 {
			return nil, fmt.Errorf("too many results in a single block %d: %w", currentFrom.Uint64(), err)
		}

		currentStepSize = currentStepSize / 2

		logger.WarnCtx(ctx, "Too many results, reducing step size",
			zap.Uint64("oldStepSize", currentStepSize*2),
			zap.Uint64("newStepSize", currentStepSize),
			zap.Uint64("fromBlock", currentFrom.Uint64()),
			zap.Uint64("toBlock", currentTo.Uint64()))
	}

	return allLogs, nil
}

// isTooManyResultsError checks if the error is related to too many results
func isTooManyResultsError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "query returned more than 10000 results") ||
		strings.Contains(errStr, "query timeout exceeded") ||
		strings.Contains(errStr, "too many results") ||
		strings.Contains(errStr, "exceeded maximum")
}

// isRevertError checks if the node rejected the call because the contract reverted
func isRevertError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "execution reverted") ||
		strings.Contains(errStr, "reverted with reason") ||
		strings.Contains(errStr, "vm exception")
}
