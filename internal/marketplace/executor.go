package marketplace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/alitto/pond/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/ticket-marketplace/internal/adapter"
	"github.com/feral-file/ticket-marketplace/internal/domain"
	"github.com/feral-file/ticket-marketplace/internal/logger"
	"github.com/feral-file/ticket-marketplace/internal/messaging"
	"github.com/feral-file/ticket-marketplace/internal/providers/ethereum"
	"github.com/feral-file/ticket-marketplace/internal/storage"
	"github.com/feral-file/ticket-marketplace/internal/store"
	"github.com/feral-file/ticket-marketplace/internal/store/schema"
)

// Config holds the executor configuration
type Config struct {
	// ChainID is the chain the wallet must be connected to
	ChainID int64
	// PoolSize is the number of tickets enriched concurrently
	PoolSize int
	// QueueSize bounds the number of pending enrichment tasks
	QueueSize int
}

// Executor runs the marketplace operations: it shapes a request, calls the contract binding or
// the storage clients, awaits the outcome and returns the resulting view.
//
//go:generate mockgen -source=executor.go -destination=../mocks/marketplace_executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// ConnectWallet verifies the network, the account and the contract deployment
	ConnectWallet(ctx context.Context) (*domain.Session, error)

	// MintTicket uploads the ticket image and metadata, then mints paying the requested price
	MintTicket(ctx context.Context, req domain.MintRequest) (*domain.TransactionResult, error)

	// MintWithTokenURI mints a ticket for existing metadata paying the contract's ticket price
	MintWithTokenURI(ctx context.Context, tokenURI string) (*domain.TransactionResult, error)

	// UseTicket marks a ticket as used
	UseTicket(ctx context.Context, tokenID string) (*domain.TransactionResult, error)

	// ResellTicket lists a ticket for resale at the price in ether
	ResellTicket(ctx context.Context, tokenID string, price string) (*domain.TransactionResult, error)

	// ListOwnedTickets lists the tickets minted by the account, defaulting to the wallet account
	ListOwnedTickets(ctx context.Context, account string) ([]domain.Ticket, error)

	// GetTicket returns the view of a single ticket
	GetTicket(ctx context.Context, tokenID string) (*domain.Ticket, error)

	// ListTransactions lists the journal of submitted transactions
	ListTransactions(ctx context.Context, filter store.TransactionFilter) (*TransactionList, error)

	// Close stops the enrichment pool
	Close()
}

type executor struct {
	config    Config
	contract  ethereum.TicketContract
	uploader  storage.Uploader
	retriever storage.Retriever
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	pool      pond.ResultPool[*domain.Ticket]
}

// NewExecutor creates a new marketplace executor
func NewExecutor(
	cfg Config,
	contract ethereum.TicketContract,
	uploader storage.Uploader,
	retriever storage.Retriever,
	store store.Store,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Executor {
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 8
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if publisher == nil {
		publisher = messaging.NewNopPublisher()
	}

	return &executor{
		config:    cfg,
		contract:  contract,
		uploader:  uploader,
		retriever: retriever,
		store:     store,
		publisher: publisher,
		clock:     clock,
		pool: pond.NewResultPool[*domain.Ticket](
			cfg.PoolSize,
			pond.WithQueueSize(cfg.QueueSize),
		),
	}
}

func (e *executor) ConnectWallet(ctx context.Context) (*domain.Session, error) {
	chainID, err := e.ensureNetwork(ctx)
	if err != nil {
		return nil, err
	}

	account := e.contract.Account()
	if account == (common.Address{}) {
		return nil, domain.ErrNoAccount
	}

	hasCode, err := e.contract.HasCode(ctx)
	if err != nil {
		return nil, err
	}
	if !hasCode {
		return nil, fmt.Errorf("%w: %s", domain.ErrContractNotDeployed, e.contract.Address().Hex())
	}

	balance, err := e.contract.Balance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get account balance: %w", err)
	}

	logger.InfoCtx(ctx, "Wallet connected",
		zap.String("account", account.Hex()),
		zap.Int64("chainID", chainID),
		zap.String("contract", e.contract.Address().Hex()))

	return &domain.Session{
		Account:         account.Hex(),
		ChainID:         chainID,
		ChainIDHex:      fmt.Sprintf("0x%x", chainID),
		ContractAddress: e.contract.Address().Hex(),
		Balance:         domain.FormatEther(balance),
	}, nil
}

// ensureNetwork checks that the node serves the configured chain
func (e *executor) ensureNetwork(ctx context.Context) (int64, error) {
	chainID, err := e.contract.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain id: %w", err)
	}

	if !chainID.IsInt64() || chainID.Int64() != e.config.ChainID {
		return 0, fmt.Errorf("%w: connected to chain %s, expected chain %d (0x%x)",
			domain.ErrWrongNetwork, chainID.String(), e.config.ChainID, e.config.ChainID)
	}

	return chainID.Int64(), nil
}

func (e *executor) MintTicket(ctx context.Context, req domain.MintRequest) (*domain.TransactionResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	value, err := domain.ParsePositiveEther(req.Price)
	if err != nil {
		return nil, err
	}

	if _, err := e.ensureNetwork(ctx); err != nil {
		return nil, err
	}

	tokenURI, err := e.uploader.UploadTicketMetadata(ctx, req)
	if err != nil {
		return nil, err
	}

	return e.mint(ctx, tokenURI, value)
}

func (e *executor) MintWithTokenURI(ctx context.Context, tokenURI string) (*domain.TransactionResult, error) {
	tokenURI = strings.TrimSpace(tokenURI)
	if tokenURI == "" {
		return nil, fmt.Errorf("%w: token_uri is required", domain.ErrInvalidRequest)
	}

	if _, err := e.ensureNetwork(ctx); err != nil {
		return nil, err
	}

	price, err := e.contract.TicketPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket price: %w", err)
	}

	return e.mint(ctx, tokenURI, price)
}

func (e *executor) mint(ctx context.Context, tokenURI string, value *big.Int) (*domain.TransactionResult, error) {
	txHash, err := e.contract.MintTicket(ctx, tokenURI, value)
	if err != nil {
		return nil, err
	}

	return e.confirm(ctx, submission{
		kind:     domain.TransactionKindMint,
		txHash:   txHash,
		value:    value,
		tokenURI: tokenURI,
	})
}

func (e *executor) UseTicket(ctx context.Context, tokenID string) (*domain.TransactionResult, error) {
	id, err := domain.ParseTokenID(tokenID)
	if err != nil {
		return nil, err
	}

	if _, err := e.ensureNetwork(ctx); err != nil {
		return nil, err
	}

	txHash, err := e.contract.UseTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	return e.confirm(ctx, submission{
		kind:    domain.TransactionKindUse,
		txHash:  txHash,
		tokenID: id,
	})
}

func (e *executor) ResellTicket(ctx context.Context, tokenID string, price string) (*domain.TransactionResult, error) {
	id, err := domain.ParseTokenID(tokenID)
	if err != nil {
		return nil, err
	}
	priceWei, err := domain.ParsePositiveEther(price)
	if err != nil {
		return nil, err
	}

	if _, err := e.ensureNetwork(ctx); err != nil {
		return nil, err
	}

	txHash, err := e.contract.ResellTicket(ctx, id, priceWei)
	if err != nil {
		return nil, err
	}

	return e.confirm(ctx, submission{
		kind:    domain.TransactionKindResell,
		txHash:  txHash,
		tokenID: id,
		value:   priceWei,
	})
}

// submission is a transaction accepted by the node and not yet mined
type submission struct {
	kind     domain.TransactionKind
	txHash   common.Hash
	tokenID  *big.Int // nil for mints until the receipt is parsed
	value    *big.Int
	tokenURI string
}

// confirm journals the submission, waits for its receipt and publishes the resulting event.
// Journal and publish failures are logged and never fail the operation: the chain is the source of truth.
func (e *executor) confirm(ctx context.Context, sub submission) (*domain.TransactionResult, error) {
	account := e.contract.Account().Hex()
	e.journalSubmission(ctx, account, sub)

	receipt, err := e.contract.WaitMined(ctx, sub.txHash)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionFailed) {
			e.journalOutcome(ctx, store.UpdateTransactionStatusInput{
				TxHash:       sub.txHash.Hex(),
				Status:       schema.TransactionStatusFailed,
				BlockNumber:  receiptBlock(receipt),
				ErrorMessage: err.Error(),
			})
		}
		return nil, err
	}

	blockNumber := receipt.BlockNumber.Uint64()
	if sub.kind == domain.TransactionKindMint {
		minted, err := e.contract.ParseTicketMinted(receipt)
		if err != nil {
			// the mint is on chain even though its token id could not be read
			e.journalOutcome(ctx, store.UpdateTransactionStatusInput{
				TxHash:       sub.txHash.Hex(),
				Status:       schema.TransactionStatusConfirmed,
				BlockNumber:  &blockNumber,
				ErrorMessage: err.Error(),
			})
			return nil, fmt.Errorf("failed to read minted token id: %w", err)
		}
		sub.tokenID = minted.TokenID
	}

	tokenID := sub.tokenID.String()
	e.journalOutcome(ctx, store.UpdateTransactionStatusInput{
		TxHash:      sub.txHash.Hex(),
		Status:      schema.TransactionStatusConfirmed,
		BlockNumber: &blockNumber,
		TokenID:     &tokenID,
	})

	result := &domain.TransactionResult{
		Kind:        sub.kind,
		TxHash:      sub.txHash.Hex(),
		TokenID:     tokenID,
		BlockNumber: blockNumber,
		TokenURI:    sub.tokenURI,
	}
	if sub.value != nil {
		result.Value = domain.FormatEther(sub.value)
	}

	e.publish(ctx, account, result)

	logger.InfoCtx(ctx, "Ticket transaction confirmed",
		zap.String("kind", string(sub.kind)),
		zap.String("txHash", result.TxHash),
		zap.String("tokenID", tokenID),
		zap.Uint64("blockNumber", blockNumber))

	return result, nil
}

func (e *executor) journalSubmission(ctx context.Context, account string, sub submission) {
	input := store.CreateTransactionInput{
		Kind:    string(sub.kind),
		Account: account,
		TxHash:  sub.txHash.Hex(),
	}
	if sub.tokenID != nil {
		tokenID := sub.tokenID.String()
		input.TokenID = &tokenID
	}
	if sub.value != nil {
		input.ValueWei = sub.value.String()
	}
	if sub.tokenURI != "" {
		tokenURI := sub.tokenURI
		input.TokenURI = &tokenURI
	}

	if _, err := e.store.CreateTransaction(ctx, input); err != nil {
		logger.WarnCtx(ctx, "Failed to journal ticket transaction",
			zap.Error(err),
			zap.String("txHash", input.TxHash))
	}
}

func (e *executor) journalOutcome(ctx context.Context, input store.UpdateTransactionStatusInput) {
	if err := e.store.UpdateTransactionStatus(ctx, input); err != nil {
		logger.WarnCtx(ctx, "Failed to update ticket transaction status",
			zap.Error(err),
			zap.String("txHash", input.TxHash),
			zap.String("status", string(input.Status)))
	}
}

func (e *executor) publish(ctx context.Context, account string, result *domain.TransactionResult) {
	event := &domain.TicketEvent{
		TokenID:     result.TokenID,
		Account:     account,
		TxHash:      result.TxHash,
		BlockNumber: result.BlockNumber,
		Price:       result.Value,
		TokenURI:    result.TokenURI,
		OccurredAt:  e.clock.Now(),
	}
	switch result.Kind {
	case domain.TransactionKindMint:
		event.Type = domain.TicketEventMinted
	case domain.TransactionKindUse:
		event.Type = domain.TicketEventUsed
	case domain.TransactionKindResell:
		event.Type = domain.TicketEventListed
	}

	if err := e.publisher.PublishTicketEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish ticket event",
			zap.Error(err),
			zap.String("type", string(event.Type)),
			zap.String("txHash", event.TxHash))
	}
}

func receiptBlock(receipt *types.Receipt) *uint64 {
	if receipt == nil || receipt.BlockNumber == nil {
		return nil
	}
	n := receipt.BlockNumber.Uint64()
	return &n
}

func (e *executor) ListOwnedTickets(ctx context.Context, account string) ([]domain.Ticket, error) {
	owner := e.contract.Account()
	if account = strings.TrimSpace(account); account != "" {
		if !common.IsHexAddress(account) {
			return nil, fmt.Errorf("%w: invalid account address %q", domain.ErrInvalidRequest, account)
		}
		owner = common.HexToAddress(account)
	}

	minted, err := e.contract.FilterTicketMinted(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch minted tickets: %w", err)
	}

	// a token ID is listed once even if its event is seen twice
	seen := make(map[string]struct{}, len(minted))
	tasks := make([]pond.Result[*domain.Ticket], 0, len(minted))
	for _, m := range minted {
		tokenID := m.TokenID
		if _, ok := seen[tokenID.String()]; ok {
			continue
		}
		seen[tokenID.String()] = struct{}{}

		tasks = append(tasks, e.pool.SubmitErr(func() (*domain.Ticket, error) {
			return e.loadTicket(ctx, tokenID)
		}))
	}

	tickets := make([]domain.Ticket, 0, len(tasks))
	var firstErr error
	for _, task := range tasks {
		ticket, err := task.Wait()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		tickets = append(tickets, *ticket)
	}
	if firstErr != nil {
		return nil, fmt.Errorf("failed to fetch tickets: %w", firstErr)
	}

	sort.SliceStable(tickets, func(i, j int) bool {
		a, _ := new(big.Int).SetString(tickets[i].TokenID, 10)
		b, _ := new(big.Int).SetString(tickets[j].TokenID, 10)
		return a.Cmp(b) < 0
	})

	e.saveSnapshots(ctx, tickets)

	logger.InfoCtx(ctx, "Listed owned tickets",
		zap.String("account", owner.Hex()),
		zap.Int("count", len(tickets)))

	return tickets, nil
}

func (e *executor) GetTicket(ctx context.Context, tokenID string) (*domain.Ticket, error) {
	id, err := domain.ParseTokenID(tokenID)
	if err != nil {
		return nil, err
	}

	ticket, err := e.loadTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	e.saveSnapshots(ctx, []domain.Ticket{*ticket})

	return ticket, nil
}

// loadTicket assembles the view of a ticket from contract reads and its metadata document.
// A metadata retrieval failure falls back to the snapshot's copy for the same token URI,
// else leaves Metadata nil; contract read failures fail the load.
func (e *executor) loadTicket(ctx context.Context, tokenID *big.Int) (*domain.Ticket, error) {
	owner, err := e.contract.OwnerOf(ctx, tokenID)
	if err != nil {
		if errors.Is(err, domain.ErrExecutionReverted) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTicketNotFound, tokenID.String())
		}
		return nil, err
	}

	isUsed, err := e.contract.IsUsed(ctx, tokenID)
	if err != nil {
		return nil, err
	}

	originalPrice, err := e.contract.OriginalPrice(ctx, tokenID)
	if err != nil {
		return nil, err
	}

	approvedPrice, err := e.contract.GetApprovedPrice(ctx, tokenID)
	if err != nil {
		return nil, err
	}

	tokenURI, err := e.contract.TokenURI(ctx, tokenID)
	if err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		TokenID:  tokenID.String(),
		Owner:    owner.Hex(),
		Price:    domain.FormatEther(originalPrice),
		IsUsed:   isUsed,
		TokenURI: tokenURI,
	}
	if approvedPrice != nil && approvedPrice.Sign() > 0 {
		resalePrice := domain.FormatEther(approvedPrice)
		ticket.ApprovedResalePrice = &resalePrice
	}

	metadata, err := e.retriever.RetrieveTicketMetadata(ctx, tokenURI)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to retrieve ticket metadata",
			zap.Error(err),
			zap.String("tokenID", ticket.TokenID),
			zap.String("tokenURI", tokenURI))
		metadata = e.snapshotMetadata(ctx, ticket.TokenID, tokenURI)
	}
	ticket.Metadata = metadata

	return ticket, nil
}

// snapshotMetadata returns the metadata last retrieved for the same token URI, or nil
func (e *executor) snapshotMetadata(ctx context.Context, tokenID, tokenURI string) *domain.TicketMetadata {
	snapshot, err := e.store.GetTicketSnapshot(ctx, tokenID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read ticket snapshot", zap.Error(err), zap.String("tokenID", tokenID))
		return nil
	}
	if snapshot == nil || snapshot.TokenURI != tokenURI || len(snapshot.Metadata) == 0 {
		return nil
	}

	var metadata domain.TicketMetadata
	if err := json.Unmarshal(snapshot.Metadata, &metadata); err != nil {
		logger.WarnCtx(ctx, "Failed to decode snapshot metadata", zap.Error(err), zap.String("tokenID", tokenID))
		return nil
	}

	logger.DebugCtx(ctx, "Serving ticket metadata from snapshot",
		zap.String("tokenID", tokenID),
		zap.Time("refreshedAt", snapshot.RefreshedAt))
	return &metadata
}

// saveSnapshots mirrors ticket views into the store, logging failures
func (e *executor) saveSnapshots(ctx context.Context, tickets []domain.Ticket) {
	if len(tickets) == 0 {
		return
	}

	now := e.clock.Now()
	inputs := make([]store.UpsertTicketSnapshotInput, 0, len(tickets))
	for _, ticket := range tickets {
		input := store.UpsertTicketSnapshotInput{
			TokenID:     ticket.TokenID,
			Owner:       ticket.Owner,
			IsUsed:      ticket.IsUsed,
			TokenURI:    ticket.TokenURI,
			RefreshedAt: now,
		}

		originalPrice, err := domain.ParseEther(ticket.Price)
		if err != nil {
			continue
		}
		input.OriginalPriceWei = originalPrice.String()

		if ticket.ApprovedResalePrice != nil {
			if resale, err := domain.ParseEther(*ticket.ApprovedResalePrice); err == nil {
				wei := resale.String()
				input.ApprovedResalePriceWei = &wei
			}
		}

		if ticket.Metadata != nil {
			if raw, err := json.Marshal(ticket.Metadata); err == nil {
				input.Metadata = raw
			}
			if hash, err := storage.MetadataHash(ticket.Metadata); err == nil {
				input.MetadataHash = &hash
			}
		}

		inputs = append(inputs, input)
	}

	if err := e.store.UpsertTicketSnapshots(ctx, inputs); err != nil {
		logger.WarnCtx(ctx, "Failed to save ticket snapshots", zap.Error(err), zap.Int("count", len(inputs)))
	}
}

func (e *executor) ListTransactions(ctx context.Context, filter store.TransactionFilter) (*TransactionList, error) {
	if filter.Account != "" && !common.IsHexAddress(filter.Account) {
		return nil, fmt.Errorf("%w: invalid account address %q", domain.ErrInvalidRequest, filter.Account)
	}
	switch domain.TransactionKind(filter.Kind) {
	case "", domain.TransactionKindMint, domain.TransactionKindUse, domain.TransactionKindResell:
	default:
		return nil, fmt.Errorf("%w: unknown transaction kind %q", domain.ErrInvalidRequest, filter.Kind)
	}
	if filter.Limit <= 0 {
		filter.Limit = store.DefaultTransactionLimit
	}
	if filter.Limit > store.MaxTransactionLimit {
		filter.Limit = store.MaxTransactionLimit
	}

	txns, total, err := e.store.ListTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	list := &TransactionList{
		Transactions: make([]TransactionRecord, 0, len(txns)),
		Total:        total,
	}
	for _, txn := range txns {
		list.Transactions = append(list.Transactions, mapTransaction(txn))
	}

	if next := filter.Offset + uint64(len(txns)); next < total { //nolint:gosec // G115: len is never negative
		list.NextOffset = &next
	}

	return list, nil
}

func (e *executor) Close() {
	e.pool.StopAndWait()
}
