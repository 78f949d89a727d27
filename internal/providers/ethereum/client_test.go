package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"strings"
	"testing"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ticket-marketplace/internal/domain"
	"github.com/feral-file/ticket-marketplace/internal/logger"
	"github.com/feral-file/ticket-marketplace/internal/mocks"
	"github.com/feral-file/ticket-marketplace/internal/providers/ethereum"
	"github.com/feral-file/ticket-marketplace/internal/wallet"
)

const hardhatKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var (
	contractAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	hardhatAccount  = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	ticketABI       abi.ABI
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}

	parsed, err := abi.JSON(strings.NewReader(ethereum.TicketNFTABI))
	if err != nil {
		panic(err)
	}
	ticketABI = parsed

	os.Exit(m.Run())
}

type testDeps struct {
	contract  ethereum.TicketContract
	ethClient *mocks.MockEthClient
}

func setupTestContract(t *testing.T, cfg ethereum.Config) *testDeps {
	ctrl := gomock.NewController(t)
	ethClient := mocks.NewMockEthClient(ctrl)

	signer, err := wallet.NewKeySigner(hardhatKey)
	require.NoError(t, err)

	cfg.ContractAddress = contractAddress
	if cfg.ReceiptPollInterval == 0 {
		cfg.ReceiptPollInterval = 5 * time.Millisecond
	}
	if cfg.ReceiptTimeout == 0 {
		cfg.ReceiptTimeout = 2 * time.Second
	}

	contract, err := ethereum.NewTicketContract(cfg, ethClient, signer)
	require.NoError(t, err)

	return &testDeps{contract: contract, ethClient: ethClient}
}

func packOutputs(t *testing.T, method string, values ...interface{}) []byte {
	data, err := ticketABI.Methods[method].Outputs.Pack(values...)
	require.NoError(t, err)
	return data
}

func ticketMintedLog(t *testing.T, buyer common.Address, tokenID, price int64, block uint64) types.Log {
	event := ticketABI.Events["TicketMinted"]
	data, err := event.Inputs.NonIndexed().Pack(big.NewInt(price))
	require.NoError(t, err)

	return types.Log{
		Address: contractAddress,
		Topics: []common.Hash{
			event.ID,
			common.BytesToHash(buyer.Bytes()),
			common.BigToHash(big.NewInt(tokenID)),
		},
		Data:        data,
		BlockNumber: block,
		TxHash:      common.BigToHash(big.NewInt(int64(block))),
	}
}

// =============================================================================
// Reads
// =============================================================================

func TestTicketPrice(t *testing.T) {
	deps := setupTestContract(t, ethereum.Config{})
	ctx := context.Background()

	price := big.NewInt(100_000_000_000_000_000)
	deps.ethClient.EXPECT().
		CallContract(ctx, gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, msg goethereum.CallMsg, _ *big.Int) ([]byte, error) {
			require.NotNil(t, msg.To)
			assert.Equal(t, contractAddress, *msg.To)
			assert.Equal(t, hardhatAccount, msg.From)
			assert.Equal(t, ticketABI.Methods["ticketPrice"].ID, msg.Data[:4])
			return packOutputs(t, "ticketPrice", price), nil
		})

	got, err := deps.contract.TicketPrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, price.String(), got.String())
}

func TestTicketReads(t *testing.T) {
	deps := setupTestContract(t, ethereum.Config{})
	ctx := context.Background()
	tokenID := big.NewInt(3)
	owner := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

	deps.ethClient.EXPECT().
		CallContract(ctx, gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, msg goethereum.CallMsg, _ *big.Int) ([]byte, error) {
			method, err := ticketABI.MethodById(msg.Data[:4])
			require.NoError(t, err)

			args, err := method.Inputs.Unpack(msg.Data[4:])
			require.NoError(t, err)
			require.Len(t, args, 1)
			assert.Equal(t, tokenID.String(), args[0].(*big.Int).String())

			switch method.Name {
			case "isUsed":
				return packOutputs(t, "isUsed", true), nil
			case "originalPrice":
				return packOutputs(t, "originalPrice", big.NewInt(100)), nil
			case "getApprovedPrice":
				return packOutputs(t, "getApprovedPrice", big.NewInt(0)), nil
			case "tokenURI":
				return packOutputs(t, "tokenURI", "ipfs://bafymetadata"), nil
			case "ownerOf":
				return packOutputs(t, "ownerOf", owner), nil
			}
			return nil, errors.New("unexpected method " + method.Name)
		}).
		Times(5)

	used, err := deps.contract.IsUsed(ctx, tokenID)
	require.NoError(t, err)
	assert.True(t, used)

	originalPrice, err := deps.contract.OriginalPrice(ctx, tokenID)
	require.NoError(t, err)
	assert.Equal(t, "100", originalPrice.String())

	approvedPrice, err := deps.contract.GetApprovedPrice(ctx, tokenID)
	require.NoError(t, err)
	assert.Equal(t, 0, approvedPrice.Sign())

	uri, err := deps.contract.TokenURI(ctx, tokenID)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://bafymetadata", uri)

	gotOwner, err := deps.contract.OwnerOf(ctx, tokenID)
	require.NoError(t, err)
	assert.Equal(t, owner, gotOwner)
}

func TestCallReverted(t *testing.T) {
	deps := setupTestContract(t, ethereum.Config{})
	ctx := context.Background()

	deps.ethClient.EXPECT().
		CallContract(ctx, gomock.Any(), gomock.Nil()).
		Return(nil, errors.New("execution reverted: ERC721: invalid token ID"))

	_, err := deps.contract.OwnerOf(ctx, big.NewInt(42))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExecutionReverted)
	assert.Contains(t, err.Error(), "invalid token ID")
}

func TestCallTransportError(t *testing.T) {
	deps := setupTestContract(t, ethereum.Config{})
	ctx := context.Background()

	deps.ethClient.EXPECT().
		CallContract(ctx, gomock.Any(), gomock.Nil()).
		Return(nil, errors.New("dial tcp 127.0.0.1:8545: connect: connection refused"))

	_, err := deps.contract.TicketPrice(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrExecutionReverted)
}

func TestHasCodeAndBalance(t *testing.T) {
	deps := setupTestContract(t, ethereum.Config{})
	ctx := context.Background()

	deps.ethClient.EXPECT().CodeAt(ctx, contractAddress, gomock.Nil()).Return([]byte{0x60, 0x80}, nil)
	deps.ethClient.EXPECT().BalanceAt(ctx, hardhatAccount, gomock.Nil()).Return(big.NewInt(5), nil)

	hasCode, err := deps.contract.HasCode(ctx)
	require.NoError(t, err)
	assert.True(t, hasCode)

	balance, err := deps.contract.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "5", balance.String())

	deps.ethClient.EXPECT().CodeAt(ctx, contractAddress, gomock.Nil()).Return(nil, nil)
	hasCode, err = deps.contract.HasCode(ctx)
	require.NoError(t, err)
	assert.False(t, hasCode)

	assert.Equal(t, contractAddress, deps.contract.Address())
	assert.Equal(t, hardhatAccount, deps.contract.Account())
}

// =============================================================================
// Writes
// =============================================================================

func expectTransact(t *testing.T, deps *testDeps, ctx context.Context, check func(tx *types.Transaction)) {
	chainID := big.NewInt(domain.HARDHAT_CHAIN_ID)

	deps.ethClient.EXPECT().ChainID(ctx).Return(chainID, nil)
	deps.ethClient.EXPECT().SuggestGasPrice(ctx).Return(big.NewInt(1_000_000_000), nil)
	deps.ethClient.EXPECT().PendingNonceAt(ctx, hardhatAccount).Return(uint64(7), nil)
	deps.ethClient.EXPECT().
		SendTransaction(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
			sender, err := types.Sender(types.LatestSignerForChainID(chainID), tx)
			require.NoError(t, err)
			assert.Equal(t, hardhatAccount, sender)
			assert.Equal(t, uint64(7), tx.Nonce())
			assert.Equal(t, uint64(domain.DEFAULT_GAS_LIMIT), tx.Gas())
			require.NotNil(t, tx.To())
			assert.Equal(t, contractAddress, *tx.To())
			check(tx)
			return nil
		})
}

func TestMintTicket(t *testing.T) {
	deps := setupTestContract(t, ethereum.Config{})
	ctx := context.Background()
	value := big.NewInt(100_000_000_000_000_000)

	var sent common.Hash
	expectTransact(t, deps, ctx, func(tx *types.Transaction) {
		sent = tx.Hash()
		assert.Equal(t, value.String(), tx.Value().String())

		method, err := ticketABI.MethodById(tx.Data()[:4])
		require.NoError(t, err)
		assert.Equal(t, "mintTicket", method.Name)

		args, err := method.Inputs.Unpack(tx.Data()[4:])
		require.NoError(t, err)
		assert.Equal(t, "ipfs://bafymetadata", args[0])
	})

	hash, err := deps.contract.MintTicket(ctx, "ipfs://bafymetadata", value)
	require.NoError(t, err)
	assert.Equal(t, sent, hash)
}

func TestResellTicket(t *testing.T) {
	deps := setupTestContract(t, ethereum.Config{GasLimit: 300000})
	ctx := context.Background()

	chainID := big.NewInt(domain.HARDHAT_CHAIN_ID)
	deps.ethClient.EXPECT().ChainID(ctx).Return(chainID, nil)
	deps.ethClient.EXPECT().SuggestGasPrice(ctx).Return(big.NewInt(1), nil)
	deps.ethClient.EXPECT().PendingNonceAt(ctx, hardhatAccount).Return(uint64(0), nil)
	deps.ethClient.EXPECT().
		SendTransaction(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
			assert.Equal(t, uint64(300000), tx.Gas())
			assert.Equal(t, 0, tx.Value().Sign())

			method, err := ticketABI.MethodById(tx.Data()[:4])
			require.NoError(t, err)
			assert.Equal(t, "resellTicket", method.Name)

			args, err := method.Inputs.Unpack(tx.Data()[4:])
			require.NoError(t, err)
			assert.Equal(t, "1", args[0].(*big.Int).String())
			assert.Equal(t, "200", args[1].(*big.Int).String())
			return nil
		})

	_, err := deps.contract.ResellTicket(ctx, big.NewInt(1), big.NewInt(200))
	require.NoError(t, err)
}

func TestUseTicket_Reverted(t *testing.T) {
	deps := setupTestContract(t, ethereum.Config{})
	ctx := context.Background()

	deps.ethClient.EXPECT().ChainID(ctx).Return(big.NewInt(domain.HARDHAT_CHAIN_ID), nil)
	deps.ethClient.EXPECT().SuggestGasPrice(ctx).Return(big.NewInt(1), nil)
	deps.ethClient.EXPECT().PendingNonceAt(ctx, hardhatAccount).Return(uint64(0), nil)
	deps.ethClient.EXPECT().
		SendTransaction(ctx, gomock.Any()).
		Return(errors.New("VM Exception while processing transaction: reverted with reason string 'Ticket already used'"))

	_, err := deps.contract.UseTicket(ctx, big.NewInt(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExecutionReverted)
	assert.Contains(t, err.Error(), "Ticket already used")
}

func TestTransact_NonceError(t *testing.T) {
	deps := setupTestContract(t, ethereum.Config{})
	ctx := context.Background()

	deps.ethClient.EXPECT().ChainID(ctx).Return(big.NewInt(domain.HARDHAT_CHAIN_ID), nil)
	deps.ethClient.EXPECT().SuggestGasPrice(ctx).Return(big.NewInt(1), nil)
	deps.ethClient.EXPECT().PendingNonceAt(ctx, hardhatAccount).Return(uint64(0), errors.New("timeout"))

	_, err := deps.contract.UseTicket(ctx, big.NewInt(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get nonce")
}

// =============================================================================
// Receipts
// =============================================================================

func TestWaitMined(t *testing.T) {
	deps := setupTestContract(t, ethereum.Config{})
	ctx := context.Background()
	txHash := common.HexToHash("0x01")

	receipt := &types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(12),
		TxHash:      txHash,
	}

	gomock.InOrder(
		deps.ethClient.EXPECT().TransactionReceipt(gomock.Any(), txHash).Return(nil, goethereum.NotFound),
		deps.ethClient.EXPECT().TransactionReceipt(gomock.Any(), txHash).Return(receipt, nil),
	)

	got, err := deps.contract.WaitMined(ctx, txHash)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), got.BlockNumber.Uint64())
}

func TestWaitMined_Failed(t *testing.T) {
	deps := setupTestContract(t, ethereum.Config{})
	ctx := context.Background()
	txHash := common.HexToHash("0x02")

	deps.ethClient.EXPECT().TransactionReceipt(gomock.Any(), txHash).Return(&types.Receipt{
		Status:      types.ReceiptStatusFailed,
		BlockNumber: big.NewInt(13),
		TxHash:      txHash,
	}, nil)

	receipt, err := deps.contract.WaitMined(ctx, txHash)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransactionFailed)
	require.NotNil(t, receipt)
	assert.Equal(t, uint64(13), receipt.BlockNumber.Uint64())
}

func TestWaitMined_Timeout(t *testing.T) {
	deps := setupTestContract(t, ethereum.Config{ReceiptTimeout: 50 * time.Millisecond})
	ctx := context.Background()
	txHash := common.HexToHash("0x03")

	deps.ethClient.EXPECT().TransactionReceipt(gomock.Any(), txHash).Return(nil, goethereum.NotFound).AnyTimes()

	_, err := deps.contract.WaitMined(ctx, txHash)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, goethereum.NotFound)
	assert.NotErrorIs(t, err, domain.ErrTransactionFailed)
}

func TestWaitMined_ParentCanceled(t *testing.T) {
	deps := setupTestContract(t, ethereum.Config{ReceiptTimeout: time.Minute})
	ctx, cancel := context.WithCancel(context.Background())
	txHash := common.HexToHash("0x04")

	deps.ethClient.EXPECT().
		TransactionReceipt(gomock.Any(), txHash).
		DoAndReturn(func(context.Context, common.Hash) (*types.Receipt, error) {
			cancel()
			return nil, goethereum.NotFound
		}).
		MinTimes(1)

	_, err := deps.contract.WaitMined(ctx, txHash)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// =============================================================================
// Events
// =============================================================================

func TestFilterTicketMinted_Pagination(t *testing.T) {
	deps := setupTestContract(t, ethereum.Config{LogStepSize: 100})
	ctx := context.Background()

	deps.ethClient.EXPECT().HeaderByNumber(ctx, gomock.Nil()).Return(&types.Header{Number: big.NewInt(250)}, nil)

	var ranges [][2]uint64
	deps.ethClient.EXPECT().
		FilterLogs(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, q goethereum.FilterQuery) ([]types.Log, error) {
			from, to := q.FromBlock.Uint64(), q.ToBlock.Uint64()
			ranges = append(ranges, [2]uint64{from, to})

			assert.Equal(t, []common.Address{contractAddress}, q.Addresses)
			require.Len(t, q.Topics, 2)
			assert.Equal(t, ticketABI.Events["TicketMinted"].ID, q.Topics[0][0])
			assert.Equal(t, common.BytesToHash(hardhatAccount.Bytes()), q.Topics[1][0])

			if from == 100 && to == 199 {
				return nil, errors.New("query returned more than 10000 results")
			}

			var logs []types.Log
			if from <= 160 && 160 <= to {
				logs = append(logs, ticketMintedLog(t, hardhatAccount, 2, 200, 160))
			}
			if from <= 10 && 10 <= to {
				logs = append(logs, ticketMintedLog(t, hardhatAccount, 1, 100, 10))
			}
			if from <= 250 && 250 <= to {
				removed := ticketMintedLog(t, hardhatAccount, 9, 100, 250)
				removed.Removed = true
				logs = append(logs, removed)
			}
			return logs, nil
		}).
		AnyTimes()

	minted, err := deps.contract.FilterTicketMinted(ctx, hardhatAccount)
	require.NoError(t, err)

	assert.Equal(t, [][2]uint64{
		{0, 99},
		{100, 199},
		{100, 149},
		{150, 199},
		{200, 249},
		{250, 250},
	}, ranges)

	require.Len(t, minted, 2)
	assert.Equal(t, "1", minted[0].TokenID.String())
	assert.Equal(t, "100", minted[0].Price.String())
	assert.Equal(t, hardhatAccount, minted[0].Buyer)
	assert.Equal(t, uint64(10), minted[0].BlockNumber)
	assert.Equal(t, "2", minted[1].TokenID.String())
}

func TestFilterTicketMinted_Error(t *testing.T) {
	deps := setupTestContract(t, ethereum.Config{StartBlock: 5})
	ctx := context.Background()

	deps.ethClient.EXPECT().HeaderByNumber(ctx, gomock.Nil()).Return(&types.Header{Number: big.NewInt(10)}, nil)
	deps.ethClient.EXPECT().FilterLogs(ctx, gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := deps.contract.FilterTicketMinted(ctx, hardhatAccount)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestFilterTicketMinted_StartAfterHead(t *testing.T) {
	deps := setupTestContract(t, ethereum.Config{StartBlock: 100})
	ctx := context.Background()

	deps.ethClient.EXPECT().HeaderByNumber(ctx, gomock.Nil()).Return(&types.Header{Number: big.NewInt(10)}, nil)

	minted, err := deps.contract.FilterTicketMinted(ctx, hardhatAccount)
	require.NoError(t, err)
	assert.Empty(t, minted)
}

func TestParseTicketMinted(t *testing.T) {
	deps := setupTestContract(t, ethereum.Config{})

	mintedLog := ticketMintedLog(t, hardhatAccount, 5, 100, 20)
	foreign := ticketMintedLog(t, hardhatAccount, 6, 100, 20)
	foreign.Address = common.HexToAddress("0x1111111111111111111111111111111111111111")

	receipt := &types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(20),
		Logs:        []*types.Log{&foreign, &mintedLog},
	}

	minted, err := deps.contract.ParseTicketMinted(receipt)
	require.NoError(t, err)
	assert.Equal(t, "5", minted.TokenID.String())
	assert.Equal(t, hardhatAccount, minted.Buyer)

	_, err = deps.contract.ParseTicketMinted(&types.Receipt{})
	assert.Error(t, err)

	_, err = deps.contract.ParseTicketMinted(nil)
	assert.Error(t, err)
}
