package client

import (
	"context"
	"math/big"

	"github.com/NilFoundation/zkpaymaster/internal/zksync"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/matryer/moq -out client_generated_mock.go -rm -stub -with-resets . Client

// Client is the subset of the zkSync JSON-RPC API the paymaster workflow needs.
type Client interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)

	CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)

	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	// EstimateGasL2 estimates a call with eip712Meta attached, i.e. along the paymaster path.
	EstimateGasL2(ctx context.Context, call zksync.CallMsg) (uint64, error)

	SendTransaction(ctx context.Context, tx *types.Transaction) error
	// SendRawTransaction submits an already serialized transaction and returns the hash reported by the node.
	SendRawTransaction(ctx context.Context, data []byte) (common.Hash, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

var _ bind.ContractCaller = Client(nil)
