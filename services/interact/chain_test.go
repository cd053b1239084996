package interact

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/NilFoundation/zkpaymaster/client"
	"github.com/NilFoundation/zkpaymaster/internal/contracts"
	"github.com/NilFoundation/zkpaymaster/internal/zksync"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

const (
	transferGas = 21_000
	writeGas    = 300_000
)

var errReverted = errors.New("execution reverted")

// testChain keeps balances, nonces and the greeting of a single Greeter and serves them through a ClientMock.
type testChain struct {
	t   *testing.T
	abi *abi.ABI

	mu        sync.Mutex
	chainId   *big.Int
	gasPrice  *big.Int
	contract  common.Address
	paymaster common.Address
	greeting  string
	balances  map[common.Address]*big.Int
	nonces    map[common.Address]uint64
	receipts  map[common.Hash]*ethtypes.Receipt

	estimateErr error
	revertWrite bool

	// Decoded sponsored transactions in the order they were sent.
	sent []*zksync.Transaction712
}

func newTestChain(t *testing.T, contract, paymaster common.Address) *testChain {
	t.Helper()

	artifact, err := contracts.EmbeddedArtifact(contracts.NameGreeter)
	require.NoError(t, err)

	return &testChain{
		t:         t,
		abi:       artifact.Abi,
		chainId:   big.NewInt(270),
		gasPrice:  big.NewInt(250_000_000),
		contract:  contract,
		paymaster: paymaster,
		greeting:  "Hi!",
		balances:  make(map[common.Address]*big.Int),
		nonces:    make(map[common.Address]uint64),
		receipts:  make(map[common.Hash]*ethtypes.Receipt),
	}
}

func (c *testChain) setBalance(addr common.Address, balance *big.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.balances[addr] = new(big.Int).Set(balance)
}

func (c *testChain) balance(addr common.Address) *big.Int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balanceLocked(addr)
}

func (c *testChain) balanceLocked(addr common.Address) *big.Int {
	if b, ok := c.balances[addr]; ok {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

func (c *testChain) transferLocked(from, to common.Address, value, fee *big.Int) {
	fromBalance := c.balanceLocked(from)
	fromBalance.Sub(fromBalance, value)
	fromBalance.Sub(fromBalance, fee)
	require.GreaterOrEqual(c.t, fromBalance.Sign(), 0, "insufficient funds of %s", from)
	c.balances[from] = fromBalance

	if to != (common.Address{}) {
		c.balances[to] = new(big.Int).Add(c.balanceLocked(to), value)
	}
}

func (c *testChain) includeLocked(hash common.Hash, gas uint64, ok bool) {
	status := ethtypes.ReceiptStatusSuccessful
	if !ok {
		status = ethtypes.ReceiptStatusFailed
	}
	c.receipts[hash] = &ethtypes.Receipt{
		Type:              zksync.TxType,
		Status:            status,
		TxHash:            hash,
		GasUsed:           gas,
		EffectiveGasPrice: new(big.Int).Set(c.gasPrice),
		BlockNumber:       big.NewInt(int64(len(c.receipts) + 1)),
	}
}

func (c *testChain) sendTransaction(tx *ethtypes.Transaction) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	from, err := ethtypes.Sender(ethtypes.LatestSignerForChainID(c.chainId), tx)
	require.NoError(c.t, err)
	require.Equal(c.t, c.nonces[from], tx.Nonce())
	require.NotNil(c.t, tx.To())

	fee := new(big.Int).Mul(new(big.Int).SetUint64(tx.Gas()), tx.GasFeeCap())
	c.transferLocked(from, *tx.To(), tx.Value(), fee)
	c.nonces[from]++
	c.includeLocked(tx.Hash(), tx.Gas(), true)
	return nil
}

func (c *testChain) sendRawTransaction(data []byte) (common.Hash, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var tx zksync.Transaction712
	require.NoError(c.t, tx.UnmarshalBinary(data))
	from, err := tx.Sender()
	require.NoError(c.t, err)
	require.Equal(c.t, c.nonces[from], tx.Nonce)
	require.Equal(c.t, c.chainId.String(), tx.ChainID.String())
	require.NotNil(c.t, tx.To)
	require.Equal(c.t, c.contract, *tx.To)

	// Fees are paid by the paymaster, the sender keeps its balance.
	require.NotNil(c.t, tx.Meta.PaymasterParams)
	require.Equal(c.t, c.paymaster, tx.Meta.PaymasterParams.Paymaster)
	input, err := zksync.DecodePaymasterInput(tx.Meta.PaymasterParams.PaymasterInput)
	require.NoError(c.t, err)
	require.Equal(c.t, zksync.PaymasterFlowGeneral, input.Flow())

	method, err := c.abi.MethodById(tx.Data)
	require.NoError(c.t, err)
	require.Equal(c.t, contracts.MethodSetGreeting, method.Name)
	args, err := method.Inputs.Unpack(tx.Data[4:])
	require.NoError(c.t, err)

	hash, err := tx.Hash()
	require.NoError(c.t, err)

	fee := new(big.Int).Mul(new(big.Int).SetUint64(tx.Gas), tx.GasFeeCap)
	c.transferLocked(c.paymaster, common.Address{}, new(big.Int), fee)
	c.nonces[from]++
	c.sent = append(c.sent, &tx)
	if !c.revertWrite {
		c.greeting = args[0].(string)
	}
	c.includeLocked(hash, tx.Gas, !c.revertWrite)
	return hash, nil
}

func (c *testChain) callContract(call ethereum.CallMsg) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	require.NotNil(c.t, call.To)
	require.Equal(c.t, c.contract, *call.To)
	method, err := c.abi.MethodById(call.Data)
	require.NoError(c.t, err)
	require.Equal(c.t, contracts.MethodGreet, method.Name)
	return method.Outputs.Pack(c.greeting)
}

func (c *testChain) Mock() *client.ClientMock {
	return &client.ClientMock{
		ChainIDFunc: func(ctx context.Context) (*big.Int, error) {
			return new(big.Int).Set(c.chainId), nil
		},
		BalanceAtFunc: func(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
			return c.balance(account), nil
		},
		PendingNonceAtFunc: func(ctx context.Context, account common.Address) (uint64, error) {
			c.mu.Lock()
			defer c.mu.Unlock()
			return c.nonces[account], nil
		},
		SuggestGasPriceFunc: func(ctx context.Context) (*big.Int, error) {
			c.mu.Lock()
			defer c.mu.Unlock()
			return new(big.Int).Set(c.gasPrice), nil
		},
		CodeAtFunc: func(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
			if contract == c.contract {
				return []byte{0x60}, nil
			}
			return nil, nil
		},
		CallContractFunc: func(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
			return c.callContract(call)
		},
		EstimateGasFunc: func(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
			return transferGas, nil
		},
		EstimateGasL2Func: func(ctx context.Context, call zksync.CallMsg) (uint64, error) {
			c.mu.Lock()
			defer c.mu.Unlock()
			if c.estimateErr != nil {
				return 0, c.estimateErr
			}
			return writeGas, nil
		},
		SendTransactionFunc: func(ctx context.Context, tx *ethtypes.Transaction) error {
			return c.sendTransaction(tx)
		},
		SendRawTransactionFunc: func(ctx context.Context, data []byte) (common.Hash, error) {
			return c.sendRawTransaction(data)
		},
		TransactionReceiptFunc: func(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
			c.mu.Lock()
			defer c.mu.Unlock()
			if r, ok := c.receipts[txHash]; ok {
				return r, nil
			}
			return nil, ethereum.NotFound
		},
	}
}
