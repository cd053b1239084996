package rpc

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/NilFoundation/zkpaymaster/client"
	"github.com/NilFoundation/zkpaymaster/common"
	"github.com/NilFoundation/zkpaymaster/common/logging"
	"github.com/NilFoundation/zkpaymaster/internal/zksync"
	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

var (
	ErrFailedToDial = errors.New("failed to dial rpc endpoint")
	ErrEmptyUrl     = errors.New("empty rpc endpoint")
)

const (
	Eth_chainId               = "eth_chainId"
	Eth_getBalance            = "eth_getBalance"
	Eth_getTransactionCount   = "eth_getTransactionCount"
	Eth_gasPrice              = "eth_gasPrice"
	Eth_getCode               = "eth_getCode"
	Eth_call                  = "eth_call"
	Eth_estimateGas           = "eth_estimateGas"
	Eth_sendRawTransaction    = "eth_sendRawTransaction"
	Eth_getTransactionReceipt = "eth_getTransactionReceipt"
)

var errNotRetryable = []error{
	ethereum.NotFound,
	context.Canceled,
}

func doNotRetryServerErrors(_ uint32, err error) bool {
	var rpcErr gethrpc.Error
	return !errors.As(err, &rpcErr)
}

// Client talks JSON-RPC to a zkSync node. Standard methods go through ethclient,
// zkSync-specific ones are sent as raw calls.
type Client struct {
	endpoint string
	rpc      *gethrpc.Client
	eth      *ethclient.Client
	timeout  time.Duration
	logger   zerolog.Logger
	retrier  *common.RetryRunner
}

var _ client.Client = (*Client)(nil)

func NewClient(ctx context.Context, endpoint string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, ErrEmptyUrl
	}

	cfg := config{
		timeout: DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	headers := make(http.Header, len(cfg.headers))
	for key, value := range cfg.headers {
		headers.Set(key, value)
	}

	rpcClient, err := gethrpc.DialOptions(ctx, endpoint, gethrpc.WithHeaders(headers))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrFailedToDial, endpoint, err)
	}

	c := &Client{
		endpoint: endpoint,
		rpc:      rpcClient,
		eth:      ethclient.NewClient(rpcClient),
		timeout:  cfg.timeout,
		logger:   logger,
	}
	if cfg.retry != nil {
		retrier := common.NewRetryRunner(*cfg.retry, clockwork.NewRealClock(), c.logger)
		c.retrier = &retrier
	}
	return c, nil
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) Close() {
	c.rpc.Close()
}

// do runs a single request under the request timeout.
// Only idempotent requests go through the retrier.
func (c *Client) do(ctx context.Context, method string, idempotent bool, call func(ctx context.Context) error) error {
	attempt := func(ctx context.Context) error {
		if c.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}

		start := time.Now()
		err := call(ctx)
		c.logger.Trace().
			Str(logging.FieldRpcMethod, method).
			Dur(logging.FieldDuration, time.Since(start)).
			Err(err).
			Msg("rpc request done")
		return err
	}

	var err error
	if idempotent && c.retrier != nil {
		err = c.retrier.Do(ctx, attempt)
	} else {
		err = attempt(ctx)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	var res *big.Int
	err := c.do(ctx, Eth_chainId, true, func(ctx context.Context) (err error) {
		res, err = c.eth.ChainID(ctx)
		return
	})
	return res, err
}

func (c *Client) BalanceAt(ctx context.Context, account ethcommon.Address, blockNumber *big.Int) (*big.Int, error) {
	var res *big.Int
	err := c.do(ctx, Eth_getBalance, true, func(ctx context.Context) (err error) {
		res, err = c.eth.BalanceAt(ctx, account, blockNumber)
		return
	})
	return res, err
}

func (c *Client) PendingNonceAt(ctx context.Context, account ethcommon.Address) (uint64, error) {
	var res uint64
	err := c.do(ctx, Eth_getTransactionCount, true, func(ctx context.Context) (err error) {
		res, err = c.eth.PendingNonceAt(ctx, account)
		return
	})
	return res, err
}

func (c *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	var res *big.Int
	err := c.do(ctx, Eth_gasPrice, true, func(ctx context.Context) (err error) {
		res, err = c.eth.SuggestGasPrice(ctx)
		return
	})
	return res, err
}

func (c *Client) CodeAt(ctx context.Context, contract ethcommon.Address, blockNumber *big.Int) ([]byte, error) {
	var res []byte
	err := c.do(ctx, Eth_getCode, true, func(ctx context.Context) (err error) {
		res, err = c.eth.CodeAt(ctx, contract, blockNumber)
		return
	})
	return res, err
}

func (c *Client) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	var res []byte
	err := c.do(ctx, Eth_call, true, func(ctx context.Context) (err error) {
		res, err = c.eth.CallContract(ctx, call, blockNumber)
		return
	})
	return res, err
}

func (c *Client) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	var res uint64
	err := c.do(ctx, Eth_estimateGas, true, func(ctx context.Context) (err error) {
		res, err = c.eth.EstimateGas(ctx, call)
		return
	})
	return res, err
}

func (c *Client) EstimateGasL2(ctx context.Context, call zksync.CallMsg) (uint64, error) {
	var res hexutil.Uint64
	err := c.do(ctx, Eth_estimateGas, true, func(ctx context.Context) error {
		return c.rpc.CallContext(ctx, &res, Eth_estimateGas, call)
	})
	return uint64(res), err
}

func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	return c.do(ctx, Eth_sendRawTransaction, false, func(ctx context.Context) error {
		return c.eth.SendTransaction(ctx, tx)
	})
}

func (c *Client) SendRawTransaction(ctx context.Context, data []byte) (ethcommon.Hash, error) {
	var res ethcommon.Hash
	err := c.do(ctx, Eth_sendRawTransaction, false, func(ctx context.Context) error {
		return c.rpc.CallContext(ctx, &res, Eth_sendRawTransaction, hexutil.Bytes(data))
	})
	return res, err
}

func (c *Client) TransactionReceipt(ctx context.Context, txHash ethcommon.Hash) (*types.Receipt, error) {
	var res *types.Receipt
	err := c.do(ctx, Eth_getTransactionReceipt, true, func(ctx context.Context) (err error) {
		res, err = c.eth.TransactionReceipt(ctx, txHash)
		return
	})
	return res, err
}
