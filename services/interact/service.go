package interact

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/NilFoundation/zkpaymaster/client"
	"github.com/NilFoundation/zkpaymaster/client/rpc"
	"github.com/NilFoundation/zkpaymaster/common/logging"
	"github.com/NilFoundation/zkpaymaster/internal/types"
	"github.com/NilFoundation/zkpaymaster/internal/zksync"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

var ErrUnexpectedOutput = errors.New("unexpected method output")

// Service implements the single steps of the paymaster workflow on top of a client.Client.
type Service struct {
	client         client.Client
	clock          clockwork.Clock
	receiptWait    client.ReceiptWaitConfig
	maxPriorityFee types.Value
	gasPerPubdata  uint64
	logger         logging.Logger

	// constant for an endpoint, fetched once
	chainId *big.Int
}

func NewService(c client.Client, cfg *Config, clock clockwork.Clock) *Service {
	return &Service{
		client:         c,
		clock:          clock,
		receiptWait:    cfg.ReceiptWait(),
		maxPriorityFee: cfg.MaxPriorityFeePerGas,
		gasPerPubdata:  cfg.GasPerPubdata,
		logger:         logging.NewLogger("interact"),
	}
}

func (s *Service) Client() client.Client {
	return s.client
}

func (s *Service) ChainID(ctx context.Context) (*big.Int, error) {
	if s.chainId != nil {
		return s.chainId, nil
	}
	chainId, err := s.client.ChainID(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str(logging.FieldRpcMethod, rpc.Eth_chainId).Msg("Failed to get chain id")
		return nil, err
	}
	s.chainId = chainId
	return chainId, nil
}

// GetBalance returns the latest balance of the address in wei.
func (s *Service) GetBalance(ctx context.Context, address common.Address) (*big.Int, error) {
	balance, err := s.client.BalanceAt(ctx, address, nil)
	if err != nil {
		s.logger.Error().Err(err).Str(logging.FieldRpcMethod, rpc.Eth_getBalance).Msg("Failed to get balance")
		return nil, err
	}

	s.logger.Debug().
		Stringer(logging.FieldAddress, address).
		Stringer(logging.FieldBalance, balance).
		Msg("Balance fetched")
	return balance, nil
}

// GetBalances fetches the balances concurrently; the result is in the order of the addresses.
func (s *Service) GetBalances(ctx context.Context, addresses ...common.Address) ([]*big.Int, error) {
	res := make([]*big.Int, len(addresses))
	g, gCtx := errgroup.WithContext(ctx)
	for i, address := range addresses {
		g.Go(func() error {
			balance, err := s.GetBalance(gCtx, address)
			if err != nil {
				return fmt.Errorf("failed to get balance of %s: %w", address, err)
			}
			res[i] = balance
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// FundPaymaster transfers the amount from the key's account to the paymaster and waits for inclusion.
func (s *Service) FundPaymaster(
	ctx context.Context,
	key *ecdsa.PrivateKey,
	paymaster common.Address,
	amount types.Value,
) (common.Hash, error) {
	from := crypto.PubkeyToAddress(key.PublicKey)

	chainId, err := s.ChainID(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	nonce, err := s.client.PendingNonceAt(ctx, from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get nonce of %s: %w", from, err)
	}
	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get gas price: %w", err)
	}

	value := amount.ToBig()
	gas, err := s.client.EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    &paymaster,
		Value: value,
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to estimate funding transfer: %w", err)
	}

	// The tip can't exceed the fee cap.
	tip := s.maxPriorityFee.ToBig()
	if tip.Cmp(gasPrice) > 0 {
		tip = new(big.Int).Set(gasPrice)
	}

	tx, err := ethtypes.SignTx(
		ethtypes.NewTx(&ethtypes.DynamicFeeTx{
			ChainID:   chainId,
			Nonce:     nonce,
			GasTipCap: tip,
			GasFeeCap: gasPrice,
			Gas:       gas,
			To:        &paymaster,
			Value:     value,
		}),
		ethtypes.LatestSignerForChainID(chainId),
		key,
	)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign funding transfer: %w", err)
	}

	if err := s.client.SendTransaction(ctx, tx); err != nil {
		s.logger.Error().Err(err).Str(logging.FieldRpcMethod, rpc.Eth_sendRawTransaction).Msg("Failed to send funding transfer")
		return common.Hash{}, err
	}
	s.logger.Info().
		Stringer(logging.FieldTransactionHash, tx.Hash()).
		Stringer(logging.FieldTransactionFrom, from).
		Stringer(logging.FieldTransactionTo, paymaster).
		Stringer(logging.FieldTransactionValue, value).
		Uint64(logging.FieldTransactionNonce, nonce).
		Msg("Funding transfer sent")

	if _, err := s.WaitForReceipt(ctx, tx.Hash()); err != nil {
		return tx.Hash(), err
	}
	return tx.Hash(), nil
}

// Contract binds an ABI to an address.
type Contract struct {
	Address common.Address
	Abi     *abi.ABI
	bound   *bind.BoundContract
}

func (s *Service) NewContract(address common.Address, contractAbi *abi.ABI) *Contract {
	return &Contract{
		Address: address,
		Abi:     contractAbi,
		bound:   bind.NewBoundContract(address, *contractAbi, s.client, nil, nil),
	}
}

// CallView invokes a read-only method at the latest block and returns the decoded outputs.
func (s *Service) CallView(ctx context.Context, contract *Contract, method string, args ...any) ([]any, error) {
	var out []any
	if err := contract.bound.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		s.logger.Error().
			Err(err).
			Str(logging.FieldRpcMethod, rpc.Eth_call).
			Str(logging.FieldMethod, method).
			Stringer(logging.FieldContract, contract.Address).
			Msg("Failed to call contract")
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}
	return out, nil
}

// ReadString calls a view method that returns a single string.
func (s *Service) ReadString(ctx context.Context, contract *Contract, method string, args ...any) (string, error) {
	out, err := s.CallView(ctx, contract, method, args...)
	if err != nil {
		return "", err
	}
	if len(out) != 1 {
		return "", fmt.Errorf("%w: %s returned %d values", ErrUnexpectedOutput, method, len(out))
	}
	res, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("%w: %s returned %T", ErrUnexpectedOutput, method, out[0])
	}
	return res, nil
}

// WaitForReceipt blocks until the transaction is included; a reverted transaction is an error.
func (s *Service) WaitForReceipt(ctx context.Context, txnHash common.Hash) (*ethtypes.Receipt, error) {
	receipt, err := client.WaitForReceipt(ctx, s.client, s.clock, s.receiptWait, txnHash)
	if receipt != nil {
		s.logReceiptDetails(receipt)
	}
	return receipt, err
}

// logReceiptDetails logs the essential details of a transaction receipt.
func (s *Service) logReceiptDetails(receipt *ethtypes.Receipt) {
	event := s.logger.Info().
		Uint8("type", receipt.Type).
		Uint64("status", receipt.Status).
		Hex(logging.FieldTransactionHash, receipt.TxHash.Bytes()).
		Uint64("gasUsed", receipt.GasUsed).
		Hex(logging.FieldBlockHash, receipt.BlockHash.Bytes())
	if receipt.EffectiveGasPrice != nil {
		event = event.Stringer("effectiveGasPrice", receipt.EffectiveGasPrice)
	}
	if receipt.BlockNumber != nil {
		event = event.Stringer(logging.FieldBlockNumber, receipt.BlockNumber)
	}
	event.Msg("Transaction receipt received")
}
