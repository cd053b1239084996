package interact

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/NilFoundation/zkpaymaster/client/rpc"
	"github.com/NilFoundation/zkpaymaster/common/logging"
	"github.com/NilFoundation/zkpaymaster/internal/zksync"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Overrides are the fee parameters of a paymaster-sponsored transaction.
type Overrides struct {
	MaxFeePerGas         *big.Int           `json:"maxFeePerGas"`
	MaxPriorityFeePerGas *big.Int           `json:"maxPriorityFeePerGas"`
	GasLimit             uint64             `json:"gasLimit"`
	CustomData           *zksync.Eip712Meta `json:"customData"`
}

// BuildPaymasterOverrides encodes the General paymaster params, estimates the call along
// the paymaster path with those params attached, and bundles the result.
// The gas price is fetched on every call; the priority fee is always the configured one.
func (s *Service) BuildPaymasterOverrides(
	ctx context.Context,
	from common.Address,
	paymaster common.Address,
	contract *Contract,
	method string,
	args ...any,
) (*Overrides, error) {
	params, err := zksync.GetPaymasterParams(paymaster, zksync.GeneralPaymasterInput{})
	if err != nil {
		return nil, err
	}
	data, err := contract.Abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str(logging.FieldRpcMethod, rpc.Eth_gasPrice).Msg("Failed to get gas price")
		return nil, err
	}

	meta := zksync.NewEip712Meta(s.gasPerPubdata, params)
	gasLimit, err := s.client.EstimateGasL2(ctx, zksync.CallMsg{
		From: from,
		To:   &contract.Address,
		Data: data,
		Meta: meta,
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str(logging.FieldRpcMethod, rpc.Eth_estimateGas).
			Str(logging.FieldMethod, method).
			Msg("Failed to estimate sponsored call")
		return nil, fmt.Errorf("failed to estimate %s: %w", method, err)
	}

	overrides := &Overrides{
		MaxFeePerGas:         gasPrice,
		MaxPriorityFeePerGas: s.maxPriorityFee.ToBig(),
		GasLimit:             gasLimit,
		CustomData:           meta,
	}
	s.logger.Debug().
		Stringer(logging.FieldGasPrice, gasPrice).
		Uint64(logging.FieldGasLimit, gasLimit).
		Stringer(logging.FieldPaymaster, paymaster).
		Msg("Paymaster overrides built")
	return overrides, nil
}

// Transact signs the call as an EIP-712 transaction with the given overrides and submits it.
// It does not wait for the receipt.
func (s *Service) Transact(
	ctx context.Context,
	key *ecdsa.PrivateKey,
	contract *Contract,
	overrides *Overrides,
	method string,
	args ...any,
) (common.Hash, error) {
	from := crypto.PubkeyToAddress(key.PublicKey)

	data, err := contract.Abi.Pack(method, args...)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to pack %s: %w", method, err)
	}
	chainId, err := s.ChainID(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	nonce, err := s.client.PendingNonceAt(ctx, from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get nonce of %s: %w", from, err)
	}

	// A copy, so that the signature does not end up in the caller's overrides.
	meta := *overrides.CustomData
	tx := &zksync.Transaction712{
		Nonce:     nonce,
		GasTipCap: overrides.MaxPriorityFeePerGas,
		GasFeeCap: overrides.MaxFeePerGas,
		Gas:       overrides.GasLimit,
		To:        &contract.Address,
		Value:     new(big.Int),
		Data:      data,
		ChainID:   chainId,
		Meta:      &meta,
	}
	if err := tx.Sign(key); err != nil {
		return common.Hash{}, err
	}
	raw, err := tx.MarshalBinary()
	if err != nil {
		return common.Hash{}, err
	}

	hash, err := s.client.SendRawTransaction(ctx, raw)
	if err != nil {
		s.logger.Error().Err(err).Str(logging.FieldRpcMethod, rpc.Eth_sendRawTransaction).Msg("Failed to send transaction")
		return common.Hash{}, err
	}
	if expected, err := tx.Hash(); err == nil && expected != hash {
		s.logger.Warn().
			Stringer(logging.FieldTransactionHash, hash).
			Stringer("expectedHash", expected).
			Msg("Node reported an unexpected transaction hash")
	}

	s.logger.Info().
		Stringer(logging.FieldTransactionHash, hash).
		Stringer(logging.FieldTransactionFrom, from).
		Stringer(logging.FieldTransactionTo, contract.Address).
		Uint64(logging.FieldTransactionNonce, nonce).
		Str(logging.FieldMethod, method).
		Msg("Transaction sent")
	return hash, nil
}
