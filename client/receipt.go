package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	zkcommon "github.com/NilFoundation/zkpaymaster/common"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/jonboulle/clockwork"
)

var (
	ErrReceiptTimeout    = errors.New("receipt wait timeout reached")
	ErrTransactionFailed = errors.New("transaction failed")
)

type ReceiptWaitConfig struct {
	Timeout time.Duration
	Tick    time.Duration
}

func DefaultReceiptWaitConfig() ReceiptWaitConfig {
	return ReceiptWaitConfig{
		Timeout: 2 * time.Minute,
		Tick:    500 * time.Millisecond,
	}
}

// WaitForReceipt polls until the receipt of the transaction appears.
// A receipt with failed status is returned together with ErrTransactionFailed.
func WaitForReceipt(
	ctx context.Context,
	client Client,
	clock clockwork.Clock,
	cfg ReceiptWaitConfig,
	txnHash common.Hash,
) (*types.Receipt, error) {
	receipt, err := zkcommon.WaitForValue(
		ctx,
		clock,
		cfg.Timeout,
		cfg.Tick,
		func(ctx context.Context) (*types.Receipt, error) {
			receipt, err := client.TransactionReceipt(ctx, txnHash)
			if errors.Is(err, ethereum.NotFound) {
				// retry
				return nil, nil
			}
			return receipt, err
		})
	// WaitForValue returns the bare sentinel for its own deadline; a wrapped one
	// comes from a single request and is propagated as is.
	if err == context.DeadlineExceeded && ctx.Err() == nil { //nolint:errorlint
		return nil, fmt.Errorf("%w: %s", ErrReceiptTimeout, txnHash)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt of %s: %w", txnHash, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%w: %s", ErrTransactionFailed, txnHash)
	}
	return receipt, nil
}
