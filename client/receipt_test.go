package client

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

var fastWait = ReceiptWaitConfig{
	Timeout: 200 * time.Millisecond,
	Tick:    time.Millisecond,
}

func TestWaitForReceipt(t *testing.T) {
	t.Parallel()

	hash := common.HexToHash("0x01")
	clock := clockwork.NewRealClock()

	t.Run("PendingThenIncluded", func(t *testing.T) {
		t.Parallel()

		calls := 0
		mock := &ClientMock{
			TransactionReceiptFunc: func(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
				require.Equal(t, hash, txHash)
				calls++
				if calls < 3 {
					return nil, ethereum.NotFound
				}
				return &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: txHash}, nil
			},
		}

		receipt, err := WaitForReceipt(t.Context(), mock, clock, fastWait, hash)
		require.NoError(t, err)
		require.Equal(t, hash, receipt.TxHash)
		require.Len(t, mock.TransactionReceiptCalls(), 3)
	})

	t.Run("Reverted", func(t *testing.T) {
		t.Parallel()

		mock := &ClientMock{
			TransactionReceiptFunc: func(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
				return &types.Receipt{Status: types.ReceiptStatusFailed, TxHash: txHash}, nil
			},
		}

		receipt, err := WaitForReceipt(t.Context(), mock, clock, fastWait, hash)
		require.ErrorIs(t, err, ErrTransactionFailed)
		require.NotNil(t, receipt)
	})

	t.Run("Timeout", func(t *testing.T) {
		t.Parallel()

		mock := &ClientMock{
			TransactionReceiptFunc: func(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
				return nil, ethereum.NotFound
			},
		}

		_, err := WaitForReceipt(t.Context(), mock, clock, ReceiptWaitConfig{Timeout: 10 * time.Millisecond, Tick: time.Millisecond}, hash)
		require.ErrorIs(t, err, ErrReceiptTimeout)
	})

	t.Run("RpcError", func(t *testing.T) {
		t.Parallel()

		errBoom := errors.New("boom")
		mock := &ClientMock{
			TransactionReceiptFunc: func(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
				return nil, errBoom
			},
		}

		_, err := WaitForReceipt(t.Context(), mock, clock, fastWait, hash)
		require.ErrorIs(t, err, errBoom)
		require.Len(t, mock.TransactionReceiptCalls(), 1)
	})

	t.Run("RequestDeadline", func(t *testing.T) {
		t.Parallel()

		mock := &ClientMock{
			TransactionReceiptFunc: func(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
				return nil, fmt.Errorf("eth_getTransactionReceipt: %w", context.DeadlineExceeded)
			},
		}

		_, err := WaitForReceipt(t.Context(), mock, clock, fastWait, hash)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		require.NotErrorIs(t, err, ErrReceiptTimeout)
		require.ErrorContains(t, err, "eth_getTransactionReceipt")
		require.Len(t, mock.TransactionReceiptCalls(), 1)
	})
}
