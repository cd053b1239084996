package interact

import (
	"context"
	"math/big"
	"testing"

	"github.com/NilFoundation/zkpaymaster/client"
	"github.com/NilFoundation/zkpaymaster/internal/contracts"
	"github.com/NilFoundation/zkpaymaster/internal/types"
	"github.com/NilFoundation/zkpaymaster/internal/zksync"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBuildPaymasterOverrides(t *testing.T) {
	t.Parallel()

	artifact, err := contracts.EmbeddedArtifact(contracts.NameGreeter)
	require.NoError(t, err)
	from := common.HexToAddress("0x36615Cf349d7F6344891B1e7CA7C72883F5dc049")
	paymaster := common.HexToAddress("0x4B5DF730c2e6b28E17013A1485E5d9BC41Efe021")

	rapid.Check(t, func(t *rapid.T) {
		gasPrice := new(big.Int).SetUint64(rapid.Uint64().Draw(t, "gasPrice"))
		gas := rapid.Uint64Range(21_000, 10_000_000).Draw(t, "gas")

		mock := &client.ClientMock{
			SuggestGasPriceFunc: func(ctx context.Context) (*big.Int, error) {
				return gasPrice, nil
			},
			EstimateGasL2Func: func(ctx context.Context, call zksync.CallMsg) (uint64, error) {
				return gas, nil
			},
		}
		cfg := validConfig()
		service := NewService(mock, cfg, clockwork.NewRealClock())
		contract := service.NewContract(common.HexToAddress(cfg.ContractAddress), artifact.Abi)

		overrides, err := service.BuildPaymasterOverrides(
			context.Background(), from, paymaster, contract, contracts.MethodSetGreeting, "hello")
		require.NoError(t, err)

		require.Equal(t, "1", overrides.MaxPriorityFeePerGas.String())
		require.Equal(t, gasPrice.String(), overrides.MaxFeePerGas.String())
		require.Equal(t, gas, overrides.GasLimit)

		// estimation goes along the paymaster path
		calls := mock.EstimateGasL2Calls()
		require.Len(t, calls, 1)
		call := calls[0].Call
		require.Equal(t, from, call.From)
		require.Same(t, overrides.CustomData, call.Meta)
		require.Equal(t, paymaster, call.Meta.PaymasterParams.Paymaster)
		require.Equal(t, "8c5a3445", common.Bytes2Hex(call.Meta.PaymasterParams.PaymasterInput[:4]))
		require.Equal(t, uint64(zksync.DefaultGasPerPubdataLimit), call.Meta.GasPerPubdata.ToInt().Uint64())
	})
}

func TestFundPaymasterTipIsCapped(t *testing.T) {
	t.Parallel()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	paymaster := common.HexToAddress("0x4B5DF730c2e6b28E17013A1485E5d9BC41Efe021")

	for _, tc := range []struct {
		name     string
		gasPrice int64
		tip      uint64
		expected string
	}{
		{"Configured", 100, 1, "1"},
		{"Capped", 100, 1_000, "100"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var sent *ethtypes.Transaction
			mock := &client.ClientMock{
				ChainIDFunc: func(ctx context.Context) (*big.Int, error) {
					return big.NewInt(270), nil
				},
				SuggestGasPriceFunc: func(ctx context.Context) (*big.Int, error) {
					return big.NewInt(tc.gasPrice), nil
				},
				EstimateGasFunc: func(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
					require.Equal(t, paymaster, *call.To)
					return 21_000, nil
				},
				SendTransactionFunc: func(ctx context.Context, tx *ethtypes.Transaction) error {
					sent = tx
					return nil
				},
				TransactionReceiptFunc: func(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
					return &ethtypes.Receipt{Status: ethtypes.ReceiptStatusSuccessful, TxHash: txHash}, nil
				},
			}
			cfg := validConfig()
			cfg.MaxPriorityFeePerGas = types.NewValueFromUint64(tc.tip)
			service := NewService(mock, cfg, clockwork.NewRealClock())

			hash, err := service.FundPaymaster(t.Context(), key, paymaster, types.MustParseValue("0.5eth"))
			require.NoError(t, err)
			require.NotNil(t, sent)
			require.Equal(t, sent.Hash(), hash)
			require.Equal(t, tc.expected, sent.GasTipCap().String())
			require.Equal(t, "500000000000000000", sent.Value().String())
		})
	}
}
