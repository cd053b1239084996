package zksync

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var testPaymaster = common.HexToAddress("0x7Dbd2C5A3C1E7b2Bf5C7d0F2a1b9A2b6d3C8e4F1")

func TestGeneralPaymasterInput(t *testing.T) {
	t.Parallel()

	params, err := GetPaymasterParams(testPaymaster, GeneralPaymasterInput{})
	require.NoError(t, err)
	require.Equal(t, testPaymaster, params.Paymaster)

	expected := "0x8c5a3445" +
		"0000000000000000000000000000000000000000000000000000000000000020" +
		"0000000000000000000000000000000000000000000000000000000000000000"
	require.Equal(t, expected, hexutil.Encode(params.PaymasterInput))
}

func TestApprovalBasedPaymasterInput(t *testing.T) {
	t.Parallel()

	token := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	input := ApprovalBasedPaymasterInput{
		Token:            token,
		MinimalAllowance: big.NewInt(1),
		InnerInput:       []byte{0x01, 0x02},
	}
	params, err := GetPaymasterParams(testPaymaster, input)
	require.NoError(t, err)
	require.Equal(t, "0x949431dc", hexutil.Encode(params.PaymasterInput[:4]))

	decoded, err := DecodePaymasterInput(params.PaymasterInput)
	require.NoError(t, err)
	approval, ok := decoded.(ApprovalBasedPaymasterInput)
	require.True(t, ok)
	require.Equal(t, PaymasterFlowApprovalBased, approval.Flow())
	require.Equal(t, token, approval.Token)
	require.Equal(t, 0, big.NewInt(1).Cmp(approval.MinimalAllowance))
	require.Equal(t, []byte{0x01, 0x02}, approval.InnerInput)
}

func TestGetPaymasterParamsNilInput(t *testing.T) {
	t.Parallel()

	_, err := GetPaymasterParams(testPaymaster, nil)
	require.ErrorIs(t, err, ErrUnknownPaymasterFlow)
}

func TestDecodePaymasterInputErrors(t *testing.T) {
	t.Parallel()

	_, err := DecodePaymasterInput([]byte{0x01})
	require.ErrorIs(t, err, ErrUnknownPaymasterFlow)

	_, err = DecodePaymasterInput([]byte{0xde, 0xad, 0xbe, 0xef})
	require.ErrorIs(t, err, ErrUnknownPaymasterFlow)
}

func TestGeneralPaymasterInputProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		inner := rapid.SliceOfN(rapid.Byte(), 0, 200).Draw(t, "inner")

		params, err := GetPaymasterParams(testPaymaster, GeneralPaymasterInput{InnerInput: inner})
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(hexutil.Encode(params.PaymasterInput), "0x8c5a3445"))

		decoded, err := DecodePaymasterInput(params.PaymasterInput)
		require.NoError(t, err)
		general, ok := decoded.(GeneralPaymasterInput)
		require.True(t, ok)
		require.Equal(t, len(inner), len(general.InnerInput))
		if len(inner) > 0 {
			require.Equal(t, inner, general.InnerInput)
		}
	})
}
