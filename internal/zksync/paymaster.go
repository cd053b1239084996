package zksync

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/NilFoundation/zkpaymaster/common/check"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

type PaymasterFlow string

const (
	PaymasterFlowGeneral       PaymasterFlow = "General"
	PaymasterFlowApprovalBased PaymasterFlow = "ApprovalBased"
)

var ErrUnknownPaymasterFlow = errors.New("unknown paymaster flow")

// IPaymasterFlow from the system contracts.
const paymasterFlowAbiJson = `[
	{
		"type": "function",
		"name": "general",
		"stateMutability": "nonpayable",
		"inputs": [{"name": "input", "type": "bytes"}],
		"outputs": []
	},
	{
		"type": "function",
		"name": "approvalBased",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "_token", "type": "address"},
			{"name": "_minAllowance", "type": "uint256"},
			{"name": "_innerInput", "type": "bytes"}
		],
		"outputs": []
	}
]`

var paymasterFlowAbi abi.ABI

func init() {
	var err error
	paymasterFlowAbi, err = abi.JSON(strings.NewReader(paymasterFlowAbiJson))
	check.PanicIfErr(err)
}

// PaymasterInput is a flow-specific input that gets ABI-encoded into PaymasterParams.
type PaymasterInput interface {
	Flow() PaymasterFlow
	Encode() ([]byte, error)
}

// GeneralPaymasterInput is the flow where the paymaster pays without any token approval.
type GeneralPaymasterInput struct {
	InnerInput []byte
}

func (GeneralPaymasterInput) Flow() PaymasterFlow {
	return PaymasterFlowGeneral
}

func (in GeneralPaymasterInput) Encode() ([]byte, error) {
	return paymasterFlowAbi.Pack("general", nonNil(in.InnerInput))
}

// ApprovalBasedPaymasterInput is the flow where the sender approves an ERC-20 allowance to the paymaster.
type ApprovalBasedPaymasterInput struct {
	Token            common.Address
	MinimalAllowance *big.Int
	InnerInput       []byte
}

func (ApprovalBasedPaymasterInput) Flow() PaymasterFlow {
	return PaymasterFlowApprovalBased
}

func (in ApprovalBasedPaymasterInput) Encode() ([]byte, error) {
	allowance := in.MinimalAllowance
	if allowance == nil {
		allowance = new(big.Int)
	}
	return paymasterFlowAbi.Pack("approvalBased", in.Token, allowance, nonNil(in.InnerInput))
}

// GetPaymasterParams encodes the input for the given paymaster.
func GetPaymasterParams(paymaster common.Address, input PaymasterInput) (*PaymasterParams, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: nil input", ErrUnknownPaymasterFlow)
	}
	data, err := input.Encode()
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s paymaster input: %w", input.Flow(), err)
	}
	return &PaymasterParams{
		Paymaster:      paymaster,
		PaymasterInput: data,
	}, nil
}

// DecodePaymasterInput is the inverse of PaymasterInput.Encode.
func DecodePaymasterInput(data []byte) (PaymasterInput, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: input is too short", ErrUnknownPaymasterFlow)
	}
	method, err := paymasterFlowAbi.MethodById(data[:4])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownPaymasterFlow, err)
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s paymaster input: %w", method.Name, err)
	}

	switch method.Name {
	case "general":
		inner, _ := args[0].([]byte)
		return GeneralPaymasterInput{InnerInput: inner}, nil
	case "approvalBased":
		token, _ := args[0].(common.Address)
		allowance, _ := args[1].(*big.Int)
		inner, _ := args[2].([]byte)
		return ApprovalBasedPaymasterInput{Token: token, MinimalAllowance: allowance, InnerInput: inner}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPaymasterFlow, method.Name)
}

func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
