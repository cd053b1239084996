package interact

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"time"

	"github.com/NilFoundation/zkpaymaster/client"
	"github.com/NilFoundation/zkpaymaster/internal/contracts"
	"github.com/NilFoundation/zkpaymaster/internal/types"
	"github.com/NilFoundation/zkpaymaster/internal/zksync"
	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrMissingRpcEndpoint      = errors.New("empty rpc endpoint")
	ErrMissingContractAddress  = errors.New("contract address is not set")
	ErrMissingPaymasterAddress = errors.New("paymaster contract address is not set")
	ErrInvalidAddress          = errors.New("invalid address")
	ErrMissingPrivateKey       = errors.New("operator private key is not set")
	ErrInvalidTimeout          = errors.New("invalid timeout")
	ErrEmptyContractName       = errors.New("empty contract name")
)

const DefaultNewGreeting = "Hello Aleph!"

type Config struct {
	RPCEndpoint string            `mapstructure:"rpc_endpoint"`
	PrivateKey  *ecdsa.PrivateKey `mapstructure:"private_key"`

	ContractAddress  string `mapstructure:"contract_address"`
	PaymasterAddress string `mapstructure:"paymaster_address"`
	ContractName     string `mapstructure:"contract_name"`
	ArtifactsPath    string `mapstructure:"artifacts_path"`

	FundAmount           types.Value `mapstructure:"fund_amount"`
	MaxPriorityFeePerGas types.Value `mapstructure:"max_priority_fee_per_gas"`
	GasPerPubdata        uint64      `mapstructure:"gas_per_pubdata"`
	NewGreeting          string      `mapstructure:"new_greeting"`
	UseOperatorAsSigner  bool        `mapstructure:"use_operator_as_signer"`

	RPCTimeout          time.Duration `mapstructure:"rpc_timeout"`
	RPCRetries          uint32        `mapstructure:"rpc_retries"`
	ReceiptTimeout      time.Duration `mapstructure:"receipt_timeout"`
	ReceiptPollInterval time.Duration `mapstructure:"receipt_poll_interval"`
}

func DefaultConfig() *Config {
	receiptWait := client.DefaultReceiptWaitConfig()
	return &Config{
		ContractName:         contracts.NameGreeter,
		FundAmount:           types.MustParseValue("0.5eth"),
		MaxPriorityFeePerGas: types.NewValueFromUint64(1),
		GasPerPubdata:        zksync.DefaultGasPerPubdataLimit,
		NewGreeting:          DefaultNewGreeting,
		RPCTimeout:           30 * time.Second,
		ReceiptTimeout:       receiptWait.Timeout,
		ReceiptPollInterval:  receiptWait.Tick,
	}
}

// Validate checks everything a run needs before the first network call.
func (c *Config) Validate() error {
	if c.RPCEndpoint == "" {
		return ErrMissingRpcEndpoint
	}
	if err := validateAddress(c.ContractAddress, ErrMissingContractAddress); err != nil {
		return err
	}
	if err := validateAddress(c.PaymasterAddress, ErrMissingPaymasterAddress); err != nil {
		return err
	}
	if c.ContractName == "" {
		return ErrEmptyContractName
	}
	return c.validateTimeouts()
}

// ValidateEndpoint checks only what talking to the node needs.
func (c *Config) ValidateEndpoint() error {
	if c.RPCEndpoint == "" {
		return ErrMissingRpcEndpoint
	}
	return c.validateTimeouts()
}

// ValidatePaymaster is ValidateEndpoint plus the paymaster address; the contract is not required.
func (c *Config) ValidatePaymaster() error {
	if err := c.ValidateEndpoint(); err != nil {
		return err
	}
	return validateAddress(c.PaymasterAddress, ErrMissingPaymasterAddress)
}

// ValidateFunding checks what a standalone transfer to the paymaster needs.
func (c *Config) ValidateFunding() error {
	if err := c.ValidatePaymaster(); err != nil {
		return err
	}
	return c.ValidateOperator()
}

func (c *Config) validateTimeouts() error {
	if c.ReceiptTimeout <= 0 || c.ReceiptPollInterval <= 0 {
		return fmt.Errorf("%w: receipt_timeout and receipt_poll_interval must be positive", ErrInvalidTimeout)
	}
	if c.RPCTimeout < 0 {
		return fmt.Errorf("%w: rpc_timeout must not be negative", ErrInvalidTimeout)
	}
	return nil
}

// NeedsOperator reports whether the operator key takes part in the run.
func (c *Config) NeedsOperator() bool {
	return !c.FundAmount.IsZero() || c.UseOperatorAsSigner
}

func (c *Config) ValidateOperator() error {
	if c.PrivateKey == nil {
		return ErrMissingPrivateKey
	}
	return nil
}

func validateAddress(value string, errMissing error) error {
	if value == "" {
		return errMissing
	}
	if !common.IsHexAddress(value) {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, value)
	}
	return nil
}

// Contract must be called after Validate.
func (c *Config) Contract() common.Address {
	return common.HexToAddress(c.ContractAddress)
}

// Paymaster must be called after Validate.
func (c *Config) Paymaster() common.Address {
	return common.HexToAddress(c.PaymasterAddress)
}

func (c *Config) ReceiptWait() client.ReceiptWaitConfig {
	return client.ReceiptWaitConfig{
		Timeout: c.ReceiptTimeout,
		Tick:    c.ReceiptPollInterval,
	}
}
