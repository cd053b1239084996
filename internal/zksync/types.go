package zksync

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// TxType is the EIP-712 transaction type of zkSync.
	TxType = 0x71

	// DefaultGasPerPubdataLimit is the gas per pubdata byte limit used when none is given.
	DefaultGasPerPubdataLimit = 50_000

	EIP712DomainName    = "zkSync"
	EIP712DomainVersion = "2"
)

// ByteArray is serialized to JSON as an array of numbers,
// which is what the node expects for the byte fields of eip712Meta.
type ByteArray []byte

func (b ByteArray) MarshalJSON() ([]byte, error) {
	ints := make([]uint16, len(b))
	for i, v := range b {
		ints[i] = uint16(v)
	}
	return json.Marshal(ints)
}

func (b *ByteArray) UnmarshalJSON(input []byte) error {
	var ints []uint16
	if err := json.Unmarshal(input, &ints); err != nil {
		return err
	}
	res := make([]byte, len(ints))
	for i, v := range ints {
		if v > 0xff {
			return fmt.Errorf("byte %d out of range: %d", i, v)
		}
		res[i] = byte(v)
	}
	*b = res
	return nil
}

// PaymasterParams tells the bootloader which paymaster pays for the transaction
// and with which flow-specific input.
type PaymasterParams struct {
	Paymaster      common.Address `json:"paymaster"`
	PaymasterInput ByteArray      `json:"paymasterInput"`
}

// Eip712Meta holds the zkSync-specific part of a transaction.
type Eip712Meta struct {
	GasPerPubdata   *hexutil.Big     `json:"gasPerPubdata,omitempty"`
	CustomSignature ByteArray        `json:"customSignature,omitempty"`
	PaymasterParams *PaymasterParams `json:"paymasterParams,omitempty"`
}

// NewEip712Meta returns the meta with the default gas per pubdata limit if gasPerPubdata is zero.
func NewEip712Meta(gasPerPubdata uint64, params *PaymasterParams) *Eip712Meta {
	if gasPerPubdata == 0 {
		gasPerPubdata = DefaultGasPerPubdataLimit
	}
	return &Eip712Meta{
		GasPerPubdata:   (*hexutil.Big)(new(big.Int).SetUint64(gasPerPubdata)),
		PaymasterParams: params,
	}
}

func (m *Eip712Meta) gasPerPubdata() *big.Int {
	if m == nil || m.GasPerPubdata == nil {
		return big.NewInt(DefaultGasPerPubdataLimit)
	}
	return m.GasPerPubdata.ToInt()
}

func (m *Eip712Meta) paymasterParams() *PaymasterParams {
	if m == nil {
		return nil
	}
	return m.PaymasterParams
}

// CallMsg is a call or gas estimation request with the eip712Meta attached.
type CallMsg struct {
	From  common.Address
	To    *common.Address
	Value *big.Int
	Data  []byte
	Meta  *Eip712Meta
}

func (m CallMsg) MarshalJSON() ([]byte, error) {
	arg := map[string]any{
		"from": m.From,
		"data": hexutil.Bytes(m.Data),
		"type": hexutil.Uint64(TxType),
	}
	if m.To != nil {
		arg["to"] = m.To
	}
	if m.Value != nil {
		arg["value"] = (*hexutil.Big)(m.Value)
	}
	if m.Meta != nil {
		arg["eip712Meta"] = m.Meta
	}
	return json.Marshal(arg)
}
