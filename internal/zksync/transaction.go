package zksync

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

var (
	ErrNotSigned       = errors.New("transaction is not signed")
	ErrInvalidTxType   = errors.New("invalid transaction type")
	ErrInvalidSigLen   = errors.New("invalid signature length")
	ErrMissingChainId  = errors.New("chain id is not set")
	ErrSenderMismatch  = errors.New("recovered sender does not match from")
	ErrEmptyCustomData = errors.New("custom signature must not be empty")
)

// Transaction712 is an EIP-712 (type 0x71) transaction.
// The sender signs the typed-data hash and the signature goes to Meta.CustomSignature.
type Transaction712 struct {
	Nonce     uint64
	GasTipCap *big.Int
	GasFeeCap *big.Int
	Gas       uint64
	To        *common.Address
	Value     *big.Int
	Data      []byte
	ChainID   *big.Int
	From      common.Address
	Meta      *Eip712Meta
}

var transactionTypes = apitypes.Types{
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
	},
	"Transaction": {
		{Name: "txType", Type: "uint256"},
		{Name: "from", Type: "uint256"},
		{Name: "to", Type: "uint256"},
		{Name: "gasLimit", Type: "uint256"},
		{Name: "gasPerPubdataByteLimit", Type: "uint256"},
		{Name: "maxFeePerGas", Type: "uint256"},
		{Name: "maxPriorityFeePerGas", Type: "uint256"},
		{Name: "paymaster", Type: "uint256"},
		{Name: "nonce", Type: "uint256"},
		{Name: "value", Type: "uint256"},
		{Name: "data", Type: "bytes"},
		{Name: "factoryDeps", Type: "bytes32[]"},
		{Name: "paymasterInput", Type: "bytes"},
	},
}

func bigOrZero(b *big.Int) *big.Int {
	if b == nil {
		return new(big.Int)
	}
	return b
}

func addressToBig(addr common.Address) *big.Int {
	return new(big.Int).SetBytes(addr.Bytes())
}

// TypedData returns the EIP-712 typed data the sender signs.
func (tx *Transaction712) TypedData() apitypes.TypedData {
	paymaster := new(big.Int)
	paymasterInput := []byte{}
	if params := tx.Meta.paymasterParams(); params != nil {
		paymaster = addressToBig(params.Paymaster)
		paymasterInput = nonNil(params.PaymasterInput)
	}
	to := new(big.Int)
	if tx.To != nil {
		to = addressToBig(*tx.To)
	}

	return apitypes.TypedData{
		Types:       transactionTypes,
		PrimaryType: "Transaction",
		Domain: apitypes.TypedDataDomain{
			Name:    EIP712DomainName,
			Version: EIP712DomainVersion,
			ChainId: (*math.HexOrDecimal256)(bigOrZero(tx.ChainID)),
		},
		Message: apitypes.TypedDataMessage{
			"txType":                 big.NewInt(TxType),
			"from":                   addressToBig(tx.From),
			"to":                     to,
			"gasLimit":               new(big.Int).SetUint64(tx.Gas),
			"gasPerPubdataByteLimit": tx.Meta.gasPerPubdata(),
			"maxFeePerGas":           bigOrZero(tx.GasFeeCap),
			"maxPriorityFeePerGas":   bigOrZero(tx.GasTipCap),
			"paymaster":              paymaster,
			"nonce":                  new(big.Int).SetUint64(tx.Nonce),
			"value":                  bigOrZero(tx.Value),
			"data":                   nonNil(tx.Data),
			"factoryDeps":            []any{},
			"paymasterInput":         paymasterInput,
		},
	}
}

// SigningHash is keccak256("\x19\x01" || domainSeparator || hashStruct(tx)).
func (tx *Transaction712) SigningHash() (common.Hash, error) {
	if tx.ChainID == nil {
		return common.Hash{}, ErrMissingChainId
	}
	hash, _, err := apitypes.TypedDataAndHash(tx.TypedData())
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to hash typed data: %w", err)
	}
	return common.BytesToHash(hash), nil
}

// Sign sets From to the key's address and stores the typed-data signature in Meta.CustomSignature.
func (tx *Transaction712) Sign(key *ecdsa.PrivateKey) error {
	tx.From = crypto.PubkeyToAddress(key.PublicKey)
	if tx.Meta == nil {
		tx.Meta = NewEip712Meta(0, nil)
	}

	hash, err := tx.SigningHash()
	if err != nil {
		return err
	}
	sig, err := crypto.Sign(hash.Bytes(), key)
	if err != nil {
		return fmt.Errorf("failed to sign transaction: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	tx.Meta.CustomSignature = sig
	return nil
}

// Sender recovers the signer of the custom signature and checks it against From.
func (tx *Transaction712) Sender() (common.Address, error) {
	if tx.Meta == nil || len(tx.Meta.CustomSignature) == 0 {
		return common.Address{}, ErrNotSigned
	}
	if len(tx.Meta.CustomSignature) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("%w: %d", ErrInvalidSigLen, len(tx.Meta.CustomSignature))
	}

	hash, err := tx.SigningHash()
	if err != nil {
		return common.Address{}, err
	}
	sig := common.CopyBytes(tx.Meta.CustomSignature)
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}
	pub, err := crypto.SigToPub(hash.Bytes(), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover sender: %w", err)
	}
	sender := crypto.PubkeyToAddress(*pub)
	if sender != tx.From {
		return sender, fmt.Errorf("%w: %s != %s", ErrSenderMismatch, sender, tx.From)
	}
	return sender, nil
}

// Hash is the transaction hash as computed by the node:
// keccak256(signingHash || keccak256(customSignature)).
func (tx *Transaction712) Hash() (common.Hash, error) {
	if tx.Meta == nil || len(tx.Meta.CustomSignature) == 0 {
		return common.Hash{}, ErrNotSigned
	}
	signingHash, err := tx.SigningHash()
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(signingHash.Bytes(), crypto.Keccak256(tx.Meta.CustomSignature)), nil
}

type rlpPaymasterParams struct {
	Paymaster      common.Address
	PaymasterInput []byte
}

// Field order of the serialized transaction. V, R, S are unused since
// the signature lives in CustomSignature; V carries the chain id.
type rlpTransaction712 struct {
	Nonce           uint64
	GasTipCap       *big.Int
	GasFeeCap       *big.Int
	Gas             uint64
	To              *common.Address `rlp:"nil"`
	Value           *big.Int
	Data            []byte
	V               *big.Int
	R               []byte
	S               []byte
	ChainID         *big.Int
	From            common.Address
	GasPerPubdata   *big.Int
	FactoryDeps     [][]byte
	CustomSignature []byte
	PaymasterParams *rlpPaymasterParams `rlp:"nil"`
}

// MarshalBinary returns 0x71 || rlp(fields), ready for eth_sendRawTransaction.
func (tx *Transaction712) MarshalBinary() ([]byte, error) {
	if tx.ChainID == nil {
		return nil, ErrMissingChainId
	}
	if tx.Meta == nil || len(tx.Meta.CustomSignature) == 0 {
		return nil, ErrNotSigned
	}

	enc := rlpTransaction712{
		Nonce:           tx.Nonce,
		GasTipCap:       bigOrZero(tx.GasTipCap),
		GasFeeCap:       bigOrZero(tx.GasFeeCap),
		Gas:             tx.Gas,
		To:              tx.To,
		Value:           bigOrZero(tx.Value),
		Data:            nonNil(tx.Data),
		V:               tx.ChainID,
		R:               []byte{},
		S:               []byte{},
		ChainID:         tx.ChainID,
		From:            tx.From,
		GasPerPubdata:   tx.Meta.gasPerPubdata(),
		FactoryDeps:     [][]byte{},
		CustomSignature: tx.Meta.CustomSignature,
	}
	if params := tx.Meta.PaymasterParams; params != nil {
		enc.PaymasterParams = &rlpPaymasterParams{
			Paymaster:      params.Paymaster,
			PaymasterInput: nonNil(params.PaymasterInput),
		}
	}

	payload, err := rlp.EncodeToBytes(&enc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transaction: %w", err)
	}
	return append([]byte{TxType}, payload...), nil
}

func (tx *Transaction712) UnmarshalBinary(data []byte) error {
	if len(data) == 0 || data[0] != TxType {
		return ErrInvalidTxType
	}

	var dec rlpTransaction712
	if err := rlp.DecodeBytes(data[1:], &dec); err != nil {
		return fmt.Errorf("failed to decode transaction: %w", err)
	}
	if len(dec.CustomSignature) == 0 {
		return ErrEmptyCustomData
	}

	*tx = Transaction712{
		Nonce:     dec.Nonce,
		GasTipCap: dec.GasTipCap,
		GasFeeCap: dec.GasFeeCap,
		Gas:       dec.Gas,
		To:        dec.To,
		Value:     dec.Value,
		Data:      dec.Data,
		ChainID:   dec.ChainID,
		From:      dec.From,
		Meta: &Eip712Meta{
			GasPerPubdata:   (*hexutil.Big)(dec.GasPerPubdata),
			CustomSignature: dec.CustomSignature,
		},
	}
	if dec.PaymasterParams != nil {
		tx.Meta.PaymasterParams = &PaymasterParams{
			Paymaster:      dec.PaymasterParams.Paymaster,
			PaymasterInput: dec.PaymasterParams.PaymasterInput,
		}
	}
	return nil
}
