package interact

import (
	"math/big"

	"github.com/NilFoundation/zkpaymaster/internal/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// Report is the outcome of a workflow run, filled in as stages complete.
type Report struct {
	RunId     uuid.UUID       `json:"runId"`
	Contract  common.Address  `json:"contract"`
	Paymaster common.Address  `json:"paymaster"`
	Operator  *common.Address `json:"operator,omitempty"`
	Signer    common.Address  `json:"signer"`

	FundingAmount  types.Value  `json:"fundingAmount"`
	FundingSkipped bool         `json:"fundingSkipped"`
	FundingTxHash  *common.Hash `json:"fundingTxHash,omitempty"`

	OperatorBalanceBeforeFunding  *big.Int `json:"operatorBalanceBeforeFunding,omitempty"`
	OperatorBalanceAfterFunding   *big.Int `json:"operatorBalanceAfterFunding,omitempty"`
	PaymasterBalanceBeforeFunding *big.Int `json:"paymasterBalanceBeforeFunding,omitempty"`

	SignerBalanceBefore    *big.Int `json:"signerBalanceBefore,omitempty"`
	PaymasterBalanceBefore *big.Int `json:"paymasterBalanceBefore,omitempty"`
	SignerBalanceAfter     *big.Int `json:"signerBalanceAfter,omitempty"`
	PaymasterBalanceAfter  *big.Int `json:"paymasterBalanceAfter,omitempty"`

	GreetingBefore string       `json:"greetingBefore"`
	NewGreeting    string       `json:"newGreeting"`
	GreetingAfter  string       `json:"greetingAfter"`
	Overrides      *Overrides   `json:"overrides,omitempty"`
	WriteTxHash    *common.Hash `json:"writeTxHash,omitempty"`

	// Stage is the last stage reached.
	Stage   Stage         `json:"stage"`
	Timings []StageTiming `json:"timings"`
}

// PaymasterSpent is how much the paymaster paid for the write, if known.
// Nil when the balance grew in between, e.g. someone else funded it.
func (r *Report) PaymasterSpent() *big.Int {
	before, ok := toValue(r.PaymasterBalanceBefore)
	if !ok {
		return nil
	}
	after, ok := toValue(r.PaymasterBalanceAfter)
	if !ok || before.Cmp(after) < 0 {
		return nil
	}
	return before.Sub(after).ToBig()
}

// FundingCredited reports whether the paymaster balance read after funding
// is exactly the balance before funding plus the amount sent.
func (r *Report) FundingCredited() bool {
	before, ok := toValue(r.PaymasterBalanceBeforeFunding)
	if !ok {
		return false
	}
	after, ok := toValue(r.PaymasterBalanceBefore)
	if !ok {
		return false
	}
	return before.Add(r.FundingAmount).Eq(after)
}

func toValue(b *big.Int) (types.Value, bool) {
	if b == nil {
		return types.Value{}, false
	}
	v, overflow := types.NewValueFromBig(b)
	return v, !overflow
}
