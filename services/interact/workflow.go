package interact

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"io"

	"github.com/NilFoundation/zkpaymaster/common/logging"
	"github.com/NilFoundation/zkpaymaster/internal/contracts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Workflow runs the whole paymaster interaction: fund the paymaster, read the greeting,
// rewrite it with a paymaster-sponsored transaction and read it back.
type Workflow struct {
	service *Service
	cfg     *Config
	clock   clockwork.Clock
	printer *Printer
	logger  logging.Logger

	newSignerKey func() (*ecdsa.PrivateKey, error)
}

func NewWorkflow(service *Service, cfg *Config, clock clockwork.Clock, printer *Printer) *Workflow {
	if printer == nil {
		printer = NewPrinter(io.Discard, true)
	}
	return &Workflow{
		service:      service,
		cfg:          cfg,
		clock:        clock,
		printer:      printer,
		logger:       logging.NewLogger("workflow"),
		newSignerKey: crypto.GenerateKey,
	}
}

// run is the state of a single Workflow.Run.
type run struct {
	report    *Report
	logger    logging.Logger
	contract  *Contract
	signerKey *ecdsa.PrivateKey
}

// Run executes the stages in order and stops at the first failure, which is returned as *StageError.
// The report is returned in both cases and holds everything gathered so far.
func (w *Workflow) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunId:         uuid.New(),
		FundingAmount: w.cfg.FundAmount,
		NewGreeting:   w.cfg.NewGreeting,
		Stage:         StageStart,
	}
	r := &run{
		report: report,
		logger: w.logger.With().Stringer(logging.FieldRunId, report.RunId).Logger(),
	}

	if err := w.prepare(r); err != nil {
		r.logger.Error().Err(err).Msg("Invalid configuration")
		return report, &StageError{Stage: StageStart, Err: err}
	}
	w.printer.Banner(report.Contract)

	stages := []struct {
		stage Stage
		do    func(context.Context, *run) error
	}{
		{StageFunded, w.fund},
		{StageBalancesRead, w.readBalancesBefore},
		{StageGreeted, w.greet},
		{StageOverridesBuilt, w.buildOverrides},
		{StageWritten, w.write},
		{StageConfirmed, w.confirm},
		{StageGreetedAgain, w.greetAgain},
		{StageBalancesReadAgain, w.readBalancesAfter},
	}
	for _, s := range stages {
		if err := w.enter(ctx, r, s.stage, s.do); err != nil {
			return report, err
		}
	}

	report.Stage = StageDone
	r.logger.Info().
		Stringer(logging.FieldStage, report.Stage).
		Stringer("paymasterSpent", report.PaymasterSpent()).
		Msg("Workflow finished")
	return report, nil
}

func (w *Workflow) enter(ctx context.Context, r *run, stage Stage, do func(context.Context, *run) error) error {
	if err := ctx.Err(); err != nil {
		return &StageError{Stage: stage, Err: err}
	}

	start := w.clock.Now()
	err := do(ctx, r)
	duration := w.clock.Since(start)
	r.report.Timings = append(r.report.Timings, StageTiming{Stage: stage, Duration: duration})

	if err != nil {
		r.logger.Error().Err(err).Stringer(logging.FieldStage, stage).Msg("Stage failed")
		return &StageError{Stage: stage, Err: err}
	}
	r.report.Stage = stage
	r.logger.Debug().
		Stringer(logging.FieldStage, stage).
		Dur(logging.FieldDuration, duration).
		Msg("Stage reached")
	return nil
}

// prepare runs before the first network call.
func (w *Workflow) prepare(r *run) error {
	if err := w.cfg.Validate(); err != nil {
		return err
	}
	if w.cfg.NeedsOperator() {
		if err := w.cfg.ValidateOperator(); err != nil {
			return err
		}
	}

	artifact, err := contracts.LoadArtifact(w.cfg.ArtifactsPath, w.cfg.ContractName)
	if err != nil {
		return err
	}
	r.logger.Debug().
		Str(logging.FieldContract, artifact.ContractName).
		Str("artifact", artifact.Path).
		Msg("Artifact loaded")

	r.report.Contract = w.cfg.Contract()
	r.report.Paymaster = w.cfg.Paymaster()
	r.contract = w.service.NewContract(r.report.Contract, artifact.Abi)

	if w.cfg.PrivateKey != nil {
		operator := crypto.PubkeyToAddress(w.cfg.PrivateKey.PublicKey)
		r.report.Operator = &operator
	}

	if w.cfg.UseOperatorAsSigner {
		r.signerKey = w.cfg.PrivateKey
	} else {
		r.signerKey, err = w.newSignerKey()
		if err != nil {
			return fmt.Errorf("failed to generate signer key: %w", err)
		}
	}
	r.report.Signer = crypto.PubkeyToAddress(r.signerKey.PublicKey)
	return nil
}

func (w *Workflow) fund(ctx context.Context, r *run) error {
	if w.cfg.FundAmount.IsZero() {
		r.report.FundingSkipped = true
		w.printer.FundingSkipped()
		return nil
	}

	var err error
	operator := *r.report.Operator
	if r.report.OperatorBalanceBeforeFunding, err = w.service.GetBalance(ctx, operator); err != nil {
		return err
	}
	if r.report.PaymasterBalanceBeforeFunding, err = w.service.GetBalance(ctx, r.report.Paymaster); err != nil {
		return err
	}

	hash, err := w.service.FundPaymaster(ctx, w.cfg.PrivateKey, r.report.Paymaster, w.cfg.FundAmount)
	if hash != (common.Hash{}) {
		r.report.FundingTxHash = &hash
	}
	if err != nil {
		return fmt.Errorf("failed to fund paymaster: %w", err)
	}
	w.printer.Funded(w.cfg.FundAmount, hash)

	r.report.OperatorBalanceAfterFunding, err = w.service.GetBalance(ctx, operator)
	return err
}

func (w *Workflow) readBalancesBefore(ctx context.Context, r *run) error {
	var err error
	if r.report.SignerBalanceBefore, err = w.service.GetBalance(ctx, r.report.Signer); err != nil {
		return err
	}
	if r.report.PaymasterBalanceBefore, err = w.service.GetBalance(ctx, r.report.Paymaster); err != nil {
		return err
	}
	if r.report.FundingTxHash != nil && !r.report.FundingCredited() {
		r.logger.Warn().
			Stringer("before", r.report.PaymasterBalanceBeforeFunding).
			Stringer("amount", r.report.FundingAmount).
			Stringer("after", r.report.PaymasterBalanceBefore).
			Msg("Paymaster balance does not match the funded amount")
	}
	w.printer.Balance("Wallet balance", r.report.SignerBalanceBefore)
	w.printer.Balance("Paymaster balance", r.report.PaymasterBalanceBefore)
	return nil
}

func (w *Workflow) greet(ctx context.Context, r *run) error {
	greeting, err := w.service.ReadString(ctx, r.contract, contracts.MethodGreet)
	if err != nil {
		return err
	}
	r.report.GreetingBefore = greeting
	w.printer.Greeting(greeting)
	return nil
}

func (w *Workflow) buildOverrides(ctx context.Context, r *run) error {
	overrides, err := w.service.BuildPaymasterOverrides(
		ctx, r.report.Signer, r.report.Paymaster, r.contract, contracts.MethodSetGreeting, w.cfg.NewGreeting)
	if err != nil {
		return err
	}
	r.report.Overrides = overrides
	return nil
}

func (w *Workflow) write(ctx context.Context, r *run) error {
	hash, err := w.service.Transact(
		ctx, r.signerKey, r.contract, r.report.Overrides, contracts.MethodSetGreeting, w.cfg.NewGreeting)
	if err != nil {
		return err
	}
	r.report.WriteTxHash = &hash
	w.printer.WriteTx(hash)
	return nil
}

func (w *Workflow) confirm(ctx context.Context, r *run) error {
	_, err := w.service.WaitForReceipt(ctx, *r.report.WriteTxHash)
	return err
}

func (w *Workflow) greetAgain(ctx context.Context, r *run) error {
	greeting, err := w.service.ReadString(ctx, r.contract, contracts.MethodGreet)
	if err != nil {
		return err
	}
	r.report.GreetingAfter = greeting
	w.printer.NewGreeting(greeting)
	return nil
}

func (w *Workflow) readBalancesAfter(ctx context.Context, r *run) error {
	var err error
	if r.report.SignerBalanceAfter, err = w.service.GetBalance(ctx, r.report.Signer); err != nil {
		return err
	}
	if r.report.PaymasterBalanceAfter, err = w.service.GetBalance(ctx, r.report.Paymaster); err != nil {
		return err
	}
	w.printer.Balance("Final wallet balance", r.report.SignerBalanceAfter)
	w.printer.Balance("Final paymaster balance", r.report.PaymasterBalanceAfter)
	return nil
}
