package interact

import (
	"fmt"
	"io"
	"os"

	"github.com/NilFoundation/zkpaymaster/cmd/zkpaymaster/internal/common"
	"github.com/NilFoundation/zkpaymaster/cmd/zkpaymaster/internal/config"
	"github.com/NilFoundation/zkpaymaster/common/logging"
	"github.com/NilFoundation/zkpaymaster/internal/types"
	"github.com/NilFoundation/zkpaymaster/services/interact"
	"github.com/fatih/color"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

var logger = logging.NewLogger("interactCommand")

type params struct {
	fundAmount     types.Value
	newGreeting    string
	operatorSigner bool
	json           bool
	timings        bool
}

func GetCommand(cfg *interact.Config) *cobra.Command {
	p := &params{}

	cmd := &cobra.Command{
		Use:   "interact",
		Short: "Fund the paymaster and rewrite the greeting with a sponsored transaction",
		Long: "Funds the paymaster from the operator wallet, reads the current greeting, " +
			"sets a new one with a transaction paid by the paymaster and reads it back",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteract(cmd, cfg, p)
		},
		SilenceUsage: true,
	}

	cmd.Flags().Var(&p.fundAmount, "fund-amount", "amount sent to the paymaster before the write, 0 skips funding (e.g. 0.5eth)")
	cmd.Flags().StringVar(&p.newGreeting, "new-greeting", interact.DefaultNewGreeting, "the greeting to set")
	cmd.Flags().BoolVar(&p.operatorSigner, "operator-signer", false, "sign the sponsored transaction with the operator key")
	cmd.Flags().BoolVar(&p.json, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&p.timings, "timings", false, "print the duration of every stage")

	return cmd
}

func runInteract(cmd *cobra.Command, base *interact.Config, p *params) error {
	cfg := *base
	if cmd.Flags().Changed("fund-amount") {
		cfg.FundAmount = p.fundAmount
	}
	if cmd.Flags().Changed("new-greeting") {
		cfg.NewGreeting = p.newGreeting
	}
	if cmd.Flags().Changed("operator-signer") {
		cfg.UseOperatorAsSigner = p.operatorSigner
	}

	service, err := common.NewService(&cfg, cfg.Validate)
	if err != nil {
		return config.MissingKeyError(err, logger)
	}

	var out io.Writer = os.Stdout
	if p.json || common.Quiet {
		out = io.Discard
	}
	printer := interact.NewPrinter(out, color.NoColor)

	clock := clockwork.NewRealClock()
	report, err := interact.NewWorkflow(service, &cfg, clock, printer).Run(cmd.Context())

	switch {
	case p.json:
		if jsonErr := interact.NewPrinter(os.Stdout, true).JSON(report); jsonErr != nil {
			return jsonErr
		}
	case common.Quiet:
		if report.WriteTxHash != nil {
			fmt.Println(report.WriteTxHash.Hex())
		}
	case p.timings:
		printer.Timings(report.Timings)
	}
	if err != nil {
		return config.MissingKeyError(err, logger)
	}
	return nil
}
