package paymaster

import (
	"fmt"
	"os"

	"github.com/NilFoundation/zkpaymaster/cmd/zkpaymaster/internal/common"
	"github.com/NilFoundation/zkpaymaster/cmd/zkpaymaster/internal/config"
	"github.com/NilFoundation/zkpaymaster/common/logging"
	"github.com/NilFoundation/zkpaymaster/internal/types"
	"github.com/NilFoundation/zkpaymaster/services/interact"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var logger = logging.NewLogger("paymasterCommand")

func FundCommand(cfg *interact.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "fund [amount]",
		Short: "Send native currency from the operator wallet to the paymaster",
		Long:  "Sends the amount (fund_amount from the config by default) to the paymaster and waits for the receipt",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFund(cmd, args, cfg)
		},
		SilenceUsage: true,
	}
}

func runFund(cmd *cobra.Command, args []string, cfg *interact.Config) error {
	amount := cfg.FundAmount
	if len(args) > 0 {
		var err error
		if amount, err = types.ParseValue(args[0]); err != nil {
			return err
		}
	}
	if amount.IsZero() {
		return fmt.Errorf("%w: nothing to send", types.ErrInvalidValueStr)
	}

	service, err := common.NewService(cfg, cfg.ValidateFunding)
	if err != nil {
		return config.MissingKeyError(err, logger)
	}

	hash, err := service.FundPaymaster(cmd.Context(), cfg.PrivateKey, cfg.Paymaster(), amount)
	if err != nil {
		return err
	}

	if common.Quiet {
		fmt.Println(hash.Hex())
		return nil
	}
	interact.NewPrinter(os.Stdout, color.NoColor).Funded(amount, hash)
	return nil
}
