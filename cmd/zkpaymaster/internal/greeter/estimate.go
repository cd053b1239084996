package greeter

import (
	"os"

	"github.com/NilFoundation/zkpaymaster/cmd/zkpaymaster/internal/common"
	"github.com/NilFoundation/zkpaymaster/internal/contracts"
	"github.com/NilFoundation/zkpaymaster/services/interact"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func EstimateCommand(cfg *interact.Config) *cobra.Command {
	var asJson bool

	cmd := &cobra.Command{
		Use:   "estimate [greeting]",
		Short: "Build the paymaster overrides for setting a greeting without sending it",
		Long: "Estimates setGreeting along the paymaster path and prints the fee overrides. " +
			"The operator is the sender if its key is set, a random account otherwise",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, contract, err := setup(cfg)
			if err != nil {
				return err
			}

			key := cfg.PrivateKey
			if key == nil {
				if key, err = crypto.GenerateKey(); err != nil {
					return err
				}
			}

			overrides, err := service.BuildPaymasterOverrides(
				cmd.Context(),
				crypto.PubkeyToAddress(key.PublicKey),
				cfg.Paymaster(),
				contract,
				contracts.MethodSetGreeting,
				greetingArg(cfg, args),
			)
			if err != nil {
				return err
			}

			if asJson || common.Quiet {
				return interact.NewPrinter(os.Stdout, true).JSON(overrides)
			}
			interact.NewPrinter(os.Stdout, color.NoColor).Overrides(overrides)
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().BoolVar(&asJson, "json", false, "print the overrides as JSON")

	return cmd
}
