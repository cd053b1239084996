package greeter

import (
	"fmt"
	"os"

	"github.com/NilFoundation/zkpaymaster/cmd/zkpaymaster/internal/common"
	"github.com/NilFoundation/zkpaymaster/cmd/zkpaymaster/internal/config"
	"github.com/NilFoundation/zkpaymaster/internal/contracts"
	"github.com/NilFoundation/zkpaymaster/services/interact"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func SetGreetingCommand(cfg *interact.Config) *cobra.Command {
	var random bool

	cmd := &cobra.Command{
		Use:   "set-greeting [greeting]",
		Short: "Set the greeting with a transaction paid by the paymaster",
		Long:  "Sends setGreeting (new_greeting from the config by default) through the paymaster, waits for it and reads the greeting back",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, contract, err := setup(cfg)
			if err != nil {
				return err
			}

			key := cfg.PrivateKey
			if random {
				if key, err = crypto.GenerateKey(); err != nil {
					return err
				}
			} else if err := cfg.ValidateOperator(); err != nil {
				return config.MissingKeyError(err, logger)
			}
			from := crypto.PubkeyToAddress(key.PublicKey)
			greeting := greetingArg(cfg, args)

			overrides, err := service.BuildPaymasterOverrides(
				cmd.Context(), from, cfg.Paymaster(), contract, contracts.MethodSetGreeting, greeting)
			if err != nil {
				return err
			}
			hash, err := service.Transact(cmd.Context(), key, contract, overrides, contracts.MethodSetGreeting, greeting)
			if err != nil {
				return err
			}
			if _, err := service.WaitForReceipt(cmd.Context(), hash); err != nil {
				return err
			}

			if common.Quiet {
				fmt.Println(hash.Hex())
				return nil
			}
			printer := interact.NewPrinter(os.Stdout, color.NoColor)
			printer.WriteTx(hash)

			current, err := service.ReadString(cmd.Context(), contract, contracts.MethodGreet)
			if err != nil {
				return err
			}
			printer.NewGreeting(current)
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().BoolVar(&random, "random-signer", false, "sign with a fresh random key instead of the operator key")

	return cmd
}
