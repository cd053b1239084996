package greeter

import (
	"fmt"
	"os"

	"github.com/NilFoundation/zkpaymaster/cmd/zkpaymaster/internal/common"
	"github.com/NilFoundation/zkpaymaster/cmd/zkpaymaster/internal/config"
	"github.com/NilFoundation/zkpaymaster/common/logging"
	"github.com/NilFoundation/zkpaymaster/internal/contracts"
	"github.com/NilFoundation/zkpaymaster/services/interact"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var logger = logging.NewLogger("greeterCommand")

func GreetCommand(cfg *interact.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "greet",
		Short: "Read the current greeting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, contract, err := setup(cfg)
			if err != nil {
				return err
			}
			greeting, err := service.ReadString(cmd.Context(), contract, contracts.MethodGreet)
			if err != nil {
				return err
			}

			if common.Quiet {
				fmt.Println(greeting)
				return nil
			}
			interact.NewPrinter(os.Stdout, color.NoColor).Greeting(greeting)
			return nil
		},
		SilenceUsage: true,
	}
}

func setup(cfg *interact.Config) (*interact.Service, *interact.Contract, error) {
	service, err := common.NewService(cfg, cfg.Validate)
	if err != nil {
		return nil, nil, config.MissingKeyError(err, logger)
	}
	contract, err := common.LoadContract(service, cfg)
	if err != nil {
		return nil, nil, err
	}
	return service, contract, nil
}

func greetingArg(cfg *interact.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.NewGreeting
}
