package paymaster

import (
	"fmt"
	"os"

	"github.com/NilFoundation/zkpaymaster/cmd/zkpaymaster/internal/common"
	"github.com/NilFoundation/zkpaymaster/cmd/zkpaymaster/internal/config"
	"github.com/NilFoundation/zkpaymaster/internal/types"
	"github.com/NilFoundation/zkpaymaster/services/interact"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func BalanceCommand(cfg *interact.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "balance [address...]",
		Short: "Get the balance of addresses",
		Long:  "Prints the balances of the given addresses, of the operator and the paymaster by default",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBalance(cmd, args, cfg)
		},
		SilenceUsage: true,
	}
}

type account struct {
	label   string
	address ethcommon.Address
}

func runBalance(cmd *cobra.Command, args []string, cfg *interact.Config) error {
	validate := cfg.ValidateEndpoint
	if len(args) == 0 {
		validate = cfg.ValidatePaymaster
	}
	service, err := common.NewService(cfg, validate)
	if err != nil {
		return config.MissingKeyError(err, logger)
	}

	var accounts []account
	for _, arg := range args {
		if !ethcommon.IsHexAddress(arg) {
			return fmt.Errorf("%w: %q", interact.ErrInvalidAddress, arg)
		}
		address := ethcommon.HexToAddress(arg)
		accounts = append(accounts, account{label: address.Hex(), address: address})
	}
	if len(accounts) == 0 {
		if cfg.PrivateKey != nil {
			accounts = append(accounts, account{
				label:   "Operator balance",
				address: crypto.PubkeyToAddress(cfg.PrivateKey.PublicKey),
			})
		}
		accounts = append(accounts, account{label: "Paymaster balance", address: cfg.Paymaster()})
	}

	addresses := make([]ethcommon.Address, len(accounts))
	for i, acc := range accounts {
		addresses[i] = acc.address
	}
	balances, err := service.GetBalances(cmd.Context(), addresses...)
	if err != nil {
		return err
	}

	printer := interact.NewPrinter(os.Stdout, color.NoColor)
	for i, acc := range accounts {
		if common.Quiet {
			fmt.Println(types.FormatEther(balances[i]))
			continue
		}
		printer.Balance(acc.label, balances[i])
	}
	return nil
}
