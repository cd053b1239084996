package config

import (
	"fmt"

	"github.com/NilFoundation/zkpaymaster/common/logging"
	"github.com/NilFoundation/zkpaymaster/internal/cobrax"
	"github.com/NilFoundation/zkpaymaster/services/interact"
	"github.com/spf13/cobra"
)

var logger = logging.NewLogger("configCommand")

const redacted = "<redacted>"

// configView is the YAML form of interact.Config that LoadConfig reads back.
type configView struct {
	RPCEndpoint string `yaml:"rpc_endpoint,omitempty"`

	ContractAddress  string `yaml:"contract_address,omitempty"`
	PaymasterAddress string `yaml:"paymaster_address,omitempty"`
	ContractName     string `yaml:"contract_name"`
	ArtifactsPath    string `yaml:"artifacts_path,omitempty"`

	FundAmount           string `yaml:"fund_amount"`
	MaxPriorityFeePerGas string `yaml:"max_priority_fee_per_gas"`
	GasPerPubdata        uint64 `yaml:"gas_per_pubdata"`
	NewGreeting          string `yaml:"new_greeting"`
	UseOperatorAsSigner  bool   `yaml:"use_operator_as_signer"`

	RPCTimeout          string `yaml:"rpc_timeout"`
	RPCRetries          uint32 `yaml:"rpc_retries"`
	ReceiptTimeout      string `yaml:"receipt_timeout"`
	ReceiptPollInterval string `yaml:"receipt_poll_interval"`
}

// renderConfig dumps the config under the section key. The private key is never rendered.
func renderConfig(cfg *interact.Config) (string, error) {
	view := configView{
		RPCEndpoint:          cfg.RPCEndpoint,
		ContractAddress:      cfg.ContractAddress,
		PaymasterAddress:     cfg.PaymasterAddress,
		ContractName:         cfg.ContractName,
		ArtifactsPath:        cfg.ArtifactsPath,
		FundAmount:           cfg.FundAmount.String(),
		MaxPriorityFeePerGas: cfg.MaxPriorityFeePerGas.String(),
		GasPerPubdata:        cfg.GasPerPubdata,
		NewGreeting:          cfg.NewGreeting,
		UseOperatorAsSigner:  cfg.UseOperatorAsSigner,
		RPCTimeout:           cfg.RPCTimeout.String(),
		RPCRetries:           cfg.RPCRetries,
		ReceiptTimeout:       cfg.ReceiptTimeout.String(),
		ReceiptPollInterval:  cfg.ReceiptPollInterval.String(),
	}
	return cobrax.DumpConfig(map[string]configView{Section: view})
}

func GetCommand(configPath *string) *cobra.Command {
	configCmd := &cobra.Command{
		Use:          "config",
		Short:        "Manage the zkpaymaster config",
		SilenceUsage: true,
	}

	initCmd := &cobra.Command{
		Use:          "init",
		Short:        "Initialize the config file",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := InitDefaultConfig(*configPath)
			if err != nil {
				logger.Error().Err(err).Msg("Failed to create the config file")
				return err
			}

			logger.Info().Msgf("The config file has been initialized successfully: %s", path)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:          "show",
		Short:        "Show the effective configuration",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(*configPath, logger)
			if err != nil {
				return err
			}
			dump, err := renderConfig(cfg)
			if err != nil {
				return err
			}

			if file := v.ConfigFileUsed(); file != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", file)
			}
			fmt.Fprint(cmd.OutOrStdout(), dump)
			if cfg.PrivateKey != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "# %s: %s\n", PrivateKeyField, redacted)
			}
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:          "path",
		Short:        "Print the path of the config file",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), *configPath)
		},
	}

	configCmd.AddCommand(initCmd, showCmd, pathCmd)

	return configCmd
}
