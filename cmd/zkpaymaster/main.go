package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/NilFoundation/zkpaymaster/cmd/zkpaymaster/internal/common"
	"github.com/NilFoundation/zkpaymaster/cmd/zkpaymaster/internal/config"
	"github.com/NilFoundation/zkpaymaster/cmd/zkpaymaster/internal/greeter"
	"github.com/NilFoundation/zkpaymaster/cmd/zkpaymaster/internal/interact"
	"github.com/NilFoundation/zkpaymaster/cmd/zkpaymaster/internal/keygen"
	"github.com/NilFoundation/zkpaymaster/cmd/zkpaymaster/internal/paymaster"
	"github.com/NilFoundation/zkpaymaster/common/logging"
	"github.com/NilFoundation/zkpaymaster/internal/cobrax"
	interactservice "github.com/NilFoundation/zkpaymaster/services/interact"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultEnvFile = ".env"

type RootCommand struct {
	baseCmd  *cobra.Command
	config   *interactservice.Config
	cfgFile  string
	envFile  string
	logLevel string
	verbose  bool
}

var logger = logging.NewLogger("root")

var noConfigCmd = map[string]struct{}{
	"config":           {},
	"help":             {},
	"keygen":           {},
	"completion":       {},
	"__complete":       {},
	"__completeNoDesc": {},
	"version":          {},
}

func main() {
	var rootCmd *RootCommand

	rootCmd = &RootCommand{
		config: interactservice.DefaultConfig(),
		baseCmd: &cobra.Command{
			Use:   "zkpaymaster",
			Short: "The CLI tool for interacting with a contract through a zkSync paymaster",
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				if !rootCmd.verbose {
					zerolog.SetGlobalLevel(zerolog.Disabled)
				} else if err := logging.TrySetupGlobalLevel(rootCmd.logLevel); err != nil {
					return err
				}
				logging.ApplyComponentsFilterEnv()

				if err := config.LoadEnvFile(rootCmd.envFile, cmd.Flags().Changed("env-file")); err != nil {
					return err
				}
				if err := config.BindEnv(); err != nil {
					return err
				}
				config.SetConfigFile(rootCmd.cfgFile)

				// Traverse up to find the top-level command
				for cmd.HasParent() && cmd.Parent() != rootCmd.baseCmd {
					cmd = cmd.Parent()
				}

				if _, withoutConfig := noConfigCmd[cmd.Name()]; withoutConfig {
					return nil
				}

				cfg, err := config.LoadConfig(rootCmd.cfgFile, logger)
				if err != nil {
					return err
				}
				*rootCmd.config = *cfg
				return common.InitRpcClient(cmd.Context(), cfg, logger)
			},
			SilenceUsage:  true,
			SilenceErrors: true,
		},
	}

	cobrax.AddConfigFlag(rootCmd.baseCmd.PersistentFlags(), &rootCmd.cfgFile, config.DefaultConfigPath)
	cobrax.AddLogLevelFlag(rootCmd.baseCmd.PersistentFlags(), &rootCmd.logLevel)
	rootCmd.baseCmd.PersistentFlags().StringVar(&rootCmd.envFile, "env-file", defaultEnvFile, "The dotenv file to load variables from")
	rootCmd.baseCmd.PersistentFlags().BoolVarP(
		&common.Quiet,
		"quiet",
		"q",
		false,
		"Quiet mode (print only the result and exit)",
	)
	rootCmd.baseCmd.PersistentFlags().BoolVarP(
		&rootCmd.verbose,
		"verbose",
		"v",
		false,
		"Verbose mode (print logs)",
	)
	config.AddFlags(rootCmd.baseCmd.PersistentFlags())

	rootCmd.registerSubCommands()
	rootCmd.Execute()
}

// registerSubCommands adds all subcommands to the root command
func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		interact.GetCommand(rc.config),
		paymaster.FundCommand(rc.config),
		paymaster.BalanceCommand(rc.config),
		greeter.GreetCommand(rc.config),
		greeter.EstimateCommand(rc.config),
		greeter.SetGreetingCommand(rc.config),
		keygen.GetCommand(),
		config.GetCommand(&rc.cfgFile),
		cobrax.VersionCmd("zkpaymaster"),
	)
}

// Execute runs the root command and handles any errors
func (rc *RootCommand) Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rc.baseCmd.ExecuteContext(ctx)
	common.CloseRpcClient()
	stop()

	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		os.Exit(1)
	}
}
