package keygen

import (
	"encoding/hex"
	"fmt"

	"github.com/NilFoundation/zkpaymaster/cmd/zkpaymaster/internal/common"
	"github.com/NilFoundation/zkpaymaster/common/logging"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
)

var logger = logging.NewLogger("keygenCommand")

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := crypto.GenerateKey()
			if err != nil {
				return err
			}
			privateKey := hex.EncodeToString(crypto.FromECDSA(key))
			address := crypto.PubkeyToAddress(key.PublicKey)
			logger.Debug().Stringer(logging.FieldAddress, address).Msg("Key generated")

			if common.Quiet {
				fmt.Println(privateKey)
				return nil
			}
			fmt.Printf("Private key: %s\n", privateKey)
			fmt.Printf("Address: %s\n", address.Hex())
			return nil
		},
		SilenceUsage: true,
	}
}
