package config

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/NilFoundation/zkpaymaster/common/check"
	"github.com/NilFoundation/zkpaymaster/common/logging"
	"github.com/NilFoundation/zkpaymaster/internal/types"
	"github.com/NilFoundation/zkpaymaster/services/interact"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/go-viper/encoding/ini"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Section is the INI section (or the top-level YAML key) holding the options.
const Section = "zkpaymaster"

const (
	RPCEndpointField      = "rpc_endpoint"
	PrivateKeyField       = "private_key"
	ContractAddressField  = "contract_address"
	PaymasterAddressField = "paymaster_address"
	ContractNameField     = "contract_name"
	ArtifactsPathField    = "artifacts_path"
	FundAmountField       = "fund_amount"
	PriorityFeeField      = "max_priority_fee_per_gas"
	GasPerPubdataField    = "gas_per_pubdata"
	NewGreetingField      = "new_greeting"
	OperatorSignerField   = "use_operator_as_signer"
	RPCTimeoutField       = "rpc_timeout"
	RPCRetriesField       = "rpc_retries"
	ReceiptTimeoutField   = "receipt_timeout"
	ReceiptPollField      = "receipt_poll_interval"
)

// Every option can be set with ZKPAYMASTER_<OPTION>; these names are accepted as well and take precedence.
var envAliases = map[string]string{
	RPCEndpointField:      "ZKSYNC_RPC_URL",
	PrivateKeyField:       "WALLET_PRIVATE_KEY",
	ContractAddressField:  "CONTRACT_ADDRESS",
	PaymasterAddressField: "PAYMASTER_CONTRACT_ADDRESS",
}

var allFields = []string{
	RPCEndpointField,
	PrivateKeyField,
	ContractAddressField,
	PaymasterAddressField,
	ContractNameField,
	ArtifactsPathField,
	FundAmountField,
	PriorityFeeField,
	GasPerPubdataField,
	NewGreetingField,
	OperatorSignerField,
	RPCTimeoutField,
	RPCRetriesField,
	ReceiptTimeoutField,
	ReceiptPollField,
}

// Flags of the root command that override the options.
var flagFields = map[string]string{
	"rpc-endpoint": RPCEndpointField,
	"private-key":  PrivateKeyField,
	"contract":     ContractAddressField,
	"paymaster":    PaymasterAddressField,
	"artifacts":    ArtifactsPathField,
}

const InitConfigTemplate = `; Configuration of the zkpaymaster CLI
; Every option can also be set with the ZKPAYMASTER_<OPTION> environment variable.
[zkpaymaster]

; The RPC endpoint of the zkSync node (or ZKSYNC_RPC_URL)
; rpc_endpoint = "http://127.0.0.1:3050"

; The operator key funding the paymaster (or WALLET_PRIVATE_KEY)
; You can generate a new key with "zkpaymaster keygen".
; private_key = "WRITE_YOUR_PRIVATE_KEY_HERE"

; The deployed Greeter contract (or CONTRACT_ADDRESS)
; contract_address = "0xWRITE_YOUR_ADDRESS_HERE"

; The deployed paymaster (or PAYMASTER_CONTRACT_ADDRESS)
; paymaster_address = "0xWRITE_YOUR_ADDRESS_HERE"

; The contract artifact is looked up by name under artifacts_path,
; the embedded Greeter is used if nothing is found
; contract_name = "Greeter"
; artifacts_path = "./artifacts-zk"

; Amount sent to the paymaster on every run, 0 disables funding
; fund_amount = "0.5eth"

; max_priority_fee_per_gas = "1"
; gas_per_pubdata = 50000
; new_greeting = "Hello Aleph!"

; Sign the sponsored transaction with the operator key instead of a fresh random one
; use_operator_as_signer = false

; rpc_timeout = "30s"
; rpc_retries = 0
; receipt_timeout = "2m"
; receipt_poll_interval = "500ms"
`

var DefaultConfigPath string

func init() {
	homeDir, err := os.UserHomeDir()
	check.PanicIfErr(err)

	DefaultConfigPath = filepath.Join(homeDir, ".config/zkpaymaster/config.ini")
}

var v = newViper()

func newViper() *viper.Viper {
	registry := viper.NewCodecRegistry()
	check.PanicIfErr(registry.RegisterCodec("ini", ini.Codec{}))
	return viper.NewWithOptions(viper.WithCodecRegistry(registry))
}

func InitDefaultConfig(configPath string) (string, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	dirPath := filepath.Dir(configPath)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(InitConfigTemplate); err != nil {
		return "", fmt.Errorf("failed to write template to config file: %w", err)
	}
	return configPath, nil
}

// SetConfigFile sets the config file; files without a known extension are read as INI.
func SetConfigFile(cfgFile string) {
	switch strings.ToLower(filepath.Ext(cfgFile)) {
	case ".yaml", ".yml":
		v.SetConfigType("yaml")
	default:
		v.SetConfigType("ini")
	}
	v.SetConfigFile(cfgFile)
}

// LoadEnvFile loads variables from a dotenv file without overriding the ones already set.
// A missing file is not an error unless it was requested explicitly.
func LoadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func key(field string) string {
	return Section + "." + field
}

// BindEnv binds every option to its environment variables.
func BindEnv() error {
	for _, field := range allFields {
		names := []string{"ZKPAYMASTER_" + strings.ToUpper(field)}
		if alias, ok := envAliases[field]; ok {
			names = append([]string{alias}, names...)
		}
		if err := v.BindEnv(append([]string{key(field)}, names...)...); err != nil {
			return err
		}
	}
	return nil
}

// AddFlags adds the option flags to the set and binds them.
func AddFlags(fset *pflag.FlagSet) {
	fset.String("rpc-endpoint", "", "the RPC endpoint of the zkSync node")
	fset.String("private-key", "", "the operator private key (hex)")
	fset.String("contract", "", "the address of the Greeter contract")
	fset.String("paymaster", "", "the address of the paymaster contract")
	fset.String("artifacts", "", "the directory with contract artifacts")

	for name, field := range flagFields {
		check.PanicIfErr(v.BindPFlag(key(field), fset.Lookup(name)))
	}
}

func decodePrivateKey(f reflect.Type, t reflect.Type, data any) (any, error) {
	if f.Kind() == reflect.String && t == reflect.TypeOf(&ecdsa.PrivateKey{}) {
		s, _ := data.(string)
		s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
		if s == "" {
			return nil, nil
		}
		res, err := crypto.HexToECDSA(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", PrivateKeyField, err)
		}
		return res, nil
	}
	return data, nil
}

// decodeValue accepts both "0.5eth" and bare numbers. YAML integers are wei,
// YAML floats ("fund_amount: 0.5") are ether since wei has no fractions.
func decodeValue(f reflect.Type, t reflect.Type, data any) (any, error) {
	if t != reflect.TypeOf(types.Value{}) {
		return data, nil
	}
	switch f.Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return types.ParseValue(fmt.Sprint(data))
	case reflect.Float32, reflect.Float64:
		amount := reflect.ValueOf(data).Float()
		return types.ParseValue(strconv.FormatFloat(amount, 'f', -1, f.Bits()) + "eth")
	}
	return data, nil
}

func updateDecoderConfig(config *mapstructure.DecoderConfig) {
	config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		config.DecodeHook,
		decodeValue,
		mapstructure.TextUnmarshallerHookFunc(),
		// may yield nil, so it goes last
		decodePrivateKey,
	)
	config.WeaklyTypedInput = true
}

type configFile struct {
	Zkpaymaster *interact.Config `mapstructure:"zkpaymaster"`
}

// LoadConfig reads the config file if it exists and merges it with the environment and flags.
func LoadConfig(cfgFilePath string, logger logging.Logger) (*interact.Config, error) {
	err := v.ReadInConfig()
	switch {
	case errors.Is(err, fs.ErrNotExist) || errors.As(err, new(viper.ConfigFileNotFoundError)):
		logger.Debug().Msgf("Config file %s not found, using environment and flags", cfgFilePath)
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	res := configFile{Zkpaymaster: interact.DefaultConfig()}
	if err := v.Unmarshal(&res, updateDecoderConfig); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if res.Zkpaymaster == nil {
		res.Zkpaymaster = interact.DefaultConfig()
	}

	logger.Debug().Msg("Configuration loaded successfully")
	return res.Zkpaymaster, nil
}

var generateCommands = map[string]string{
	PrivateKeyField: "keygen",
}

var configErrors = map[error]string{
	interact.ErrMissingRpcEndpoint:      RPCEndpointField,
	interact.ErrMissingContractAddress:  ContractAddressField,
	interact.ErrMissingPaymasterAddress: PaymasterAddressField,
	interact.ErrMissingPrivateKey:       PrivateKeyField,
}

// MissingKeyError explains how to set the option a validation error is about.
func MissingKeyError(err error, logger logging.Logger) error {
	for target, field := range configErrors {
		if !errors.Is(err, target) {
			continue
		}
		logger.Info().Msgf("%s not specified in config.\nSet it in %s, with %s or via flags.",
			field, v.ConfigFileUsed(), envName(field))
		if cmd, ok := generateCommands[field]; ok {
			logger.Info().Msgf("You can also run `%s %s` to generate a new one.", os.Args[0], cmd)
		}
		return fmt.Errorf("%s not specified in config: %w", field, err)
	}
	return err
}

func envName(field string) string {
	if alias, ok := envAliases[field]; ok {
		return alias
	}
	return "ZKPAYMASTER_" + strings.ToUpper(field)
}
