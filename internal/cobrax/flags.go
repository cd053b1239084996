package cobrax

import (
	"github.com/spf13/pflag"
)

func AddLogLevelFlag(fset *pflag.FlagSet, dst *string) {
	AddCustomLogLevelFlag(fset, "log-level", "l", dst)
}

func AddCustomLogLevelFlag(fset *pflag.FlagSet, name, short string, dst *string) {
	if *dst == "" {
		*dst = "info"
	}
	fset.StringVarP(dst, name, short, *dst, "log level: trace|debug|info|warn|error|fatal|panic")
}

// AddConfigFlag adds a flag to the flag set to specify a config file.
func AddConfigFlag(fset *pflag.FlagSet, dst *string, defaultPath string) {
	fset.StringVarP(dst, "config", "c", defaultPath, "path to the config file (.yaml or .ini)")
}
