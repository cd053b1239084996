package common

import (
	"context"

	"github.com/NilFoundation/zkpaymaster/client/rpc"
	"github.com/NilFoundation/zkpaymaster/common/check"
	"github.com/NilFoundation/zkpaymaster/common/logging"
	"github.com/NilFoundation/zkpaymaster/common/version"
	"github.com/NilFoundation/zkpaymaster/services/interact"
)

const appTitle = "zkpaymaster"

var client *rpc.Client

// InitRpcClient connects to the endpoint from the config; an empty endpoint is left for validation to report.
func InitRpcClient(ctx context.Context, cfg *interact.Config, logger logging.Logger) error {
	if cfg.RPCEndpoint == "" {
		return nil
	}

	opts := []rpc.Option{
		rpc.WithHeaders(map[string]string{
			"User-Agent": version.BuildClientVersion(appTitle),
		}),
		rpc.WithRequestTimeout(cfg.RPCTimeout),
	}
	if cfg.RPCRetries > 0 {
		opts = append(opts, rpc.RPCRetryConfig(rpc.NewRetryConfig(cfg.RPCRetries)))
	}

	c, err := rpc.NewClient(ctx, cfg.RPCEndpoint, logger, opts...)
	if err != nil {
		return err
	}
	client = c
	return nil
}

func GetRpcClient() *rpc.Client {
	check.PanicIfNot(client != nil)
	return client
}

func CloseRpcClient() {
	if client != nil {
		client.Close()
		client = nil
	}
}
