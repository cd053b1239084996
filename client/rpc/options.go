package rpc

import (
	"time"

	"github.com/NilFoundation/zkpaymaster/common"
)

const DefaultRequestTimeout = 30 * time.Second

type config struct {
	retry   *common.RetryConfig
	timeout time.Duration
	headers map[string]string
}

type Option func(*config)

func RPCRetryConfig(rcfg *common.RetryConfig) Option {
	return func(cfg *config) {
		cfg.retry = rcfg
	}
}

// WithRequestTimeout bounds every single request; zero disables the bound.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(cfg *config) {
		cfg.timeout = timeout
	}
}

func WithHeaders(headers map[string]string) Option {
	return func(cfg *config) {
		cfg.headers = headers
	}
}

// NewRetryConfig retries idempotent requests up to the given number of times
// with exponential backoff. Errors returned by the node itself are not retried.
func NewRetryConfig(retries uint32) *common.RetryConfig {
	return &common.RetryConfig{
		ShouldRetry: common.ComposeRetryPolicies(
			common.LimitRetries(retries+1),
			common.DoNotRetryIf(errNotRetryable...),
			doNotRetryServerErrors,
		),
		NextDelay: common.DelayExponential(100*time.Millisecond, 5*time.Second),
	}
}
