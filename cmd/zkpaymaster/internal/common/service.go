package common

import (
	"github.com/NilFoundation/zkpaymaster/internal/contracts"
	"github.com/NilFoundation/zkpaymaster/services/interact"
	"github.com/jonboulle/clockwork"
)

// NewService validates the config with the check the command needs
// and builds a service over the shared RPC client.
func NewService(cfg *interact.Config, validate func() error) (*interact.Service, error) {
	if err := validate(); err != nil {
		return nil, err
	}
	return interact.NewService(GetRpcClient(), cfg, clockwork.NewRealClock()), nil
}

// LoadContract binds the configured contract with the ABI from its artifact.
func LoadContract(service *interact.Service, cfg *interact.Config) (*interact.Contract, error) {
	artifact, err := contracts.LoadArtifact(cfg.ArtifactsPath, cfg.ContractName)
	if err != nil {
		return nil, err
	}
	return service.NewContract(cfg.Contract(), artifact.Abi), nil
}
