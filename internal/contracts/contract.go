package contracts

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	NameGreeter = "Greeter"

	MethodGreet       = "greet"
	MethodSetGreeting = "setGreeting"
)

var ErrArtifactNotFound = errors.New("artifact not found")

//go:embed artifacts/*.json
var embedded embed.FS

// Artifact is a compiled contract as produced by hardhat (zksolc or solc).
type Artifact struct {
	ContractName string
	SourceName   string
	Path         string
	Abi          *abi.ABI
}

type artifactFile struct {
	ContractName string          `json:"contractName"`
	SourceName   string          `json:"sourceName"`
	Abi          json.RawMessage `json:"abi"`
}

// ParseArtifact accepts a hardhat artifact ({"abi": [...]}) or a bare ABI array.
func ParseArtifact(data []byte) (*Artifact, error) {
	data = bytes.TrimSpace(data)
	abiData := data
	res := &Artifact{}

	if len(data) > 0 && data[0] == '{' {
		var file artifactFile
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse artifact: %w", err)
		}
		if len(file.Abi) == 0 {
			return nil, errors.New("artifact has no abi")
		}
		abiData = file.Abi
		res.ContractName = file.ContractName
		res.SourceName = file.SourceName
	}

	contractAbi, err := abi.JSON(bytes.NewReader(abiData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse abi: %w", err)
	}
	res.Abi = &contractAbi
	return res, nil
}

// LoadArtifact looks for <name>.json anywhere under artifactsPath,
// falling back to the artifacts embedded into the binary.
// A non-empty artifactsPath must exist.
func LoadArtifact(artifactsPath, name string) (*Artifact, error) {
	if artifactsPath != "" {
		if _, err := os.Stat(artifactsPath); err != nil {
			return nil, fmt.Errorf("artifacts path: %w", err)
		}
		path, err := findArtifact(artifactsPath, name)
		if err != nil && !errors.Is(err, ErrArtifactNotFound) {
			return nil, err
		}
		if path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
			}
			res, err := ParseArtifact(data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			res.Path = path
			return res, nil
		}
	}

	return EmbeddedArtifact(name)
}

func EmbeddedArtifact(name string) (*Artifact, error) {
	data, err := embedded.ReadFile("artifacts/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, name)
	}
	res, err := ParseArtifact(data)
	if err != nil {
		return nil, err
	}
	res.Path = "embedded:" + name
	return res, nil
}

// Hardhat puts debug files (*.dbg.json) next to artifacts; they have a different name, so they never match.
func findArtifact(root, name string) (string, error) {
	var found string
	target := name + ".json"
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == target {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to search artifacts in %s: %w", root, err)
	}
	if found == "" {
		return "", fmt.Errorf("%w: %s in %s", ErrArtifactNotFound, name, root)
	}
	return found, nil
}
