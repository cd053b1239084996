package version

import (
	"errors"
	"regexp"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/NilFoundation/zkpaymaster/common"
)

type versionInfo struct {
	GitTag      string
	GitRevCount string
	GitCommit   string
}

var (
	// Binary-patched on package build to contain the real version,
	// so the commit hash is not stamped on every build.
	versionMagic          = "Zq7cJv1kPmD3nYtR9wLs2aXhB6eF0gUoK4iTz8Nb"
	versionInfoCache      versionInfo
	versionInfoCacheMutex sync.Mutex
)

const (
	unknownRevision string = "0"
	unknownVersion  string = "<unknown>"
)

func GetVersionInfo() versionInfo {
	versionInfoCacheMutex.Lock()
	defer versionInfoCacheMutex.Unlock()
	if versionInfoCache.GitRevCount == "" {
		re := regexp.MustCompile(`(\d+\.\d+\.\d+)-(\d+)-([a-f0-9]+)`)
		matches := re.FindStringSubmatch(versionMagic)

		if len(matches) == 0 {
			if _, gitCommit, err := ParseBuildInfo(); err == nil && gitCommit != "" {
				versionInfoCache = versionInfo{GitTag: "0.1.0", GitRevCount: "1", GitCommit: gitCommit}
			} else {
				versionInfoCache = versionInfo{GitTag: "0.1.0", GitRevCount: "1", GitCommit: unknownVersion}
			}
		} else {
			versionInfoCache = versionInfo{GitTag: matches[1], GitRevCount: matches[2], GitCommit: matches[3]}
		}
	}
	return versionInfoCache
}

func ParseBuildInfo() (string, string, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", "", errors.New("failed to read build info")
	}
	var gitHash string
	var time string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			gitHash = s.Value
		case "vcs.time":
			time = s.Value[:10]
		}
	}

	return time, gitHash, nil
}

func buildVersionString(tmpl, appTitle string) string {
	ver := GetVersionInfo().GitTag
	if ver == "" {
		ver = unknownVersion
	}

	// Tags are either plain ("0.1.0") or prefixed ("zkpaymaster-2025.04.01").
	parts := strings.Split(ver, "-")
	ver = parts[0]
	if strings.HasPrefix(ver, "zkpaymaster") && len(parts) > 1 {
		ver = parts[1]
	}

	return FormatVersion(tmpl, map[string]any{
		"Title":    appTitle,
		"Version":  ver,
		"OS":       runtime.GOOS,
		"Arch":     runtime.GOARCH,
		"Commit":   GetVersionInfo().GitCommit,
		"Revision": GetGitRevCount(),
	})
}

func BuildVersionString(appTitle string) string {
	return buildVersionString(versionTmpl, appTitle)
}

// BuildClientVersion is sent as the User-Agent of RPC requests.
func BuildClientVersion(appTitle string) string {
	return buildVersionString(clientVersionTmpl, appTitle)
}

func GetGitRevCount() string {
	if GetVersionInfo().GitRevCount == "" {
		return unknownRevision
	}
	return GetVersionInfo().GitRevCount
}

func FormatVersion(template string, templateArgs map[string]any) string {
	versionMsg, err := common.ParseTemplate(template, templateArgs)
	if err != nil {
		panic(err)
	}

	return versionMsg
}

var versionTmpl = `{{ .Title }}
 Version:	{{ .Version }}
 OS/Arch:	{{ .OS }}/{{ .Arch }}
 Git commit:	{{ .Commit }}
 Revision:	{{ .Revision }}`

var clientVersionTmpl = "{{ .Title }}/{{ .Version }}/{{ .OS }}-{{ .Arch }}/{{ .Commit }}/{{ .Revision }}"
