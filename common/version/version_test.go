package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildVersionString(t *testing.T) {
	t.Parallel()

	s := BuildVersionString("zkpaymaster")
	require.True(t, strings.HasPrefix(s, "zkpaymaster\n"))
	require.Contains(t, s, "OS/Arch:\t"+runtime.GOOS+"/"+runtime.GOARCH)
	require.Contains(t, s, "Revision:\t"+GetGitRevCount())
}

func TestBuildClientVersion(t *testing.T) {
	t.Parallel()

	s := BuildClientVersion("zkpaymaster")
	parts := strings.Split(s, "/")
	require.Len(t, parts, 5)
	require.Equal(t, "zkpaymaster", parts[0])
	require.Equal(t, runtime.GOOS+"-"+runtime.GOARCH, parts[2])
}
