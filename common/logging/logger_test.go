package logging

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Parallel()

	require.NoError(t, TrySetupGlobalLevel("debug"))

	log1Buf := new(bytes.Buffer)
	log2Buf := new(bytes.Buffer)
	log3Buf := new(bytes.Buffer)

	log1 := NewLoggerWithWriter("log1", log1Buf)
	log2 := NewLoggerWithWriter("log2", log2Buf)
	log3 := NewLoggerWithWriter("log3", log3Buf)

	msgIndex := 0
	emitLogs := func() {
		log1Buf.Reset()
		log2Buf.Reset()
		log3Buf.Reset()
		msgIndex++
		log1.Warn().Msgf("log1 message %d", msgIndex)
		log2.Warn().Msgf("log2 message %d", msgIndex)
		log3.Warn().Msgf("log3 message %d", msgIndex)
	}

	ApplyComponentsFilter("-all")
	emitLogs()
	require.Equal(t, 0, log1Buf.Len())
	require.Equal(t, 0, log2Buf.Len())
	require.Equal(t, 0, log3Buf.Len())

	ApplyComponentsFilter("all:-log1")
	emitLogs()
	require.Equal(t, 0, log1Buf.Len())
	require.Contains(t, log2Buf.String(), fmt.Sprintf("log2 message %d", msgIndex))
	require.Contains(t, log3Buf.String(), fmt.Sprintf("log3 message %d", msgIndex))

	ApplyComponentsFilter("-all:-log3:all")
	emitLogs()
	require.Contains(t, log1Buf.String(), fmt.Sprintf("log1 message %d", msgIndex))
	require.Contains(t, log2Buf.String(), fmt.Sprintf("log2 message %d", msgIndex))
	require.Contains(t, log3Buf.String(), fmt.Sprintf("log3 message %d", msgIndex))

	logBuf := new(bytes.Buffer)
	ApplyComponentsFilter("-rpc")
	rpcLog := NewLoggerWithWriter("rpc", logBuf)
	rpcLog.Warn().Str(FieldRpcMethod, "eth_chainId").Msg("hidden")
	require.Equal(t, 0, logBuf.Len())

	ApplyComponentsFilter("rpc")
	rpcLog.Warn().Str(FieldRpcMethod, "eth_chainId").Msg("shown")
	require.Contains(t, logBuf.String(), `"rpcMethod":"eth_chainId"`)
	require.Contains(t, logBuf.String(), `"component":"rpc"`)
}
