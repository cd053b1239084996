package rpc

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/NilFoundation/zkpaymaster/common/logging"
	"github.com/NilFoundation/zkpaymaster/internal/zksync"
	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/suite"
)

type request struct {
	Version string            `json:"jsonrpc"`
	Id      json.RawMessage   `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

type handlerFunc func(req request) (result any, rpcErr map[string]any, status int)

type RpcClientTestSuite struct {
	suite.Suite

	server  *httptest.Server
	client  *Client
	mu      sync.Mutex
	handler handlerFunc
	calls   map[string]int
	headers http.Header
}

func TestRpcClient(t *testing.T) {
	t.Parallel()

	suite.Run(t, new(RpcClientTestSuite))
}

func (s *RpcClientTestSuite) SetupSuite() {
	s.server = httptest.NewServer(http.HandlerFunc(s.serve))
}

func (s *RpcClientTestSuite) TearDownSuite() {
	s.server.Close()
}

func (s *RpcClientTestSuite) SetupTest() {
	s.mu.Lock()
	s.calls = make(map[string]int)
	s.handler = nil
	s.mu.Unlock()

	var err error
	s.client, err = NewClient(
		s.T().Context(),
		s.server.URL,
		logging.NewLogger("rpc-test"),
		WithHeaders(map[string]string{"User-Agent": "zkpaymaster/test"}),
		RPCRetryConfig(NewRetryConfig(3)),
	)
	s.Require().NoError(err)
}

func (s *RpcClientTestSuite) TearDownTest() {
	s.client.Close()
}

func (s *RpcClientTestSuite) setHandler(h handlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = h
}

func (s *RpcClientTestSuite) callCount(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

func (s *RpcClientTestSuite) serve(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.calls[req.Method]++
	s.headers = r.Header.Clone()
	handler := s.handler
	s.mu.Unlock()

	result, rpcErr, status := handler(req)
	if status != 0 && status != http.StatusOK {
		http.Error(w, "unavailable", status)
		return
	}

	resp := map[string]any{"jsonrpc": "2.0", "id": req.Id}
	if rpcErr != nil {
		resp["error"] = rpcErr
	} else {
		resp["result"] = result
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *RpcClientTestSuite) TestChainId() {
	s.setHandler(func(req request) (any, map[string]any, int) {
		s.Equal(Eth_chainId, req.Method)
		return "0x12c", nil, 0
	})

	chainId, err := s.client.ChainID(s.T().Context())
	s.Require().NoError(err)
	s.Equal(int64(300), chainId.Int64())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Equal("zkpaymaster/test", s.headers.Get("User-Agent"))
}

func (s *RpcClientTestSuite) TestBalanceAt() {
	addr := ethcommon.HexToAddress("0x1111111111111111111111111111111111111111")
	s.setHandler(func(req request) (any, map[string]any, int) {
		s.Equal(Eth_getBalance, req.Method)
		s.Require().Len(req.Params, 2)
		var got ethcommon.Address
		s.Require().NoError(json.Unmarshal(req.Params[0], &got))
		s.Equal(addr, got)
		return "0xde0b6b3a7640000", nil, 0
	})

	balance, err := s.client.BalanceAt(s.T().Context(), addr, nil)
	s.Require().NoError(err)
	s.Equal("1000000000000000000", balance.String())
}

func (s *RpcClientTestSuite) TestEstimateGasL2SendsEip712Meta() {
	paymaster := ethcommon.HexToAddress("0x2222222222222222222222222222222222222222")
	params, err := zksync.GetPaymasterParams(paymaster, zksync.GeneralPaymasterInput{})
	s.Require().NoError(err)

	s.setHandler(func(req request) (any, map[string]any, int) {
		s.Equal(Eth_estimateGas, req.Method)
		s.Require().Len(req.Params, 1)

		var arg struct {
			Type       string `json:"type"`
			Eip712Meta struct {
				GasPerPubdata   string `json:"gasPerPubdata"`
				PaymasterParams struct {
					Paymaster      ethcommon.Address `json:"paymaster"`
					PaymasterInput []int             `json:"paymasterInput"`
				} `json:"paymasterParams"`
			} `json:"eip712Meta"`
		}
		s.Require().NoError(json.Unmarshal(req.Params[0], &arg))
		s.Equal("0x71", arg.Type)
		s.Equal("0xc350", arg.Eip712Meta.GasPerPubdata)
		s.Equal(paymaster, arg.Eip712Meta.PaymasterParams.Paymaster)
		s.Len(arg.Eip712Meta.PaymasterParams.PaymasterInput, len(params.PaymasterInput))
		return "0x16e360", nil, 0
	})

	to := ethcommon.HexToAddress("0x3333333333333333333333333333333333333333")
	gas, err := s.client.EstimateGasL2(s.T().Context(), zksync.CallMsg{
		From: ethcommon.HexToAddress("0x4444444444444444444444444444444444444444"),
		To:   &to,
		Data: []byte{0x01},
		Meta: zksync.NewEip712Meta(0, params),
	})
	s.Require().NoError(err)
	s.Equal(uint64(1_500_000), gas)
}

func (s *RpcClientTestSuite) TestSendRawTransaction() {
	raw := []byte{zksync.TxType, 0xc0}
	hash := ethcommon.HexToHash("0xabcdef")
	s.setHandler(func(req request) (any, map[string]any, int) {
		s.Equal(Eth_sendRawTransaction, req.Method)
		var got hexutil.Bytes
		s.Require().NoError(json.Unmarshal(req.Params[0], &got))
		s.Equal(raw, []byte(got))
		return hash, nil, 0
	})

	got, err := s.client.SendRawTransaction(s.T().Context(), raw)
	s.Require().NoError(err)
	s.Equal(hash, got)
}

func (s *RpcClientTestSuite) TestSendRawTransactionIsNotRetried() {
	s.setHandler(func(req request) (any, map[string]any, int) {
		return nil, nil, http.StatusServiceUnavailable
	})

	_, err := s.client.SendRawTransaction(s.T().Context(), []byte{zksync.TxType})
	s.Require().Error(err)
	s.Equal(1, s.callCount(Eth_sendRawTransaction))
}

func (s *RpcClientTestSuite) TestReceiptNotFound() {
	s.setHandler(func(req request) (any, map[string]any, int) {
		return nil, nil, 0
	})

	_, err := s.client.TransactionReceipt(s.T().Context(), ethcommon.HexToHash("0x01"))
	s.Require().ErrorIs(err, ethereum.NotFound)
	s.Equal(1, s.callCount(Eth_getTransactionReceipt))
}

func (s *RpcClientTestSuite) TestTransientErrorsAreRetried() {
	attempts := 0
	s.setHandler(func(req request) (any, map[string]any, int) {
		attempts++
		if attempts < 3 {
			return nil, nil, http.StatusServiceUnavailable
		}
		return "0xee6b280", nil, 0
	})

	price, err := s.client.SuggestGasPrice(s.T().Context())
	s.Require().NoError(err)
	s.Equal("250000000", price.String())
	s.Equal(3, s.callCount(Eth_gasPrice))
}

func (s *RpcClientTestSuite) TestServerErrorsAreNotRetried() {
	s.setHandler(func(req request) (any, map[string]any, int) {
		return nil, map[string]any{"code": 3, "message": "execution reverted"}, 0
	})

	_, err := s.client.EstimateGasL2(s.T().Context(), zksync.CallMsg{})
	s.Require().Error(err)
	s.Contains(err.Error(), "execution reverted")

	var rpcErr gethrpc.Error
	s.Require().True(errors.As(err, &rpcErr))
	s.Equal(1, s.callCount(Eth_estimateGas))
}

func (s *RpcClientTestSuite) TestEmptyEndpoint() {
	_, err := NewClient(s.T().Context(), "", logging.Nop())
	s.Require().ErrorIs(err, ErrEmptyUrl)
}
