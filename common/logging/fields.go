package logging

const (
	// FieldError can be used instead of Err(err) if you have only the error message string.
	FieldError = "err"

	FieldComponent = "component"

	FieldDuration = "duration"
	FieldUrl      = "url"
	FieldReqId    = "reqId"

	FieldRpcMethod = "rpcMethod"
	FieldRpcParams = "rpcParams"
	FieldRpcResult = "rpcResult"

	FieldTransactionHash  = "txnHash"
	FieldTransactionNonce = "txnNonce"
	FieldTransactionFrom  = "txnFrom"
	FieldTransactionTo    = "txnTo"
	FieldTransactionValue = "txnValue"

	FieldAddress   = "address"
	FieldBalance   = "balance"
	FieldChainId   = "chainId"
	FieldPaymaster = "paymaster"
	FieldGasLimit  = "gasLimit"
	FieldGasPrice  = "gasPrice"

	FieldBlockHash   = "blockHash"
	FieldBlockNumber = "blockNumber"

	FieldRunId    = "runId"
	FieldStage    = "stage"
	FieldContract = "contract"
	FieldMethod   = "method"
)
