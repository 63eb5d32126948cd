package oracle

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Event signatures matching the fixed-offset layouts internal/ethevents
// decodes (§4.2). Topic0 for each is the keccak256 of the signature string,
// the same way ethereum_event_watcher.rs resolves its get_logs topic filter
// from event_signatures.
const (
	valsetUpdatedSig           = "ValsetUpdated(uint256,uint256,uint256,string,string,address[],uint256[])"
	transactionBatchExecutedSig = "TransactionBatchExecuted(uint256,address,uint256)"
	sendToCosmosSig            = "SendToCosmos(address,address,uint256,uint256,uint256,string)"
	erc20DeployedSig           = "Erc20Deployed(address,uint256,uint256,uint256,uint8,uint256,string,string,string)"
	logicCallExecutedSig       = "LogicCallExecuted(bytes32,uint256,uint256,uint256)"
)

var (
	topicValsetUpdated           = crypto.Keccak256Hash([]byte(valsetUpdatedSig))
	topicTransactionBatchExecuted = crypto.Keccak256Hash([]byte(transactionBatchExecutedSig))
	topicSendToCosmos            = crypto.Keccak256Hash([]byte(sendToCosmosSig))
	topicErc20Deployed           = crypto.Keccak256Hash([]byte(erc20DeployedSig))
	topicLogicCallExecuted       = crypto.Keccak256Hash([]byte(logicCallExecutedSig))
)

// allTopics is the topic0 set the oracle loop filters for in one eth_getLogs
// call per poll, one OR-group per event kind (bridge contracts emit all five
// kinds from the same address).
func allTopics() []common.Hash {
	return []common.Hash{
		topicValsetUpdated,
		topicTransactionBatchExecuted,
		topicSendToCosmos,
		topicErc20Deployed,
		topicLogicCallExecuted,
	}
}
