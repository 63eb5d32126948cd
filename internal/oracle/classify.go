package oracle

import (
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/althea-net/gravity-orchestrator/internal/ethevents"
)

// classify parses each log by its topic0 into internal/ethevents's typed
// structs. A log that fails to parse is dropped with a warning (§7
// Validation failures never stop the loop) rather than aborting the whole
// iteration.
func (l *Loop) classify(logs []gethtypes.Log) ethevents.AllEvents {
	var all ethevents.AllEvents

	for i := range logs {
		logEntry := &logs[i]
		if len(logEntry.Topics) == 0 {
			continue
		}

		switch logEntry.Topics[0] {
		case topicValsetUpdated:
			e, err := ethevents.ValsetUpdatedFromLog(logEntry)
			if err != nil {
				l.log.Warn().Err(err).Msg("dropping malformed ValsetUpdated log")
				continue
			}
			all.ValsetUpdates = append(all.ValsetUpdates, e)
		case topicTransactionBatchExecuted:
			e, err := ethevents.TransactionBatchExecutedFromLog(logEntry)
			if err != nil {
				l.log.Warn().Err(err).Msg("dropping malformed TransactionBatchExecuted log")
				continue
			}
			all.BatchExecutions = append(all.BatchExecutions, e)
		case topicSendToCosmos:
			e, err := ethevents.SendToCosmosFromLog(logEntry)
			if err != nil {
				l.log.Warn().Err(err).Msg("dropping malformed SendToCosmos log")
				continue
			}
			all.Deposits = append(all.Deposits, e)
		case topicErc20Deployed:
			e, err := ethevents.Erc20DeployedFromLog(logEntry)
			if err != nil {
				l.log.Warn().Err(err).Msg("dropping malformed Erc20Deployed log")
				continue
			}
			all.Erc20Deployments = append(all.Erc20Deployments, e)
		case topicLogicCallExecuted:
			e, err := ethevents.LogicCallExecutedFromLog(logEntry)
			if err != nil {
				l.log.Warn().Err(err).Msg("dropping malformed LogicCallExecuted log")
				continue
			}
			all.LogicCallExecutions = append(all.LogicCallExecutions, e)
		}
	}

	return all
}
