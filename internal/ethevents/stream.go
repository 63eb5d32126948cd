package ethevents

// EventNonced is implemented by every event kind produced by this package so
// the oracle loop can merge the five independent log streams into one
// globally ordered sequence, per §3/§4.2.
type EventNonced interface {
	GetEventNonce() uint64
}

func (e *ValsetUpdatedEvent) GetEventNonce() uint64           { return e.EventNonce }
func (e *TransactionBatchExecutedEvent) GetEventNonce() uint64 { return e.EventNonce }
func (e *SendToCosmosEvent) GetEventNonce() uint64             { return e.EventNonce }
func (e *Erc20DeployedEvent) GetEventNonce() uint64            { return e.EventNonce }
func (e *LogicCallExecutedEvent) GetEventNonce() uint64        { return e.EventNonce }

// FilterByEventNonce returns only the events whose nonce is strictly greater
// than lastSeen, which is how the oracle loop avoids resubmitting claims
// across polling iterations (§3 Oracle loop, Invariant 2).
func FilterByEventNonce[T EventNonced](events []T, lastSeen uint64) []T {
	out := make([]T, 0, len(events))
	for _, e := range events {
		if e.GetEventNonce() > lastSeen {
			out = append(out, e)
		}
	}
	return out
}

// AllEvents is the union of every typed event produced from one polling
// iteration's worth of logs, tagged so callers can merge-sort across kinds
// by event nonce before submitting claims in order (Invariant 1, §3).
type AllEvents struct {
	ValsetUpdates      []*ValsetUpdatedEvent
	BatchExecutions    []*TransactionBatchExecutedEvent
	Deposits           []*SendToCosmosEvent
	Erc20Deployments   []*Erc20DeployedEvent
	LogicCallExecutions []*LogicCallExecutedEvent
}

// taggedEvent pairs a nonce with an opaque payload so MergeByNonce can sort
// heterogeneous event kinds without reflection.
type taggedEvent struct {
	nonce   uint64
	payload any
}

// MergeByNonce combines every event kind in a into one ascending-by-nonce
// slice of `any`, which the oracle loop then type-switches over when
// submitting claims. Ties (which should not occur, since event_nonce is
// globally unique per §3) are broken by the fixed kind order below.
func MergeByNonce(a AllEvents) []any {
	tagged := make([]taggedEvent, 0,
		len(a.ValsetUpdates)+len(a.BatchExecutions)+len(a.Deposits)+len(a.Erc20Deployments)+len(a.LogicCallExecutions))

	for _, e := range a.ValsetUpdates {
		tagged = append(tagged, taggedEvent{e.EventNonce, e})
	}
	for _, e := range a.BatchExecutions {
		tagged = append(tagged, taggedEvent{e.EventNonce, e})
	}
	for _, e := range a.Deposits {
		tagged = append(tagged, taggedEvent{e.EventNonce, e})
	}
	for _, e := range a.Erc20Deployments {
		tagged = append(tagged, taggedEvent{e.EventNonce, e})
	}
	for _, e := range a.LogicCallExecutions {
		tagged = append(tagged, taggedEvent{e.EventNonce, e})
	}

	// insertion sort: iteration batches are small (bounded by Eth block
	// range per poll), and this keeps the merge stable and alloc-free.
	for i := 1; i < len(tagged); i++ {
		for j := i; j > 0 && tagged[j-1].nonce > tagged[j].nonce; j-- {
			tagged[j-1], tagged[j] = tagged[j], tagged[j-1]
		}
	}

	out := make([]any, len(tagged))
	for i, t := range tagged {
		out[i] = t.payload
	}
	return out
}
