package relayer

import (
	"context"

	"github.com/althea-net/gravity-orchestrator/internal/abi"
	"github.com/althea-net/gravity-orchestrator/internal/bridgetypes"
	"github.com/althea-net/gravity-orchestrator/internal/cosmosadapter"
	"github.com/althea-net/gravity-orchestrator/internal/errs"
	"github.com/althea-net/gravity-orchestrator/internal/ethadapter"
)

// maxValsetWalkback bounds how far find_latest_valset walks backward from
// Cosmos's current valset nonce before giving up. Cosmos prunes old valset
// requests, so an unbounded walk risks spinning on nonces that ValsetRequest
// will keep reporting as missing; this many recent valsets is assumed to
// always include whichever one the Eth contract is actually checkpointed on.
const maxValsetWalkback = 100

// FindLatestValset determines which valset the bridge contract currently
// trusts, by walking backward from Cosmos's current valset and comparing
// each candidate's checkpoint hash against the contract's
// state_lastValsetCheckpoint, per §4.5 step 1. The reference orchestrator's
// find_latest_valset.rs was not present in the retrieved source; this
// matching algorithm is reconstructed directly from SPEC_FULL.md's
// description (see DESIGN.md).
func FindLatestValset(ctx context.Context, query *cosmosadapter.QueryClient, eth *ethadapter.Client, gravityID string) (*bridgetypes.Valset, error) {
	checkpoint, err := eth.LastValsetCheckpoint(ctx)
	if err != nil {
		return nil, err
	}

	current, err := query.CurrentValset(ctx)
	if err != nil {
		return nil, err
	}
	if hash, err := abi.ValsetConfirmHash(gravityID, current); err == nil && hash == checkpoint {
		return current, nil
	}

	nonce := current.Nonce
	for attempts := 0; attempts < maxValsetWalkback && nonce > 0; attempts++ {
		nonce--
		candidate, err := query.ValsetRequest(ctx, nonce)
		if err != nil {
			return nil, err
		}
		if candidate == nil {
			// Pruned from Cosmos state; keep walking further back.
			continue
		}
		hash, err := abi.ValsetConfirmHash(gravityID, candidate)
		if err != nil {
			return nil, errs.Validation(err, "compute checkpoint for valset %d", nonce)
		}
		if hash == checkpoint {
			return candidate, nil
		}
	}
	return nil, errs.Unrecoverable(nil, "no valset within last %d nonces matches the Eth contract's checkpoint", maxValsetWalkback)
}
