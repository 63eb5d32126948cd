package bridgetypes

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// quorumNumerator/quorumDenominator express the 66% voting-power threshold
// a relayed payload's signatures must cover (§4.1, Glossary "Quorum").
const (
	quorumNumerator   = 66
	quorumDenominator = 100
)

// OrderSignatures places confirms in the same order as valset.Members,
// substituting the zero signature for any member that did not sign, and
// returns an error if the covered voting power falls short of quorum. This
// mirrors the reference orchestrator's Valset::order_sigs.
func OrderSignatures(valset *Valset, confirms []ConfirmResponse) ([]EthSignature, error) {
	if len(valset.Members) == 0 {
		return nil, fmt.Errorf("insufficient power: valset has no members")
	}

	bySigner := make(map[common.Address]EthSignature, len(confirms))
	for _, c := range confirms {
		bySigner[c.EthereumSigner] = c.Signature
	}

	ordered := make([]EthSignature, len(valset.Members))
	var coveredPower uint64
	for i, member := range valset.Members {
		if sig, ok := bySigner[member.EthAddress]; ok {
			ordered[i] = sig
			coveredPower += member.Power
		}
	}

	totalPower := valset.TotalPower()
	if totalPower == 0 || coveredPower*quorumDenominator < totalPower*quorumNumerator {
		return nil, fmt.Errorf("insufficient power: signatures cover %d/%d, need >= %d%%",
			coveredPower, totalPower, quorumNumerator)
	}
	return ordered, nil
}
