package abi

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/althea-net/gravity-orchestrator/internal/bridgetypes"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ethSignatureVOffset is added to the recovery id produced by crypto.Sign to
// obtain the legacy Ethereum `v` value the bridge contract expects via
// ecrecover.
const ethSignatureVOffset = 27

// Sign produces an Eth-verifiable signature over hash using the orchestrator's
// Eth private key.
func Sign(hash [32]byte, key *ecdsa.PrivateKey) (bridgetypes.EthSignature, error) {
	sig, err := crypto.Sign(hash[:], key)
	if err != nil {
		return bridgetypes.EthSignature{}, fmt.Errorf("sign confirm hash: %w", err)
	}
	var out bridgetypes.EthSignature
	copy(out.R[:], sig[0:32])
	copy(out.S[:], sig[32:64])
	out.V = sig[64] + ethSignatureVOffset
	return out, nil
}

// Recover returns the Eth address that produced sig over hash, or an error if
// the signature is malformed. Nothing in the relay path calls it;
// OrderSignatures places confirms by their reported Eth address without
// recovering them.
func Recover(hash [32]byte, sig bridgetypes.EthSignature) (common.Address, error) {
	if sig.V < ethSignatureVOffset {
		return common.Address{}, fmt.Errorf("recover: v=%d below legacy offset", sig.V)
	}
	raw := make([]byte, 65)
	copy(raw[0:32], sig.R[:])
	copy(raw[32:64], sig.S[:])
	raw[64] = sig.V - ethSignatureVOffset

	pub, err := crypto.SigToPub(hash[:], raw)
	if err != nil {
		return common.Address{}, fmt.Errorf("recover: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
