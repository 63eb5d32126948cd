// Package ethevents transforms Eth log objects into typed bridge event
// structs by fixed-offset byte parsing, not generic ABI decoding (§4.2).
package ethevents

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"unicode/utf8"

	sdkbech32 "github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
)

// oneMegabyte bounds variable-length user-provided strings (ERC20 names and
// symbols, deposit destinations, denoms). Per §4.2, anything longer is
// treated as an empty string rather than rejecting the whole event.
const oneMegabyte = 1_000_000

var errTooFewTopics = fmt.Errorf("too few topics")
var errNoBlockNumber = fmt.Errorf("log does not have block number, we only search logs already in blocks")

func blockHeight(log *gethtypes.Log) (uint64, error) {
	if log.BlockNumber == 0 {
		return 0, errNoBlockNumber
	}
	return log.BlockNumber, nil
}

func wordAt(data []byte, wordIndex int) ([]byte, error) {
	start := wordIndex * 32
	end := start + 32
	if len(data) < end {
		return nil, fmt.Errorf("word %d out of range (len %d)", wordIndex, len(data))
	}
	return data[start:end], nil
}

func uint256At(data []byte, wordIndex int) (*big.Int, error) {
	w, err := wordAt(data, wordIndex)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(w), nil
}

// nextWordBoundary implements the "round up to the next 32-byte word" offset
// arithmetic used to find a dynamic field placed after another
// variable-length field, per §4.2.
func nextWordBoundary(byteIndex int) int {
	return ((byteIndex + 31) / 32) * 32
}

// parseString reads a dynamic string argument at the given (0-indexed)
// top-level argument position: data[argIndex*32:] holds the byte offset of
// the string's length word.
func parseString(data []byte, argIndex int) (string, error) {
	offset, err := uint256At(data, argIndex)
	if err != nil {
		return "", err
	}
	if !offset.IsUint64() || offset.Uint64() > math.MaxUint32 {
		return "", fmt.Errorf("string offset overflow")
	}
	lenStart := int(offset.Uint64())
	if len(data) < lenStart+32 {
		return "", fmt.Errorf("string length word out of range")
	}
	strLen := new(big.Int).SetBytes(data[lenStart : lenStart+32])
	if strLen.BitLen() > 32 {
		return "", fmt.Errorf("string length overflow")
	}
	n := int(strLen.Uint64())
	if n == 0 {
		return "", nil
	}
	start := lenStart + 32
	end := start + nextWordBoundary(n)
	if len(data) < end {
		return "", fmt.Errorf("string data out of range")
	}
	return strings.Trim(string(data[start:start+n]), "\x00"), nil
}

func parseAddressArray(data []byte, argIndex int) ([]common.Address, error) {
	offset, err := uint256At(data, argIndex)
	if err != nil {
		return nil, err
	}
	if !offset.IsUint64() {
		return nil, fmt.Errorf("address array offset overflow")
	}
	lenStart := int(offset.Uint64())
	if len(data) < lenStart+32 {
		return nil, fmt.Errorf("address array length word out of range")
	}
	count := new(big.Int).SetBytes(data[lenStart : lenStart+32])
	if !count.IsUint64() {
		return nil, fmt.Errorf("address array length overflow")
	}
	n := int(count.Uint64())
	out := make([]common.Address, 0, n)
	base := lenStart + 32
	for i := 0; i < n; i++ {
		start := base + 32*i
		end := start + 32
		if len(data) < end {
			return nil, fmt.Errorf("address array element %d out of range", i)
		}
		out = append(out, common.BytesToAddress(data[start+12:end]))
	}
	return out, nil
}

func parseUint256Array(data []byte, argIndex int) ([]*big.Int, error) {
	offset, err := uint256At(data, argIndex)
	if err != nil {
		return nil, err
	}
	if !offset.IsUint64() {
		return nil, fmt.Errorf("uint256 array offset overflow")
	}
	lenStart := int(offset.Uint64())
	if len(data) < lenStart+32 {
		return nil, fmt.Errorf("uint256 array length word out of range")
	}
	count := new(big.Int).SetBytes(data[lenStart : lenStart+32])
	if !count.IsUint64() {
		return nil, fmt.Errorf("uint256 array length overflow")
	}
	n := int(count.Uint64())
	out := make([]*big.Int, 0, n)
	base := lenStart + 32
	for i := 0; i < n; i++ {
		start := base + 32*i
		end := start + 32
		if len(data) < end {
			return nil, fmt.Errorf("uint256 array element %d out of range", i)
		}
		out = append(out, new(big.Int).SetBytes(data[start:end]))
	}
	return out, nil
}

func isValidUTF8(b []byte) bool {
	return utf8.Valid(b)
}

// trimWhitespaceAndNUL mirrors the reference parser's handling of trailing
// zero-padding left by Solidity's word alignment.
func trimWhitespaceAndNUL(s string) string {
	return strings.Trim(s, " \x00")
}

func validateBech32(s string) (string, bool) {
	hrp, bz, err := sdkbech32.DecodeAndConvert(s)
	if err != nil || hrp == "" || len(bz) == 0 {
		return "", false
	}
	return s, true
}
