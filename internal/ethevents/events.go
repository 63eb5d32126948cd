package ethevents

import (
	"fmt"
	"math"
	"math/big"

	"github.com/althea-net/gravity-orchestrator/internal/bridgetypes"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
)

func checkU64(v *big.Int, what string) (uint64, error) {
	if v == nil || !v.IsUint64() {
		return 0, fmt.Errorf("%s overflow, probably incorrect parsing", what)
	}
	return v.Uint64(), nil
}

// ValsetUpdatedEvent mirrors the Gravity contract's ValsetUpdated event.
type ValsetUpdatedEvent struct {
	ValsetNonce     uint64
	EventNonce      uint64
	BlockHeight     uint64
	RewardAmount    *big.Int
	RewardDenom     string
	RewardRecipient string
	Members         []bridgetypes.ValsetMember
}

// ValsetUpdatedFromLog parses a ValsetUpdated log: topic[1] is the indexed
// valset nonce; data holds event_nonce, reward_amount, reward_denom (string),
// reward_recipient (string), validator addresses (address[]), and powers
// (uint256[]) at argument positions 0..5.
func ValsetUpdatedFromLog(log *gethtypes.Log) (*ValsetUpdatedEvent, error) {
	if len(log.Topics) < 2 {
		return nil, errTooFewTopics
	}
	valsetNonceBig := new(big.Int).SetBytes(log.Topics[1].Bytes())
	valsetNonce, err := checkU64(valsetNonceBig, "nonce")
	if err != nil {
		return nil, err
	}
	bh, err := blockHeight(log)
	if err != nil {
		return nil, err
	}

	data := log.Data
	if len(data) < 7*32 {
		return nil, fmt.Errorf("too short for ValsetUpdatedEventData")
	}
	eventNonceBig := new(big.Int).SetBytes(data[0:32])
	eventNonce, err := checkU64(eventNonceBig, "nonce")
	if err != nil {
		return nil, err
	}
	rewardAmount := new(big.Int).SetBytes(data[32:64])

	rewardDenom, err := parseString(data, 2)
	if err != nil {
		return nil, err
	}
	rewardRecipient, err := parseString(data, 3)
	if err != nil {
		return nil, err
	}
	addrs, err := parseAddressArray(data, 4)
	if err != nil {
		return nil, err
	}
	powers, err := parseUint256Array(data, 5)
	if err != nil {
		return nil, err
	}
	if len(addrs) != len(powers) {
		return nil, fmt.Errorf("validators_addresses len != validators_powers len")
	}
	members := make([]bridgetypes.ValsetMember, len(addrs))
	for i := range addrs {
		power, err := checkU64(powers[i], "power")
		if err != nil {
			return nil, err
		}
		members[i] = bridgetypes.ValsetMember{EthAddress: addrs[i], Power: power}
	}

	return &ValsetUpdatedEvent{
		ValsetNonce:     valsetNonce,
		EventNonce:      eventNonce,
		BlockHeight:     bh,
		RewardAmount:    rewardAmount,
		RewardDenom:     rewardDenom,
		RewardRecipient: rewardRecipient,
		Members:         members,
	}, nil
}

// TransactionBatchExecutedEvent mirrors the Gravity contract's
// TransactionBatchExecuted event.
type TransactionBatchExecutedEvent struct {
	BatchNonce  uint64
	BlockHeight uint64
	Erc20       common.Address
	EventNonce  uint64
}

// TransactionBatchExecutedFromLog parses topics[1]=batch_nonce,
// topics[2]=erc20 address, data=event_nonce (single word, no offset table).
func TransactionBatchExecutedFromLog(log *gethtypes.Log) (*TransactionBatchExecutedEvent, error) {
	if len(log.Topics) < 3 {
		return nil, errTooFewTopics
	}
	batchNonceBig := new(big.Int).SetBytes(log.Topics[1].Bytes())
	erc20 := common.BytesToAddress(log.Topics[2].Bytes()[12:32])
	eventNonceBig := new(big.Int).SetBytes(log.Data)
	bh, err := blockHeight(log)
	if err != nil {
		return nil, err
	}
	batchNonce, err := checkU64(batchNonceBig, "batch nonce")
	if err != nil {
		return nil, err
	}
	eventNonce, err := checkU64(eventNonceBig, "event nonce")
	if err != nil {
		return nil, err
	}
	return &TransactionBatchExecutedEvent{
		BatchNonce:  batchNonce,
		BlockHeight: bh,
		Erc20:       erc20,
		EventNonce:  eventNonce,
	}, nil
}

// SendToCosmosEvent mirrors the Gravity contract's SendToCosmos (deposit)
// event.
type SendToCosmosEvent struct {
	Erc20                common.Address
	Sender               common.Address
	Destination          string
	ValidatedDestination string
	HasValidDestination  bool
	Amount               *big.Int
	EventNonce           uint64
	BlockHeight          uint64
}

// SendToCosmosFromLog parses topics[1]=erc20, topics[2]=sender; data holds
// (discarded word, amount, event_nonce) at word positions 0..2, the
// destination's byte length at word 3, and the destination bytes from word 4
// on. The destination is read at these fixed positions, not via parseString.
func SendToCosmosFromLog(log *gethtypes.Log) (*SendToCosmosEvent, error) {
	if len(log.Topics) < 3 {
		return nil, errTooFewTopics
	}
	erc20 := common.BytesToAddress(log.Topics[1].Bytes()[12:32])
	sender := common.BytesToAddress(log.Topics[2].Bytes()[12:32])
	bh, err := blockHeight(log)
	if err != nil {
		return nil, err
	}

	data := log.Data
	if len(data) < 4*32 {
		return nil, fmt.Errorf("too short for SendToCosmosEventData")
	}
	amount := new(big.Int).SetBytes(data[32:64])
	eventNonceBig := new(big.Int).SetBytes(data[64:96])
	eventNonce, err := checkU64(eventNonceBig, "event nonce")
	if err != nil {
		return nil, err
	}

	destLenBig := new(big.Int).SetBytes(data[96:128])
	if destLenBig.BitLen() > 32 {
		return nil, fmt.Errorf("denom length overflow, probably incorrect parsing")
	}
	destLen := int(destLenBig.Uint64())
	destStart := 4 * 32
	destEnd := destStart + destLen
	if len(data) < destEnd {
		return nil, fmt.Errorf("incorrect length for dynamic data")
	}
	raw := data[destStart:destEnd]

	destination := ""
	if destLen > 0 {
		if !isValidUTF8(raw) {
			// invalid utf-8: community-pool fallback, per §4.2.
			destination = ""
		} else {
			destination = trimWhitespaceAndNUL(string(raw))
			if len(destination) > oneMegabyte {
				destination = ""
			}
		}
	}

	validated, ok := "", false
	if destination != "" {
		validated, ok = validateBech32(destination)
	}

	return &SendToCosmosEvent{
		Erc20:                erc20,
		Sender:               sender,
		Destination:          destination,
		ValidatedDestination: validated,
		HasValidDestination:  ok,
		Amount:               amount,
		EventNonce:           eventNonce,
		BlockHeight:          bh,
	}, nil
}

// Erc20DeployedEvent mirrors the Gravity contract's ERC20Deployed event.
type Erc20DeployedEvent struct {
	CosmosDenom  string
	Erc20Address common.Address
	Name         string
	Symbol       string
	Decimals     uint8
	EventNonce   uint64
	BlockHeight  uint64
}

// dummyErc20DeployedData is returned (wrapped with the still-valid event
// nonce and block height) whenever the deployment's string fields fail to
// validate, so the oracle loop still advances past this nonce. This mirrors
// the reference parser's documented behavior; see SPEC_FULL.md §9 Open
// Question #1 and DESIGN.md.
func dummyErc20DeployedData(erc20 common.Address, eventNonce uint64, bh uint64) *Erc20DeployedEvent {
	return &Erc20DeployedEvent{
		Erc20Address: erc20,
		EventNonce:   eventNonce,
		BlockHeight:  bh,
	}
}

// Erc20DeployedFromLog parses topics[1]=erc20 address; data holds (three
// discarded words, decimals, event_nonce, denom string, name string, symbol
// string), the denom's length word sitting at word 5 — the three strings are
// variable-length and must be
// walked with nextWordBoundary since each one follows a preceding
// variable-length field rather than sitting at a fixed argument index.
func Erc20DeployedFromLog(log *gethtypes.Log) (*Erc20DeployedEvent, error) {
	if len(log.Topics) < 2 {
		return nil, errTooFewTopics
	}
	erc20 := common.BytesToAddress(log.Topics[1].Bytes()[12:32])
	bh, err := blockHeight(log)
	if err != nil {
		return nil, err
	}

	data := log.Data
	if len(data) < 6*32 {
		return nil, fmt.Errorf("too short for Erc20DeployedEventData")
	}

	decimalsBig := new(big.Int).SetBytes(data[3*32 : 4*32])
	if decimalsBig.Cmp(big.NewInt(math.MaxUint8)) > 0 {
		return nil, fmt.Errorf("decimals overflow, probably incorrect parsing")
	}
	decimals := uint8(decimalsBig.Uint64())

	eventNonceBig := new(big.Int).SetBytes(data[4*32 : 5*32])
	eventNonce, err := checkU64(eventNonceBig, "nonce")
	if err != nil {
		return nil, err
	}

	denomLenBig := new(big.Int).SetBytes(data[5*32 : 6*32])
	if denomLenBig.BitLen() > 32 {
		return nil, fmt.Errorf("denom length overflow, probably incorrect parsing")
	}
	denomLen := int(denomLenBig.Uint64())
	denomStart := 6 * 32
	denomEnd := denomStart + denomLen
	if len(data) < denomEnd {
		return nil, fmt.Errorf("erc20 deployed event dynamic data too short")
	}
	if !isValidUTF8(data[denomStart:denomEnd]) {
		return dummyErc20DeployedData(erc20, eventNonce, bh), nil
	}
	denom := string(data[denomStart:denomEnd])
	if len(denom) > oneMegabyte {
		return dummyErc20DeployedData(erc20, eventNonce, bh), nil
	}

	nameLenStart := nextWordBoundary(denomEnd)
	nameLenEnd := nameLenStart + 32
	if len(data) < nameLenEnd {
		return nil, fmt.Errorf("erc20 deployed event dynamic data too short")
	}
	nameLenBig := new(big.Int).SetBytes(data[nameLenStart:nameLenEnd])
	if nameLenBig.BitLen() > 32 {
		return nil, fmt.Errorf("erc20 name length overflow, probably incorrect parsing")
	}
	nameLen := int(nameLenBig.Uint64())
	nameStart := nameLenEnd
	nameEnd := nameStart + nameLen
	if len(data) < nameEnd {
		return nil, fmt.Errorf("erc20 deployed event dynamic data too short")
	}
	if !isValidUTF8(data[nameStart:nameEnd]) {
		return dummyErc20DeployedData(erc20, eventNonce, bh), nil
	}
	name := string(data[nameStart:nameEnd])
	if len(name) > oneMegabyte {
		return dummyErc20DeployedData(erc20, eventNonce, bh), nil
	}

	symbolLenStart := nextWordBoundary(nameEnd)
	symbolLenEnd := symbolLenStart + 32
	if len(data) < symbolLenEnd {
		return nil, fmt.Errorf("erc20 deployed event dynamic data too short")
	}
	symbolLenBig := new(big.Int).SetBytes(data[symbolLenStart:symbolLenEnd])
	if symbolLenBig.BitLen() > 32 {
		return nil, fmt.Errorf("symbol length overflow, probably incorrect parsing")
	}
	symbolLen := int(symbolLenBig.Uint64())
	symbolStart := symbolLenEnd
	symbolEnd := symbolStart + symbolLen
	if len(data) < symbolEnd {
		return nil, fmt.Errorf("erc20 deployed event dynamic data too short")
	}
	if !isValidUTF8(data[symbolStart:symbolEnd]) {
		return dummyErc20DeployedData(erc20, eventNonce, bh), nil
	}
	symbol := string(data[symbolStart:symbolEnd])
	if len(symbol) > oneMegabyte {
		return dummyErc20DeployedData(erc20, eventNonce, bh), nil
	}

	return &Erc20DeployedEvent{
		CosmosDenom:  denom,
		Erc20Address: erc20,
		Name:         name,
		Symbol:       symbol,
		Decimals:     decimals,
		EventNonce:   eventNonce,
		BlockHeight:  bh,
	}, nil
}

// LogicCallExecutedEvent mirrors the Gravity contract's LogicCallExecuted
// event. The reference parser for this event was left unimplemented; the
// layout below follows SPEC_FULL.md §4.2.
type LogicCallExecutedEvent struct {
	InvalidationID    []byte
	InvalidationNonce uint64
	EventNonce        uint64
	BlockHeight       uint64
}

// LogicCallExecutedFromLog parses topics[1]=invalidation_id (32 bytes),
// topics[2]=invalidation_nonce; data holds event_nonce and block_height at
// fixed word offsets 0 and 1 (no dynamic fields, so no offset-table walk is
// needed). Only word 0 is read; BlockHeight is taken from the log's block
// number, as in the other parsers.
func LogicCallExecutedFromLog(log *gethtypes.Log) (*LogicCallExecutedEvent, error) {
	if len(log.Topics) < 3 {
		return nil, errTooFewTopics
	}
	invalidationID := append([]byte(nil), log.Topics[1].Bytes()...)
	invalidationNonceBig := new(big.Int).SetBytes(log.Topics[2].Bytes())
	invalidationNonce, err := checkU64(invalidationNonceBig, "invalidation nonce")
	if err != nil {
		return nil, err
	}
	bh, err := blockHeight(log)
	if err != nil {
		return nil, err
	}

	data := log.Data
	if len(data) < 2*32 {
		return nil, fmt.Errorf("too short for LogicCallExecutedEventData")
	}
	eventNonceBig := new(big.Int).SetBytes(data[0:32])
	eventNonce, err := checkU64(eventNonceBig, "event nonce")
	if err != nil {
		return nil, err
	}

	return &LogicCallExecutedEvent{
		InvalidationID:    invalidationID,
		InvalidationNonce: invalidationNonce,
		EventNonce:        eventNonce,
		BlockHeight:       bh,
	}, nil
}
