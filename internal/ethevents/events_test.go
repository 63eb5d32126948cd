package ethevents

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

func word(v uint64) [32]byte {
	var w [32]byte
	b := new(big.Int).SetUint64(v).Bytes()
	copy(w[32-len(b):], b)
	return w
}

func addrWord(a common.Address) [32]byte {
	var w [32]byte
	copy(w[12:], a.Bytes())
	return w
}

func packWords(words ...[32]byte) []byte {
	out := make([]byte, 0, 32*len(words))
	for _, w := range words {
		out = append(out, w[:]...)
	}
	return out
}

func stringWord(s string) []byte {
	n := len(s)
	padded := nextWordBoundary(n)
	out := make([]byte, 32+padded)
	copy(out[0:32], word(uint64(n))[:])
	copy(out[32:32+n], s)
	return out
}

func TestValsetUpdatedFromLogRoundTrip(t *testing.T) {
	eventNonce := uint64(7)
	rewardAmount := uint64(500)
	validators := []common.Address{
		common.HexToAddress("0x1111111111111111111111111111111111111111"),
		common.HexToAddress("0x2222222222222222222222222222222222222222"),
	}
	powers := []uint64{100, 200}

	// Build data by hand: args are (event_nonce, reward_amount,
	// reward_denom_offset, reward_recipient_offset, validators_offset,
	// powers_offset) followed by the dynamic payloads in that order.
	denom := stringWord("ugraviton")
	recipient := stringWord("cosmos1abc")

	validatorsOffset := 6 * 32
	recipientOffset := validatorsOffset + len(denom)
	validatorsSectionOffset := recipientOffset + len(recipient)
	var validatorsSection []byte
	validatorsSection = append(validatorsSection, word(uint64(len(validators)))[:]...)
	for _, v := range validators {
		w := addrWord(v)
		validatorsSection = append(validatorsSection, w[:]...)
	}
	powersSectionOffset := validatorsSectionOffset + len(validatorsSection)
	var powersSection []byte
	powersSection = append(powersSection, word(uint64(len(powers)))[:]...)
	for _, p := range powers {
		powersSection = append(powersSection, word(p)[:]...)
	}

	data := make([]byte, 0)
	data = append(data, word(eventNonce)[:]...)
	data = append(data, word(rewardAmount)[:]...)
	data = append(data, word(uint64(validatorsOffset))[:]...)
	data = append(data, word(uint64(recipientOffset))[:]...)
	data = append(data, word(uint64(validatorsSectionOffset))[:]...)
	data = append(data, word(uint64(powersSectionOffset))[:]...)
	data = append(data, denom...)
	data = append(data, recipient...)
	data = append(data, validatorsSection...)
	data = append(data, powersSection...)

	log := &gethtypes.Log{
		Topics: []common.Hash{
			common.Hash{},
			common.BigToHash(big.NewInt(42)),
		},
		Data:        data,
		BlockNumber: 1000,
	}

	ev, err := ValsetUpdatedFromLog(log)
	require.NoError(t, err)
	require.Equal(t, uint64(42), ev.ValsetNonce)
	require.Equal(t, eventNonce, ev.EventNonce)
	require.Equal(t, "ugraviton", ev.RewardDenom)
	require.Equal(t, "cosmos1abc", ev.RewardRecipient)
	require.Len(t, ev.Members, 2)
	require.Equal(t, validators[0], ev.Members[0].EthAddress)
	require.Equal(t, powers[1], ev.Members[1].Power)
}

func TestTransactionBatchExecutedFromLog(t *testing.T) {
	erc20 := common.HexToAddress("0x3333333333333333333333333333333333333333")
	log := &gethtypes.Log{
		Topics: []common.Hash{
			{},
			common.BigToHash(big.NewInt(9)),
			addrTopic(erc20),
		},
		Data:        word(55)[:],
		BlockNumber: 200,
	}
	ev, err := TransactionBatchExecutedFromLog(log)
	require.NoError(t, err)
	require.Equal(t, uint64(9), ev.BatchNonce)
	require.Equal(t, erc20, ev.Erc20)
	require.Equal(t, uint64(55), ev.EventNonce)
	require.Equal(t, uint64(200), ev.BlockHeight)
}

func addrTopic(a common.Address) common.Hash {
	var h common.Hash
	copy(h[12:], a.Bytes())
	return h
}

func TestSendToCosmosFromLogKeepsUTF8Destination(t *testing.T) {
	erc20 := common.HexToAddress("0x4444444444444444444444444444444444444444")
	sender := common.HexToAddress("0x5555555555555555555555555555555555555555")
	dest := "cosmos1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqd43sxh" // valid UTF-8 but not a valid bech32 checksum; only the raw Destination is asserted

	data := make([]byte, 0)
	data = append(data, word(0)[:]...) // discarded word
	data = append(data, word(1000)[:]...)
	data = append(data, word(88)[:]...)
	data = append(data, word(uint64(len(dest)))[:]...)
	padded := nextWordBoundary(len(dest))
	strBytes := make([]byte, padded)
	copy(strBytes, dest)
	data = append(data, strBytes...)

	log := &gethtypes.Log{
		Topics: []common.Hash{
			{},
			addrTopic(erc20),
			addrTopic(sender),
		},
		Data:        data,
		BlockNumber: 300,
	}
	ev, err := SendToCosmosFromLog(log)
	require.NoError(t, err)
	require.Equal(t, erc20, ev.Erc20)
	require.Equal(t, sender, ev.Sender)
	require.Equal(t, big.NewInt(1000), ev.Amount)
	require.Equal(t, uint64(88), ev.EventNonce)
	require.Equal(t, dest, ev.Destination)
}

func TestErc20DeployedFromLogDummyOnInvalidUTF8(t *testing.T) {
	erc20 := common.HexToAddress("0x6666666666666666666666666666666666666666")

	invalid := []byte{0xff, 0xfe, 0xfd}
	padded := nextWordBoundary(len(invalid))
	strBytes := make([]byte, padded)
	copy(strBytes, invalid)

	data := make([]byte, 0)
	data = append(data, word(0)[:]...)
	data = append(data, word(0)[:]...)
	data = append(data, word(0)[:]...)
	data = append(data, word(18)[:]...) // decimals
	data = append(data, word(99)[:]...) // event nonce
	data = append(data, word(uint64(len(invalid)))[:]...)
	data = append(data, strBytes...)

	log := &gethtypes.Log{
		Topics:      []common.Hash{{}, addrTopic(erc20)},
		Data:        data,
		BlockNumber: 400,
	}
	ev, err := Erc20DeployedFromLog(log)
	require.NoError(t, err)
	require.Equal(t, erc20, ev.Erc20Address)
	require.Equal(t, uint64(99), ev.EventNonce)
	require.Equal(t, "", ev.CosmosDenom)
	require.Equal(t, "", ev.Name)
	require.Equal(t, "", ev.Symbol)
}

func TestLogicCallExecutedFromLog(t *testing.T) {
	invalidationID := make([]byte, 32)
	copy(invalidationID, []byte("invalidationId"))

	var idHash common.Hash
	copy(idHash[:], invalidationID)

	log := &gethtypes.Log{
		Topics: []common.Hash{
			{},
			idHash,
			common.BigToHash(big.NewInt(4)),
		},
		Data:        packWords(word(13), word(0)),
		BlockNumber: 500,
	}
	ev, err := LogicCallExecutedFromLog(log)
	require.NoError(t, err)
	require.Equal(t, uint64(4), ev.InvalidationNonce)
	require.Equal(t, uint64(13), ev.EventNonce)
	require.Equal(t, uint64(500), ev.BlockHeight)
	require.Equal(t, invalidationID, ev.InvalidationID)
}

// TestFixedOffsetParsersNeverPanicOnTruncatedData is a lightweight
// fuzz-style test (§8 Testable Property 6): random truncations of otherwise
// well-formed data must either parse or return an error, never panic.
func TestFixedOffsetParsersNeverPanicOnTruncatedData(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	full := packWords(word(1), word(2), word(3))
	for i := 0; i < 50; i++ {
		n := r.Intn(len(full))
		truncated := full[:n]
		log := &gethtypes.Log{
			Topics:      []common.Hash{{}, common.BigToHash(big.NewInt(1)), common.BigToHash(big.NewInt(2))},
			Data:        truncated,
			BlockNumber: 1,
		}
		require.NotPanics(t, func() {
			_, _ = LogicCallExecutedFromLog(log)
			_, _ = TransactionBatchExecutedFromLog(log)
		})
	}
}
