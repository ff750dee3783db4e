package service

import (
	"testing"

	"private-payroll-gateway/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAddr      = "aleo1qyqszqgpqyqszqgpqyqszqgpqyqszqgpqyqszqgpqyqszqgpqyqs3ljyzc"
	testOtherAddr = "aleo1payrollowner0000000000000000000000000000000000000000000000"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(zerolog.Nop())
}

func TestNormalizer_Credit_StructuredFields(t *testing.T) {
	n := newTestNormalizer()

	raw := ports.RawRecord{
		"recordName": "credits",
		"commitment": "8170186746512871field",
		"owner":      testAddr + ".private",
		"data": map[string]any{
			"microcredits": "5000000u64.private",
		},
		"ciphertext": "record1ciphertext",
	}

	credit, ok := n.Credit(raw, testAddr)
	require.True(t, ok)
	assert.Equal(t, "8170186746512871", credit.ID, "commitment suffix must be stripped")
	assert.Equal(t, testAddr, credit.Owner)
	assert.Equal(t, uint64(5_000_000), credit.Amount)
	assert.Equal(t, "record1ciphertext", credit.Ciphertext)
	assert.True(t, credit.Usable())
}

func TestNormalizer_Credit_PlaintextFallbackMatchesStructured(t *testing.T) {
	n := newTestNormalizer()

	structured := ports.RawRecord{
		"recordName": "credits",
		"id":         "rec-1",
		"owner":      testAddr,
		"data":       map[string]any{"microcredits": "750000u64"},
		"ciphertext": "ct",
	}
	plaintextOnly := ports.RawRecord{
		"recordName": "credits",
		"id":         "rec-1",
		"plaintext":  "{ owner: " + testAddr + ".private, microcredits: 750000u64.private }",
		"ciphertext": "ct",
	}

	a, ok := n.Credit(structured, testAddr)
	require.True(t, ok)
	b, ok := n.Credit(plaintextOnly, testAddr)
	require.True(t, ok)

	assert.Equal(t, a.Amount, b.Amount, "plaintext extraction must yield the same integer as the structured path")
	assert.Equal(t, a.Owner, b.Owner)
}

func TestNormalizer_SpentFlag_AnyTruthySpelling(t *testing.T) {
	n := newTestNormalizer()

	spellings := []any{true, "true", "TRUE", 1, "1", "yes", "spent", float64(1)}
	for _, v := range spellings {
		raw := ports.RawRecord{
			"recordName": "credits",
			"spent":      v,
			"data":       map[string]any{"microcredits": "100u64"},
			"ciphertext": "ct",
		}
		_, ok := n.Credit(raw, testAddr)
		assert.Falsef(t, ok, "spent spelling %v must exclude the record", v)
	}

	// Falsy spellings keep the record.
	for _, v := range []any{false, "false", 0, ""} {
		raw := ports.RawRecord{
			"recordName": "credits",
			"spent":      v,
			"data":       map[string]any{"microcredits": "100u64"},
			"ciphertext": "ct",
		}
		_, ok := n.Credit(raw, testAddr)
		assert.Truef(t, ok, "spent spelling %v must not exclude the record", v)
	}
}

func TestNormalizer_KindLabelMismatch_Excluded(t *testing.T) {
	n := newTestNormalizer()

	raw := ports.RawRecord{
		"recordName": "Payroll",
		"data":       map[string]any{"total_budget": "5000000u64"},
		"ciphertext": "ct",
	}

	_, ok := n.Credit(raw, testAddr)
	assert.False(t, ok, "payroll-labelled record must not normalize as credit")

	payroll, ok := n.Payroll(raw, testAddr)
	require.True(t, ok)
	assert.Equal(t, uint64(5_000_000), payroll.TotalBudget)
}

func TestNormalizer_KindInference_WhenLabelAbsent(t *testing.T) {
	n := newTestNormalizer()

	budgeted := ports.RawRecord{
		"plaintext":  "{ owner: " + testAddr + ", total_budget: 1000u64, spent_budget: 250u64 }",
		"ciphertext": "ct",
	}

	payroll, ok := n.Payroll(budgeted, testAddr)
	require.True(t, ok, "budget field implies payroll")
	assert.Equal(t, uint64(1_000), payroll.TotalBudget)
	assert.Equal(t, uint64(250), payroll.SpentBudget)
	assert.Equal(t, uint64(750), payroll.RemainingBudget())

	_, ok = n.Credit(budgeted, testAddr)
	assert.False(t, ok, "inferred payroll must not normalize as credit")
}

func TestNormalizer_Idempotent(t *testing.T) {
	n := newTestNormalizer()

	raw := ports.RawRecord{
		"recordName": "Contributor",
		"commitment": "42field",
		"owner":      testAddr,
		"data": map[string]any{
			"payroll_owner": testOtherAddr,
			"contributor":   testAddr,
			"payout":        "750000u64",
		},
		"ciphertext": "ct",
	}

	first, ok := n.Contributor(raw, testAddr)
	require.True(t, ok)
	second, ok := n.Contributor(raw, testAddr)
	require.True(t, ok)
	assert.Equal(t, first, second, "normalizing the same raw record twice must yield identical entities")
}

func TestNormalizer_IdentityPreferenceChain(t *testing.T) {
	n := newTestNormalizer()

	tests := []struct {
		name string
		raw  ports.RawRecord
		want string
	}{
		{
			"commitment wins over id and nonce",
			ports.RawRecord{"recordName": "credits", "commitment": "commit1field", "id": "id-1", "nonce": "nonce-1", "ciphertext": "ct"},
			"commit1",
		},
		{
			"id wins over nonce",
			ports.RawRecord{"recordName": "credits", "id": "id-1", "nonce": "nonce-1", "ciphertext": "ct"},
			"id-1",
		},
		{
			"nonce wins over serial",
			ports.RawRecord{"recordName": "credits", "nonce": "nonce1group", "serial_number": "sn-1", "ciphertext": "ct"},
			"nonce1",
		},
		{
			"serial number used when nothing better",
			ports.RawRecord{"recordName": "credits", "serialNumber": "sn-1", "ciphertext": "ct"},
			"sn-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			credit, ok := n.Credit(tt.raw, testAddr)
			require.True(t, ok)
			assert.Equal(t, tt.want, credit.ID)
		})
	}
}

func TestNormalizer_ContentDerivedID_Deterministic(t *testing.T) {
	n := newTestNormalizer()

	raw := ports.RawRecord{"recordName": "credits", "ciphertext": "record1samecontent"}

	a, ok := n.Credit(raw, testAddr)
	require.True(t, ok)
	b, ok := n.Credit(raw, testAddr)
	require.True(t, ok)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, a.ID, b.ID, "content-derived id must be stable")
}

func TestNormalizer_RandomID_OnlyWhenEverySourceAbsent(t *testing.T) {
	n := newTestNormalizer()

	raw := ports.RawRecord{"recordName": "credits"}

	a, ok := n.Credit(raw, testAddr)
	require.True(t, ok)
	b, ok := n.Credit(raw, testAddr)
	require.True(t, ok)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID, "last-resort id is random")
	assert.False(t, a.Usable(), "record without content is unusable regardless of id")
}

func TestNormalizer_OwnerFallback_ToRequestingAddress(t *testing.T) {
	n := newTestNormalizer()

	raw := ports.RawRecord{
		"recordName": "credits",
		"owner":      "not-an-address",
		"data":       map[string]any{"microcredits": "100u64"},
		"ciphertext": "ct",
	}

	credit, ok := n.Credit(raw, testAddr)
	require.True(t, ok)
	assert.Equal(t, testAddr, credit.Owner)
}

func TestNormalizer_AbsentFieldsDegradeToZero(t *testing.T) {
	n := newTestNormalizer()

	raw := ports.RawRecord{"recordName": "Payroll", "ciphertext": "ct"}

	payroll, ok := n.Payroll(raw, testAddr)
	require.True(t, ok)
	assert.Zero(t, payroll.TotalBudget)
	assert.Zero(t, payroll.SpentBudget)
	assert.Zero(t, payroll.RemainingBudget())
}

func TestNormalizer_Contributor_PaidFlag(t *testing.T) {
	n := newTestNormalizer()

	structured := ports.RawRecord{
		"recordName": "Contributor",
		"data":       map[string]any{"payout": "100u64", "paid": "true"},
		"ciphertext": "ct",
	}
	c, ok := n.Contributor(structured, testAddr)
	require.True(t, ok)
	assert.True(t, c.Paid)

	fromPlaintext := ports.RawRecord{
		"recordName": "Contributor",
		"plaintext":  "{ payout: 100u64.private, paid: false.private }",
		"ciphertext": "ct",
	}
	c, ok = n.Contributor(fromPlaintext, testAddr)
	require.True(t, ok)
	assert.False(t, c.Paid)
}

func TestNormalizer_Receipt(t *testing.T) {
	n := newTestNormalizer()

	raw := ports.RawRecord{
		"recordName": "PaymentReceipt",
		"commitment": "receipt1field",
		"owner":      testAddr,
		"data": map[string]any{
			"contributor": testAddr,
			"amount":      "750000u64",
		},
		"ciphertext": "ct",
	}

	receipt, ok := n.Receipt(raw, testAddr)
	require.True(t, ok)
	assert.Equal(t, "receipt1", receipt.ID)
	assert.Equal(t, testAddr, receipt.Contributor)
	assert.Equal(t, uint64(750_000), receipt.Amount)
}

func TestNormalizer_NumericTypes(t *testing.T) {
	n := newTestNormalizer()

	// JSON decoding hands numbers over as float64.
	raw := ports.RawRecord{
		"recordName": "credits",
		"data":       map[string]any{"microcredits": float64(123456)},
		"ciphertext": "ct",
	}
	credit, ok := n.Credit(raw, testAddr)
	require.True(t, ok)
	assert.Equal(t, uint64(123_456), credit.Amount)
}

func TestNormalizer_NilRecord_Excluded(t *testing.T) {
	n := newTestNormalizer()
	_, ok := n.Credit(nil, testAddr)
	assert.False(t, ok)
}
