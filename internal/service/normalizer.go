package service

import (
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"

	"private-payroll-gateway/internal/core/domain"
	"private-payroll-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/blake2b"
)

// Plaintext field patterns. Wallet backends that strip structured fields still
// return the record's annotated plaintext, e.g.
// "{ owner: aleo1abc.private, microcredits: 5000000u64.private, _nonce: ... }".
var (
	reMicrocredits = regexp.MustCompile(`microcredits:\s*(\d+)`)
	reTotalBudget  = regexp.MustCompile(`total_budget:\s*(\d+)`)
	reSpentBudget  = regexp.MustCompile(`spent_budget:\s*(\d+)`)
	rePayout       = regexp.MustCompile(`payout:\s*(\d+)`)
	reAmount       = regexp.MustCompile(`amount:\s*(\d+)`)
	reOwner        = regexp.MustCompile(`owner:\s*(aleo1[a-z0-9]+)`)
	rePayrollOwner = regexp.MustCompile(`payroll_owner:\s*(aleo1[a-z0-9]+)`)
	reContributor  = regexp.MustCompile(`contributor:\s*(aleo1[a-z0-9]+)`)
	rePaid         = regexp.MustCompile(`paid:\s*(true|false)`)

	// Type annotations appended by the ledger's plaintext syntax:
	// "5000000u64", "8170186…field", "aleo1abc.private".
	reUnitSuffix       = regexp.MustCompile(`(u\d+|i\d+|field|group|scalar)$`)
	reVisibilitySuffix = regexp.MustCompile(`\.(private|public)$`)
)

// kindLabels maps each record kind to the labels backends report for it.
var kindLabels = map[domain.RecordKind][]string{
	domain.KindCredit:      {"credits", "credit"},
	domain.KindPayroll:     {"payroll"},
	domain.KindContributor: {"contributor"},
	domain.KindReceipt:     {"paymentreceipt", "payment_receipt", "receipt"},
}

// Normalizer implements ports.RecordNormalizer as one explicit multi-strategy
// extraction pipeline per field, tried in a fixed priority order: structured
// field, then plaintext pattern, then zero/absent. It never returns an error
// for malformed input.
type Normalizer struct {
	log zerolog.Logger
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(log zerolog.Logger) *Normalizer {
	return &Normalizer{log: log}
}

// Credit normalizes a raw fungible credit note.
func (n *Normalizer) Credit(raw ports.RawRecord, requestingAddress string) (*domain.CreditRecord, bool) {
	if !n.admissible(raw, domain.KindCredit) {
		return nil, false
	}
	plaintext := n.plaintext(raw)
	return &domain.CreditRecord{
		ID:         n.identity(raw, plaintext),
		Owner:      n.owner(raw, plaintext, requestingAddress),
		Amount:     n.numeric(raw, plaintext, reMicrocredits, "microcredits", "amount"),
		Ciphertext: n.ciphertext(raw),
		Plaintext:  plaintext,
	}, true
}

// Payroll normalizes a raw payroll budget tracker.
func (n *Normalizer) Payroll(raw ports.RawRecord, requestingAddress string) (*domain.PayrollRecord, bool) {
	if !n.admissible(raw, domain.KindPayroll) {
		return nil, false
	}
	plaintext := n.plaintext(raw)
	return &domain.PayrollRecord{
		ID:          n.identity(raw, plaintext),
		Owner:       n.owner(raw, plaintext, requestingAddress),
		TotalBudget: n.numeric(raw, plaintext, reTotalBudget, "total_budget", "totalBudget"),
		SpentBudget: n.numeric(raw, plaintext, reSpentBudget, "spent_budget", "spentBudget"),
		Ciphertext:  n.ciphertext(raw),
		Plaintext:   plaintext,
	}, true
}

// Contributor normalizes a raw payout obligation.
func (n *Normalizer) Contributor(raw ports.RawRecord, requestingAddress string) (*domain.ContributorRecord, bool) {
	if !n.admissible(raw, domain.KindContributor) {
		return nil, false
	}
	plaintext := n.plaintext(raw)
	return &domain.ContributorRecord{
		ID:           n.identity(raw, plaintext),
		Owner:        n.owner(raw, plaintext, requestingAddress),
		PayrollOwner: n.address(raw, plaintext, rePayrollOwner, "payroll_owner", "payrollOwner"),
		Contributor:  n.address(raw, plaintext, reContributor, "contributor"),
		Payout:       n.numeric(raw, plaintext, rePayout, "payout"),
		Paid:         n.paid(raw, plaintext),
		Ciphertext:   n.ciphertext(raw),
		Plaintext:    plaintext,
	}, true
}

// Receipt normalizes a raw payment receipt.
func (n *Normalizer) Receipt(raw ports.RawRecord, requestingAddress string) (*domain.PaymentReceiptRecord, bool) {
	if !n.admissible(raw, domain.KindReceipt) {
		return nil, false
	}
	plaintext := n.plaintext(raw)
	return &domain.PaymentReceiptRecord{
		ID:          n.identity(raw, plaintext),
		Owner:       n.owner(raw, plaintext, requestingAddress),
		Contributor: n.address(raw, plaintext, reContributor, "contributor"),
		Amount:      n.numeric(raw, plaintext, reAmount, "amount"),
		Ciphertext:  n.ciphertext(raw),
	}, true
}

// admissible applies the exclusion rules before any field mapping: records
// flagged spent are dropped, as are records whose kind label (or, absent a
// label, heuristically inferred kind) does not match.
func (n *Normalizer) admissible(raw ports.RawRecord, kind domain.RecordKind) bool {
	if raw == nil {
		return false
	}
	for _, key := range []string{"spent", "isSpent", "is_spent"} {
		if v, ok := lookup(raw, key); ok && truthy(v) {
			return false
		}
	}

	if label := strings.ToLower(stringField(raw, "recordName", "record_name", "name", "type")); label != "" {
		for _, accepted := range kindLabels[kind] {
			if label == accepted {
				return true
			}
		}
		return false
	}

	// No label: infer from which fields appear.
	if inferred := inferKind(raw, n.plaintext(raw)); inferred != "" {
		return inferred == kind
	}
	return true
}

// inferKind guesses a record's kind from its field shape. A budget field
// implies payroll; payout implies contributor; a contributor field with a
// plain amount implies receipt; microcredits implies credit.
func inferKind(raw ports.RawRecord, plaintext string) domain.RecordKind {
	has := func(keys []string, re *regexp.Regexp) bool {
		for _, k := range keys {
			if _, ok := lookup(raw, k); ok {
				return true
			}
		}
		return re.MatchString(plaintext)
	}

	switch {
	case has([]string{"total_budget", "totalBudget", "spent_budget", "spentBudget"}, reTotalBudget):
		return domain.KindPayroll
	case has([]string{"payout"}, rePayout):
		return domain.KindContributor
	case has([]string{"contributor"}, reContributor) && has([]string{"amount"}, reAmount):
		return domain.KindReceipt
	case has([]string{"microcredits"}, reMicrocredits):
		return domain.KindCredit
	default:
		return ""
	}
}

// identity derives the record's stable id: commitment, then a wallet-supplied
// id, nonce or serial, then a content hash of the ciphertext or plaintext,
// then a random value as the last resort (logged as degraded).
func (n *Normalizer) identity(raw ports.RawRecord, plaintext string) string {
	for _, key := range []string{"commitment", "id", "nonce", "_nonce", "serialNumber", "serial_number", "serial"} {
		if v, ok := lookup(raw, key); ok {
			if s := stripAnnotations(toString(v)); s != "" {
				return s
			}
		}
	}

	if content := n.ciphertext(raw) + plaintext; content != "" {
		sum := blake2b.Sum256([]byte(content))
		return hex.EncodeToString(sum[:16])
	}

	id := uuid.NewString()
	n.log.Warn().Str("record_id", id).Msg("no deterministic id source on record, assigned random id")
	return id
}

// owner extracts the record owner, falling back to the requesting wallet's
// own address when no well-formed address is recoverable.
func (n *Normalizer) owner(raw ports.RawRecord, plaintext, requestingAddress string) string {
	if addr := n.address(raw, plaintext, reOwner, "owner"); addr != "" {
		return addr
	}
	return requestingAddress
}

// address extracts an address field: structured first, then plaintext pattern.
func (n *Normalizer) address(raw ports.RawRecord, plaintext string, re *regexp.Regexp, keys ...string) string {
	for _, key := range keys {
		if v, ok := lookup(raw, key); ok {
			// Only the visibility suffix is stripped here: unit stripping
			// could eat the tail of a legitimate address.
			if s := reVisibilitySuffix.ReplaceAllString(strings.TrimSpace(toString(v)), ""); domain.IsAddress(s) {
				return s
			}
		}
	}
	if m := re.FindStringSubmatch(plaintext); m != nil {
		return m[1]
	}
	return ""
}

// numeric extracts a non-negative integer field: structured (unit suffix
// stripped) first, then plaintext pattern, then zero.
func (n *Normalizer) numeric(raw ports.RawRecord, plaintext string, re *regexp.Regexp, keys ...string) uint64 {
	for _, key := range keys {
		if v, ok := lookup(raw, key); ok {
			if value, parsed := parseAmount(v); parsed {
				return value
			}
		}
	}
	if m := re.FindStringSubmatch(plaintext); m != nil {
		if value, err := strconv.ParseUint(m[1], 10, 64); err == nil {
			return value
		}
	}
	return 0
}

func (n *Normalizer) paid(raw ports.RawRecord, plaintext string) bool {
	if v, ok := lookup(raw, "paid"); ok {
		return truthy(v)
	}
	if m := rePaid.FindStringSubmatch(plaintext); m != nil {
		return m[1] == "true"
	}
	return false
}

func (n *Normalizer) ciphertext(raw ports.RawRecord) string {
	return stringField(raw, "ciphertext", "recordCiphertext", "record_ciphertext")
}

func (n *Normalizer) plaintext(raw ports.RawRecord) string {
	return stringField(raw, "plaintext", "recordPlaintext", "record_plaintext")
}

// lookup checks the top level first, then the backend's `data` submap.
func lookup(raw ports.RawRecord, key string) (any, bool) {
	if v, ok := raw[key]; ok && v != nil {
		return v, true
	}
	if data, ok := raw["data"].(map[string]any); ok {
		if v, ok := data[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func stringField(raw ports.RawRecord, keys ...string) string {
	for _, key := range keys {
		if v, ok := lookup(raw, key); ok {
			if s, isString := v.(string); isString && s != "" {
				return s
			}
		}
	}
	return ""
}

// parseAmount converts a structured field value to a non-negative integer,
// stripping any unit annotation first. The second return is false when the
// value does not carry a number at all.
func parseAmount(v any) (uint64, bool) {
	switch value := v.(type) {
	case uint64:
		return value, true
	case int:
		if value < 0 {
			return 0, true
		}
		return uint64(value), true
	case int64:
		if value < 0 {
			return 0, true
		}
		return uint64(value), true
	case float64: // JSON numbers decode as float64
		if value < 0 {
			return 0, true
		}
		return uint64(value), true
	case string:
		s := stripAnnotations(value)
		parsed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// stripAnnotations removes ledger type annotations from a textual value:
// visibility suffixes (".private"/".public") and unit suffixes ("u64").
func stripAnnotations(s string) string {
	s = strings.TrimSpace(s)
	s = reVisibilitySuffix.ReplaceAllString(s, "")
	return reUnitSuffix.ReplaceAllString(s, "")
}

func toString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case uint64:
		return strconv.FormatUint(value, 10)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}

// truthy accepts any spelling of a set flag a backend might use.
func truthy(v any) bool {
	switch value := v.(type) {
	case bool:
		return value
	case string:
		s := strings.ToLower(strings.TrimSpace(value))
		return s == "true" || s == "1" || s == "yes" || s == "spent"
	case float64:
		return value != 0
	case int:
		return value != 0
	default:
		return false
	}
}
