package domain

import "regexp"

// RecordKind identifies which ledger record type a raw wallet payload maps to.
type RecordKind string

const (
	KindCredit      RecordKind = "credit"
	KindPayroll     RecordKind = "payroll"
	KindContributor RecordKind = "contributor"
	KindReceipt     RecordKind = "receipt"
)

// addressPattern matches a ledger account address.
var addressPattern = regexp.MustCompile(`^aleo1[a-z0-9]+$`)

// IsAddress reports whether s is a well-formed account address.
func IsAddress(s string) bool {
	return addressPattern.MatchString(s)
}

// CreditRecord is an unspent, owner-held fungible note. It is consumed in full
// the instant it is used as a transaction input; the client only learns about
// consumption on the next refresh.
type CreditRecord struct {
	ID         string `json:"id"`
	Owner      string `json:"owner"`
	Amount     uint64 `json:"amount"` // microcredits
	Ciphertext string `json:"ciphertext,omitempty"`
	Plaintext  string `json:"plaintext,omitempty"`
}

// Usable reports whether the credit can serve as a transaction input. Records
// with amount 0 or with neither ciphertext nor plaintext are unusable, not
// merely empty.
func (r *CreditRecord) Usable() bool {
	return r.Amount > 0 && (r.Ciphertext != "" || r.Plaintext != "")
}

// Input returns the form of the record passed to the program as a consuming
// input. Plaintext is preferred; wallet backends that withhold it accept the
// ciphertext instead.
func (r *CreditRecord) Input() string {
	if r.Plaintext != "" {
		return r.Plaintext
	}
	return r.Ciphertext
}

// PayrollRecord is one payroll's encrypted budget tracker. Every mutating
// operation consumes the old commitment and creates a new one, so a held
// reference goes stale the moment any operation spending it finalizes.
type PayrollRecord struct {
	ID          string `json:"id"`
	Owner       string `json:"owner"`
	TotalBudget uint64 `json:"total_budget"`
	SpentBudget uint64 `json:"spent_budget"`
	Ciphertext  string `json:"ciphertext,omitempty"`
	Plaintext   string `json:"plaintext,omitempty"`
}

// RemainingBudget is derived, never stored. A backend reporting
// spent > total yields 0 rather than underflowing.
func (r *PayrollRecord) RemainingBudget() uint64 {
	if r.SpentBudget > r.TotalBudget {
		return 0
	}
	return r.TotalBudget - r.SpentBudget
}

func (r *PayrollRecord) Input() string {
	if r.Plaintext != "" {
		return r.Plaintext
	}
	return r.Ciphertext
}

// ContributorRecord is one committed, not-yet-necessarily-paid payout
// obligation. It joins to a payroll by owner address equality; there is no
// direct foreign key on the ledger.
type ContributorRecord struct {
	ID           string `json:"id"`
	Owner        string `json:"owner"`
	PayrollOwner string `json:"payroll_owner"`
	Contributor  string `json:"contributor"`
	Payout       uint64 `json:"payout"`
	Paid         bool   `json:"paid"`
	Ciphertext   string `json:"ciphertext,omitempty"`
	Plaintext    string `json:"plaintext,omitempty"`
}

// BelongsTo reports whether the obligation is scoped to the given payroll.
func (r *ContributorRecord) BelongsTo(p *PayrollRecord) bool {
	return r.PayrollOwner != "" && r.PayrollOwner == p.Owner
}

func (r *ContributorRecord) Input() string {
	if r.Plaintext != "" {
		return r.Plaintext
	}
	return r.Ciphertext
}

// PaymentReceiptRecord is proof of a completed payout, owned by the
// contributor. Created only by a finalized payment; never mutated.
type PaymentReceiptRecord struct {
	ID          string `json:"id"`
	Owner       string `json:"owner"`
	Contributor string `json:"contributor"`
	Amount      uint64 `json:"amount"`
	Ciphertext  string `json:"ciphertext,omitempty"`
}

// RecordSet is one full reconciliation snapshot. Each category is fetched
// independently; a failed category yields an empty slice plus its error so one
// failing fetch never blocks the others.
type RecordSet struct {
	Credits      []CreditRecord         `json:"credits"`
	Payrolls     []PayrollRecord        `json:"payrolls"`
	Contributors []ContributorRecord    `json:"contributors"`
	Receipts     []PaymentReceiptRecord `json:"receipts"`
	Errors       map[RecordKind]string  `json:"errors,omitempty"`
}
