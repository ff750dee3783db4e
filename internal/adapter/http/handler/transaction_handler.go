package handler

import (
	"strconv"

	"private-payroll-gateway/internal/adapter/http/dto"
	"private-payroll-gateway/internal/core/domain"
	"private-payroll-gateway/internal/core/ports"
	"private-payroll-gateway/pkg/apperror"
	"private-payroll-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransactionHandler exposes transaction status probes and the submission
// journal.
type TransactionHandler struct {
	wallet  ports.WalletAdapter
	journal ports.JournalRepository
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(wallet ports.WalletAdapter, journal ports.JournalRepository) *TransactionHandler {
	return &TransactionHandler{wallet: wallet, journal: journal}
}

// Status handles GET /api/v1/transactions/:id. It asks the ledger for the
// current raw status and attaches this client's journal entry when one
// exists.
func (h *TransactionHandler) Status(c *gin.Context) {
	txID := c.Param("id")

	rawStatus, err := h.wallet.TransactionStatus(c.Request.Context(), txID)
	if err != nil {
		response.Error(c, apperror.ErrStatusQueryUnavailable())
		return
	}

	// Journal lookup is best-effort: the transaction may have been submitted
	// by another client.
	entry, err := h.journal.GetByTransactionID(c.Request.Context(), txID)
	if err != nil {
		entry = nil
	}

	var class string
	switch domain.ClassifyStatus(rawStatus) {
	case domain.StatusSuccess:
		class = "success"
	case domain.StatusFailure:
		class = "failure"
	default:
		class = "pending"
	}

	response.OK(c, dto.TransactionStatusResponse{
		TransactionID: txID,
		RawStatus:     rawStatus,
		Class:         class,
		Journal:       entry,
	})
}

// List handles GET /api/v1/transactions, returning this client's recent
// submissions newest first.
func (h *TransactionHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 500 {
		limit = 50
	}

	entries, err := h.journal.ListRecent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	response.OK(c, gin.H{"items": entries, "count": len(entries)})
}
