package handler

import (
	"private-payroll-gateway/internal/core/ports"
	"private-payroll-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// RecordHandler exposes the wallet's normalized record view. All endpoints
// are read-only and never fail outright: fetch problems surface as empty
// categories with per-category errors in the snapshot.
type RecordHandler struct {
	recordSvc ports.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordSvc ports.RecordService) *RecordHandler {
	return &RecordHandler{recordSvc: recordSvc}
}

// Snapshot handles GET /api/v1/records.
func (h *RecordHandler) Snapshot(c *gin.Context) {
	response.OK(c, h.recordSvc.Snapshot(c.Request.Context()))
}

// Credits handles GET /api/v1/records/credits.
func (h *RecordHandler) Credits(c *gin.Context) {
	response.OK(c, gin.H{"credits": h.recordSvc.Credits(c.Request.Context())})
}

// Payrolls handles GET /api/v1/records/payrolls.
func (h *RecordHandler) Payrolls(c *gin.Context) {
	response.OK(c, gin.H{"payrolls": h.recordSvc.Payrolls(c.Request.Context())})
}

// Contributors handles GET /api/v1/records/contributors.
func (h *RecordHandler) Contributors(c *gin.Context) {
	response.OK(c, gin.H{"contributors": h.recordSvc.Contributors(c.Request.Context())})
}

// Receipts handles GET /api/v1/records/receipts.
func (h *RecordHandler) Receipts(c *gin.Context) {
	response.OK(c, gin.H{"receipts": h.recordSvc.Receipts(c.Request.Context())})
}
