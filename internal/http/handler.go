package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/nurpe/gigpay/internal/http/middleware"
	"github.com/nurpe/gigpay/internal/model"
	"github.com/nurpe/gigpay/internal/service"
)

type Handler struct {
	contracts *service.ContractService
	payments  *service.PaymentService
	deposits  *service.DepositService
	reports   *service.ReportService
	log       zerolog.Logger
}

func NewHandler(
	contracts *service.ContractService,
	payments *service.PaymentService,
	deposits *service.DepositService,
	reports *service.ReportService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		contracts: contracts,
		payments:  payments,
		deposits:  deposits,
		reports:   reports,
		log:       log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/")
	protected.Use(authMiddleware)
	protected.GET("/contracts/:id", h.getContract)
	protected.GET("/contracts", h.listContracts)
	protected.GET("/jobs/unpaid", h.listUnpaidJobs)
	protected.POST("/jobs/:job_id/pay", h.payJob)
	protected.POST("/balances/deposit/:userId", h.deposit)
	protected.GET("/jobs/statement", h.statement)
	protected.GET("/admin/best-profession", h.bestProfession)
	protected.GET("/admin/best-clients", h.bestClients)
}

type contractResponse struct {
	ID           uuid.UUID `json:"id"`
	ClientID     uuid.UUID `json:"clientId"`
	ContractorID uuid.UUID `json:"contractorId"`
	Terms        string    `json:"terms"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type jobResponse struct {
	ID           uuid.UUID  `json:"id"`
	ContractID   uuid.UUID  `json:"contractId"`
	Description  string     `json:"description"`
	Price        string     `json:"price"`
	Paid         bool       `json:"paid"`
	PaymentDate  *time.Time `json:"paymentDate"`
	ClientID     uuid.UUID  `json:"clientId"`
	ContractorID uuid.UUID  `json:"contractorId"`
}

func (h *Handler) getContract(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return
	}

	contract, err := h.contracts.GetContract(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponse(*contract))
}

func (h *Handler) listContracts(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	contracts, err := h.contracts.ListContracts(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response := make([]contractResponse, 0, len(contracts))
	for _, contract := range contracts {
		response = append(response, toContractResponse(contract))
	}
	c.JSON(http.StatusOK, response)
}

func (h *Handler) listUnpaidJobs(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	jobs, err := h.payments.ListUnpaidJobs(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response := make([]jobResponse, 0, len(jobs))
	for _, job := range jobs {
		response = append(response, toJobResponse(job))
	}
	c.JSON(http.StatusOK, response)
}

func (h *Handler) payJob(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	jobID, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	if err := h.payments.PayJob(c.Request.Context(), jobID, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

type depositRequest struct {
	DepositAmount decimal.Decimal `json:"depositAmount"`
}

func (h *Handler) deposit(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var req depositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.deposits.Deposit(c.Request.Context(), targetID, req.DepositAmount, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) statement(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	start, err := parseDate(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start"})
		return
	}
	end, err := parseDate(c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end"})
		return
	}

	format := service.StatementFormat(strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", "excel"))))

	result, err := h.reports.Statement(c.Request.Context(), principal, start, end, format)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

func (h *Handler) bestProfession(c *gin.Context) {
	start, err := parseDate(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start"})
		return
	}
	end, err := parseDate(c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end"})
		return
	}

	row, err := h.reports.BestProfession(c.Request.Context(), start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profession": row.Profession,
		"earned":     row.Earned.StringFixed(2),
	})
}

func (h *Handler) bestClients(c *gin.Context) {
	start, err := parseDate(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start"})
		return
	}
	end, err := parseDate(c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
	}

	rows, err := h.reports.BestClients(c.Request.Context(), start, end, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		response = append(response, gin.H{
			"id":       row.ID,
			"fullName": row.FullName,
			"paid":     row.Paid.StringFixed(2),
		})
	}
	c.JSON(http.StatusOK, response)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInsufficientFunds),
		errors.Is(err, service.ErrDepositCapExceeded):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrNotFound.Error()})
	case errors.Is(err, service.ErrTransferFailed):
		h.log.Error().Err(err).Msg("transfer failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func toContractResponse(contract model.Contract) contractResponse {
	return contractResponse{
		ID:           contract.ID,
		ClientID:     contract.ClientID,
		ContractorID: contract.ContractorID,
		Terms:        contract.Terms,
		Status:       string(contract.Status),
		CreatedAt:    contract.CreatedAt,
	}
}

func toJobResponse(job model.UnpaidJob) jobResponse {
	return jobResponse{
		ID:           job.ID,
		ContractID:   job.ContractID,
		Description:  job.Description,
		Price:        job.Price.StringFixed(2),
		Paid:         job.Paid,
		PaymentDate:  job.PaymentDate,
		ClientID:     job.ClientID,
		ContractorID: job.ContractorID,
	}
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
