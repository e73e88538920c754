package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/degenscope/scanner-backend/internal/logger"
	"github.com/degenscope/scanner-backend/internal/services"
	"github.com/degenscope/scanner-backend/internal/types"
)

var contractAddressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

const maxHistoryLimit = 100

type AnalysisHandler struct {
	log             *logger.Logger
	analysisService services.AnalysisService
}

func NewAnalysisHandler(log *logger.Logger, analysisService services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		log:             log.With("handler", "AnalysisHandler"),
		analysisService: analysisService,
	}
}

type analyzeRequest struct {
	ContractAddress string `json:"contract_address"`
	Chain           string `json:"chain"`
}

func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	address := strings.ToLower(strings.TrimSpace(req.ContractAddress))
	if !contractAddressRe.MatchString(address) {
		RespondError(c, http.StatusBadRequest, "invalid_address", errors.New("contract address must be a 0x-prefixed 40-hex-digit string"))
		return
	}

	chain := strings.ToLower(strings.TrimSpace(req.Chain))
	if chain == "" {
		chain = types.DefaultChain
	}

	result, err := h.analysisService.Analyze(c.Request.Context(), address, chain)
	if err != nil {
		h.log.Error("Analyze failed", "address", address, "chain", chain, "error", err)
		RespondError(c, http.StatusInternalServerError, "analyze_failed", err)
		return
	}
	RespondOK(c, result)
}

func (h *AnalysisHandler) History(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	rows, err := h.analysisService.History(c.Request.Context(), limit)
	if err != nil {
		h.log.Error("History failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_history_failed", err)
		return
	}
	RespondOK(c, rows)
}
