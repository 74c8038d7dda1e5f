package server

import (
	"net/http"
	"strings"

	dosagedomain "github.com/colorhaus/colorhaus/internal/dosage/domain"
	"github.com/gin-gonic/gin"
)

type createDosageRequest struct {
	VariantID   string                      `json:"variant_id"`
	BasePercent string                      `json:"base_percent"`
	Pigments    []dosagedomain.PigmentInput `json:"pigments"`
}

// CreateDosageFormula records a formula under a quote the caller can access.
func (s *Server) CreateDosageFormula(c *gin.Context) {
	quoteID := strings.TrimSpace(c.Param("id"))
	if _, err := s.quoteSvc.Get(c.Request.Context(), quoteID); err != nil {
		AbortWithError(c, err)
		return
	}

	var req createDosageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.dosageSvc.Create(c.Request.Context(), dosagedomain.CreateRequest{
		QuoteID:     quoteID,
		VariantID:   req.VariantID,
		BasePercent: req.BasePercent,
		Pigments:    req.Pigments,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListQuoteDosageFormulas(c *gin.Context) {
	quoteID := strings.TrimSpace(c.Param("id"))
	if _, err := s.quoteSvc.Get(c.Request.Context(), quoteID); err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.dosageSvc.ListByQuote(c.Request.Context(), quoteID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetDosageFormulaByID(c *gin.Context) {
	resp, err := s.dosageSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
