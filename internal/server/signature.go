package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	quotedomain "github.com/colorhaus/colorhaus/internal/quote/domain"
	signaturedomain "github.com/colorhaus/colorhaus/internal/signature/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) GetSignatureSettings(c *gin.Context) {
	resp, err := s.signatureSvc.Settings(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateSignatureSettings(c *gin.Context) {
	var req signaturedomain.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.signatureSvc.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// ListQuoteSignatures loads the quote first so ownership rules apply.
func (s *Server) ListQuoteSignatures(c *gin.Context) {
	rawID := strings.TrimSpace(c.Param("id"))
	if _, err := s.quoteSvc.Get(c.Request.Context(), rawID); err != nil {
		AbortWithError(c, err)
		return
	}

	quoteID, err := snowflake.ParseString(rawID)
	if err != nil {
		AbortWithError(c, quotedomain.ErrInvalidID)
		return
	}

	resp, err := s.signatureSvc.ListByQuote(c.Request.Context(), quoteID.Int64())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
