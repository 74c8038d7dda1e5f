package server

import (
	"context"
	"net/http"
	"strings"

	quotedomain "github.com/colorhaus/colorhaus/internal/quote/domain"
	"github.com/gin-gonic/gin"
)

type addQuoteItemRequest struct {
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

func (s *Server) CreateQuote(c *gin.Context) {
	var req quotedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.quoteSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListQuotes(c *gin.Context) {
	var query quotedomain.ListRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.quoteSvc.List(c.Request.Context(), query)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetQuoteByID(c *gin.Context) {
	resp, err := s.quoteSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateQuote(c *gin.Context) {
	var req quotedomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.quoteSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) AddQuoteItem(c *gin.Context) {
	var req addQuoteItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.quoteSvc.AddItem(c.Request.Context(), quotedomain.AddItemRequest{
		QuoteID:   strings.TrimSpace(c.Param("id")),
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) RemoveQuoteItem(c *gin.Context) {
	resp, err := s.quoteSvc.RemoveItem(c.Request.Context(),
		strings.TrimSpace(c.Param("id")),
		strings.TrimSpace(c.Param("itemId")),
	)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) SendQuote(c *gin.Context) {
	s.transitionQuote(c, s.quoteSvc.Send)
}

func (s *Server) ApproveQuote(c *gin.Context) {
	s.transitionQuote(c, s.quoteSvc.Approve)
}

func (s *Server) SignQuote(c *gin.Context) {
	s.transitionQuote(c, s.quoteSvc.Sign)
}

func (s *Server) ArchiveQuote(c *gin.Context) {
	s.transitionQuote(c, s.quoteSvc.Archive)
}

func (s *Server) DeleteQuote(c *gin.Context) {
	if err := s.quoteSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) RenderQuoteDocument(c *gin.Context) {
	document, err := s.quoteSvc.Render(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/pdf", document)
}

func (s *Server) transitionQuote(c *gin.Context, op func(ctx context.Context, id string) (*quotedomain.Response, error)) {
	resp, err := op(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
