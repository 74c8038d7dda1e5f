package server

import (
	"net/http"

	samplerequestdomain "github.com/colorhaus/colorhaus/internal/samplerequest/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateSampleRequests(c *gin.Context) {
	var req samplerequestdomain.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.sampleRequestSvc.CreateBatch(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListSampleRequests(c *gin.Context) {
	resp, err := s.sampleRequestSvc.ListOwn(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
