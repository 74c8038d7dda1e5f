package server

import (
	"net/http"

	reportdomain "github.com/colorhaus/colorhaus/internal/report/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) GenerateReport(c *gin.Context) {
	var query struct {
		Period   string `form:"period"`
		Product  string `form:"product"`
		Category string `form:"category"`
		Color    string `form:"color"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.reportSvc.Generate(c.Request.Context(), reportdomain.GenerateRequest{
		Period: query.Period,
		Filters: reportdomain.Filters{
			Product:  query.Product,
			Category: query.Category,
			Color:    query.Color,
		},
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ReportInventory(c *gin.Context) {
	resp, err := s.reportSvc.Inventory(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
