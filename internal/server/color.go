package server

import (
	"net/http"
	"strings"

	colordomain "github.com/colorhaus/colorhaus/internal/color/domain"
	"github.com/gin-gonic/gin"
)

type createColorRequest struct {
	Name    string  `json:"name"`
	Hex     string  `json:"hex"`
	RAL     *string `json:"ral"`
	Pantone *string `json:"pantone"`
}

type updateColorRequest struct {
	Name    *string `json:"name"`
	Hex     *string `json:"hex"`
	RAL     *string `json:"ral"`
	Pantone *string `json:"pantone"`
}

func (s *Server) CreateColor(c *gin.Context) {
	var req createColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.colorSvc.Create(c.Request.Context(), colordomain.CreateRequest{
		Name:    req.Name,
		Hex:     req.Hex,
		RAL:     req.RAL,
		Pantone: req.Pantone,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListColors(c *gin.Context) {
	var query colordomain.ListRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.colorSvc.List(c.Request.Context(), query)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetColorByID(c *gin.Context) {
	resp, err := s.colorSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateColor(c *gin.Context) {
	var req updateColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.colorSvc.Update(c.Request.Context(), colordomain.UpdateRequest{
		ID:      strings.TrimSpace(c.Param("id")),
		Name:    req.Name,
		Hex:     req.Hex,
		RAL:     req.RAL,
		Pantone: req.Pantone,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ArchiveColor(c *gin.Context) {
	resp, err := s.colorSvc.Archive(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
