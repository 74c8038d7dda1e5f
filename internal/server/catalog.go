package server

import (
	"net/http"
	"strings"

	catalogdomain "github.com/colorhaus/colorhaus/internal/catalog/domain"
	"github.com/gin-gonic/gin"
)

type createProductRequest struct {
	Code          string         `json:"code"`
	Name          string         `json:"name"`
	Description   *string        `json:"description"`
	CategoryID    string         `json:"category_id"`
	FinishID      string         `json:"finish_id"`
	TechnicalData map[string]any `json:"technical_data"`
}

type updateProductRequest struct {
	Name          *string        `json:"name"`
	Description   *string        `json:"description"`
	TechnicalData map[string]any `json:"technical_data"`
}

type createVariantRequest struct {
	TextureID string  `json:"texture_id"`
	ColorID   string  `json:"color_id"`
	Price     string  `json:"price"`
	ImageURL  *string `json:"image_url"`
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.Create(c.Request.Context(), catalogdomain.CreateRequest{
		Code:          req.Code,
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		FinishID:      req.FinishID,
		TechnicalData: req.TechnicalData,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListProducts(c *gin.Context) {
	var query catalogdomain.ListRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.List(c.Request.Context(), query)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetProductByID(c *gin.Context) {
	resp, err := s.catalogSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.Update(c.Request.Context(), catalogdomain.UpdateRequest{
		ID:            strings.TrimSpace(c.Param("id")),
		Name:          req.Name,
		Description:   req.Description,
		TechnicalData: req.TechnicalData,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ArchiveProduct(c *gin.Context) {
	resp, err := s.catalogSvc.Archive(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateProductVariant(c *gin.Context) {
	var req createVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.CreateVariant(c.Request.Context(), catalogdomain.CreateVariantRequest{
		ProductID: strings.TrimSpace(c.Param("id")),
		TextureID: req.TextureID,
		ColorID:   req.ColorID,
		Price:     req.Price,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListProductVariants(c *gin.Context) {
	includeArchived := parseBoolParam(c.Query("include_archived"))
	resp, err := s.catalogSvc.ListVariants(c.Request.Context(), strings.TrimSpace(c.Param("id")), includeArchived)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetVariantByID(c *gin.Context) {
	resp, err := s.catalogSvc.GetVariant(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ArchiveProductVariant(c *gin.Context) {
	resp, err := s.catalogSvc.ArchiveVariant(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListReferences(c *gin.Context) {
	includeArchived := parseBoolParam(c.Query("include_archived"))
	resp, err := s.catalogSvc.References(c.Request.Context(), includeArchived)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
