package admin

import (
	handlershared "github.com/qamees-next/internal/http/handlers/shared"
	"github.com/qamees-next/internal/http/response"
	"github.com/qamees-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductRequest 创建/更新商品请求
type ProductRequest struct {
	Title            string          `json:"title" binding:"required"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price" binding:"required"`
	Category         string          `json:"category" binding:"required"`
	ImageURL         string          `json:"image_url"`
	AdditionalImages []string        `json:"additional_images"`
	StockQuantity    int             `json:"stock_quantity"`
	IsActive         *bool           `json:"is_active"`
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Title:            r.Title,
		Description:      r.Description,
		Price:            r.Price,
		Category:         r.Category,
		ImageURL:         r.ImageURL,
		AdditionalImages: r.AdditionalImages,
		StockQuantity:    r.StockQuantity,
		IsActive:         r.IsActive,
	}
}

// ProductVariantRequest 商品规格
type ProductVariantRequest struct {
	Size          string           `json:"size"`
	Color         string           `json:"color"`
	SKU           string           `json:"sku"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity int              `json:"stock_quantity"`
}

// ReplaceVariantsRequest 整体替换规格请求
type ReplaceVariantsRequest struct {
	Variants []ProductVariantRequest `json:"variants"`
}

// GetAdminProducts 后台商品列表
func (h *Handler) GetAdminProducts(c *gin.Context) {
	page, pageSize := handlershared.QueryPagination(c)
	products, total, err := h.ProductService.ListAdmin(c.Query("category"), c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// GetAdminProduct 后台商品详情（含下架商品）
func (h *Handler) GetAdminProduct(c *gin.Context) {
	id, ok := handlershared.PathID(c, "error.product_not_found")
	if !ok {
		return
	}
	product, err := h.ProductService.GetAdminByID(id)
	if err != nil {
		productErrors.Respond(c, err, "error.product_fetch_failed")
		return
	}
	response.Success(c, product)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.product_invalid", nil)
		return
	}
	product, err := h.ProductService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		productErrors.Respond(c, err, "error.product_create_failed")
		return
	}
	response.Success(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := handlershared.PathID(c, "error.product_not_found")
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.product_invalid", nil)
		return
	}
	product, err := h.ProductService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		productErrors.Respond(c, err, "error.product_update_failed")
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := handlershared.PathID(c, "error.product_not_found")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(c.Request.Context(), id); err != nil {
		productErrors.Respond(c, err, "error.product_delete_failed")
		return
	}
	response.Success(c, nil)
}

// ReplaceProductVariants 整体替换商品规格
func (h *Handler) ReplaceProductVariants(c *gin.Context) {
	id, ok := handlershared.PathID(c, "error.product_not_found")
	if !ok {
		return
	}
	var req ReplaceVariantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.variant_invalid", nil)
		return
	}
	inputs := make([]service.ProductVariantInput, 0, len(req.Variants))
	for _, v := range req.Variants {
		inputs = append(inputs, service.ProductVariantInput{
			Size:          v.Size,
			Color:         v.Color,
			SKU:           v.SKU,
			Price:         v.Price,
			StockQuantity: v.StockQuantity,
		})
	}
	product, err := h.ProductService.ReplaceVariants(c.Request.Context(), id, inputs)
	if err != nil {
		productErrors.Respond(c, err, "error.product_update_failed")
		return
	}
	response.Success(c, product)
}
