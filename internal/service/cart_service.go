package service

import (
	"strings"

	"github.com/qamees-next/internal/cart"
	"github.com/qamees-next/internal/models"
	"github.com/qamees-next/internal/repository"
)

// AddCartItemInput 加入购物车输入
type AddCartItemInput struct {
	ProductID string
	VariantID string
	Quantity  int
}

// CartService 购物车服务：负责把商品/规格转换为购物车快照
type CartService struct {
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(productRepo repository.ProductRepository) *CartService {
	return &CartService{productRepo: productRepo}
}

// BuildItem 读取商品并生成购物车项快照
// 有规格的商品必须指定规格，规格价格优先于商品价格；数量需在 1..cart.MaxQuantity 之间
func (s *CartService) BuildItem(input AddCartItemInput) (cart.Item, error) {
	productID := strings.TrimSpace(input.ProductID)
	variantID := strings.TrimSpace(input.VariantID)
	if productID == "" || input.Quantity < 1 || input.Quantity > cart.MaxQuantity {
		return cart.Item{}, ErrCartItemInvalid
	}

	product, err := s.productRepo.GetByID(productID, true)
	if err != nil {
		return cart.Item{}, err
	}
	if product == nil {
		return cart.Item{}, ErrProductUnavailable
	}

	if variantID == "" {
		if len(product.Variants) > 0 {
			return cart.Item{}, ErrVariantInvalid
		}
		return cart.Item{
			Product:   SnapshotProduct(product, nil),
			VariantID: product.ID,
			Quantity:  input.Quantity,
		}, nil
	}

	variant, err := s.productRepo.GetVariant(product.ID, variantID)
	if err != nil {
		return cart.Item{}, err
	}
	if variant == nil {
		return cart.Item{}, ErrVariantNotFound
	}
	return cart.Item{
		Product:     SnapshotProduct(product, variant),
		VariantID:   variant.ID,
		VariantInfo: variant.Label(),
		Quantity:    input.Quantity,
	}, nil
}

// SnapshotProduct 生成购物车商品快照
func SnapshotProduct(product *models.Product, variant *models.ProductVariant) cart.Product {
	snapshot := cart.Product{
		ID:               product.ID,
		Title:            product.Title,
		Description:      product.Description,
		Price:            product.Price.Decimal,
		Category:         product.Category,
		ImageURL:         product.ImageURL,
		AdditionalImages: append([]string(nil), product.AdditionalImages...),
		StockQuantity:    product.StockQuantity,
		IsActive:         product.IsActive,
	}
	if variant != nil {
		if variant.Price != nil {
			snapshot.Price = variant.Price.Decimal
		}
		snapshot.StockQuantity = variant.StockQuantity
	}
	return snapshot
}
