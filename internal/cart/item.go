package cart

import (
	"github.com/shopspring/decimal"
)

// Product 加入购物车时的商品快照（加入后不再回查，价格与库存可能过期）
type Product struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description,omitempty"`
	Price            decimal.Decimal `json:"price"`
	Category         string          `json:"category,omitempty"`
	ImageURL         string          `json:"image_url,omitempty"`
	AdditionalImages []string        `json:"additional_images,omitempty"`
	StockQuantity    int             `json:"stock_quantity"`
	IsActive         bool            `json:"is_active"`
}

// MaxQuantity 单个条目数量上限，合并与覆盖时饱和到该值
const MaxQuantity = 999

func clampQuantity(quantity int) int {
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}

// Item 购物车行项目，按 VariantID 唯一
type Item struct {
	Product     Product `json:"product"`
	VariantID   string  `json:"variantId"`
	VariantInfo string  `json:"variantInfo,omitempty"`
	Quantity    int     `json:"quantity"`
}

// LineTotal 行小计 = 单价 × 数量
func (i Item) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Snapshot 购物车只读快照
type Snapshot struct {
	Items      []Item          `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func totalPrice(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

func totalItems(items []Item) int {
	sum := 0
	for _, item := range items {
		sum += item.Quantity
	}
	return sum
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for idx, item := range items {
		if len(item.Product.AdditionalImages) > 0 {
			images := make([]string, len(item.Product.AdditionalImages))
			copy(images, item.Product.AdditionalImages)
			item.Product.AdditionalImages = images
		}
		out[idx] = item
	}
	return out
}
