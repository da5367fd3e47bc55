package repository

import "time"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page         int
	PageSize     int
	Category     string
	Search       string
	OnlyActive   bool
	WithVariants bool
}

// BannerListFilter 查询横幅列表的过滤条件
type BannerListFilter struct {
	Page      int
	PageSize  int
	Search    string
	IsActive  *bool
	OnlyValid bool
	Now       time.Time
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page          int
	PageSize      int
	Status        string
	CustomerEmail string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}

// CustomDesignListFilter 查询定制请求列表的过滤条件
type CustomDesignListFilter struct {
	Page     int
	PageSize int
	Status   string
}
