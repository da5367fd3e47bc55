package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/qamees-next/internal/cart"
	"github.com/qamees-next/internal/constants"
	"github.com/qamees-next/internal/logger"
	"github.com/qamees-next/internal/metrics"
	"github.com/qamees-next/internal/models"
	"github.com/qamees-next/internal/queue"
	"github.com/qamees-next/internal/repository"

	"gorm.io/gorm"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+0-9\s()-]{10,}$`)
)

// CheckoutForm 结账表单
type CheckoutForm struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	ShippingCity    string
	ShippingCountry string
	Notes           string
	Captcha         CaptchaVerifyPayload
}

// CheckoutPreviewLine 结账预览行
type CheckoutPreviewLine struct {
	ProductID   string       `json:"product_id"`
	VariantID   string       `json:"variant_id"`
	Title       string       `json:"title"`
	VariantInfo string       `json:"variant_info,omitempty"`
	ImageURL    string       `json:"image_url,omitempty"`
	Quantity    int          `json:"quantity"`
	UnitPrice   models.Money `json:"unit_price"`
	LineTotal   models.Money `json:"line_total"`
}

// CheckoutPreview 结账预览
type CheckoutPreview struct {
	Items       []CheckoutPreviewLine `json:"items"`
	TotalItems  int                   `json:"total_items"`
	TotalAmount models.Money          `json:"total_amount"`
}

// CheckoutService 结账服务：购物车 -> 订单 + 订单项
type CheckoutService struct {
	orderRepo      repository.OrderRepository
	captchaService *CaptchaService
	queueClient    *queue.Client
	metrics        *metrics.Metrics
}

// NewCheckoutService 创建结账服务
func NewCheckoutService(orderRepo repository.OrderRepository, captchaService *CaptchaService, queueClient *queue.Client, m *metrics.Metrics) *CheckoutService {
	return &CheckoutService{
		orderRepo:      orderRepo,
		captchaService: captchaService,
		queueClient:    queueClient,
		metrics:        m,
	}
}

// Preview 计算结账预览，不产生副作用
func (s *CheckoutService) Preview(store *cart.Store) CheckoutPreview {
	snapshot := store.Snapshot()
	lines := make([]CheckoutPreviewLine, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		lines = append(lines, CheckoutPreviewLine{
			ProductID:   item.Product.ID,
			VariantID:   item.VariantID,
			Title:       item.Product.Title,
			VariantInfo: item.VariantInfo,
			ImageURL:    item.Product.ImageURL,
			Quantity:    item.Quantity,
			UnitPrice:   models.NewMoneyFromDecimal(item.Product.Price),
			LineTotal:   models.NewMoneyFromDecimal(item.LineTotal()),
		})
	}
	return CheckoutPreview{
		Items:       lines,
		TotalItems:  snapshot.TotalItems,
		TotalAmount: models.NewMoneyFromDecimal(snapshot.TotalPrice),
	}
}

// Checkout 提交订单
// 同一购物车的结账串行执行；订单与订单项在同一事务中写入，提交成功后扣除已下单的数量，失败时购物车保持不变
func (s *CheckoutService) Checkout(ctx context.Context, store *cart.Store, form CheckoutForm, locale string) (*models.Order, error) {
	if store.IsEmpty() {
		s.metrics.CheckoutFailed("empty")
		return nil, ErrCartEmpty
	}

	normalized, err := normalizeCheckoutForm(form)
	if err != nil {
		s.metrics.CheckoutFailed("invalid")
		return nil, err
	}
	if err := s.captchaService.Verify(constants.CaptchaSceneCheckout, form.Captcha); err != nil {
		s.metrics.CheckoutFailed("captcha")
		return nil, err
	}

	var order *models.Order
	err = store.Checkout(ctx, func(snapshot cart.Snapshot) error {
		order = newPendingOrder(normalized, locale)
		items := buildOrderItems(snapshot.Items)
		for _, item := range items {
			order.TotalAmount = order.TotalAmount.Add(item.TotalPrice)
		}
		err := s.orderRepo.Transaction(func(tx *gorm.DB) error {
			return s.orderRepo.WithTx(tx).Create(order, items)
		})
		if err != nil {
			logger.Errorw("checkout_order_create_failed",
				"cart_key", store.Key(),
				"items", len(items),
				"error", err,
			)
		}
		return err
	})
	switch {
	case errors.Is(err, cart.ErrEmpty):
		s.metrics.CheckoutFailed("empty")
		return nil, ErrCartEmpty
	case err != nil:
		s.metrics.CheckoutFailed("persist")
		return nil, err
	}

	s.metrics.CheckoutSucceeded()
	logger.Infow("checkout_order_created",
		"order_id", order.ID,
		"items", len(order.Items),
		"total_amount", order.TotalAmount.String(),
	)

	if err := s.queueClient.Enqueue(queue.OrderPlacedPayload{OrderID: order.ID, Locale: locale}); err != nil {
		logger.Warnw("checkout_enqueue_order_placed_failed",
			"order_id", order.ID,
			"error", err,
		)
	}
	return order, nil
}

func newPendingOrder(form CheckoutForm, locale string) *models.Order {
	return &models.Order{
		CustomerName:    form.CustomerName,
		CustomerEmail:   form.CustomerEmail,
		CustomerPhone:   form.CustomerPhone,
		ShippingAddress: form.ShippingAddress,
		ShippingCity:    form.ShippingCity,
		ShippingCountry: form.ShippingCountry,
		Notes:           form.Notes,
		Status:          constants.OrderStatusPending,
		Locale:          locale,
	}
}

func buildOrderItems(items []cart.Item) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		unitPrice := models.NewMoneyFromDecimal(item.Product.Price)
		out = append(out, models.OrderItem{
			ProductID:    item.Product.ID,
			VariantID:    item.VariantID,
			ProductTitle: item.Product.Title,
			VariantInfo:  item.VariantInfo,
			Quantity:     item.Quantity,
			UnitPrice:    unitPrice,
			TotalPrice:   unitPrice.MulInt(item.Quantity),
		})
	}
	return out
}

func normalizeCheckoutForm(form CheckoutForm) (CheckoutForm, error) {
	form.CustomerName = strings.TrimSpace(form.CustomerName)
	form.CustomerEmail = strings.TrimSpace(form.CustomerEmail)
	form.CustomerPhone = strings.TrimSpace(form.CustomerPhone)
	form.ShippingAddress = strings.TrimSpace(form.ShippingAddress)
	form.ShippingCity = strings.TrimSpace(form.ShippingCity)
	form.ShippingCountry = strings.TrimSpace(form.ShippingCountry)
	form.Notes = strings.TrimSpace(form.Notes)

	if form.CustomerName == "" {
		return form, ErrCustomerNameEmpty
	}
	if !emailPattern.MatchString(form.CustomerEmail) {
		return form, ErrInvalidEmail
	}
	if !phonePattern.MatchString(form.CustomerPhone) {
		return form, ErrInvalidPhone
	}
	if form.ShippingAddress == "" {
		return form, ErrShippingAddressMiss
	}
	if form.ShippingCity == "" {
		return form, ErrShippingCityMiss
	}
	if form.ShippingCountry == "" {
		form.ShippingCountry = constants.DefaultShippingCountry
	}
	return form, nil
}
