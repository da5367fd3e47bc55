package public

import (
	handlershared "github.com/qamees-next/internal/http/handlers/shared"
	"github.com/qamees-next/internal/http/response"
	"github.com/qamees-next/internal/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

var captchaErrors = handlershared.ErrorRules{
	{Target: service.ErrCaptchaRequired, Code: response.CodeBadRequest, Key: "error.captcha_required"},
	{Target: service.ErrCaptchaInvalid, Code: response.CodeBadRequest, Key: "error.captcha_invalid"},
	{Target: service.ErrCaptchaConfigInvalid, Code: response.CodeInternal, Key: "error.captcha_config"},
}

var cartItemErrors = handlershared.ErrorRules{
	{Target: service.ErrCartItemInvalid, Code: response.CodeBadRequest, Key: "error.cart_item_invalid"},
	{Target: service.ErrProductUnavailable, Code: response.CodeBadRequest, Key: "error.product_unavailable"},
	{Target: service.ErrVariantInvalid, Code: response.CodeBadRequest, Key: "error.variant_invalid"},
	{Target: service.ErrVariantNotFound, Code: response.CodeNotFound, Key: "error.variant_not_found"},
}

var checkoutFormErrors = handlershared.ErrorRules{
	{Target: service.ErrCartEmpty, Code: response.CodeBadRequest, Key: "error.cart_empty"},
	{Target: service.ErrCustomerNameEmpty, Code: response.CodeBadRequest, Key: "error.customer_name_empty"},
	{Target: service.ErrInvalidEmail, Code: response.CodeBadRequest, Key: "error.email_invalid"},
	{Target: service.ErrInvalidPhone, Code: response.CodeBadRequest, Key: "error.phone_invalid"},
	{Target: service.ErrShippingAddressMiss, Code: response.CodeBadRequest, Key: "error.address_empty"},
	{Target: service.ErrShippingCityMiss, Code: response.CodeBadRequest, Key: "error.city_empty"},
}

var customDesignErrors = handlershared.ErrorRules{
	{Target: service.ErrDesignInvalid, Code: response.CodeBadRequest, Key: "error.design_invalid"},
	{Target: service.ErrInvalidEmail, Code: response.CodeBadRequest, Key: "error.email_invalid"},
	{Target: service.ErrInvalidPhone, Code: response.CodeBadRequest, Key: "error.phone_invalid"},
	{Target: service.ErrCustomerNameEmpty, Code: response.CodeBadRequest, Key: "error.customer_name_empty"},
}

func respondCartItemError(c *gin.Context, err error) {
	cartItemErrors.Respond(c, err, "error.product_fetch_failed")
}

func respondCheckoutError(c *gin.Context, err error) {
	checkoutFormErrors.With(captchaErrors).Respond(c, err, "error.checkout_failed")
}

func respondCustomDesignError(c *gin.Context, err error) {
	customDesignErrors.With(captchaErrors).Respond(c, err, "error.design_submit_failed")
}
