package i18n

var enMessages = map[string]string{
	"success": "success",

	"error.bad_request":            "Invalid request",
	"error.unauthorized":           "Unauthorized",
	"error.forbidden":              "Forbidden",
	"error.not_found":              "Resource not found",
	"error.conflict":               "Resource already exists",
	"error.service_unavailable":    "Service is temporarily unavailable",
	"error.too_many_requests":      "Too many requests, please try again later",
	"error.login_too_many":         "Too many login attempts, please retry in %d seconds",
	"error.rate_limit_unavailable": "Rate limiter is unavailable",
	"error.internal":               "Internal server error",
	"error.jwt_secret_missing":     "Authentication is not configured",
	"error.token_invalid":          "Invalid or expired token",
	"error.auth_header_missing":    "Authorization header is missing",
	"error.auth_header_invalid":    "Authorization header is invalid",
	"error.login_failed":           "Login failed",
	"error.login_invalid":          "Invalid username or password",
	"error.captcha_required":       "Please complete the captcha",
	"error.captcha_invalid":        "Captcha is incorrect",
	"error.captcha_config":         "Captcha is not configured correctly",
	"error.captcha_fetch_failed":   "Failed to generate captcha",

	"error.cart_empty":           "Your cart is empty",
	"error.cart_item_invalid":    "Invalid cart item",
	"error.cart_session_invalid": "Invalid cart session",
	"error.checkout_failed":      "Failed to place order, please try again",
	"error.customer_name_empty":  "Please enter your full name",
	"error.email_invalid":        "Please enter a valid email address",
	"error.phone_invalid":        "Please enter a valid phone number",
	"error.address_empty":        "Please enter your shipping address",
	"error.city_empty":           "Please enter your city",

	"error.product_not_found":        "Product not found",
	"error.product_invalid":          "Invalid product data",
	"error.product_category_invalid": "Invalid product category",
	"error.product_price_invalid":    "Price cannot be negative",
	"error.product_unavailable":      "Product is not available",
	"error.product_fetch_failed":     "Failed to load products",
	"error.product_create_failed":    "Failed to create product",
	"error.product_update_failed":    "Failed to update product",
	"error.product_delete_failed":    "Failed to delete product",
	"error.variant_invalid":          "Invalid product variant",
	"error.variant_not_found":        "Product variant not found",

	"error.order_not_found":       "Order not found",
	"error.order_status_invalid":  "Invalid order status",
	"error.order_status_conflict": "Order status was changed by someone else, reload and retry",
	"error.order_fetch_failed":    "Failed to load orders",
	"error.order_update_failed":   "Failed to update order",

	"error.design_not_found":      "Design request not found",
	"error.design_invalid":        "Invalid design request",
	"error.design_status_invalid": "Invalid design request status",
	"error.design_submit_failed":  "Failed to submit design request",
	"error.design_fetch_failed":   "Failed to load design requests",
	"error.design_update_failed":  "Failed to update design request",

	"error.banner_not_found":     "Banner not found",
	"error.banner_invalid":       "Invalid banner data",
	"error.banner_fetch_failed":  "Failed to load banners",
	"error.banner_create_failed": "Failed to create banner",
	"error.banner_update_failed": "Failed to update banner",
	"error.banner_delete_failed": "Failed to delete banner",

	"error.settings_invalid":      "Invalid settings",
	"error.settings_fetch_failed": "Failed to load settings",
	"error.settings_save_failed":  "Failed to save settings",

	"error.dashboard_fetch_failed": "Failed to load analytics",

	"error.upload_failed":        "Upload failed",
	"error.upload_file_missing":  "Please choose a file",
	"error.upload_type_invalid":  "File type is not allowed",
	"error.upload_too_large":     "File is too large",
	"error.upload_scene_invalid": "Invalid upload scene",

	"error.admin_not_found":          "Administrator not found",
	"error.admin_exists":             "Username is already taken",
	"error.admin_role_invalid":       "Invalid administrator role",
	"error.admin_fetch_failed":       "Failed to load administrators",
	"error.admin_create_failed":      "Failed to create administrator",
	"error.password_min_length":      "Password must be at least %d characters",
	"error.password_require_upper":   "Password must contain an uppercase letter",
	"error.password_require_lower":   "Password must contain a lowercase letter",
	"error.password_require_number":  "Password must contain a number",
	"error.password_require_special": "Password must contain a special character",

	"message.order_placed": "Order #%s placed successfully",
}

var arMessages = map[string]string{
	"success": "تمت العملية بنجاح",

	"error.bad_request":            "طلب غير صالح",
	"error.unauthorized":           "غير مصرح",
	"error.forbidden":              "ليس لديك صلاحية",
	"error.not_found":              "المورد غير موجود",
	"error.conflict":               "المورد موجود بالفعل",
	"error.service_unavailable":    "الخدمة غير متاحة مؤقتاً",
	"error.too_many_requests":      "طلبات كثيرة، يرجى المحاولة لاحقاً",
	"error.login_too_many":         "محاولات دخول كثيرة، يرجى المحاولة بعد %d ثانية",
	"error.rate_limit_unavailable": "خدمة تحديد المعدل غير متاحة",
	"error.internal":               "خطأ داخلي في الخادم",
	"error.jwt_secret_missing":     "المصادقة غير مهيأة",
	"error.token_invalid":          "رمز الدخول غير صالح أو منتهي",
	"error.auth_header_missing":    "ترويسة التفويض مفقودة",
	"error.auth_header_invalid":    "ترويسة التفويض غير صالحة",
	"error.login_failed":           "فشل تسجيل الدخول",
	"error.login_invalid":          "اسم المستخدم أو كلمة المرور غير صحيحة",
	"error.captcha_required":       "يرجى إكمال رمز التحقق",
	"error.captcha_invalid":        "رمز التحقق غير صحيح",
	"error.captcha_config":         "رمز التحقق غير مهيأ بشكل صحيح",
	"error.captcha_fetch_failed":   "تعذر إنشاء رمز التحقق",

	"error.cart_empty":           "سلة التسوق فارغة",
	"error.cart_item_invalid":    "عنصر السلة غير صالح",
	"error.cart_session_invalid": "جلسة السلة غير صالحة",
	"error.checkout_failed":      "تعذر إتمام الطلب، يرجى المحاولة مرة أخرى",
	"error.customer_name_empty":  "يرجى إدخال الاسم الكامل",
	"error.email_invalid":        "يرجى إدخال بريد إلكتروني صحيح",
	"error.phone_invalid":        "يرجى إدخال رقم هاتف صحيح",
	"error.address_empty":        "يرجى إدخال عنوان الشحن",
	"error.city_empty":           "يرجى إدخال المدينة",

	"error.product_not_found":        "المنتج غير موجود",
	"error.product_invalid":          "بيانات المنتج غير صالحة",
	"error.product_category_invalid": "فئة المنتج غير صالحة",
	"error.product_price_invalid":    "لا يمكن أن يكون السعر سالباً",
	"error.product_unavailable":      "المنتج غير متوفر",
	"error.product_fetch_failed":     "تعذر تحميل المنتجات",
	"error.product_create_failed":    "تعذر إنشاء المنتج",
	"error.product_update_failed":    "تعذر تحديث المنتج",
	"error.product_delete_failed":    "تعذر حذف المنتج",
	"error.variant_invalid":          "خيار المنتج غير صالح",
	"error.variant_not_found":        "خيار المنتج غير موجود",

	"error.order_not_found":       "الطلب غير موجود",
	"error.order_status_invalid":  "حالة الطلب غير صالحة",
	"error.order_status_conflict": "تم تعديل حالة الطلب من قبل مستخدم آخر، يرجى إعادة التحميل",
	"error.order_fetch_failed":    "تعذر تحميل الطلبات",
	"error.order_update_failed":   "تعذر تحديث الطلب",

	"error.design_not_found":      "طلب التصميم غير موجود",
	"error.design_invalid":        "طلب التصميم غير صالح",
	"error.design_status_invalid": "حالة طلب التصميم غير صالحة",
	"error.design_submit_failed":  "تعذر إرسال طلب التصميم",
	"error.design_fetch_failed":   "تعذر تحميل طلبات التصميم",
	"error.design_update_failed":  "تعذر تحديث طلب التصميم",

	"error.banner_not_found":     "البانر غير موجود",
	"error.banner_invalid":       "بيانات البانر غير صالحة",
	"error.banner_fetch_failed":  "تعذر تحميل البانرات",
	"error.banner_create_failed": "تعذر إنشاء البانر",
	"error.banner_update_failed": "تعذر تحديث البانر",
	"error.banner_delete_failed": "تعذر حذف البانر",

	"error.settings_invalid":      "الإعدادات غير صالحة",
	"error.settings_fetch_failed": "تعذر تحميل الإعدادات",
	"error.settings_save_failed":  "تعذر حفظ الإعدادات",

	"error.dashboard_fetch_failed": "تعذر تحميل الإحصائيات",

	"error.upload_failed":        "فشل رفع الملف",
	"error.upload_file_missing":  "يرجى اختيار ملف",
	"error.upload_type_invalid":  "نوع الملف غير مسموح",
	"error.upload_too_large":     "حجم الملف كبير جداً",
	"error.upload_scene_invalid": "نوع الرفع غير صالح",

	"error.admin_not_found":          "المسؤول غير موجود",
	"error.admin_exists":             "اسم المستخدم مستخدم بالفعل",
	"error.admin_role_invalid":       "دور المسؤول غير صالح",
	"error.admin_fetch_failed":       "تعذر تحميل المسؤولين",
	"error.admin_create_failed":      "تعذر إنشاء المسؤول",
	"error.password_min_length":      "يجب أن تتكون كلمة المرور من %d أحرف على الأقل",
	"error.password_require_upper":   "يجب أن تحتوي كلمة المرور على حرف كبير",
	"error.password_require_lower":   "يجب أن تحتوي كلمة المرور على حرف صغير",
	"error.password_require_number":  "يجب أن تحتوي كلمة المرور على رقم",
	"error.password_require_special": "يجب أن تحتوي كلمة المرور على رمز خاص",

	"message.order_placed": "تم إنشاء الطلب رقم %s بنجاح",
}
