package response

// 业务状态码，沿用 HTTP 语义
const (
	CodeOK              = 0
	CodeBadRequest      = 400
	CodeUnauthorized    = 401
	CodeForbidden       = 403
	CodeNotFound        = 404
	CodeConflict        = 409
	CodeTooManyRequests = 429
	CodeInternal        = 500
	CodeUnavailable     = 503
)

var defaultKeys = map[int]string{
	CodeBadRequest:      "error.bad_request",
	CodeUnauthorized:    "error.unauthorized",
	CodeForbidden:       "error.forbidden",
	CodeNotFound:        "error.not_found",
	CodeConflict:        "error.conflict",
	CodeTooManyRequests: "error.too_many_requests",
	CodeInternal:        "error.internal",
	CodeUnavailable:     "error.service_unavailable",
}

// DefaultKey 业务码对应的兜底文案 key
func DefaultKey(code int) string {
	if key, ok := defaultKeys[code]; ok {
		return key
	}
	return "error.internal"
}
