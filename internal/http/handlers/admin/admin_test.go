package admin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/qamees-next/internal/config"
	handlershared "github.com/qamees-next/internal/http/handlers/shared"
	"github.com/qamees-next/internal/http/response"
	"github.com/qamees-next/internal/models"
	"github.com/qamees-next/internal/provider"
	"github.com/qamees-next/internal/repository"
	"github.com/qamees-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

func newAdminTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:admin_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}, &models.PromotionalBanner{}, &models.Setting{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{MinLength: 8, RequireUpper: true, RequireLower: true, RequireNumber: true}

	adminRepo := repository.NewAdminRepository(db)
	container := &provider.Container{
		Config:         cfg,
		AdminRepo:      adminRepo,
		AuthService:    service.NewAuthService(cfg, adminRepo, nil),
		AdminService:   service.NewAdminService(adminRepo, cfg.Security.PasswordPolicy),
		BannerService:  service.NewBannerService(repository.NewBannerRepository(db)),
		SettingService: service.NewSettingService(repository.NewSettingRepository(db)),
	}
	h := New(container)

	r := gin.New()
	r.POST("/login", h.AdminLogin)
	r.POST("/admins", h.CreateAdmin)
	r.GET("/me", func(c *gin.Context) {
		if id := c.GetHeader("X-Admin"); id != "" {
			handlershared.SetAdminPrincipal(c, handlershared.AdminPrincipal{AdminID: id})
		}
		h.GetAdminMe(c)
	})
	r.POST("/banners", h.CreateBanner)
	r.GET("/banners", h.GetAdminBanners)
	r.PUT("/settings/store", h.UpdateStoreSettings)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers map[string]string) envelope {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body failed: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected http status: %d", w.Code)
	}
	var resp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	return resp
}

func TestCreateAdminAndLogin(t *testing.T) {
	r, _ := newAdminTestRouter(t)
	en := map[string]string{"Accept-Language": "en"}

	weak := doJSON(t, r, http.MethodPost, "/admins", map[string]string{"username": "sara", "password": "short"}, en)
	if weak.StatusCode != response.CodeBadRequest || weak.Msg != "Password must be at least 8 characters" {
		t.Fatalf("unexpected weak password response: %+v", weak)
	}

	created := doJSON(t, r, http.MethodPost, "/admins", map[string]string{"username": "sara", "password": "Secret123", "role": "editor"}, en)
	if created.StatusCode != response.CodeOK {
		t.Fatalf("create admin failed: %+v", created)
	}
	var admin models.Admin
	if err := json.Unmarshal(created.Data, &admin); err != nil {
		t.Fatalf("decode admin failed: %v", err)
	}
	if admin.ID == "" || admin.Role != "editor" {
		t.Fatalf("unexpected admin: %+v", admin)
	}
	if strings.Contains(string(created.Data), "password") {
		t.Fatalf("password hash must not be exposed: %s", created.Data)
	}

	dup := doJSON(t, r, http.MethodPost, "/admins", map[string]string{"username": "sara", "password": "Secret123"}, en)
	if dup.StatusCode != response.CodeConflict {
		t.Fatalf("expected conflict, got %+v", dup)
	}

	bad := doJSON(t, r, http.MethodPost, "/login", map[string]string{"username": "sara", "password": "wrong"}, en)
	if bad.StatusCode != response.CodeUnauthorized || bad.Msg != "Invalid username or password" {
		t.Fatalf("unexpected login failure response: %+v", bad)
	}

	ok := doJSON(t, r, http.MethodPost, "/login", map[string]string{"username": "sara", "password": "Secret123"}, en)
	if ok.StatusCode != response.CodeOK {
		t.Fatalf("login failed: %+v", ok)
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(ok.Data, &login); err != nil || login.Token == "" {
		t.Fatalf("expected token, got %s", ok.Data)
	}

	me := doJSON(t, r, http.MethodGet, "/me", nil, map[string]string{"X-Admin": admin.ID})
	if me.StatusCode != response.CodeOK {
		t.Fatalf("get me failed: %+v", me)
	}
	anonymous := doJSON(t, r, http.MethodGet, "/me", nil, nil)
	if anonymous.StatusCode != response.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %+v", anonymous)
	}
}

func TestBannerHandlers(t *testing.T) {
	r, _ := newAdminTestRouter(t)

	badDate := doJSON(t, r, http.MethodPost, "/banners", map[string]interface{}{
		"title":      "Summer",
		"image_url":  "/uploads/banner/a.png",
		"start_date": "tomorrow",
	}, nil)
	if badDate.StatusCode != response.CodeBadRequest {
		t.Fatalf("expected bad request for invalid date, got %+v", badDate)
	}

	created := doJSON(t, r, http.MethodPost, "/banners", map[string]interface{}{
		"title":         "Summer",
		"image_url":     "/uploads/banner/a.png",
		"display_order": 2,
		"start_date":    "2026-06-01",
		"end_date":      "2026-08-31T23:59:59Z",
	}, nil)
	if created.StatusCode != response.CodeOK {
		t.Fatalf("create banner failed: %+v", created)
	}

	list := doJSON(t, r, http.MethodGet, "/banners?is_active=true", nil, nil)
	if list.StatusCode != response.CodeOK {
		t.Fatalf("list banners failed: %+v", list)
	}
	var banners []models.PromotionalBanner
	if err := json.Unmarshal(list.Data, &banners); err != nil {
		t.Fatalf("decode banners failed: %v", err)
	}
	if len(banners) != 1 || banners[0].DisplayOrder != 2 {
		t.Fatalf("unexpected banners: %+v", banners)
	}

	invalidFilter := doJSON(t, r, http.MethodGet, "/banners?is_active=maybe", nil, nil)
	if invalidFilter.StatusCode != response.CodeBadRequest {
		t.Fatalf("expected bad request for invalid filter, got %+v", invalidFilter)
	}
}

func TestUpdateStoreSettings(t *testing.T) {
	r, _ := newAdminTestRouter(t)

	invalid := doJSON(t, r, http.MethodPut, "/settings/store", map[string]interface{}{"contact_email": "not-an-email"}, map[string]string{"Accept-Language": "en"})
	if invalid.StatusCode != response.CodeBadRequest || invalid.Msg != "Please enter a valid email address" {
		t.Fatalf("unexpected invalid email response: %+v", invalid)
	}

	saved := doJSON(t, r, http.MethodPut, "/settings/store", map[string]interface{}{"store_name": "Qamees Riyadh", "maintenance_mode": true}, nil)
	if saved.StatusCode != response.CodeOK {
		t.Fatalf("save settings failed: %+v", saved)
	}
	var profile service.StoreProfile
	if err := json.Unmarshal(saved.Data, &profile); err != nil {
		t.Fatalf("decode profile failed: %v", err)
	}
	if profile.StoreName != "Qamees Riyadh" || !profile.MaintenanceMode || profile.ContactEmail != service.DefaultStoreProfile().ContactEmail {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}
