// internal/router/router_test.go
package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shopsphere/commerce-backend/internal/config"
	"github.com/shopsphere/commerce-backend/internal/models"
)

// Per-IP rate limiters persist across tests, so every test gets its own
// client address.
var testClientSeq int32

type RouterTestSuite struct {
	suite.Suite
	db         *gorm.DB
	router     *gin.Engine
	remoteAddr string
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	seq := atomic.AddInt32(&testClientSeq, 1)
	s.remoteAddr = fmt.Sprintf("10.1.%d.%d:1234", seq/250, seq%250)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)

	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	s.Require().NoError(db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Category{},
		&models.Product{},
		&models.Review{},
		&models.Wishlist{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	cfg := &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
		OTP: config.OTPConfig{TTLSeconds: 300},
	}

	s.db = db
	s.router = Initialize(db, cfg)
}

func (s *RouterTestSuite) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.RemoteAddr = s.remoteAddr
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterTestSuite) registerAndLogin(username string) string {
	w := s.do("POST", "/api/v1/auth/register", map[string]interface{}{
		"username": username,
		"email":    username + "@example.com",
		"password": "Password123",
	}, "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.do("POST", "/api/v1/auth/login", map[string]interface{}{
		"username": username,
		"password": "Password123",
	}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var response struct {
		Data struct {
			Tokens struct {
				AccessToken string `json:"access_token"`
			} `json:"tokens"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Require().NotEmpty(response.Data.Tokens.AccessToken)
	return response.Data.Tokens.AccessToken
}

func (s *RouterTestSuite) TestHealthCheck() {
	w := s.do("GET", "/health", nil, "")
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterTestSuite) TestRegisterLoginAndMe() {
	token := s.registerAndLogin("routeruser")

	w := s.do("GET", "/api/v1/auth/me", nil, token)
	s.Require().Equal(http.StatusOK, w.Code)

	var response struct {
		Data models.User `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("routeruser", response.Data.Username)
}

func (s *RouterTestSuite) TestCartRequiresAuth() {
	w := s.do("GET", "/api/v1/cart", nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RouterTestSuite) TestProductListingIsPublic() {
	w := s.do("GET", "/api/v1/products", nil, "")
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterTestSuite) TestAdminRoutesRejectNonAdmins() {
	token := s.registerAndLogin("plainuser")

	w := s.do("POST", "/api/v1/orders/checkout", map[string]interface{}{
		"address": "12 High Street",
	}, token)
	// Empty cart, but the route itself must be reachable for the user.
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do("POST", "/api/v1/admin/orders/"+uuid.NewString()+"/refund", nil, token)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *RouterTestSuite) TestCartFlowEndToEnd() {
	token := s.registerAndLogin("shopper")

	category := &models.Category{Name: "Shoes", Slug: "shoes"}
	s.Require().NoError(s.db.Create(category).Error)
	product := &models.Product{
		CategoryID: category.ID,
		Title:      "Leather Boots",
		Slug:       "leather-boots",
		Price:      120.00,
		Quantity:   5,
	}
	s.Require().NoError(s.db.Create(product).Error)

	w := s.do("POST", "/api/v1/cart/items", map[string]interface{}{
		"product_id": product.ID,
		"quantity":   2,
	}, token)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.do("GET", "/api/v1/cart", nil, token)
	s.Require().Equal(http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Total float64 `json:"total"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.InDelta(240.00, response.Data.Total, 0.001)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
