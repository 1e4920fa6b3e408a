package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"time"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/handlers"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// apiSuite wires the real router and AuthMiddleware to mocked services.
type apiSuite struct {
	suite.Suite
	router       *gin.Engine
	users        *MockUserService
	tokens       *MockTokenService
	google       *MockGoogleOAuthService
	accounts     *MockAccountService
	categories   *MockCategoryService
	transactions *MockTransactionService
	budgets      *MockBudgetService
	reports      *MockReportService
}

func (s *apiSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.users = new(MockUserService)
	s.tokens = new(MockTokenService)
	s.google = new(MockGoogleOAuthService)
	s.accounts = new(MockAccountService)
	s.categories = new(MockCategoryService)
	s.transactions = new(MockTransactionService)
	s.budgets = new(MockBudgetService)
	s.reports = new(MockReportService)

	cfg := &config.Config{
		JWTSecret:      testJWTSecret,
		LoginRateLimit: "100-M",
		IsProduction:   true,
	}
	s.router = gin.New()
	handlers.RegisterRoutes(s.router, cfg, &portssvc.ServiceContainer{
		User:        s.users,
		Token:       s.tokens,
		GoogleOAuth: s.google,
		Account:     s.accounts,
		Category:    s.categories,
		Transaction: s.transactions,
		Budget:      s.budgets,
		Report:      s.reports,
	}, nil)
}

func (s *apiSuite) TearDownTest() {
	t := s.T()
	s.users.AssertExpectations(t)
	s.tokens.AssertExpectations(t)
	s.google.AssertExpectations(t)
	s.accounts.AssertExpectations(t)
	s.categories.AssertExpectations(t)
	s.transactions.AssertExpectations(t)
	s.budgets.AssertExpectations(t)
	s.reports.AssertExpectations(t)
}

// generateTestToken signs an HS256 token the AuthMiddleware accepts.
func (s *apiSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "finance-tracker-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		s.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

// do serves a request; userID is sent as a bearer token unless empty.
func (s *apiSuite) do(method, path string, body any, userID string) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+s.generateTestToken(userID))
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *apiSuite) decode(w *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

// errorBody decodes the ErrorResponse and checks its status field against the HTTP code.
func (s *apiSuite) errorBody(w *httptest.ResponseRecorder, status int) dto.ErrorResponse {
	s.Equal(status, w.Code, w.Body.String())
	var body dto.ErrorResponse
	s.decode(w, &body)
	s.Equal(status, body.Status)
	return body
}

