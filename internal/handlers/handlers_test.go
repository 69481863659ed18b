package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/money_field/internal/apperrors"
	"github.com/SscSPs/money_field/internal/core/domain"
	portssvc "github.com/SscSPs/money_field/internal/core/ports/services"
	"github.com/SscSPs/money_field/internal/dto"
	"github.com/SscSPs/money_field/internal/handlers"
	"github.com/SscSPs/money_field/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode, locale string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context, locale string) ([]domain.Currency, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock MoneyFieldService ---
type MockMoneyFieldService struct {
	mock.Mock
}

func (m *MockMoneyFieldService) FormatState(ctx context.Context, req dto.FormatStateRequest) (*dto.FormatStateResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FormatStateResponse), args.Error(1)
}

func (m *MockMoneyFieldService) DehydrateState(ctx context.Context, req dto.DehydrateStateRequest) (*dto.DehydrateStateResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DehydrateStateResponse), args.Error(1)
}

var _ portssvc.MoneyFieldSvcFacade = (*MockMoneyFieldService)(nil)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	jwtSecret      string
	mockCurrency   *MockCurrencyService
	mockMoneyField *MockMoneyFieldService
}

func (suite *HandlerTestSuite) generateTestToken(subject string) string {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockCurrency = new(MockCurrencyService)
	suite.mockMoneyField = new(MockMoneyFieldService)

	handlers.RegisterRoutes(suite.router, &config.Config{JWTSecret: suite.jwtSecret}, &portssvc.ServiceContainer{
		Currency:   suite.mockCurrency,
		MoneyField: suite.mockMoneyField,
	})
}

func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("client-1"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestRequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCurrency.AssertNotCalled(suite.T(), "ListCurrencies", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListCurrencies_Success() {
	currencies := []domain.Currency{{CurrencyCode: "EUR", Symbol: "€", Precision: 2}, {CurrencyCode: "JPY", Symbol: "¥", Precision: 0}}
	suite.mockCurrency.On("ListCurrencies", mock.Anything, "de_DE").Return(currencies, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies?locale=de_DE", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListCurrenciesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("de_DE", resp.Locale)
	suite.Equal(dto.ToListCurrencyResponse(currencies), resp.Currencies)
	suite.mockCurrency.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListCurrencies_InvalidLocale() {
	suite.mockCurrency.On("ListCurrencies", mock.Anything, "bad").
		Return(nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, apperrors.ErrInvalidLocale)).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies?locale=bad", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCurrency.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetCurrencyByCode() {
	tests := []struct {
		name       string
		code       string
		setup      func()
		wantStatus int
	}{
		{"found", "EUR", func() {
			suite.mockCurrency.On("GetCurrencyByCode", mock.Anything, "EUR", "").
				Return(&domain.Currency{CurrencyCode: "EUR", Symbol: "€", Precision: 2}, nil).Once()
		}, http.StatusOK},
		{"not found", "ZZZ", func() {
			suite.mockCurrency.On("GetCurrencyByCode", mock.Anything, "ZZZ", "").Return(nil, apperrors.ErrNotFound).Once()
		}, http.StatusNotFound},
		{"wrong length", "EURO", func() {}, http.StatusBadRequest},
		{"service failure", "USD", func() {
			suite.mockCurrency.On("GetCurrencyByCode", mock.Anything, "USD", "").Return(nil, assert.AnError).Once()
		}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			tt.setup()
			w := suite.do(http.MethodGet, "/api/v1/currencies/"+tt.code, nil)
			suite.Equal(tt.wantStatus, w.Code)
		})
	}
	suite.mockCurrency.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestFormatState_Success() {
	expected := &dto.FormatStateResponse{Formatted: "12.34", Prefix: "$", Config: domain.DefaultFormatConfig()}
	suite.mockMoneyField.On("FormatState", mock.Anything, mock.MatchedBy(func(req dto.FormatStateRequest) bool {
		return req.Currency == "USD" && req.State == json.Number("1234")
	})).Return(expected, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/money/format", map[string]any{"currency": "USD", "state": 1234})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FormatStateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(*expected, resp)
	suite.mockMoneyField.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestFormatState_KeepsGinDecoderDefaults() {
	suite.mockMoneyField.On("FormatState", mock.Anything, mock.MatchedBy(func(req dto.FormatStateRequest) bool {
		return req.State == json.Number("9007199254740993")
	})).Return(&dto.FormatStateResponse{Config: domain.DefaultFormatConfig()}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/money/format", json.RawMessage(`{"state":9007199254740993}`))

	suite.Equal(http.StatusOK, w.Code)
	suite.False(binding.EnableDecoderUseNumber)
	suite.mockMoneyField.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestFormatState_BindingErrors() {
	for name, body := range map[string]any{
		"bad placement": map[string]any{"symbolPlacement": "left"},
		"bad component": map[string]any{"component": "slider"},
		"bad decimals":  map[string]any{"decimals": 40},
		"bad currency":  map[string]any{"currency": "EURO"},
		"bad step":      map[string]any{"step": 0},
	} {
		suite.Run(name, func() {
			w := suite.do(http.MethodPost, "/api/v1/money/format", body)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.mockMoneyField.AssertNotCalled(suite.T(), "FormatState", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestDehydrateState_StatusMapping() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"malformed", apperrors.ErrMalformedAmount, http.StatusUnprocessableEntity},
		{"out of range", apperrors.ErrOutOfRange, http.StatusUnprocessableEntity},
		{"validation", fmt.Errorf("%w: %w", apperrors.ErrValidation, apperrors.ErrInvalidCurrency), http.StatusBadRequest},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockMoneyField.On("DehydrateState", mock.Anything, mock.Anything).Return(nil, tt.err).Once()
			w := suite.do(http.MethodPost, "/api/v1/money/dehydrate", map[string]any{"value": "12.34"})
			suite.Equal(tt.wantStatus, w.Code)
		})
	}
	suite.mockMoneyField.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestDehydrateState_Success() {
	minor := "1234"
	suite.mockMoneyField.On("DehydrateState", mock.Anything, mock.MatchedBy(func(req dto.DehydrateStateRequest) bool {
		return req.Value == "12.34"
	})).Return(&dto.DehydrateStateResponse{MinorUnits: &minor, Config: domain.DefaultFormatConfig()}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/money/dehydrate", map[string]any{"value": "12.34"})

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"minorUnits":"1234","config":{"currencyCode":"USD","locale":"en_US","decimalDigits":2,"symbolPlacement":"before"}}`, w.Body.String())
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
