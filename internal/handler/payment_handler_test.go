package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/payment"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockGateway is a mock implementation of payment.Gateway.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) IssueToken(ctx context.Context, req *payment.TokenRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func TestPaymentHandler_Token_Success(t *testing.T) {
	logger := zerolog.Nop()

	mockGateway := new(MockGateway)
	handler := NewPaymentHandler(mockGateway, logger)

	mockGateway.On("IssueToken", mock.Anything, mock.AnythingOfType("*payment.TokenRequest")).
		Return("tok_abc123", nil)

	body := []byte(`{"orderNumber":"NFC-20250314150926-0042","email":"alice@example.com","amount":"114.80"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/payment/token", bytes.NewReader(body))
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	w := httptest.NewRecorder()

	handler.Token(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tok_abc123", resp["token"])

	// The forwarded client IP is what gets signed
	issued := mockGateway.Calls[0].Arguments.Get(1).(*payment.TokenRequest)
	assert.Equal(t, "203.0.113.7", issued.UserIP)
}

func TestPaymentHandler_Token_RejectsNonPositiveAmount(t *testing.T) {
	logger := zerolog.Nop()

	mockGateway := new(MockGateway)
	handler := NewPaymentHandler(mockGateway, logger)

	body := []byte(`{"orderNumber":"NFC-1","email":"alice@example.com","amount":"0"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/payment/token", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Token(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockGateway.AssertNotCalled(t, "IssueToken")
}

func TestPaymentHandler_Token_GatewayFailure(t *testing.T) {
	logger := zerolog.Nop()

	mockGateway := new(MockGateway)
	handler := NewPaymentHandler(mockGateway, logger)

	mockGateway.On("IssueToken", mock.Anything, mock.AnythingOfType("*payment.TokenRequest")).
		Return("", errors.New("gateway unreachable"))

	body := []byte(`{"orderNumber":"NFC-1","email":"alice@example.com","amount":"10.00"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/payment/token", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Token(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.ErrCodePaymentFailed, resp.Error)
}

func TestPaymentHandler_Token_MethodNotAllowed(t *testing.T) {
	logger := zerolog.Nop()

	handler := NewPaymentHandler(new(MockGateway), logger)

	req := httptest.NewRequest(http.MethodGet, "/api/payment/token", nil)
	w := httptest.NewRecorder()

	handler.Token(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
