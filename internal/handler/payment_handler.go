package handler

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/payment"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// PaymentHandler initiates payments through the gateway.
type PaymentHandler struct {
	gateway payment.Gateway
	logger  zerolog.Logger
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(gateway payment.Gateway, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		gateway: gateway,
		logger:  logger.With().Str("handler", "payment").Logger(),
	}
}

// paymentTokenRequest is the checkout payload for POST /api/payment/token.
type paymentTokenRequest struct {
	OrderNumber string          `json:"orderNumber"`
	Email       string          `json:"email"`
	Amount      decimal.Decimal `json:"amount"`
}

// Token handles POST /api/payment/token requests, proxying the gateway's
// token-issuance API.
func (h *PaymentHandler) Token(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req paymentTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if req.OrderNumber == "" || req.Email == "" || !req.Amount.IsPositive() {
		writeError(w, http.StatusBadRequest, "orderNumber, email, and a positive amount are required", h.logger)
		return
	}

	token, err := h.gateway.IssueToken(r.Context(), &payment.TokenRequest{
		OrderNumber: req.OrderNumber,
		Email:       req.Email,
		Amount:      req.Amount,
		UserIP:      clientIP(r),
	})
	if err != nil {
		h.logger.Error().Err(err).Str("order_number", req.OrderNumber).Msg("payment initiation failed")
		writeJSON(w, http.StatusBadGateway, model.ErrorResponse{
			Error:   model.ErrCodePaymentFailed,
			Message: "Payment could not be initiated",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// clientIP extracts the requester's IP for the gateway signature.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
