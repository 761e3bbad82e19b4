package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// TokenRequest describes a payment to initiate with the gateway.
type TokenRequest struct {
	OrderNumber string
	Email       string
	Amount      decimal.Decimal
	UserIP      string
}

// TokenResponse is the gateway's token-issuance reply.
type TokenResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
	Reason string `json:"reason"`
}

// Gateway issues payment tokens from a third-party provider.
type Gateway interface {
	// IssueToken requests a checkout token for the given payment.
	IssueToken(ctx context.Context, req *TokenRequest) (string, error)
}

// Config holds the gateway credentials and endpoint.
type Config struct {
	BaseURL      string
	MerchantID   string
	MerchantKey  string
	MerchantSalt string
	CallbackURL  string
}

// gateway implements Gateway over the provider's form-encoded HTTP API.
type gateway struct {
	cfg    Config
	client *http.Client
	logger zerolog.Logger
}

// NewGateway creates a payment gateway client.
func NewGateway(cfg Config, logger zerolog.Logger) Gateway {
	return &gateway{
		cfg:    cfg,
		client: &http.Client{Timeout: 20 * time.Second},
		logger: logger.With().Str("component", "payment-gateway").Logger(),
	}
}

// IssueToken requests a checkout token. The request is signed with
// HMAC-SHA256 over the canonical field concatenation using the merchant
// key and salt, per the provider's token-issuance protocol.
func (g *gateway) IssueToken(ctx context.Context, req *TokenRequest) (string, error) {
	if req == nil {
		return "", fmt.Errorf("token request is nil")
	}

	// Amount is sent in minor units.
	amount := req.Amount.Mul(decimal.NewFromInt(100)).Round(0).String()

	form := url.Values{}
	form.Set("merchant_id", g.cfg.MerchantID)
	form.Set("merchant_oid", req.OrderNumber)
	form.Set("email", req.Email)
	form.Set("payment_amount", amount)
	form.Set("user_ip", req.UserIP)
	form.Set("merchant_ok_url", g.cfg.CallbackURL)
	form.Set("merchant_fail_url", g.cfg.CallbackURL)
	form.Set("paytr_token", g.sign(req.OrderNumber, req.Email, amount, req.UserIP))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.cfg.BaseURL+"/get-token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		g.logger.Error().Err(err).Str("order_number", req.OrderNumber).Msg("token request failed")
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Error().
			Int("status", resp.StatusCode).
			Str("order_number", req.OrderNumber).
			Msg("gateway returned non-200")
		return "", fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var tokenResp TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode gateway response: %w", err)
	}

	if tokenResp.Status != "success" {
		g.logger.Warn().
			Str("order_number", req.OrderNumber).
			Str("reason", tokenResp.Reason).
			Msg("gateway rejected token request")
		return "", fmt.Errorf("gateway rejected request: %s", tokenResp.Reason)
	}

	g.logger.Info().Str("order_number", req.OrderNumber).Msg("payment token issued")

	return tokenResp.Token, nil
}

// sign computes the request signature over the canonical concatenation of
// merchant id, order fields, and the merchant salt.
func (g *gateway) sign(orderNumber, email, amount, userIP string) string {
	payload := g.cfg.MerchantID + userIP + orderNumber + email + amount + g.cfg.MerchantSalt

	mac := hmac.New(sha256.New, []byte(g.cfg.MerchantKey))
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
