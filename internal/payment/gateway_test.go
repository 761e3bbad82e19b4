package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:      baseURL,
		MerchantID:   "merchant-1",
		MerchantKey:  "key-abc",
		MerchantSalt: "salt-xyz",
		CallbackURL:  "https://shop.example/payment/callback",
	}
}

func TestGateway_IssueToken_Success(t *testing.T) {
	var gotForm map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/get-token", r.URL.Path)
		require.NoError(t, r.ParseForm())

		gotForm = map[string]string{}
		for k := range r.PostForm {
			gotForm[k] = r.PostForm.Get(k)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","token":"tok_42"}`))
	}))
	defer server.Close()

	gateway := NewGateway(testConfig(server.URL), zerolog.Nop())

	token, err := gateway.IssueToken(context.Background(), &TokenRequest{
		OrderNumber: "NFC-20250314150926-0042",
		Email:       "alice@example.com",
		Amount:      decimal.RequireFromString("114.80"),
		UserIP:      "203.0.113.7",
	})

	require.NoError(t, err)
	assert.Equal(t, "tok_42", token)

	// Amount is forwarded in minor units
	assert.Equal(t, "11480", gotForm["payment_amount"])
	assert.Equal(t, "merchant-1", gotForm["merchant_id"])
	assert.Equal(t, "NFC-20250314150926-0042", gotForm["merchant_oid"])

	// Signature covers merchant id, ip, order, email, amount, and salt
	mac := hmac.New(sha256.New, []byte("key-abc"))
	mac.Write([]byte("merchant-1" + "203.0.113.7" + "NFC-20250314150926-0042" + "alice@example.com" + "11480" + "salt-xyz"))
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	assert.Equal(t, want, gotForm["paytr_token"])
}

func TestGateway_IssueToken_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"failed","reason":"invalid merchant"}`))
	}))
	defer server.Close()

	gateway := NewGateway(testConfig(server.URL), zerolog.Nop())

	token, err := gateway.IssueToken(context.Background(), &TokenRequest{
		OrderNumber: "NFC-1",
		Email:       "alice@example.com",
		Amount:      decimal.New(10, 0),
		UserIP:      "127.0.0.1",
	})

	assert.Empty(t, token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid merchant")
}

func TestGateway_IssueToken_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gateway := NewGateway(testConfig(server.URL), zerolog.Nop())

	_, err := gateway.IssueToken(context.Background(), &TokenRequest{
		OrderNumber: "NFC-1",
		Email:       "alice@example.com",
		Amount:      decimal.New(10, 0),
		UserIP:      "127.0.0.1",
	})

	assert.Error(t, err)
}
