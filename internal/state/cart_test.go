package state

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartStore(t *testing.T, baseURL string) *CartStore {
	t.Helper()
	files, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	client := NewClient(baseURL, zerolog.Nop())
	return NewCartStore(client, files, zerolog.Nop())
}

func testProduct(name, price string, stock int) *model.Product {
	return &model.Product{
		ID:    uuid.New(),
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
}

func TestCartStore_Add_InsertsAndIncrements(t *testing.T) {
	store := newTestCartStore(t, "http://unused")
	product := testProduct("Bracelet", "49.90", 10)

	require.NoError(t, store.Add(product, 2))
	require.NoError(t, store.Add(product, 3))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, store.ItemCount())
}

func TestCartStore_Add_CapsAtStock(t *testing.T) {
	store := newTestCartStore(t, "http://unused")
	product := testProduct("Bracelet", "49.90", 3)

	require.NoError(t, store.Add(product, 2))
	require.NoError(t, store.Add(product, 5))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestCartStore_UpdateQuantity_ClampsToStockAndOne(t *testing.T) {
	store := newTestCartStore(t, "http://unused")
	product := testProduct("Bracelet", "49.90", 5)

	require.NoError(t, store.Add(product, 2))

	require.NoError(t, store.UpdateQuantity(product.ID, 99))
	assert.Equal(t, 5, store.Items()[0].Quantity)

	require.NoError(t, store.UpdateQuantity(product.ID, 0))
	assert.Equal(t, 1, store.Items()[0].Quantity)

	require.NoError(t, store.UpdateQuantity(product.ID, -3))
	assert.Equal(t, 1, store.Items()[0].Quantity)
}

func TestCartStore_Total_TracksMutations(t *testing.T) {
	store := newTestCartStore(t, "http://unused")
	bracelet := testProduct("Bracelet", "49.90", 10)
	wristband := testProduct("Wristband", "15.00", 10)

	require.NoError(t, store.Add(bracelet, 2))
	require.NoError(t, store.Add(wristband, 3))

	// 2×49.90 + 3×15.00
	assert.True(t, store.Total().Equal(decimal.RequireFromString("144.80")), "got %s", store.Total())

	require.NoError(t, store.UpdateQuantity(bracelet.ID, 1))
	assert.True(t, store.Total().Equal(decimal.RequireFromString("94.90")), "got %s", store.Total())

	require.NoError(t, store.Remove(wristband.ID))
	assert.True(t, store.Total().Equal(decimal.RequireFromString("49.90")), "got %s", store.Total())

	require.NoError(t, store.Clear())
	assert.True(t, store.Total().IsZero())
	assert.Equal(t, 0, store.ItemCount())
}

func TestCartStore_PersistsAcrossRestarts(t *testing.T) {
	dir := t.TempDir()
	files, err := NewFileStore(dir)
	require.NoError(t, err)

	client := NewClient("http://unused", zerolog.Nop())
	store := NewCartStore(client, files, zerolog.Nop())

	product := testProduct("Bracelet", "49.90", 10)
	require.NoError(t, store.Add(product, 2))

	// A fresh store over the same directory sees the same cart
	reloaded := NewCartStore(client, files, zerolog.Nop())
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, product.ID, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartStore_Sync_PushesFullList(t *testing.T) {
	var gotRequest model.CartSyncRequest
	var syncCalls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/cart", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))
		syncCalls++

		resp := model.CartResponse{
			Items: gotRequest.Items,
			Count: model.CartCount(gotRequest.Items),
			Total: model.CartTotal(gotRequest.Items),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	store := newTestCartStore(t, server.URL)
	product := testProduct("Bracelet", "49.90", 10)
	require.NoError(t, store.Add(product, 2))

	resp, err := store.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)

	// Mutations never hit the network; only Sync does
	assert.Equal(t, 1, syncCalls)
	require.Len(t, gotRequest.Items, 1)
	assert.Equal(t, product.ID, gotRequest.Items[0].ProductID)

	// Repeating an identical sync sends the identical list
	again, err := store.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, resp.Count, again.Count)
	assert.True(t, resp.Total.Equal(again.Total))
	assert.Equal(t, 2, syncCalls)
}
