// internal/api/client_test.go
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/product/list", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"product": []map[string]interface{}{
				{"_id": "p1", "name": "Buds", "category": "audio", "price": 1500.0},
			},
		})
	}))
	defer srv.Close()

	products, err := NewClient(srv.URL).ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, 1500.0, products[0].Price)
}

func TestSearchProductsEncodesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "nova phone", r.URL.Query().Get("query"))
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "product": []interface{}{}})
	}))
	defer srv.Close()

	products, err := NewClient(srv.URL).SearchProducts(context.Background(), "nova phone")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestAuthenticatedCallAttachesBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "orders": []interface{}{}})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ListUserOrders(context.Background(), "tok-123", "user-1")
	require.NoError(t, err)
}

func TestSuccessFalseBecomesAPIRejectionWithMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "inventory exhausted"})
	}))
	defer srv.Close()

	err := NewClient(srv.URL).CreateOrder(context.Background(), "tok", &CreateOrderRequest{})
	assert.Equal(t, KindAPIRejection, KindOf(err))
	assert.Contains(t, err.Error(), "inventory exhausted")
}

func TestServerErrorSurfacedOnceWithoutRetry(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "boom"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ListProducts(context.Background())
	assert.Equal(t, KindAPIRejection, KindOf(err))
	assert.EqualValues(t, 1, hits.Load(), "retries are user-initiated, never automatic")
}

func TestUnauthorizedBecomesNotAuthenticated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "please login"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ListUserOrders(context.Background(), "", "user-1")
	assert.Equal(t, KindNotAuthenticated, KindOf(err))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestUnreachableServerBecomesNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	_, err := NewClient(srv.URL).ListProducts(context.Background())
	assert.Equal(t, KindNetworkFailure, KindOf(err))
}

func TestChatReturnsReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hello", body["message"])
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "reply": "hi there"})
	}))
	defer srv.Close()

	reply, err := NewClient(srv.URL).Chat(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi there", reply)
}

func TestReverseGeocodeFieldFallbacks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":     true,
			"address":     map[string]string{"county": "Daulatpur", "district": "Kushtia"},
			"displayName": "Daulatpur, Kushtia",
		})
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL).ReverseGeocode(context.Background(), 23.9, 89.12)
	require.NoError(t, err)
	assert.Equal(t, "Daulatpur", got.Address.BestSubRegion())
	assert.Equal(t, "Kushtia", got.Address.BestCity())
}
