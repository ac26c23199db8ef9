package posclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	posdomain "github.com/mgeorge47/canteen-console-api/infrastructure/integrator/pos/domain"
	"github.com/mgeorge47/canteen-console-api/internal/config"
	"github.com/mgeorge47/canteen-console-api/internal/domain"
)

func newTestClient(baseURL string) Client {
	return NewClient(&config.Config{
		POS: config.POS{
			BaseURL:        baseURL,
			RequestTimeout: 5 * time.Second,
		},
	})
}

func TestClient_EmptyCredentialFailsClosed(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ctx := context.Background()

	assert.ErrorIs(t, client.CheckCredential(ctx, ""), ErrUnauthenticated)

	_, err := client.GetGroups(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = client.GetSalesByDateStore(ctx, "", SalesParams{})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = client.GetDashboard(ctx, "", DashboardParams{})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = client.UpdateItem(ctx, "", 1, posdomain.ItemFields{})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = client.CreateItemInGroup(ctx, "", 1, posdomain.ItemFields{})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	assert.Equal(t, int64(0), requests.Load(), "no request may leave the process without a credential")
}

func TestClient_CheckCredential_SendsBasicAuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/secure/hello", r.URL.Path)
		assert.Equal(t, "Basic dXNlcjpwYXNz", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	require.NoError(t, client.CheckCredential(context.Background(), "dXNlcjpwYXNz"))
}

func TestClient_CheckCredential_RejectedCredential(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.CheckCredential(context.Background(), "dXNlcjpwYXNz")
	require.Error(t, err)

	reqErr, ok := AsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, reqErr.StatusCode)
	assert.True(t, reqErr.Unauthorized())
}

func TestClient_GetSalesByDateStore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sales/by-date-store", r.URL.Path)

		query := r.URL.Query()
		assert.Equal(t, "2024-03-01", query.Get("date"))
		assert.Equal(t, "1", query.Get("store"))
		assert.Equal(t, "2", query.Get("page"))
		assert.Equal(t, "20", query.Get("size"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"id":9,"status":0,"totalAmount":150.5}],"totalElements":41}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	page, err := client.GetSalesByDateStore(context.Background(), "cred", SalesParams{
		Date:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Store: 1,
		Page:  2,
		Size:  domain.PageSize,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(41), page.TotalElements)
	require.Len(t, page.Content, 1)
	assert.Equal(t, int64(9), page.Content[0].ID)
	assert.Equal(t, 150.5, page.Content[0].TotalAmount)
}

func TestClient_GetDashboard_QueryShape(t *testing.T) {
	t.Run("store selected with day-bounded range", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			assert.Equal(t, "2024-03-01T00:00:00", query.Get("startDate"))
			assert.Equal(t, "2024-03-07T23:59:59", query.Get("endDate"))
			assert.Equal(t, "1", query.Get("storeId"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"totalSalesCount":5,"totalRevenue":1200}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		store := 1
		summary, err := client.GetDashboard(context.Background(), "cred", DashboardParams{
			Range: domain.DateRange{
				Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
			},
			Store: &store,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), summary.TotalSalesCount)
	})

	t.Run("all stores omits the store parameter", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.False(t, r.URL.Query().Has("storeId"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.GetDashboard(context.Background(), "cred", DashboardParams{})
		require.NoError(t, err)
	})
}

func TestClient_UpdateItem_SendsJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/items/7", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var fields posdomain.ItemFields
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		assert.Equal(t, "Chai", fields.ItemName)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"itemId":7,"itemName":"Chai","itemDescription":"Hot milk tea","itemPrice":15}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	item, err := client.UpdateItem(context.Background(), "cred", 7, posdomain.ItemFields{
		ItemName:        "Chai",
		ItemDescription: "Hot milk tea",
		ItemPrice:       15,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), item.ItemID)
}

func TestClient_CreateItemInGroup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/items/group/20", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"itemId":42,"itemName":"Filter Coffee","itemDescription":"South Indian coffee","itemPrice":25}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	item, err := client.CreateItemInGroup(context.Background(), "cred", 20, posdomain.ItemFields{
		ItemName:        "Filter Coffee",
		ItemDescription: "South Indian coffee",
		ItemPrice:       25,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), item.ItemID)
}

func TestClient_NonSuccessStatusBecomesRequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "something broke", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetGroups(context.Background(), "cred")
	require.Error(t, err)

	reqErr, ok := AsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
	assert.Contains(t, reqErr.Body, "something broke")
	assert.False(t, reqErr.Unauthorized())
}

func TestClient_MalformedBodyBecomesRequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content": not-json`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetSalesByDateStore(context.Background(), "cred", SalesParams{
		Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Size: domain.PageSize,
	})
	require.Error(t, err)

	// A 2xx status with an undecodable body still reports the real status.
	reqErr, ok := AsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, reqErr.StatusCode)
	assert.Contains(t, reqErr.Body, "decoding response")
}
