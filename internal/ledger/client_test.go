package ledger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(context.Background(), server.URL+"/", "secret-key")
}

func TestClient_ListExpenses(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_expenses", r.URL.Path)
		assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))
		assert.Equal(t, "20", r.URL.Query().Get("offset"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "2024-03-01", r.URL.Query().Get("dated_after"))

		_, _ = w.Write([]byte(`{"expenses":[{
			"id": 42,
			"group_id": null,
			"description": "Swiggy order",
			"payment": false,
			"cost": "300.0",
			"currency_code": "INR",
			"date": "2024-03-15T10:00:00Z",
			"created_at": "2024-03-15T10:01:00Z",
			"deleted_at": null,
			"category": {"id": 12, "name": "Dining out"},
			"users": [
				{"user_id": 1, "user": {"id": 1, "first_name": "Asha"}, "paid_share": "300.0", "owed_share": "150.0"},
				{"user_id": 2, "user": {"id": 2, "first_name": "Ravi"}, "paid_share": "0.0", "owed_share": "150.0"}
			]
		}]}`))
	})

	after := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	expenses, err := client.ListExpenses(context.Background(), 20, 10, &after)
	require.NoError(t, err)
	require.Len(t, expenses, 1)

	e := expenses[0]
	assert.Equal(t, int64(42), e.ID)
	assert.Nil(t, e.GroupID)
	assert.Equal(t, "300", e.Cost.Decimal.String())
	assert.Equal(t, "Dining out", e.Category.Name)
	assert.Equal(t, "150", e.Users[1].OwedShare.Decimal.String())
}

func TestClient_CurrentUserAndFriends(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/get_current_user":
			_, _ = w.Write([]byte(`{"user":{"id":7,"first_name":"Asha","last_name":"K","email":"a@example.com"}}`))
		case "/get_friends":
			_, _ = w.Write([]byte(`{"friends":[{"id":8,"first_name":"Ravi","balance":[{"currency_code":"INR","amount":"-120.5"}]}]}`))
		default:
			http.NotFound(w, r)
		}
	})

	me, err := client.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), me.ID)

	friends, err := client.ListFriends(context.Background())
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "Ravi", friends[0].FirstName)
	assert.Equal(t, "-120.5", friends[0].Balance[0].Amount.String())
}

func TestClient_TransportErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid API request: you are not logged in"}`))
	})

	_, err := client.ListGroups(context.Background())
	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, http.StatusUnauthorized, transportErr.StatusCode)
	assert.Equal(t, "get_groups", transportErr.Op)
}

func TestClient_BadJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"groups": [`))
	})

	_, err := client.ListGroups(context.Background())
	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
}
