package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContactsClient(endpoint string) *ContactsClient {
	return NewContactsClient(&Config{MessagesEndpoint: endpoint})
}

func TestFetchContacts_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"name":"Ann","email":"a@x.com","message":"hi","createdAt":"2026-08-01T10:00:00Z"},
			{"id":2,"name":"Bob","email":"b@x.com","message":"hey","createdAt":"2026-08-02T11:30:00Z"}
		]`))
	}))
	defer srv.Close()

	contacts, err := newTestContactsClient(srv.URL).Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, Contact{ID: 1, Name: "Ann", Email: "a@x.com", Message: "hi", CreatedAt: "2026-08-01T10:00:00Z"}, contacts[0])
	assert.Equal(t, "Bob", contacts[1].Name)
}

func TestFetchContacts_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	contacts, err := newTestContactsClient(srv.URL).Fetch(context.Background())

	assert.Nil(t, contacts)
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch contacts", err.Error())
}

func TestFetchContacts_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	contacts, err := newTestContactsClient(srv.URL).Fetch(context.Background())

	assert.Nil(t, contacts)
	assert.ErrorIs(t, err, errFetchContacts)
}

func TestFetchContacts_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	contacts, err := newTestContactsClient(srv.URL).Fetch(context.Background())

	assert.Nil(t, contacts)
	assert.ErrorIs(t, err, errFetchContacts)
}

func TestFilterContacts(t *testing.T) {
	list := []Contact{
		{Name: "Ann", Email: "a@x.com", Message: "hi"},
		{Name: "Bob", Email: "b@x.com", Message: "hey Ann"},
		{Name: "Cleo", Email: "cleo@y.org", Message: "question about rates"},
	}

	t.Run("case-insensitive match across fields", func(t *testing.T) {
		got := filterContacts(list, "ann")
		require.Len(t, got, 2)
		assert.Equal(t, "Ann", got[0].Name)
		assert.Equal(t, "Bob", got[1].Name) // matched on message text
	})

	t.Run("no matches leaves source alone", func(t *testing.T) {
		got := filterContacts(list, "zzz")
		assert.Empty(t, got)
		assert.Len(t, list, 3)
	})

	t.Run("empty term matches everything", func(t *testing.T) {
		assert.Equal(t, list, filterContacts(list, ""))
	})

	t.Run("matches on email", func(t *testing.T) {
		got := filterContacts(list, "Y.ORG")
		require.Len(t, got, 1)
		assert.Equal(t, "Cleo", got[0].Name)
	})

	t.Run("order preserved", func(t *testing.T) {
		got := filterContacts(list, "x.com")
		require.Len(t, got, 2)
		assert.Equal(t, []string{"Ann", "Bob"}, []string{got[0].Name, got[1].Name})
	})
}
