package erp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare number", "5551234567", "5551234567"},
		{"spaced national number", "555 123 4567", "1234567"},
		{"parenthesized area code with dash", "(555) 123-4567", "555123-4567"},
		{"fully spaced with area code", "(555) 123 4567", "1234567"},
		{"country code dropped", "+1 555 1234567", "5551234567"},
		{"single token with parens", "(555)1234567", "5551234567"},
	}

	for _, tt := range tests {
		t.Run("should normalize "+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePhone(tt.input))
		})
	}
}

func TestGetRegisteredPhone(t *testing.T) {
	t.Run("should fetch and normalize the registered number", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/E100", r.URL.Path)
			assert.Equal(t, "secret-key", r.Header.Get("api-key"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"privateMobileNumber": "+1 555 1234567"}`))
		}))
		defer server.Close()

		client := NewClient(models.RecordsConfiguration{
			URL:    server.URL + "/",
			APIKey: "secret-key",
		})

		phone, err := client.GetRegisteredPhone(context.Background(), "E100")

		require.NoError(t, err)
		assert.Equal(t, "5551234567", phone)
	})

	t.Run("should fail on non-200 responses", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(models.RecordsConfiguration{URL: server.URL + "/", APIKey: "k"})

		_, err := client.GetRegisteredPhone(context.Background(), "E404")
		assert.Error(t, err)
	})

	t.Run("should fail when the record has no mobile number", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(models.RecordsConfiguration{URL: server.URL + "/", APIKey: "k"})

		_, err := client.GetRegisteredPhone(context.Background(), "E100")
		assert.Error(t, err)
	})
}
