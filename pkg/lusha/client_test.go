package lusha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPerson(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantErr      string
		wantNotFound bool
	}{
		{
			name:   "found",
			status: http.StatusOK,
			body:   `{"data": {"phoneNumbers": [{"number": "+554799990000"}], "emailAddresses": [{"email": "joao@example.com"}]}}`,
		},
		{
			name:         "not_found_404",
			status:       http.StatusNotFound,
			body:         `{"error": "person not found"}`,
			wantNotFound: true,
		},
		{
			name:         "empty_body",
			status:       http.StatusOK,
			body:         ``,
			wantNotFound: true,
		},
		{
			name:   "bad_request_is_answered",
			status: http.StatusBadRequest,
			body:   `{"error": "missing identifier"}`,
		},
		{
			name:    "server_error",
			status:  http.StatusInternalServerError,
			body:    `{"error": "internal"}`,
			wantErr: "unexpected status 500",
		},
		{
			name:    "bad_gateway",
			status:  http.StatusBadGateway,
			body:    `upstream timeout`,
			wantErr: "unexpected status 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/v2/person", r.URL.Path)
				assert.Equal(t, "test-key", r.Header.Get("api_key"))
				assert.Equal(t, "true", r.URL.Query().Get("revealPhones"))
				assert.Equal(t, "true", r.URL.Query().Get("revealEmails"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient("test-key", WithBaseURL(srv.URL))

			resp, err := client.LookupPerson(context.Background(), PersonLookupRequest{
				FirstName:   "João",
				LastName:    "Silva",
				CompanyName: "Embalagens Sul",
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.wantNotFound, resp.NotFound)
		})
	}
}

func TestLookupPersonParams(t *testing.T) {
	t.Run("linkedin_url", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "https://linkedin.com/in/joao", q.Get("linkedinUrl"))
			assert.Empty(t, q.Get("firstName"))
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client := NewClient("test-key", WithBaseURL(srv.URL))
		_, err := client.LookupPerson(context.Background(), PersonLookupRequest{
			LinkedinURL: "https://linkedin.com/in/joao",
		})
		require.NoError(t, err)
	})

	t.Run("name_and_company", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "Maria", q.Get("firstName"))
			assert.Equal(t, "Souza", q.Get("lastName"))
			assert.Equal(t, "Transportes Norte", q.Get("companyName"))
			assert.Empty(t, q.Get("linkedinUrl"))
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client := NewClient("test-key", WithBaseURL(srv.URL))
		_, err := client.LookupPerson(context.Background(), PersonLookupRequest{
			FirstName:   "Maria",
			LastName:    "Souza",
			CompanyName: "Transportes Norte",
		})
		require.NoError(t, err)
	})
}

func TestLookupPersonRawPayload(t *testing.T) {
	body := `{"contact": {"data": {"phoneNumbers": [{"number": "+5547333"}]}}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	resp, err := client.LookupPerson(context.Background(), PersonLookupRequest{LinkedinURL: "x"})
	require.NoError(t, err)
	assert.JSONEq(t, body, string(resp.Raw))
}
