package walletrpc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"private-payroll-gateway/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, "test-api-key", server.Client(), zerolog.Nop())
}

func TestClient_Connected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/status", r.URL.Path)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"connected": true, "address": "aleo1qqq"})
	})

	assert.True(t, client.Connected(context.Background()))
}

func TestClient_Connected_FalseOnTransportError(t *testing.T) {
	client := New("http://127.0.0.1:1", "", &http.Client{}, zerolog.Nop())

	assert.False(t, client.Connected(context.Background()))
}

func TestClient_Address(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"connected": true, "address": "aleo1qqq"})
	})

	addr, err := client.Address(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "aleo1qqq", addr)
}

func TestClient_Address_EmptyIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"connected": false})
	})

	_, err := client.Address(context.Background())

	assert.Error(t, err)
}

func TestClient_Submit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transactions", r.URL.Path)

		var body submitRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "payrollsystem.aleo", body.ProgramID)
		assert.Equal(t, "init_payroll", body.Function)
		assert.Equal(t, []string{"{ record }", "1000u64"}, body.Inputs)
		assert.Equal(t, uint64(1_000_000), body.Fee)

		json.NewEncoder(w).Encode(map[string]any{"transaction_id": "at1tx"})
	})

	txID, err := client.Submit(context.Background(), ports.OperationPayload{
		ProgramID: "payrollsystem.aleo",
		Function:  "init_payroll",
		Inputs:    []string{"{ record }", "1000u64"},
		Fee:       1_000_000,
	})

	require.NoError(t, err)
	assert.Equal(t, "at1tx", txID)
}

func TestClient_Submit_AlternateIDField(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": "at1alt"})
	})

	txID, err := client.Submit(context.Background(), ports.OperationPayload{Function: "disclose_spent"})

	require.NoError(t, err)
	assert.Equal(t, "at1alt", txID)
}

func TestClient_Submit_MissingIDIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{})
	})

	_, err := client.Submit(context.Background(), ports.OperationPayload{Function: "disclose_spent"})

	assert.Error(t, err)
}

func TestClient_Submit_ServerErrorSurfaced(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "insufficient fee", http.StatusBadRequest)
	})

	_, err := client.Submit(context.Background(), ports.OperationPayload{Function: "init_payroll"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient fee")
}

func TestClient_TransactionStatus_FlattensShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bare string", `"Finalized"`, "Finalized"},
		{"status field", `{"status": "Pending"}`, "Pending"},
		{"type field", `{"type": "Accepted"}`, "Accepted"},
		{"nested object", `{"status": {"type": "Rejected"}}`, "Rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/transactions/at1tx/status", r.URL.Path)
				w.Write([]byte(tt.body))
			})

			status, err := client.TransactionStatus(context.Background(), "at1tx")

			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestClient_TransactionStatus_NoStatusFieldIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unrelated": 1}`))
	})

	_, err := client.TransactionStatus(context.Background(), "at1tx")

	assert.Error(t, err)
}

func TestClient_Records_BareArray(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/records", r.URL.Path)
		assert.Equal(t, "payrollsystem.aleo", r.URL.Query().Get("program"))
		assert.Equal(t, "true", r.URL.Query().Get("plaintext"))
		w.Write([]byte(`[{"id": "r1"}, {"id": "r2"}]`))
	})

	records, err := client.Records(context.Background(), "payrollsystem.aleo", true)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "r1", records[0]["id"])
}

func TestClient_Records_Envelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"records": [{"id": "r1"}]}`))
	})

	records, err := client.Records(context.Background(), "credits.aleo", false)

	require.NoError(t, err)
	require.Len(t, records, 1)
}
