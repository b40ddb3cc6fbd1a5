package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketWorkerPayloadMalformado(t *testing.T) {
	w := NewTicketWorker(nil, nil)
	// A payload that can never parse must not be retried.
	assert.NoError(t, w.Process(context.Background(), json.RawMessage(`{"folio": 123`)))
}

func TestTicketWorkerSinEmail(t *testing.T) {
	w := NewTicketWorker(nil, nil)
	payload, err := json.Marshal(TicketJobPayload{Folio: "000001", ClienteNombre: "Ana"})
	require.NoError(t, err)
	assert.NoError(t, w.Process(context.Background(), payload))
}

func TestTicketJobPayloadClaves(t *testing.T) {
	// The checkout enqueues a plain map; the worker-side struct has to read
	// the same keys.
	raw, err := json.Marshal(map[string]interface{}{
		"folio":          "000042",
		"cliente_email":  "ana@example.com",
		"cliente_nombre": "Ana",
		"total":          "150.00",
	})
	require.NoError(t, err)

	var payload TicketJobPayload
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "000042", payload.Folio)
	assert.Equal(t, "ana@example.com", payload.ClienteEmail)
	assert.Equal(t, "150.00", payload.Total)
}
