package worker

// Processes receipt jobs from QueueTicket: after a checkout commits, a job
// with the folio and totals is enqueued and the customer gets a plain-text
// ticket by email. SMTP calls go through the circuit breaker so a downed
// relay fast-fails instead of blocking a worker for the full SMTP timeout.

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/infra"

	"github.com/rs/zerolog/log"
)

// TicketJobPayload matches what VentaService enqueues on checkout.
type TicketJobPayload struct {
	Folio         string `json:"folio"`
	ClienteEmail  string `json:"cliente_email"`
	ClienteNombre string `json:"cliente_nombre"`
	Total         string `json:"total"`
}

type TicketWorker struct {
	mailer *infra.Mailer
	cb     *infra.CircuitBreaker
}

func NewTicketWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker) *TicketWorker {
	return &TicketWorker{mailer: mailer, cb: cb}
}

func (w *TicketWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload TicketJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Malformed payloads never succeed; don't burn retries on them.
		log.Error().Err(err).Msg("ticket_worker: invalid payload")
		return nil
	}
	if payload.ClienteEmail == "" {
		log.Warn().Str("folio", payload.Folio).Msg("ticket_worker: empty cliente_email, skipping")
		return nil
	}

	err := w.cb.Execute(func() error {
		return w.mailer.SendTicket(payload.ClienteEmail, payload.ClienteNombre, payload.Folio, payload.Total)
	})
	if err != nil {
		if errors.Is(err, infra.ErrCircuitOpen) {
			log.Warn().Str("folio", payload.Folio).Msg("ticket_worker: circuit open, will retry")
		} else {
			log.Error().Err(err).Str("to", payload.ClienteEmail).Msg("ticket_worker: send failed")
		}
		return err
	}
	log.Info().Str("folio", payload.Folio).Str("to", payload.ClienteEmail).Msg("ticket_worker: ticket sent")
	return nil
}
