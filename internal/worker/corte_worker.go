package worker

// Daily corte de caja. A cron entry enqueues one job per day with the date to
// summarize; the worker builds the cash-flow report and mails it to the
// configured inbox. Running it through the queue gives the corte the same
// retry/DLQ treatment as every other job.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/infra"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// FlujoProvider is the slice of the reporting service the corte needs.
type FlujoProvider interface {
	FlujoDeCaja(ctx context.Context, filter dto.ReporteFilter) (*dto.FlujoCajaResponse, error)
}

// CorteJobPayload names the calendar day to summarize.
type CorteJobPayload struct {
	Fecha string `json:"fecha"` // 2006-01-02
}

type CorteWorker struct {
	reportes FlujoProvider
	mailer   *infra.Mailer
	cb       *infra.CircuitBreaker
	destino  string
}

func NewCorteWorker(reportes FlujoProvider, mailer *infra.Mailer, cb *infra.CircuitBreaker, destino string) *CorteWorker {
	return &CorteWorker{reportes: reportes, mailer: mailer, cb: cb, destino: destino}
}

func (w *CorteWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload CorteJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("corte_worker: invalid payload")
		return nil
	}
	if w.destino == "" {
		log.Warn().Msg("corte_worker: CORTE_EMAIL not configured, skipping")
		return nil
	}

	flujo, err := w.reportes.FlujoDeCaja(ctx, dto.ReporteFilter{Desde: payload.Fecha, Hasta: payload.Fecha})
	if err != nil {
		log.Error().Err(err).Str("fecha", payload.Fecha).Msg("corte_worker: report failed")
		return err
	}

	err = w.cb.Execute(func() error {
		return w.mailer.SendCorte(w.destino, flujo)
	})
	if err != nil {
		log.Error().Err(err).Str("fecha", payload.Fecha).Msg("corte_worker: send failed")
		return err
	}
	log.Info().Str("fecha", payload.Fecha).Str("to", w.destino).Msg("corte_worker: corte sent")
	return nil
}

// StartCorteCron schedules the daily corte job. The returned cron is already
// started; callers stop it on shutdown.
func StartCorteCron(dispatcher *Dispatcher, spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		hoy := time.Now().Format("2006-01-02")
		if err := dispatcher.EnqueueCorte(ctx, CorteJobPayload{Fecha: hoy}); err != nil {
			log.Error().Err(err).Msg("corte cron: enqueue failed")
			return
		}
		log.Info().Str("fecha", hoy).Msg("corte cron: job enqueued")
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
