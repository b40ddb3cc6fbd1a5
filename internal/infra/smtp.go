package infra

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/config"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for outbound mail: ticket receipts after a
// checkout and the daily corte summary.
type Mailer struct {
	host          string
	port          int
	user          string
	password      string
	addr          string
	nombreEmpresa string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:          cfg.SMTPHost,
		port:          cfg.SMTPPort,
		user:          cfg.SMTPUser,
		password:      cfg.SMTPPassword,
		addr:          fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		nombreEmpresa: cfg.NombreEmpresa,
	}
}

// SendTicket emails a plain-text receipt for a checkout.
func (m *Mailer) SendTicket(to, clienteNombre, folio, total string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", m.nombreEmpresa)
	fmt.Fprintf(&b, "Hola %s,\n\n", clienteNombre)
	fmt.Fprintf(&b, "Gracias por su compra.\n\n")
	fmt.Fprintf(&b, "Folio:  %s\n", folio)
	fmt.Fprintf(&b, "Total:  $%s\n", total)

	return m.send(to, fmt.Sprintf("Ticket de venta %s", folio), b.String())
}

// SendCorte emails the daily cash-flow summary.
func (m *Mailer) SendCorte(to string, flujo *dto.FlujoCajaResponse) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Corte de caja %s\n\n", flujo.Desde)
	fmt.Fprintf(&b, "Ingresos:\n")
	for metodo, monto := range flujo.IngresosPorMetodo {
		fmt.Fprintf(&b, "  %-16s $%s\n", metodo, monto.StringFixed(2))
	}
	fmt.Fprintf(&b, "  total            $%s\n\n", flujo.TotalIngresos.StringFixed(2))
	fmt.Fprintf(&b, "Gastos:   $%s\n", flujo.TotalGastos.StringFixed(2))
	fmt.Fprintf(&b, "Compras:  $%s\n", flujo.TotalCompras.StringFixed(2))
	fmt.Fprintf(&b, "Neto:     $%s\n", flujo.Neto.StringFixed(2))

	return m.send(to, fmt.Sprintf("Corte de caja %s — %s", flujo.Desde, m.nombreEmpresa), b.String())
}

func (m *Mailer) send(to, subject, body string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
