package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"budget-reconciler/internal/config"
	"budget-reconciler/internal/dto"
	"budget-reconciler/internal/models"
)

const emailTemplate = `<html>
<body>
<h2>Orçamento do cartão: {{.Today}}</h2>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Categoria</th><th>Valor</th><th>Limite</th><th>Porcentagem</th></tr>
{{- range .Categories}}
<tr><td>{{.Category}}</td><td>{{.Spent}}</td><td>{{.AdjustedLimit}}</td><td>{{.PercentUsed}}%</td></tr>
{{- end}}
<tr><th>Total</th><th>{{.Totals.Spent}}</th><th>{{.Totals.AdjustedLimit}}</th><th>{{.Totals.PercentUsed}}%</th></tr>
</table>
<p>Transações: {{.Totals.Transactions}} | Parceladas: {{.Totals.InInstallments}} | Última parcela: {{.Totals.OnLastInstallment}}</p>
{{- if .Warnings}}
<p>Avisos:</p>
<ul>
{{- range .Warnings}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
</body>
</html>
`

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailNotifier mails the category table as HTML. smtp.SendMail upgrades
// the connection with STARTTLS when the server offers it.
type EmailNotifier struct {
	cfg      config.SMTPConfig
	tmpl     *template.Template
	sendMail sendMailFunc
}

func NewEmailNotifier(cfg config.SMTPConfig) *EmailNotifier {
	return &EmailNotifier{
		cfg:      cfg,
		tmpl:     template.Must(template.New("report").Parse(emailTemplate)),
		sendMail: smtp.SendMail,
	}
}

func (n *EmailNotifier) Name() string {
	return "email"
}

func (n *EmailNotifier) Notify(ctx context.Context, report *models.BudgetReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message, err := n.buildMessage(report)
	if err != nil {
		return err
	}

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	addr := net.JoinHostPort(n.cfg.Host, strconv.Itoa(n.cfg.Port))
	if err := n.sendMail(addr, auth, n.cfg.From, n.cfg.To, message); err != nil {
		return fmt.Errorf("send mail via %s: %w", addr, err)
	}
	return nil
}

func (n *EmailNotifier) buildMessage(report *models.BudgetReport) ([]byte, error) {
	var body bytes.Buffer
	if err := n.tmpl.Execute(&body, dto.NewReportSummary(report)); err != nil {
		return nil, fmt.Errorf("render e-mail: %w", err)
	}

	subject := "Orçamento do cartão " + report.Today.Format(models.DateLayout)

	var message bytes.Buffer
	fmt.Fprintf(&message, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&message, "To: %s\r\n", strings.Join(n.cfg.To, ", "))
	fmt.Fprintf(&message, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	message.WriteString("\r\n")
	message.Write(body.Bytes())

	return message.Bytes(), nil
}
