package services

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"
	"sync"
	"time"

	"budget-reconciler/internal/config"
	"budget-reconciler/internal/dto"
	"budget-reconciler/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const telegramTimeout = 10 * time.Second

// TelegramNotifier posts the category table to a chat. The bot is created on
// first use so an unreachable API never blocks startup.
type TelegramNotifier struct {
	cfg      config.TelegramConfig
	endpoint string

	mu  sync.Mutex
	bot *tgbotapi.BotAPI
}

func NewTelegramNotifier(cfg config.TelegramConfig) *TelegramNotifier {
	return &TelegramNotifier{
		cfg:      cfg,
		endpoint: tgbotapi.APIEndpoint,
	}
}

func (n *TelegramNotifier) Name() string {
	return "telegram"
}

func (n *TelegramNotifier) Notify(ctx context.Context, report *models.BudgetReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	bot, err := n.client()
	if err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.cfg.ChatID, telegramText(report))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}

func (n *TelegramNotifier) client() (*tgbotapi.BotAPI, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.bot != nil {
		return n.bot, nil
	}

	bot, err := tgbotapi.NewBotAPIWithClient(n.cfg.BotToken, n.endpoint, &http.Client{Timeout: telegramTimeout})
	if err != nil {
		return nil, fmt.Errorf("connect telegram bot: %w", err)
	}
	n.bot = bot
	return bot, nil
}

// telegramText renders the summary as a fixed-width table
func telegramText(report *models.BudgetReport) string {
	summary := dto.NewReportSummary(report)

	var b strings.Builder
	fmt.Fprintf(&b, "<b>Orçamento do cartão %s</b>\n<pre>\n", summary.Today)
	fmt.Fprintf(&b, "%-24s %10s %10s %7s\n", "categoria", "valor", "limite", "%")
	for _, line := range summary.Categories {
		fmt.Fprintf(&b, "%-24s %10s %10s %7s\n",
			html.EscapeString(line.Category), line.Spent, line.AdjustedLimit, line.PercentUsed)
	}
	fmt.Fprintf(&b, "%-24s %10s %10s %7s\n</pre>\n",
		"total", summary.Totals.Spent, summary.Totals.AdjustedLimit, summary.Totals.PercentUsed)
	fmt.Fprintf(&b, "Parceladas: %d | Última parcela: %d",
		summary.Totals.InInstallments, summary.Totals.OnLastInstallment)

	if len(summary.Warnings) > 0 {
		fmt.Fprintf(&b, "\nAvisos: %d", len(summary.Warnings))
	}
	return b.String()
}
