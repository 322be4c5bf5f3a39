package notify

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"tradegate/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// Engine is the slice of the engine the bot talks to.
type Engine interface {
	Status(ctx context.Context) domain.TrustStatus
	Stats(ctx context.Context, includeUndone bool) domain.DayStats
	Limits(ctx context.Context) domain.TradingLimits
	UndoLast(ctx context.Context) (domain.ExecutionRecord, error)
}

// StartTelegramBot wires the command bot and, when TELEGRAM_CHAT_ID is set,
// registers a listener that pushes engine events to that chat.
func StartTelegramBot(dispatcher *Dispatcher, engine Engine) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/trust", func(c tele.Context) error {
		status := engine.Status(context.Background())
		msg := fmt.Sprintf(
			"Trust level: %s\nAuto-execute: %v\nPaused: %v\nEmergency stop: %v",
			status.Level, status.AutoExecute, status.Paused, status.EmergencyStop,
		)
		if status.Pending != nil {
			msg += fmt.Sprintf("\nPending change to: %s", status.Pending.Target)
		}
		return c.Send(msg)
	})

	b.Handle("/stats", func(c tele.Context) error {
		stats := engine.Stats(context.Background(), true)
		return c.Send(fmt.Sprintf(
			"Today\nTrades: %d\nPnL: $%.2f\nLoss streak: %d\nErrors: %d",
			stats.Trades, stats.PnL, stats.ConsecutiveLosses, stats.Errors,
		))
	})

	b.Handle("/limits", func(c tele.Context) error {
		limits := engine.Limits(context.Background())
		symbols := "any"
		if len(limits.AllowedSymbols) > 0 {
			symbols = strings.Join(limits.AllowedSymbols, ", ")
		}
		return c.Send(fmt.Sprintf(
			"Max position: $%.0f\nMax trades/day: %d\nMax daily loss: $%.0f\nSymbols: %s\nHours: %02d:00-%02d:00",
			limits.MaxPositionValue, limits.MaxDailyTrades, limits.MaxDailyLoss, symbols,
			limits.AllowedHours.Start, limits.AllowedHours.End,
		))
	})

	b.Handle("/undo", func(c tele.Context) error {
		rec, err := engine.UndoLast(context.Background())
		if err != nil {
			return c.Send(fmt.Sprintf("Nothing to undo: %v", err))
		}
		return c.Send(fmt.Sprintf("Undone: %s %s %g @ $%.2f", rec.Action, rec.Symbol, rec.Quantity, rec.Price))
	})

	if chatEnv := os.Getenv("TELEGRAM_CHAT_ID"); chatEnv != "" {
		chatID, err := strconv.ParseInt(chatEnv, 10, 64)
		if err != nil {
			log.Printf("invalid TELEGRAM_CHAT_ID %q: %v", chatEnv, err)
		} else {
			dispatcher.Register(&telegramListener{bot: b, chat: &tele.Chat{ID: chatID}})
		}
	}

	log.Println("Telegram bot started")
	go b.Start()
}

// telegramListener pushes engine events to a single chat.
type telegramListener struct {
	bot  *tele.Bot
	chat *tele.Chat
}

func (t *telegramListener) OnTrustLevelChanged(from, to domain.TrustLevel, autoExecute bool) {
	t.send(fmt.Sprintf("Trust level changed: %s -> %s (auto-execute: %v)", from, to, autoExecute))
}

func (t *telegramListener) OnTradeExecuted(rec domain.ExecutionRecord) {
	t.send(fmt.Sprintf(
		"Executed %s %s %g @ $%.2f (undoable until %s)",
		rec.Action, rec.Symbol, rec.Quantity, rec.Price, rec.UndoDeadline.Format("15:04:05"),
	))
}

func (t *telegramListener) OnUndoRequested(rec domain.ExecutionRecord) {
	t.send(fmt.Sprintf("Undone: %s %s %g @ $%.2f", rec.Action, rec.Symbol, rec.Quantity, rec.Price))
}

func (t *telegramListener) OnAdvisoryToast(severity domain.Severity, message string) {
	t.send(fmt.Sprintf("[%s] %s", strings.ToUpper(string(severity)), message))
}

func (t *telegramListener) send(msg string) {
	if _, err := t.bot.Send(t.chat, msg); err != nil {
		log.Printf("telegram push: %v", err)
	}
}
