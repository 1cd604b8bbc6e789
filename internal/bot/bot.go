// Package bot generates price tags from Telegram chat messages.
package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"preizo/internal/label"
	"preizo/internal/metrics"
	"preizo/internal/service"

	"github.com/cenkalti/backoff/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Generator interface {
	Generate(raw label.RawInput) (*service.Document, error)
}

type Limiter interface {
	Exceeded(ctx context.Context, subject, action string) (bool, error)
}

// sender is the part of the Telegram API the handlers use.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Deps are the collaborators of a Bot. Limiter and Metrics may be nil.
type Deps struct {
	Generator Generator
	Drafts    DraftStore
	Limiter   Limiter
	Metrics   *metrics.Registry
}

type Bot struct {
	api     *tgbotapi.BotAPI
	sender  sender
	gen     Generator
	drafts  DraftStore
	limiter Limiter
	metrics *metrics.Registry
	logger  *zap.Logger
	mu      sync.Mutex
}

// New logs in to Telegram, retrying transient failures for up to a minute.
func New(ctx context.Context, token string, debug bool, deps Deps, logger *zap.Logger) (*Bot, error) {
	const operation = "bot.New"

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = time.Minute

	var botAPI *tgbotapi.BotAPI
	err := backoff.RetryNotify(
		func() error {
			var err error
			botAPI, err = tgbotapi.NewBotAPI(token)
			return err
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, d time.Duration) {
			logger.Warn("Telegram login failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", d))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create bot API: %w", operation, err)
	}

	botAPI.Debug = debug

	logger.Info("Bot authorized",
		zap.String("username", botAPI.Self.UserName),
		zap.Int64("id", botAPI.Self.ID))

	b := newBot(botAPI, deps, logger)
	b.api = botAPI
	return b, nil
}

func newBot(s sender, deps Deps, logger *zap.Logger) *Bot {
	drafts := deps.Drafts
	if drafts == nil {
		drafts = NewMemoryDrafts()
	}
	return &Bot{
		sender:  s,
		gen:     deps.Generator,
		drafts:  drafts,
		limiter: deps.Limiter,
		metrics: deps.Metrics,
		logger:  logger,
	}
}

func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Starting bot")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Shutting down bot")
			b.api.StopReceivingUpdates()
			return nil

		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.mu.Lock()
			b.processMessage(ctx, update.Message)
			b.mu.Unlock()
		}
	}
}

func (b *Bot) processMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	b.logger.Debug("Processing message",
		zap.Int64("chat_id", chatID),
		zap.String("text", msg.Text))

	if msg.IsCommand() {
		b.handleCommand(ctx, chatID, msg.Command())
		return
	}
	b.handleFields(ctx, chatID, msg.Text)
}

func (b *Bot) sendMessage(msg tgbotapi.MessageConfig) {
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Int64("chat_id", msg.ChatID),
			zap.String("text", msg.Text),
			zap.Error(err))
	}
}

func (b *Bot) sendError(chatID int64, text string) {
	b.sendMessage(tgbotapi.NewMessage(chatID, "❌ "+text))
}
