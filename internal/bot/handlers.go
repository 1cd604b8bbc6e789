package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"preizo/internal/label"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	CommandStart = "start"
	CommandHelp  = "help"
	CommandNew   = "neu"
	CommandShow  = "zeigen"
)

const helpText = `Schicke mir die Angaben für ein Preisschild, eine Zeile pro Feld:

abteilung: Getränke
art: Aktion
hersteller: Bauer
produkt: Apfelsaft
menge: 1
einheit: l
preis: 1,99
pfand: 0,25

Weitere Felder: zusatzinfo, sorten, verpackung, bio, wiege nr, gebinde, gebindegröße, inhalt ml.
Jede Nachricht ergänzt den aktuellen Entwurf, ein leerer Wert löscht ein Feld.

/neu - Entwurf verwerfen
/zeigen - Entwurf anzeigen
/help - Diese Hilfe`

func (b *Bot) handleCommand(ctx context.Context, chatID int64, command string) {
	switch command {
	case CommandStart:
		b.handleStart(ctx, chatID)
	case CommandHelp:
		b.handleHelp(chatID)
	case CommandNew:
		b.handleNew(ctx, chatID)
	case CommandShow:
		b.handleShow(ctx, chatID)
	default:
		b.sendError(chatID, "Unbekannter Befehl. /help zeigt alle Befehle.")
	}
}

func (b *Bot) handleStart(ctx context.Context, chatID int64) {
	if err := b.drafts.Clear(ctx, chatID); err != nil {
		b.logger.Error("Failed to clear draft",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}

	msg := tgbotapi.NewMessage(chatID, "Hallo! 👋 Ich erstelle Preisschilder.\n\n"+helpText)
	msg.ReplyMarkup = departmentKeyboard()
	b.sendMessage(msg)
}

func (b *Bot) handleHelp(chatID int64) {
	b.sendMessage(tgbotapi.NewMessage(chatID, helpText))
}

func (b *Bot) handleNew(ctx context.Context, chatID int64) {
	if err := b.drafts.Clear(ctx, chatID); err != nil {
		b.logger.Error("Failed to clear draft",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Entwurf konnte nicht verworfen werden")
		return
	}

	msg := tgbotapi.NewMessage(chatID, "Neuer Entwurf. Welche Abteilung?")
	msg.ReplyMarkup = departmentKeyboard()
	b.sendMessage(msg)
}

func (b *Bot) handleShow(ctx context.Context, chatID int64) {
	draft, err := b.drafts.Load(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to load draft",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Entwurf konnte nicht geladen werden")
		return
	}
	if len(draft) == 0 {
		b.sendMessage(tgbotapi.NewMessage(chatID, "Der Entwurf ist leer."))
		return
	}
	b.sendMessage(tgbotapi.NewMessage(chatID, strings.Join(draft.Lines(), "\n")))
}

// handleFields merges the message into the chat's draft and answers with
// the rendered price tag.
func (b *Bot) handleFields(ctx context.Context, chatID int64, text string) {
	if b.limited(ctx, chatID) {
		b.sendError(chatID, "Zu viele Anfragen. Bitte kurz warten.")
		return
	}

	fields, unknown := ParseFields(text)
	if len(fields) == 0 {
		b.sendError(chatID, "Keine Felder erkannt. /help zeigt das Format.")
		return
	}

	draft, err := b.drafts.Load(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to load draft",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Entwurf konnte nicht geladen werden")
		return
	}
	draft.Merge(fields)
	if err := b.drafts.Save(ctx, chatID, draft); err != nil {
		b.logger.Error("Failed to save draft",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}

	raw, err := label.RawFromMap(draft)
	if err != nil {
		b.logger.Error("Failed to decode draft",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Entwurf ist beschädigt, bitte /neu senden")
		return
	}

	doc, err := b.gen.Generate(raw)
	if err != nil {
		b.logger.Error("Failed to generate price tag",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Preisschild konnte nicht erstellt werden")
		return
	}

	upload := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: doc.Filename, Bytes: doc.Data})
	upload.Caption = caption(doc.Input.Defaulted, unknown)
	if _, err := b.sender.Send(upload); err != nil {
		b.logger.Error("Failed to send document",
			zap.Int64("chat_id", chatID),
			zap.String("filename", doc.Filename),
			zap.Error(err))
	}
}

func (b *Bot) limited(ctx context.Context, chatID int64) bool {
	if b.limiter == nil {
		return false
	}
	exceeded, err := b.limiter.Exceeded(ctx, strconv.FormatInt(chatID, 10), "generate")
	if err != nil {
		b.logger.Warn("Rate limit check failed",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		return false
	}
	if exceeded && b.metrics != nil {
		b.metrics.RateLimited.WithLabelValues("telegram").Inc()
	}
	return exceeded
}

func caption(defaulted, unknown []string) string {
	var notes []string
	if len(defaulted) > 0 {
		notes = append(notes, fmt.Sprintf("⚠️ Als 0 angenommen: %s", strings.Join(defaulted, ", ")))
	}
	if len(unknown) > 0 {
		notes = append(notes, fmt.Sprintf("⚠️ Ignoriert: %s", strings.Join(unknown, ", ")))
	}
	return strings.Join(notes, "\n")
}
