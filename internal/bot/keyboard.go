package bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Each button sends a ready "feld: wert" line.
func departmentKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("Abteilung: Obst & Gemüse"),
			tgbotapi.NewKeyboardButton("Abteilung: Trocken Sortiment"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("Abteilung: Getränke"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("Art: Normalpreis"),
			tgbotapi.NewKeyboardButton("Art: Aktion"),
			tgbotapi.NewKeyboardButton("Art: Bio"),
		),
	)
}
