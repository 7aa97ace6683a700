package telegram

import (
	tele "gopkg.in/telebot.v4"

	"github.com/kingsalmon6969-svg/hermax-bot/internal/dispatch"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/media"
)

// mainMenu builds the persistent reply keyboard with every feature.
func mainMenu() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}

	rows := make([]tele.Row, 0, len(dispatch.MainMenuRows))
	for _, labels := range dispatch.MainMenuRows {
		row := make(tele.Row, 0, len(labels))
		for _, label := range labels {
			row = append(row, markup.Text(label))
		}
		rows = append(rows, row)
	}
	markup.Reply(rows...)
	return markup
}

// backMenu builds the single-button keyboard shown inside a mode.
func backMenu() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(markup.Row(markup.Text(dispatch.LabelBack)))
	return markup
}

// webAppMenu builds an inline keyboard with one web-app button.
func webAppMenu(link *dispatch.WebAppLink) *tele.ReplyMarkup {
	return &tele.ReplyMarkup{
		InlineKeyboard: [][]tele.InlineButton{{
			{Text: link.Label, WebApp: &tele.WebApp{URL: link.URL}},
		}},
	}
}

// effectButtonsPerRow lays the effect picker out two per row, the
// option pickers at each effect's own width.
const effectButtonsPerRow = 2

var optionButtonsPerRow = map[string]int{
	"slow":    3,
	"bass":    3,
	"bit":     2,
	"galaxy":  1,
	"rain":    1,
	"deffect": 2,
}

// effectsMenu builds the inline keyboard of effect categories.
// Callback data is "effect_<key>".
func effectsMenu() *tele.ReplyMarkup {
	var rows [][]tele.InlineButton
	var row []tele.InlineButton
	for _, e := range media.Effects() {
		row = append(row, tele.InlineButton{Text: e.Label, Data: "effect_" + e.Key})
		if len(row) == effectButtonsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return &tele.ReplyMarkup{InlineKeyboard: rows}
}

// optionsMenu builds the inline keyboard of options for one effect.
// Callback data is "opt_<key>". Unknown effects produce an empty
// keyboard, mirroring what the user would see for a stale callback.
func optionsMenu(effectKey string) *tele.ReplyMarkup {
	e := media.EffectByKey(effectKey)
	if e == nil {
		return &tele.ReplyMarkup{}
	}

	perRow := optionButtonsPerRow[effectKey]
	if perRow <= 0 {
		perRow = 2
	}

	var rows [][]tele.InlineButton
	var row []tele.InlineButton
	for _, o := range e.Options {
		row = append(row, tele.InlineButton{Text: o.Label, Data: "opt_" + o.Key})
		if len(row) == perRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return &tele.ReplyMarkup{InlineKeyboard: rows}
}
