package cli

import (
	"context"
)

// LinkTelegram issues a one-time link token to hand to the platform bot.
// The token is short-lived; the profile shows the linked chat after use.
func (a *App) LinkTelegram(ctx context.Context) {
	if u := a.session.User(); u != nil && u.TelegramChatID != nil {
		linkedAt := "-"
		if u.TelegramLinkedAt != nil {
			linkedAt = formatTime(*u.TelegramLinkedAt)
		}
		_, _ = printlnFn("Telegram already linked (chat", formatMaybeInt(u.TelegramChatID), "since", linkedAt+")")
		return
	}

	token, err := a.api.GenerateTelegramLink(ctx)
	if err != nil {
		_, _ = printlnFn("Failed to generate link token:", err.Error())
		return
	}
	_, _ = printlnFn("Send this one-time code to the platform bot to link your account:")
	_, _ = printlnFn("  " + token)
}
