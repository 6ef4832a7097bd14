package ui

import (
	"fmt"
	"html"

	"likebot/internal/domain/model"
)

// All messages are rendered as Telegram HTML. Every value that originates
// from the user or the likes API goes through html.EscapeString before it
// is embedded.

func UsageMessage() string {
	return "Wrong usage. Correct usage: /like <region> <UID>"
}

func InvalidUIDMessage() string {
	return "Invalid UID format. The UID must contain digits only."
}

func GroupOnlyMessage() string {
	return "This command must be used in a group."
}

func QuotaExceededMessage() string {
	return "You have reached your maximum number of like requests for today. Please try again tomorrow."
}

func UpstreamFailureMessage() string {
	return "Failed to fetch data from the API. Please try again later."
}

func LimitReachedMessage(info model.LikeInfo) string {
	return fmt.Sprintf(
		"<b>%s</b> has already received the maximum number of likes for today. Please try again tomorrow or provide a different UID.\nUID: <code>%s</code>",
		html.EscapeString(info.Name),
		html.EscapeString(info.UID),
	)
}

func SuccessMessage(info model.LikeInfo) string {
	return fmt.Sprintf(
		"<b>✅ Like request successful!</b>\n\n"+
			"<b>👤 Name:</b> %s\n"+
			"<b>🆔 UID:</b> <code>%s</code>\n"+
			"<b>⭐ Level:</b> %s\n"+
			"<b>📈 Exp:</b> %s\n"+
			"<b>👍 Likes (before):</b> %s\n"+
			"<b>👍 Likes (after):</b> %s\n"+
			"<b>❤️ Likes given:</b> %s\n\n"+
			"Thank you!",
		html.EscapeString(info.Name),
		html.EscapeString(info.UID),
		html.EscapeString(info.Level),
		html.EscapeString(info.Exp),
		html.EscapeString(info.LikesBefore),
		html.EscapeString(info.LikesAfter),
		html.EscapeString(info.LikesGiven),
	)
}

func StartMessage() string {
	return "Send /like <region> <UID> in a group to request likes for a player."
}
