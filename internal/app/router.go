package app

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"likebot/internal/services/likes"
	"likebot/internal/ui"
)

func (a *App) routeUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message != nil {
		a.routeMessage(ctx, update.Message)
	}
}

func (a *App) routeMessage(ctx context.Context, message *tgbotapi.Message) {
	if message == nil || message.From == nil || !message.IsCommand() {
		return
	}

	switch message.Command() {
	case "start":
		a.reply(message, ui.StartMessage())
	case "like":
		a.handleLike(ctx, message)
	}
}

func (a *App) handleLike(ctx context.Context, message *tgbotapi.Message) {
	req := likes.Request{
		ChatID:    message.Chat.ID,
		UserID:    message.From.ID,
		IsPrivate: message.Chat.IsPrivate(),
		Args:      strings.Fields(message.CommandArguments()),
	}

	result := a.likesService.HandleLike(ctx, req)
	a.reply(message, renderResult(result))
}

func renderResult(result likes.Result) string {
	switch result.Outcome {
	case likes.OutcomeBadArgs:
		return ui.UsageMessage()
	case likes.OutcomeBadUID:
		return ui.InvalidUIDMessage()
	case likes.OutcomeGroupOnly:
		return ui.GroupOnlyMessage()
	case likes.OutcomeQuotaExceeded:
		return ui.QuotaExceededMessage()
	case likes.OutcomeUpstreamFailure:
		return ui.UpstreamFailureMessage()
	case likes.OutcomeLimitReached:
		return ui.LimitReachedMessage(result.Info)
	default:
		return ui.SuccessMessage(result.Info)
	}
}

func (a *App) reply(message *tgbotapi.Message, text string) {
	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyToMessageID = message.MessageID
	if err := a.tg.Send(msg); err != nil {
		a.logger.Error("send reply", "error", err, "chat_id", message.Chat.ID)
	}
}
