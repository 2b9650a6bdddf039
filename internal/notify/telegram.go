package notify

import (
	"bytes"
	"encoding/json"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nsip/grammar-quiz/internal/util"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

//
// delivers text messages to a single telegram chat
// through the bot api sendMessage method.
//
type Telegram struct {
	// printf template with slots for token and method,
	// e.g. https://api.telegram.org/bot%s/%s
	endpoint string
	token    string
	chatID   string
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

//
// create a telegram notifier.
// endpoint may be empty, in which case the public
// bot api is used.
//
func NewTelegram(endpoint, token, chatID string) *Telegram {
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	return &Telegram{endpoint: endpoint, token: token, chatID: chatID}
}

//
// send text to the configured chat, HTML parse mode.
// returns an error if the api could not be reached or
// did not accept the message.
//
func (t *Telegram) Notify(text string) error {

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    t.chatID,
		Text:      text,
		ParseMode: tgbotapi.ModeHTML,
	})
	if err != nil {
		return errors.Wrap(err, "cannot encode telegram message")
	}

	headers := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}

	url := fmt.Sprintf(t.endpoint, t.token, "sendMessage")
	res, err := util.Fetch("POST", url, headers, bytes.NewReader(payload))
	if err != nil {
		if desc := gjson.GetBytes(res, "description"); desc.Exists() {
			return errors.Wrapf(err, "telegram sendMessage failed: %s", desc.String())
		}
		return errors.Wrap(err, "telegram sendMessage failed")
	}

	if !gjson.GetBytes(res, "ok").Bool() {
		return errors.Errorf("telegram rejected message: %s", gjson.GetBytes(res, "description").String())
	}

	return nil
}
