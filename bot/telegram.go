package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramTransport feeds Telegram updates into the machine over long
// polling. Each update is handled on its own goroutine; the session mutex
// keeps turns of one chat sequential while leaving other chats unaffected.
type TelegramTransport struct {
	api      *tgbotapi.BotAPI
	machine  *Machine
	sessions *SessionStore
}

func NewTelegramTransport(token string, machine *Machine, sessions *SessionStore) (*TelegramTransport, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	log.Printf("telegram: authorized as @%s", api.Self.UserName)
	return &TelegramTransport{api: api, machine: machine, sessions: sessions}, nil
}

// Run blocks until the context is cancelled or the update channel closes.
func (t *TelegramTransport) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := t.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			go t.handleMessage(ctx, update.Message)
		}
	}
}

func (t *TelegramTransport) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := strconv.FormatInt(msg.Chat.ID, 10)
	s, created := t.sessions.GetOrCreate(chatID)

	s.Mu.Lock()
	defer s.Mu.Unlock()

	var replies []Outgoing
	if created || (msg.IsCommand() && msg.Command() == "start") {
		replies = t.machine.Start(s)
	} else {
		in := Incoming{Text: msg.Text}
		if len(msg.Photo) > 0 {
			// Largest size last; its file id is the opaque photo handle.
			in.PhotoID = msg.Photo[len(msg.Photo)-1].FileID
			in.Text = msg.Caption
		}
		replies = t.machine.Handle(ctx, s, in)
	}

	for _, r := range replies {
		t.send(msg.Chat.ID, r)
	}
}

func (t *TelegramTransport) send(chatID int64, out Outgoing) {
	m := tgbotapi.NewMessage(chatID, out.Text)
	if len(out.Keyboard) > 0 {
		rows := make([][]tgbotapi.KeyboardButton, 0, len(out.Keyboard))
		for _, row := range out.Keyboard {
			buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
			for _, label := range row {
				buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
			}
			rows = append(rows, buttons)
		}
		keyboard := tgbotapi.NewReplyKeyboard(rows...)
		keyboard.OneTimeKeyboard = true
		m.ReplyMarkup = keyboard
	} else if out.RemoveKeyboard {
		m.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	}
	if _, err := t.api.Send(m); err != nil {
		log.Printf("telegram: failed to send to chat %d: %v", chatID, err)
	}
}
