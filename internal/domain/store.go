package domain

// HistoryStore keeps per-chat conversation history for front-ends that hold
// one conversation per external chat id (the Telegram adapter). History lives
// in memory only and is dropped on persona switch.
type HistoryStore interface {
	Add(chatID int64, msg ChatMessage)
	Recent(chatID int64, limit int) []ChatMessage
	Reset(chatID int64)
}
