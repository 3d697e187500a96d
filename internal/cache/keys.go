package cache

import "fmt"

// Ключи сгруппированы по ресурсам, чтобы инвалидация была точечной:
// правка комнаты сбрасывает её detail-ключ и общий list-namespace,
// новое сообщение — только страницы своего матча.

func RoomsKey(bbox, filter string) string {
	if filter == "" {
		return fmt.Sprintf("rooms:%s", bbox)
	}
	return fmt.Sprintf("rooms:%s:%s", bbox, filter)
}

func RoomsPattern() string { return "rooms:*" }

func RoomKey(roomID string) string { return "room:" + roomID }

func MessagesKey(matchID string, limit, offset int) string {
	return fmt.Sprintf("messages:%s:%d:%d", matchID, limit, offset)
}

func MessagesPattern(matchID string) string { return "messages:" + matchID + ":*" }

func NotificationsKey(userID string) string { return "notifications:" + userID }

func ProfileKey(userID string) string { return "profile:" + userID }
