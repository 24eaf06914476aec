// Package chat is a room-based chat in which users never talk to each other
// directly, only through a Mediator.
package chat

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
)

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrNotMember         = errors.New("not a member of the room")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrSenderNotFound    = errors.New("sender not found")
)

// SystemSender is the sender name of messages generated by the mediator
// itself, e.g. join and leave notifications.
const SystemSender = "SYSTEM"

// Mediator routes messages between users.
type Mediator interface {
	Register(user *User, room string)
	Unregister(user *User, room string)
	SendRoomMessage(room string, from *User, text string) error
	SendPrivateMessage(from, to *User, text string) error
	ListRooms() []string
}

// Message is a message as received by a user.
// Room is empty for private messages.
type Message struct {
	Room string
	From string
	Text string
}

func (m Message) String() string {
	if m.Room == "" {
		return fmt.Sprintf("[private] %s: %s", m.From, m.Text)
	}
	return fmt.Sprintf("[%s] %s: %s", m.Room, m.From, m.Text)
}

// RoomMediator is a Mediator keeping rooms of members.
// Members receive messages in the order they joined.
type RoomMediator struct {
	rooms map[string][]*User
}

// NewRoomMediator returns a mediator without any rooms.
func NewRoomMediator() *RoomMediator {
	return &RoomMediator{rooms: make(map[string][]*User)}
}

// Register adds the user to the room, creating the room if needed.
// All members, including the new one, are notified.
// Registering a member again has no effect.
func (m *RoomMediator) Register(user *User, room string) {
	members := m.rooms[room]
	if indexOf(members, user) >= 0 {
		return
	}
	m.rooms[room] = append(members, user)
	m.broadcastSystem(room, fmt.Sprintf("%s joined %s", user.Name, room))
}

// Unregister removes the user from the room and notifies the remaining
// members. The room itself stays, even if empty.
func (m *RoomMediator) Unregister(user *User, room string) {
	members, ok := m.rooms[room]
	if !ok {
		return
	}
	i := indexOf(members, user)
	if i < 0 {
		return
	}
	m.rooms[room] = append(members[:i:i], members[i+1:]...)
	m.broadcastSystem(room, fmt.Sprintf("%s left %s", user.Name, room))
}

// SendRoomMessage delivers the text to all members of the room except the
// sender.
func (m *RoomMediator) SendRoomMessage(room string, from *User, text string) error {
	if from == nil {
		return ErrSenderNotFound
	}
	members, ok := m.rooms[room]
	if !ok {
		return fmt.Errorf("room '%s': %w", room, ErrRoomNotFound)
	}
	if indexOf(members, from) < 0 {
		return fmt.Errorf("%s in room '%s': %w", from.Name, room, ErrNotMember)
	}
	for _, u := range members {
		if u != from {
			u.receive(Message{Room: room, From: from.Name, Text: text})
		}
	}
	return nil
}

// SendPrivateMessage delivers the text directly to the recipient.
func (m *RoomMediator) SendPrivateMessage(from, to *User, text string) error {
	if from == nil {
		return ErrSenderNotFound
	}
	if to == nil {
		return ErrRecipientNotFound
	}
	to.receive(Message{From: from.Name, Text: text})
	return nil
}

// ListRooms returns the names of all rooms in order.
func (m *RoomMediator) ListRooms() []string {
	rooms := make([]string, 0, len(m.rooms))
	for room := range m.rooms {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)
	return rooms
}

// Members returns the names of the room's members in order of joining.
func (m *RoomMediator) Members(room string) []string {
	names := []string{}
	for _, u := range m.rooms[room] {
		names = append(names, u.Name)
	}
	return names
}

func (m *RoomMediator) broadcastSystem(room, text string) {
	for _, u := range m.rooms[room] {
		u.receive(Message{Room: room, From: SystemSender, Text: text})
	}
}

func indexOf(users []*User, user *User) int {
	for i, u := range users {
		if u == user {
			return i
		}
	}
	return -1
}

// User is a chat participant.
type User struct {
	Name string

	mediator Mediator
	inbox    []Message
	log      zerolog.Logger
}

// NewUser returns a user talking through the given mediator.
func NewUser(name string, mediator Mediator, logger zerolog.Logger) *User {
	return &User{
		Name:     name,
		mediator: mediator,
		log:      logger.With().Str("component", "chat").Str("user", name).Logger(),
	}
}

func (u *User) Join(room string)  { u.mediator.Register(u, room) }
func (u *User) Leave(room string) { u.mediator.Unregister(u, room) }

func (u *User) SendToRoom(room, text string) error {
	return u.mediator.SendRoomMessage(room, u, text)
}

func (u *User) SendPrivate(to *User, text string) error {
	return u.mediator.SendPrivateMessage(u, to, text)
}

// Inbox returns all messages the user received, in order.
func (u *User) Inbox() []Message {
	result := make([]Message, len(u.inbox))
	copy(result, u.inbox)
	return result
}

func (u *User) receive(m Message) {
	u.inbox = append(u.inbox, m)
	u.log.Info().Str("room", m.Room).Str("from", m.From).Msgf("%s -> %s", m.String(), u.Name)
}
