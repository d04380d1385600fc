package events

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Event is a single entry of a client's progression audit trail, such as:
//   - xp awarded (source, amount, new total)
//   - level up (from, to)
//   - badge unlocked (badge id)
//   - streak reset (streak length before the reset)
type Event struct {
	ID        uuid.UUID         `json:"id"`
	ClientID  uuid.UUID         `json:"clientId"`
	Type      EventType         `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Data      map[string]string `json:"data"`
}

func NewXPAwardedEvent(clientID uuid.UUID, source string, xp, totalXP int, ts time.Time) Event {
	return Event{
		ID:        uuid.New(),
		ClientID:  clientID,
		Type:      EventTypeXPAwarded,
		Timestamp: ts,
		Data: map[string]string{
			"source":  source,
			"xp":      strconv.Itoa(xp),
			"totalXp": strconv.Itoa(totalXP),
		},
	}
}

func NewLevelUpEvent(clientID uuid.UUID, from, to int, ts time.Time) Event {
	return Event{
		ID:        uuid.New(),
		ClientID:  clientID,
		Type:      EventTypeLevelUp,
		Timestamp: ts,
		Data: map[string]string{
			"from": strconv.Itoa(from),
			"to":   strconv.Itoa(to),
		},
	}
}

func NewBadgeUnlockedEvent(clientID uuid.UUID, badge string, ts time.Time) Event {
	return Event{
		ID:        uuid.New(),
		ClientID:  clientID,
		Type:      EventTypeBadgeUnlocked,
		Timestamp: ts,
		Data: map[string]string{
			"badge": badge,
		},
	}
}

func NewStreakResetEvent(clientID uuid.UUID, previousStreak int, ts time.Time) Event {
	return Event{
		ID:        uuid.New(),
		ClientID:  clientID,
		Type:      EventTypeStreakReset,
		Timestamp: ts,
		Data: map[string]string{
			"previousStreak": strconv.Itoa(previousStreak),
		},
	}
}

// EventType can be one of:
//   - xp_awarded
//   - level_up
//   - badge_unlocked
//   - streak_reset
type EventType string

const (
	EventTypeXPAwarded     EventType = "xp_awarded"
	EventTypeLevelUp       EventType = "level_up"
	EventTypeBadgeUnlocked EventType = "badge_unlocked"
	EventTypeStreakReset   EventType = "streak_reset"
)

func (et EventType) String() string {
	return string(et)
}

func (et EventType) IsValid() bool {
	switch et {
	case EventTypeXPAwarded,
		EventTypeLevelUp,
		EventTypeBadgeUnlocked,
		EventTypeStreakReset:
		return true
	default:
		return false
	}
}
