package progression

import (
	"fmt"
)

// BadgeID is persisted by value in client profiles.
// Existing ids must never be renamed or removed.
type BadgeID string

const (
	BadgeStreak7    BadgeID = "STREAK_7"
	BadgeWorkouts10 BadgeID = "WORKOUTS_10"
	BadgeHabits100  BadgeID = "HABITS_100"
	BadgeHighVolume BadgeID = "HIGH_VOLUME"
)

// CatalogVersion is bumped whenever a badge is added to the catalog.
const CatalogVersion = 2

const (
	LocaleEN      Locale = "en"
	LocaleES      Locale = "es"
	DefaultLocale        = LocaleEN
)

type Locale string

func ParseLocale(s string) Locale {
	switch Locale(s) {
	case LocaleES:
		return LocaleES
	default:
		return DefaultLocale
	}
}

type Badge struct {
	ID           BadgeID
	Icon         string
	Names        map[Locale]string
	Descriptions map[Locale]string
}

func (b Badge) Name(locale Locale) string {
	if name, ok := b.Names[locale]; ok {
		return name
	}
	return b.Names[DefaultLocale]
}

func (b Badge) Description(locale Locale) string {
	if desc, ok := b.Descriptions[locale]; ok {
		return desc
	}
	return b.Descriptions[DefaultLocale]
}

var catalog = []Badge{
	{
		ID:   BadgeStreak7,
		Icon: "🔥",
		Names: map[Locale]string{
			LocaleEN: "Week Warrior",
			LocaleES: "Guerrero de la semana",
		},
		Descriptions: map[Locale]string{
			LocaleEN: "Stay active 7 days in a row",
			LocaleES: "Mantente activo 7 días seguidos",
		},
	},
	{
		ID:   BadgeWorkouts10,
		Icon: "🏋️",
		Names: map[Locale]string{
			LocaleEN: "Getting Strong",
			LocaleES: "Cogiendo fuerza",
		},
		Descriptions: map[Locale]string{
			LocaleEN: "Complete 10 workouts",
			LocaleES: "Completa 10 entrenamientos",
		},
	},
	{
		ID:   BadgeHabits100,
		Icon: "✅",
		Names: map[Locale]string{
			LocaleEN: "Habit Builder",
			LocaleES: "Constructor de hábitos",
		},
		Descriptions: map[Locale]string{
			LocaleEN: "Log 100 habits",
			LocaleES: "Registra 100 hábitos",
		},
	},
	{
		ID:   BadgeHighVolume,
		Icon: "💪",
		Names: map[Locale]string{
			LocaleEN: "High Volume",
			LocaleES: "Alto volumen",
		},
		Descriptions: map[Locale]string{
			LocaleEN: "Complete 20 or more sets in a single session",
			LocaleES: "Completa 20 series o más en una sola sesión",
		},
	},
}

var catalogByID = func() map[BadgeID]Badge {
	m := make(map[BadgeID]Badge, len(catalog))
	for _, b := range catalog {
		m[b.ID] = b
	}
	return m
}()

// Catalog returns all defined badges in a stable order.
func Catalog() []Badge {
	badges := make([]Badge, len(catalog))
	copy(badges, catalog)
	return badges
}

func LookupBadge(id BadgeID) (Badge, bool) {
	b, ok := catalogByID[id]
	return b, ok
}

func ParseBadgeID(s string) (BadgeID, error) {
	id := BadgeID(s)
	if _, ok := catalogByID[id]; !ok {
		return "", fmt.Errorf("unknown badge id [%s]", s)
	}
	return id, nil
}

type badgeRule struct {
	badge     BadgeID
	predicate func(p Profile) bool
}

// rules checked by the daily recompute, against already updated counters
var dailyRules = []badgeRule{
	{
		badge:     BadgeStreak7,
		predicate: func(p Profile) bool { return p.StreakDays >= 7 },
	},
	{
		badge:     BadgeWorkouts10,
		predicate: func(p Profile) bool { return p.TotalWorkouts >= 10 },
	},
	{
		badge:     BadgeHabits100,
		predicate: func(p Profile) bool { return p.TotalHabits >= 100 },
	},
}

// EvaluateDailyBadges returns the badges p qualifies for but has not unlocked yet.
func EvaluateDailyBadges(p Profile) []BadgeID {
	var unlocked []BadgeID
	for _, rule := range dailyRules {
		if p.HasBadge(rule.badge) {
			continue
		}
		if rule.predicate(p) {
			unlocked = append(unlocked, rule.badge)
		}
	}
	return unlocked
}

// BadgeView is a badge rendered in one locale.
type BadgeView struct {
	ID          BadgeID `json:"id"`
	Icon        string  `json:"icon"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
}

func (b Badge) View(locale Locale) BadgeView {
	return BadgeView{
		ID:          b.ID,
		Icon:        b.Icon,
		Name:        b.Name(locale),
		Description: b.Description(locale),
	}
}
