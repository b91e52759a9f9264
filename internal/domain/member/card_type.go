package member

import (
	"fmt"
	"time"
)

// ===============================
// Card Type
// ===============================

type CardType string

const (
	CardActiveWorker        CardType = "active_worker"
	CardFamilyMember        CardType = "family_member"
	CardHealthySmartKids    CardType = "healthy_smart_kids"
	CardMumsBaby            CardType = "mums_baby"
	CardNewCouple           CardType = "new_couple"
	CardPregnantPreparation CardType = "pregnant_preparation"
	CardSenjaCeria          CardType = "senja_ceria"
)

// AllCardTypes lists every membership tier, in stats output order.
func AllCardTypes() []CardType {
	return []CardType{
		CardActiveWorker,
		CardFamilyMember,
		CardHealthySmartKids,
		CardMumsBaby,
		CardNewCouple,
		CardPregnantPreparation,
		CardSenjaCeria,
	}
}

func (t CardType) Valid() bool {
	switch t {
	case CardActiveWorker, CardFamilyMember, CardHealthySmartKids,
		CardMumsBaby, CardNewCouple, CardPregnantPreparation, CardSenjaCeria:
		return true
	}
	return false
}

// validityYears maps each tier to its card lifetime. Every tier currently
// ships with the same 5-year lifetime the original cards carried.
var validityYears = map[CardType]int{
	CardActiveWorker:        5,
	CardFamilyMember:        5,
	CardHealthySmartKids:    5,
	CardMumsBaby:            5,
	CardNewCouple:           5,
	CardPregnantPreparation: 5,
	CardSenjaCeria:          5,
}

func ValidityYears(t CardType) int {
	if y, ok := validityYears[t]; ok {
		return y
	}
	return 5
}

// ValidityLabel renders the human-readable period printed on the card,
// e.g. "VALID January 2026 - January 2031".
func ValidityLabel(t CardType, now time.Time) string {
	month := now.Month().String()
	return fmt.Sprintf("VALID %s %d - %s %d",
		month, now.Year(),
		month, now.Year()+ValidityYears(t),
	)
}
