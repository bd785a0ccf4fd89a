package domain

import (
	"time"

	"github.com/google/uuid"
)

// PromptKind is the fixed catalog of profile prompts. Answers are keyed by
// kind, one answer per (profile, kind).
type PromptKind string

const (
	PromptSpontaneousThing PromptKind = "spontaneous_thing"
	PromptPerfectDay       PromptKind = "perfect_day"
	PromptPassionateAbout  PromptKind = "passionate_about"
	PromptWeirdestSkill    PromptKind = "weirdest_skill"
	PromptUnpopularOpinion PromptKind = "unpopular_opinion"
	PromptTerribleAt       PromptKind = "terrible_at"
	PromptGreenFlag        PromptKind = "green_flag"
	PromptRedFlag          PromptKind = "red_flag"
	PromptDatingMe         PromptKind = "dating_me"
	PromptDinnerGuest      PromptKind = "dinner_guest"
	PromptHiddenTalent     PromptKind = "hidden_talent"
	PromptLastAdventure    PromptKind = "last_adventure"
)

// PromptKinds is the display order on profile pages.
var PromptKinds = []PromptKind{
	PromptSpontaneousThing,
	PromptPerfectDay,
	PromptPassionateAbout,
	PromptWeirdestSkill,
	PromptUnpopularOpinion,
	PromptTerribleAt,
	PromptGreenFlag,
	PromptRedFlag,
	PromptDatingMe,
	PromptDinnerGuest,
	PromptHiddenTalent,
	PromptLastAdventure,
}

var promptTexts = map[PromptKind]string{
	PromptSpontaneousThing: "The most spontaneous thing I've ever done",
	PromptPerfectDay:       "My perfect day involves",
	PromptPassionateAbout:  "I'm passionate about",
	PromptWeirdestSkill:    "A weird skill I have that surprises people",
	PromptUnpopularOpinion: "Unpopular opinion I'll defend",
	PromptTerribleAt:       "I'm embarrassingly terrible at",
	PromptGreenFlag:        "A green flag for me is",
	PromptRedFlag:          "My biggest red flag is probably",
	PromptDatingMe:         "Dating me is like",
	PromptDinnerGuest:      "If I could have dinner with anyone, alive or dead",
	PromptHiddenTalent:     "Hidden talent nobody knows about",
	PromptLastAdventure:    "Last adventure I went on",
}

// Text returns the display text shown above an answer.
func (k PromptKind) Text() string {
	return promptTexts[k]
}

func (k PromptKind) Valid() bool {
	_, ok := promptTexts[k]
	return ok
}

type Profile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PromptAnswer struct {
	ID        uuid.UUID  `json:"id"`
	ProfileID uuid.UUID  `json:"profile_id"`
	Prompt    PromptKind `json:"prompt"`
	Answer    string     `json:"answer"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
