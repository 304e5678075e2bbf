package matching

import (
	"testing"

	"skillswap/internal/domain/skill"
	"skillswap/internal/domain/user"

	"github.com/google/uuid"
)

func newUser(name, location string, availability user.Availability, public bool) user.User {
	return user.User{
		ID:           uuid.New(),
		Name:         name,
		Location:     location,
		Availability: availability,
		IsPublic:     public,
	}
}

func newSkill(owner uuid.UUID, name string, t skill.Type) skill.Skill {
	return skill.Skill{ID: uuid.New(), UserID: owner, Name: name, Type: t}
}

func TestFindComplementaryPair(t *testing.T) {
	me := newUser("Sarah", "San Francisco, CA", user.AvailabilityEvenings, true)
	other := newUser("Michael", "Austin, TX", user.AvailabilityWeekends, true)

	skills := []skill.Skill{
		newSkill(me.ID, "React Development", skill.TypeOffered),
		newSkill(me.ID, "UI/UX Design", skill.TypeWanted),
		newSkill(other.ID, "UI/UX Design & Figma", skill.TypeOffered),
		newSkill(other.ID, "React", skill.TypeWanted),
	}

	matches := Find(me, []user.User{other}, skills)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}

	m := matches[0]
	if m.MatchedUserID != other.ID.String() {
		t.Errorf("matched user = %s, want %s", m.MatchedUserID, other.ID)
	}
	if m.Score != 50 {
		t.Errorf("score = %d, want 50", m.Score)
	}
	if len(m.Reasons) != 1 || m.Reasons[0] != ReasonMutualInterest {
		t.Errorf("reasons = %v, want only mutual interest", m.Reasons)
	}
	if m.OfferedSkill.Name != "React Development" {
		t.Errorf("offered skill = %q", m.OfferedSkill.Name)
	}
	if m.WantedSkill.Name != "UI/UX Design & Figma" {
		t.Errorf("wanted skill = %q", m.WantedSkill.Name)
	}
	wantID := m.OfferedSkill.ID.String() + "-" + m.WantedSkill.ID.String()
	if m.ID != wantID {
		t.Errorf("match id = %q, want %q", m.ID, wantID)
	}
}

func TestFindScoreBonuses(t *testing.T) {
	tests := []struct {
		name         string
		location     string
		availability user.Availability
		wantScore    int
		wantReasons  int
	}{
		{"base only", "Austin, TX", user.AvailabilityWeekends, 50, 1},
		{"availability bonus", "Austin, TX", user.AvailabilityEvenings, 70, 2},
		{"location bonus", "San Francisco, CA", user.AvailabilityWeekends, 60, 2},
		{"both bonuses", "San Francisco, CA", user.AvailabilityEvenings, 80, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			me := newUser("Sarah", "San Francisco, CA", user.AvailabilityEvenings, true)
			other := newUser("Emily", tt.location, tt.availability, true)

			skills := []skill.Skill{
				newSkill(me.ID, "Photography", skill.TypeOffered),
				newSkill(me.ID, "Spanish", skill.TypeWanted),
				newSkill(other.ID, "Spanish Conversation", skill.TypeOffered),
				newSkill(other.ID, "Photography", skill.TypeWanted),
			}

			matches := Find(me, []user.User{other}, skills)
			if len(matches) != 1 {
				t.Fatalf("expected 1 match, got %d", len(matches))
			}
			if matches[0].Score != tt.wantScore {
				t.Errorf("score = %d, want %d", matches[0].Score, tt.wantScore)
			}
			if len(matches[0].Reasons) != tt.wantReasons {
				t.Errorf("reasons = %v, want %d entries", matches[0].Reasons, tt.wantReasons)
			}
		})
	}
}

func TestFindExcludesSelfAndPrivateUsers(t *testing.T) {
	me := newUser("Sarah", "SF", user.AvailabilityFlexible, true)
	hidden := newUser("Ghost", "SF", user.AvailabilityFlexible, false)

	skills := []skill.Skill{
		newSkill(me.ID, "Go", skill.TypeOffered),
		newSkill(me.ID, "Rust", skill.TypeWanted),
		newSkill(hidden.ID, "Rust", skill.TypeOffered),
		newSkill(hidden.ID, "Go", skill.TypeWanted),
	}

	if got := Find(me, []user.User{me, hidden}, skills); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestFindNoComplementDirection(t *testing.T) {
	// Other wants what I teach, but teaches nothing I want.
	me := newUser("Sarah", "SF", user.AvailabilityFlexible, true)
	other := newUser("Michael", "SF", user.AvailabilityFlexible, true)

	skills := []skill.Skill{
		newSkill(me.ID, "Go", skill.TypeOffered),
		newSkill(me.ID, "Rust", skill.TypeWanted),
		newSkill(other.ID, "Python", skill.TypeOffered),
		newSkill(other.ID, "Go", skill.TypeWanted),
	}

	if got := Find(me, []user.User{other}, skills); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestFindSortsByScoreAndCaps(t *testing.T) {
	me := newUser("Sarah", "SF", user.AvailabilityEvenings, true)

	users := make([]user.User, 0, 12)
	skills := []skill.Skill{
		newSkill(me.ID, "Go", skill.TypeOffered),
		newSkill(me.ID, "Rust", skill.TypeWanted),
	}

	for i := 0; i < 12; i++ {
		availability := user.AvailabilityMornings
		if i == 7 {
			// Only one candidate shares availability and location.
			availability = user.AvailabilityEvenings
		}
		location := "Austin, TX"
		if i == 7 {
			location = "SF"
		}
		other := newUser("Candidate", location, availability, true)
		users = append(users, other)
		skills = append(skills,
			newSkill(other.ID, "Rust", skill.TypeOffered),
			newSkill(other.ID, "Go", skill.TypeWanted),
		)
	}

	matches := Find(me, users, skills)
	if len(matches) != 10 {
		t.Fatalf("expected cap at 10, got %d", len(matches))
	}
	if matches[0].Score != 80 {
		t.Errorf("top score = %d, want 80", matches[0].Score)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Fatalf("matches not sorted desc at %d", i)
		}
	}
}

func TestNamesOverlap(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"React", "React Development", true},
		{"react development", "React", true},
		{"UI/UX Design", "UI/UX Design & Figma", true},
		{"Go", "Golang", true},
		{"Photography", "Spanish", false},
		{"", "Spanish", true}, // empty string is contained in everything
	}

	for _, tt := range tests {
		if got := namesOverlap(tt.a, tt.b); got != tt.want {
			t.Errorf("namesOverlap(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
