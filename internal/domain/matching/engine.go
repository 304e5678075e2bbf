package matching

import (
	"sort"
	"strings"

	"skillswap/internal/domain/skill"
	"skillswap/internal/domain/user"
)

const (
	baseScore         = 50
	availabilityBonus = 20
	locationBonus     = 10

	maxResults = 10
)

const (
	ReasonMutualInterest       = "Mutual skill interest"
	ReasonMatchingAvailability = "Matching availability"
	ReasonSameLocation         = "Same location"
)

// Match is a derived candidate pairing, recomputed from users and skills
// on every call and never stored as source of truth.
type Match struct {
	ID            string
	UserID        string
	MatchedUserID string
	Score         int
	OfferedSkill  skill.Skill
	WantedSkill   skill.Skill
	Reasons       []string
}

// Find scans every public user other than the requester and emits one
// candidate per complementary skill pair: the requester's offered skill
// must overlap a skill the other user wants, and the requester's wanted
// skill must overlap a skill the other user offers. A user pair may
// produce several candidates, one per distinct skill combination.
func Find(requester user.User, candidates []user.User, skills []skill.Skill) []Match {
	offered, wanted := partition(skills, requester.ID.String())
	if len(offered) == 0 || len(wanted) == 0 {
		return []Match{}
	}

	matches := make([]Match, 0)

	for _, other := range candidates {
		if other.ID == requester.ID || !other.IsPublic {
			continue
		}

		theirOffered, theirWanted := partition(skills, other.ID.String())
		if len(theirOffered) == 0 || len(theirWanted) == 0 {
			continue
		}

		for _, myOffered := range offered {
			for _, tw := range theirWanted {
				if !namesOverlap(myOffered.Name, tw.Name) {
					continue
				}
				for _, myWanted := range wanted {
					for _, to := range theirOffered {
						if !namesOverlap(myWanted.Name, to.Name) {
							continue
						}

						score := baseScore
						reasons := []string{ReasonMutualInterest}

						if requester.Availability == other.Availability {
							score += availabilityBonus
							reasons = append(reasons, ReasonMatchingAvailability)
						}
						if requester.Location == other.Location {
							score += locationBonus
							reasons = append(reasons, ReasonSameLocation)
						}

						matches = append(matches, Match{
							ID:            myOffered.ID.String() + "-" + to.ID.String(),
							UserID:        requester.ID.String(),
							MatchedUserID: other.ID.String(),
							Score:         score,
							OfferedSkill:  myOffered,
							WantedSkill:   to,
							Reasons:       reasons,
						})
					}
				}
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// namesOverlap reports case-insensitive substring containment in either
// direction, so "React" pairs with "React Development".
func namesOverlap(a, b string) bool {
	la := strings.ToLower(a)
	lb := strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

func partition(skills []skill.Skill, userID string) (offered, wanted []skill.Skill) {
	for _, s := range skills {
		if s.UserID.String() != userID {
			continue
		}
		switch s.Type {
		case skill.TypeOffered:
			offered = append(offered, s)
		case skill.TypeWanted:
			wanted = append(wanted, s)
		}
	}
	return offered, wanted
}
