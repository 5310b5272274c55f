package progress

// Badge is a streak-milestone award.
type Badge struct {
	ID                string
	Name              string
	Description       string
	StreakRequirement int
}

// badges is the full catalog, ordered by ascending requirement so the
// lowest newly-met milestone is surfaced first.
var badges = []Badge{
	{
		ID:                "streak7",
		Name:              "Weekly Whiz",
		Description:       "Keep a 7-day streak going",
		StreakRequirement: 7,
	},
	{
		ID:                "streak30",
		Name:              "Monthly Master",
		Description:       "Keep a 30-day streak going",
		StreakRequirement: 30,
	},
}

// AllBadges returns the badge catalog.
func AllBadges() []Badge {
	out := make([]Badge, len(badges))
	copy(out, badges)
	return out
}

// BadgeByID looks up a badge in the catalog.
func BadgeByID(id string) (Badge, bool) {
	for _, b := range badges {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}
