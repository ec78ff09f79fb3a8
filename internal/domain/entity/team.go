package entity

// Teams is the fixed unit roster. Referrals, roster entities and team drills
// all carry one of these team codes.
var Teams = []string{"alpha", "bravo", "charlie", "hq"}

// IsKnownTeam checks if the code belongs to the fixed unit roster
func IsKnownTeam(team string) bool {
	for _, t := range Teams {
		if t == team {
			return true
		}
	}
	return false
}
