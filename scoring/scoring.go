// Package scoring holds the ranking formula. It is kept free of persistence
// so the services can recompute totals inside their own transactions.
package scoring

// Total computes a player's ranking total for one item from their weekly
// counters. Players who have not yet received the item get a flat 50 point
// bonus. The result is truncated, not rounded.
func Total(weeklyReputation int, bossParticipations int, castleParticipations int, alreadyReceived bool) int {
	total := float64(weeklyReputation)*2 + float64(bossParticipations)*3 + float64(castleParticipations)*2.5
	if !alreadyReceived {
		total += 50
	}
	return int(total)
}
