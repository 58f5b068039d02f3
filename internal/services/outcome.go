package services

// Pure battle arithmetic: the health clamp and the turn sequencer. Both are
// free of I/O so the termination policy can be tested without a database or
// a grader.

const (
	MaxHealth = 100
	MinHealth = 0
)

type Verdict string

const (
	VerdictContinue Verdict = "continue"
	VerdictWon      Verdict = "won"
	VerdictLost     Verdict = "lost"
)

// clampHealth bounds a proposed health value to [0,100]. Grader output is
// untrusted; whatever it returns, stored health stays in range.
func clampHealth(h int) int {
	if h < MinHealth {
		return MinHealth
	}
	if h > MaxHealth {
		return MaxHealth
	}
	return h
}

// resolveOutcome decides, after a graded answer, whether the battle goes on.
// The rule order is part of the contract:
//
//  1. boss down wins, even if the player dropped in the same turn
//  2. player down loses
//  3. questions remain: keep fighting
//  4. budget exhausted: the lower health loses, and an even match goes to
//     the boss
func resolveOutcome(answeredTurns, totalTurns, bossHealth, playerHealth int) Verdict {
	switch {
	case bossHealth <= MinHealth:
		return VerdictWon
	case playerHealth <= MinHealth:
		return VerdictLost
	case answeredTurns < totalTurns:
		return VerdictContinue
	case bossHealth < playerHealth:
		return VerdictWon
	default:
		return VerdictLost
	}
}
