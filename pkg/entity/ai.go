package entity

// AIKind tags the variants of the monster AI state machine.
type AIKind string

const (
	AIBasic    AIKind = "basic"
	AIConfused AIKind = "confused"
)

// AIState is the per-monster AI state. The Confused variant exclusively
// owns the state it wrapped; expiry moves it back out.
type AIState struct {
	Kind           AIKind   `json:"kind"`
	Previous       *AIState `json:"previous,omitempty"`
	TurnsRemaining int      `json:"turns_remaining,omitempty"`
}

// BasicAI returns a fresh chase-and-attack state.
func BasicAI() *AIState {
	return &AIState{Kind: AIBasic}
}

// ConfusedAI wraps prev in a confusion state lasting the given number
// of turns.
func ConfusedAI(prev *AIState, turns int) *AIState {
	return &AIState{Kind: AIConfused, Previous: prev, TurnsRemaining: turns}
}
