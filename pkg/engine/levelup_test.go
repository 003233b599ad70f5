package engine

import (
	"testing"

	"github.com/TheFirstLairron/Rusty-Rogues/pkg/entity"
)

func TestLevelUpThreshold(t *testing.T) {
	eng := newTestEngine(t, 1)

	if got := eng.LevelUpThreshold(); got != 350 {
		t.Errorf("expected threshold 350 at level 1, got %d", got)
	}

	eng.Player().Level = 2
	if got := eng.LevelUpThreshold(); got != 500 {
		t.Errorf("expected threshold 500 at level 2, got %d", got)
	}
}

func TestApplyLevelUp(t *testing.T) {
	eng := newTestEngine(t, 1)
	eng.Player().Fighter.XP = 380

	if !eng.NeedsLevelUp() {
		t.Fatal("expected a pending level-up at 380 XP")
	}

	if err := eng.ApplyLevelUp(ImproveHP); err != nil {
		t.Fatalf("ApplyLevelUp failed: %v", err)
	}

	f := eng.Player().Fighter
	if f.BaseMaxHP != 120 || f.HP != 120 {
		t.Errorf("expected 120 max HP and full heal of the gain, got %d/%d", f.HP, f.BaseMaxHP)
	}
	if f.XP != 30 {
		t.Errorf("expected 30 XP banked after the threshold was consumed, got %d", f.XP)
	}
	if eng.Player().Level != 2 {
		t.Errorf("expected level 2, got %d", eng.Player().Level)
	}
	if eng.NeedsLevelUp() {
		t.Error("no further level-up should be pending")
	}
}

func TestApplyLevelUpRejectsInvalidChoice(t *testing.T) {
	eng := newTestEngine(t, 1)
	eng.Player().Fighter.XP = 350

	if err := eng.ApplyLevelUp(Improvement("charisma")); err == nil {
		t.Fatal("expected an error for an unknown improvement")
	}

	f := eng.Player().Fighter
	if f.XP != 350 || f.BaseMaxHP != 100 {
		t.Error("a rejected choice must not mutate the fighter")
	}
}

func TestApplyLevelUpWithoutPending(t *testing.T) {
	eng := newTestEngine(t, 1)

	if err := eng.ApplyLevelUp(ImproveHP); err == nil {
		t.Fatal("expected an error with no level-up pending")
	}
}

// retryChooser returns an invalid choice once, then a valid one.
type retryChooser struct {
	calls int
}

func (c *retryChooser) ChooseImprovement(f entity.Fighter, level int) Improvement {
	c.calls++
	if c.calls == 1 {
		return Improvement("bogus")
	}
	return ImprovePower
}

func TestRunLevelUpReprompts(t *testing.T) {
	eng := newTestEngine(t, 1)
	eng.Player().Fighter.XP = 350

	chooser := &retryChooser{}
	eng.RunLevelUp(chooser)

	if chooser.calls != 2 {
		t.Errorf("expected one re-prompt, got %d calls", chooser.calls)
	}
	if eng.Player().Fighter.BasePower != 3 {
		t.Errorf("expected power 3, got %d", eng.Player().Fighter.BasePower)
	}
	if eng.NeedsLevelUp() {
		t.Error("the pending level-up must be resolved")
	}
}
