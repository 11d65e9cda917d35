package combat_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenaforge/arena-api/internal/engine/combat"
	"github.com/arenaforge/arena-api/internal/entities/arena"
)

func TestDerivedStats(t *testing.T) {
	testCases := []struct {
		level     int32
		maxHealth float64
		shield    int32
	}{
		{1, 100, 0},
		{2, 105, 5},
		{3, 110, 10},
		{4, 115, 15},
		{5, 120, 20},
		{6, 125, 25},
		{7, 130, 30},
		{8, 135, 35},
		{9, 140, 40},
		{10, 145, 45},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("level %d", tc.level), func(t *testing.T) {
			assert.Equal(t, tc.maxHealth, combat.MaxHealthForLevel(tc.level))
			assert.Equal(t, tc.shield, combat.ShieldForLevel(tc.level))
		})
	}
}

func TestAttackDamage(t *testing.T) {
	testCases := []struct {
		level    int32
		basic    int32
		special  int32
		ultimate int32
	}{
		{1, 5, 30, 80},
		{2, 6, 40, 90},
		{5, 9, 70, 120},
		{10, 14, 120, 170},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("level %d", tc.level), func(t *testing.T) {
			c := newCombatant(t, tc.level)
			assert.Equal(t, tc.basic, c.BasicAttackDamage())
			assert.Equal(t, tc.special, c.SpecialAttackDamage())
			assert.Equal(t, tc.ultimate, c.UltimateAttackDamage())
		})
	}
}

func TestCriticalDamage(t *testing.T) {
	assert.Equal(t, int32(8), combat.CriticalDamage(5))
	assert.Equal(t, int32(45), combat.CriticalDamage(30))
	assert.Equal(t, int32(9), combat.CriticalDamage(6))
}

func TestReceiveDamage(t *testing.T) {
	t.Run("no shield takes full damage", func(t *testing.T) {
		c := newCombatant(t, 1)
		applied := c.ReceiveDamage(30, false)
		assert.Equal(t, float64(30), applied)
		assert.Equal(t, float64(70), c.Health)
	})

	t.Run("shield mitigates non-ultimate damage", func(t *testing.T) {
		c := newCombatant(t, 10) // shield 45, health 145
		applied := c.ReceiveDamage(100, false)
		assert.Equal(t, float64(55), applied)
		assert.Equal(t, float64(90), c.Health)
	})

	t.Run("ultimate damage bypasses shield", func(t *testing.T) {
		c := newCombatant(t, 10)
		applied := c.ReceiveDamage(100, true)
		assert.Equal(t, float64(100), applied)
		assert.Equal(t, float64(45), c.Health)
	})

	t.Run("health never drops below zero", func(t *testing.T) {
		c := newCombatant(t, 1)
		c.ReceiveDamage(5000, true)
		assert.Equal(t, float64(0), c.Health)
		assert.False(t, c.Alive())
	})
}

func TestAccumulateCharge(t *testing.T) {
	t.Run("below threshold stays unready", func(t *testing.T) {
		c := newCombatant(t, 1)
		c.AccumulateCharge(149)
		assert.Equal(t, int32(149), c.UltimateCharge)
		assert.False(t, c.UltimateReady)
	})

	t.Run("reaching threshold flags ready", func(t *testing.T) {
		c := newCombatant(t, 1)
		c.AccumulateCharge(100)
		c.AccumulateCharge(50)
		assert.True(t, c.UltimateReady)
	})

	t.Run("charged max-level combatant stops accumulating", func(t *testing.T) {
		c := newCombatant(t, combat.MaxLevel)
		c.UltimateThreshold = 100
		c.AccumulateCharge(100)
		require.True(t, c.UltimateReady)

		c.AccumulateCharge(500)
		assert.Equal(t, int32(100), c.UltimateCharge)
	})
}

func TestConsumeUltimate(t *testing.T) {
	t.Run("unready returns zero and keeps charge", func(t *testing.T) {
		c := newCombatant(t, 1)
		c.AccumulateCharge(100)

		assert.Equal(t, int32(0), c.ConsumeUltimate())
		assert.Equal(t, int32(100), c.UltimateCharge)
	})

	t.Run("ready spends the charge", func(t *testing.T) {
		c := newCombatant(t, 1)
		c.AccumulateCharge(150)
		require.True(t, c.UltimateReady)

		assert.Equal(t, c.UltimateAttackDamage(), c.ConsumeUltimate())
		assert.Equal(t, int32(0), c.UltimateCharge)
		assert.False(t, c.UltimateReady)
	})
}

func TestNextUltimateThreshold(t *testing.T) {
	// The threshold grows 10% per step, rounded at each step, never down
	threshold := combat.BaseUltimateThreshold
	for i := 0; i < 20; i++ {
		next := combat.NextUltimateThreshold(threshold)
		assert.GreaterOrEqual(t, next, threshold)
		threshold = next
	}

	assert.Equal(t, int32(165), combat.NextUltimateThreshold(150))
	assert.Equal(t, int32(182), combat.NextUltimateThreshold(165))
}

func TestSetHealth(t *testing.T) {
	c := newCombatant(t, 1)

	c.SetHealth(42.5)
	assert.Equal(t, 42.5, c.Health)

	c.SetHealth(-10)
	assert.Equal(t, float64(0), c.Health)

	c.SetHealth(9999)
	assert.Equal(t, c.MaxHealth, c.Health)
}

// newCombatant builds a combatant at the given level with freshly derived
// stats
func newCombatant(t *testing.T, level int32) *combat.Combatant {
	t.Helper()
	return combat.NewCombatant(&arena.Character{
		ID:                1,
		Name:              "Tester",
		Kind:              arena.KindHero,
		Level:             level,
		UltimateThreshold: combat.BaseUltimateThreshold,
	})
}
