package pacman

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testAbilities(form *Form) *abilitySet {
	lvl := &Level{CooldownSeconds: 3, SpeedSeconds: 2, TransformSeconds: 2}
	return newAbilitySet(lvl, 2, form)
}

func TestAbilityNeedsManaAndCooldown(t *testing.T) {
	form := FormRed
	s := testAbilities(&form)

	mana := 0
	assert.False(t, s.tryActivate(s.speed, &mana), "no mana")
	assert.False(t, s.speed.Active())

	mana = 2
	assert.True(t, s.tryActivate(s.speed, &mana))
	assert.Equal(t, 1, mana)
	assert.True(t, s.speed.Active())
	assert.False(t, s.Ready())

	assert.False(t, s.tryActivate(s.transform, &mana), "cooldown is shared")
	assert.Equal(t, 1, mana)

	for range 6 {
		s.Update()
	}
	assert.True(t, s.Ready())
	assert.True(t, s.tryActivate(s.transform, &mana))
	assert.Zero(t, mana)
}

func TestAbilityExpires(t *testing.T) {
	form := FormRed
	s := testAbilities(&form)
	mana := 1
	s.tryActivate(s.speed, &mana)

	assert.Equal(t, 4, s.speed.Remaining())
	for range 3 {
		assert.False(t, s.speed.Update())
	}
	assert.True(t, s.speed.Update(), "expires on the last tick")
	assert.False(t, s.speed.Active())
	assert.False(t, s.speed.Update())
}

func TestAbilityCancel(t *testing.T) {
	form := FormRed
	s := testAbilities(&form)
	mana := 1
	s.tryActivate(s.transform, &mana)

	s.Cancel()
	assert.False(t, s.transform.Active())
	assert.True(t, s.Ready())
}

func TestTransformCycleOnlyWhileActive(t *testing.T) {
	form := FormRed
	s := testAbilities(&form)

	s.transform.Cycle()
	assert.Equal(t, FormRed, form)

	mana := 1
	s.tryActivate(s.transform, &mana)
	s.transform.Cycle()
	s.transform.Cycle()
	assert.Equal(t, FormBlue, form)
	s.transform.Cycle()
	assert.Equal(t, FormRed, form)
	assert.Equal(t, "transform", s.transform.Name())
}

func TestAbilityZeroDurationStillFires(t *testing.T) {
	a := newSpeedAbility(0)
	a.Activate()
	assert.True(t, a.Active())
	assert.True(t, a.Update())
}
