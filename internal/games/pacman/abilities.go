package pacman

// Ability is a timed power-up. Update advances it by one tick and
// reports whether it expired on that tick.
type Ability interface {
	Name() string
	Activate()
	Deactivate()
	Update() (expired bool)
	Active() bool
	Remaining() int
}

// timed counts down a duration in ticks.
type timed struct {
	name      string
	duration  int
	remaining int
}

func (t *timed) Name() string   { return t.name }
func (t *timed) Active() bool   { return t.remaining > 0 }
func (t *timed) Remaining() int { return t.remaining }

func (t *timed) Activate() {
	t.remaining = max(t.duration, 1)
}

func (t *timed) Deactivate() {
	t.remaining = 0
}

func (t *timed) Update() bool {
	if t.remaining == 0 {
		return false
	}
	t.remaining--
	return t.remaining == 0
}

// speedAbility switches Pac-Man to the boost cadence while active.
// The game reads Active() when choosing the move interval.
type speedAbility struct {
	timed
}

func newSpeedAbility(durationTicks int) *speedAbility {
	return &speedAbility{timed{name: "speed", duration: durationTicks}}
}

// transformAbility lets the player cycle Pac-Man's form and slows ghosts.
type transformAbility struct {
	timed
	form *Form
}

func newTransformAbility(durationTicks int, form *Form) *transformAbility {
	return &transformAbility{timed: timed{name: "transform", duration: durationTicks}, form: form}
}

// Cycle advances the form red, green, blue and back. It is a no-op when
// the ability is not active.
func (a *transformAbility) Cycle() {
	if a.Active() {
		*a.form = a.form.Next()
	}
}

// abilitySet owns both abilities, the shared cooldown and the mana pool.
type abilitySet struct {
	speed     *speedAbility
	transform *transformAbility
	cooldown  int // ticks until the next activation
	cooldownN int
}

func newAbilitySet(lvl *Level, tickRate int, form *Form) *abilitySet {
	return &abilitySet{
		speed:     newSpeedAbility(lvl.SpeedSeconds * tickRate),
		transform: newTransformAbility(lvl.TransformSeconds*tickRate, form),
		cooldownN: lvl.CooldownSeconds * tickRate,
	}
}

// Ready reports whether the cooldown has elapsed.
func (s *abilitySet) Ready() bool { return s.cooldown == 0 }

// all lists abilities in key order.
func (s *abilitySet) all() []Ability {
	return []Ability{s.speed, s.transform}
}

// tryActivate spends one mana and starts the cooldown.
func (s *abilitySet) tryActivate(a Ability, mana *int) bool {
	if *mana <= 0 || !s.Ready() {
		return false
	}
	*mana--
	a.Activate()
	s.cooldown = s.cooldownN
	return true
}

// Update advances abilities and the cooldown by one tick.
func (s *abilitySet) Update() {
	for _, a := range s.all() {
		a.Update()
	}
	if s.cooldown > 0 {
		s.cooldown--
	}
}

// Cancel stops any active ability and clears the cooldown.
func (s *abilitySet) Cancel() {
	for _, a := range s.all() {
		a.Deactivate()
	}
	s.cooldown = 0
}
