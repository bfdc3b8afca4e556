package core

// PlayerShip is a player-controlled ship at the bottom of the field.
type PlayerShip struct {
	Entity
	ID    string
	Score int
	Lives int
	Speed float64

	extraLifeEvery int
	pendingMove    Direction
	hasMove        bool
	trigger        trigger
}

// AddToScore awards n points and reports whether the award crossed a
// multiple of the extra-life threshold. Crossing grants exactly one life.
func (p *PlayerShip) AddToScore(n int) bool {
	if n < 0 {
		p.SubtractScore(-n)
		return false
	}
	every := p.extraLifeEvery
	if every <= 0 {
		every = 1000
	}
	before := p.Score / every
	p.Score += n
	if p.Score/every > before {
		p.AddLife()
		return true
	}
	return false
}

// SubtractScore removes n points. The score never drops below zero.
func (p *PlayerShip) SubtractScore(n int) {
	p.Score -= n
	if p.Score < 0 {
		p.Score = 0
	}
}

func (p *PlayerShip) AddLife() {
	p.Lives++
}

// RemoveLife takes one life. At zero it does nothing.
func (p *PlayerShip) RemoveLife() {
	if p.Lives > 0 {
		p.Lives--
	}
}

func (p *PlayerShip) MoveLeft(field Rect) {
	p.X = clamp(p.X-p.Speed, field.Left(), field.Right()-p.W)
}

func (p *PlayerShip) MoveRight(field Rect) {
	p.X = clamp(p.X+p.Speed, field.Left(), field.Right()-p.W)
}

// muzzle is where a bullet of width bw leaves the ship: centred, at the top edge.
func (p *PlayerShip) muzzle(bw float64) (float64, float64) {
	return p.X + p.W/2 - bw/2, p.Y
}

// trigger turns a stream of fire intents into shots. A fresh press fires on
// the next tick. A press held across ticks fires again once the repeat
// cooldown has run out.
type trigger struct {
	pressed  bool
	held     bool
	cooldown int
}

func (t *trigger) press() {
	t.pressed = true
}

// pull is called once per tick and reports whether a shot goes off.
func (t *trigger) pull(repeat int) bool {
	if t.cooldown > 0 {
		t.cooldown--
	}
	if !t.pressed {
		t.held = false
		return false
	}
	t.pressed = false
	if t.held && t.cooldown > 0 {
		return false
	}
	t.held = true
	t.cooldown = repeat
	return true
}
