package core

// Difficulty is the escalation state that changes each time the formation is cleared.
type Difficulty struct {
	Level     int
	Rows      int
	MoveTicks int
	ShotTicks int
}

const (
	rowGrowthCap   = 7
	shotTicksFloor = 60
	shotTicksStep  = 10
	moveTicksFloor = 10
	moveTicksStep  = 5
)

// Escalate moves to the next level. Every second level adds a row while there
// are at most seven, every third level shortens the shot interval and every
// fifth level speeds up the formation.
func (d *Difficulty) Escalate() {
	d.Level++
	if d.Rows <= rowGrowthCap && d.Level%2 == 0 {
		d.Rows++
	}
	if d.ShotTicks >= shotTicksFloor && d.Level%3 == 0 {
		d.ShotTicks -= shotTicksStep
	}
	if d.MoveTicks >= moveTicksFloor && d.Level%5 == 0 {
		d.MoveTicks -= moveTicksStep
	}
}
