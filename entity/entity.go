package entity

import (
	"github.com/Heliodex/sprig/core"
	"github.com/Heliodex/sprig/parameter"
)

// Entity is one sprite instance
// Kind selects texture, animation threshold and collision rules; the remaining fields are per-instance state
type Entity struct {
	Kind Kind

	// Pos is sub-pixel and rounded at draw time
	Pos    core.Vec2
	Vel    core.Vec2
	Offset core.Point

	Collidable bool

	// Immunity counts down each frame; hostile rules apply only once negative
	Immunity int

	// SuddenDeath makes the entity home on the ship
	SuddenDeath bool

	texture      *Texture
	frameIndex   int
	sinceAdvance int
}

func newEntity(kind Kind, tex *Texture, pos core.Vec2, offset core.Point, collidable bool) *Entity {
	return &Entity{
		Kind:       kind,
		Pos:        pos,
		Offset:     offset,
		Collidable: collidable,
		texture:    tex,
	}
}

// NewShip creates the player ship
func NewShip(pos core.Vec2) *Entity {
	return newEntity(KindShip, ShipTexture, pos, core.Point{X: 5, Y: 0}, true)
}

// NewBullet creates a bullet travelling up
func NewBullet(pos core.Vec2) *Entity {
	e := newEntity(KindBullet, BulletTexture, pos, core.Point{}, true)
	e.Vel = core.Vec2{X: 0, Y: -parameter.BulletSpeed}
	return e
}

// NewEnemy creates a large hostile
func NewEnemy(pos, vel core.Vec2, suddenDeath bool) *Entity {
	e := newEntity(KindEnemy, EnemyTexture, pos, core.Point{X: 4, Y: 3}, true)
	e.Vel = vel
	e.SuddenDeath = suddenDeath
	return e
}

// NewSmallEnemy creates a small hostile with fresh spawn immunity
func NewSmallEnemy(pos, vel core.Vec2, suddenDeath bool) *Entity {
	e := newEntity(KindSmallEnemy, SmallEnemyTexture, pos, core.Point{X: 2, Y: 2}, true)
	e.Vel = vel
	e.SuddenDeath = suddenDeath
	e.Immunity = parameter.SmallEnemyImmunity
	return e
}

// NewExplosion creates a one-shot explosion centred on pos
func NewExplosion(pos core.Vec2) *Entity {
	return newEntity(KindExplosion, ExplosionTexture, pos, core.Point{X: 3, Y: 3}, false)
}

// NewScoreDigit creates one score digit with its top-left at pos
func NewScoreDigit(digit int, pos core.Vec2) *Entity {
	if digit < 0 || digit > 9 {
		digit = 0
	}
	return newEntity(KindScoreDigit, DigitTextures[digit], pos, core.Point{}, false)
}

// NewGameOverBanner creates the game over overlay centred on pos
func NewGameOverBanner(pos core.Vec2) *Entity {
	return newEntity(KindGameOverBanner, GameOverTexture, pos, centre(GameOverTexture), false)
}

// NewIntro creates the title overlay centred on pos
func NewIntro(pos core.Vec2) *Entity {
	return newEntity(KindIntro, IntroTexture, pos, centre(IntroTexture), false)
}

func centre(t *Texture) core.Point {
	w, h := t.Frame(0).Size()
	return core.Point{X: w / 2, Y: h / 2}
}

// Texture returns the shared frame sequence
func (e *Entity) Texture() *Texture {
	return e.texture
}

// FrameIndex returns the unwrapped frame counter
func (e *Entity) FrameIndex() int {
	return e.frameIndex
}

// CurrentFrame returns frames[frameIndex mod len(frames)]
func (e *Entity) CurrentFrame() Frame {
	return e.texture.Frame(e.frameIndex)
}

// AdvanceAnimation counts one frame and steps the texture once the kind threshold is exceeded
// Returns true when a non-looping kind has run past its last frame
func (e *Entity) AdvanceAnimation() (exhausted bool) {
	threshold := e.Kind.AnimationThreshold()
	if threshold == 0 {
		return false
	}

	e.sinceAdvance++
	if e.sinceAdvance > threshold {
		e.frameIndex++
		e.sinceAdvance = 0
	}

	return e.Kind == KindExplosion && e.frameIndex >= e.texture.Len()
}

// Size returns the current frame dimensions
func (e *Entity) Size() (w, h int) {
	return e.CurrentFrame().Size()
}

// Origin returns the buffer position of the current frame's top-left pixel
func (e *Entity) Origin() core.Point {
	p := e.Pos.Round()
	return core.Point{X: p.X - e.Offset.X, Y: p.Y - e.Offset.Y}
}
