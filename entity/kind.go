package entity

// Kind is the closed set of entity variants
type Kind uint8

const (
	KindShip Kind = iota
	KindBullet
	KindEnemy
	KindSmallEnemy
	KindExplosion
	KindScoreDigit
	KindGameOverBanner
	KindIntro
)

var kindNames = [...]string{
	KindShip:           "Ship",
	KindBullet:         "Bullet",
	KindEnemy:          "Enemy",
	KindSmallEnemy:     "SmallEnemy",
	KindExplosion:      "Explosion",
	KindScoreDigit:     "ScoreDigit",
	KindGameOverBanner: "GameOverBanner",
	KindIntro:          "Intro",
}

// String returns the variant name, used for canonical pair ordering
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// IsHostile reports whether the kind is affected by stage recolouring and sudden death
func (k Kind) IsHostile() bool {
	return k == KindEnemy || k == KindSmallEnemy
}

// animationThreshold is the number of frames between texture advances, zero for static kinds
var animationThreshold = [...]int{
	KindShip:           7,
	KindBullet:         0,
	KindEnemy:          5,
	KindSmallEnemy:     3,
	KindExplosion:      2,
	KindScoreDigit:     0,
	KindGameOverBanner: 15,
	KindIntro:          15,
}

// AnimationThreshold returns the per-kind advance threshold
func (k Kind) AnimationThreshold() int {
	if int(k) < len(animationThreshold) {
		return animationThreshold[k]
	}
	return 0
}
