package parameter

// Score awards
const (
	ScoreEnemy      = 200
	ScoreSmallEnemy = 100
)

// Named score thresholds of the difficulty staircase
const (
	ScoreTierWarmup    = 2000
	ScoreTierSkirmish  = 5000
	ScoreTierAssault   = 10000
	ScoreTierSwarm     = 15000
	ScoreTierSiege     = 25000
	ScoreTierOnslaught = 40000
	ScoreTierFinale    = 70000
)

// SpawnStep is one step of a difficulty staircase, active from MinScore upward
type SpawnStep struct {
	MinScore int
	Interval int // frames between spawns
}

// ProbabilityStep is one step of the SmallEnemy probability staircase
type ProbabilityStep struct {
	MinScore    int
	Probability float64
}

// MultiplierStep is one step of the velocity multiplier staircase
type MultiplierStep struct {
	MinScore   int
	Multiplier float64
}

// SpawnIntervals is descending in Interval, ascending in MinScore
var SpawnIntervals = []SpawnStep{
	{0, 60},
	{ScoreTierWarmup, 45},
	{ScoreTierSkirmish, 35},
	{ScoreTierAssault, 28},
	{ScoreTierSwarm, 22},
	{ScoreTierSiege, 18},
	{ScoreTierOnslaught, 14},
	{ScoreTierFinale, 10},
}

// SmallEnemyProbabilities is ascending in both columns
var SmallEnemyProbabilities = []ProbabilityStep{
	{0, 0.10},
	{ScoreTierSkirmish, 0.20},
	{ScoreTierSwarm, 0.30},
	{ScoreTierOnslaught, 0.40},
	{ScoreTierFinale, 0.50},
}

// VelocityMultipliers is ascending in both columns
var VelocityMultipliers = []MultiplierStep{
	{0, 1.00},
	{ScoreTierSkirmish, 1.25},
	{ScoreTierSwarm, 1.50},
	{ScoreTierOnslaught, 1.75},
	{ScoreTierFinale, 2.00},
}

// Stage escalation thresholds, one-way within a playthrough
const (
	StageTwoScore   = 15000
	StageThreeScore = 40000
	StageFourScore  = 70000
	StageFiveScore  = 75000

	// FirstStage is the stage of a fresh session
	FirstStage = 1
	// FinalStage is the highest reachable stage
	FinalStage = 5

	// SuddenDeathStage enables homing on newly spawned hostiles
	SuddenDeathStage = 3
	// HardenedStage changes hostile-on-hostile collision outcomes
	HardenedStage = 4
)

// StageThresholds maps stage N+2 to its entry score at index N
var StageThresholds = []int{StageTwoScore, StageThreeScore, StageFourScore, StageFiveScore}
