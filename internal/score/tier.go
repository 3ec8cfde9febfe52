package score

// Level classifies feedback severity for the presentation layer.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarn    Level = "warn"
)

// Tier is the player-facing verdict for one guess.
type Tier struct {
	Level   Level
	Message string
}

// TierFor maps an overall percent to its feedback tier. The 85/60/35
// boundaries are fixed game constants, inclusive on the lower bound.
func TierFor(overall int) Tier {
	switch {
	case overall == 100:
		return Tier{LevelSuccess, "정답입니다!"}
	case overall >= 85:
		return Tier{LevelInfo, "아주 가까워요!"}
	case overall >= 60:
		return Tier{LevelInfo, "좋은 방향이에요."}
	case overall >= 35:
		return Tier{LevelWarn, "아직 거리가 있어요."}
	default:
		return Tier{LevelWarn, "유사도가 낮아요."}
	}
}
