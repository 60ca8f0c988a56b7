package game

import "hanziclash/internal/models"

// AchievementKind tags which record field an achievement tests. Keeping
// achievements as data instead of per-entry closures keeps the set
// serializable and evaluated by one dispatcher.
type AchievementKind int

const (
	// KindLevelsWon: number of levels with at least one star.
	KindLevelsWon AchievementKind = iota
	// KindMaxCombo: best combo reached within the battle just finished.
	KindMaxCombo
	// KindTotalScore: aggregate high-score total.
	KindTotalScore
	// KindPerfectLevel: any level cleared with three stars.
	KindPerfectLevel
	// KindXPLevel: player XP level.
	KindXPLevel
	// KindUnlockedLevel: highest unlocked campaign level.
	KindUnlockedLevel
)

// Achievement is a data-driven unlock condition.
type Achievement struct {
	ID        int
	Title     string
	Desc      string
	Icon      string
	Kind      AchievementKind
	Threshold int
}

// Achievements is the fixed catalog. The combo achievement is evaluated
// from the finished battle's best combo, so it is reachable like the rest
// instead of needing ad-hoc handling in the battle screen.
var Achievements = []Achievement{
	{ID: 1, Title: "初出茅庐", Desc: "赢得第1场战斗胜利", Icon: "🗡️", Kind: KindLevelsWon, Threshold: 1},
	{ID: 2, Title: "连击大师", Desc: "在单局中达到10连击", Icon: "🔥", Kind: KindMaxCombo, Threshold: 10},
	{ID: 3, Title: "学富五车", Desc: "总分达到 10,000 分", Icon: "📚", Kind: KindTotalScore, Threshold: 10000},
	{ID: 4, Title: "完美主义", Desc: "在任意关卡获得3颗星", Icon: "⭐", Kind: KindPerfectLevel, Threshold: 3},
	{ID: 5, Title: "久经沙场", Desc: "玩家等级达到 5 级", Icon: "🏅", Kind: KindXPLevel, Threshold: 5},
	{ID: 6, Title: "地图征服者", Desc: "解锁第 2 个世界", Icon: "🗺️", Kind: KindUnlockedLevel, Threshold: 11},
}

// Unlocked evaluates the achievement against an updated record and the
// battle that was just applied.
func (a Achievement) Unlocked(p *models.Player, battle Outcome) bool {
	switch a.Kind {
	case KindLevelsWon:
		return len(p.StarsByLevel) >= a.Threshold
	case KindMaxCombo:
		return battle.MaxCombo >= a.Threshold
	case KindTotalScore:
		return p.TotalScore >= a.Threshold
	case KindPerfectLevel:
		for _, s := range p.StarsByLevel {
			if s >= a.Threshold {
				return true
			}
		}
		return false
	case KindXPLevel:
		return p.XPLevel >= a.Threshold
	case KindUnlockedLevel:
		return p.MaxUnlockedLevel >= a.Threshold
	default:
		return false
	}
}

// AchievementByID looks up a catalog entry.
func AchievementByID(id int) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
