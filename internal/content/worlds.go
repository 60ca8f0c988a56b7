package content

import "fmt"

// World is a themed block of 10 consecutive levels sharing one enemy.
type World struct {
	ID     int
	Name   string
	Enemy  string
	BaseHP int
	Emoji  string
	Desc   string
}

// Worlds defines the 4 campaign worlds with increasing enemy health.
var Worlds = []World{
	{ID: 1, Name: "哥布林森林", Enemy: "哥布林王", BaseHP: 40, Emoji: "👺", Desc: "掠夺资源!"},
	{ID: 2, Name: "骷髅塔", Enemy: "炸弹人", BaseHP: 80, Emoji: "💣", Desc: "小心爆炸!"},
	{ID: 3, Name: "法师山谷", Enemy: "法师", BaseHP: 120, Emoji: "🧙‍♂️", Desc: "魔法对决!"},
	{ID: 4, Name: "飞龙悬崖", Enemy: "喷火龙", BaseHP: 160, Emoji: "🐉", Desc: "空中霸主!"},
}

// Avatars is the set of picker icons offered when creating a player.
var Avatars = []string{
	"⚔️", "🏹", "👊", "👺", "💀", "🎈", "🧙‍♂️", "🧚‍♀️", "🐲", "🤖",
	"🤴", "👸", "👴", "⛏️", "🐗", "🦇", "❄️", "⚡", "🪓", "🌋",
}

// WorldForLevel returns the world containing the given level.
func WorldForLevel(level int) (World, error) {
	if level < 1 || level > TotalLevels {
		return World{}, fmt.Errorf("level %d out of range [1, %d]", level, TotalLevels)
	}
	return Worlds[(level-1)/LevelsPerWorld], nil
}

// WorldStartLevel returns the first level of the world.
func WorldStartLevel(w World) int {
	return (w.ID-1)*LevelsPerWorld + 1
}

// EnemyMaxHP returns the enemy health for a level: the world's base HP
// plus 5 per level past the world's first level.
func EnemyMaxHP(level int) (int, error) {
	w, err := WorldForLevel(level)
	if err != nil {
		return 0, err
	}
	return w.BaseHP + (level-WorldStartLevel(w))*5, nil
}
