// Package i18n is a plain key lookup for the two supported languages.
package i18n

import "questbox/internal/engine"

var messages = map[string]map[engine.Language]string{
	"appTitle": {
		engine.LangEN: "QuestBox",
		engine.LangZH: "任务盒子",
	},
	"level": {
		engine.LangEN: "Level",
		engine.LangZH: "等级",
	},
	"streak": {
		engine.LangEN: "Streak",
		engine.LangZH: "连续天数",
	},
	"completed": {
		engine.LangEN: "Completed",
		engine.LangZH: "已完成",
	},
	"leaderboard": {
		engine.LangEN: "Leaderboard",
		engine.LangZH: "排行榜",
	},
	"achievements": {
		engine.LangEN: "Achievements",
		engine.LangZH: "成就",
	},
	"ach_first_step": {
		engine.LangEN: "First Step",
		engine.LangZH: "第一步",
	},
	"desc_first_step": {
		engine.LangEN: "Complete your first quest",
		engine.LangZH: "完成你的第一个任务",
	},
	"ach_streak_master": {
		engine.LangEN: "Streak Master",
		engine.LangZH: "连胜大师",
	},
	"desc_streak_master": {
		engine.LangEN: "Keep a 3-day streak",
		engine.LangZH: "保持连续3天完成任务",
	},
	"ach_high_five": {
		engine.LangEN: "High Five",
		engine.LangZH: "击掌庆祝",
	},
	"desc_high_five": {
		engine.LangEN: "Reach level 5",
		engine.LangZH: "达到5级",
	},
	"ach_quest_hunter": {
		engine.LangEN: "Quest Hunter",
		engine.LangZH: "任务猎人",
	},
	"desc_quest_hunter": {
		engine.LangEN: "Complete 10 quests",
		engine.LangZH: "完成10个任务",
	},
}

// T looks up a message key, falling back to English and finally to the key
// itself so missing entries stay visible instead of blank.
func T(lang engine.Language, key string) string {
	if m, ok := messages[key]; ok {
		if s, ok := m[lang]; ok {
			return s
		}
		if s, ok := m[engine.DefaultLanguage]; ok {
			return s
		}
	}
	return key
}
