package engine

import "strings"

type Category string

const (
	CategoryDaily Category = "daily"
	CategorySide  Category = "side-quest"
	CategoryEpic  Category = "epic"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryDaily, CategorySide, CategoryEpic:
		return true
	default:
		return false
	}
}

// DefaultCategory is used when user input is missing/invalid.
const DefaultCategory = CategoryDaily

// ParseCategory accepts a few spellings; unrecognized input falls back to
// the default category.
func ParseCategory(input string) Category {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "daily", "d":
		return CategoryDaily
	case "side-quest", "side", "sidequest", "s":
		return CategorySide
	case "epic", "e":
		return CategoryEpic
	default:
		return DefaultCategory
	}
}

// categoryRewards maps a category to its base XP reward, fixed on the quest
// at creation time.
var categoryRewards = map[Category]int{
	CategoryDaily: 15,
	CategorySide:  10,
	CategoryEpic:  50,
}

func RewardFor(c Category) int {
	if xp, ok := categoryRewards[c]; ok {
		return xp
	}
	return categoryRewards[DefaultCategory]
}

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	default:
		return false
	}
}

type Sort string

const (
	SortNewest   Sort = "newest"
	SortXP       Sort = "xp"
	SortCategory Sort = "category"
)

func (s Sort) IsValid() bool {
	switch s {
	case SortNewest, SortXP, SortCategory:
		return true
	default:
		return false
	}
}

type Language string

const (
	LangEN Language = "en"
	LangZH Language = "zh"
)

func (l Language) IsValid() bool {
	return l == LangEN || l == LangZH
}

const DefaultLanguage = LangEN
