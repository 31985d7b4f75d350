package engine

import (
	"context"
	"time"
)

// Suggester produces short quest titles from free-text input. It may fail;
// callers leave the session untouched when it does.
type Suggester interface {
	Generate(ctx context.Context, input string, lang Language) ([]string, error)
}

// StaticSuggester is the reference Suggester: a fixed localized set returned
// after a simulated thinking delay. A real generator can be swapped in behind
// the same contract.
type StaticSuggester struct {
	Delay time.Duration
}

var _ Suggester = StaticSuggester{}

var cannedSuggestions = map[Language][]string{
	LangEN: {"Clean the Inventory", "Check the Map", "Rest at Inn"},
	LangZH: {"整理行囊", "查看地图", "旅店休息"},
}

func (s StaticSuggester) Generate(ctx context.Context, _ string, lang Language) ([]string, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	set, ok := cannedSuggestions[lang]
	if !ok {
		set = cannedSuggestions[DefaultLanguage]
	}
	out := make([]string, len(set))
	copy(out, set)
	return out, nil
}
