package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"questbox/internal/storage"
)

// Service is the session controller: it resolves identities, keeps the
// active session's quests and stats in memory, and writes the bundle back
// after every change.
type Service struct {
	store     storage.Store
	suggester Suggester
	now       func() time.Time
}

type Option func(*Service)

func WithSuggester(sg Suggester) Option {
	return func(s *Service) { s.suggester = sg }
}

// WithClock overrides the time source. Tests use it to pin "today" for the
// streak rules.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store:     store,
		suggester: StaticSuggester{Delay: 1500 * time.Millisecond},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Session is the in-memory working state for one logged-in user. It is valid
// between Login/Resume and Logout; every mutation is persisted immediately.
type Session struct {
	User   storage.User
	Quests []storage.Quest
	Stats  storage.Stats
	Lang   Language
}

// Login resolves the username to an identity, registering it on first sight.
// Presenting a known username is sufficient to assume that identity; there is
// no secret. Returns the loaded session and whether the user is new.
func (s *Service) Login(ctx context.Context, username string) (*Session, bool, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return nil, false, errors.New("username is required")
	}

	user, err := s.store.FindUserByName(ctx, name)
	if err != nil {
		return nil, false, err
	}
	isNew := user == nil
	if isNew {
		user = &storage.User{
			ID:        uuid.NewString(),
			Username:  name,
			CreatedAt: s.now().UTC(),
		}
		if err := s.store.CreateUser(ctx, *user); err != nil {
			return nil, false, err
		}
	}

	sess, err := s.loadSession(ctx, *user)
	if err != nil {
		return nil, false, err
	}
	if err := s.store.SetLastUser(ctx, user); err != nil {
		return nil, false, err
	}
	return sess, isNew, nil
}

// Resume rebuilds the session for the most recent login. Returns nil when
// nobody is logged in.
func (s *Service) Resume(ctx context.Context) (*Session, error) {
	user, err := s.store.LastUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return s.loadSession(ctx, *user)
}

func (s *Service) loadSession(ctx context.Context, user storage.User) (*Session, error) {
	bundle, err := s.store.LoadBundle(ctx, user.ID)
	if err != nil && !errors.Is(err, storage.ErrCorruptBundle) {
		return nil, err
	}
	// Never saved, or the stored payload would not decode: start fresh
	// rather than refuse the login.
	if bundle == nil {
		bundle = &storage.Bundle{
			Stats: NewStats(),
			Lang:  string(DefaultLanguage),
		}
	}

	lang := Language(bundle.Lang)
	if !lang.IsValid() {
		lang = DefaultLanguage
	}
	return &Session{
		User:   user,
		Quests: bundle.Quests,
		Stats:  bundle.Stats,
		Lang:   lang,
	}, nil
}

// Logout saves the session one last time and clears the last-user marker.
// The persisted bundle survives for the next login.
func (s *Service) Logout(ctx context.Context, sess *Session) error {
	if sess == nil {
		return NoSessionError{}
	}
	if err := s.save(ctx, sess); err != nil {
		return err
	}
	return s.store.SetLastUser(ctx, nil)
}

// save writes the whole bundle and refreshes the registry projection. The
// registry's TotalXP deliberately carries the current-level XP; ranking
// sorts by level first.
func (s *Service) save(ctx context.Context, sess *Session) error {
	err := s.store.SaveBundle(ctx, sess.User.ID, storage.Bundle{
		Quests: sess.Quests,
		Stats:  sess.Stats,
		Lang:   string(sess.Lang),
	})
	if err != nil {
		return err
	}
	return s.store.UpdateRegistry(ctx, sess.User.ID, sess.Stats.Level, sess.Stats.CurrentXP)
}

// AddQuest creates a quest at the front of the collection (newest first).
func (s *Service) AddQuest(ctx context.Context, sess *Session, title string, c Category, description string) (*storage.Quest, error) {
	if sess == nil {
		return nil, NoSessionError{}
	}
	q, err := NewQuest(title, c, description, s.now())
	if err != nil {
		return nil, err
	}
	sess.Quests = append([]storage.Quest{q}, sess.Quests...)
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return &q, nil
}

// ResolveQuestID expands an unambiguous id prefix to the full quest id.
func (s *Service) ResolveQuestID(sess *Session, prefix string) (string, error) {
	if sess == nil {
		return "", NoSessionError{}
	}
	p := strings.TrimSpace(prefix)
	if p == "" {
		return "", QuestNotFoundError{ID: prefix}
	}

	var matches []string
	for i := range sess.Quests {
		if strings.HasPrefix(sess.Quests[i].ID, p) {
			matches = append(matches, sess.Quests[i].ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", QuestNotFoundError{ID: p}
	case 1:
		return matches[0], nil
	default:
		return "", AmbiguousQuestError{Prefix: p, Matches: len(matches)}
	}
}

// ToggleResult reports what a toggle did, in the shape the presentation
// layer consumes: the XP delta, a level-up signal and the first newly
// unlocked achievement.
type ToggleResult struct {
	Quest       storage.Quest
	Completed   bool
	XPGained    int // base reward plus streak bonus, when completing
	XPLost      int // base reward, when un-completing
	StreakBonus int
	LevelUp     bool
	NewLevel    int
	Unlocked    []string // every id unlocked by this toggle, catalog order
	// Notification is the single achievement surfaced to the user; the
	// rest of Unlocked unlock silently.
	Notification string
}

// ToggleQuest flips a quest's completion state and applies the progression
// rules. Completing records streak/total bookkeeping and gains base+bonus
// XP; un-completing deducts only the base reward and deliberately leaves
// streak, last-active day and the completion total standing.
func (s *Service) ToggleQuest(ctx context.Context, sess *Session, id string) (*ToggleResult, error) {
	if sess == nil {
		return nil, NoSessionError{}
	}
	i := findQuest(sess.Quests, id)
	if i < 0 {
		return nil, QuestNotFoundError{ID: id}
	}

	q := &sess.Quests[i]
	res := &ToggleResult{Completed: !q.Completed}

	if res.Completed {
		bonus := RecordCompletion(&sess.Stats, s.now())
		res.StreakBonus = bonus
		res.XPGained = q.XPValue + bonus
		res.LevelUp = GainXP(&sess.Stats, res.XPGained)
	} else {
		res.XPLost = q.XPValue
		LoseXP(&sess.Stats, q.XPValue)
	}
	q.Completed = res.Completed
	res.NewLevel = sess.Stats.Level

	res.Unlocked = EvaluateAchievements(&sess.Stats)
	if len(res.Unlocked) > 0 {
		res.Notification = res.Unlocked[0]
	}

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	res.Quest = *q
	return res, nil
}

// QuestUpdate is a partial in-place edit. Changing the category does not
// touch the quest's frozen XPValue.
type QuestUpdate struct {
	Title       *string
	Description *string
	Category    *Category
}

func (s *Service) UpdateQuest(ctx context.Context, sess *Session, id string, upd QuestUpdate) (*storage.Quest, error) {
	if sess == nil {
		return nil, NoSessionError{}
	}
	i := findQuest(sess.Quests, id)
	if i < 0 {
		return nil, QuestNotFoundError{ID: id}
	}

	q := &sess.Quests[i]
	if upd.Title != nil {
		t, err := normalizeTitle(*upd.Title)
		if err != nil {
			return nil, err
		}
		q.Title = t
	}
	if upd.Description != nil {
		q.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Category != nil {
		if !upd.Category.IsValid() {
			return nil, fmt.Errorf("invalid category: %s", *upd.Category)
		}
		q.Category = string(*upd.Category)
	}

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *Service) DeleteQuest(ctx context.Context, sess *Session, id string) (*storage.Quest, error) {
	if sess == nil {
		return nil, NoSessionError{}
	}
	i := findQuest(sess.Quests, id)
	if i < 0 {
		return nil, QuestNotFoundError{ID: id}
	}

	removed := sess.Quests[i]
	sess.Quests = append(sess.Quests[:i], sess.Quests[i+1:]...)
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return &removed, nil
}

func (s *Service) SetLanguage(ctx context.Context, sess *Session, lang Language) error {
	if sess == nil {
		return NoSessionError{}
	}
	if !lang.IsValid() {
		return fmt.Errorf("unsupported language: %s", lang)
	}
	sess.Lang = lang
	return s.save(ctx, sess)
}

// Leaderboard ranks every known user by level, then by registry XP. Ties
// keep the registry's registration order. Recomputed from the store on every
// call.
func (s *Service) Leaderboard(ctx context.Context) ([]storage.RegistryEntry, error) {
	entries, err := s.store.ListRegistry(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Level != entries[j].Level {
			return entries[i].Level > entries[j].Level
		}
		return entries[i].TotalXP > entries[j].TotalXP
	})
	return entries, nil
}

// SuggestQuests asks the Suggester for titles and files each as a side-quest.
// A generator failure leaves the session untouched; there is no retry.
func (s *Service) SuggestQuests(ctx context.Context, sess *Session, input string) ([]storage.Quest, error) {
	if sess == nil {
		return nil, NoSessionError{}
	}
	titles, err := s.suggester.Generate(ctx, input, sess.Lang)
	if err != nil {
		return nil, fmt.Errorf("generate suggestions: %w", err)
	}

	var created []storage.Quest
	for _, title := range titles {
		q, err := NewQuest(title, CategorySide, "", s.now())
		if err != nil {
			continue
		}
		sess.Quests = append([]storage.Quest{q}, sess.Quests...)
		created = append(created, q)
	}
	if len(created) == 0 {
		return nil, nil
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return created, nil
}
