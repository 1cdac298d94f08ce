package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/habitquest/internal/models"
)

// TargetSpec is a quest template target: either a fixed count or "all active
// habits", resolved to a concrete number at generation time.
type TargetSpec struct {
	Fixed     int  `yaml:"fixed"`
	AllActive bool `yaml:"all_active"`
}

// QuestTemplate is one entry in the quest draw pool.
type QuestTemplate struct {
	Title  string           `yaml:"title"`
	Type   models.QuestType `yaml:"type"`
	Target TargetSpec       `yaml:"target"`
	Reward models.Reward    `yaml:"reward"`
}

// ItemEffect names what a shop item does when purchased.
type ItemEffect string

const (
	EffectStreakFreeze ItemEffect = "streak_freeze"
	EffectCosmetic     ItemEffect = "cosmetic"
)

// ShopItem is a purchasable catalog entry.
type ShopItem struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Cost        int        `yaml:"cost"`
	Effect      ItemEffect `yaml:"effect"`
}

// Badge is a static achievement definition. Unlock conditions live in the
// engine; the catalog only carries metadata, resolved by id lookup.
type Badge struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Badge ids referenced by the engine's unlock conditions.
const (
	BadgeStreak7    = "streak_7"
	BadgeStreak30   = "streak_30"
	BadgeFirstQuest = "first_quest"
	BadgeEarlyBird  = "early_bird"
	BadgeNightOwl   = "night_owl"
)

// Catalog bundles the static content the engine draws from.
type Catalog struct {
	Quests []QuestTemplate `yaml:"quests"`
	Shop   []ShopItem      `yaml:"shop"`
	Badges []Badge         `yaml:"badges"`
}

// Default returns the compiled-in catalog.
func Default() *Catalog {
	return &Catalog{
		Quests: []QuestTemplate{
			{Title: "Complete a habit", Type: models.QuestHabitCompletion, Target: TargetSpec{Fixed: 1}, Reward: models.Reward{XP: 20, Coins: 5}},
			{Title: "Complete 3 habits", Type: models.QuestHabitCompletion, Target: TargetSpec{Fixed: 3}, Reward: models.Reward{XP: 50, Coins: 10}},
			{Title: "Complete 5 habits", Type: models.QuestHabitCompletion, Target: TargetSpec{Fixed: 5}, Reward: models.Reward{XP: 80, Coins: 15}},
			{Title: "Complete every active habit", Type: models.QuestHabitCompletion, Target: TargetSpec{AllActive: true}, Reward: models.Reward{XP: 100, Coins: 25}},
			{Title: "Reach a 3-day streak", Type: models.QuestStreak, Target: TargetSpec{Fixed: 3}, Reward: models.Reward{XP: 60, Coins: 10}},
			{Title: "Reach a 7-day streak", Type: models.QuestStreak, Target: TargetSpec{Fixed: 7}, Reward: models.Reward{XP: 120, Coins: 30}},
			{Title: "Reach a 14-day streak", Type: models.QuestStreak, Target: TargetSpec{Fixed: 14}, Reward: models.Reward{XP: 200, Coins: 50}},
			{Title: "Log your mood", Type: models.QuestMood, Target: TargetSpec{Fixed: 1}, Reward: models.Reward{XP: 20, Coins: 5}},
			{Title: "Log your mood 3 times", Type: models.QuestMood, Target: TargetSpec{Fixed: 3}, Reward: models.Reward{XP: 50, Coins: 10}},
			{Title: "Earn 50 XP", Type: models.QuestXP, Target: TargetSpec{Fixed: 50}, Reward: models.Reward{XP: 40, Coins: 10}},
			{Title: "Earn 150 XP", Type: models.QuestXP, Target: TargetSpec{Fixed: 150}, Reward: models.Reward{XP: 90, Coins: 20}},
			{Title: "Complete 3 %s habits", Type: models.QuestCategory, Target: TargetSpec{Fixed: 3}, Reward: models.Reward{XP: 70, Coins: 15}},
		},
		Shop: []ShopItem{
			{ID: "streak_freeze", Name: "Streak Freeze", Description: "Protects one habit streak across a single missed day.", Cost: 100, Effect: EffectStreakFreeze},
			{ID: "golden_theme", Name: "Golden Theme", Description: "A shiny cosmetic flourish for your dashboard.", Cost: 150, Effect: EffectCosmetic},
			{ID: "confetti_pack", Name: "Confetti Pack", Description: "Celebratory confetti on every completion.", Cost: 75, Effect: EffectCosmetic},
		},
		Badges: []Badge{
			{ID: BadgeStreak7, Name: "One Week Wonder", Description: "Hold a 7-day streak on any habit."},
			{ID: BadgeStreak30, Name: "Habit Machine", Description: "Hold a 30-day streak on any habit."},
			{ID: BadgeFirstQuest, Name: "Quest Beginner", Description: "Complete your first quest."},
			{ID: BadgeEarlyBird, Name: "Early Bird", Description: "Check in before 8 AM."},
			{ID: BadgeNightOwl, Name: "Night Owl", Description: "Check in after 9 PM."},
		},
	}
}

// Load returns the catalog at path merged over the defaults. A missing file is
// not an error; the defaults are returned unchanged. Sections present in the
// file replace the corresponding default section wholesale.
func Load(path string) (*Catalog, error) {
	cat := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cat, nil
		}
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var override Catalog
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	if len(override.Quests) > 0 {
		cat.Quests = override.Quests
	}
	if len(override.Shop) > 0 {
		cat.Shop = override.Shop
	}
	if len(override.Badges) > 0 {
		cat.Badges = override.Badges
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog in %s: %w", path, err)
	}
	return cat, nil
}

// Validate checks the catalog for entries the engine cannot use.
func (c *Catalog) Validate() error {
	for i, q := range c.Quests {
		if q.Title == "" {
			return fmt.Errorf("quest template %d has no title", i)
		}
		switch q.Type {
		case models.QuestHabitCompletion, models.QuestStreak, models.QuestMood, models.QuestCategory, models.QuestXP:
		default:
			return fmt.Errorf("quest template %q has unknown type %q", q.Title, q.Type)
		}
		if !q.Target.AllActive && q.Target.Fixed < 1 {
			return fmt.Errorf("quest template %q has non-positive target", q.Title)
		}
	}
	for i, item := range c.Shop {
		if item.ID == "" {
			return fmt.Errorf("shop item %d has no id", i)
		}
		if item.Cost < 0 {
			return fmt.Errorf("shop item %q has negative cost", item.ID)
		}
	}
	for i, b := range c.Badges {
		if b.ID == "" {
			return fmt.Errorf("badge %d has no id", i)
		}
	}
	return nil
}

// BadgeByID resolves badge metadata from the catalog.
func (c *Catalog) BadgeByID(id string) (Badge, bool) {
	for _, b := range c.Badges {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// ItemByID resolves a shop item from the catalog.
func (c *Catalog) ItemByID(id string) (ShopItem, bool) {
	for _, item := range c.Shop {
		if item.ID == id {
			return item, true
		}
	}
	return ShopItem{}, false
}
