package constants

const (
	// AppName is used for the config directory, keyring service, and log prefix
	AppName = "habitquest"

	// SnapshotName is the fixed key the full state snapshot is stored under
	SnapshotName = "habitquest-state"

	// DateFormat is the canonical YYYY-MM-DD date layout used throughout
	DateFormat = "2006-01-02"

	// DefaultKeyringUser identifies the stored Postgres connection string
	DefaultKeyringUser = "db-connection"

	// ConnectionStringEnvVar overrides the keyring-stored connection string
	ConnectionStringEnvVar = "HABITQUEST_DB_CONNECTION"
)

// Reward and progression tuning. CheckInBaseXP and CheckInStreakXPCap define the
// XP for completing a positive habit: base + min(streak, cap). Coins are flat
// per completion.
const (
	CheckInBaseXP      = 10
	CheckInStreakXPCap = 10
	CheckInCoins       = 5

	// StreakBreakGapDays is the gap (in whole days) beyond which a streak is
	// considered broken. A gap of exactly 1 day is a valid continuation.
	StreakBreakGapDays = 1

	QuestBatchSize = 3

	StreakBadgeTier1 = 7
	StreakBadgeTier2 = 30

	// EarlyBirdBeforeHour and NightOwlAfterHour bound the time-of-day badges.
	EarlyBirdBeforeHour = 8
	NightOwlAfterHour   = 21

	MoodRatingMin = 1
	MoodRatingMax = 5

	// HeatmapWindowDays is the trailing window the contribution heatmap covers.
	HeatmapWindowDays = 365

	// InsightsMinMoodLogs and InsightsMinCategorySamples gate the mood/category
	// correlation report; InsightsDeviationPct is the reporting threshold.
	InsightsMinMoodLogs        = 3
	InsightsMinCategorySamples = 2
	InsightsDeviationPct       = 10.0
)

func init() {
	// Runtime validation: a zero batch size would leave the user without quests
	if QuestBatchSize < 1 {
		panic("QuestBatchSize must be at least 1")
	}
	if StreakBadgeTier2 <= StreakBadgeTier1 {
		panic("StreakBadgeTier2 must be greater than StreakBadgeTier1")
	}
}
