package model

import (
	"errors"
	"fmt"
	"time"
)

// Role is an inferred lane assignment for a player.
type Role string

const (
	RoleTop     Role = "top"
	RoleJungle  Role = "jungle"
	RoleMid     Role = "mid"
	RoleBot     Role = "bot"
	RoleSupport Role = "support"
	RoleUnknown Role = "unknown"
)

// ---- Raw series documents consumed from upstream ----

// TeamRef identifies one of the two sides of a series.
type TeamRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Series is a best-of-N between exactly two teams. Team identity is stable
// across every game of the series.
type Series struct {
	ID         string    `json:"id"`
	Title      string    `json:"title,omitempty"`
	Date       string    `json:"date,omitempty"` // YYYY-MM-DD
	Tournament string    `json:"tournament,omitempty"`
	Teams      []TeamRef `json:"teams"`
	Games      []Game    `json:"games"`
}

// ErrNotTwoTeams is returned when a series document does not carry exactly
// two sides. The whole analytics core assumes two teams and derives "the
// other team" by elimination, so this fails loudly instead of miscomputing.
var ErrNotTwoTeams = errors.New("series must have exactly two teams")

// Validate checks the two-team invariant.
func (s *Series) Validate() error {
	if len(s.Teams) != 2 {
		return fmt.Errorf("series %s: %w (got %d)", s.ID, ErrNotTwoTeams, len(s.Teams))
	}
	if s.Teams[0].ID == s.Teams[1].ID {
		return fmt.Errorf("series %s: %w (duplicate id %s)", s.ID, ErrNotTwoTeams, s.Teams[0].ID)
	}
	return nil
}

// OtherTeam returns the side whose ID differs from the given one.
func (s *Series) OtherTeam(teamID string) TeamRef {
	if s.Teams[0].ID == teamID {
		return s.Teams[1]
	}
	return s.Teams[0]
}

// HasTeam reports whether the given team plays in this series.
func (s *Series) HasTeam(teamID string) bool {
	return s.Teams[0].ID == teamID || s.Teams[1].ID == teamID
}

// Game is a single map of a series.
type Game struct {
	ID              string        `json:"id"`
	Number          int           `json:"number"` // 1-based position within the series
	FirstSideTeamID string        `json:"firstSideTeamId"`
	WinnerTeamID    string        `json:"winnerTeamId,omitempty"` // empty until determined
	Duration        float64       `json:"duration"`               // seconds
	Draft           []DraftAction `json:"draft,omitempty"`
	Players         []Player      `json:"players"`
	Events          []Event       `json:"events"`    // ascending by time
	Snapshots       []Snapshot    `json:"snapshots"` // ascending by time
}

// PlayerByID returns the roster entry for the given player ID, or nil.
func (g *Game) PlayerByID(id string) *Player {
	for i := range g.Players {
		if g.Players[i].ID == id {
			return &g.Players[i]
		}
	}
	return nil
}

// Roster returns the players on the given team.
func (g *Game) Roster(teamID string) []Player {
	var out []Player
	for _, p := range g.Players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out
}

// DraftKind distinguishes bans from picks.
type DraftKind string

const (
	DraftBan  DraftKind = "ban"
	DraftPick DraftKind = "pick"
)

// DraftAction is one ban or pick, in submission order within Game.Draft.
type DraftAction struct {
	TeamID   string    `json:"teamId"`
	Kind     DraftKind `json:"kind"`
	Champion string    `json:"champion"`
}

// Player ties a display name and champion/agent to a team for one game.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Champion string `json:"champion"`
	TeamID   string `json:"teamId"`
}

// EventKind enumerates the typed records of the event log.
type EventKind string

const (
	EventKill          EventKind = "CHAMPION_KILL"
	EventItemPurchased EventKind = "ITEM_PURCHASED"
	EventLevelUp       EventKind = "LEVEL_UP"
	EventMonsterKill   EventKind = "ELITE_MONSTER_KILL"
	EventBuildingKill  EventKind = "BUILDING_KILL"
)

// Event is one timestamped record of the game's event log. Which fields are
// populated depends on Kind; times are seconds from game start.
type Event struct {
	Kind     EventKind `json:"kind"`
	Time     float64   `json:"time"`
	KillerID string    `json:"killerId,omitempty"`
	VictimID string    `json:"victimId,omitempty"`
	PlayerID string    `json:"playerId,omitempty"` // purchase / level-up actor
	TeamID   string    `json:"teamId,omitempty"`   // credited team for monster/building kills
	Monster  string    `json:"monster,omitempty"`  // e.g. "VOIDGRUB", "DRAGON_INFERNAL"
	Item     string    `json:"item,omitempty"`
	Level    int       `json:"level,omitempty"`
}

// Snapshot is a periodic recording of every player's position and gold.
type Snapshot struct {
	Time    float64       `json:"time"`
	Players []PlayerFrame `json:"players"`
}

// Frame returns the frame for the given player, or nil if the snapshot has
// no record for them.
func (s *Snapshot) Frame(playerID string) *PlayerFrame {
	for i := range s.Players {
		if s.Players[i].PlayerID == playerID {
			return &s.Players[i]
		}
	}
	return nil
}

// PlayerFrame is one player's slice of a snapshot.
type PlayerFrame struct {
	PlayerID string  `json:"playerId"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Gold     int     `json:"gold"` // accumulated worth
}

// ---- Derived analytics ----

// AnalyticKind tags the payload carried by an Analytic.
type AnalyticKind string

const (
	KindObjectivePresence AnalyticKind = "objective_presence"
	KindGoldAt15          AnalyticKind = "gold_at_15"
	KindRecalls           AnalyticKind = "recall_windows"
	KindLanePriority      AnalyticKind = "lane_priority"
	KindCounterPicks      AnalyticKind = "counter_picks"
	KindComeback          AnalyticKind = "comeback"
	KindBanPhase          AnalyticKind = "ban_phase"
	KindClassProfile      AnalyticKind = "class_profile"
	KindDraftLog          AnalyticKind = "draft_log"
)

// Analytic is a tagged union: exactly one payload pointer is non-nil and it
// matches Kind. The aggregator switches on Kind instead of trusting an
// untyped blob.
type Analytic struct {
	Kind        AnalyticKind `json:"kind"`
	Description string       `json:"description,omitempty"`

	ObjectivePresence *ObjectivePresenceData `json:"objectivePresence,omitempty"`
	GoldAt15          *GoldAt15Data          `json:"goldAt15,omitempty"`
	Recalls           *RecallData            `json:"recalls,omitempty"`
	LanePriority      *LanePriorityData      `json:"lanePriority,omitempty"`
	CounterPicks      *CounterPickData       `json:"counterPicks,omitempty"`
	Comeback          *ComebackData          `json:"comeback,omitempty"`
	BanPhase          *BanPhaseData          `json:"banPhase,omitempty"`
	ClassProfile      *ClassProfileData      `json:"classProfile,omitempty"`
	DraftLog          *DraftLogData          `json:"draftLog,omitempty"`
}

// GameAnalytics collects every non-skipped analytic for one game.
type GameAnalytics struct {
	GameID     string     `json:"gameId"`
	GameNumber int        `json:"gameNumber"`
	Results    []Analytic `json:"results"`
}

// Find returns the first analytic of the given kind, or nil.
func (ga *GameAnalytics) Find(kind AnalyticKind) *Analytic {
	for i := range ga.Results {
		if ga.Results[i].Kind == kind {
			return &ga.Results[i]
		}
	}
	return nil
}

// SeriesAnalytics is the persisted bundle for one series. Rerunning the
// runner on unchanged input reproduces the same Games payload; GeneratedAt
// is the only nondeterministic field.
type SeriesAnalytics struct {
	SeriesID    string          `json:"seriesId"`
	TeamIDs     [2]string       `json:"teamIds"`
	GeneratedAt time.Time       `json:"generatedAt"`
	Games       []GameAnalytics `json:"games"`
}

// ObjectivePresenceData records whether the killing team's bot-lane carry
// was inside the objective pit when the first void grubs died.
type ObjectivePresenceData struct {
	Monster           string   `json:"monster"`
	KillTime          float64  `json:"killTime"`
	TeamID            string   `json:"teamId"` // team credited with the kill
	PlayerID          string   `json:"playerId"`
	PlayerName        string   `json:"playerName"`
	AdcJoinedForGrubs bool     `json:"adcJoinedForGrubs"`
	X                 *float64 `json:"x,omitempty"` // nil when the snapshot had no frame for the player
	Y                 *float64 `json:"y,omitempty"`
}

// PlayerGold is one player's accumulated worth at the 15 minute mark.
type PlayerGold struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Champion string `json:"champion"`
	TeamID   string `json:"teamId"`
	Role     Role   `json:"role"`
	Gold     int    `json:"gold"`
}

// GoldAt15Data requires the game to have reached 900s.
type GoldAt15Data struct {
	Players    []PlayerGold   `json:"players"`
	TeamTotals map[string]int `json:"teamTotals"`
}

// PlayerRecalls lists the inferred voluntary recall start times for one player.
type PlayerRecalls struct {
	PlayerID string    `json:"playerId"`
	Name     string    `json:"name"`
	TeamID   string    `json:"teamId"`
	Role     Role      `json:"role"`
	Times    []float64 `json:"times"`
}

// RecallData carries recall inferences for every player of the game.
type RecallData struct {
	Players []PlayerRecalls `json:"players"`
}

// PrioritySide is one side of a lane-priority comparison.
type PrioritySide struct {
	TeamID          string  `json:"teamId"`
	PlayerID        string  `json:"playerId"`
	Level           int     `json:"level"`
	LastLevelUpTime float64 `json:"lastLevelUpTime"`
}

// LanePriorityData is the deterministic priority classification at the first
// elite-monster kill: higher level wins, then earlier last level-up, else even.
type LanePriorityData struct {
	Role          Role         `json:"role"`
	Monster       string       `json:"monster"`
	ObjectiveTime float64      `json:"objectiveTime"`
	First         PrioritySide `json:"first"`  // first-side team
	Second        PrioritySide `json:"second"` // other team
	HolderTeamID  string       `json:"holderTeamId"` // empty = even
}

// CounterPickEntry records draft-order counter-pick status for one player.
type CounterPickEntry struct {
	PlayerID         string `json:"playerId"`
	Name             string `json:"name"`
	TeamID           string `json:"teamId"`
	Role             Role   `json:"role"`
	Champion         string `json:"champion"`
	OpponentChampion string `json:"opponentChampion"`
	IsCounter        bool   `json:"isCounter"`
	GoldDiffAt15     *int   `json:"goldDiffAt15,omitempty"` // nil when the game is under 900s
}

// CounterPickData carries every resolvable lane matchup of the game.
type CounterPickData struct {
	Entries []CounterPickEntry `json:"entries"`
}

// ComebackOutcome classifies the 15-minute gold gap against the result.
type ComebackOutcome string

const (
	OutcomeEven     ComebackOutcome = "even"      // gap below the evenness threshold
	OutcomeComeback ComebackOutcome = "comeback"  // trailing team won
	OutcomeLeadHeld ComebackOutcome = "lead_held" // leading team won
)

// ComebackData classifies one finished game of at least 900s.
type ComebackData struct {
	LeaderTeamID string          `json:"leaderTeamId,omitempty"` // empty when even
	Deficit      int             `json:"deficit"`                // absolute gold gap at 15
	WinnerTeamID string          `json:"winnerTeamId"`
	Outcome      ComebackOutcome `json:"outcome"`
}

// TeamBans is one side's captured first ban phase (exactly 3 when valid).
type TeamBans struct {
	TeamID    string   `json:"teamId"`
	Champions []string `json:"champions"`
}

// PickRecord is one pick with its position in the overall draft sequence.
type PickRecord struct {
	TeamID   string `json:"teamId"`
	Champion string `json:"champion"`
	Order    int    `json:"order"` // index into Game.Draft
}

// BanPhaseData captures the first ban phase plus everything the fearless
// availability reconstruction needs: all picks of the game and the champions
// consumed by strictly earlier games of the same series. GameID makes each
// record an explicit game instance.
type BanPhaseData struct {
	GameID     string       `json:"gameId"`
	GameNumber int          `json:"gameNumber"`
	First      TeamBans     `json:"first"`  // first-side team
	Second     TeamBans     `json:"second"` // other team
	Picks      []PickRecord `json:"picks"`
	PriorUsed  []string     `json:"priorUsed,omitempty"`
}

// BansFor returns the captured first-phase bans for the given team.
func (b *BanPhaseData) BansFor(teamID string) []string {
	if b.First.TeamID == teamID {
		return b.First.Champions
	}
	if b.Second.TeamID == teamID {
		return b.Second.Champions
	}
	return nil
}

// TeamClassProfile counts champion class tags across one team's composition.
type TeamClassProfile struct {
	TeamID  string         `json:"teamId"`
	Classes map[string]int `json:"classes"`
	HardCC  int            `json:"hardCC"` // champions bringing hard crowd control
}

// ClassProfileData profiles both compositions of a game.
type ClassProfileData struct {
	First  TeamClassProfile `json:"first"`
	Second TeamClassProfile `json:"second"`
}

// DraftLogData is the verbatim draft sequence, kept for replay rendering.
type DraftLogData struct {
	GameID     string        `json:"gameId"`
	GameNumber int           `json:"gameNumber"`
	Actions    []DraftAction `json:"actions"`
}

// SeriesSummary is the lightweight record shown by list/show commands.
type SeriesSummary struct {
	SeriesID   string
	Date       string
	Tournament string
	TeamAID    string
	TeamAName  string
	TeamBID    string
	TeamBName  string
	GameCount  int
}

// Opponent returns the name of the side facing teamID, or "" when teamID
// does not play in the series.
func (s *SeriesSummary) Opponent(teamID string) string {
	switch teamID {
	case s.TeamAID:
		return s.TeamBName
	case s.TeamBID:
		return s.TeamAName
	}
	return ""
}
