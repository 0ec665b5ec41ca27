package domino

import (
	"math/rand"
)

// Game 一场比赛: 连续多局直至有人积分达标
// 严格单线程, 所有状态变更都在调用方线程内完成
type Game struct {
	rule       *Rule
	variant    Variant
	decider    Decider
	sender     *Sender
	scorelator *Scorelator
	dealer     *Dealer
	players    []*Player
	play       *Play
	CurState   IState
	nextState  IState
	roundCount int32
	active     bool
}

// NewGame 创建比赛, decider为nil时用AutoDecider, sink为nil时不发事件
func NewGame(rule *Rule, decider Decider, sink EventSink) (*Game, error) {
	if rule == nil {
		rule = NewRule()
	}
	if err := rule.Check(); err != nil {
		return nil, err
	}
	if decider == nil {
		decider = AutoDecider{}
	}
	if sink == nil {
		sink = NopSink{}
	}

	var rng *rand.Rand
	if rule.Seed != 0 {
		rng = rand.New(rand.NewSource(rule.Seed))
	}
	dealer, err := NewDealer(rng)
	if err != nil {
		return nil, err
	}

	g := &Game{
		rule:    rule,
		decider: decider,
		dealer:  dealer,
		players: make([]*Player, rule.PlayerCount),
	}
	g.variant = rule.NewVariant()
	g.sender = NewSender(g, sink)
	g.scorelator = NewScorelator(g, ScoreTypeJustWin)
	for i := range g.players {
		g.players[i] = NewPlayer(int32(i))
	}
	return g, nil
}

// Run 同步跑完整场比赛, 返回胜者
func (g *Game) Run() *Player {
	g.active = true
	g.SetNextState(NewSetupState)
	g.enterNextState()
	g.active = false
	return g.GetWinner()
}

func (g *Game) SetNextState(newFn func(*Game, ...any) IState, args ...any) {
	g.nextState = newFn(g, args...)
}

func (g *Game) enterNextState() {
	for g.nextState != nil {
		g.CurState = g.nextState
		g.nextState = nil
		g.CurState.OnEnter()
	}
}

func (g *Game) GetRule() *Rule {
	return g.rule
}

func (g *Game) GetPlayerCount() int32 {
	return int32(len(g.players))
}

func (g *Game) IsValidSeat(seat int32) bool {
	return seat >= 0 && seat < g.GetPlayerCount()
}

func (g *Game) GetPlayer(seat int32) *Player {
	if g.IsValidSeat(seat) {
		return g.players[seat]
	}
	return nil
}

func (g *Game) GetPlay() *Play {
	return g.play
}

func (g *Game) GetRoundCount() int32 {
	return g.roundCount
}

func (g *Game) IsActive() bool {
	return g.active
}

// IsRoundActive 当前局是否仍在进行(未进入结算)
func (g *Game) IsRoundActive() bool {
	if !g.active || g.play == nil {
		return false
	}
	_, resolved := g.CurState.(*ResultState)
	return !resolved
}

func (g *Game) GetCurScores() []int64 {
	scores := make([]int64, len(g.players))
	for i, player := range g.players {
		scores[i] = player.GetScore()
	}
	return scores
}

// GetWinner 达标玩家中积分最高者, 无人达标返回nil
func (g *Game) GetWinner() *Player {
	var winner *Player
	for _, player := range g.players {
		if player.GetScore() < g.rule.TargetScore {
			continue
		}
		if winner == nil || player.GetScore() > winner.GetScore() {
			winner = player
		}
	}
	return winner
}

func (g *Game) hasWinner() bool {
	return g.GetWinner() != nil
}
