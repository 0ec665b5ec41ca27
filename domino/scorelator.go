package domino

type ScoreType int //算分方式

const (
	ScoreTypeNatural ScoreType = iota // 自然分
	ScoreTypeJustWin                  // 只赢不输, 负分清零
)

// Scorelator 局末分数计算器
type Scorelator struct {
	game      *Game
	scoreType ScoreType
}

func NewScorelator(g *Game, scoreType ScoreType) *Scorelator {
	return &Scorelator{
		game:      g,
		scoreType: scoreType,
	}
}

// AwardWin 出完手牌获胜: 赢家得其余玩家手牌点数之和
func (s *Scorelator) AwardWin(play *Play, winner int32) int64 {
	var points int64
	for _, pd := range play.playData {
		if pd.GetSeat() != winner {
			points += int64(pd.TotalPips())
		}
	}
	points = s.clamp(points)
	s.game.GetPlayer(winner).AddScore(points)
	return points
}

// AwardBlocked 僵局结算: 手牌点数严格最小者胜, 同分保留先扫到的座位
// 得分为其余玩家点数和减去自身点数
func (s *Scorelator) AwardBlocked(play *Play) (int32, int64) {
	winner := play.playData[0].GetSeat()
	lowest := play.playData[0].TotalPips()
	for _, pd := range play.playData[1:] {
		if total := pd.TotalPips(); total < lowest {
			lowest = total
			winner = pd.GetSeat()
		}
	}

	var points int64
	for _, pd := range play.playData {
		if pd.GetSeat() != winner {
			points += int64(pd.TotalPips())
		}
	}
	points -= int64(lowest)
	points = s.clamp(points)
	s.game.GetPlayer(winner).AddScore(points)
	return winner, points
}

func (s *Scorelator) clamp(points int64) int64 {
	if s.scoreType == ScoreTypeJustWin && points < 0 {
		return 0
	}
	return points
}
