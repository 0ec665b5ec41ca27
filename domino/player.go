package domino

// Player 跨局存在的玩家: 座位号, 累计积分与胜局数
type Player struct {
	seat      int32
	score     int64
	roundsWon int32
}

func NewPlayer(seat int32) *Player {
	return &Player{seat: seat}
}

func (p *Player) GetSeat() int32 {
	return p.seat
}

// AddScore 增加积分
func (p *Player) AddScore(delta int64) {
	p.score += delta
}

func (p *Player) GetScore() int64 {
	return p.score
}

// ResetScore 新一场比赛清零, 换局不调用
func (p *Player) ResetScore() {
	p.score = 0
}

func (p *Player) AddRoundWin() {
	p.roundsWon++
}

func (p *Player) GetRoundsWon() int32 {
	return p.roundsWon
}
