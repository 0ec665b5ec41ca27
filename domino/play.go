package domino

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Play 一局牌: 发牌, 定先手, 轮转出牌直至有人出完或僵死
// 每局独占自己的牌面与各座手牌, 新局整体替换
type Play struct {
	game              *Game
	variant           Variant
	dealer            *Dealer
	board             *Board
	playData          []*PlayData
	curSeat           int32
	starterSeat       int32
	openTile          Tile
	consecutivePasses int32
	history           []Action
}

func NewPlay(game *Game, variant Variant, dealer *Dealer) *Play {
	p := &Play{
		game:        game,
		variant:     variant,
		dealer:      dealer,
		board:       NewBoard(),
		playData:    make([]*PlayData, game.GetPlayerCount()),
		curSeat:     SeatNull,
		starterSeat: SeatNull,
		openTile:    TileNull,
		history:     make([]Action, 0),
	}
	for i := range p.playData {
		p.playData[i] = NewPlayData(int32(i))
	}
	return p
}

// Initialize 重置牌库与牌面, 洗牌发牌并确定先手
func (p *Play) Initialize() error {
	if err := p.dealer.Reset(); err != nil {
		return err
	}
	p.dealer.Shuffle()
	p.board.Reset()
	for i := range p.playData {
		p.playData[i] = NewPlayData(int32(i))
		tiles, err := p.dealer.Deal(int(p.game.GetRule().TilesPerPlayer))
		if err != nil {
			return err
		}
		p.playData[i].PutHandTiles(tiles)
		p.playData[i].SortHand()
	}
	p.selectStarter()
	return nil
}

// selectStarter 全场同时比较: 最大对牌的持有者先手
// 无人持对牌时比最大点数牌, 同点数保留先扫到的座位
func (p *Play) selectStarter() {
	best := TileNull
	seat := SeatNull
	for _, pd := range p.playData {
		double := pd.HighestDouble()
		if double == TileNull {
			continue
		}
		if best == TileNull || double.TotalPips() > best.TotalPips() {
			best = double
			seat = pd.GetSeat()
		}
	}

	if seat == SeatNull {
		for _, pd := range p.playData {
			for _, tile := range pd.GetHandTiles() {
				if best == TileNull || tile.TotalPips() > best.TotalPips() {
					best = tile
					seat = pd.GetSeat()
				}
			}
		}
	}

	p.starterSeat = seat
	p.openTile = best
	p.curSeat = seat
}

// PlayOpening 先手必须打出定手的那张牌, 不经过决策方
func (p *Play) PlayOpening() error {
	pd := p.playData[p.curSeat]
	if !pd.RemoveHandTile(p.openTile) {
		return fmt.Errorf("opening tile %s not in hand of seat %d", GetTileName(p.openTile), p.curSeat)
	}
	if err := p.board.PlayFirst(p.openTile); err != nil {
		return err
	}
	p.addHistory(p.curSeat, p.openTile, OperatePlay, int32(EndLeft))
	p.game.sender.SendPlay(p.curSeat, p.openTile, EndLeft, p)
	p.DoSwitchSeat(SeatNull)
	return nil
}

// PlayTurn 执行当前座位的一次行动
func (p *Play) PlayTurn() {
	pd := p.playData[p.curSeat]
	left, right := p.board.GetEnds()
	playable := pd.PlayableTiles(left, right)
	if len(playable) == 0 {
		p.variant.OnNoPlayable(p)
		return
	}
	tile := p.game.decider.ChooseTile(p.curSeat, playable)
	p.playTile(tile)
}

// playTile 打出一张能接的手牌, 两端都能接时由决策方选端
func (p *Play) playTile(tile Tile) bool {
	left, right := p.board.GetEnds()
	end := EndLeft
	switch {
	case tile.ConnectsTo(left) && tile.ConnectsTo(right):
		end = p.game.decider.ChooseEnd(p.curSeat, tile)
	case tile.ConnectsTo(right):
		end = EndRight
	}

	if !p.board.PlayOnEnd(tile, end) {
		logrus.Errorf("seat %d cannot play %s", p.curSeat, GetTileName(tile))
		return false
	}
	p.playData[p.curSeat].RemoveHandTile(tile)
	p.consecutivePasses = 0
	p.addHistory(p.curSeat, tile, OperatePlay, int32(end))
	p.game.sender.SendPlay(p.curSeat, tile, end, p)
	return true
}

// Draw 从牌库摸一张进手
func (p *Play) Draw() (Tile, error) {
	tile, err := p.dealer.DealOne()
	if err != nil {
		return TileNull, err
	}
	p.playData[p.curSeat].PutHandTile(tile)
	p.addHistory(p.curSeat, tile, OperateDraw, 0)
	p.game.sender.SendDraw(p.curSeat, tile, p)
	return tile, nil
}

// Pass 过
func (p *Play) Pass() {
	p.consecutivePasses++
	p.addHistory(p.curSeat, TileNull, OperatePass, 0)
	p.game.sender.SendPass(p.curSeat)
}

// IsRoundWon 当前座位是否已出完手牌
func (p *Play) IsRoundWon() bool {
	return p.playData[p.curSeat].IsEmptyHand()
}

func (p *Play) IsBlocked() bool {
	return p.variant.IsBlocked(p)
}

func (p *Play) DoSwitchSeat(seat int32) {
	if seat == SeatNull {
		p.curSeat = GetNextSeat(p.curSeat, 1, p.game.GetPlayerCount())
	} else {
		p.curSeat = seat
	}
}

func (p *Play) GetBoard() *Board {
	return p.board
}

func (p *Play) GetDealer() *Dealer {
	return p.dealer
}

func (p *Play) GetPlayData(seat int32) *PlayData {
	if !p.game.IsValidSeat(seat) {
		return nil
	}
	return p.playData[seat]
}

func (p *Play) GetCurSeat() int32 {
	return p.curSeat
}

func (p *Play) GetStarter() int32 {
	return p.starterSeat
}

func (p *Play) GetOpenTile() Tile {
	return p.openTile
}

func (p *Play) GetConsecutivePasses() int32 {
	return p.consecutivePasses
}

func (p *Play) GetHistory() []Action {
	history := make([]Action, len(p.history))
	copy(history, p.history)
	return history
}

func (p *Play) addHistory(seat int32, tile Tile, operate int, extra int32) {
	logrus.Debugf("seat %d %s %s", seat, GetOperateName(operate), GetTileName(tile))
	p.history = append(p.history, Action{
		Seat:    seat,
		Tile:    tile,
		Operate: operate,
		Extra:   extra,
	})
}
