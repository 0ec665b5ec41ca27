package domino

import (
	"slices"
)

// PlayData 一个座位的本局数据: 手牌及可出牌查询
type PlayData struct {
	seat      int32
	handTiles []Tile
}

func NewPlayData(seat int32) *PlayData {
	return &PlayData{
		seat:      seat,
		handTiles: make([]Tile, 0),
	}
}

func (p *PlayData) GetSeat() int32 {
	return p.seat
}

func (p *PlayData) PutHandTile(tile Tile) {
	p.handTiles = append(p.handTiles, tile)
}

func (p *PlayData) PutHandTiles(tiles []Tile) {
	p.handTiles = append(p.handTiles, tiles...)
}

// RemoveHandTile 移除一张手牌, 不在手中返回false
func (p *PlayData) RemoveHandTile(tile Tile) bool {
	i := slices.Index(p.handTiles, tile)
	if i < 0 {
		return false
	}
	p.handTiles = slices.Delete(p.handTiles, i, i+1)
	return true
}

func (p *PlayData) HasTile(tile Tile) bool {
	return slices.Contains(p.handTiles, tile)
}

func (p *PlayData) GetHandTiles() []Tile {
	return p.handTiles
}

func (p *PlayData) GetHandCount() int32 {
	return int32(len(p.handTiles))
}

func (p *PlayData) IsEmptyHand() bool {
	return len(p.handTiles) == 0
}

func (p *PlayData) ClearHand() {
	p.handTiles = p.handTiles[:0]
}

// PlayableTiles 能接任一端的手牌子集, 保持手牌顺序
func (p *PlayData) PlayableTiles(leftPip, rightPip int32) []Tile {
	playable := make([]Tile, 0)
	for _, tile := range p.handTiles {
		if (leftPip != PipNull && tile.ConnectsTo(leftPip)) ||
			(rightPip != PipNull && tile.ConnectsTo(rightPip)) {
			playable = append(playable, tile)
		}
	}
	return playable
}

// CanPlay 两端都无效时(空牌面)有手牌即可出
func (p *PlayData) CanPlay(leftPip, rightPip int32) bool {
	if leftPip == PipNull && rightPip == PipNull {
		return len(p.handTiles) > 0
	}
	for _, tile := range p.handTiles {
		if (leftPip != PipNull && tile.ConnectsTo(leftPip)) ||
			(rightPip != PipNull && tile.ConnectsTo(rightPip)) {
			return true
		}
	}
	return false
}

func (p *PlayData) Doubles() []Tile {
	doubles := make([]Tile, 0)
	for _, tile := range p.handTiles {
		if tile.IsDouble() {
			doubles = append(doubles, tile)
		}
	}
	return doubles
}

// HighestDouble 手中最大的对牌, 没有返回TileNull
func (p *PlayData) HighestDouble() Tile {
	best := TileNull
	for _, tile := range p.handTiles {
		if tile.IsDouble() && (best == TileNull || tile.TotalPips() > best.TotalPips()) {
			best = tile
		}
	}
	return best
}

// TotalPips 手牌点数和, 用于局末计分
func (p *PlayData) TotalPips() int32 {
	var total int32
	for _, tile := range p.handTiles {
		total += tile.TotalPips()
	}
	return total
}

// SortHand 展示排序: 先按点数和, 再按小面点数
func (p *PlayData) SortHand() {
	slices.SortFunc(p.handTiles, func(a, b Tile) int {
		if c := a.TotalPips() - b.TotalPips(); c != 0 {
			return int(c)
		}
		return int(a.Low() - b.Low())
	})
}
