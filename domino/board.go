package domino

import (
	"strconv"
	"strings"
)

// Board 牌面: 点数序列与两个开口端
// layout只存点数, 相接处的点数只出现一次; playedTiles按落牌顺序记录整牌, 仅用于展示回放
type Board struct {
	layout      []int32
	playedTiles []Tile
	leftEnd     int32
	rightEnd    int32
}

func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset 清空牌面
func (b *Board) Reset() {
	b.layout = make([]int32, 0)
	b.playedTiles = make([]Tile, 0)
	b.leftEnd = PipNull
	b.rightEnd = PipNull
}

func (b *Board) IsEmpty() bool {
	return len(b.playedTiles) == 0
}

func (b *Board) GetLeftEnd() int32 {
	return b.leftEnd
}

func (b *Board) GetRightEnd() int32 {
	return b.rightEnd
}

func (b *Board) GetEnds() (int32, int32) {
	return b.leftEnd, b.rightEnd
}

// CanPlay 空牌面任意牌可出, 否则须能接任一端
func (b *Board) CanPlay(tile Tile) bool {
	if b.IsEmpty() {
		return true
	}
	return tile.ConnectsTo(b.leftEnd) || tile.ConnectsTo(b.rightEnd)
}

// PlayFirst 首张落牌, 两面点数成为两端
func (b *Board) PlayFirst(tile Tile) error {
	if !b.IsEmpty() {
		return ErrBoardNotEmpty
	}
	b.layout = append(b.layout, tile.Low(), tile.High())
	b.leftEnd = tile.Low()
	b.rightEnd = tile.High()
	b.playedTiles = append(b.playedTiles, tile)
	return nil
}

// PlayLeft 接左端, 不能相接返回false
func (b *Board) PlayLeft(tile Tile) bool {
	if b.IsEmpty() {
		return b.PlayFirst(tile) == nil
	}
	if !tile.ConnectsTo(b.leftEnd) {
		return false
	}
	free := tile.Low()
	if tile.Low() == b.leftEnd {
		free = tile.High()
	}
	b.layout = append([]int32{free}, b.layout...)
	b.leftEnd = free
	b.playedTiles = append(b.playedTiles, tile)
	return true
}

// PlayRight 接右端, 不能相接返回false
func (b *Board) PlayRight(tile Tile) bool {
	if b.IsEmpty() {
		return b.PlayFirst(tile) == nil
	}
	if !tile.ConnectsTo(b.rightEnd) {
		return false
	}
	free := tile.Low()
	if tile.Low() == b.rightEnd {
		free = tile.High()
	}
	b.layout = append(b.layout, free)
	b.rightEnd = free
	b.playedTiles = append(b.playedTiles, tile)
	return true
}

// Play 自动选端落牌, 先试左端再试右端
func (b *Board) Play(tile Tile) bool {
	if b.IsEmpty() {
		return b.PlayFirst(tile) == nil
	}
	if tile.ConnectsTo(b.leftEnd) {
		return b.PlayLeft(tile)
	}
	return b.PlayRight(tile)
}

func (b *Board) PlayOnEnd(tile Tile, end End) bool {
	if end == EndLeft {
		return b.PlayLeft(tile)
	}
	return b.PlayRight(tile)
}

// IsBlocked 两端点数相同, 与整局僵局是两回事
func (b *Board) IsBlocked() bool {
	return !b.IsEmpty() && b.leftEnd == b.rightEnd
}

func (b *Board) GetLayout() []int32 {
	layout := make([]int32, len(b.layout))
	copy(layout, b.layout)
	return layout
}

func (b *Board) GetPlayedTiles() []Tile {
	tiles := make([]Tile, len(b.playedTiles))
	copy(tiles, b.playedTiles)
	return tiles
}

func (b *Board) GetTileCount() int32 {
	return int32(len(b.playedTiles))
}

func (b *Board) TotalPips() int32 {
	var total int32
	for _, pip := range b.layout {
		total += pip
	}
	return total
}

// LayoutString 点数序列展示形式, 如"6-3-5-2"
func (b *Board) LayoutString() string {
	pips := make([]string, len(b.layout))
	for i, pip := range b.layout {
		pips[i] = strconv.FormatInt(int64(pip), 10)
	}
	return strings.Join(pips, "-")
}
