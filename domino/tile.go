package domino

import (
	"fmt"
	"strings"
)

// Tile 一张骨牌, int32压缩表示: 高4位为大点数, 低4位为小点数
// [3|5]和[5|3]是同一张牌, 构造时统一为小点在低位, 因此==即翻转不变等价
type Tile int32

// NewTile 构造骨牌, 点数超出[0,6]返回ErrInvalidPip
func NewTile(a, b int32) (Tile, error) {
	if a < PipMin || a > PipMax || b < PipMin || b > PipMax {
		return TileNull, fmt.Errorf("%w: [%d|%d]", ErrInvalidPip, a, b)
	}
	return MakeTile(a, b), nil
}

func MakeTile(a, b int32) Tile {
	if a > b {
		a, b = b, a
	}
	return Tile(b<<4 | a)
}

func (t Tile) Low() int32 {
	return int32(t) & 0x0F
}

func (t Tile) High() int32 {
	return int32(t) >> 4
}

func (t Tile) IsDouble() bool {
	return t.Low() == t.High()
}

func (t Tile) TotalPips() int32 {
	return t.Low() + t.High()
}

// ConnectsTo 任一面点数等于pip即可相接
func (t Tile) ConnectsTo(pip int32) bool {
	return t.Low() == pip || t.High() == pip
}

// Flip 翻面; 牌的同一性与朝向无关, 翻面后仍是同一张牌
func (t Tile) Flip() Tile {
	return MakeTile(t.High(), t.Low())
}

func (t Tile) ToInt32() int32 {
	return int32(t)
}

func IsValidTile(tile Tile) bool {
	return tile >= 0 && tile.Low() <= tile.High() && tile.High() <= PipMax
}

func GetTileName(tile Tile) string {
	if !IsValidTile(tile) {
		return ""
	}
	return fmt.Sprintf("[%d|%d]", tile.Low(), tile.High())
}

func GetTilesName(tiles []Tile) string {
	var tileNames []string
	for _, tile := range tiles {
		tileNames = append(tileNames, GetTileName(tile))
	}
	return strings.Join(tileNames, ", ")
}
