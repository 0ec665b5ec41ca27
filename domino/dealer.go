package domino

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/kevin-chtw/tw_domino/utils"
)

// Dealer 牌库(boneyard), 持有未发出的骨牌
// 随机源由构造方注入, 固定种子可复现整局
type Dealer struct {
	rng   *rand.Rand
	tiles []Tile
}

// NewDealer 创建牌库并生成整副双六牌, rng为nil时随机取种
func NewDealer(rng *rand.Rand) (*Dealer, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(utils.NewSeed()))
	}
	d := &Dealer{rng: rng}
	if err := d.Reset(); err != nil {
		return nil, err
	}
	return d, nil
}

// Reset 恢复整副28张, 生成数量异常属于不变量破坏
func (d *Dealer) Reset() error {
	tiles := make([]Tile, 0, StandardSetCount)
	for a := PipMin; a <= PipMax; a++ {
		for b := a; b <= PipMax; b++ {
			tiles = append(tiles, MakeTile(a, b))
		}
	}
	if len(tiles) != StandardSetCount {
		return fmt.Errorf("%w: got %d", ErrCorruptSet, len(tiles))
	}
	d.tiles = tiles
	return nil
}

func (d *Dealer) Shuffle() {
	d.rng.Shuffle(len(d.tiles), func(i, j int) {
		d.tiles[i], d.tiles[j] = d.tiles[j], d.tiles[i]
	})
}

// Deal 从牌库前端发count张
func (d *Dealer) Deal(count int) ([]Tile, error) {
	if count > len(d.tiles) {
		return nil, fmt.Errorf("%w: want %d, rest %d", ErrInsufficientTiles, count, len(d.tiles))
	}
	tiles := make([]Tile, count)
	copy(tiles, d.tiles[:count])
	d.tiles = d.tiles[count:]
	return tiles, nil
}

func (d *Dealer) DealOne() (Tile, error) {
	if len(d.tiles) == 0 {
		return TileNull, ErrEmptySet
	}
	tile := d.tiles[0]
	d.tiles = d.tiles[1:]
	return tile, nil
}

// DrawTile 摸一张, 牌库为空返回TileNull
func (d *Dealer) DrawTile() Tile {
	tile, err := d.DealOne()
	if err != nil {
		return TileNull
	}
	return tile
}

// GetRestCount 获取剩余牌数
func (d *Dealer) GetRestCount() int32 {
	return int32(len(d.tiles))
}

func (d *Dealer) IsEmpty() bool {
	return len(d.tiles) == 0
}

func (d *Dealer) HasTile(tile Tile) bool {
	return slices.Contains(d.tiles, tile)
}

func (d *Dealer) Remove(tile Tile) bool {
	i := slices.Index(d.tiles, tile)
	if i < 0 {
		return false
	}
	d.tiles = slices.Delete(d.tiles, i, i+1)
	return true
}

// HighestDouble 剩余牌中最大的对牌, 没有返回TileNull
func (d *Dealer) HighestDouble() Tile {
	best := TileNull
	for _, tile := range d.tiles {
		if tile.IsDouble() && (best == TileNull || tile.TotalPips() > best.TotalPips()) {
			best = tile
		}
	}
	return best
}

func (d *Dealer) GetRestTiles() []Tile {
	return slices.Clone(d.tiles)
}
