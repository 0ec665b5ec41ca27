package domino

import "errors"

const (
	PipMin  int32 = 0
	PipMax  int32 = 6
	PipNull int32 = -1
)

const (
	TileNull Tile  = -1
	SeatNull int32 = -1
)

const (
	NP4 = 4
	NP3 = 3
	NP2 = 2
)

const (
	StandardSetCount = 28 // 双六整副牌数
	TileCountInit    = 7
)

// End 牌面的接牌端
type End int32

const (
	EndLeft End = iota
	EndRight
)

// 结算原因
const (
	ResolveWin = iota // 有人出完手牌
	ResolveBlocked    // 僵局
)

var (
	ErrInvalidPip        = errors.New("pip out of range")
	ErrCorruptSet        = errors.New("standard set must contain 28 tiles")
	ErrInsufficientTiles = errors.New("not enough tiles to deal")
	ErrEmptySet          = errors.New("no tiles left to deal")
	ErrBoardNotEmpty     = errors.New("board is not empty")
	ErrPlayerCount       = errors.New("player count must be between 2 and 4")
)

func GetNextSeat(seat, step, seatCount int32) int32 {
	return (seat + step) % seatCount
}

type Action struct {
	Seat    int32
	Tile    Tile
	Operate int
	Extra   int32
}
