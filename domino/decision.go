package domino

// Decider 出牌决策, 由宿主实现(交互界面或机器人)
// 引擎同步调用, 返回值必须取自给出的可选集, 越界视为调用方违约
type Decider interface {
	// ChooseTile 从可出牌中选一张
	ChooseTile(seat int32, playable []Tile) Tile
	// ChooseEnd 牌两端都能接时选择接哪一端
	ChooseEnd(seat int32, tile Tile) End
}

// AutoDecider 总是选第一张可出牌并接左端
type AutoDecider struct{}

func (AutoDecider) ChooseTile(seat int32, playable []Tile) Tile {
	return playable[0]
}

func (AutoDecider) ChooseEnd(seat int32, tile Tile) End {
	return EndLeft
}
