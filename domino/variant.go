package domino

// Variant 规则变体策略, 两种玩法仅在无牌可出的处理和僵局判定上不同
type Variant interface {
	Name() string
	// OnNoPlayable 当前座位无牌可出时的处理
	OnNoPlayable(play *Play)
	// IsBlocked 整局是否僵死
	IsBlocked(play *Play) bool
}

// DrawVariant 抽牌玩法: 无牌可出时从牌库连续摸牌, 摸到能出的立即打出
type DrawVariant struct{}

func (DrawVariant) Name() string {
	return VariantDraw
}

func (DrawVariant) OnNoPlayable(play *Play) {
	for {
		tile, err := play.Draw()
		if err != nil {
			play.Pass()
			return
		}
		if play.board.CanPlay(tile) {
			play.playTile(tile)
			return
		}
	}
}

// 牌库摸空且所有人都接不上才算僵局
func (DrawVariant) IsBlocked(play *Play) bool {
	if play.dealer.GetRestCount() > 0 {
		return false
	}
	left, right := play.board.GetEnds()
	for _, pd := range play.playData {
		if pd.CanPlay(left, right) {
			return false
		}
	}
	return true
}

// BlockVariant 封锁玩法: 不摸牌, 无牌可出即过
type BlockVariant struct{}

func (BlockVariant) Name() string {
	return VariantBlock
}

func (BlockVariant) OnNoPlayable(play *Play) {
	play.Pass()
}

// 一圈内人人都过即僵局
func (BlockVariant) IsBlocked(play *Play) bool {
	return play.consecutivePasses >= play.game.GetPlayerCount()
}
