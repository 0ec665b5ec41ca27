package domino

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const (
	VariantDraw  = "draw"
	VariantBlock = "block"
)

// Rule 一场比赛的玩法配置
type Rule struct {
	Variant        string `mapstructure:"variant"`
	PlayerCount    int32  `mapstructure:"player_count"`
	TilesPerPlayer int32  `mapstructure:"tiles_per_player"`
	TargetScore    int64  `mapstructure:"target_score"`
	Seed           int64  `mapstructure:"seed"` // 0表示随机取种
}

// NewRule 默认玩法: 两人抽牌, 100分封顶
func NewRule() *Rule {
	return &Rule{
		Variant:        VariantDraw,
		PlayerCount:    NP2,
		TilesPerPlayer: TileCountInit,
		TargetScore:    100,
	}
}

// LoadRule 从yaml配置文件加载, 未配置项保留默认值
func LoadRule(file string) (*Rule, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	rule := NewRule()
	if err := v.Unmarshal(rule); err != nil {
		return nil, err
	}
	if err := rule.Check(); err != nil {
		return nil, err
	}
	return rule, nil
}

func (r *Rule) Check() error {
	if r.PlayerCount < NP2 || r.PlayerCount > NP4 {
		return ErrPlayerCount
	}
	if r.Variant != VariantDraw && r.Variant != VariantBlock {
		return fmt.Errorf("unknown variant %q", r.Variant)
	}
	if r.TilesPerPlayer <= 0 || r.TilesPerPlayer*r.PlayerCount > StandardSetCount {
		return fmt.Errorf("cannot deal %d tiles to %d players", r.TilesPerPlayer, r.PlayerCount)
	}
	if r.TargetScore <= 0 {
		return errors.New("target score must be positive")
	}
	return nil
}

// NewVariant 按配置创建变体策略
func (r *Rule) NewVariant() Variant {
	if r.Variant == VariantBlock {
		return BlockVariant{}
	}
	return DrawVariant{}
}
