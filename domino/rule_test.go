package domino_test

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_domino/domino"
)

func Test_RuleDefaults(t *testing.T) {
	rule := domino.NewRule()
	if rule.Variant != domino.VariantDraw {
		t.Errorf("default variant = %q, want %q", rule.Variant, domino.VariantDraw)
	}
	if rule.PlayerCount != 2 || rule.TilesPerPlayer != 7 || rule.TargetScore != 100 {
		t.Errorf("unexpected defaults: %+v", rule)
	}
	if err := rule.Check(); err != nil {
		t.Errorf("default rule Check() = %v, want nil", err)
	}
}

func Test_RuleCheck(t *testing.T) {
	type Case struct {
		modify  func(*domino.Rule)
		wantErr bool
	}
	testCases := []Case{
		{func(r *domino.Rule) { r.PlayerCount = 1 }, true},
		{func(r *domino.Rule) { r.PlayerCount = 5 }, true},
		{func(r *domino.Rule) { r.Variant = "solitaire" }, true},
		{func(r *domino.Rule) { r.TilesPerPlayer = 15 }, true}, // 2*15 > 28
		{func(r *domino.Rule) { r.TargetScore = 0 }, true},
		{func(r *domino.Rule) { r.PlayerCount = 4 }, false}, // 4*7 = 28
		{func(r *domino.Rule) { r.Variant = domino.VariantBlock }, false},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			rule := domino.NewRule()
			tc.modify(rule)
			if err := rule.Check(); (err != nil) != tc.wantErr {
				t.Errorf("Check() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func Test_RulePlayerCountError(t *testing.T) {
	rule := domino.NewRule()
	rule.PlayerCount = 9
	if err := rule.Check(); !errors.Is(err, domino.ErrPlayerCount) {
		t.Errorf("Check() = %v, want ErrPlayerCount", err)
	}
}

func Test_LoadRule(t *testing.T) {
	file := filepath.Join(t.TempDir(), "domino.yaml")
	data := []byte("variant: block\nplayer_count: 3\ntiles_per_player: 6\ntarget_score: 50\nseed: 99\n")
	if err := os.WriteFile(file, data, 0o644); err != nil {
		t.Fatal(err)
	}

	rule, err := domino.LoadRule(file)
	if err != nil {
		t.Fatalf("LoadRule failed: %v", err)
	}
	if rule.Variant != domino.VariantBlock || rule.PlayerCount != 3 ||
		rule.TilesPerPlayer != 6 || rule.TargetScore != 50 || rule.Seed != 99 {
		t.Errorf("LoadRule got %+v", rule)
	}
}

func Test_LoadRulePartial(t *testing.T) {
	file := filepath.Join(t.TempDir(), "domino.yaml")
	if err := os.WriteFile(file, []byte("player_count: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	rule, err := domino.LoadRule(file)
	if err != nil {
		t.Fatalf("LoadRule failed: %v", err)
	}
	// 未配置项沿用默认值
	if rule.PlayerCount != 4 || rule.Variant != domino.VariantDraw || rule.TargetScore != 100 {
		t.Errorf("LoadRule got %+v", rule)
	}
}

func Test_LoadRuleInvalid(t *testing.T) {
	file := filepath.Join(t.TempDir(), "domino.yaml")
	if err := os.WriteFile(file, []byte("player_count: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := domino.LoadRule(file); err == nil {
		t.Error("LoadRule with 8 players succeeded, want error")
	}
}
