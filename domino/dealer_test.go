package domino_test

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/kevin-chtw/tw_domino/domino"
)

func newDealer(t *testing.T, rng *rand.Rand) *domino.Dealer {
	t.Helper()
	d, err := domino.NewDealer(rng)
	if err != nil {
		t.Fatalf("NewDealer failed: %v", err)
	}
	return d
}

func Test_DealerStandardSet(t *testing.T) {
	d := newDealer(t, nil)
	if got := d.GetRestCount(); got != domino.StandardSetCount {
		t.Fatalf("GetRestCount() = %v, want %v", got, domino.StandardSetCount)
	}

	seen := make(map[domino.Tile]struct{})
	for _, tile := range d.GetRestTiles() {
		if _, ok := seen[tile]; ok {
			t.Errorf("duplicate tile %s", domino.GetTileName(tile))
		}
		seen[tile] = struct{}{}
	}
	for a := int32(0); a <= 6; a++ {
		for b := a; b <= 6; b++ {
			if _, ok := seen[domino.MakeTile(a, b)]; !ok {
				t.Errorf("missing tile [%d|%d]", a, b)
			}
		}
	}
}

func Test_DealerDeal(t *testing.T) {
	d := newDealer(t, rand.New(rand.NewSource(1)))
	d.Shuffle()

	tiles, err := d.Deal(7)
	if err != nil {
		t.Fatalf("Deal(7) failed: %v", err)
	}
	if len(tiles) != 7 {
		t.Errorf("Deal(7) returned %d tiles", len(tiles))
	}
	if got := d.GetRestCount(); got != 21 {
		t.Errorf("GetRestCount() = %v, want 21", got)
	}

	if _, err := d.Deal(22); !errors.Is(err, domino.ErrInsufficientTiles) {
		t.Errorf("Deal(22) err = %v, want ErrInsufficientTiles", err)
	}
	if got := d.GetRestCount(); got != 21 {
		t.Errorf("failed deal changed rest count to %v", got)
	}

	if _, err := d.Deal(21); err != nil {
		t.Fatalf("Deal(21) failed: %v", err)
	}
	if _, err := d.DealOne(); !errors.Is(err, domino.ErrEmptySet) {
		t.Errorf("DealOne() on empty set err = %v, want ErrEmptySet", err)
	}
	if got := d.DrawTile(); got != domino.TileNull {
		t.Errorf("DrawTile() on empty set = %v, want TileNull", got)
	}
}

func Test_DealerDeterminism(t *testing.T) {
	d1 := newDealer(t, rand.New(rand.NewSource(7)))
	d2 := newDealer(t, rand.New(rand.NewSource(7)))
	d1.Shuffle()
	d2.Shuffle()

	t1, err := d1.Deal(domino.StandardSetCount)
	if err != nil {
		t.Fatal(err)
	}
	t2, err := d2.Deal(domino.StandardSetCount)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(t1, t2) {
		t.Errorf("same seed produced different sequences:\n%v\n%v", t1, t2)
	}
}

func Test_DealerReset(t *testing.T) {
	d := newDealer(t, rand.New(rand.NewSource(3)))
	d.Shuffle()
	if _, err := d.Deal(20); err != nil {
		t.Fatal(err)
	}
	if err := d.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	fresh := newDealer(t, nil)
	if !slices.Equal(d.GetRestTiles(), fresh.GetRestTiles()) {
		t.Error("Reset did not restore the canonical set")
	}
}

func Test_DealerHighestDouble(t *testing.T) {
	d := newDealer(t, nil)
	if got := d.HighestDouble(); got != domino.MakeTile(6, 6) {
		t.Errorf("HighestDouble() = %s, want [6|6]", domino.GetTileName(got))
	}
	if !d.Remove(domino.MakeTile(6, 6)) {
		t.Fatal("Remove([6|6]) failed")
	}
	if got := d.HighestDouble(); got != domino.MakeTile(5, 5) {
		t.Errorf("HighestDouble() = %s, want [5|5]", domino.GetTileName(got))
	}
}

func Test_DealerFlipInvariantMembership(t *testing.T) {
	d := newDealer(t, nil)
	if !d.HasTile(domino.MakeTile(5, 3)) {
		t.Error("HasTile([5|3]) = false, want true")
	}
	if !d.Remove(domino.MakeTile(5, 3)) {
		t.Error("Remove([5|3]) = false, want true")
	}
	if d.HasTile(domino.MakeTile(3, 5)) {
		t.Error("[3|5] still present after removing [5|3]")
	}
	if got := d.GetRestCount(); got != domino.StandardSetCount-1 {
		t.Errorf("GetRestCount() = %v, want %v", got, domino.StandardSetCount-1)
	}
}
