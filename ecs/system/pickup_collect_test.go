package system

import (
	"testing"

	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
)

type pickupSetup struct {
	kind      component.PickupKind
	near      bool
	points    int
	hasPoints bool
}

func TestPickupCollect(t *testing.T) {
	gold := func(near bool, points int) pickupSetup { return pickupSetup{component.PickupGold, near, points, true} }
	coal := func(near bool, points int) pickupSetup { return pickupSetup{component.PickupCoal, near, points, true} }

	cases := []struct {
		name         string
		requiresGold bool
		pickups      []pickupSetup
		wantScore    int
		wantAlive    []bool
		wantSounds   []int // requests for gold, coal
	}{
		{"gold", false, []pickupSetup{gold(true, 50)}, 50, []bool{false}, []int{1, 0}},
		{"gold_without_points", false, []pickupSetup{{component.PickupGold, true, 0, false}}, 0, []bool{false}, []int{1, 0}},
		{"far_gold", false, []pickupSetup{gold(false, 50)}, 0, []bool{true}, []int{0, 0}},
		{"two_gold", false, []pickupSetup{gold(true, 50), gold(true, 50)}, 100, []bool{false, false}, []int{2, 0}},
		{"coal_alone", false, []pickupSetup{coal(true, 20)}, 20, []bool{false}, []int{0, 1}},
		{"coal_alone_requires_gold", true, []pickupSetup{coal(true, 20)}, 0, []bool{true}, []int{0, 0}},
		{"gold_and_coal", false, []pickupSetup{gold(true, 50), coal(true, 20)}, 70, []bool{false, false}, []int{1, 1}},
		{"gold_and_coal_requires_gold", true, []pickupSetup{gold(true, 50), coal(true, 20)}, 70, []bool{false, false}, []int{1, 1}},
		// the gate opens per frame; a coal still counts once however much gold is hit
		{"two_gold_one_coal_requires_gold", true, []pickupSetup{gold(true, 50), gold(true, 50), coal(true, 20)}, 120, []bool{false, false, false}, []int{2, 1}},
		{"far_gold_near_coal_requires_gold", true, []pickupSetup{gold(false, 50), coal(true, 20)}, 0, []bool{true, true}, []int{0, 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestScene(t, 100, 100)
			var ents []ecs.Entity
			for _, p := range c.pickups {
				x := 100.0
				if !p.near {
					x = 1000
				}
				ents = append(ents, s.addPickup(t, p.kind, x, 100, p.points, p.hasPoints))
			}

			NewPickupCollectSystem(nil, c.requiresGold).Update(s.w)

			if got := s.score(t); got != c.wantScore {
				t.Fatalf("expected score %d, got %d", c.wantScore, got)
			}
			for i, e := range ents {
				if s.w.IsAlive(e) != c.wantAlive[i] {
					t.Fatalf("pickup %d: expected alive=%v", i, c.wantAlive[i])
				}
			}
			audio, _ := ecs.Get(s.w, s.session, component.AudioComponent.Kind())
			for i, want := range c.wantSounds {
				if audio.Pending[i] != want {
					t.Fatalf("sound %s: expected %d requests, got %d", audio.Names[i], want, audio.Pending[i])
				}
			}
		})
	}
}

func TestPickupCollectScript(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind component.PickupKind
		want int
	}{
		{"identity", "value := points", component.PickupGold, 50},
		{"double_coal", `value := kind == "coal" ? points * 2 : points`, component.PickupCoal, 100},
		{"negative_clamped", "value := -points", component.PickupGold, 0},
		{"no_value_passes_through", "x := 1", component.PickupGold, 50},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			script, err := NewScoreScript([]byte(c.src))
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			s := newTestScene(t, 100, 100)
			s.addPickup(t, c.kind, 100, 100, 50, true)

			NewPickupCollectSystem(script, false).Update(s.w)

			if got := s.score(t); got != c.want {
				t.Fatalf("expected score %d, got %d", c.want, got)
			}
		})
	}
}

func TestScoreScriptCompileError(t *testing.T) {
	if _, err := NewScoreScript([]byte("value := (")); err == nil {
		t.Fatal("expected a compile error")
	}
}

func TestLoadScoreScriptEmbedded(t *testing.T) {
	script, err := LoadScoreScript("score.tengo")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got, err := script.Value(component.PickupGold, 50)
	if err != nil || got != 50 {
		t.Fatalf("expected 50, got %d err=%v", got, err)
	}
}

func TestPickupCollectPushesEvents(t *testing.T) {
	s := newTestScene(t, 100, 100)
	s.addPickup(t, component.PickupGold, 100, 100, 50, true)
	s.addPickup(t, component.PickupCoal, 100, 100, 20, true)

	NewPickupCollectSystem(nil, false).Update(s.w)
	NewStatsSystem().Update(s.w)

	stats, _ := ecs.Get(s.w, s.session, component.StatsComponent.Kind())
	if stats.GoldCollected != 1 || stats.CoalCollected != 1 {
		t.Fatalf("expected one gold and one coal, got %+v", stats)
	}
}
