package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/digger/common"
	"github.com/milk9111/digger/ecs"
	"github.com/milk9111/digger/ecs/component"
	"github.com/milk9111/digger/levels"
)

// ImageSource resolves a tile image by base name.
type ImageSource interface {
	Get(name string) (*ebiten.Image, error)
}

// LevelCounts reports how many entities each layer produced.
type LevelCounts struct {
	Platforms int
	Gold      int
	Coal      int
}

// LoadLevelToWorld creates platform, gold and coal entities from the map
// layers. Positions and sizes are multiplied by scale. A nil images source
// leaves the sprites empty.
func LoadLevelToWorld(w *ecs.World, m *levels.Map, images ImageSource, scale float64) (LevelCounts, error) {
	var counts LevelCounts
	if m == nil {
		return counts, fmt.Errorf("level: nil map")
	}
	if scale == 0 {
		scale = 1
	}

	for _, tile := range m.Layer(common.LayerPlatforms) {
		e, err := newTileEntity(w, tile, images, scale, component.LayerPlatforms)
		if err != nil {
			return counts, err
		}
		if err := ecs.Add(w, e, component.PlatformComponent.Kind(), &component.Platform{Col: tile.Col, Row: tile.Row}); err != nil {
			return counts, fmt.Errorf("level: platform: %w", err)
		}
		counts.Platforms++
	}

	pickupLayers := []struct {
		name  string
		kind  component.PickupKind
		layer int
		count *int
	}{
		{common.LayerGold, component.PickupGold, component.LayerGold, &counts.Gold},
		{common.LayerCoal, component.PickupCoal, component.LayerCoal, &counts.Coal},
	}
	for _, pl := range pickupLayers {
		for _, tile := range m.Layer(pl.name) {
			points, ok, err := tile.IntProperty(common.PointsProperty)
			if err != nil {
				return counts, fmt.Errorf("level: %s tile at %d,%d: %w", pl.name, tile.Col, tile.Row, err)
			}
			e, err := newTileEntity(w, tile, images, scale, pl.layer)
			if err != nil {
				return counts, err
			}
			if err := ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{Kind: pl.kind, Points: points, HasPoints: ok}); err != nil {
				return counts, fmt.Errorf("level: pickup: %w", err)
			}
			*pl.count++
		}
	}

	return counts, nil
}

func newTileEntity(w *ecs.World, tile levels.Tile, images ImageSource, scale float64, layer int) (ecs.Entity, error) {
	sprite := &component.Sprite{}
	if images != nil && tile.Image != "" {
		img, err := images.Get(tile.Image)
		if err != nil {
			return 0, fmt.Errorf("level: tile image %q: %w", tile.Image, err)
		}
		sprite.Image = img
		if !tile.Source.Empty() {
			sprite.Source = tile.Source
			sprite.UseSource = true
		}
	}

	e := ecs.CreateEntity(w)
	adds := []error{
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
			X: tile.X * scale, Y: tile.Y * scale, ScaleX: scale, ScaleY: scale,
		}),
		ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Width: tile.Width * scale, Height: tile.Height * scale}),
		ecs.Add(w, e, component.SpriteComponent.Kind(), sprite),
		ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}),
	}
	for _, err := range adds {
		if err != nil {
			return 0, fmt.Errorf("level: tile: %w", err)
		}
	}
	return e, nil
}
