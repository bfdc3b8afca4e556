package config

import "github.com/yohamta/donburi/ecs"

// Draw layers, drawn in ascending order
const (
	Default ecs.LayerID = iota
	Overlay             // HUD, banners and menus over the playfield
)
