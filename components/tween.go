package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives an animated value, e.g. a banner sliding into view
var Tween = donburi.NewComponentType[gween.Sequence]()
