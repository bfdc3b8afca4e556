package components

import "github.com/yohamta/donburi"

// LoadingData mirrors the resource preload progress (singleton)
type LoadingData struct {
	Done  int
	Total int
	Err   error
	Ticks int
}

var Loading = donburi.NewComponentType[LoadingData]()
