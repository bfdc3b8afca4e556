package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Banner = donburi.NewTag().SetName("Banner")
)
