package tags

import "github.com/yohamta/donburi"

var (
	Player          = donburi.NewTag().SetName("Player")
	Platform        = donburi.NewTag().SetName("Platform")
	CurrentPlatform = donburi.NewTag().SetName("CurrentPlatform")
	NextPlatform    = donburi.NewTag().SetName("NextPlatform")
	ScoreUpEffect   = donburi.NewTag().SetName("ScoreUpEffect")
	Spark           = donburi.NewTag().SetName("Spark")
)
