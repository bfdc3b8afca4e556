package scenes

import (
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/network"
)

func newScoreClient() *network.HighScoreClient {
	return network.NewHighScoreClient(cfg.Network.ScoreAPIURL, cfg.Network.RequestTimeout)
}
