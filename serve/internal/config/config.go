package config

import (
	"time"

	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf
	Game struct {
		Size        int    `json:",default=11"`
		TargetRooms int    `json:",default=20"`
		Preset      string `json:",default=orthogonal-diagonals,options=orthogonal|orthogonal-diagonals|custom"`
		Directions  string `json:",optional"`
		SearchDepth int    `json:",default=3"`
		// Parallel is the number of root workers; 0 searches sequentially.
		Parallel   int           `json:",default=0"`
		SessionTTL time.Duration `json:",default=30m"`
	}
	Pprof string `json:",optional"`
}
