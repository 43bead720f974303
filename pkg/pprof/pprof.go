package pprof

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// Router serves net/http/pprof under /debug/pprof.
func Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	pprof.Register(router)
	return router
}

// Run blocks serving the profiler on addr.
func Run(addr string) error {
	logx.Infof("pprof listening on %s", addr)
	return Router().Run(addr)
}

// Go starts the profiler in the background when addr is set.
func Go(addr string) {
	if addr == "" {
		return
	}

	go func() {
		if err := Run(addr); err != nil {
			logx.Errorf("pprof on %s: %v", addr, err)
		}
	}()
}
