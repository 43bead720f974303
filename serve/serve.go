package main

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/HuXin0817/lattice-rooms/pkg/pprof"
	"github.com/HuXin0817/lattice-rooms/serve/internal/config"
	"github.com/HuXin0817/lattice-rooms/serve/internal/handler"
	"github.com/HuXin0817/lattice-rooms/serve/internal/svc"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/proc"
	"github.com/zeromicro/go-zero/core/threading"
	"github.com/zeromicro/go-zero/rest"
)

var (
	configFile = flag.String("f", "etc/serve.yaml", "the config file")
	serveAddr  = flag.String("h", "", "override Host:Port, e.g. 0.0.0.0:8888")
)

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	if *serveAddr != "" {
		host, port, err := net.SplitHostPort(*serveAddr)
		logx.Must(err)
		c.Host = host
		c.Port, err = strconv.Atoi(port)
		logx.Must(err)
	}

	ctx := svc.MustNewServiceContext(c)
	pprof.Go(c.Pprof)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	handler.RegisterHandlers(server, ctx)
	sweep(ctx, c.Game.SessionTTL)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}

// sweep drops idle sessions every ttl/2 until shutdown.
func sweep(ctx *svc.ServiceContext, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	done := proc.Done()
	threading.GoSafe(func() {
		ticker := time.NewTicker(ttl / 2)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if n := ctx.Sessions.Sweep(ttl); n > 0 {
					logx.Infof("%d sessions left", ctx.Sessions.Len())
				}
			}
		}
	})
}
