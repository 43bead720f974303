package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/HuXin0817/lattice-rooms/pkg/pprof"
	"github.com/zeromicro/go-zero/core/logx"
)

func main() {
	o, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	pprof.Go(o.Pprof)

	var out io.Writer
	if o.Out != "" {
		f, err := os.Create(o.Out)
		logx.Must(err)
		defer f.Close()
		out = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := Run(ctx, o, out, os.Stderr)
	summary.Print(os.Stdout)
	if err != nil {
		logx.Errorf("self-play stopped: %v", err)
		os.Exit(1)
	}
}
