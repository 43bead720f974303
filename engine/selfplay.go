package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/HuXin0817/lattice-rooms/pkg/assess"
	"github.com/HuXin0817/lattice-rooms/pkg/models/game"
	"github.com/HuXin0817/lattice-rooms/pkg/models/message"
	"github.com/HuXin0817/lattice-rooms/pkg/models/model"
	"github.com/HuXin0817/lattice-rooms/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/logx"
	"golang.org/x/sync/errgroup"
)

// PlayGame lets searcher play both sides until the game ends. A side with no
// legal move forfeits.
func PlayGame(ctx context.Context, config game.Config, searcher *assess.Searcher) (message.GameReport, error) {
	start := time.Now()
	report := message.GameReport{
		TimeStamp: message.NewTimeStamp(start),
		GameUid:   message.NewGameUid(),
	}

	state := game.New(config)
	report.Config = state.Config

	for !state.Finished() {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		d, c := searcher.ChooseBestMove(state)
		if !c {
			state = state.Forfeit()
			report.Forfeit = true
			break
		}

		report.Moves = append(report.Moves, message.MoveRecord{
			Step:   d.NextState.MoveNumber,
			Player: state.NowPlayer,
			Move:   d.Move,
			Score:  d.Score,
			Rooms:  d.NextState.Rooms,
		})
		state = d.NextState
	}

	report.Rooms = state.Rooms
	report.Loser = state.Loser
	report.Elapsed = time.Since(start)
	return report, nil
}

type Summary struct {
	Games    int
	Wins     [2]int
	Forfeits int
	Moves    int
	Elapsed  time.Duration
}

func (s *Summary) Add(r message.GameReport) {
	s.Games++
	if w := r.Winner(); w != game.NoLoser {
		s.Wins[w.Index()]++
	}
	if r.Forfeit {
		s.Forfeits++
	}
	s.Moves += len(r.Moves)
}

// Progress is the running score shown next to the progress bar.
func (s *Summary) Progress() string {
	return fmt.Sprintf("self-play P1 %d : %d P2", s.Wins[0], s.Wins[1])
}

func newSearcher(o Options, n int) *assess.Searcher {
	options := []assess.Option{
		assess.WithDepth(o.Depth),
		assess.WithMaxBranching(o.Branching),
	}
	if o.Seed != 0 {
		options = append(options, assess.WithRand(rand.New(rand.NewSource(o.Seed+int64(n)))))
	}
	if o.Parallel == model.On {
		options = append(options, assess.WithParallel(runtime.NumCPU()))
	}
	return assess.NewSearcher(options...)
}

// Run plays o.Games games on o.Workers goroutines. Reports are batched
// through a pusher and written to out as JSON lines when out is not nil.
func Run(ctx context.Context, o Options, out io.Writer, progress io.Writer) (summary Summary, err error) {
	config, err := o.GameConfig()
	if err != nil {
		return
	}

	reports := pusher.NewPusher(
		pusher.WithPushInterval[message.GameReport](time.Second),
		pusher.WithPushLogic(func(batch ...message.GameReport) error {
			if out == nil {
				return nil
			}
			for _, r := range batch {
				if _, err := io.WriteString(out, r.String()+"\n"); err != nil {
					return err
				}
			}
			return nil
		}),
	)
	reports.Start()

	bar := model.NewBar(progress, o.Games, "self-play")
	defer bar.Close()

	start := time.Now()
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := range o.Games {
		g.Go(func() error {
			report, err := PlayGame(ctx, config, newSearcher(o, i))
			if err != nil {
				return err
			}

			logx.Debugf("game %s: %s lost with %d rooms after %d moves", report.GameUid, report.Loser, report.Rooms, len(report.Moves))
			reports.AddMessages(report)

			mu.Lock()
			summary.Add(report)
			bar.Describe(summary.Progress())
			bar.Add(1)
			mu.Unlock()
			return nil
		})
	}

	err = g.Wait()
	if stopErr := reports.Stop(); err == nil {
		err = stopErr
	}
	summary.Elapsed = time.Since(start)
	return
}
