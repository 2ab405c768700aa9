package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"sllist/config"
	"sllist/list"
	"sllist/stopwatch"
	"sllist/store"
)

// loadFiles adds the unique words of every file to one shared list,
// reading at most jobs files at a time.
func loadFiles(ctx context.Context, files []string, front bool, jobs int) (*list.Locked[string], int, error) {
	words := list.NewLocked[string](nil)
	counts := make([]int, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(name)
			if err != nil {
				return errors.Wrapf(err, "read %s", name)
			}
			unique := UniqueWords(strings.Split(string(data), "\n"))
			for _, w := range unique {
				if front {
					words.AddFirst(w)
				} else {
					words.AddLast(w)
				}
			}
			counts[i] = len(unique)
			log.WithFields(log.Fields{"file": name, "words": len(unique)}).Debug("loaded")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	return words, total, nil
}

func runLoad(cfg config.Config, st *store.Store, files []string) (*store.Run, error) {
	run := &store.Run{Mode: "load", Started: stopwatch.SystemClock.Now()}
	h := stopwatch.MarkStart()

	words, items, err := loadFiles(context.Background(), files, cfg.Front, cfg.Jobs)
	if err != nil {
		return nil, err
	}
	run.Seconds = stopwatch.ElapsedSeconds(h)
	run.Items = items
	run.Size = words.Size()
	run.SizeRecursive = words.SizeRecursive()
	if first, err := words.GetFirst(); err == nil {
		run.First = first
	}
	if last, err := words.GetLast(); err == nil {
		run.Last = last
	}
	if run.Size != run.SizeRecursive {
		return nil, errors.Errorf("size %d does not match recursive size %d", run.Size, run.SizeRecursive)
	}

	log.WithFields(log.Fields{
		"files":   len(files),
		"words":   humanize.Comma(int64(run.Size)),
		"first":   run.First,
		"last":    run.Last,
		"seconds": fmt.Sprintf("%.4f", run.Seconds),
	}).Info("load finished")

	if err := st.Record(run); err != nil {
		return nil, err
	}
	return run, nil
}
