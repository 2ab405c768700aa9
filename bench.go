package main

import (
	"fmt"
	"io"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"sllist/config"
	"sllist/list"
	"sllist/stopwatch"
	"sllist/store"
)

// maxTrialMicros bounds the histograms: one hour per trial.
const maxTrialMicros = int64(time.Hour / time.Microsecond)

// buildList fills a new list with 0..n-1 and reports how long it took.
// With front the list ends up reversed.
func buildList(n int, front bool) (*list.List[int], time.Duration) {
	l := list.New[int]()
	h := stopwatch.MarkStart()
	for i := 0; i < n; i++ {
		if front {
			l.AddFirst(i)
		} else {
			l.AddLast(i)
		}
	}
	return l, h.Elapsed()
}

func runBench(cfg config.Config, st *store.Store) (*store.Run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	run := &store.Run{Mode: "bench", Started: stopwatch.SystemClock.Now(), Items: cfg.N}
	h := stopwatch.MarkStart()

	firsts := hdrhistogram.New(1, maxTrialMicros, 3)
	lasts := hdrhistogram.New(1, maxTrialMicros, 3)
	var l *list.List[int]
	for trial := 0; trial < cfg.Trials; trial++ {
		_, took := buildList(cfg.N, true)
		if err := firsts.RecordValue(micros(took)); err != nil {
			return nil, errors.Wrap(err, "record AddFirst trial")
		}
		l, took = buildList(cfg.N, false)
		if err := lasts.RecordValue(micros(took)); err != nil {
			return nil, errors.Wrap(err, "record AddLast trial")
		}
		log.WithFields(log.Fields{"trial": trial, "micros": micros(took)}).Debug("AddLast trial")
	}

	run.Seconds = stopwatch.ElapsedSeconds(h)
	run.Size = l.Size()
	run.SizeRecursive = l.SizeRecursive()
	if first, err := l.GetFirst(); err == nil {
		run.First = fmt.Sprint(first)
	}
	if last, err := l.GetLast(); err == nil {
		run.Last = fmt.Sprint(last)
	}
	run.AddFirstP50 = firsts.ValueAtQuantile(50)
	run.AddFirstP99 = firsts.ValueAtQuantile(99)
	run.AddLastP50 = lasts.ValueAtQuantile(50)
	run.AddLastP99 = lasts.ValueAtQuantile(99)

	log.WithFields(log.Fields{
		"n":             humanize.Comma(int64(cfg.N)),
		"trials":        cfg.Trials,
		"addFirst_p50":  time.Duration(run.AddFirstP50) * time.Microsecond,
		"addFirst_p99":  time.Duration(run.AddFirstP99) * time.Microsecond,
		"addLast_p50":   time.Duration(run.AddLastP50) * time.Microsecond,
		"addLast_p99":   time.Duration(run.AddLastP99) * time.Microsecond,
		"total_seconds": fmt.Sprintf("%.4f", run.Seconds),
	}).Info("bench finished")

	if err := st.Record(run); err != nil {
		return nil, err
	}
	return run, nil
}

// micros rounds d up to whole microseconds, with a floor of 1 so the histogram accepts it.
func micros(d time.Duration) int64 {
	us := int64((d + time.Microsecond - 1) / time.Microsecond)
	if us < 1 {
		return 1
	}
	if us > maxTrialMicros {
		return maxTrialMicros
	}
	return us
}

func printRuns(st *store.Store, w io.Writer) error {
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "no runs recorded")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(w, "%s  %-5s  %s  items=%s size=%d recursive=%d first=%q last=%q %.4fs",
			r.ID, r.Mode, humanize.Time(r.Started), humanize.Comma(int64(r.Items)),
			r.Size, r.SizeRecursive, r.First, r.Last, r.Seconds)
		if r.Mode == "bench" {
			fmt.Fprintf(w, " addFirst p50=%dus p99=%dus addLast p50=%dus p99=%dus",
				r.AddFirstP50, r.AddFirstP99, r.AddLastP50, r.AddLastP99)
		}
		fmt.Fprintln(w)
	}
	return nil
}
