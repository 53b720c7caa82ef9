package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/zsombi/libcomp/comp"
)

var (
	ww      = []int{1, 10, 100, 1_000}
	hh      = []int{1, 10, 100}
	iters   = 100
	profile = flag.String("cpuprofile", "", "write a CPU profile to the given file")
)

func main() {
	flag.Parse()

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	benchmarkEmit(false)
	benchmarkBindChains(false)

	benchmarkEmit(true)
	benchmarkForwardChains(true)
	benchmarkBindChains(true)
}

func benchmarkEmit(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Signal Emission")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		sig := comp.NewSignal[int, comp.Unit]()
		total := 0
		for i := 0; i < w; i++ {
			sig.Connect(func(v int) comp.Unit {
				total += v
				return comp.Unit{}
			})
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			sig.Emit(1)
			tach.AddTime(time.Since(start))
		}
		sig.Close()

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("emit: %d slots", w),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkForwardChains(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Signal Forward Chains")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, h := range hh {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		head := comp.NewSignal[int, comp.Unit]()
		prev := head
		tails := make([]*comp.Signal[int, comp.Unit], 0, h)
		count := 0
		for j := 0; j < h; j++ {
			next := comp.NewSignal[int, comp.Unit]()
			prev.ConnectSignal(next)
			prev = next
			tails = append(tails, next)
		}
		prev.Connect(func(int) comp.Unit {
			count++
			return comp.Unit{}
		})

		for i := 0; i < iters; i++ {
			start := time.Now()
			head.Emit(i)
			tach.AddTime(time.Since(start))
		}
		if count != iters {
			log.Panicf("forward chain lost emissions: %d != %d", count, iters)
		}
		for _, s := range tails {
			s.Close()
		}
		head.Close()

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("forward: %d hops", h),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkBindChains(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Property Bind Chains")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "checksum"})

	for _, w := range ww {
		for _, h := range hh {
			if w*h > 10_000 {
				continue
			}
			tach := tachymeter.New(&tachymeter.Config{Size: iters})
			digest := xxhash.New()

			src := comp.NewProperty(1)
			tails := make([]*comp.Property[int], 0, w)
			for i := 0; i < w; i++ {
				last := src
				for j := 0; j < h; j++ {
					prev := last
					next := comp.NewProperty(0)
					next.Bind(func() int {
						return prev.Get() + 1
					})
					last = next
				}
				tails = append(tails, last)
			}

			var buf [8]byte
			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Set(src.Get() + 1)
				for _, tail := range tails {
					binary.LittleEndian.PutUint64(buf[:], uint64(tail.Get()))
					digest.Write(buf[:])
				}
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
					fmt.Sprintf("%016x", digest.Sum64()),
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
