package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/zsombi/libcomp/comp"
)

func main() {
	log.Print("Starting binding-layer benchmark, please wait...")
	defer log.Print("Finished binding-layer benchmark")

	perfTestCfgs := []benchmarkTestConfig{
		{
			name:        "simple component",
			width:       10,
			nSources:    2,
			totalLayers: 5,
			iterations:  2000,
		},
		{
			name:        "wide dense",
			width:       100,
			nSources:    5,
			totalLayers: 5,
			iterations:  500,
		},
		{
			name:        "deep",
			width:       5,
			nSources:    3,
			totalLayers: 50,
			iterations:  500,
		},
		{
			name:        "large app",
			width:       200,
			nSources:    4,
			totalLayers: 8,
			iterations:  200,
		},
	}

	type results struct {
		sum      int64
		count    int64
		duration time.Duration
	}

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{
		"framework", "size", "nSources",
		"nTimes", "test", "time",
		"updateRate", "title",
	})

	testRepeats := 5
	for _, cfg := range perfTestCfgs {
		log.Printf("Running '%s' config", cfg.name)
		graph := benchmarkMakeGraph(cfg)

		runOnce := func() (int64, int64) {
			return benchmarkRunGraph(graph, cfg.iterations)
		}
		// Run once to warm up and record the reference sum; every repeat
		// must reproduce it.
		wantSum, _ := runOnce()

		bestResult := &results{duration: time.Hour}
		for i := 0; i < testRepeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d", cfg.name, i+1, testRepeats)
			start := time.Now()
			sum, count := runOnce()
			duration := time.Since(start)

			if sum != wantSum {
				log.Panicf("%s: unstable propagation: sum %d, want %d", cfg.name, sum, wantSum)
			}
			if duration < bestResult.duration {
				bestResult.duration = duration
				bestResult.sum = sum
				bestResult.count = count
			}
		}

		makeTitle := func() string {
			sb := strings.Builder{}
			sb.WriteString(fmt.Sprintf("%dx%d %d sources", cfg.width, cfg.totalLayers, cfg.nSources))
			return sb.String()
		}

		updateRate := float64(bestResult.count) / (float64(bestResult.duration) / float64(time.Millisecond))

		tbl.Append([]string{
			"libcomp",
			fmt.Sprintf("%dx%d", cfg.width, cfg.totalLayers),
			fmt.Sprint(cfg.nSources),
			humanize.Comma(cfg.iterations),
			cfg.name,
			fmt.Sprint(bestResult.duration),
			humanize.Comma(int64(updateRate)),
			makeTitle(),
		})
	}
	tbl.Render()
}

type benchmarkTestConfig struct {
	name        string // friendly name for the test, should be unique
	width       int    // width of the binding graph to construct
	totalLayers int    // depth of the binding graph to construct
	nSources    int    // number of previous-layer reads per binding
	iterations  int64  // number of test iterations
}

type benchmarkGraph struct {
	sources []*comp.Property[int64]
	last    []*comp.Property[int64]
}

func benchmarkMakeGraph(cfg benchmarkTestConfig) *benchmarkGraph {
	sources := make([]*comp.Property[int64], cfg.width)
	for i := range sources {
		sources[i] = comp.NewProperty(int64(i))
	}

	prev := sources
	for layer := 1; layer < cfg.totalLayers; layer++ {
		row := make([]*comp.Property[int64], cfg.width)
		for i := range row {
			deps := make([]*comp.Property[int64], cfg.nSources)
			for k := range deps {
				deps[k] = prev[(i+k)%len(prev)]
			}
			p := comp.NewProperty[int64](0)
			p.Bind(func() int64 {
				var sum int64
				for _, d := range deps {
					sum += d.Get()
				}
				return sum
			})
			row[i] = p
		}
		prev = row
	}

	return &benchmarkGraph{sources: sources, last: prev}
}

func benchmarkRunGraph(graph *benchmarkGraph, iterations int64) (sum int64, count int64) {
	// Every run starts from the initial source values.
	for k, src := range graph.sources {
		src.Set(int64(k))
	}
	for i := int64(0); i < iterations; i++ {
		// Writing i to source i%width makes the source state at every step
		// a pure function of i, so repeated runs reproduce the same sum.
		src := graph.sources[i%int64(len(graph.sources))]
		src.Set(i)
		for _, tail := range graph.last {
			sum += tail.Get()
			count++
		}
	}
	return sum, count
}
