// Command setbench measures the skip set against a red-black-tree set on
// insert / contains / erase workloads and prints a comparison table.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/olekukonko/tablewriter"

	"github.com/metailurini/skipset"
)

type target struct {
	insert   func(key int)
	contains func(key int) bool
	erase    func(key int)
}

type result struct {
	insertMs float64
	lookupMs float64
	eraseMs  float64
}

func main() {
	var n int
	var runs int
	var seed int64

	flag.IntVar(&n, "n", 100_000, "number of keys per run")
	flag.IntVar(&runs, "runs", 5, "how many times to repeat each benchmark")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "seed for the key generator")
	flag.Parse()

	if n <= 0 || runs <= 0 {
		log.Fatalf("invalid -n or -runs: n=%d runs=%d", n, runs)
	}

	fmt.Printf("keys: %d, runs: %d, seed: %d\n", n, runs, seed)

	keys := shuffledKeys(n, seed)

	var lastStats skipset.Stats
	rows := make([][]string, 0, 2)
	for _, name := range []string{"skipset", "treeset"} {
		var totals result
		for run := 0; run < runs; run++ {
			var tgt target
			var set *skipset.Set[int]
			switch name {
			case "skipset":
				set = skipset.NewOrdered[int]()
				tgt = target{
					insert:   set.Insert,
					contains: set.Contains,
					erase:    func(key int) { set.Erase(key) },
				}
			case "treeset":
				ts := treeset.NewWithIntComparator()
				tgt = target{
					insert:   func(key int) { ts.Add(key) },
					contains: func(key int) bool { return ts.Contains(key) },
					erase:    func(key int) { ts.Remove(key) },
				}
			}

			r := benchmarkOne(tgt, keys)
			totals.insertMs += r.insertMs
			totals.lookupMs += r.lookupMs
			totals.eraseMs += r.eraseMs

			if set != nil {
				lastStats = set.Stats()
			}
		}

		div := float64(runs)
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%.3f", totals.insertMs/div),
			fmt.Sprintf("%.3f", totals.lookupMs/div),
			fmt.Sprintf("%.3f", totals.eraseMs/div),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Impl", "Insert(ms)", "Lookup(ms)", "Erase(ms)"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()

	fmt.Printf("skipset last-run counters: inserts=%d duplicates=%d searches=%d erases=%d misses=%d reuses=%d\n",
		lastStats.Inserts, lastStats.Duplicates, lastStats.Searches,
		lastStats.Erases, lastStats.EraseMisses, lastStats.NodeReuses)
}

// benchmarkOne drives a full insert / lookup / erase cycle over the key set.
// Half of the lookups miss on purpose.
func benchmarkOne(tgt target, keys []int) result {
	var r result

	start := time.Now()
	for _, key := range keys {
		tgt.insert(key)
	}
	r.insertMs = msSince(start)

	start = time.Now()
	for i, key := range keys {
		if i%2 == 0 {
			tgt.contains(key)
		} else {
			tgt.contains(key + len(keys))
		}
	}
	r.lookupMs = msSince(start)

	start = time.Now()
	for _, key := range keys {
		tgt.erase(key)
	}
	r.eraseMs = msSince(start)

	return r
}

func shuffledKeys(n int, seed int64) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(n, func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	return keys
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
