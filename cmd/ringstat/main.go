// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command ringstat runs a fixed producer/consumer workload through a
// code.hybscloud.com/ringspsc.Ring and reports throughput. It exists as a
// runnable demonstration of the package's Pipeline Stage pattern, not as a
// benchmark harness — use `go test -bench` for that.
package main

import (
	"flag"
	"fmt"
	"sync"
	"time"

	"code.hybscloud.com/ringspsc"
	"code.hybscloud.com/spin"
)

func main() {
	capacity := flag.Int("capacity", 4096, "ring capacity (must be a power of two)")
	count := flag.Int64("count", 10_000_000, "number of values to move")
	fakeTSO := flag.Bool("faketso", false, "use FakeTSO ordering instead of Strict")
	flag.Parse()

	if *fakeTSO {
		run[ringspsc.FakeTSO](*capacity, *count)
	} else {
		run[ringspsc.Strict](*capacity, *count)
	}
}

func run[O ringspsc.Ordering](capacity int, count int64) {
	r := ringspsc.NewRing[int64, uint64, O](capacity)

	var wg sync.WaitGroup
	wg.Add(2)

	start := time.Now()

	go func() {
		defer wg.Done()
		sw := spin.Wait{}
		for i := int64(0); i < count; i++ {
			for r.Push(i) != nil {
				sw.Once()
			}
			sw.Reset()
		}
	}()

	var sum int64
	go func() {
		defer wg.Done()
		sw := spin.Wait{}
		for received := int64(0); received < count; received++ {
			v, err := r.Pop()
			for err != nil {
				sw.Once()
				v, err = r.Pop()
			}
			sw.Reset()
			sum += v
		}
	}()

	wg.Wait()
	elapsed := time.Since(start)

	want := count * (count - 1) / 2
	if sum != want {
		fmt.Printf("checksum mismatch: got %d, want %d\n", sum, want)
		return
	}

	rate := float64(count) / elapsed.Seconds()
	fmt.Printf("capacity=%d count=%d elapsed=%s rate=%.0f ops/s\n", capacity, count, elapsed, rate)
}
