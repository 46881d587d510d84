package kd

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// collectChunked runs fn for every item in [0, n) and concatenates the
// per-item result lists. With workers <= 1 it is a plain loop. Otherwise the
// item range is split into contiguous chunks of max(1, n/workers); each chunk
// is processed strictly in order by one goroutine into its own local buffer,
// and the buffers are concatenated in chunk order. The result multiset is
// identical to the serial run's; no state is shared between workers.
//
// A panicking worker fails the whole call: a dropped chunk would silently
// violate the serial/parallel equivalence, so the panic is recovered and
// surfaced as an error instead.
func collectChunked[T any](n, workers int, fn func(item int) []T) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	if workers <= 1 || n == 1 {
		var out []T
		for i := 0; i < n; i++ {
			out = append(out, fn(i)...)
		}
		return out, nil
	}
	chunk := n / workers
	if chunk < 1 {
		chunk = 1
	}
	nChunks := (n + chunk - 1) / chunk
	locals := make([][]T, nChunks)
	var g errgroup.Group
	for c := 0; c < nChunks; c++ {
		start := c * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		slot := c
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("kd: worker panic: %v", r)
				}
			}()
			var local []T
			for i := start; i < end; i++ {
				local = append(local, fn(i)...)
			}
			locals[slot] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var out []T
	for _, local := range locals {
		out = append(out, local...)
	}
	return out, nil
}
