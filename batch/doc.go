// SPDX-License-Identifier: MIT

// Package batch evaluates many independent problem instances concurrently.
//
// Every Task owns its solver and cache: nothing is shared between tasks,
// so no locking is needed beyond collecting results. Concurrency is bounded
// with an errgroup limit. A failing task is recorded in its Result and does
// not stop its siblings; cancelling the context stops scheduling new tasks
// and is reported as the Run error.
//
// Optional instrumentation:
//
//   - WithLogger: per-task debug lines and a summary through go-logging.
//   - WithMetrics: Prometheus counters by status and a duration histogram.
package batch
