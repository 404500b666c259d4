// Package flowfx runs a fixed set of named tasks to completion, sequentially
// or concurrently, and reports what failed.
//
// # Basic usage
//
//	err := flowfx.Parallel(ctx,
//		flowfx.NewTask(flowfx.WithName("terminal"), flowfx.WithRun(runTerminal)),
//		flowfx.NewTask(flowfx.WithName("broker"), flowfx.WithRun(runBroker)),
//	)
//
// [Parallel] runs every [Task] concurrently via errgroup.Group, waits for all
// of them, and aggregates every returned error with multierr rather than
// stopping at the first one. [Sequence] runs tasks one after another and
// stops at the first error.
package flowfx
