// SPDX-License-Identifier: MIT

// Package catalog names every problem in dpkit and evaluates problem
// instances described as data.
//
// What:
//
//   - Problem: stable kebab-case name of each registered problem.
//   - Instance: one problem plus its parameters, decodable from YAML.
//   - Evaluate: run an Instance with any memo.Strategy.
//   - Verify: run all three strategies and fail with
//     memo.ErrStrategyMismatch if any two disagree.
//   - Decode / LoadFile: read an `instances:` list from YAML.
//
// Example file:
//
//	instances:
//	  - name: classic-knapsack
//	    problem: knapsack
//	    capacity: 5
//	    items: [{weight: 1, value: 6}, {weight: 2, value: 10}, {weight: 3, value: 12}]
//	    expect: "22"
//	  - problem: knight-probability
//	    height: 3
//	    width: 3
//	    moves: 2
//
// Every Evaluate call builds its own solver and cache; Instances may be
// evaluated concurrently.
package catalog
