// SPDX-License-Identifier: MIT

// Package tsp solves the Travelling Salesman Problem exactly with the
// Held–Karp recurrence, evaluated with the three dpkit strategies.
//
// The input is an n×n distance matrix where dist[i][j] is the cost from
// city i to city j; math.Inf(1) marks a missing edge and the diagonal must
// be zero. Tours start and end at city 0. Over states (visited mask, city):
//
//	G(full, j)  = dist[j][0]
//	G(mask, j)  = min over k ∉ mask, dist[j][k] < ∞ of dist[j][k] + G(mask ∪ {k}, k)
//
// and the shortest tour costs G({0}, 0). No Hamiltonian cycle is reported as
// ErrIncompleteGraph, which also matches memo.ErrNoSolution.
//
// Performance:
//
//   - Exhaustive: O((n−1)!), every ordering of the cities.
//   - TopDown and BottomUp: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
//
// Every layer of masks reads only the layer with one more city, but layers
// are not contiguous in mask order, so BottomUp always keeps the full table
// and ignores memo.RollingArray. Inputs are limited to MaxCities.
package tsp
