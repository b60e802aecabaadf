// SPDX-License-Identifier: MIT

// Package rodcutting maximises the revenue from cutting a rod into pieces,
// where prices[i] is the price of a piece of length i+1.
//
//	R(0) = 0
//	R(n) = max_{1≤i≤n} prices[i-1] + R(n-i)
//
// Lengths longer than the price table are rejected: a piece that has no
// price cannot be sold. Prices must be non-negative, which makes R
// non-decreasing in n.
package rodcutting
