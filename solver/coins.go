/*
 * synacor-challenge - coin equation solver
 *
 * Copyright 2026, synacor-challenge authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package solver implements the coin-equation brute-force search offered
// as a debugger convenience: find an ordering (a, b, c, d, e) of five coin
// weights satisfying a + b*c^2 + d^3 - e == 399. Grounded on
// original_source/cpu.py's Debugger.solve_coins, rewritten as a permutation
// walk over the five distinct weights rather than a five-deep nested loop
// with a set-equality filter.
package solver

// Target is the right-hand side of the coin equation, taken verbatim from
// the Synacor Challenge's in-game riddle.
const Target = 399

// Solve returns every ordering of coins satisfying
// a + b*c^2 + d^3 - e == Target, one [5]int per match in (a, b, c, d, e)
// order. coins must hold exactly five values (spec.md's "find a permutation
// of the five integers"); a shorter or longer slice yields no solutions.
func Solve(coins []int) [][5]int {
	if len(coins) != 5 {
		return nil
	}
	var solutions [][5]int
	perm := make([]int, len(coins))
	used := make([]bool, len(coins))

	var walk func(pos int)
	walk = func(pos int) {
		if pos == len(coins) {
			a, b, c, d, e := perm[0], perm[1], perm[2], perm[3], perm[4]
			if a+b*c*c+d*d*d-e == Target {
				solutions = append(solutions, [5]int{a, b, c, d, e})
			}
			return
		}
		for i, v := range coins {
			if used[i] {
				continue
			}
			used[i] = true
			perm[pos] = v
			walk(pos + 1)
			used[i] = false
		}
	}
	walk(0)
	return solutions
}
