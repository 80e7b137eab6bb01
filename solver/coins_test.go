/*
 * synacor-challenge - coin solver tests
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

package solver

import "testing"

func TestSolveFindsKnownAnswer(t *testing.T) {
	// The Synacor Challenge's actual coin weights and the known answer,
	// in (a, b, c, d, e) order: 9 + 2*5^2 + 7^3 - 3 == 399.
	coins := []int{2, 3, 5, 7, 9}
	got := Solve(coins)
	if len(got) == 0 {
		t.Fatal("expected at least one solution")
	}
	want := [5]int{9, 2, 5, 7, 3}
	found := false
	for _, sol := range got {
		if sol == want {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("solutions = %v, want to contain %v", got, want)
	}
}

func TestSolveRejectsWrongCoinCount(t *testing.T) {
	if got := Solve([]int{1, 2, 3}); got != nil {
		t.Fatalf("Solve with 3 coins = %v, want nil", got)
	}
}

func TestSolveNoSolution(t *testing.T) {
	got := Solve([]int{1, 1, 1, 1, 1})
	if len(got) != 0 {
		t.Fatalf("Solve = %v, want no solutions", got)
	}
}
