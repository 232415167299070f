/*
 * corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2026 The Corvid Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

// evalConfiguration holds toggles for the evaluator's term groups, so
// individual terms can be disabled for tuning/testing without touching
// source. Bonus/malus fields are supplementary hand-tuned knobs layered
// on top of the fixed tables in internal/evaluator; the tables
// themselves stay fixed rather than becoming runtime-tunable.
type evalConfiguration struct {
	UsePawnCache  bool
	PawnCacheSize int

	UseEvalCache     bool
	EvalCacheSizeMB  int

	UseMobility    bool
	UseKingSafety  bool
	UseThreats     bool
	UseImbalance   bool
	UseOutposts    bool
	Tempo          int16
}

func init() {
	Settings.Eval.UsePawnCache = true
	Settings.Eval.PawnCacheSize = 16

	Settings.Eval.UseEvalCache = true
	Settings.Eval.EvalCacheSizeMB = 16

	Settings.Eval.UseMobility = true
	Settings.Eval.UseKingSafety = true
	Settings.Eval.UseThreats = true
	Settings.Eval.UseImbalance = true
	Settings.Eval.UseOutposts = true
	Settings.Eval.Tempo = 18
}
