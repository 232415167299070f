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

package types

// Score is a tapered evaluation value: a middlegame and an endgame
// centipawn pair, combined once the position's game phase is known.
// Every evaluator term is expressed as a Score.
type Score struct {
	Mg int16
	Eg int16
}

// MakeScore builds a Score from its middlegame/endgame components.
func MakeScore(mg, eg int16) Score {
	return Score{Mg: mg, Eg: eg}
}

// Add returns s+o component-wise.
func (s Score) Add(o Score) Score {
	return Score{Mg: s.Mg + o.Mg, Eg: s.Eg + o.Eg}
}

// Sub returns s-o component-wise.
func (s Score) Sub(o Score) Score {
	return Score{Mg: s.Mg - o.Mg, Eg: s.Eg - o.Eg}
}

// Neg returns -s component-wise.
func (s Score) Neg() Score {
	return Score{Mg: -s.Mg, Eg: -s.Eg}
}

// Mul returns s scaled by n component-wise, used for bonuses that repeat
// per-piece or per-attacked-square.
func (s Score) Mul(n int) Score {
	return Score{Mg: int16(int(s.Mg) * n), Eg: int16(int(s.Eg) * n)}
}

// ScoreRes is the resolution of the game-phase scale used by Taper.
const ScoreRes = 128

// Taper blends Mg and Eg according to phase, phase in [0, ScoreRes] where
// 0 is pure middlegame and ScoreRes is pure endgame.
func (s Score) Taper(phase int) Value {
	mg := int(s.Mg) * (ScoreRes - phase)
	eg := int(s.Eg) * phase
	return Value((mg + eg) / ScoreRes)
}
