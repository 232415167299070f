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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMoveRoundTripsFromToFlag(t *testing.T) {
	m := NewMove(SqE2, SqE4, FlagDoublePawn)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, FlagDoublePawn, m.Flag())
	assert.True(t, m.IsDoublePawnPush())
	assert.False(t, m.IsCapture())
	assert.False(t, m.IsPromotion())
}

func TestMoveCaptureAndPromotionFlags(t *testing.T) {
	capture := NewMove(SqD4, SqE5, FlagCapture)
	assert.True(t, capture.IsCapture())
	assert.True(t, capture.IsQuiet() == false)

	promo := NewPromotionMove(SqE7, SqE8, Queen, false)
	assert.True(t, promo.IsPromotion())
	assert.False(t, promo.IsCapture())
	assert.Equal(t, Queen, promo.PromotionType())

	promoCapt := NewPromotionMove(SqE7, SqD8, Knight, true)
	assert.True(t, promoCapt.IsPromotion())
	assert.True(t, promoCapt.IsCapture())
	assert.Equal(t, Knight, promoCapt.PromotionType())
}

func TestMoveNoneIsTheZeroValue(t *testing.T) {
	var m Move
	assert.Equal(t, MoveNone, m)
	assert.Equal(t, "0000", m.StringUci())
}

func TestStringUciRendersLongAlgebraic(t *testing.T) {
	m := NewMove(SqE2, SqE4, FlagDoublePawn)
	assert.Equal(t, "e2e4", m.StringUci())

	promo := NewPromotionMove(SqE7, SqE8, Queen, false)
	assert.Equal(t, "e7e8q", promo.StringUci())
}

func TestIsCastleDistinguishesFromPromotion(t *testing.T) {
	castle := NewMove(SqE1, SqG1, FlagCastleK)
	assert.True(t, castle.IsCastle())
	assert.False(t, castle.IsPromotion())

	promo := NewPromotionMove(SqA7, SqA8, Rook, false)
	assert.False(t, promo.IsCastle())
}
