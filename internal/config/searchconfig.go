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

// searchConfiguration holds every toggle and tunable constant that
// controls the search driver and kernel. Field names mirror the
// pruning/extension techniques in the search package so a config.toml
// override is self-documenting.
type searchConfiguration struct {
	NumberOfThreads int
	MultiPV         int

	UsePonder bool
	UseBook   bool
	BookPath  string
	BookFile  string

	TTSizeMb      int
	EvalCacheSize int
	UseTT         bool
	UseEvalCache  bool

	UseQuiescence bool
	UseSEE        bool

	UsePVS        bool
	UseAspiration bool
	UseKiller     bool
	UseIID        bool
	IIDDepth      int

	UseMDP      bool
	UseRFP      bool
	UseRazoring bool
	UseNullMove bool
	NmpMinDepth int

	UseCheckExt  bool
	UseSingular  bool
	SingularMinD int

	UseFutility  bool
	UseLMP       bool
	UseHistoryPr bool
	UseSEEPr     bool
	UseLMR       bool

	// SyzygyPath is the directory holding Syzygy tablebase files; empty
	// disables probing entirely (internal/tablebase.NullProber is used).
	// SyzygyProbeLimit caps the piece count (including both kings) a
	// position may have and still be probed.
	SyzygyPath       string
	SyzygyProbeLimit int

	SoftTimeFactor float64
	HardTimeFactor float64
}

func init() {
	Settings.Search.NumberOfThreads = 1
	Settings.Search.MultiPV = 1

	Settings.Search.UsePonder = true
	Settings.Search.UseBook = false
	Settings.Search.BookPath = "./assets/books"
	Settings.Search.BookFile = "book.txt"

	Settings.Search.TTSizeMb = 128
	Settings.Search.EvalCacheSize = 64
	Settings.Search.UseTT = true
	Settings.Search.UseEvalCache = true

	Settings.Search.UseQuiescence = true
	Settings.Search.UseSEE = true

	Settings.Search.UsePVS = true
	Settings.Search.UseAspiration = true
	Settings.Search.UseKiller = true
	Settings.Search.UseIID = true
	Settings.Search.IIDDepth = 5

	Settings.Search.UseMDP = true
	Settings.Search.UseRFP = true
	Settings.Search.UseRazoring = true
	Settings.Search.UseNullMove = true
	Settings.Search.NmpMinDepth = 2

	Settings.Search.UseCheckExt = true
	Settings.Search.UseSingular = true
	Settings.Search.SingularMinD = 7

	Settings.Search.UseFutility = true
	Settings.Search.UseLMP = true
	Settings.Search.UseHistoryPr = true
	Settings.Search.UseSEEPr = true
	Settings.Search.UseLMR = true

	Settings.Search.SyzygyPath = ""
	Settings.Search.SyzygyProbeLimit = 6

	Settings.Search.SoftTimeFactor = 0.6
	Settings.Search.HardTimeFactor = 0.9
}
