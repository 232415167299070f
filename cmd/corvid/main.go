//
// corvid - a UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2026 The Corvid Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// Command corvid is the engine's executable entry point: it parses a
// handful of flags, applies the config file and log levels, and then
// either runs a one-shot perft/nps benchmark or starts the UCI loop.
package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/search"
	"github.com/corvidchess/corvid/internal/uci"
	"github.com/corvidchess/corvid/internal/version"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.Int("loglvl", config.LogLevel, "standard log level (0=critical .. 5=debug)")
	searchLogLvl := flag.Int("searchloglvl", config.SearchLogLevel, "search log level (0=critical .. 5=debug)")
	perft := flag.Int("perft", 0, "runs perft on the given position to the given depth, then exits")
	fen := flag.String("fen", position.StartFEN, "fen used by -perft and -nps")
	nps := flag.Int("nps", 0, "searches the given position for this many seconds and reports nodes/sec, then exits")
	cpuProfile := flag.Bool("cpuprofile", false, "writes a CPU profile to ./cpu.pprof while -perft or -nps runs")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()
	config.LogLevel = *logLvl
	config.SearchLogLevel = *searchLogLvl
	logging.GetLog()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if *nps != 0 {
		runNpsTest(*fen, *nps)
		return
	}

	if *perft != 0 {
		movegen.NewPerft().Run(*fen, *perft)
		return
	}

	u := uci.NewUciHandler()
	u.Loop()
}

func runNpsTest(fen string, seconds int) {
	pos, err := position.FromFEN(fen)
	if err != nil {
		out.Printf("invalid fen %q: %v\n", fen, err)
		return
	}
	s := search.NewSearch()
	limits := search.NewLimits()
	limits.TimeControl = true
	limits.MoveTime = time.Duration(seconds) * time.Second
	s.StartSearch(pos, *limits)
	s.WaitWhileSearching()
	result := s.LastResult()
	out.Printf("nodes: %d  time: %s  nps: %d\n",
		s.NodesVisited(), result.SearchTime, uint64(float64(s.NodesVisited())/result.SearchTime.Seconds()))
}

func printVersionInfo() {
	out.Printf("%s\n", version.Info())
	out.Println("Environment:")
	out.Printf("  Go version %s\n", runtime.Version())
	out.Printf("  %s using %s\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  CPUs: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
