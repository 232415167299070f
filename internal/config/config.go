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
// Package config holds globally available configuration values which are
// set by defaults, overridden from a TOML config file, and may further be
// overridden by command line flags or UCI setoption commands.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ConfFile is the path to the config file, relative to the working directory.
	ConfFile = "./config.toml"

	// LogLevel is the standard log level (0=critical .. 5=debug).
	LogLevel = 4

	// SearchLogLevel is the log level used by the search package.
	SearchLogLevel = 4

	// Settings holds the full, nested configuration tree.
	Settings conf

	initialized = false
)

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads the config file (if present) and fills in defaults for
// anything missing. Idempotent.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found, using defaults (", err, ")")
	}
	initialized = true
}

// String renders the current settings using reflection, the way the
// engine prints its configuration to the log at startup.
func (c *conf) String() string {
	var b strings.Builder
	b.WriteString("Search Config:\n")
	appendFields(&b, reflect.ValueOf(&c.Search).Elem())
	b.WriteString("\nEval Config:\n")
	appendFields(&b, reflect.ValueOf(&c.Eval).Elem())
	return b.String()
}

func appendFields(b *strings.Builder, v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		fmt.Fprintf(b, "%-2d: %-24s %-8s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface())
	}
}
