//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
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

// Package config holds globally available configuration variables, set by
// defaults, overridden by a toml config file, and in turn overridable by
// command line flags.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// globally available config values.
var (
	// ConfFile holds the path to the toml config file, relative to the
	// working directory.
	ConfFile = "./config.toml"

	// LogLevel is the general log level, overridable by the config file or
	// command line flags.
	LogLevel = 4

	// SearchLogLevel is the log level for the search goroutine's own
	// channel.
	SearchLogLevel = 4

	// Settings is the configuration tree read from ConfFile.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads the toml config file (if present) and applies its settings on
// top of the compiled-in defaults. Safe to call more than once; only the
// first call has an effect.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		fmt.Println("Config file not found, using defaults. (", err, ")")
	}
	setupLogLvl()
	setupSearch()
	setupEval()
	initialized = true
}

// String dumps the current search/eval configuration for diagnostics.
func (c *conf) String() string {
	var b strings.Builder
	b.WriteString("Search Config:\n")
	writeFields(&b, reflect.ValueOf(&c.Search).Elem())
	b.WriteString("\nEval Config:\n")
	writeFields(&b, reflect.ValueOf(&c.Eval).Elem())
	return b.String()
}

func writeFields(b *strings.Builder, v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		fmt.Fprintf(b, "%-2d: %-22s %-6s = %v\n", i, t.Field(i).Name, v.Field(i).Type(), v.Field(i).Interface())
	}
}
