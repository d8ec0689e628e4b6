/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
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

package uci

import (
	"strconv"
	"strings"

	"github.com/oskarnyqvist/mateline/internal/config"
)

// init defines all available uci options and stores them in uciOptions.
// Trimmed to the knobs this engine actually has - no move-ordering,
// pruning or eval tuning options, since those subsystems don't exist
// here.
func init() {
	uciOptions = map[string]*uciOption{
		"Print Config": {NameID: "Print Config", HandlerFunc: printConfig, OptionType: Button},
		"Clear Hash":   {NameID: "Clear Hash", HandlerFunc: clearHash, OptionType: Button},
		"Use_Hash":     {NameID: "Use_Hash", HandlerFunc: useHash, OptionType: Check, DefaultValue: strconv.FormatBool(config.Settings.Search.UseTT), CurrentValue: strconv.FormatBool(config.Settings.Search.UseTT)},
		"Hash":         {NameID: "Hash", HandlerFunc: hashSize, OptionType: Spin, DefaultValue: strconv.Itoa(config.Settings.Search.TTSize), CurrentValue: strconv.Itoa(config.Settings.Search.TTSize), MinValue: "0", MaxValue: "65000"},
	}
	sortOrderUciOptions = []string{
		"Print Config",
		"Clear Hash",
		"Use_Hash",
		"Hash",
	}
}

// GetOptions returns all available uci options as a slice of strings
// to be sent to the UCI user interface during the initialization
// phase of the UCI protocol.
func (o *optionMap) GetOptions() *[]string {
	var options []string
	for _, opt := range sortOrderUciOptions {
		options = append(options, uciOptions[opt].String())
	}
	return &options
}

// String for uciOption returns a representation of the uci option as
// required by the UCI protocol during the initialization phase.
func (o *uciOption) String() string {
	var os strings.Builder
	os.WriteString("option name ")
	os.WriteString(o.NameID)
	os.WriteString(" type ")
	switch o.OptionType {
	case Check:
		os.WriteString("check default ")
		os.WriteString(o.DefaultValue)
	case Spin:
		os.WriteString("spin default ")
		os.WriteString(o.DefaultValue)
		os.WriteString(" min ")
		os.WriteString(o.MinValue)
		os.WriteString(" max ")
		os.WriteString(o.MaxValue)
	case Button:
		os.WriteString("button")
	}
	return os.String()
}

// uciOptionType enumerates the UCI option kinds this engine uses.
type uciOptionType int

const (
	Check  uciOptionType = 0
	Spin   uciOptionType = 1
	Button uciOptionType = 2
)

// optionHandler is called when "setoption" changes an option's value.
type optionHandler func(*UciHandler, *uciOption)

// uciOption defines one UCI option as described in the UCI protocol.
type uciOption struct {
	NameID       string
	HandlerFunc  optionHandler
	OptionType   uciOptionType
	DefaultValue string
	MinValue     string
	MaxValue     string
	CurrentValue string
}

type optionMap map[string]*uciOption

var uciOptions optionMap

var sortOrderUciOptions []string

func printConfig(handler *UciHandler, option *uciOption) {
	handler.SendInfoString(config.Settings.String())
}

func clearHash(handler *UciHandler, option *uciOption) {
	handler.search.NewGame()
}

func useHash(handler *UciHandler, option *uciOption) {
	v, err := strconv.ParseBool(option.CurrentValue)
	if err != nil {
		return
	}
	config.Settings.Search.UseTT = v
}

func hashSize(handler *UciHandler, option *uciOption) {
	v, err := strconv.Atoi(option.CurrentValue)
	if err != nil {
		return
	}
	config.Settings.Search.TTSize = v
}
