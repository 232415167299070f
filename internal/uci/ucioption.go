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

package uci

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	. "github.com/corvidchess/corvid/internal/config"
)

// init defines all available uci options and their sort order, the way
// the engine advertises them in response to the "uci" command.
func init() {
	uciOptions = map[string]*uciOption{
		"Print Config": {NameID: "Print Config", HandlerFunc: printConfig, OptionType: Button},
		"Clear Hash":   {NameID: "Clear Hash", HandlerFunc: clearCache, OptionType: Button},
		"Use_Hash":     {NameID: "Use_Hash", HandlerFunc: useHash, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseTT), CurrentValue: strconv.FormatBool(Settings.Search.UseTT)},
		"Hash":         {NameID: "Hash", HandlerFunc: hashSize, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.TTSizeMb), CurrentValue: strconv.Itoa(Settings.Search.TTSizeMb), MinValue: "0", MaxValue: "65000"},
		"EvalCache":    {NameID: "EvalCache", HandlerFunc: evalCacheSize, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.EvalCacheSize), CurrentValue: strconv.Itoa(Settings.Search.EvalCacheSize), MinValue: "0", MaxValue: "4096"},
		"Threads":      {NameID: "Threads", HandlerFunc: threads, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.NumberOfThreads), CurrentValue: strconv.Itoa(Settings.Search.NumberOfThreads), MinValue: "1", MaxValue: "128"},
		"MultiPV":      {NameID: "MultiPV", HandlerFunc: multiPV, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.MultiPV), CurrentValue: strconv.Itoa(Settings.Search.MultiPV), MinValue: "1", MaxValue: "32"},
		"Ponder":       {NameID: "Ponder", HandlerFunc: usePonder, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UsePonder), CurrentValue: strconv.FormatBool(Settings.Search.UsePonder)},

		"SyzygyPath":       {NameID: "SyzygyPath", HandlerFunc: syzygyPath, OptionType: String, DefaultValue: Settings.Search.SyzygyPath, CurrentValue: Settings.Search.SyzygyPath},
		"SyzygyProbeLimit": {NameID: "SyzygyProbeLimit", HandlerFunc: syzygyProbeLimit, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.SyzygyProbeLimit), CurrentValue: strconv.Itoa(Settings.Search.SyzygyProbeLimit), MinValue: "3", MaxValue: "7"},

		"Use_Book": {NameID: "Use_Book", HandlerFunc: useBook, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseBook), CurrentValue: strconv.FormatBool(Settings.Search.UseBook)},

		"Use_Quiescence": {NameID: "Use_Quiescence", HandlerFunc: useQuiescence, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseQuiescence), CurrentValue: strconv.FormatBool(Settings.Search.UseQuiescence)},
		"Use_SEE":        {NameID: "Use_SEE", HandlerFunc: useSEE, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseSEE), CurrentValue: strconv.FormatBool(Settings.Search.UseSEE)},

		"Use_PVS":         {NameID: "Use_PVS", HandlerFunc: usePVS, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UsePVS), CurrentValue: strconv.FormatBool(Settings.Search.UsePVS)},
		"Use_Aspiration":  {NameID: "Use_Aspiration", HandlerFunc: useAspiration, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseAspiration), CurrentValue: strconv.FormatBool(Settings.Search.UseAspiration)},
		"Use_Killer":      {NameID: "Use_Killer", HandlerFunc: useKiller, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseKiller), CurrentValue: strconv.FormatBool(Settings.Search.UseKiller)},
		"Use_IID":         {NameID: "Use_IID", HandlerFunc: useIID, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseIID), CurrentValue: strconv.FormatBool(Settings.Search.UseIID)},

		"Use_Mdp":      {NameID: "Use_Mdp", HandlerFunc: useMdp, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseMDP), CurrentValue: strconv.FormatBool(Settings.Search.UseMDP)},
		"Use_Rfp":      {NameID: "Use_Rfp", HandlerFunc: useRfp, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseRFP), CurrentValue: strconv.FormatBool(Settings.Search.UseRFP)},
		"Use_Razoring": {NameID: "Use_Razoring", HandlerFunc: useRazoring, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseRazoring), CurrentValue: strconv.FormatBool(Settings.Search.UseRazoring)},
		"Use_NullMove": {NameID: "Use_NullMove", HandlerFunc: useNullMove, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseNullMove), CurrentValue: strconv.FormatBool(Settings.Search.UseNullMove)},

		"Use_CheckExt": {NameID: "Use_CheckExt", HandlerFunc: useCheckExt, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseCheckExt), CurrentValue: strconv.FormatBool(Settings.Search.UseCheckExt)},
		"Use_Singular": {NameID: "Use_Singular", HandlerFunc: useSingular, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseSingular), CurrentValue: strconv.FormatBool(Settings.Search.UseSingular)},

		"Use_Futility": {NameID: "Use_Futility", HandlerFunc: useFutility, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseFutility), CurrentValue: strconv.FormatBool(Settings.Search.UseFutility)},
		"Use_Lmp":      {NameID: "Use_Lmp", HandlerFunc: useLmp, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseLMP), CurrentValue: strconv.FormatBool(Settings.Search.UseLMP)},
		"Use_Lmr":      {NameID: "Use_Lmr", HandlerFunc: useLmr, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseLMR), CurrentValue: strconv.FormatBool(Settings.Search.UseLMR)},

		"Eval_Mobility":   {NameID: "Eval_Mobility", HandlerFunc: evalMobility, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Eval.UseMobility), CurrentValue: strconv.FormatBool(Settings.Eval.UseMobility)},
		"Eval_KingSafety": {NameID: "Eval_KingSafety", HandlerFunc: evalKingSafety, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Eval.UseKingSafety), CurrentValue: strconv.FormatBool(Settings.Eval.UseKingSafety)},
		"Eval_Threats":    {NameID: "Eval_Threats", HandlerFunc: evalThreats, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Eval.UseThreats), CurrentValue: strconv.FormatBool(Settings.Eval.UseThreats)},
	}
	sortOrderUciOptions = []string{
		"Print Config",
		"Clear Hash",
		"Use_Hash",
		"Hash",
		"EvalCache",
		"Threads",
		"MultiPV",
		"Ponder",

		"SyzygyPath",
		"SyzygyProbeLimit",

		"Use_Book",

		"Use_Quiescence",
		"Use_SEE",

		"Use_PVS",
		"Use_Aspiration",
		"Use_Killer",
		"Use_IID",

		"Use_Mdp",
		"Use_Rfp",
		"Use_Razoring",
		"Use_NullMove",

		"Use_CheckExt",
		"Use_Singular",

		"Use_Futility",
		"Use_Lmp",
		"Use_Lmr",

		"Eval_Mobility",
		"Eval_KingSafety",
		"Eval_Threats",
	}
}

// GetOptions returns every registered uci option rendered as the UCI
// protocol's "option name ..." lines, in a fixed display order.
func (o *optionMap) GetOptions() *[]string {
	var options []string
	for _, opt := range sortOrderUciOptions {
		options = append(options, uciOptions[opt].String())
	}
	return &options
}

// String renders one uci option the way the "uci" command's response
// lists it, per the UCI protocol's "option name ... type ..." grammar.
func (o *uciOption) String() string {
	var b strings.Builder
	b.WriteString("option name ")
	b.WriteString(o.NameID)
	b.WriteString(" type ")
	switch o.OptionType {
	case Check:
		b.WriteString("check default ")
		b.WriteString(o.DefaultValue)
	case Spin:
		b.WriteString("spin default ")
		b.WriteString(o.DefaultValue)
		b.WriteString(" min ")
		b.WriteString(o.MinValue)
		b.WriteString(" max ")
		b.WriteString(o.MaxValue)
	case Combo:
		b.WriteString("combo default ")
		b.WriteString(o.DefaultValue)
		b.WriteString(" var ")
		b.WriteString(o.VarValue)
	case Button:
		b.WriteString("button")
	case String:
		b.WriteString("string default ")
		b.WriteString(o.DefaultValue)
	}
	return b.String()
}

// uciOptionType enumerates the UCI protocol's option kinds.
type uciOptionType int

const (
	Check uciOptionType = iota
	Spin
	Combo
	Button
	String
)

// optionHandler runs whenever "setoption" changes the option's value.
type optionHandler func(*UciHandler, *uciOption)

// uciOption describes one UCI option together with the handler invoked
// when the user interface changes it.
type uciOption struct {
	NameID       string
	HandlerFunc  optionHandler
	OptionType   uciOptionType
	DefaultValue string
	MinValue     string
	MaxValue     string
	VarValue     string
	CurrentValue string
}

// optionMap is a convenience alias for the registry of uci options.
type optionMap map[string]*uciOption

var uciOptions optionMap

var sortOrderUciOptions []string

// ////////////////////////////////////////////////////////////////
// Option handlers
// ////////////////////////////////////////////////////////////////

func printConfig(handler *UciHandler, o *uciOption) {
	handler.SendInfoString("Search Config:")
	s := reflect.ValueOf(&Settings.Search).Elem()
	t := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		handler.SendInfoString(fmt.Sprintf("%-2d: %-22s %-8s = %v", i, t.Field(i).Name, f.Type(), f.Interface()))
	}
	handler.SendInfoString("Eval Config:")
	s = reflect.ValueOf(&Settings.Eval).Elem()
	t = s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		handler.SendInfoString(fmt.Sprintf("%-2d: %-22s %-8s = %v", i, t.Field(i).Name, f.Type(), f.Interface()))
	}
}

func clearCache(u *UciHandler, o *uciOption) {
	u.mySearch.ClearHash()
}

func useHash(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseTT = v
}

func hashSize(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.TTSizeMb = v
	u.mySearch.ResizeCache()
}

func evalCacheSize(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.EvalCacheSize = v
}

func threads(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.NumberOfThreads = v
}

func multiPV(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.MultiPV = v
}

func usePonder(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UsePonder = v
}

// syzygyPath stores the configured Syzygy directory. Whenever it is
// cleared the search's Prober is reset to tablebase.NullProber; an
// actual Syzygy reader is out of scope here, so a non-empty path is
// recorded for SyzygyProbeLimit/Probeable gating but does not install a
// live Prober.
func syzygyPath(u *UciHandler, o *uciOption) {
	Settings.Search.SyzygyPath = o.CurrentValue
	if Settings.Search.SyzygyPath == "" {
		u.mySearch.SetTablebase(nil)
	}
}

func syzygyProbeLimit(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.SyzygyProbeLimit = v
}

func useBook(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseBook = v
}

func useQuiescence(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseQuiescence = v
}

func useSEE(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseSEE = v
}

func usePVS(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UsePVS = v
}

func useAspiration(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseAspiration = v
}

func useKiller(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseKiller = v
}

func useIID(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseIID = v
}

func useMdp(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseMDP = v
}

func useRfp(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseRFP = v
}

func useRazoring(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseRazoring = v
}

func useNullMove(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseNullMove = v
}

func useCheckExt(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseCheckExt = v
}

func useSingular(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseSingular = v
}

func useFutility(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseFutility = v
}

func useLmp(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseLMP = v
}

func useLmr(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseLMR = v
}

func evalMobility(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Eval.UseMobility = v
}

func evalKingSafety(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Eval.UseKingSafety = v
}

func evalThreats(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Eval.UseThreats = v
}
