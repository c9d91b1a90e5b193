package project

import (
	"github.com/xyproto/env/v2"
)

// Переменные окружения, перекрывающие mygo.toml.
const (
	EnvFormat         = "MYGO_FORMAT"
	EnvMaxDiagnostics = "MYGO_MAX_DIAGNOSTICS"
	EnvJobs           = "MYGO_JOBS"
	EnvKeepTrivia     = "MYGO_KEEP_TRIVIA"
	EnvNFC            = "MYGO_NFC"
	EnvCache          = "MYGO_CACHE"
	EnvTraceLevel     = "MYGO_TRACE_LEVEL"
	EnvTraceOutput    = "MYGO_TRACE"
)

// EnvOverrides reads the MYGO_* variables. Unset variables stay nil;
// unparsable integers fall back to the value already configured.
func EnvOverrides() Overrides {
	var o Overrides
	if env.Has(EnvFormat) {
		v := env.Str(EnvFormat)
		o.Format = &v
	}
	if env.Has(EnvMaxDiagnostics) {
		v := env.Int(EnvMaxDiagnostics, -1)
		if v >= 0 {
			o.MaxDiagnostics = &v
		}
	}
	if env.Has(EnvJobs) {
		v := env.Int(EnvJobs, -1)
		if v >= 0 {
			o.Jobs = &v
		}
	}
	if env.Has(EnvKeepTrivia) {
		v := env.Bool(EnvKeepTrivia)
		o.KeepTrivia = &v
	}
	if env.Has(EnvNFC) {
		v := env.Bool(EnvNFC)
		o.NFC = &v
	}
	if env.Has(EnvCache) {
		v := env.Bool(EnvCache)
		o.Cache = &v
	}
	if env.Has(EnvTraceLevel) {
		v := env.Str(EnvTraceLevel)
		o.TraceLevel = &v
	}
	if env.Has(EnvTraceOutput) {
		v := env.Str(EnvTraceOutput)
		o.TraceOutput = &v
	}
	return o
}
