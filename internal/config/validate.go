package config

import (
	"fmt"
	"slices"

	"go.uber.org/zap/zapcore"

	"topic-indexer/internal/diagnostic"
	"topic-indexer/internal/enrich"
	"topic-indexer/internal/fieldspec"
	"topic-indexer/internal/match"
	"topic-indexer/internal/separator"
	"topic-indexer/internal/translate"
)

// Validate checks cfg against the built-in output functions.
func Validate(cfg *Config) *diagnostic.Diagnostics {
	return ValidateWith(cfg, enrich.DefaultRegistry())
}

// ValidateWith checks the global settings and every output of cfg against
// the functions of reg.
func ValidateWith(cfg *Config, reg *enrich.Registry) *diagnostic.Diagnostics {
	diags := ValidateGlobal(cfg)

	langs := append([]string{cfg.SourceLanguage}, cfg.Languages...)
	seen := map[string]bool{}

	for i, out := range cfg.Outputs {
		name := out.Name
		if name == "" {
			name = fmt.Sprintf("outputs[%d]", i)
			diags.AddError("output-name", "output has no name", name, "")
		}

		if seen[name] {
			diags.AddError("output-name", "duplicate output name", name, "")
		}

		seen[name] = true

		validateOutput(diags, name, out, reg, langs)
	}

	if len(cfg.Outputs) == 0 {
		diags.AddInfo("outputs", "no outputs configured", "", "")
	}

	return diags
}

// ValidateGlobal checks the settings shared by all outputs: languages, log
// level and dictionary source.
func ValidateGlobal(cfg *Config) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	if _, err := translate.ParseLanguage(cfg.SourceLanguage); err != nil {
		diags.AddError(diagnostic.CodeUnknownLang, err.Error(), "", cfg.SourceLanguage)
	}

	for _, lang := range cfg.Languages {
		if _, err := translate.ParseLanguage(lang); err != nil {
			diags.AddError(diagnostic.CodeUnknownLang, err.Error(), "", lang)
		}
	}

	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		diags.AddError("log-level", err.Error(), "", cfg.Log.Level)
	}

	if cfg.Dictionary.Dir != "" && cfg.Dictionary.SQLite != "" {
		diags.AddWarning("dictionary", "both dir and sqlite are set, using sqlite", "", cfg.Dictionary.SQLite)
	}

	return diags
}

func validateOutput(diags *diagnostic.Diagnostics, name string, out enrich.Output, reg *enrich.Registry, langs []string) {
	if !reg.Has(out.Func) {
		diags.AddError(diagnostic.CodeUnknownFunc,
			fmt.Sprintf("unknown output function %q", out.Func), name, out.Func, reg.Suggest(out.Func)...)
	}

	if !slices.Contains(langs, out.Lang) {
		diags.AddError(diagnostic.CodeUnknownLang,
			fmt.Sprintf("language %q is not configured", out.Lang), name, out.Lang, match.Suggest(out.Lang, langs, 1)...)
	}

	if out.Func == enrich.FuncHonourees {
		return
	}

	if out.Fields == "" {
		diags.AddWarning(diagnostic.CodeFieldSpec, "empty field spec selects no fields", name, "")
	} else if _, err := fieldspec.Parse(out.Fields); err != nil {
		diags.AddError(diagnostic.CodeFieldSpec, err.Error(), name, out.Fields)
	}

	if _, err := separator.Parse(out.Separators); err != nil {
		diags.AddError(diagnostic.CodeSeparatorSpec, err.Error(), name, out.Separators)
	}
}
