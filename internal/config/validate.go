package config

import (
	"go/token"
	"strings"

	"github.com/heartmarshall/dictgen/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration and
// normalizes enum fields to lower case. It must be called after loading and
// again after CLI overrides; Load calls it automatically. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []domain.FieldError

	if mode, err := domain.ParseMode(c.Generate.Mode); err != nil {
		errs = append(errs, domain.FieldError{Field: "generate.mode", Message: "must be plain or padded, got " + quote(c.Generate.Mode)})
	} else {
		c.Generate.Mode = mode.String()
	}

	target, err := domain.ParseTarget(c.Generate.Target)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "generate.target", Message: "must be rust, go or json, got " + quote(c.Generate.Target)})
	} else {
		c.Generate.Target = target.String()
	}
	if target == domain.TargetGo && !token.IsIdentifier(c.Generate.Package) {
		errs = append(errs, domain.FieldError{Field: "generate.package", Message: "must be a Go identifier, got " + quote(c.Generate.Package)})
	}
	if msg := checkSymbol(target, c.Generate.Symbol); msg != "" {
		errs = append(errs, domain.FieldError{Field: "generate.symbol", Message: msg})
	}

	if strings.TrimSpace(c.Generate.OutputPath) == "" && !c.Generate.DryRun {
		errs = append(errs, domain.FieldError{Field: "generate.output_path", Message: "required"})
	}

	c.Source.Kind = strings.ToLower(strings.TrimSpace(c.Source.Kind))
	switch domain.SourceKind(c.Source.Kind) {
	case domain.SourceKindFile:
		if strings.TrimSpace(c.Generate.InputPath) == "" {
			errs = append(errs, domain.FieldError{Field: "generate.input_path", Message: "required for the file source"})
		}
	case domain.SourceKindPostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			errs = append(errs, domain.FieldError{Field: "database.dsn", Message: "required for the postgres source"})
		}
	default:
		errs = append(errs, domain.FieldError{Field: "source.kind", Message: "must be file or postgres, got " + quote(c.Source.Kind)})
	}

	if c.Source.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "source.limit", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// rustKeywords are strict and reserved keywords; none can name a function.
var rustKeywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true, "continue": true,
	"crate": true, "dyn": true, "else": true, "enum": true, "extern": true, "false": true,
	"fn": true, "for": true, "gen": true, "if": true, "impl": true, "in": true, "let": true,
	"loop": true, "match": true, "mod": true, "move": true, "mut": true, "pub": true,
	"ref": true, "return": true, "self": true, "Self": true, "static": true, "struct": true,
	"super": true, "trait": true, "true": true, "type": true, "unsafe": true, "use": true,
	"where": true, "while": true, "abstract": true, "become": true, "box": true, "do": true,
	"final": true, "macro": true, "override": true, "priv": true, "try": true,
	"typeof": true, "unsized": true, "virtual": true, "yield": true,
}

// goReserved are names the go emitter declares itself.
var goReserved = map[string]bool{"Word": true}

// checkSymbol returns a validation message for a symbol that cannot be
// emitted for target, or "" when it is usable. Empty means target default.
func checkSymbol(target domain.Target, symbol string) string {
	if symbol == "" {
		return ""
	}
	if !token.IsIdentifier(symbol) || symbol == "_" {
		return "must be an identifier, got " + quote(symbol)
	}
	switch target {
	case domain.TargetRust:
		if rustKeywords[symbol] {
			return "is a Rust keyword: " + quote(symbol)
		}
	case domain.TargetGo:
		if goReserved[symbol] {
			return "collides with the generated type " + quote(symbol)
		}
	}
	return ""
}

func quote(s string) string { return `"` + s + `"` }
