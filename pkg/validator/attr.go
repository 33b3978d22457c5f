package validator

import (
	"log/slog"

	"github.com/dmitrymomot/formrules/pkg/logger"
)

// ruleAttr records the rule name, or "custom" for rule functions.
func ruleAttr(r Rule) slog.Attr {
	if r.IsCustom() {
		return logger.Rule("custom")
	}
	return logger.Rule(r.Name)
}
