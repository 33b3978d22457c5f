package validator

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/formrules/pkg/config"
	"github.com/dmitrymomot/formrules/pkg/messages"
)

// DefaultEnvPrefix is the environment prefix used by LoadSettings when none is given.
const DefaultEnvPrefix = "FORMRULES_"

// Settings holds the sibling-field naming conventions and message overrides
// of an Engine.
type Settings struct {
	ConfirmSuffix  string `env:"CONFIRM_SUFFIX" envDefault:"_confirm"`
	ZipSuffix      string `env:"ZIP_SUFFIX" envDefault:"_after"`
	YMDSuffixYear  string `env:"YMD_SUFFIX_Y" envDefault:"_y"`
	YMDSuffixMonth string `env:"YMD_SUFFIX_M" envDefault:"_m"`
	YMDSuffixDay   string `env:"YMD_SUFFIX_D" envDefault:"_d"`

	// Language selects the base catalog: "ja" (default) or "en".
	Language string `env:"LANGUAGE" envDefault:"ja"`
	// MessagesFile is an optional YAML or JSON catalog read by LoadSettings
	// into Messages.
	MessagesFile string `env:"MESSAGES_FILE"`

	// Messages overrides individual templates of the base catalog.
	Messages messages.Catalog `env:"-"`
}

// DefaultSettings returns the built-in conventions.
func DefaultSettings() Settings {
	return Settings{
		ConfirmSuffix:  "_confirm",
		ZipSuffix:      "_after",
		YMDSuffixYear:  "_y",
		YMDSuffixMonth: "_m",
		YMDSuffixDay:   "_d",
		Language:       "ja",
	}
}

// Merge returns s with every non-empty field of o applied on top. Message
// overrides are merged key by key.
func (s Settings) Merge(o Settings) Settings {
	if o.ConfirmSuffix != "" {
		s.ConfirmSuffix = o.ConfirmSuffix
	}
	if o.ZipSuffix != "" {
		s.ZipSuffix = o.ZipSuffix
	}
	if o.YMDSuffixYear != "" {
		s.YMDSuffixYear = o.YMDSuffixYear
	}
	if o.YMDSuffixMonth != "" {
		s.YMDSuffixMonth = o.YMDSuffixMonth
	}
	if o.YMDSuffixDay != "" {
		s.YMDSuffixDay = o.YMDSuffixDay
	}
	if o.Language != "" {
		s.Language = o.Language
	}
	if o.MessagesFile != "" {
		s.MessagesFile = o.MessagesFile
	}
	if len(o.Messages) > 0 {
		s.Messages = messages.Catalog(nil).Merge(s.Messages).Merge(o.Messages)
	}
	return s
}

// Catalog resolves the effective catalog: the base catalog for Language with
// Messages applied on top.
func (s Settings) Catalog() messages.Catalog {
	base := messages.Japanese()
	if s.Language == "en" {
		base = messages.English()
	}
	return base.Merge(s.Messages)
}

// LoadSettings reads Settings from the environment. Every variable is
// prefixed with prefix (DefaultEnvPrefix when empty), e.g.
// FORMRULES_CONFIRM_SUFFIX. Any envFiles are loaded into the process
// environment first without overriding variables already set. When
// FORMRULES_MESSAGES_FILE is set the catalog file is loaded into Messages.
func LoadSettings(ctx context.Context, prefix string, envFiles ...string) (Settings, error) {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	if len(envFiles) > 0 {
		if err := config.LoadEnv(envFiles...); err != nil {
			return Settings{}, fmt.Errorf("load settings: %w", err)
		}
	}

	var s Settings
	if err := config.Load(&s, config.WithPrefix(prefix)); err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}

	if s.MessagesFile != "" {
		catalog, err := messages.LoadFile(ctx, s.MessagesFile)
		if err != nil {
			return Settings{}, fmt.Errorf("load settings: %w", err)
		}
		s.Messages = catalog
	}
	return s, nil
}
