package providers

import (
	"encoding/json"

	"github.com/mitchellh/mapstructure"
	. "github.com/taglink/taglink-lsp/i18n"
	. "github.com/taglink/taglink-lsp/types"
)

type ClientConfiguration struct {
	Locale           string `json:"locale" mapstructure:"locale"`
	WordPattern      string `json:"word_pattern" mapstructure:"word_pattern"`
	WarnUnclosedTags *bool  `json:"warn_unclosed_tags" mapstructure:"warn_unclosed_tags"`
}

func GetClientConfiguration(src any) (res ClientConfiguration, err error) {
	err = mapstructure.Decode(src, &res)

	return
}

func applyClientConfiguration(config *ClientConfiguration) (err error) {
	if config.Locale != "" {
		err = SetLocale(config.Locale)

		if err != nil {
			return
		}
	}

	if config.WordPattern != "" {
		tagProvider.WordPattern = config.WordPattern
	}

	if config.WarnUnclosedTags != nil {
		warnUnclosedTags = *config.WarnUnclosedTags
	}

	return
}

func ConfigurationChange(ctx *Ctx, config *ClientConfiguration) (err error) {
	err = applyClientConfiguration(config)

	if err != nil {
		return
	}

	diagnosticAllDocs(ctx)

	return
}

type ConfigurationHandlers struct {
	Change ConfigChangeFunc
}

func NewConfigurationHandlers() *ConfigurationHandlers {
	return &ConfigurationHandlers{
		Change: ConfigurationChange,
	}
}

func (req *ConfigurationHandlers) Handle(ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	switch ctx.Method {
	case ConfigChangeMethod:
		validMethod = true

		var params ClientConfiguration
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			err = req.Change(ctx, &params)
		}
	}

	return
}

const ConfigChangeMethod = "config/change"

type ConfigChangeFunc func(*Ctx, *ClientConfiguration) error
