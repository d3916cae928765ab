package translator

import (
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages, the first one is the fallback
}

const (
	LanguageEn = "en"
	LanguagePt = "pt"
)

var (
	supported = []language.Tag{language.English, language.Portuguese}
	matcher   = language.NewMatcher(supported)
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	setSupportedLanguages(cfg.SupportedLanguages)

	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() {
			continue
		}

		_, err := Translator.LoadMessageFile(filepath.Join(cfg.TranslationFolder, f.Name()))
		if err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// MatchLanguage picks the supported language closest to an Accept-Language
// header value. An empty or unparsable header yields the fallback language.
func MatchLanguage(acceptLanguage string) string {
	index := 0
	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			_, matched, confidence := matcher.Match(tags...)
			if confidence != language.No {
				index = matched
			}
		}
	}

	base, _ := supported[index].Base()
	return base.String()
}

func setSupportedLanguages(languages []string) {
	tags := make([]language.Tag, 0, len(languages))
	for _, lang := range languages {
		tag, err := language.Parse(lang)
		if err != nil {
			zap.L().Warn("ignoring unsupported language", zap.String("lang", lang), zap.Error(err))
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return
	}

	supported = tags
	matcher = language.NewMatcher(tags)
}
