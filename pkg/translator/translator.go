package translator

import (
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Translator holds every message loaded from the translation folder.
var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageRu = "ru"
	LanguageEn = "en"
)

// InitTranslator loads every *.toml file of cfg.TranslationFolder into Translator.
// English is the fallback language. A missing folder is logged, not fatal.
func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() || filepath.Ext(f.Name()) != ".toml" {
			continue
		}
		_, err := Translator.LoadMessageFile(filepath.Join(cfg.TranslationFolder, f.Name()))
		if err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}

	loaded := make(map[string]bool)
	for _, tag := range Translator.LanguageTags() {
		base, _ := tag.Base()
		loaded[base.String()] = true
	}
	for _, lang := range cfg.SupportedLanguages {
		if !loaded[lang] {
			zap.L().Warn("no translations loaded for language", zap.String("lang", lang))
		}
	}
}
