package middleware

import (
	"github.com/dephea/bitrix-task/pkg/translator"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const langKey = "lang"

var (
	supportedTags  = []language.Tag{language.English, language.Russian}
	supportedNames = []string{translator.LanguageEn, translator.LanguageRu}
	langMatcher    = language.NewMatcher(supportedTags)
)

// LanguageMiddleware resolves Accept-Language to one of the shipped translations, English by default.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, resolveLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}

func resolveLanguage(header string) string {
	if header == "" {
		return translator.LanguageEn
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return translator.LanguageEn
	}
	_, index, confidence := langMatcher.Match(tags...)
	if confidence == language.No {
		return translator.LanguageEn
	}
	return supportedNames[index]
}
