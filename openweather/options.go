package openweather

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/devskill-org/openweathermap/weather"
)

// Options tune a request. The zero value asks for standard units in English with the
// server default count.
type Options struct {
	Units    weather.UnitSystem
	Language language.Tag
	Count    int
}

// units returns the effective unit system, standard when unset
func (o Options) units() weather.UnitSystem {
	if o.Units == "" {
		return weather.Standard
	}
	return o.Units
}

// Validate checks the options without building a request
func (o Options) Validate() error {
	return o.apply(url.Values{}, 0)
}

func (o Options) apply(q url.Values, maxCount int) error {
	if o.Units != "" {
		if !o.Units.IsValid() {
			return &ValidationError{Field: "units", Message: fmt.Sprintf("unknown unit system %q", o.Units)}
		}
		q.Set("units", string(o.Units))
	}

	if o.Language != language.Und {
		code, err := languageCode(o.Language)
		if err != nil {
			return err
		}
		q.Set("lang", code)
	}

	if o.Count < 0 {
		return &ValidationError{Field: "cnt", Message: fmt.Sprintf("count must be non-negative, got %d", o.Count)}
	}
	if maxCount > 0 && o.Count > maxCount {
		return &ValidationError{Field: "cnt", Message: fmt.Sprintf("count must be at most %d, got %d", maxCount, o.Count)}
	}
	if o.Count > 0 {
		q.Set("cnt", strconv.Itoa(o.Count))
	}
	return nil
}

// supportedLanguages are the lang codes accepted by the API
var supportedLanguages = map[string]bool{
	"af": true, "al": true, "ar": true, "az": true, "bg": true, "ca": true, "cz": true, "da": true,
	"de": true, "el": true, "en": true, "es": true, "eu": true, "fa": true, "fi": true, "fr": true,
	"gl": true, "he": true, "hi": true, "hr": true, "hu": true, "id": true, "it": true, "ja": true,
	"kr": true, "la": true, "lt": true, "mk": true, "nl": true, "no": true, "pl": true, "pt": true,
	"pt_br": true, "ro": true, "ru": true, "sk": true, "sl": true, "sr": true, "sv": true, "th": true,
	"tr": true, "ua": true, "vi": true, "zh_cn": true, "zh_tw": true, "zu": true,
}

// the API names a few languages by country instead of ISO 639-1
var languageAliases = map[string]string{
	"sq": "al",
	"cs": "cz",
	"ko": "kr",
	"lv": "la",
	"uk": "ua",
	"nb": "no",
	"nn": "no",
}

// languageCode maps a BCP 47 tag to the API's lang parameter
func languageCode(tag language.Tag) (string, error) {
	base, _ := tag.Base()
	code := base.String()

	switch code {
	case "zh":
		code = "zh_cn"
		if region, conf := tag.Region(); conf == language.Exact && (region.String() == "TW" || region.String() == "HK") {
			code = "zh_tw"
		}
		if script, conf := tag.Script(); conf == language.Exact && script.String() == "Hant" {
			code = "zh_tw"
		}
	case "pt":
		if region, conf := tag.Region(); conf == language.Exact && region.String() == "BR" {
			code = "pt_br"
		}
	default:
		if alias, ok := languageAliases[code]; ok {
			code = alias
		}
	}

	if !supportedLanguages[code] {
		return "", &ValidationError{Field: "lang", Message: fmt.Sprintf("language %s is not supported", tag)}
	}
	return code, nil
}

// OneCallPart names a block that can be excluded from a one call response
type OneCallPart string

const (
	PartCurrent  OneCallPart = "current"
	PartMinutely OneCallPart = "minutely"
	PartHourly   OneCallPart = "hourly"
	PartDaily    OneCallPart = "daily"
	PartAlerts   OneCallPart = "alerts"
)

func excludeValue(parts []OneCallPart) (string, error) {
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		switch p {
		case PartCurrent, PartMinutely, PartHourly, PartDaily, PartAlerts:
			names = append(names, string(p))
		default:
			return "", &ValidationError{Field: "exclude", Message: fmt.Sprintf("unknown part %q", p)}
		}
	}
	return strings.Join(names, ","), nil
}

// Format selects the body format of the current weather endpoint
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
	FormatHTML Format = "html"
)
