package localization

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Ключи сообщений каталога.
const (
	KeyWelcome = "welcome"
	KeyHello   = "hello %s"
	KeyWorld   = "world"
)

var supported = []language.Tag{
	language.English,
	language.French,
	language.German,
}

var translations = map[language.Tag]map[string]string{
	language.English: {
		KeyWelcome: "Welcome to the todo server!",
		KeyHello:   "Hello, %s!",
		KeyWorld:   "world",
	},
	language.French: {
		KeyWelcome: "Bienvenue sur le serveur de tâches !",
		KeyHello:   "Bonjour, %s !",
		KeyWorld:   "le monde",
	},
	language.German: {
		KeyWelcome: "Willkommen beim Todo-Server!",
		KeyHello:   "Hallo, %s!",
		KeyWorld:   "Welt",
	},
}

type Localizer struct {
	catalog  *catalog.Builder
	matcher  language.Matcher
	fallback language.Tag
}

// New собирает каталог. Неизвестная локаль по умолчанию заменяется английской.
func New(defaultLocale string) (*Localizer, error) {
	fallback := language.English
	if tag, err := language.Parse(defaultLocale); err == nil {
		_, idx, conf := language.NewMatcher(supported).Match(tag)
		if conf != language.No {
			fallback = supported[idx]
		}
	}

	// первый тег матчера - ответ по умолчанию
	ordered := []language.Tag{fallback}
	for _, tag := range supported {
		if tag != fallback {
			ordered = append(ordered, tag)
		}
	}

	builder := catalog.NewBuilder(catalog.Fallback(fallback))
	for tag, messages := range translations {
		for key, msg := range messages {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, err
			}
		}
	}

	return &Localizer{
		catalog:  builder,
		matcher:  language.NewMatcher(ordered),
		fallback: fallback,
	}, nil
}

// Match выбирает поддерживаемый язык по предпочтениям в порядке важности.
// Предпочтение - отдельный тег или целое значение Accept-Language.
func (l *Localizer) Match(prefs ...string) language.Tag {
	nonEmpty := make([]string, 0, len(prefs))
	for _, p := range prefs {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	if len(nonEmpty) == 0 {
		return l.fallback
	}

	tag, _ := language.MatchStrings(l.matcher, nonEmpty...)
	base, _ := tag.Base()
	for _, s := range supported {
		if sb, _ := s.Base(); sb == base {
			return s
		}
	}
	return l.fallback
}

func (l *Localizer) Printer(prefs ...string) *message.Printer {
	return message.NewPrinter(l.Match(prefs...), message.Catalog(l.catalog))
}

func (l *Localizer) Welcome(prefs ...string) string {
	return l.Printer(prefs...).Sprintf(KeyWelcome)
}

// Hello без имени приветствует "мир" на выбранном языке.
func (l *Localizer) Hello(name string, prefs ...string) string {
	p := l.Printer(prefs...)
	if name == "" {
		name = p.Sprintf(KeyWorld)
	}
	return p.Sprintf(KeyHello, name)
}
