package constvars

const (
	RegexEmail           = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	RegexPhone           = `^\+?[1-9]\d{0,15}$`
	RegexPhoneSeparators = `[\s\-\(\)]`
)
