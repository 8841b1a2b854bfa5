package moneyfmt

// config captures formatter setup prior to construction.
type config struct {
	registry  *Registry
	lang      string
	detector  func() (string, error)
	rulePaths []string
}

// Option mutates config during construction.
type Option func(*config) error

// New builds a Formatter via supplied options. With no options it carries
// the builtin registry and asks the host environment for its preferred
// language.
func New(opts ...Option) (*Formatter, error) {
	cfg := &config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.registry == nil {
		cfg.registry = NewRegistry()
	}

	if len(cfg.rulePaths) > 0 {
		if err := NewFileLoader(cfg.rulePaths...).ApplyTo(cfg.registry); err != nil {
			return nil, err
		}
	}

	lang := cfg.lang
	if lang == "" {
		detect := cfg.detector
		if detect == nil {
			detect = detectLanguage
		}
		// best effort: an undetectable environment formats with the
		// fallback language
		if detected, err := detect(); err == nil {
			lang = detected
		}
	}

	return &Formatter{registry: cfg.registry, lang: lang}, nil
}

// WithRegistry sets the locale/currency table the formatter reads from.
func WithRegistry(registry *Registry) Option {
	return func(c *config) error {
		c.registry = registry
		return nil
	}
}

// WithDefaultLanguage fixes the ambient language, bypassing detection.
func WithDefaultLanguage(lang string) Option {
	return func(c *config) error {
		c.lang = lang
		return nil
	}
}

// WithLanguageDetector replaces the host environment language probe.
func WithLanguageDetector(detect func() (string, error)) Option {
	return func(c *config) error {
		c.detector = detect
		return nil
	}
}

// WithRuleFiles loads additional locale rule files into the registry at
// construction time.
func WithRuleFiles(paths ...string) Option {
	return func(c *config) error {
		c.rulePaths = append(c.rulePaths, paths...)
		return nil
	}
}
