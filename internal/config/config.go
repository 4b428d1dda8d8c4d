package config

// maxQuizSize is the largest number of questions a quiz may draw.
const maxQuizSize = 5

// Config holds application settings read from CIRCUITSPACE_* variables.
type Config struct {
	DBPath  string `env:"CIRCUITSPACE_DB"`
	LogMode string `env:"CIRCUITSPACE_LOG_MODE" envDefault:"prod"`
	LogFile string `env:"CIRCUITSPACE_LOG_FILE"`

	// QuizSize caps the number of questions drawn per quiz. Load clamps it
	// to at most 5.
	QuizSize int `env:"CIRCUITSPACE_QUIZ_SIZE" envDefault:"5"`

	// DailyQuizLimit is the number of quizzes allowed per component per day.
	DailyQuizLimit int `env:"CIRCUITSPACE_DAILY_QUIZ_LIMIT" envDefault:"5"`
}

// Load reads an optional .env file and then parses Config from the
// environment.
func Load() (Config, error) {
	if err := LoadDotEnv(); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.QuizSize <= 0 || cfg.QuizSize > maxQuizSize {
		cfg.QuizSize = maxQuizSize
	}
	if cfg.DailyQuizLimit <= 0 {
		cfg.DailyQuizLimit = 5
	}
	return cfg, nil
}
