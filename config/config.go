package config

import (
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Ledger       Ledger
	Score        Score
	JWTSecret    string
	GeminiApiKey string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Ledger holds the parameters the assessment ledger is constructed with.
type Ledger struct {
	Owner            string
	MinFeeMicros     int64
	TwoPhaseReveal   bool
	CommitmentScheme string // "plaintext", "salted-hash" or "encrypted"
	EncryptionKeyHex string // 32-byte AES key, hex encoded; required for "encrypted"
}

// Score holds the guidance score weights. Defaults reproduce the
// 50/15/20/15 table the original deployment shipped with.
type Score struct {
	Base           int
	GoalBonus      int
	SkillBonus     int
	EducationBonus int
}

// EncryptionKey decodes the configured AES key, if any.
func (l Ledger) EncryptionKey() ([]byte, error) {
	if l.EncryptionKeyHex == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(l.EncryptionKeyHex)
	if err != nil {
		return nil, fmt.Errorf("LEDGER_ENCRYPTION_KEY is not valid hex: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("LEDGER_ENCRYPTION_KEY must be 32 bytes, got %d", len(key))
	}
	return key, nil
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LEDGER_MIN_FEE_MICROS", 1000) // 0.001 of the base unit
	viper.SetDefault("LEDGER_TWO_PHASE_REVEAL", true)
	viper.SetDefault("LEDGER_COMMITMENT_SCHEME", "plaintext")
	viper.SetDefault("SCORE_BASE", 50)
	viper.SetDefault("SCORE_GOAL_BONUS", 15)
	viper.SetDefault("SCORE_SKILL_BONUS", 20)
	viper.SetDefault("SCORE_EDUCATION_BONUS", 15)
	viper.SetDefault("JWT_SECRET", "careerledger-dev-secret")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Ledger.Owner = viper.GetString("LEDGER_OWNER")
	config.Ledger.MinFeeMicros = viper.GetInt64("LEDGER_MIN_FEE_MICROS")
	config.Ledger.TwoPhaseReveal = viper.GetBool("LEDGER_TWO_PHASE_REVEAL")
	config.Ledger.CommitmentScheme = viper.GetString("LEDGER_COMMITMENT_SCHEME")
	config.Ledger.EncryptionKeyHex = viper.GetString("LEDGER_ENCRYPTION_KEY")

	config.Score.Base = viper.GetInt("SCORE_BASE")
	config.Score.GoalBonus = viper.GetInt("SCORE_GOAL_BONUS")
	config.Score.SkillBonus = viper.GetInt("SCORE_SKILL_BONUS")
	config.Score.EducationBonus = viper.GetInt("SCORE_EDUCATION_BONUS")

	config.JWTSecret = viper.GetString("JWT_SECRET")
	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	if config.Ledger.Owner == "" {
		log.Warn().Msg("LEDGER_OWNER is not set; admin operations will be rejected")
	}

	log.Info().Str("port", config.Server.Port).Str("scheme", config.Ledger.CommitmentScheme).Msg("Config loaded")
	return &config, nil
}
