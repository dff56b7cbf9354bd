package codes

import "github.com/halouxiaoyu/survey_backend/config"

// Config holds settings for various code generation utilities
type Config struct {
	// AccessCodeLength is the length of generated questionnaire access codes
	AccessCodeLength int

	// Charset is the character set used for access codes.
	// If empty, defaults to lowercase hex.
	Charset string
}

// DefaultConfig returns sensible defaults for code generation
func DefaultConfig() Config {
	return Config{
		AccessCodeLength: AccessCodeLength,
		Charset:          charsetLowerHex,
	}
}

// GetCharset returns the configured charset or the default if empty
func (c Config) GetCharset() string {
	if c.Charset == "" {
		return charsetLowerHex
	}
	return c.Charset
}

// GetLength returns the configured code length or the default if unset
func (c Config) GetLength() int {
	if c.AccessCodeLength < 1 {
		return AccessCodeLength
	}
	return c.AccessCodeLength
}

// FromCentralConfig converts central config.CodesConfig to package Config
func FromCentralConfig(c config.CodesConfig) Config {
	return Config{
		AccessCodeLength: c.AccessCodeLength,
		Charset:          c.Charset,
	}
}

// Generate produces an access code using the configured length and charset.
func (c Config) Generate() (string, error) {
	return GenerateCode(c.GetLength(), c.GetCharset())
}
