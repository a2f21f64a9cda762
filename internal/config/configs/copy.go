package configs

import "time"

const (
	ProviderNone    = "none"
	ProviderOpenAI  = "openai"
	ProviderBedrock = "bedrock"
)

// Copy configures ad copy generation. Without a usable provider every
// request is served by the local fallback templates.
type Copy struct {
	Provider string `env:"PROVIDER" envDefault:"openai"`

	OpenAIKey     string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`

	BedrockModelID string `env:"BEDROCK_MODEL_ID" envDefault:"anthropic.claude-3-haiku-20240307-v1:0"`
	AWSRegion      string `env:"AWS_REGION" envDefault:"us-east-1"`

	// Timeout bounds one provider call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`

	// RatePerMinute and RateBurst limit the generation endpoints. A zero
	// rate disables limiting.
	RatePerMinute int `env:"RATE_PER_MINUTE" envDefault:"20"`
	RateBurst     int `env:"RATE_BURST" envDefault:"5"`
}
