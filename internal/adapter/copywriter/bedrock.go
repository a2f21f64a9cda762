package copywriter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"campaign-desk/internal/core/domain"
)

const (
	DefaultBedrockModelID = "anthropic.claude-3-haiku-20240307-v1:0"
	DefaultAWSRegion      = "us-east-1"

	bedrockAnthropicVersion = "bedrock-2023-05-31"
	bedrockMaxTokens        = 1024
)

// ModelInvoker is the part of the Bedrock runtime client the provider uses.
type ModelInvoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Bedrock writes ad copy with an Anthropic model hosted on AWS Bedrock.
type Bedrock struct {
	client  ModelInvoker
	modelID string
}

// NewBedrock loads the default AWS configuration for region and creates the
// runtime client.
func NewBedrock(ctx context.Context, region, modelID string) (*Bedrock, error) {
	if region == "" {
		region = DefaultAWSRegion
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewBedrockWithClient(bedrockruntime.NewFromConfig(cfg), modelID), nil
}

// NewBedrockWithClient creates the provider on an existing client.
func NewBedrockWithClient(client ModelInvoker, modelID string) *Bedrock {
	if modelID == "" {
		modelID = DefaultBedrockModelID
	}
	return &Bedrock{client: client, modelID: modelID}
}

func (b *Bedrock) Name() string { return "bedrock" }

type bedrockContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type bedrockMessage struct {
	Role    string           `json:"role"`
	Content []bedrockContent `json:"content"`
}

type bedrockRequest struct {
	AnthropicVersion string           `json:"anthropic_version"`
	MaxTokens        int              `json:"max_tokens"`
	System           string           `json:"system,omitempty"`
	Messages         []bedrockMessage `json:"messages"`
}

type bedrockResponse struct {
	Content []bedrockContent `json:"content"`
}

func (b *Bedrock) Complete(ctx context.Context, prompt domain.CopyPrompt) (domain.AdCopy, error) {
	body, err := json.Marshal(bedrockRequest{
		AnthropicVersion: bedrockAnthropicVersion,
		MaxTokens:        bedrockMaxTokens,
		System:           prompt.System,
		Messages: []bedrockMessage{{
			Role:    "user",
			Content: []bedrockContent{{Type: "text", Text: prompt.User}},
		}},
	})
	if err != nil {
		return domain.AdCopy{}, fmt.Errorf("encode bedrock request: %w", err)
	}

	out, err := b.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return domain.AdCopy{}, fmt.Errorf("bedrock invoke model: %w", err)
	}

	var resp bedrockResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return domain.AdCopy{}, fmt.Errorf("decode bedrock response: %w", err)
	}
	var text strings.Builder
	for _, c := range resp.Content {
		if c.Type == "text" {
			text.WriteString(c.Text)
		}
	}
	if text.Len() == 0 {
		return domain.AdCopy{}, errors.New("no text in bedrock response")
	}
	return ParseReply(text.String())
}
