package encourage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"text/template"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/abhisek/mathplay/internal/llm"
)

// maxPhraseRunes bounds a generated cheer.
const maxPhraseRunes = 40

// CheerSchema constrains the model to a single short phrase.
var CheerSchema = &llm.Schema{
	Name:        "cheer-phrase",
	Description: "A short Vietnamese cheer for a child who just solved a puzzle",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"phrase": map[string]any{
				"type":      "string",
				"minLength": 1,
				"maxLength": maxPhraseRunes,
			},
		},
		"required":             []any{"phrase"},
		"additionalProperties": false,
	},
}

// CheerConfig holds generation settings for the cheerleader.
type CheerConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultCheerConfig returns the settings used by the CLI.
func DefaultCheerConfig() CheerConfig {
	return CheerConfig{
		MaxTokens:   64,
		Temperature: 0.9,
	}
}

// CheerInput describes the win being celebrated.
type CheerInput struct {
	GameName string
	Streak   int
}

// Cheerleader produces encouragement, asking a language model when one is
// configured and falling back to Pick otherwise.
type Cheerleader struct {
	provider llm.Provider
	cfg      CheerConfig
	logger   *log.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewCheerleader creates a Cheerleader. provider may be nil, in which case
// every phrase comes from the fixed list.
func NewCheerleader(provider llm.Provider, cfg CheerConfig, rng *rand.Rand, logger *log.Logger) *Cheerleader {
	if logger == nil {
		logger = log.Default()
	}
	return &Cheerleader{
		provider: provider,
		cfg:      cfg,
		rng:      rng,
		logger:   logger.WithPrefix("encourage"),
	}
}

type cheerOutput struct {
	Phrase string `json:"phrase"`
}

// Phrase returns one cheer. It never fails.
func (c *Cheerleader) Phrase(ctx context.Context, in CheerInput) string {
	if c.provider == nil {
		return c.pick()
	}

	phrase, err := c.generate(ctx, in)
	if err != nil {
		c.logger.Warn("cheer generation failed, using fixed phrase", "error", err)
		return c.pick()
	}
	return phrase
}

func (c *Cheerleader) pick() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Pick(c.rng)
}

func (c *Cheerleader) generate(ctx context.Context, in CheerInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "cheer")

	userMsg, err := buildCheerMessage(in)
	if err != nil {
		return "", fmt.Errorf("build cheer prompt: %w", err)
	}

	req := llm.Prompt(cheerSystemPrompt, userMsg, CheerSchema)
	req.MaxTokens = c.cfg.MaxTokens
	req.Temperature = c.cfg.Temperature

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("LLM cheer failed: %w", err)
	}

	var out cheerOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("failed to parse cheer response: %w", err)
	}
	phrase := strings.TrimSpace(out.Phrase)
	if phrase == "" {
		return "", fmt.Errorf("empty cheer phrase")
	}
	if utf8.RuneCountInString(phrase) > maxPhraseRunes {
		return "", fmt.Errorf("cheer phrase longer than %d characters", maxPhraseRunes)
	}
	return phrase, nil
}

const cheerSystemPrompt = `Bạn là người cổ vũ vui vẻ cho trẻ em tiểu học đang chơi trò chơi toán.
Hãy viết MỘT câu khen ngắn bằng tiếng Việt, tối đa 40 ký tự, có thể kèm một emoji.
Không dùng từ ngữ tiêu cực. Không nhắc lại đề bài.`

var cheerUserTemplate = template.Must(template.New("cheer").Parse(`Trò chơi: {{.GameName}}
{{if gt .Streak 1}}Bé vừa đúng {{.Streak}} câu liên tiếp!{{else}}Bé vừa trả lời đúng.{{end}}`))

func buildCheerMessage(in CheerInput) (string, error) {
	if in.GameName == "" {
		in.GameName = "Toán vui"
	}
	var buf bytes.Buffer
	if err := cheerUserTemplate.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}
