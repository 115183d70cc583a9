// Package ai wraps the external script-generation proxy. The proxy is a
// stateless pass-through: prompt in, text out. Any failure substitutes a
// canned script from the fallback pools, so callers never see an error and
// never block on generation.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Script kinds accepted by the generator.
const (
	KindOpener     = "opener"
	KindFollowUp   = "follow_up"
	KindPost       = "post"
	KindRescuePost = "rescue_post"
)

// Request describes the script the user wants.
type Request struct {
	Kind         string `json:"kind"`
	Tone         string `json:"tone"`
	ProspectName string `json:"prospect_name"`
	Context      string `json:"context"`
}

// ValidKind reports whether kind names a supported script type.
func ValidKind(kind string) bool {
	switch kind {
	case KindOpener, KindFollowUp, KindPost, KindRescuePost:
		return true
	}
	return false
}

// Generator produces script text for a request. Implementations may fail;
// the Scripter wrapper absorbs failures.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// ProxyGenerator calls the AI proxy over HTTP.
type ProxyGenerator struct {
	url    string
	client *http.Client
	log    *zap.SugaredLogger
}

// NewProxyGenerator builds a generator for the given proxy URL.
func NewProxyGenerator(url string, timeout time.Duration, log *zap.SugaredLogger) *ProxyGenerator {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ProxyGenerator{
		url:    url,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

type proxyRequest struct {
	Prompt string `json:"prompt"`
	Tone   string `json:"tone,omitempty"`
}

type proxyResponse struct {
	Text string `json:"text"`
}

// Generate sends the built prompt to the proxy and returns its text.
func (p *ProxyGenerator) Generate(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(proxyRequest{Prompt: BuildPrompt(req), Tone: req.Tone})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai proxy returned status %d", resp.StatusCode)
	}

	var out proxyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Text) == "" {
		return "", fmt.Errorf("ai proxy returned empty text")
	}
	return out.Text, nil
}

// BuildPrompt turns a request into the instruction sent to the proxy.
func BuildPrompt(req Request) string {
	var b strings.Builder
	switch req.Kind {
	case KindOpener:
		b.WriteString("Write a short, casual first outreach message to a prospect")
	case KindFollowUp:
		b.WriteString("Write a warm follow-up message to a prospect who hasn't replied")
	case KindPost:
		b.WriteString("Write an engaging social media post about everyday wins in my business")
	case KindRescuePost:
		b.WriteString("Write a very short, low-effort social media post I can publish in under a minute")
	}
	if req.ProspectName != "" {
		fmt.Fprintf(&b, ", addressed to %s", req.ProspectName)
	}
	if req.Tone != "" {
		fmt.Fprintf(&b, ". Tone: %s", req.Tone)
	}
	if req.Context != "" {
		fmt.Fprintf(&b, ". Context: %s", req.Context)
	}
	b.WriteString(". No hashtags unless asked. Keep it under 80 words.")
	return b.String()
}

// Scripter pairs a generator with the fallback pools.
type Scripter struct {
	gen Generator
	rng *rand.Rand
	log *zap.SugaredLogger
}

// NewScripter wraps gen. The rand source is injectable so tests can pin the
// fallback pick; pass nil for a time-seeded source.
func NewScripter(gen Generator, rng *rand.Rand, log *zap.SugaredLogger) *Scripter {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Scripter{gen: gen, rng: rng, log: log}
}

// Script returns generated text, or a canned fallback when generation
// fails. The second return reports whether the fallback was used.
func (s *Scripter) Script(ctx context.Context, req Request) (string, bool) {
	if s.gen != nil {
		text, err := s.gen.Generate(ctx, req)
		if err == nil {
			return text, false
		}
		if s.log != nil {
			s.log.Warnf("script generation failed kind=%s, using fallback: %v", req.Kind, err)
		}
	}
	return s.fallback(req), true
}

func (s *Scripter) fallback(req Request) string {
	pool := fallbackPools[req.Kind]
	if len(pool) == 0 {
		pool = fallbackPools[KindOpener]
	}
	text := pool[s.rng.Intn(len(pool))]
	name := req.ProspectName
	if name == "" {
		name = "there"
	}
	return strings.ReplaceAll(text, "{name}", name)
}
