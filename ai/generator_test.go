package ai

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyGeneratorSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req proxyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.Prompt)

		_ = json.NewEncoder(w).Encode(proxyResponse{Text: "Hey Sam, quick question for you!"})
	}))
	defer srv.Close()

	gen := NewProxyGenerator(srv.URL, 2*time.Second, nil)
	text, err := gen.Generate(context.Background(), Request{Kind: KindOpener, ProspectName: "Sam"})
	require.NoError(t, err)
	assert.Equal(t, "Hey Sam, quick question for you!", text)
}

func TestProxyGeneratorNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	gen := NewProxyGenerator(srv.URL, 2*time.Second, nil)
	_, err := gen.Generate(context.Background(), Request{Kind: KindOpener})
	assert.Error(t, err)
}

func TestProxyGeneratorEmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(proxyResponse{Text: "   "})
	}))
	defer srv.Close()

	gen := NewProxyGenerator(srv.URL, 2*time.Second, nil)
	_, err := gen.Generate(context.Background(), Request{Kind: KindPost})
	assert.Error(t, err)
}

func TestScripterFallsBackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	gen := NewProxyGenerator(srv.URL, 2*time.Second, nil)
	s := NewScripter(gen, rand.New(rand.NewSource(1)), nil)

	text, fromFallback := s.Script(context.Background(), Request{Kind: KindFollowUp, ProspectName: "Sam"})
	assert.True(t, fromFallback)
	assert.NotEmpty(t, text)
	assert.NotContains(t, text, "{name}")
}

func TestScripterNilGeneratorUsesFallback(t *testing.T) {
	s := NewScripter(nil, rand.New(rand.NewSource(1)), nil)

	text, fromFallback := s.Script(context.Background(), Request{Kind: KindRescuePost})
	assert.True(t, fromFallback)
	assert.NotEmpty(t, text)
}

func TestScripterFallbackSubstitutesName(t *testing.T) {
	s := NewScripter(nil, rand.New(rand.NewSource(1)), nil)

	text, _ := s.Script(context.Background(), Request{Kind: KindOpener, ProspectName: "Casey"})
	if strings.Contains(poolText(KindOpener, 1), "{name}") {
		assert.Contains(t, text, "Casey")
	}
	assert.NotContains(t, text, "{name}")
}

// poolText returns a deterministic pick so name-substitution checks stay
// stable even if pool contents change.
func poolText(kind string, seed int64) string {
	pool := fallbackPools[kind]
	return pool[rand.New(rand.NewSource(seed)).Intn(len(pool))]
}

func TestValidKind(t *testing.T) {
	assert.True(t, ValidKind(KindOpener))
	assert.True(t, ValidKind(KindFollowUp))
	assert.True(t, ValidKind(KindPost))
	assert.True(t, ValidKind(KindRescuePost))
	assert.False(t, ValidKind(""))
	assert.False(t, ValidKind("poem"))
}

func TestBuildPromptIncludesContext(t *testing.T) {
	p := BuildPrompt(Request{Kind: KindFollowUp, Tone: "casual", ProspectName: "Sam", Context: "met at the gym"})
	assert.Contains(t, p, "follow-up")
	assert.Contains(t, p, "Sam")
	assert.Contains(t, p, "casual")
	assert.Contains(t, p, "met at the gym")
}
