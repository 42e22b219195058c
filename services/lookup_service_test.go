package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy-chatbot-backend/config"
	"pharmacy-chatbot-backend/models"
)

const drugPage = `<!DOCTYPE html>
<html>
<head><title>Tramadol</title><style>body { color: red; }</style></head>
<body>
<header>Sign in to your account for more features today.</header>
<nav><a href="/">Home</a> <a href="/drugs">Drugs A to Z and more links here</a></nav>
<script>var tracking = "Tramadol may interact with many things in this script.";</script>
<article>
<h1>Tramadol</h1>
<p>Tramadol may interact with antidepressants such as sertraline. Common side effects include nausea and dizziness.</p>
<p>The usual dose is 50 mg every 6 hours as needed. Do not use tramadol if you have severe breathing problems!</p>
<p>We use cookie settings to personalise content and ads for you.</p>
<p>Short one.</p>
</article>
<footer>All rights reserved by the publisher of this website.</footer>
</body>
</html>`

const boilerplatePage = `<html><body>
<nav>Menu with many navigation items here for you</nav>
<p>Please sign in to view the full article content.</p>
</body></html>`

func newTestLookup(timeout time.Duration, sources []Source) *LookupService {
	return NewLookupService(config.LookupConfig{
		Enabled:   true,
		Timeout:   timeout,
		UserAgent: "pharmacy-chatbot-test",
	}, sources)
}

func TestLookupService_Search(t *testing.T) {
	var (
		mu                 sync.Mutex
		gotAgent, gotQuery string
	)
	mux := http.NewServeMux()
	mux.HandleFunc("/drugs", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotAgent = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query().Get("q")
		mu.Unlock()
		_, _ = w.Write([]byte(drugPage))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})
	mux.HandleFunc("/empty", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(boilerplatePage))
	})
	mux.HandleFunc("/mirror", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(drugPage))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	svc := newTestLookup(2*time.Second, []Source{
		{Name: "broken", URLTemplate: srv.URL + "/broken?q=%s"},
		{Name: "primary", URLTemplate: srv.URL + "/drugs?q=%s"},
		{Name: "empty", URLTemplate: srv.URL + "/empty?q=%s"},
		{Name: "mirror", URLTemplate: srv.URL + "/mirror?q=%s"},
	})

	results := svc.Search(context.Background(), "tramadol hcl")

	require.Len(t, results, 2)
	assert.Equal(t, "primary", results[0].Source)
	assert.Equal(t, "mirror", results[1].Source)
	mu.Lock()
	assert.Equal(t, "pharmacy-chatbot-test", gotAgent)
	assert.Equal(t, "tramadol hcl", gotQuery)
	mu.Unlock()

	r := results[0]
	assert.False(t, r.RetrievedAt.IsZero())
	assert.Contains(t, r.Categories[models.CategoryInteractions], "Tramadol may interact with antidepressants such as sertraline.")
	assert.Contains(t, r.Categories[models.CategorySideEffects], "Common side effects include nausea and dizziness.")
	assert.Contains(t, r.Categories[models.CategoryDosage], "The usual dose is 50 mg every 6 hours as needed.")
	assert.Contains(t, r.Categories[models.CategoryContraindications], "Do not use tramadol if you have severe breathing problems!")

	for _, sentence := range r.Sentences {
		assert.NotContains(t, sentence, "script")
		assert.NotContains(t, strings.ToLower(sentence), "cookie")
		assert.NotContains(t, sentence, "Drugs A to Z")
	}
}

func TestLookupService_SlowSourceIsSkipped(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer slow.Close()

	fast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(drugPage))
	}))
	defer fast.Close()

	svc := newTestLookup(200*time.Millisecond, []Source{
		{Name: "slow", URLTemplate: slow.URL + "/?q=%s"},
		{Name: "fast", URLTemplate: fast.URL + "/?q=%s"},
	})

	start := time.Now()
	results := svc.Search(context.Background(), "tramadol")

	assert.Less(t, time.Since(start), 2*time.Second)
	require.Len(t, results, 1)
	assert.Equal(t, "fast", results[0].Source)
}

func TestLookupService_DisabledOrBlank(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(drugPage))
	}))
	defer srv.Close()

	sources := []Source{{Name: "one", URLTemplate: srv.URL + "/?q=%s"}}

	disabled := NewLookupService(config.LookupConfig{Enabled: false, Timeout: time.Second}, sources)
	assert.Nil(t, disabled.Search(context.Background(), "aspirin"))

	assert.Nil(t, newTestLookup(time.Second, sources).Search(context.Background(), "   "))
	assert.Zero(t, calls.Load())
}

func TestExtractText_SkipsNonContent(t *testing.T) {
	text, err := ExtractText(strings.NewReader(drugPage))
	require.NoError(t, err)

	assert.Contains(t, text, "Tramadol may interact with antidepressants")
	assert.NotContains(t, text, "tracking")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "Drugs A to Z")
	assert.NotContains(t, text, "All rights reserved")
}

func TestSplitSentences(t *testing.T) {
	text := "Take with food. Ok.\nThis sentence is long enough to keep! This sentence is long enough to keep!\n" +
		"Accept the cookie policy to continue reading here. " + strings.Repeat("x", 401)

	got := SplitSentences(text)

	assert.Equal(t, []string{"This sentence is long enough to keep!"}, got)
}

func TestCategorize_MultipleBuckets(t *testing.T) {
	sentence := "Avoid alcohol during pregnancy because the combination raises the risk of side effects."

	got := Categorize([]string{sentence, "Nothing relevant is said in this sentence at all."})

	for _, c := range []models.LookupCategory{
		models.CategoryInteractions,
		models.CategorySideEffects,
		models.CategoryWarnings,
		models.CategoryContraindications,
		models.CategoryPregnancy,
	} {
		assert.Equal(t, []string{sentence}, got[c], string(c))
	}
	assert.NotContains(t, got, models.CategoryDosage)
}
