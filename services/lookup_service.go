package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"pharmacy-chatbot-backend/config"
	"pharmacy-chatbot-backend/metrics"
	"pharmacy-chatbot-backend/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

const (
	maxSentencesPerSource = 10
	minSentenceLength     = 20
	maxSentenceLength     = 400
	maxBodyBytes          = 2 << 20
)

// Source is a medical reference site search endpoint. URLTemplate contains
// a single %s that receives the escaped search term.
type Source struct {
	Name        string
	URLTemplate string
}

var DefaultSources = []Source{
	{Name: "drugs.com", URLTemplate: "https://www.drugs.com/search.php?searchterm=%s"},
	{Name: "medlineplus", URLTemplate: "https://wsearch.nlm.nih.gov/ws/query?db=healthTopics&term=%s"},
	{Name: "webmd", URLTemplate: "https://www.webmd.com/search/search_results/default.aspx?query=%s"},
	{Name: "mayoclinic", URLTemplate: "https://www.mayoclinic.org/search/search-results?q=%s"},
	{Name: "rxlist", URLTemplate: "https://www.rxlist.com/search/rxl/%s"},
}

var errNoContent = errors.New("no categorised sentences")

// boilerplate marks navigation and consent text that is never content.
var boilerplate = []string{
	"cookie", "sign in", "sign up", "log in", "menu", "subscribe", "newsletter",
	"privacy policy", "terms of use", "all rights reserved", "copyright",
	"advertisement", "javascript", "skip to",
}

// skippedElements never contribute text.
var skippedElements = map[string]bool{
	"script": true, "style": true, "noscript": true, "nav": true, "header": true,
	"footer": true, "svg": true, "form": true, "button": true, "select": true,
	"iframe": true, "template": true,
}

// blockElements end a run of text.
var blockElements = map[string]bool{
	"p": true, "div": true, "li": true, "ul": true, "ol": true, "br": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"tr": true, "td": true, "th": true, "section": true, "article": true,
	"dd": true, "dt": true, "table": true, "blockquote": true,
}

type categoryPattern struct {
	category models.LookupCategory
	pattern  *regexp.Regexp
}

var categoryPatterns = []categoryPattern{
	{models.CategoryInteractions, regexp.MustCompile(`(?i)\b(interact\w*|combin\w*|taken with|together with|concomitant\w*|co-administ\w*)\b`)},
	{models.CategorySideEffects, regexp.MustCompile(`(?i)\b(side effects?|adverse|reactions?|nausea|dizziness|headache|rash|drowsiness|vomiting)\b`)},
	{models.CategoryDosage, regexp.MustCompile(`(?i)\b(dose|doses|dosage|dosing|mg|mcg|tablets?|capsules?|once daily|twice daily|every \d+ hours)\b`)},
	{models.CategoryWarnings, regexp.MustCompile(`(?i)\b(warnings?|caution|risks?|danger\w*|serious|fatal|overdose|boxed warning)\b`)},
	{models.CategoryContraindications, regexp.MustCompile(`(?i)\b(contraindicat\w*|should not (be )?(used|taken|use|take)|do not (use|take)|avoid\w*|allerg\w*)\b`)},
	{models.CategoryPregnancy, regexp.MustCompile(`(?i)\b(pregnan\w*|breast-?feed\w*|nursing|lactat\w*|unborn|fetus|fetal)\b`)},
}

var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]*`)

// LookupService is the best-effort fallback for substances and conditions
// the knowledge base does not cover. All sources are queried concurrently
// under one shared timeout; a failing source is skipped.
type LookupService struct {
	httpClient *http.Client
	sources    []Source
	userAgent  string
	timeout    time.Duration
	enabled    bool
	now        func() time.Time
}

func NewLookupService(cfg config.LookupConfig, sources []Source) *LookupService {
	return &LookupService{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		sources:   sources,
		userAgent: cfg.UserAgent,
		timeout:   cfg.Timeout,
		enabled:   cfg.Enabled,
		now:       time.Now,
	}
}

// Search queries every source for term and returns one result per source
// that produced at least one categorised sentence, in source order.
func (s *LookupService) Search(ctx context.Context, term string) []models.ExternalLookupResult {
	term = strings.TrimSpace(term)
	if !s.enabled || term == "" || len(s.sources) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	found := make([]*models.ExternalLookupResult, len(s.sources))

	// a plain Group: one source failing must not cancel the others
	var g errgroup.Group
	for i, src := range s.sources {
		g.Go(func() error {
			start := time.Now()
			result, err := s.fetch(ctx, src, term)
			metrics.ExternalLookupDuration.WithLabelValues(src.Name).Observe(time.Since(start).Seconds())

			switch {
			case errors.Is(err, errNoContent):
				metrics.ExternalLookups.WithLabelValues(src.Name, "empty").Inc()
			case err != nil:
				metrics.ExternalLookups.WithLabelValues(src.Name, "error").Inc()
				log.Warn().Err(err).Str("source", src.Name).Str("term", term).Msg("External lookup failed")
			default:
				metrics.ExternalLookups.WithLabelValues(src.Name, "ok").Inc()
				found[i] = result
			}
			return nil
		})
	}
	_ = g.Wait()

	var results []models.ExternalLookupResult
	for _, r := range found {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results
}

func (s *LookupService) fetch(ctx context.Context, src Source, term string) (*models.ExternalLookupResult, error) {
	endpoint := fmt.Sprintf(src.URLTemplate, url.QueryEscape(term))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	text, err := ExtractText(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	sentences := SplitSentences(text)
	categories := Categorize(sentences)
	if len(categories) == 0 {
		return nil, errNoContent
	}

	if len(sentences) > maxSentencesPerSource {
		sentences = sentences[:maxSentencesPerSource]
	}

	return &models.ExternalLookupResult{
		Source:      src.Name,
		Sentences:   sentences,
		Categories:  categories,
		RetrievedAt: s.now(),
	}, nil
}

// ExtractText returns the visible text of an HTML document, one line per
// block element.
func ExtractText(r io.Reader) (string, error) {
	z := html.NewTokenizer(r)

	var b strings.Builder
	skipDepth := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return b.String(), nil
			}
			return "", z.Err()

		case html.StartTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if skippedElements[tag] {
				skipDepth++
			}
			if blockElements[tag] {
				b.WriteByte('\n')
			}

		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			if blockElements[string(name)] {
				b.WriteByte('\n')
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if skippedElements[tag] && skipDepth > 0 {
				skipDepth--
			}
			if blockElements[tag] {
				b.WriteByte('\n')
			}

		case html.TextToken:
			if skipDepth == 0 {
				b.Write(z.Text())
				b.WriteByte(' ')
			}
		}
	}
}

// SplitSentences breaks text into trimmed sentences of 20-400 characters,
// dropping boilerplate and duplicates.
func SplitSentences(text string) []string {
	var out []string
	seen := make(map[string]struct{})

	for _, block := range strings.Split(text, "\n") {
		for _, raw := range sentencePattern.FindAllString(block, -1) {
			sentence := strings.Join(strings.Fields(raw), " ")
			if len(sentence) < minSentenceLength || len(sentence) > maxSentenceLength {
				continue
			}
			if isBoilerplate(sentence) {
				continue
			}
			if _, dup := seen[sentence]; dup {
				continue
			}
			seen[sentence] = struct{}{}
			out = append(out, sentence)
		}
	}
	return out
}

// Categorize files each sentence under every category whose pattern it
// matches. Categories without sentences are absent.
func Categorize(sentences []string) map[models.LookupCategory][]string {
	categories := make(map[models.LookupCategory][]string)
	for _, sentence := range sentences {
		for _, cp := range categoryPatterns {
			if cp.pattern.MatchString(sentence) {
				categories[cp.category] = append(categories[cp.category], sentence)
			}
		}
	}
	return categories
}

func isBoilerplate(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, marker := range boilerplate {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
