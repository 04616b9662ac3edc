package analysis

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Defaults for the "common" feature extractors. Support fractions are the
// minimum share of documents a token must appear in to count as common.
const (
	CommonWordSupport    = 0.4
	CommonHashtagSupport = 0.3
	CommonTopK           = 5
	TopKeywordsK         = 10
)

// hashtagPattern matches "#" followed by word characters, extended to
// non-Latin scripts (Hangul titles are common in the sampled channels).
var hashtagPattern = regexp.MustCompile(`#[\w\x{0080}-\x{FFFF}]+`)

// punctPattern strips everything that is neither a word character, an
// extended-Unicode character nor whitespace.
var punctPattern = regexp.MustCompile(`[^\w\s\x{0080}-\x{FFFF}]`)

// stopwords covers English and Korean function words. Tokens of length <= 2
// are dropped before this list is consulted, so short particles are absent.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "her": {}, "was": {}, "one": {},
	"our": {}, "out": {}, "his": {}, "has": {}, "how": {}, "man": {},
	"new": {}, "now": {}, "old": {}, "see": {}, "two": {}, "way": {},
	"who": {}, "did": {}, "get": {}, "him": {}, "its": {}, "let": {},
	"she": {}, "too": {}, "use": {}, "that": {}, "with": {}, "have": {},
	"this": {}, "will": {}, "your": {}, "from": {}, "they": {}, "been": {},
	"more": {}, "when": {}, "what": {}, "about": {}, "which": {},
	"their": {}, "there": {}, "would": {}, "these": {}, "other": {},
	"into": {}, "than": {}, "then": {}, "them": {}, "some": {}, "very": {},
	"just": {}, "over": {}, "such": {}, "like": {}, "also": {}, "only": {},
	"쇼츠": {}, "그리고": {}, "하지만": {}, "그래서": {}, "그러나": {},
	"이것": {}, "저것": {}, "그것": {}, "여기": {}, "거기": {},
	"저희": {}, "우리": {}, "당신": {}, "오늘": {}, "영상": {},
}

// ExtractHashtags returns the hashtags found in text, case preserved,
// duplicates collapsed, in order of first occurrence.
func ExtractHashtags(text string) []string {
	matches := hashtagPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return []string{}
	}

	seen := make(map[string]struct{}, len(matches))
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		tags = append(tags, m)
	}
	return tags
}

// tokenize lowercases a document, strips punctuation and splits it into
// tokens, dropping stopwords and tokens of at most 2 runes.
func tokenize(doc string) []string {
	cleaned := punctPattern.ReplaceAllString(strings.ToLower(doc), " ")

	var tokens []string
	for _, tok := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(tok) <= 2 {
			continue
		}
		if _, ok := stopwords[tok]; ok {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

type tokenCount struct {
	token string
	count int
}

// documentFrequencies counts in how many documents each token appears.
// Tokens keep first-encountered order so ranking ties stay deterministic.
func documentFrequencies(docs [][]string) []tokenCount {
	counts := make(map[string]int)
	var order []string

	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, tok := range doc {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			if _, ok := counts[tok]; !ok {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	freqs := make([]tokenCount, 0, len(order))
	for _, tok := range order {
		freqs = append(freqs, tokenCount{token: tok, count: counts[tok]})
	}
	return freqs
}

// supported filters freqs down to tokens present in at least
// ceil(total * minSupport) documents, ranked by frequency descending.
func supported(freqs []tokenCount, total int, minSupport float64) []tokenCount {
	threshold := int(math.Ceil(float64(total) * minSupport))
	if threshold < 1 {
		threshold = 1
	}

	var kept []tokenCount
	for _, tc := range freqs {
		if tc.count >= threshold {
			kept = append(kept, tc)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].count > kept[j].count })
	return kept
}

func topTokens(freqs []tokenCount, topK int) []string {
	if topK > len(freqs) {
		topK = len(freqs)
	}
	out := make([]string, 0, topK)
	for _, tc := range freqs[:topK] {
		out = append(out, tc.token)
	}
	return out
}

// ExtractCommonWords returns up to topK tokens that appear in at least
// ceil(len(docs) * minSupport) of the documents, most frequent first.
func ExtractCommonWords(docs []string, minSupport float64, topK int) []string {
	if len(docs) == 0 {
		return []string{}
	}
	tokenized := make([][]string, len(docs))
	for i, doc := range docs {
		tokenized[i] = tokenize(doc)
	}
	return topTokens(supported(documentFrequencies(tokenized), len(docs), minSupport), topK)
}

// CommonWordCount returns how many distinct tokens clear the support
// threshold. The keyword-consistency score is built on this.
func CommonWordCount(docs []string, minSupport float64) int {
	if len(docs) == 0 {
		return 0
	}
	tokenized := make([][]string, len(docs))
	for i, doc := range docs {
		tokenized[i] = tokenize(doc)
	}
	return len(supported(documentFrequencies(tokenized), len(docs), minSupport))
}

// ExtractCommonHashtags applies the same support-threshold ranking to
// pre-extracted hashtag sets instead of re-parsing text.
func ExtractCommonHashtags(hashtagSets [][]string, minSupport float64, topK int) []string {
	if len(hashtagSets) == 0 {
		return []string{}
	}
	return topTokens(supported(documentFrequencies(hashtagSets), len(hashtagSets), minSupport), topK)
}

// ExtractTopKeywords ranks tokens by raw term frequency across the whole
// corpus, without a minimum-support filter.
func ExtractTopKeywords(docs []string, topK int) []string {
	counts := make(map[string]int)
	var order []string
	for _, doc := range docs {
		for _, tok := range tokenize(doc) {
			if _, ok := counts[tok]; !ok {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	freqs := make([]tokenCount, 0, len(order))
	for _, tok := range order {
		freqs = append(freqs, tokenCount{token: tok, count: counts[tok]})
	}
	sort.SliceStable(freqs, func(i, j int) bool { return freqs[i].count > freqs[j].count })
	return topTokens(freqs, topK)
}
