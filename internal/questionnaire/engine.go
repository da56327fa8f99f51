package questionnaire

import (
	"errors"
	"regexp"
	"strings"
)

// SkipSentinel marks a question the respondent explicitly bypassed.
const SkipSentinel = "__SKIP__"

// Answers maps question keys to recorded answers or SkipSentinel.
type Answers map[string]string

// Clone returns a shallow copy; a nil receiver yields an empty map.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// IsSkipped reports whether v is the skip sentinel.
func IsSkipped(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), SkipSentinel)
}

// space matches the whitespace set of JavaScript's \s, which is wider than
// RE2's ASCII-only \s (no-break space, ideographic space and the like).
const space = `[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]`

var skipPattern = regexp.MustCompile(`(?i)(^|` + space + `)(skip|next)(` + space + `|$)`)

// Result is the outcome of a single evaluation.
type Result struct {
	// Answers is prior answers merged with everything extracted from the corpus.
	Answers Answers
	// Next is the first unanswered question, nil when Complete.
	Next *Question
	// Section owns Next.
	Section   *Section
	Complete  bool
	WantsSkip bool
	// StatusBlock is a markdown summary of every question's state.
	StatusBlock string
	// NextPrompt is the text to post for Next, empty when Complete.
	NextPrompt string
}

// PendingKey returns the key of the next question or "".
func (r *Result) PendingKey() string {
	if r.Next == nil {
		return ""
	}
	return r.Next.Key
}

// SectionLinks renders the pending section's links as a markdown list.
func (r *Result) SectionLinks() string {
	if r.Section == nil {
		return ""
	}
	lines := make([]string, 0, len(r.Section.Links))
	for _, l := range r.Section.Links {
		lines = append(lines, "- "+l)
	}
	return strings.Join(lines, "\n")
}

// Evaluate scans corpus for answer lines, merges them over prior and works
// out where the questionnaire stands. An empty lastHumanComment means there
// is no human comment yet. Evaluate has no side effects; persisting
// Result.Answers is up to the caller.
func Evaluate(schema *Schema, corpus string, prior Answers, lastHumanComment string) (*Result, error) {
	if schema == nil {
		return nil, &InputError{Source: "schema", Err: errors.New("no schema provided")}
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	entries := schema.flatten()
	patterns := compilePatterns(entries)

	answers := make(Answers, len(entries))
	for _, e := range entries {
		if v, ok := prior[e.question.Key]; ok && strings.TrimSpace(v) != "" {
			answers[e.question.Key] = v
		}
	}
	for _, e := range entries {
		if v, ok := extract(patterns[e.question.Key], corpus); ok {
			answers[e.question.Key] = v
		}
	}

	res := &Result{
		Answers:   answers,
		WantsSkip: skipPattern.MatchString(lastHumanComment),
	}
	for _, e := range entries {
		if _, ok := answers[e.question.Key]; ok {
			continue
		}
		q := e.question
		res.Next = &q
		res.Section = e.section
		break
	}
	res.Complete = res.Next == nil
	res.StatusBlock = renderStatus(schema, answers)
	if res.Next != nil {
		res.NextPrompt = renderPrompt(*res.Next)
	}
	return res, nil
}

// compilePatterns builds the key to line-pattern table for one evaluation.
func compilePatterns(entries []entry) map[string]*regexp.Regexp {
	table := make(map[string]*regexp.Regexp, len(entries))
	for _, e := range entries {
		key := regexp.QuoteMeta(e.question.Key)
		table[e.question.Key] = regexp.MustCompile(`(?im)^[ \t]*` + key + `[ \t]*[=:][ \t]*([^\n]+)$`)
	}
	return table
}

// extract returns the trimmed value of the last matching line. Lines with an
// empty value are passed over, so `k=` never erases an earlier `k=v`.
func extract(re *regexp.Regexp, corpus string) (string, bool) {
	matches := re.FindAllStringSubmatch(corpus, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		if v := strings.TrimSpace(matches[i][1]); v != "" {
			return v, true
		}
	}
	return "", false
}
