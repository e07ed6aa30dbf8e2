package generation

import (
	"encoding/json"
	"regexp"

	"github.com/heartmarshall/insight-calendar/internal/domain"
)

// extractor finds a JSON candidate in a model reply. ok is false when the
// reply does not have the shape the extractor looks for.
type extractor struct {
	name string
	find func(reply string) (candidate string, ok bool)
}

var (
	jsonFenceRe    = regexp.MustCompile("```json\\s*([\\s\\S]*?)\\s*```")
	genericFenceRe = regexp.MustCompile("```\\s*([\\s\\S]*?)\\s*```")
	bareObjectRe   = regexp.MustCompile(`\{[\s\S]*\}`)
)

// extractors run in order; the first one that matches wins.
var extractors = []extractor{
	{name: "json_fence", find: submatch(jsonFenceRe)},
	{name: "generic_fence", find: submatch(genericFenceRe)},
	{name: "bare_object", find: wholeMatch(bareObjectRe)},
}

func submatch(re *regexp.Regexp) func(string) (string, bool) {
	return func(s string) (string, bool) {
		m := re.FindStringSubmatch(s)
		if m == nil {
			return "", false
		}
		return m[1], true
	}
}

func wholeMatch(re *regexp.Regexp) func(string) (string, bool) {
	return func(s string) (string, bool) {
		m := re.FindString(s)
		return m, m != ""
	}
}

// parseReply extracts, decodes and validates an insight from a raw reply.
// Every failure is a *domain.ParseError.
func parseReply(reply string) (domain.GeneratedInsight, string, error) {
	var (
		candidate string
		strategy  string
	)
	for _, ex := range extractors {
		if c, ok := ex.find(reply); ok {
			candidate, strategy = c, ex.name
			break
		}
	}
	if strategy == "" {
		return domain.GeneratedInsight{}, "", domain.NewParseError("no JSON object found in model reply", nil)
	}

	var out domain.GeneratedInsight
	if err := json.Unmarshal([]byte(candidate), &out); err != nil {
		return domain.GeneratedInsight{}, strategy, domain.NewParseError("decode JSON", err)
	}

	if err := out.Validate(); err != nil {
		return domain.GeneratedInsight{}, strategy, domain.NewParseError("missing or empty fields", err)
	}
	return out, strategy, nil
}
