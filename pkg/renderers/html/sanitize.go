package html

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// sanitizeLabel strips everything but inline formatting from option labels.
// Text content is escaped by the policy.
func sanitizeLabel(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return labelSanitizer().Sanitize(raw)
}

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "i", "em", "strong", "small", "mark", "sub", "sup", "span")
		policy.AllowAttrs("class").OnElements("span")
		labelPolicy = policy
	})
	return labelPolicy
}
