// Package rules implements keyword-based categorization. A rule maps a
// lowercase substring to a category; longer keywords always win over
// shorter ones so "amazon aws" can carve cloud charges out of a broad
// "amazon" rule.
package rules

import (
	"sort"
	"strings"
	"sync"

	"github.com/sumanmaity112/smart-finanza/internal/logging"
	"github.com/sumanmaity112/smart-finanza/internal/models"
	"github.com/sumanmaity112/smart-finanza/internal/parsererror"
	"github.com/sumanmaity112/smart-finanza/internal/store"
)

// Engine applies category rules to stored transactions. Teach and
// Sweep hold a mutex for their full read-match-write cycle so two
// concurrent sweeps cannot interleave partial updates.
type Engine struct {
	store *store.Store
	log   logging.Logger
	mu    sync.Mutex
}

// SweepReport summarizes one categorization pass.
type SweepReport struct {
	Scanned int `json:"scanned"`
	Updated int `json:"updated"`
	Rules   int `json:"rules"`
}

func New(s *store.Store, logger logging.Logger) *Engine {
	return &Engine{store: s, log: logger}
}

// Teach saves a keyword rule and immediately re-categorizes every
// transaction the keyword matches, including rows an older rule
// already claimed. The keyword is lowercased before storage.
func (e *Engine) Teach(keyword, category string) (*SweepReport, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	keyword = strings.ToLower(strings.TrimSpace(keyword))
	category = strings.TrimSpace(category)
	if keyword == "" {
		return nil, &parsererror.ValidationError{Field: "keyword", Reason: "must not be empty"}
	}
	if category == "" {
		return nil, &parsererror.ValidationError{Field: "category", Reason: "must not be empty"}
	}

	if err := e.store.UpsertRule(keyword, category); err != nil {
		return nil, err
	}
	e.log.Info("Learned rule",
		logging.Field{Key: logging.FieldKeyword, Value: keyword},
		logging.Field{Key: logging.FieldCategory, Value: category})

	refs, err := e.store.MatchingMerchant(keyword)
	if err != nil {
		return nil, err
	}
	return e.apply(refs)
}

// Sweep re-categorizes every transaction still marked uncategorized.
// Rows no rule matches are left untouched.
func (e *Engine) Sweep() (*SweepReport, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	refs, err := e.store.Uncategorized()
	if err != nil {
		return nil, err
	}
	return e.apply(refs)
}

func (e *Engine) apply(refs []store.TxnRef) (*SweepReport, error) {
	ruleSet, err := e.store.ListRules()
	if err != nil {
		return nil, err
	}
	ordered := orderRules(ruleSet)

	var updates []store.CategoryUpdate
	for _, ref := range refs {
		merchant := strings.ToLower(ref.Merchant)
		for _, rule := range ordered {
			if strings.Contains(merchant, rule.Keyword) {
				updates = append(updates, store.CategoryUpdate{ID: ref.ID, Category: rule.Category})
				break
			}
		}
	}

	if err := e.store.ApplyCategories(updates); err != nil {
		return nil, err
	}

	report := &SweepReport{Scanned: len(refs), Updated: len(updates), Rules: len(ordered)}
	e.log.Info("Sweep complete",
		logging.Field{Key: "scanned", Value: report.Scanned},
		logging.Field{Key: "updated", Value: report.Updated},
		logging.Field{Key: "rules", Value: report.Rules})
	return report, nil
}

// orderRules sorts longest keyword first so the most specific rule
// wins; equal lengths fall back to lexicographic order to keep sweeps
// deterministic.
func orderRules(ruleSet []models.CategoryRule) []models.CategoryRule {
	ordered := make([]models.CategoryRule, len(ruleSet))
	copy(ordered, ruleSet)
	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i].Keyword) != len(ordered[j].Keyword) {
			return len(ordered[i].Keyword) > len(ordered[j].Keyword)
		}
		return ordered[i].Keyword < ordered[j].Keyword
	})
	return ordered
}
