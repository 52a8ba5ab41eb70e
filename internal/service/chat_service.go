package service

import (
	"fmt"
	"os"
	"strings"

	"budgetboard/internal/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// FallbackReply is returned when no intent keyword matches the query.
const FallbackReply = "Sorry, I could not understand your query."

// Reply headers for the aggregate intents.
const (
	departmentReplyHeader = "Department-wise spending:"
	vendorReplyHeader     = "Vendor-wise spending:"
)

// Built-in intent names, addressable from the optional keyword config.
const (
	intentDepartment = "department"
	intentVendor     = "vendor"
	intentOverruns   = "overruns"
)

// intent pairs a keyword predicate with a responder. Intents are evaluated
// in order; the first whose keywords match wins and later ones are skipped.
type intent struct {
	name     string
	keywords []string
	respond  func(rows []models.DisplayTransaction, currency models.Currency) string
}

func (it intent) matches(query string) bool {
	for _, kw := range it.keywords {
		if strings.Contains(query, kw) {
			return true
		}
	}
	return false
}

// ChatService answers free-text queries about the currently filtered data by
// keyword matching against an ordered intent list.
type ChatService struct {
	dashboard *DashboardService
	intents   []intent
	logger    *zap.Logger
}

// intentsConfig is the optional YAML override for intent keywords. Only the
// keywords of built-in intents can be replaced; responders stay in code.
type intentsConfig struct {
	Intents []struct {
		Name     string   `yaml:"name"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"intents"`
}

// NewChatService builds the responder. intentsPath may name a YAML file with
// keyword overrides; a missing file keeps the defaults.
func NewChatService(dashboard *DashboardService, intentsPath string, logger *zap.Logger) *ChatService {
	s := &ChatService{
		dashboard: dashboard,
		logger:    logger,
	}
	s.intents = []intent{
		{name: intentDepartment, keywords: []string{"department"}, respond: s.departmentReply},
		{name: intentVendor, keywords: []string{"vendor"}, respond: s.vendorReply},
		{name: intentOverruns, keywords: []string{"overbudget", "anomaly"}, respond: s.overrunsReply},
	}
	if intentsPath != "" {
		s.applyKeywordOverrides(intentsPath)
	}
	return s
}

func (s *ChatService) applyKeywordOverrides(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Failed to read intents config", zap.String("path", path), zap.Error(err))
		}
		return
	}

	var cfg intentsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		s.logger.Warn("Failed to parse intents config, keeping defaults", zap.String("path", path), zap.Error(err))
		return
	}

	for _, override := range cfg.Intents {
		if len(override.Keywords) == 0 {
			continue
		}
		known := false
		for i := range s.intents {
			if s.intents[i].name == override.Name {
				s.intents[i].keywords = lowerAll(override.Keywords)
				known = true
				break
			}
		}
		if !known {
			s.logger.Warn("Unknown intent in config ignored", zap.String("intent", override.Name))
		}
	}
	s.logger.Info("Chat intent keywords loaded", zap.String("path", path))
}

// Respond answers the query against the filtered data. The query is
// lowercased and tested against each intent in priority order.
func (s *ChatService) Respond(query string, f Filter) string {
	lowered := strings.ToLower(query)
	rows, currency := s.dashboard.FilteredRows(f)
	for _, it := range s.intents {
		if it.matches(lowered) {
			return it.respond(rows, currency)
		}
	}
	return FallbackReply
}

func (s *ChatService) departmentReply(rows []models.DisplayTransaction, currency models.Currency) string {
	return aggregateReply(departmentReplyHeader, sumBy(rows, departmentOf, spentOf), currency)
}

func (s *ChatService) vendorReply(rows []models.DisplayTransaction, currency models.Currency) string {
	return aggregateReply(vendorReplyHeader, sumBy(rows, vendorOf, spentOf), currency)
}

func (s *ChatService) overrunsReply(rows []models.DisplayTransaction, _ models.Currency) string {
	count := 0
	for _, r := range rows {
		if r.OverBudget {
			count++
		}
	}
	return fmt.Sprintf("There are %d budget overruns.", count)
}

// aggregateReply formats group totals one per line under a fixed header.
func aggregateReply(header string, totals []models.AggregateRow, currency models.Currency) string {
	lines := make([]string, 0, len(totals)+1)
	lines = append(lines, header)
	for _, row := range totals {
		lines = append(lines, fmt.Sprintf("%s: %s", row.Label, currency.Format(row.Value)))
	}
	return strings.Join(lines, "\n")
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
