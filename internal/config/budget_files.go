package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"budget-reconciler/internal/models"
	"budget-reconciler/internal/validation"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
)

var ErrUnsupportedFileFormat = errors.New("unsupported file format, expected .yaml, .yml or .toml")

// limitsFile is the on-disk shape of a budget limits file
type limitsFile struct {
	Limits map[string]any `yaml:"limits" toml:"limits"`
	Fixed  []string       `yaml:"fixed" toml:"fixed"`
}

// LoadRuleSet reads the ordered category rules from path. An empty path
// returns the built-in rule set.
func LoadRuleSet(path string) (models.RuleSet, error) {
	if path == "" {
		return models.DefaultRuleSet(), nil
	}

	var ruleSet models.RuleSet
	if err := decodeFile(path, &ruleSet); err != nil {
		return models.RuleSet{}, fmt.Errorf("failed to load rule set: %w", err)
	}

	for i := range ruleSet.Rules {
		for j, keyword := range ruleSet.Rules[i].Keywords {
			ruleSet.Rules[i].Keywords[j] = models.NormalizeDescription(strings.TrimSpace(keyword))
		}
	}

	if err := validation.GetValidator().Struct(ruleSet); err != nil {
		return models.RuleSet{}, fmt.Errorf("invalid rule set %s: %w", path, err)
	}

	return ruleSet, nil
}

// LoadBudgetLimits reads monthly limits and fixed categories from path. An
// empty path returns the built-in limits.
func LoadBudgetLimits(path string) (models.BudgetLimits, error) {
	if path == "" {
		return models.DefaultBudgetLimits(), nil
	}

	var file limitsFile
	if err := decodeFile(path, &file); err != nil {
		return models.BudgetLimits{}, fmt.Errorf("failed to load budget limits: %w", err)
	}

	if len(file.Limits) == 0 {
		return models.BudgetLimits{}, fmt.Errorf("budget limits file %s defines no limits", path)
	}

	limits := models.BudgetLimits{
		Base:  make(map[string]decimal.Decimal, len(file.Limits)),
		Fixed: make(map[string]bool, len(file.Fixed)),
	}

	for category, raw := range file.Limits {
		amount, err := toDecimal(raw)
		if err != nil {
			return models.BudgetLimits{}, fmt.Errorf("limit for %s: %w", category, err)
		}
		if amount.IsNegative() {
			return models.BudgetLimits{}, fmt.Errorf("limit for %s must not be negative", category)
		}
		limits.Base[category] = amount
	}

	for _, category := range file.Fixed {
		if _, ok := limits.Base[category]; !ok {
			return models.BudgetLimits{}, fmt.Errorf("fixed category %s has no limit", category)
		}
		limits.Fixed[category] = true
	}

	return limits, nil
}

func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode yaml %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode toml %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFileFormat)
	}

	return nil
}

func toDecimal(raw any) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case uint64:
		return decimal.NewFromInt(int64(v)), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		return decimal.NewFromString(v)
	default:
		return decimal.Zero, fmt.Errorf("unsupported amount %v (%T)", raw, raw)
	}
}
