package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	apierrors "budget-reconciler/internal/errors"
	"budget-reconciler/internal/models"
)

// categoryService assigns categories from an ordered keyword rule set
type categoryService struct {
	ruleSet models.RuleSet
}

// NewCategoryService creates a keyword categorizer for ruleSet
func NewCategoryService(ruleSet models.RuleSet) CategorizerInterface {
	if ruleSet.Default == "" {
		ruleSet.Default = models.CategoryOther
	}
	return &categoryService{ruleSet: ruleSet}
}

// Categorize never fails in keyword mode
func (s *categoryService) Categorize(_ context.Context, tx models.Transaction) (string, error) {
	return s.CategorizeDescription(tx.Description), nil
}

func (s *categoryService) Version() string {
	return s.ruleSet.Version
}

// CategorizeDescription returns the category of the first rule with a
// keyword contained in the normalized description.
func (s *categoryService) CategorizeDescription(description string) string {
	return s.CategorizeWithResult(description).Category
}

// CategorizeWithResult also reports which keyword matched
func (s *categoryService) CategorizeWithResult(description string) *models.CategorizationResult {
	normalized := models.NormalizeDescription(description)

	for _, rule := range s.ruleSet.Rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(normalized, keyword) {
				return &models.CategorizationResult{
					Category:       rule.Category,
					Method:         models.CategorizationMethodKeyword,
					MatchedKeyword: keyword,
				}
			}
		}
	}

	return &models.CategorizationResult{
		Category: s.ruleSet.Default,
		Method:   models.CategorizationMethodFallback,
	}
}

// directoryCategorizer resolves the category id assigned at the data source.
// Lookups are cached for the lifetime of the categorizer, which is one run.
type directoryCategorizer struct {
	directory       CategoryDirectoryInterface
	defaultCategory string

	mu    sync.Mutex
	cache map[int64]string
}

// NewDirectoryCategorizer creates a categorizer backed by the category directory
func NewDirectoryCategorizer(directory CategoryDirectoryInterface, defaultCategory string) CategorizerInterface {
	if defaultCategory == "" {
		defaultCategory = models.CategoryOther
	}
	return &directoryCategorizer{
		directory:       directory,
		defaultCategory: defaultCategory,
		cache:           make(map[int64]string),
	}
}

func (c *directoryCategorizer) Categorize(ctx context.Context, tx models.Transaction) (string, error) {
	if tx.CategoryID == nil {
		return c.defaultCategory, nil
	}
	id := *tx.CategoryID

	c.mu.Lock()
	name, ok := c.cache[id]
	c.mu.Unlock()
	if ok {
		return name, nil
	}

	name, err := c.directory.CategoryName(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to resolve category %d of transaction %d: %w", id, tx.ID, err)
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", fmt.Errorf("category %d has no name: %w", id, apierrors.ErrNotFound)
	}

	c.mu.Lock()
	c.cache[id] = name
	c.mu.Unlock()

	return name, nil
}

func (c *directoryCategorizer) Version() string {
	return models.CategoryModeExternal
}
