package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidSlug reports whether s is usable as a URL segment: lowercase letters,
// digits and single hyphens, not starting or ending with a hyphen.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Validate checks every record and cross reference in the catalog and returns
// all problems joined. A nil result means the catalog can be indexed.
func (c Catalog) Validate() error {
	var errs []error

	categories := make(map[string]struct{}, len(c.Categories))
	for i, cat := range c.Categories {
		errs = append(errs, validateCategory(i, cat)...)
		if cat.ID == "" {
			continue
		}
		if _, dup := categories[cat.ID]; dup {
			errs = append(errs, fmt.Errorf("categories[%d]: %w: %q", i, ErrDuplicateCategory, cat.ID))
			continue
		}
		categories[cat.ID] = struct{}{}
	}

	ids := make(map[string]int, len(c.Tools))
	routes := make(map[string]int, len(c.Tools))
	for i, tool := range c.Tools {
		errs = append(errs, validateTool(i, tool)...)

		if tool.ID != "" {
			if first, dup := ids[tool.ID]; dup {
				errs = append(errs, fmt.Errorf("tools[%d]: %w: %q already used by tools[%d]", i, ErrDuplicateToolID, tool.ID, first))
			} else {
				ids[tool.ID] = i
			}
		}

		if tool.CategoryID == "" {
			continue
		}
		if _, ok := categories[tool.CategoryID]; !ok {
			errs = append(errs, fmt.Errorf("tools[%d] %q: %w: %q", i, tool.ID, ErrDanglingCategory, tool.CategoryID))
		}
		if tool.Slug == "" {
			continue
		}
		key := tool.CategoryID + "/" + tool.Slug
		if first, dup := routes[key]; dup {
			errs = append(errs, fmt.Errorf("tools[%d] %q: %w: %s already used by tools[%d]", i, tool.ID, ErrDuplicateSlug, key, first))
		} else {
			routes[key] = i
		}
	}

	return errors.Join(errs...)
}

func validateCategory(i int, cat Category) []error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("categories[%d]: %w: %s", i, ErrInvalidCategory, fmt.Sprintf(format, args...)))
	}

	switch {
	case cat.ID == "":
		fail("id is required")
	case !ValidSlug(cat.ID):
		fail("id %q must be lowercase alphanumerics separated by hyphens", cat.ID)
	}
	if strings.TrimSpace(cat.Name) == "" {
		fail("name is required")
	}
	switch cat.Badge {
	case "", BadgeNew, BadgeComingSoon, BadgeBeta, BadgeHot, BadgePopular:
	default:
		fail("unknown badge %q", cat.Badge)
	}
	return errs
}

func validateTool(i int, tool Tool) []error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("tools[%d]: %w: %s", i, ErrInvalidTool, fmt.Sprintf(format, args...)))
	}

	if tool.ID == "" {
		fail("id is required")
	}
	switch {
	case tool.Slug == "":
		fail("slug is required")
	case !ValidSlug(tool.Slug):
		fail("slug %q must be lowercase alphanumerics separated by hyphens", tool.Slug)
	}
	if tool.CategoryID == "" {
		fail("category is required")
	}
	if strings.TrimSpace(tool.Name) == "" {
		fail("name is required")
	}
	switch tool.Status {
	case "", StatusLive, StatusBeta, StatusComing, StatusDevelopment, StatusMaintenance:
	default:
		fail("unknown status %q", tool.Status)
	}
	switch tool.Pricing {
	case "", PricingFree, PricingFreemium, PricingPaid:
	default:
		fail("unknown pricing %q", tool.Pricing)
	}
	switch tool.Processing {
	case "", ProcessingLocal, ProcessingServer, ProcessingHybrid:
	default:
		fail("unknown processing %q", tool.Processing)
	}
	if tool.Users < 0 {
		fail("users must not be negative")
	}
	if !tool.CreatedAt.IsZero() && !tool.UpdatedAt.IsZero() && tool.UpdatedAt.Before(tool.CreatedAt) {
		fail("updatedAt precedes createdAt")
	}
	return errs
}
