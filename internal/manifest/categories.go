package manifest

import (
	"strings"

	"github.com/quantmind-br/westconf-go/internal/domain"
)

// Category is a presentation group for import entries
type Category string

const (
	CategoryBaseFiles  Category = "Base Files"
	CategoryDevices    Category = "Devices"
	CategoryMiddleware Category = "Middleware"
	CategoryRTOS       Category = "RTOS"
	CategoryOther      Category = "Other"
)

// Categories returns all categories in presentation order
func Categories() []Category {
	return []Category{
		CategoryBaseFiles,
		CategoryDevices,
		CategoryMiddleware,
		CategoryRTOS,
		CategoryOther,
	}
}

// Categorize assigns an entry to exactly one category by first-match
// substring test against its normalized path, case-sensitive.
func Categorize(path string) Category {
	switch {
	case strings.Contains(path, "base.yml") || strings.Contains(path, "internal.yml"):
		return CategoryBaseFiles
	case strings.Contains(path, "devices"):
		return CategoryDevices
	case strings.Contains(path, "middleware"):
		return CategoryMiddleware
	case strings.Contains(path, "rtos"):
		return CategoryRTOS
	default:
		return CategoryOther
	}
}

// GroupByCategory partitions a resolved import structure into category
// groups. Entries keep their declaration order within each group; categories
// with no members are absent from the result.
func GroupByCategory(structure *domain.ImportStructure) map[Category][]*domain.ImportEntry {
	groups := make(map[Category][]*domain.ImportEntry)
	for _, entry := range structure.Entries() {
		cat := Categorize(entry.Path)
		groups[cat] = append(groups[cat], entry)
	}
	return groups
}
