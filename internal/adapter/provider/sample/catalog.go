// Package sample ships a fixed catalog of ready-made insights. It backs the
// seeding endpoint, the mock store and an offline model that needs no API key.
package sample

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/insight-calendar/internal/domain"
)

//go:embed insights.yaml
var catalogYAML []byte

var loadCatalog = sync.OnceValue(func() []domain.GeneratedInsight {
	var items []domain.GeneratedInsight
	if err := yaml.Unmarshal(catalogYAML, &items); err != nil {
		panic(fmt.Sprintf("sample: decode catalog: %v", err))
	}
	for i, it := range items {
		if err := it.Validate(); err != nil {
			panic(fmt.Sprintf("sample: catalog entry %d: %v", i, err))
		}
	}
	return items
})

// Catalog returns a copy of all sample insights in their fixed order.
func Catalog() []domain.GeneratedInsight {
	items := loadCatalog()
	out := make([]domain.GeneratedInsight, len(items))
	for i, it := range items {
		out[i] = clone(it)
	}
	return out
}

// Len reports the catalog size.
func Len() int { return len(loadCatalog()) }

// At returns the sample at position i modulo the catalog size.
func At(i int) domain.GeneratedInsight {
	items := loadCatalog()
	n := len(items)
	return clone(items[((i%n)+n)%n])
}

// Pick deterministically selects a sample for date.
func Pick(date string) domain.GeneratedInsight {
	return At(IndexFor(date))
}

// IndexFor maps date to a catalog position using a 31-based rolling hash
// over UTF-16 code units with 32-bit wraparound.
func IndexFor(date string) int {
	h := int64(stringHash(date))
	if h < 0 {
		h = -h
	}
	return int(h % int64(Len()))
}

func stringHash(s string) int32 {
	var h int32
	for _, r := range s {
		if r > 0xFFFF {
			hi, lo := surrogates(r)
			h = h*31 + int32(hi)
			h = h*31 + int32(lo)
			continue
		}
		h = h*31 + int32(r)
	}
	return h
}

func surrogates(r rune) (uint16, uint16) {
	r -= 0x10000
	return uint16(0xD800 + (r>>10)&0x3FF), uint16(0xDC00 + r&0x3FF)
}

func clone(g domain.GeneratedInsight) domain.GeneratedInsight {
	g.Keywords = slices.Clone(g.Keywords)
	return g
}
