// Package render projects content tables into display blocks. It is pure:
// output depends only on input, and nothing is filtered, sorted, or validated.
package render

import (
	"math"
	"strconv"

	"github.com/prestonhollow/detailing/internal/services/web/content"
)

// ServiceBlock is the display form of one service package.
type ServiceBlock struct {
	Name     string
	Price    string
	Duration string
	Features []string
}

// MaterialBlock is the display form of one material entry.
type MaterialBlock struct {
	UseCase     string
	Explanation string
}

// FormatPrice renders a price as "$" followed by its integer part. Fractions
// truncate toward zero, so 99.6 renders as "$99". NaN renders as "$0" and
// values outside the int64 range saturate.
func FormatPrice(price content.Price) string {
	value := math.Trunc(float64(price))
	var whole int64
	switch {
	case math.IsNaN(value):
	case value >= maxWholePrice:
		whole = math.MaxInt64
	case value <= -maxWholePrice:
		whole = math.MinInt64
	default:
		whole = int64(value)
	}
	return "$" + strconv.FormatInt(whole, 10)
}

// maxWholePrice is 2^63, the first float64 past math.MaxInt64.
const maxWholePrice = 1 << 63

// ServiceBlocks renders one block per package in input order.
func ServiceBlocks(packages []content.ServicePackage) []ServiceBlock {
	return project(packages, func(pkg content.ServicePackage) ServiceBlock {
		return ServiceBlock{
			Name:     pkg.Name,
			Price:    FormatPrice(pkg.Price),
			Duration: pkg.Duration,
			Features: append([]string(nil), pkg.Features...),
		}
	})
}

// MaterialBlocks renders one block per material entry in input order.
func MaterialBlocks(materials []content.MaterialEntry) []MaterialBlock {
	return project(materials, func(entry content.MaterialEntry) MaterialBlock {
		return MaterialBlock{UseCase: entry.UseCase, Explanation: entry.Explanation}
	})
}

func project[In, Out any](items []In, fn func(In) Out) []Out {
	out := make([]Out, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
