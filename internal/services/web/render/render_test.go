package render

import (
	"math"
	"reflect"
	"testing"

	"github.com/prestonhollow/detailing/internal/services/web/content"
)

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		price content.Price
		want  string
	}{
		{name: "whole", price: 129, want: "$129"},
		{name: "fraction truncates", price: 99.6, want: "$99"},
		{name: "just below next", price: 54.999, want: "$54"},
		{name: "zero", price: 0, want: "$0"},
		{name: "large", price: 1250, want: "$1250"},
		{name: "negative truncates toward zero", price: -3.7, want: "$-3"},
		{name: "negative fraction", price: -0.4, want: "$0"},
		{name: "nan", price: content.Price(math.NaN()), want: "$0"},
		{name: "positive infinity", price: content.Price(math.Inf(1)), want: "$9223372036854775807"},
		{name: "negative infinity", price: content.Price(math.Inf(-1)), want: "$-9223372036854775808"},
		{name: "beyond int64", price: 1e21, want: "$9223372036854775807"},
		{name: "below int64", price: -1e21, want: "$-9223372036854775808"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatPrice(tt.price); got != tt.want {
				t.Fatalf("FormatPrice(%v) = %q, want %q", tt.price, got, tt.want)
			}
		})
	}
}

func TestServiceBlocksPreservesOrderAndFields(t *testing.T) {
	t.Parallel()

	packages := content.Default().Packages
	blocks := ServiceBlocks(packages)
	if len(blocks) != len(packages) {
		t.Fatalf("len(blocks) = %d, want %d", len(blocks), len(packages))
	}
	for i, pkg := range packages {
		block := blocks[i]
		if block.Name != pkg.Name {
			t.Fatalf("blocks[%d].Name = %q, want %q", i, block.Name, pkg.Name)
		}
		if block.Price != FormatPrice(pkg.Price) {
			t.Fatalf("blocks[%d].Price = %q, want %q", i, block.Price, FormatPrice(pkg.Price))
		}
		if block.Duration != pkg.Duration {
			t.Fatalf("blocks[%d].Duration = %q, want %q", i, block.Duration, pkg.Duration)
		}
		if !reflect.DeepEqual(block.Features, pkg.Features) {
			t.Fatalf("blocks[%d].Features = %v, want %v", i, block.Features, pkg.Features)
		}
	}
}

func TestServiceBlocksFivePackages(t *testing.T) {
	t.Parallel()

	packages := []content.ServicePackage{
		{Name: "A", Price: 55, Duration: "1 hr", Features: []string{"a"}},
		{Name: "B", Price: 99, Duration: "2 hrs", Features: []string{"b1", "b2"}},
		{Name: "C", Price: 189, Duration: "3 hrs"},
		{Name: "D", Price: 129, Duration: "2.5 hrs", Features: []string{"d"}},
		{Name: "E", Price: 229, Duration: "4 hrs", Features: []string{"e"}},
	}
	blocks := ServiceBlocks(packages)
	wantPrices := []string{"$55", "$99", "$189", "$129", "$229"}
	if len(blocks) != 5 {
		t.Fatalf("len(blocks) = %d, want 5", len(blocks))
	}
	for i, want := range wantPrices {
		if blocks[i].Name != packages[i].Name || blocks[i].Price != want {
			t.Fatalf("blocks[%d] = %+v, want name %q price %q", i, blocks[i], packages[i].Name, want)
		}
		if len(blocks[i].Features) != len(packages[i].Features) {
			t.Fatalf("blocks[%d] features = %v, want %v", i, blocks[i].Features, packages[i].Features)
		}
	}
}

func TestServiceBlocksDoesNotAliasFeatures(t *testing.T) {
	t.Parallel()

	packages := []content.ServicePackage{{Name: "A", Features: []string{"wash"}}}
	blocks := ServiceBlocks(packages)
	blocks[0].Features[0] = "changed"
	if packages[0].Features[0] != "wash" {
		t.Fatalf("config feature = %q, want %q", packages[0].Features[0], "wash")
	}
}

func TestBlocksEmptyInput(t *testing.T) {
	t.Parallel()

	services := ServiceBlocks(nil)
	if services == nil || len(services) != 0 {
		t.Fatalf("ServiceBlocks(nil) = %#v, want empty non-nil", services)
	}
	materials := MaterialBlocks([]content.MaterialEntry{})
	if materials == nil || len(materials) != 0 {
		t.Fatalf("MaterialBlocks(empty) = %#v, want empty non-nil", materials)
	}
}

func TestMaterialBlocksKeepsDuplicates(t *testing.T) {
	t.Parallel()

	entries := []content.MaterialEntry{
		{UseCase: "Glass", Explanation: "x"},
		{UseCase: "Glass", Explanation: "x"},
		{UseCase: "Tires", Explanation: "y"},
	}
	blocks := MaterialBlocks(entries)
	if len(blocks) != 3 {
		t.Fatalf("len(blocks) = %d, want 3", len(blocks))
	}
	for i, entry := range entries {
		if blocks[i].UseCase != entry.UseCase || blocks[i].Explanation != entry.Explanation {
			t.Fatalf("blocks[%d] = %+v, want %+v", i, blocks[i], entry)
		}
	}
}
