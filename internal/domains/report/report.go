// Package report computes read-only aggregates over a collection
// snapshot. Every report is recomputed per request from the snapshot;
// nothing here touches the database.
package report

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"collection-backend/internal/collection"
	"collection-backend/internal/domains/category"
	"collection-backend/internal/domains/item"
)

// CategorySum is one row of the per-category valuation report.
type CategorySum struct {
	CategoryID uuid.UUID       `json:"category_id"`
	Name       string          `json:"name"`
	Sum        decimal.Decimal `json:"sum"`
}

// CategorySumsReport lists categories by their in-stock valuation.
type CategorySumsReport struct {
	Categories     []CategorySum   `json:"categories"`
	TotalValuation decimal.Decimal `json:"total_valuation"`
}

// CategorySums sums valuation over in-stock items of exactly each
// category (descendants not included). Zero-sum categories are dropped
// and rows sort by sum descending. The grand total equals the sum of
// the returned rows.
func CategorySums(snap collection.Snapshot) CategorySumsReport {
	sums := make(map[uuid.UUID]decimal.Decimal)
	for _, i := range snap.Items {
		if !i.InStock() || i.Valuation == nil {
			continue
		}
		sums[i.CategoryID] = sums[i.CategoryID].Add(*i.Valuation)
	}

	report := CategorySumsReport{Categories: []CategorySum{}}
	for _, c := range snap.Categories {
		sum, ok := sums[c.ID]
		if !ok || !sum.IsPositive() {
			continue
		}
		report.Categories = append(report.Categories, CategorySum{
			CategoryID: c.ID,
			Name:       c.Name,
			Sum:        sum,
		})
		report.TotalValuation = report.TotalValuation.Add(sum)
	}

	sort.SliceStable(report.Categories, func(a, b int) bool {
		return report.Categories[a].Sum.GreaterThan(report.Categories[b].Sum)
	})
	return report
}

// TopItems returns the n most valuable items: valuation > 0, sorted
// descending. Tie order is unspecified.
func TopItems(snap collection.Snapshot, n int) []item.Item {
	var qualifying []item.Item
	for _, i := range snap.Items {
		if i.Valuation != nil && i.Valuation.IsPositive() {
			qualifying = append(qualifying, i)
		}
	}

	sort.SliceStable(qualifying, func(a, b int) bool {
		return qualifying[a].Valuation.GreaterThan(*qualifying[b].Valuation)
	})

	if len(qualifying) > n {
		qualifying = qualifying[:n]
	}
	return qualifying
}

// Wishlist returns out-of-stock items sorted by valuation descending,
// treating a missing valuation as zero.
func Wishlist(snap collection.Snapshot) []item.Item {
	var wanted []item.Item
	for _, i := range snap.Items {
		if !i.InStock() {
			wanted = append(wanted, i)
		}
	}

	sort.SliceStable(wanted, func(a, b int) bool {
		return wanted[a].ValuationOrZero().GreaterThan(wanted[b].ValuationOrZero())
	})
	return wanted
}

// ValuationEntry is one item row in the profit report.
type ValuationEntry struct {
	ItemID        uuid.UUID       `json:"item_id"`
	Name          string          `json:"name"`
	BoughtFor     decimal.Decimal `json:"bought_for"`
	Valuation     decimal.Decimal `json:"valuation"`
	Profit        decimal.Decimal `json:"profit"`
	ProfitPercent decimal.Decimal `json:"profit_percent"`
}

// ValuationGroup is all qualifying items of one category name.
type ValuationGroup struct {
	CategoryName   string           `json:"category_name"`
	Items          []ValuationEntry `json:"items"`
	TotalValuation decimal.Decimal  `json:"total_valuation"`
}

// ValuationReport groups profit rows by category with grand totals.
type ValuationReport struct {
	Groups         []ValuationGroup `json:"groups"`
	TotalPurchases decimal.Decimal  `json:"total_purchases"`
	TotalValuation decimal.Decimal  `json:"total_valuation"`
	TotalProfit    decimal.Decimal  `json:"total_profit"`
	ProfitPercent  decimal.Decimal  `json:"profit_percent"`
}

const uncategorized = "Uncategorized"

var hundred = decimal.NewFromInt(100)

// Valuation builds the profit report: in-stock items with both
// boughtFor > 0 and valuation > 0, profit = valuation - boughtFor,
// profit% = profit / boughtFor * 100. Items group by category name
// with an "Uncategorized" fallback; items sort by profit% descending
// within a group, groups by summed valuation descending.
func Valuation(snap collection.Snapshot) ValuationReport {
	names := make(map[uuid.UUID]string, len(snap.Categories))
	for _, c := range snap.Categories {
		names[c.ID] = c.Name
	}

	groups := make(map[string]*ValuationGroup)
	report := ValuationReport{Groups: []ValuationGroup{}}

	for _, i := range snap.Items {
		if !i.InStock() || i.BoughtFor == nil || i.Valuation == nil {
			continue
		}
		if !i.BoughtFor.IsPositive() || !i.Valuation.IsPositive() {
			continue
		}

		profit := i.Valuation.Sub(*i.BoughtFor)
		entry := ValuationEntry{
			ItemID:        i.ID,
			Name:          i.Name,
			BoughtFor:     *i.BoughtFor,
			Valuation:     *i.Valuation,
			Profit:        profit,
			ProfitPercent: profit.Div(*i.BoughtFor).Mul(hundred).Round(2),
		}

		name, ok := names[i.CategoryID]
		if !ok || name == "" {
			name = uncategorized
		}
		group, ok := groups[name]
		if !ok {
			group = &ValuationGroup{CategoryName: name}
			groups[name] = group
		}
		group.Items = append(group.Items, entry)
		group.TotalValuation = group.TotalValuation.Add(entry.Valuation)

		report.TotalPurchases = report.TotalPurchases.Add(entry.BoughtFor)
		report.TotalValuation = report.TotalValuation.Add(entry.Valuation)
		report.TotalProfit = report.TotalProfit.Add(entry.Profit)
	}

	for _, group := range groups {
		sort.SliceStable(group.Items, func(a, b int) bool {
			return group.Items[a].ProfitPercent.GreaterThan(group.Items[b].ProfitPercent)
		})
		report.Groups = append(report.Groups, *group)
	}
	sort.SliceStable(report.Groups, func(a, b int) bool {
		return report.Groups[a].TotalValuation.GreaterThan(report.Groups[b].TotalValuation)
	})

	if report.TotalPurchases.IsPositive() {
		report.ProfitPercent = report.TotalProfit.Div(report.TotalPurchases).Mul(hundred).Round(2)
	}
	return report
}

// Rollup is a descendant-inclusive total for one category.
type Rollup struct {
	CategoryID uuid.UUID       `json:"category_id"`
	Name       string          `json:"name"`
	ItemCount  int             `json:"item_count"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// DescendantIDs collects the ids of every category below root. The
// adjacency map is built once and traversal carries a visited set, so
// a corrupted parent chain terminates instead of looping.
func DescendantIDs(categories []category.Category, root uuid.UUID) []uuid.UUID {
	children := make(map[uuid.UUID][]uuid.UUID, len(categories))
	for _, c := range categories {
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c.ID)
		}
	}

	visited := map[uuid.UUID]bool{root: true}
	var ids []uuid.UUID
	stack := append([]uuid.UUID(nil), children[root]...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		ids = append(ids, id)
		stack = append(stack, children[id]...)
	}
	return ids
}

// CategoryRollup totals value and item count over a category and all
// its descendants. Unlike CategorySums, every valuation counts here
// regardless of stock status.
func CategoryRollup(snap collection.Snapshot, id uuid.UUID) Rollup {
	rollup := Rollup{CategoryID: id}
	for _, c := range snap.Categories {
		if c.ID == id {
			rollup.Name = c.Name
			break
		}
	}

	included := map[uuid.UUID]bool{id: true}
	for _, descID := range DescendantIDs(snap.Categories, id) {
		included[descID] = true
	}

	for _, i := range snap.Items {
		if !included[i.CategoryID] {
			continue
		}
		rollup.ItemCount++
		rollup.TotalValue = rollup.TotalValue.Add(i.ValuationOrZero())
	}
	return rollup
}

// HomeReport mirrors the landing page valuation dialog: one rollup for
// the configured home category (a top-level category matched by name,
// case-insensitively) and one for a configured direct subcategory of
// it. A missing category yields a zero rollup under the configured
// name.
type HomeReportResult struct {
	Home        Rollup `json:"home"`
	Subcategory Rollup `json:"subcategory"`
}

func HomeReport(snap collection.Snapshot, homeName, subName string) HomeReportResult {
	result := HomeReportResult{
		Home:        Rollup{Name: homeName},
		Subcategory: Rollup{Name: subName},
	}

	var home *category.Category
	for idx := range snap.Categories {
		c := &snap.Categories[idx]
		if c.IsTopLevel() && nameMatches(c.Name, homeName) {
			home = c
			break
		}
	}
	if home == nil {
		return result
	}
	result.Home = CategoryRollup(snap, home.ID)

	for idx := range snap.Categories {
		c := &snap.Categories[idx]
		if c.ParentID != nil && *c.ParentID == home.ID && nameMatches(c.Name, subName) {
			result.Subcategory = CategoryRollup(snap, c.ID)
			return result
		}
	}
	return result
}

func nameMatches(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Stats is the landing page counter strip.
type Stats struct {
	TotalItems int `json:"total_items"`
	InStock    int `json:"in_stock"`
	Categories int `json:"categories"`
}

func CollectionStats(snap collection.Snapshot) Stats {
	stats := Stats{
		TotalItems: len(snap.Items),
		Categories: len(snap.Categories),
	}
	for _, i := range snap.Items {
		if i.InStock() {
			stats.InStock++
		}
	}
	return stats
}
