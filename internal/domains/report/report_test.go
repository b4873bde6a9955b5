package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collection-backend/internal/collection"
	"collection-backend/internal/domains/category"
	"collection-backend/internal/domains/item"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func cat(name string, parent *uuid.UUID) category.Category {
	return category.Category{ID: uuid.New(), Name: name, ParentID: parent}
}

func inStock(name string, categoryID uuid.UUID, valuation, boughtFor *decimal.Decimal) item.Item {
	return item.Item{
		ID:          uuid.New(),
		Name:        name,
		CategoryID:  categoryID,
		StockStatus: item.StockStatusInStock,
		Valuation:   valuation,
		BoughtFor:   boughtFor,
	}
}

func outOfStock(name string, categoryID uuid.UUID, valuation *decimal.Decimal) item.Item {
	i := inStock(name, categoryID, valuation, nil)
	i.StockStatus = item.StockStatusOutOfStock
	return i
}

func TestCategorySums(t *testing.T) {
	vehicles := cat("Vehicles", nil)
	figures := cat("Figures", nil)
	empty := cat("Playsets", nil)

	snap := collection.Snapshot{
		Categories: []category.Category{vehicles, figures, empty},
		Items: []item.Item{
			inStock("X-Wing", vehicles.ID, dec("500"), nil),
			inStock("TIE Fighter", vehicles.ID, dec("100"), nil),
			inStock("Boba Fett", figures.ID, dec("800"), nil),
			outOfStock("Sandcrawler", figures.ID, dec("9999")),
			inStock("No value", empty.ID, nil, nil),
		},
	}

	rep := CategorySums(snap)

	require.Len(t, rep.Categories, 2, "zero-sum categories are excluded")
	assert.Equal(t, "Figures", rep.Categories[0].Name)
	assert.True(t, rep.Categories[0].Sum.Equal(decimal.NewFromInt(800)))
	assert.Equal(t, "Vehicles", rep.Categories[1].Name)
	assert.True(t, rep.Categories[1].Sum.Equal(decimal.NewFromInt(600)))

	// Grand total equals the sum of per-category sums.
	assert.True(t, rep.TotalValuation.Equal(decimal.NewFromInt(1400)))
}

func TestTopItems(t *testing.T) {
	c := cat("Figures", nil)
	var items []item.Item
	for v := 1; v <= 15; v++ {
		items = append(items, inStock("figure", c.ID, dec(decimal.NewFromInt(int64(v)).String()), nil))
	}
	items = append(items, inStock("worthless", c.ID, dec("0"), nil))
	items = append(items, inStock("unvalued", c.ID, nil, nil))

	snap := collection.Snapshot{Categories: []category.Category{c}, Items: items}

	top := TopItems(snap, 10)

	require.Len(t, top, 10)
	assert.True(t, top[0].Valuation.Equal(decimal.NewFromInt(15)))
	for i := 1; i < len(top); i++ {
		assert.True(t, top[i-1].Valuation.GreaterThanOrEqual(*top[i].Valuation), "sorted descending")
	}
}

func TestTopItems_FewerThanLimit(t *testing.T) {
	c := cat("Figures", nil)
	snap := collection.Snapshot{
		Categories: []category.Category{c},
		Items: []item.Item{
			inStock("a", c.ID, dec("5"), nil),
			inStock("b", c.ID, dec("3"), nil),
		},
	}

	assert.Len(t, TopItems(snap, 10), 2)
}

func TestWishlist(t *testing.T) {
	c := cat("Figures", nil)
	snap := collection.Snapshot{
		Categories: []category.Category{c},
		Items: []item.Item{
			inStock("owned", c.ID, dec("100"), nil),
			outOfStock("grail", c.ID, dec("2500")),
			outOfStock("someday", c.ID, nil),
			outOfStock("cheap", c.ID, dec("10")),
		},
	}

	wishlist := Wishlist(snap)

	require.Len(t, wishlist, 3)
	for _, i := range wishlist {
		assert.Equal(t, item.StockStatusOutOfStock, i.StockStatus)
	}
	assert.Equal(t, "grail", wishlist[0].Name)
	assert.Equal(t, "cheap", wishlist[1].Name)
	assert.Equal(t, "someday", wishlist[2].Name, "missing valuation sorts as zero")
}

func TestValuation_VehiclesScenario(t *testing.T) {
	vehicles := cat("Vehicles", nil)
	snap := collection.Snapshot{
		Categories: []category.Category{vehicles},
		Items: []item.Item{
			inStock("A", vehicles.ID, dec("500"), dec("200")),
			inStock("B", vehicles.ID, dec("100"), dec("150")),
		},
	}

	rep := Valuation(snap)

	require.Len(t, rep.Groups, 1)
	group := rep.Groups[0]
	assert.Equal(t, "Vehicles", group.CategoryName)
	assert.True(t, group.TotalValuation.Equal(decimal.NewFromInt(600)))

	require.Len(t, group.Items, 2)
	// Sorted by profit percentage descending: A (150%) before B (-33.33%).
	assert.Equal(t, "A", group.Items[0].Name)
	assert.True(t, group.Items[0].Profit.Equal(decimal.NewFromInt(300)))
	assert.True(t, group.Items[0].ProfitPercent.Equal(decimal.NewFromInt(150)))

	assert.Equal(t, "B", group.Items[1].Name)
	assert.True(t, group.Items[1].Profit.Equal(decimal.NewFromInt(-50)))
	assert.True(t, group.Items[1].ProfitPercent.Equal(decimal.RequireFromString("-33.33")))
}

func TestValuation_FiltersAndGrouping(t *testing.T) {
	vehicles := cat("Vehicles", nil)
	orphanID := uuid.New()

	snap := collection.Snapshot{
		Categories: []category.Category{vehicles},
		Items: []item.Item{
			inStock("qualifies", vehicles.ID, dec("100"), dec("50")),
			inStock("no purchase price", vehicles.ID, dec("100"), nil),
			inStock("free", vehicles.ID, dec("100"), dec("0")),
			outOfStock("not held", vehicles.ID, dec("100")),
			inStock("orphan", orphanID, dec("40"), dec("20")),
		},
	}

	rep := Valuation(snap)

	require.Len(t, rep.Groups, 2)
	assert.Equal(t, "Vehicles", rep.Groups[0].CategoryName)
	assert.Equal(t, "Uncategorized", rep.Groups[1].CategoryName)
	assert.True(t, rep.TotalPurchases.Equal(decimal.NewFromInt(70)))
	assert.True(t, rep.TotalValuation.Equal(decimal.NewFromInt(140)))
	assert.True(t, rep.TotalProfit.Equal(decimal.NewFromInt(70)))
	assert.True(t, rep.ProfitPercent.Equal(decimal.NewFromInt(100)))
}

func TestDescendantIDs(t *testing.T) {
	root := cat("Root", nil)
	childA := cat("A", &root.ID)
	childB := cat("B", &root.ID)
	grandchild := cat("A1", &childA.ID)
	unrelated := cat("Other", nil)

	categories := []category.Category{root, childA, childB, grandchild, unrelated}

	ids := DescendantIDs(categories, root.ID)

	assert.ElementsMatch(t, []uuid.UUID{childA.ID, childB.ID, grandchild.ID}, ids)
	assert.Empty(t, DescendantIDs(categories, unrelated.ID))
}

func TestDescendantIDs_CyclicParentChainTerminates(t *testing.T) {
	a := cat("A", nil)
	b := cat("B", &a.ID)
	a.ParentID = &b.ID // corrupt data: A and B parent each other

	ids := DescendantIDs([]category.Category{a, b}, a.ID)

	assert.Equal(t, []uuid.UUID{b.ID}, ids)
}

func TestCategoryRollup_IncludesDescendants(t *testing.T) {
	root := cat("Vintage", nil)
	child := cat("Trilogy", &root.ID)
	grandchild := cat("Empire", &child.ID)

	snap := collection.Snapshot{
		Categories: []category.Category{root, child, grandchild},
		Items: []item.Item{
			inStock("in root", root.ID, dec("10"), nil),
			inStock("in child", child.ID, dec("20"), nil),
			outOfStock("in grandchild", grandchild.ID, dec("30")),
			inStock("unvalued", grandchild.ID, nil, nil),
		},
	}

	rollup := CategoryRollup(snap, root.ID)

	assert.Equal(t, "Vintage", rollup.Name)
	assert.Equal(t, 4, rollup.ItemCount)
	// Rollups count every item's valuation, in stock or not.
	assert.True(t, rollup.TotalValue.Equal(decimal.NewFromInt(60)))
}

func TestHomeReport(t *testing.T) {
	home := cat("Vintage Star Wars - The Original Trilogy", nil)
	sub := cat("The Original Trilogy - collection", &home.ID)
	other := cat("Modern", nil)

	snap := collection.Snapshot{
		Categories: []category.Category{home, sub, other},
		Items: []item.Item{
			inStock("direct", home.ID, dec("100"), nil),
			inStock("nested", sub.ID, dec("50"), nil),
			inStock("elsewhere", other.ID, dec("999"), nil),
		},
	}

	result := HomeReport(snap, "vintage star wars - the original trilogy", "the original trilogy - collection")

	assert.Equal(t, 2, result.Home.ItemCount)
	assert.True(t, result.Home.TotalValue.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 1, result.Subcategory.ItemCount)
	assert.True(t, result.Subcategory.TotalValue.Equal(decimal.NewFromInt(50)))
}

func TestHomeReport_MissingCategoryReportsZero(t *testing.T) {
	snap := collection.Snapshot{}

	result := HomeReport(snap, "Vintage Star Wars - The Original Trilogy", "The Original Trilogy - collection")

	assert.Equal(t, "Vintage Star Wars - The Original Trilogy", result.Home.Name)
	assert.Equal(t, 0, result.Home.ItemCount)
	assert.True(t, result.Home.TotalValue.IsZero())
	assert.True(t, result.Subcategory.TotalValue.IsZero())
}

func TestCollectionStats(t *testing.T) {
	c := cat("Figures", nil)
	snap := collection.Snapshot{
		Categories: []category.Category{c},
		Items: []item.Item{
			inStock("a", c.ID, nil, nil),
			inStock("b", c.ID, nil, nil),
			outOfStock("c", c.ID, nil),
		},
	}

	stats := CollectionStats(snap)

	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 2, stats.InStock)
	assert.Equal(t, 1, stats.Categories)
}

func TestExportValuationXLSX(t *testing.T) {
	vehicles := cat("Vehicles", nil)
	snap := collection.Snapshot{
		Categories: []category.Category{vehicles},
		Items: []item.Item{
			inStock("A", vehicles.ID, dec("500"), dec("200")),
		},
	}

	data, err := ExportValuationXLSX(Valuation(snap))

	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// XLSX files are zip archives.
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}
