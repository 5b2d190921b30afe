package entities

import (
	"errors"
	"fmt"
)

// Category groups the selectable options of a service line.
type Category string

const (
	CategorySoundSystem     Category = "SOUND SYSTEM"
	CategoryAVR             Category = "AVR"
	CategoryProjector       Category = "PROJECTOR"
	CategoryProjectorScreen Category = "PROJECTOR SCREEN"
	CategoryAcoustics       Category = "ACOUSTICS"
	CategoryFlooringStage   Category = "FLOORING & STAGE"
	CategoryFalseCeiling    Category = "FALSE CEILING"
	CategorySeating         Category = "SEATING"
	CategoryAccessories     Category = "ACCESSORIES"
)

// OptionLabel is one line item inside a Category.
type OptionLabel string

const DefaultCurrency = "₹"

var (
	ErrDuplicateCategory = errors.New("duplicate catalog category")
	ErrDuplicateOption   = errors.New("duplicate catalog option")
	ErrNegativePrice     = errors.New("negative catalog price")
)

type CatalogOption struct {
	Label OptionLabel
	Price int64
}

type CatalogCategory struct {
	Name    Category
	Options []CatalogOption
}

// PriceCatalog is an immutable, ordered Category -> OptionLabel -> price map.
//
// Declaration order is kept because quote summaries and the catalog endpoint
// list categories and options the way they were declared.
type PriceCatalog struct {
	currency   string
	categories []CatalogCategory
	index      map[Category]map[OptionLabel]int64
}

func NewPriceCatalog(currency string, categories []CatalogCategory) (*PriceCatalog, error) {
	c := &PriceCatalog{
		currency:   currency,
		categories: make([]CatalogCategory, 0, len(categories)),
		index:      make(map[Category]map[OptionLabel]int64, len(categories)),
	}
	for _, cat := range categories {
		if _, ok := c.index[cat.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, cat.Name)
		}
		prices := make(map[OptionLabel]int64, len(cat.Options))
		opts := make([]CatalogOption, 0, len(cat.Options))
		for _, opt := range cat.Options {
			if _, ok := prices[opt.Label]; ok {
				return nil, fmt.Errorf("%w: %s / %s", ErrDuplicateOption, cat.Name, opt.Label)
			}
			if opt.Price < 0 {
				return nil, fmt.Errorf("%w: %s / %s", ErrNegativePrice, cat.Name, opt.Label)
			}
			prices[opt.Label] = opt.Price
			opts = append(opts, opt)
		}
		c.index[cat.Name] = prices
		c.categories = append(c.categories, CatalogCategory{Name: cat.Name, Options: opts})
	}
	return c, nil
}

func MustPriceCatalog(currency string, categories []CatalogCategory) *PriceCatalog {
	c, err := NewPriceCatalog(currency, categories)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *PriceCatalog) Currency() string {
	return c.currency
}

// Categories returns a copy of the catalog in declaration order.
func (c *PriceCatalog) Categories() []CatalogCategory {
	out := make([]CatalogCategory, len(c.categories))
	for i, cat := range c.categories {
		out[i] = CatalogCategory{Name: cat.Name, Options: append([]CatalogOption(nil), cat.Options...)}
	}
	return out
}

// HasCategory reports whether cat is declared in the catalog.
func (c *PriceCatalog) HasCategory(cat Category) bool {
	_, ok := c.index[cat]
	return ok
}

// Price is the single lookup used for every price read.
func (c *PriceCatalog) Price(cat Category, opt OptionLabel) (int64, bool) {
	prices, ok := c.index[cat]
	if !ok {
		return 0, false
	}
	p, ok := prices[opt]
	return p, ok
}

// Total sums the catalog price of every non-empty selection. Pairs that are
// not in the catalog contribute zero.
func (c *PriceCatalog) Total(s SelectionSet) int64 {
	var total int64
	for cat, opt := range s {
		if opt == "" {
			continue
		}
		if p, ok := c.Price(cat, opt); ok {
			total += p
		}
	}
	return total
}

var defaultCatalog = MustPriceCatalog(DefaultCurrency, []CatalogCategory{
	{Name: CategorySoundSystem, Options: []CatalogOption{
		{Label: "POLK MONITOR 7.1.4", Price: 330000},
		{Label: "POLK SIGNATURE ELITE 7.1.4", Price: 470000},
		{Label: "DEFINITIVE TECHNOLOGY", Price: 670000},
	}},
	{Name: CategoryAVR, Options: []CatalogOption{
		{Label: "DENON 6800 (Recommended)", Price: 330000},
		{Label: "MARANTZ CINEMA 50", Price: 220000},
	}},
	{Name: CategoryProjector, Options: []CatalogOption{
		{Label: "ViewSonic X100-4K Projector", Price: 230000},
		{Label: "Optoma UHD 50", Price: 220000},
	}},
	{Name: CategoryProjectorScreen, Options: []CatalogOption{
		{Label: `4k woven Acoustic Transparent Fabric Sound Max - 150"`, Price: 66000},
		{Label: `4k woven Grey Acoustic Transparent Fabric Sound Max - 150"`, Price: 78000},
	}},
	{Name: CategoryAcoustics, Options: []CatalogOption{
		{Label: "Acoustics @ 400/sq. ft", Price: 478400},
		{Label: "Acoustics @ 460/sq. ft", Price: 550160},
		{Label: "Acoustics @ 580/sq. ft", Price: 693680},
		{Label: "Acoustics @ 680/sq. ft", Price: 813280},
	}},
	{Name: CategoryFlooringStage, Options: []CatalogOption{
		{Label: "Chips Flooring", Price: 350000},
	}},
	{Name: CategoryFalseCeiling, Options: []CatalogOption{
		{Label: "Gypsum False Ceiling", Price: 85000},
	}},
	{Name: CategorySeating, Options: []CatalogOption{
		{Label: "Recliner Single Seater (RRR)", Price: 23000},
		{Label: "Recliner Single Seater (Powered)", Price: 27000},
		{Label: "Recliner Two Seater (Powered)", Price: 53000},
		{Label: `Sofa Cum Bed (48"x66")`, Price: 39000},
	}},
	{Name: CategoryAccessories, Options: []CatalogOption{
		{Label: "Speaker Cabling", Price: 80000},
	}},
})

// DefaultCatalog returns the home-theater price list shipped with the service.
func DefaultCatalog() *PriceCatalog {
	return defaultCatalog
}
