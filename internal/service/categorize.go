package service

import (
	"sort"

	"github.com/cx-tal-miterani/flight-data-api/internal/database"
)

// Passenger categorization is pure post-filtering over an already-fetched
// set: the same boolean predicates are re-evaluated in memory, never pushed
// back into the database.

const elderlyAge = 65

var tierNames = []string{"Platinum", "Gold", "Silver", "None"}

// priorityBuckets defines the priority ordering, highest first.
var priorityBuckets = []struct {
	Name string
	Pick func(c *PassengerCategories) []database.Passenger
}{
	{"Wheelchair/Medical", func(c *PassengerCategories) []database.Passenger { return c.WheelchairRequired }},
	{"Platinum Tier", func(c *PassengerCategories) []database.Passenger { return c.ByTier["Platinum"] }},
	{"Elderly (65+)", func(c *PassengerCategories) []database.Passenger { return c.Elderly }},
	{"Gold Tier", func(c *PassengerCategories) []database.Passenger { return c.ByTier["Gold"] }},
	{"Special Needs", func(c *PassengerCategories) []database.Passenger { return c.SpecialNeeds }},
	{"Silver Tier", func(c *PassengerCategories) []database.Passenger { return c.ByTier["Silver"] }},
	{"Standard", func(c *PassengerCategories) []database.Passenger { return c.ByTier["None"] }},
}

// FamilyGroup is a set of passengers booked under one PNR.
type FamilyGroup struct {
	PNR            string               `json:"pnr"`
	PassengerCount int                  `json:"passenger_count"`
	Passengers     []database.Passenger `json:"passengers"`
}

// PrioritizedPassenger annotates a passenger with the category that placed
// them in the priority order.
type PrioritizedPassenger struct {
	database.Passenger
	PriorityCategory string `json:"priority_category"`
}

// PassengerCategories partitions a passenger set into the named categories
// the agent platform works with.
type PassengerCategories struct {
	TotalCount         int                             `json:"total_count"`
	ByTier             map[string][]database.Passenger `json:"by_tier"`
	SpecialNeeds       []database.Passenger            `json:"special_needs"`
	Elderly            []database.Passenger            `json:"elderly"`
	Families           []FamilyGroup                   `json:"families"`
	WheelchairRequired []database.Passenger            `json:"wheelchair_required"`
	PriorityOrder      []PrioritizedPassenger          `json:"priority_order"`
}

// CategorizePassengers partitions passengers by loyalty tier, special needs,
// age, wheelchair requirement and shared PNR, then builds a deduplicated
// priority ordering.
func CategorizePassengers(passengers []database.Passenger) *PassengerCategories {
	c := &PassengerCategories{
		TotalCount:         len(passengers),
		ByTier:             make(map[string][]database.Passenger, len(tierNames)),
		SpecialNeeds:       []database.Passenger{},
		Elderly:            []database.Passenger{},
		Families:           []FamilyGroup{},
		WheelchairRequired: []database.Passenger{},
		PriorityOrder:      []PrioritizedPassenger{},
	}
	for _, tier := range tierNames {
		c.ByTier[tier] = []database.Passenger{}
	}

	pnrGroups := make(map[string][]database.Passenger)

	for _, p := range passengers {
		tier := p.LoyaltyTier
		if _, known := c.ByTier[tier]; !known {
			tier = "None"
		}
		c.ByTier[tier] = append(c.ByTier[tier], p)

		if len(p.SpecialNeeds) > 0 {
			c.SpecialNeeds = append(c.SpecialNeeds, p)
		}
		if p.Age >= elderlyAge {
			c.Elderly = append(c.Elderly, p)
		}
		if p.WheelchairRequired {
			c.WheelchairRequired = append(c.WheelchairRequired, p)
		}
		if p.PNR != "" {
			pnrGroups[p.PNR] = append(pnrGroups[p.PNR], p)
		}
	}

	pnrs := make([]string, 0, len(pnrGroups))
	for pnr, group := range pnrGroups {
		if len(group) >= 2 {
			pnrs = append(pnrs, pnr)
		}
	}
	sort.Strings(pnrs)
	for _, pnr := range pnrs {
		group := pnrGroups[pnr]
		c.Families = append(c.Families, FamilyGroup{
			PNR:            pnr,
			PassengerCount: len(group),
			Passengers:     group,
		})
	}

	seen := make(map[string]bool, len(passengers))
	for _, bucket := range priorityBuckets {
		for _, p := range bucket.Pick(c) {
			if seen[p.PassengerID] {
				continue
			}
			seen[p.PassengerID] = true
			c.PriorityOrder = append(c.PriorityOrder, PrioritizedPassenger{
				Passenger:        p,
				PriorityCategory: bucket.Name,
			})
		}
	}

	return c
}
