package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cx-tal-miterani/flight-data-api/internal/database"
)

func TestCategorizePassengers_Empty(t *testing.T) {
	c := CategorizePassengers(nil)

	assert.Equal(t, 0, c.TotalCount)
	assert.Empty(t, c.ByTier["Platinum"])
	assert.Empty(t, c.SpecialNeeds)
	assert.Empty(t, c.Elderly)
	assert.Empty(t, c.Families)
	assert.Empty(t, c.WheelchairRequired)
	assert.Empty(t, c.PriorityOrder)
}

func TestCategorizePassengers_Buckets(t *testing.T) {
	passengers := []database.Passenger{
		{PassengerID: "P1", Name: "Asha", Age: 70, PNR: "ABC123", LoyaltyTier: "Gold"},
		{PassengerID: "P2", Name: "Ravi", Age: 34, PNR: "ABC123", LoyaltyTier: "None"},
		{PassengerID: "P3", Name: "Meera", Age: 29, PNR: "XYZ999", LoyaltyTier: "Platinum", WheelchairRequired: true},
		{PassengerID: "P4", Name: "John", Age: 45, PNR: "QQQ111", LoyaltyTier: "Bronze", SpecialNeeds: []string{"vegetarian meal"}},
	}

	c := CategorizePassengers(passengers)

	assert.Equal(t, 4, c.TotalCount)
	assert.Len(t, c.ByTier["Gold"], 1)
	assert.Len(t, c.ByTier["Platinum"], 1)
	// Unknown tiers fold into None.
	assert.Len(t, c.ByTier["None"], 2)

	require.Len(t, c.Elderly, 1)
	assert.Equal(t, "P1", c.Elderly[0].PassengerID)

	require.Len(t, c.WheelchairRequired, 1)
	assert.Equal(t, "P3", c.WheelchairRequired[0].PassengerID)

	require.Len(t, c.SpecialNeeds, 1)
	assert.Equal(t, "P4", c.SpecialNeeds[0].PassengerID)

	require.Len(t, c.Families, 1)
	assert.Equal(t, "ABC123", c.Families[0].PNR)
	assert.Equal(t, 2, c.Families[0].PassengerCount)
}

func TestCategorizePassengers_PriorityOrder(t *testing.T) {
	passengers := []database.Passenger{
		{PassengerID: "P1", Age: 30, LoyaltyTier: "Silver"},
		{PassengerID: "P2", Age: 80, LoyaltyTier: "Gold"},
		{PassengerID: "P3", Age: 25, LoyaltyTier: "Platinum", WheelchairRequired: true},
		{PassengerID: "P4", Age: 40, LoyaltyTier: "None"},
	}

	c := CategorizePassengers(passengers)

	require.Len(t, c.PriorityOrder, 4)
	assert.Equal(t, "P3", c.PriorityOrder[0].PassengerID)
	assert.Equal(t, "Wheelchair/Medical", c.PriorityOrder[0].PriorityCategory)
	assert.Equal(t, "P2", c.PriorityOrder[1].PassengerID)
	assert.Equal(t, "Elderly (65+)", c.PriorityOrder[1].PriorityCategory)
	assert.Equal(t, "P1", c.PriorityOrder[2].PassengerID)
	assert.Equal(t, "Silver Tier", c.PriorityOrder[2].PriorityCategory)
	assert.Equal(t, "P4", c.PriorityOrder[3].PassengerID)
	assert.Equal(t, "Standard", c.PriorityOrder[3].PriorityCategory)
}

func TestCategorizePassengers_PriorityOrderDeduplicates(t *testing.T) {
	// A passenger matching several categories appears once, under the
	// highest one.
	passengers := []database.Passenger{
		{PassengerID: "P1", Age: 70, LoyaltyTier: "Platinum", WheelchairRequired: true, SpecialNeeds: []string{"oxygen"}},
	}

	c := CategorizePassengers(passengers)

	require.Len(t, c.PriorityOrder, 1)
	assert.Equal(t, "Wheelchair/Medical", c.PriorityOrder[0].PriorityCategory)
}

func TestCategorizeCrew(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	crew := []database.Crew{
		{CrewID: "C1", Role: "Pilot", CurrentStatus: "AVAILABLE", DutyHoursLast7d: 20, NextLegalAvailability: now.Add(-time.Hour)},
		{CrewID: "C2", Role: "Cabin Crew", CurrentStatus: "RESTING", DutyHoursLast7d: 48, NextLegalAvailability: now.Add(6 * time.Hour)},
		{CrewID: "C3", Role: "Co-Pilot", CurrentStatus: "STANDBY_AIRPORT", DutyHoursLast7d: 35, NextLegalAvailability: now},
	}

	c := CategorizeCrew(crew, now)

	assert.Len(t, c.ByRole["Pilot"], 1)
	assert.Len(t, c.ByRole["Co-Pilot"], 1)
	assert.Len(t, c.ByRole["Cabin Crew"], 1)

	assert.Len(t, c.ByStatus["AVAILABLE"], 1)
	assert.Len(t, c.ByStatus["RESTING"], 1)
	assert.Len(t, c.ByStatus["STANDBY_AIRPORT"], 1)

	require.Len(t, c.LowDutyHours, 1)
	assert.Equal(t, "C1", c.LowDutyHours[0].CrewID)
	require.Len(t, c.HighDutyHours, 1)
	assert.Equal(t, "C2", c.HighDutyHours[0].CrewID)

	// C1 and C3 are legally available at the reference time, C2 is not.
	require.Len(t, c.AvailableNow, 2)
	assert.Equal(t, "C1", c.AvailableNow[0].CrewID)
	assert.Equal(t, "C3", c.AvailableNow[1].CrewID)
}
