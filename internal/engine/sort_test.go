package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, OrderEarliest, ParseOrder("earliest"))
	assert.Equal(t, OrderLatest, ParseOrder(" LATEST "))
	assert.Equal(t, OrderLongest, ParseOrder("open-longest"))
	assert.Equal(t, OrderLocation, ParseOrder("location-name"))
	assert.Equal(t, OrderLocation, ParseOrder(""))
	assert.Equal(t, OrderLocation, ParseOrder("bogus"))
}

func sortFixture() []Result {
	return []Result{
		{CourseTitle: "Zumba", Location: "Centre B", StartTime: "10:00", EndTime: "11:00", Duration: 60},
		{CourseTitle: "Aquafit", Location: "Centre A", StartTime: "12:00", EndTime: "13:30", Duration: 90},
		{CourseTitle: "Lane Swim", Location: "Centre A", StartTime: "07:00", EndTime: "09:00", Duration: 120},
		{CourseTitle: "Basketball", Location: "Centre C", StartTime: "07:00", EndTime: "08:00", Duration: 60},
	}
}

func TestSortOrders(t *testing.T) {
	t.Parallel()

	titlesAfter := func(order Order) []string {
		results := sortFixture()
		Sort(results, order)
		out := make([]string, len(results))
		for i, r := range results {
			out[i] = r.CourseTitle
		}
		return out
	}

	t.Run("by location name", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"Aquafit", "Lane Swim", "Zumba", "Basketball"}, titlesAfter(OrderLocation))
	})

	t.Run("earliest start first", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"Lane Swim", "Basketball", "Zumba", "Aquafit"}, titlesAfter(OrderEarliest))
	})

	t.Run("latest end first", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"Aquafit", "Zumba", "Lane Swim", "Basketball"}, titlesAfter(OrderLatest))
	})

	t.Run("longest duration first", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"Lane Swim", "Aquafit", "Zumba", "Basketball"}, titlesAfter(OrderLongest))
	})
}

func TestSortTieBreakIsTotal(t *testing.T) {
	t.Parallel()

	results := []Result{
		{CourseTitle: "B", Location: "Same", StartTime: "10:00", EndTime: "11:00"},
		{CourseTitle: "A", Location: "Same", StartTime: "10:00", EndTime: "11:00"},
	}
	Sort(results, OrderEarliest)
	assert.Equal(t, "A", results[0].CourseTitle)
	assert.Equal(t, "B", results[1].CourseTitle)
}
