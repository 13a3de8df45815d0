package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTourPrice(t *testing.T) {
	assert.InDelta(t, 239.97, TourPrice(79.99, 3), 0.001)
	assert.InDelta(t, 0, TourPrice(0, 5), 0.001)
}

func TestRentalPrice_DailyRateFromEightHours(t *testing.T) {
	assert.InDelta(t, 160.00, RentalPrice(8, 25, 80, 2), 0.001)
	assert.InDelta(t, 160.00, RentalPrice(12, 25, 80, 2), 0.001, "anything past eight hours still charges one day")
}

func TestRentalPrice_HourlyBelowEightHours(t *testing.T) {
	assert.InDelta(t, 150.00, RentalPrice(3, 25, 80, 2), 0.001)
	assert.InDelta(t, 350.00, RentalPrice(7, 25, 80, 2), 0.001)
}

func TestLessonPrice(t *testing.T) {
	assert.InDelta(t, 159.98, LessonPrice(79.99, 2), 0.001)
}
