package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

var testDay = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

func at(t *testing.T, day time.Time, hhmm string) time.Time {
	t.Helper()
	ts, err := types.NewTimeStringFromString(hhmm)
	require.NoError(t, err)
	moment, err := ts.OnDate(day, time.UTC)
	require.NoError(t, err)
	return moment
}

func booking(t *testing.T, id, start, end string) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ID:      id,
		RoomID:  "room-1",
		StartAt: at(t, testDay, start),
		EndAt:   at(t, testDay, end),
	}
}

func request(start, end string) domain.AvailabilityRequest {
	return domain.AvailabilityRequest{
		RoomID:    "room-1",
		Date:      testDay,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func slotPairs(slots []domain.SuggestedSlot) [][2]string {
	pairs := make([][2]string, 0, len(slots))
	for _, s := range slots {
		pairs = append(pairs, [2]string{s.StartTime.String(), s.EndTime.String()})
	}
	return pairs
}

func TestCheckAvailability_IncompleteRequestIsAvailable(t *testing.T) {
	engine := NewEngine(time.UTC)
	bookings := []*domain.Booking{booking(t, "b1", "10:00", "11:00")}

	tests := []struct {
		name string
		req  domain.AvailabilityRequest
	}{
		{name: "no room", req: domain.AvailabilityRequest{Date: testDay, StartTime: "10:00", EndTime: "11:00"}},
		{name: "no date", req: domain.AvailabilityRequest{RoomID: "room-1", StartTime: "10:00", EndTime: "11:00"}},
		{name: "no start", req: domain.AvailabilityRequest{RoomID: "room-1", Date: testDay, EndTime: "11:00"}},
		{name: "no end", req: domain.AvailabilityRequest{RoomID: "room-1", Date: testDay, StartTime: "10:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.CheckAvailability(tt.req, bookings)
			require.NoError(t, err)
			assert.True(t, result.Available)
			assert.Empty(t, result.ConflictingBookings)
			assert.Empty(t, result.SuggestedSlots)
		})
	}
}

func TestCheckAvailability_EmptyDayIsAvailable(t *testing.T) {
	result, err := NewEngine(time.UTC).CheckAvailability(request("10:00", "11:00"), nil)

	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.NotNil(t, result.ConflictingBookings)
	assert.Empty(t, result.ConflictingBookings)
	assert.NotNil(t, result.SuggestedSlots)
	assert.Empty(t, result.SuggestedSlots)
}

func TestCheckAvailability_OverlapSuggestsSameDuration(t *testing.T) {
	existing := booking(t, "b1", "10:00", "11:00")

	result, err := NewEngine(time.UTC).CheckAvailability(request("10:30", "11:30"), []*domain.Booking{existing})
	require.NoError(t, err)

	assert.False(t, result.Available)
	require.Len(t, result.ConflictingBookings, 1)
	assert.Equal(t, "b1", result.ConflictingBookings[0].ID)

	assert.Equal(t, [][2]string{
		{"08:00", "09:00"},
		{"08:30", "09:30"},
		{"09:00", "10:00"},
		{"11:00", "12:00"},
		{"11:30", "12:30"},
		{"12:00", "13:00"},
	}, slotPairs(result.SuggestedSlots))

	busy := TimeInterval{Start: 600, End: 660}
	for _, s := range result.SuggestedSlots {
		interval, err := NewTimeInterval(s.StartTime, s.EndTime)
		require.NoError(t, err)
		assert.False(t, interval.Overlaps(busy), "slot %s-%s overlaps the existing booking", s.StartTime, s.EndTime)
		assert.True(t, s.Available)
		assert.False(t, s.IsFallback())
	}
}

func TestCheckAvailability_TouchingEndpointsDoNotConflict(t *testing.T) {
	engine := NewEngine(time.UTC)
	bookings := []*domain.Booking{
		booking(t, "b1", "09:00", "10:00"),
		booking(t, "b2", "10:00", "11:00"),
	}

	result, err := engine.CheckAvailability(request("09:00", "10:00"), bookings)
	require.NoError(t, err)
	assert.False(t, result.Available)
	require.Len(t, result.ConflictingBookings, 1)
	assert.Equal(t, "b1", result.ConflictingBookings[0].ID)

	result, err = engine.CheckAvailability(request("11:00", "12:00"), bookings)
	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.Empty(t, result.SuggestedSlots)

	result, err = engine.CheckAvailability(request("08:00", "09:00"), bookings)
	require.NoError(t, err)
	assert.True(t, result.Available)
}

func TestCheckAvailability_ExcludedBookingIgnored(t *testing.T) {
	engine := NewEngine(time.UTC)
	bookings := []*domain.Booking{booking(t, "b1", "10:00", "11:00")}

	req := request("10:00", "11:00")
	req.ExcludeBookingID = "b1"

	result, err := engine.CheckAvailability(req, bookings)
	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.Empty(t, result.ConflictingBookings)
	assert.Len(t, bookings, 1, "input must not be mutated")
}

func TestCheckAvailability_ExcludedBookingNotUsedForSuggestions(t *testing.T) {
	bookings := []*domain.Booking{
		booking(t, "self", "08:00", "09:00"),
		booking(t, "other", "10:00", "11:00"),
	}

	req := request("10:00", "11:00")
	req.ExcludeBookingID = "self"

	result, err := NewEngine(time.UTC).CheckAvailability(req, bookings)
	require.NoError(t, err)
	assert.False(t, result.Available)
	require.NotEmpty(t, result.SuggestedSlots)
	assert.Equal(t, [2]string{"08:00", "09:00"}, slotPairs(result.SuggestedSlots)[0])
}

func TestCheckAvailability_ConflictsKeepInputOrder(t *testing.T) {
	bookings := []*domain.Booking{
		booking(t, "late", "14:00", "15:00"),
		booking(t, "early", "10:00", "11:00"),
		booking(t, "outside", "16:00", "17:00"),
	}

	result, err := NewEngine(time.UTC).CheckAvailability(request("09:00", "16:00"), bookings)
	require.NoError(t, err)

	require.Len(t, result.ConflictingBookings, 2)
	assert.Equal(t, "late", result.ConflictingBookings[0].ID)
	assert.Equal(t, "early", result.ConflictingBookings[1].ID)
}

func TestCheckAvailability_FullyBookedFallsBackToTomorrow(t *testing.T) {
	bookings := []*domain.Booking{booking(t, "all-day", "08:00", "18:00")}

	result, err := NewEngine(time.UTC).CheckAvailability(request("13:00", "14:00"), bookings)
	require.NoError(t, err)

	assert.False(t, result.Available)
	require.Len(t, result.SuggestedSlots, 1)

	fallback := result.SuggestedSlots[0]
	assert.Equal(t, types.TimeString("13:00"), fallback.StartTime)
	assert.Equal(t, types.TimeString("14:00"), fallback.EndTime)
	assert.True(t, fallback.Available)
	require.NotNil(t, fallback.Reason)
	assert.Equal(t, "available tomorrow (2026-10-21)", *fallback.Reason)
}

func TestCheckAvailability_MalformedTimeFailsClosed(t *testing.T) {
	engine := NewEngine(time.UTC)

	_, err := engine.CheckAvailability(request("9:00", "10:00"), nil)
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = engine.CheckAvailability(request("10:00", "25:00"), nil)
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = engine.CheckAvailability(request("11:00", "10:00"), nil)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = engine.CheckAvailability(request("10:00", "10:00"), nil)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCheckAvailability_Idempotent(t *testing.T) {
	engine := NewEngine(time.UTC)
	bookings := []*domain.Booking{
		booking(t, "b1", "09:00", "10:00"),
		booking(t, "b2", "13:00", "15:00"),
	}
	req := request("09:30", "10:30")

	first, err := engine.CheckAvailability(req, bookings)
	require.NoError(t, err)
	second, err := engine.CheckAvailability(req, bookings)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCheckAvailability_BookingFromPreviousDayIsClamped(t *testing.T) {
	overnight := &domain.Booking{
		ID:      "overnight",
		StartAt: at(t, testDay.AddDate(0, 0, -1), "22:00"),
		EndAt:   at(t, testDay, "09:00"),
	}

	result, err := NewEngine(time.UTC).CheckAvailability(request("08:00", "09:00"), []*domain.Booking{overnight})
	require.NoError(t, err)

	assert.False(t, result.Available)
	require.NotEmpty(t, result.SuggestedSlots)
	assert.Equal(t, [2]string{"09:00", "10:00"}, slotPairs(result.SuggestedSlots)[0])
}

func TestGenerateSuggestedSlots(t *testing.T) {
	engine := NewEngine(time.UTC)

	tests := []struct {
		name     string
		bookings []*domain.Booking
		start    string
		end      string
		want     [][2]string
	}{
		{
			name:     "tail only fills up to six",
			bookings: []*domain.Booking{booking(t, "b1", "08:00", "09:00")},
			start:    "08:00",
			end:      "08:30",
			want: [][2]string{
				{"09:00", "09:30"}, {"09:30", "10:00"}, {"10:00", "10:30"},
				{"10:30", "11:00"}, {"11:00", "11:30"}, {"11:30", "12:00"},
			},
		},
		{
			name:     "gap capped at three then tail",
			bookings: []*domain.Booking{booking(t, "b1", "16:00", "17:00")},
			start:    "16:00",
			end:      "16:30",
			want: [][2]string{
				{"08:00", "08:30"}, {"08:30", "09:00"}, {"09:00", "09:30"},
				{"17:00", "17:30"}, {"17:30", "18:00"},
			},
		},
		{
			name: "several gaps in chronological order",
			bookings: []*domain.Booking{
				booking(t, "b2", "12:00", "13:00"),
				booking(t, "b1", "09:00", "11:00"),
			},
			start: "09:00",
			end:   "10:00",
			want: [][2]string{
				{"08:00", "09:00"},
				{"11:00", "12:00"},
				{"13:00", "14:00"}, {"13:30", "14:30"}, {"14:00", "15:00"}, {"14:30", "15:30"},
			},
		},
		{
			name:     "slot never crosses working hours end",
			bookings: []*domain.Booking{booking(t, "b1", "08:00", "16:00")},
			start:    "09:00",
			end:      "11:00",
			want:     [][2]string{{"16:00", "18:00"}},
		},
		{
			name:     "booking after working hours",
			bookings: []*domain.Booking{booking(t, "b1", "19:00", "20:00")},
			start:    "19:00",
			end:      "19:30",
			want:     [][2]string{{"08:00", "08:30"}, {"08:30", "09:00"}, {"09:00", "09:30"}},
		},
		{
			name: "overlapping bookings merge",
			bookings: []*domain.Booking{
				booking(t, "b1", "08:00", "12:00"),
				booking(t, "b2", "09:00", "10:00"),
				booking(t, "b3", "11:00", "17:00"),
			},
			start: "08:00",
			end:   "09:00",
			want:  [][2]string{{"17:00", "18:00"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := engine.GenerateSuggestedSlots(tt.bookings, testDay, types.TimeString(tt.start), types.TimeString(tt.end))
			require.NoError(t, err)
			assert.Equal(t, tt.want, slotPairs(slots))
		})
	}
}

func TestGenerateSuggestedSlots_Bounds(t *testing.T) {
	engine := NewEngine(time.UTC)

	layouts := [][]*domain.Booking{
		nil,
		{booking(t, "b1", "10:00", "11:00")},
		{booking(t, "b1", "08:30", "09:15"), booking(t, "b2", "12:10", "12:50"), booking(t, "b3", "17:00", "17:30")},
		{booking(t, "b1", "07:00", "08:30"), booking(t, "b2", "17:45", "19:00")},
	}
	requests := [][2]string{{"08:00", "08:30"}, {"10:15", "11:00"}, {"09:00", "12:00"}, {"08:00", "17:00"}}

	for _, bookings := range layouts {
		for _, r := range requests {
			req, err := NewTimeInterval(types.TimeString(r[0]), types.TimeString(r[1]))
			require.NoError(t, err)

			slots, err := engine.GenerateSuggestedSlots(bookings, testDay, types.TimeString(r[0]), types.TimeString(r[1]))
			require.NoError(t, err)
			require.NotEmpty(t, slots)
			assert.LessOrEqual(t, len(slots), domain.MaxSuggestions)

			for _, s := range slots {
				if s.IsFallback() {
					continue
				}
				interval, err := NewTimeInterval(s.StartTime, s.EndTime)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, interval.Start, 8*60)
				assert.LessOrEqual(t, interval.End, 18*60)
				assert.Equal(t, req.Duration(), interval.Duration())
			}
		}
	}
}

func TestGenerateSuggestedSlots_FallbackCrossesMonth(t *testing.T) {
	lastDay := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)
	bookings := []*domain.Booking{{
		ID:      "b1",
		StartAt: at(t, lastDay, "08:00"),
		EndAt:   at(t, lastDay, "18:00"),
	}}

	slots, err := NewEngine(time.UTC).GenerateSuggestedSlots(bookings, lastDay, "09:00", "10:00")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	require.NotNil(t, slots[0].Reason)
	assert.Equal(t, "available tomorrow (2026-11-01)", *slots[0].Reason)
}

func TestOccupiedSlots(t *testing.T) {
	bookings := []*domain.Booking{
		booking(t, "b2", "14:00", "15:30"),
		booking(t, "b1", "09:00", "10:00"),
	}

	slots := NewEngine(time.UTC).OccupiedSlots(bookings)

	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("14:00"), slots[0].Start)
	assert.Equal(t, types.TimeString("15:30"), slots[0].End)
	assert.Same(t, bookings[0], slots[0].Booking)
	assert.Equal(t, types.TimeString("09:00"), slots[1].Start)
	assert.Empty(t, NewEngine(time.UTC).OccupiedSlots(nil))
}

func TestOccupiedSlots_UsesEngineLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	b := booking(t, "b1", "07:00", "08:00")

	slots := NewEngine(loc).OccupiedSlots([]*domain.Booking{b})

	require.Len(t, slots, 1)
	assert.Equal(t, types.TimeString("10:00"), slots[0].Start)
	assert.Equal(t, types.TimeString("11:00"), slots[0].End)
}

func TestTimeInterval_Overlaps(t *testing.T) {
	base := TimeInterval{Start: 600, End: 660}

	assert.True(t, base.Overlaps(TimeInterval{Start: 630, End: 690}))
	assert.True(t, base.Overlaps(TimeInterval{Start: 540, End: 720}))
	assert.False(t, base.Overlaps(TimeInterval{Start: 660, End: 720}))
	assert.False(t, base.Overlaps(TimeInterval{Start: 540, End: 600}))
}
