package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "hours and minutes", input: "09:30", want: "09:30"},
		{name: "postgres time", input: "17:00:00", want: "17:00"},
		{name: "end of day", input: "24:00", want: "24:00"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "past end of day", input: "24:30", wantErr: ErrTimeOutOfRange},
		{name: "bad minutes", input: "10:61", wantErr: ErrTimeOutOfRange},
		{name: "single digit hour", input: "9:30", wantErr: ErrInvalidTimeString},
		{name: "garbage", input: "noon", wantErr: ErrInvalidTimeString},
		{name: "empty", input: "", wantErr: ErrInvalidTimeString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_Compare(t *testing.T) {
	nine := MustTimeString("09:00")
	ten := MustTimeString("10:00")

	assert.True(t, nine.IsBefore(ten))
	assert.True(t, ten.IsAfter(nine))
	assert.False(t, nine.IsBefore(nine))
	assert.True(t, nine.Equal(MustTimeString("09:00:00")))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := MustTimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "24:00", got.String())

	_, err = MustTimeString("23:30").AddMinutes(31)
	require.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_On(t *testing.T) {
	date := time.Date(2025, 10, 13, 15, 45, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 10, 13, 9, 15, 0, 0, time.UTC), MustTimeString("09:15").On(date))
	assert.Equal(t, time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), MustTimeString("24:00").On(date))
}

func TestTimeString_JSON(t *testing.T) {
	type payload struct {
		Start TimeString `json:"start"`
	}

	data, err := json.Marshal(payload{Start: MustTimeString("08:05")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"08:05"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"start":"18:45"}`), &decoded))
	assert.Equal(t, 18*60+45, decoded.Start.Minutes())

	require.Error(t, json.Unmarshal([]byte(`{"start":"25:00"}`), &decoded))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("11:20:00")))
	assert.Equal(t, "11:20", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	require.Error(t, ts.Scan(42))
}
