//go:build unit
// +build unit

package core

import (
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
)

func TestCountsString(t *testing.T) {
	tests := []struct {
		name   string
		counts Counts
		want   string
	}{
		{
			name:   "empty",
			counts: Counts{},
			want:   "{}",
		},
		{
			name:   "bell pair",
			counts: Counts{"00": 510, "11": 490},
			want:   `{"00":510,"11":490}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.counts.String())
		})
	}
}

func TestCountsTotalAndOutcomes(t *testing.T) {
	c := Counts{"11": 3, "00": 5, "01": 2}
	assert.Equal(t, uint32(10), c.Total())
	assert.Equal(t, []string{"00", "01", "11"}, c.Outcomes())
}

func TestToStatus(t *testing.T) {
	tests := []struct {
		in        string
		want      Status
		wantError bool
	}{
		{in: "submitted", want: SUBMITTED},
		{in: "pending", want: QUEUED},
		{in: "queued", want: QUEUED},
		{in: "running", want: RUNNING},
		{in: "succeeded", want: SUCCEEDED},
		{in: "failed", want: FAILED},
		{in: "canceled", want: CANCELLED},
		{in: "exploded", wantError: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ToStatus(tt.in)
			if tt.wantError {
				assert.NotNil(t, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, SUBMITTED.IsTerminal())
	assert.False(t, QUEUED.IsTerminal())
	assert.False(t, RUNNING.IsTerminal())
	assert.True(t, SUCCEEDED.IsTerminal())
	assert.True(t, FAILED.IsTerminal())
	assert.True(t, CANCELLED.IsTerminal())
	assert.Equal(t, "unknown", Status(100).String())
}

func TestJobDataClone(t *testing.T) {
	jd := NewJobData("job-1", 100)
	jd.Polls = 3
	jd.Finish(SUCCEEDED, "done")

	c := jd.Clone()
	assert.Equal(t, jd.ID, c.ID)
	assert.Equal(t, jd.Status, c.Status)
	assert.Equal(t, jd.Polls, c.Polls)
	assert.Equal(t, jd.Message, c.Message)
	assert.True(t, time.Time(jd.Created).Equal(time.Time(c.Created)))
	assert.True(t, time.Time(jd.Ended).Equal(time.Time(c.Ended)))

	c.Created = strfmt.DateTime(time.Time{})
	assert.False(t, time.Time(jd.Created).IsZero())
	assert.GreaterOrEqual(t, jd.Elapsed(), time.Duration(0))
}
