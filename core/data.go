package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-openapi/strfmt"
	jsoniter "github.com/json-iterator/go"
	"github.com/mohae/deepcopy"
	"go.uber.org/zap"
)

type Status int // Status of a job known to the remote hardware service.
type Counts map[string]uint32

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

func (c Counts) String() string {
	st, err := jsonIter.Marshal(c)
	if err != nil {
		zap.L().Error("Failed to marshal core.Counts")
		return ""
	}
	return string(st)
}

func (c Counts) Total() uint32 {
	var total uint32
	for _, v := range c {
		total += v
	}
	return total
}

// Outcomes returns the observed outcomes in ascending order.
func (c Counts) Outcomes() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

const (
	SUBMITTED Status = iota // Accepted by the remote service.
	QUEUED                  // Waiting for the device.
	RUNNING                 // Being processed on the device.
	SUCCEEDED               // Finished successfully.
	FAILED                  // Finished with failure.
	CANCELLED               // Finished with cancellation.
)

func ToStatus(s string) (Status, error) {
	switch s {
	case "submitted":
		return SUBMITTED, nil
	case "queued", "pending":
		return QUEUED, nil
	case "running":
		return RUNNING, nil
	case "succeeded":
		return SUCCEEDED, nil
	case "failed":
		return FAILED, nil
	case "cancelled", "canceled":
		return CANCELLED, nil
	default:
		return 0, fmt.Errorf("unknown status: %s", s)
	}
}

func (s Status) String() string {
	switch s {
	case SUBMITTED:
		return "submitted"
	case QUEUED:
		return "queued"
	case RUNNING:
		return "running"
	case SUCCEEDED:
		return "succeeded"
	case FAILED:
		return "failed"
	case CANCELLED:
		return "cancelled"
	default:
		return "unknown"
	}
}

func (s Status) IsTerminal() bool {
	return s == SUCCEEDED || s == FAILED || s == CANCELLED
}

// JobData is the record of one remote job.
type JobData struct {
	ID      string
	Status  Status
	Shots   int
	Polls   int
	Created strfmt.DateTime
	Ended   strfmt.DateTime
	Message string
}

func NewJobData(id string, shots int) *JobData {
	return &JobData{
		ID:      id,
		Status:  SUBMITTED,
		Shots:   shots,
		Created: strfmt.DateTime(time.Now()),
	}
}

func (jd *JobData) Clone() *JobData {
	c := deepcopy.Copy(jd).(*JobData)
	c.Created = *jd.Created.DeepCopy()
	c.Ended = *jd.Ended.DeepCopy()
	return c
}

func (jd *JobData) Finish(st Status, message string) {
	jd.Status = st
	jd.Message = message
	jd.Ended = strfmt.DateTime(time.Now())
}

func (jd *JobData) Elapsed() time.Duration {
	return time.Time(jd.Ended).Sub(time.Time(jd.Created))
}
