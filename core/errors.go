package core

import (
	"fmt"

	"github.com/go-faster/errors"
)

var (
	ErrUnknownOperation          = errors.New("unknown operation")
	ErrUnimplementedOperation    = errors.New("unimplemented operation")
	ErrUnclassifiableInstruction = errors.New("unclassifiable instruction")
	ErrUnsupportedMeasurement    = errors.New("unsupported measurement")
	ErrObservableWithoutMatrix   = errors.New("observable has no matrix representation")
	ErrPollTimeout               = errors.New("remote job polling timed out")
	ErrShotMismatch              = errors.New("outcome count does not match shots")
)

// RemoteExecutionError reports a remote job that ended without a result.
type RemoteExecutionError struct {
	JobID   string
	Status  Status
	Message string
}

func (e *RemoteExecutionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote job %s ended with status %s", e.JobID, e.Status)
	}
	return fmt.Sprintf("remote job %s ended with status %s/reason:%s", e.JobID, e.Status, e.Message)
}

// IsRemoteFailure reports whether err comes from the remote execution path.
func IsRemoteFailure(err error) bool {
	var re *RemoteExecutionError
	return errors.As(err, &re) || errors.Is(err, ErrPollTimeout)
}
