package timeline

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sadopc/hartl/internal/har"
)

// ErrMalformedTimestamp is returned when startedDateTime matches neither
// accepted form.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

const (
	layoutUTC    = "2006-01-02T15:04:05Z"
	layoutOffset = "2006-01-02T15:04:05-07:00"
)

// Timings is the phase breakdown of an entry, in milliseconds.
type Timings struct {
	Blocked float64
	DNS     float64
	Connect float64
	Send    float64
	Wait    float64
	Receive float64
	TLS     float64
}

// Entry is one request/response lifecycle. It is not modified after
// NewEntry returns.
type Entry struct {
	StartedAt time.Time
	EndedAt   time.Time
	Duration  time.Duration
	// Elapsed is the total time of the entry in milliseconds.
	Elapsed float64
	Timings Timings

	URL         string
	Method      string
	RequestBody Content

	Status       int
	BodySize     int
	Error        string
	ResponseBody Content
}

// NewEntry builds an Entry from a decoded HAR record. Only a malformed
// timestamp fails; body decoding problems end up in the Content values.
func NewEntry(r har.Entry) (Entry, error) {
	started, err := ParseTimestamp(r.StartedDateTime)
	if err != nil {
		return Entry{}, err
	}

	elapsed := math.Max(r.Time.Float(), 0)
	ended := started.Add(time.Duration(elapsed * float64(time.Millisecond)))

	e := Entry{
		StartedAt: started,
		EndedAt:   ended,
		Duration:  ended.Sub(started),
		Elapsed:   elapsed,

		URL:         r.Request.URL,
		Method:      r.Request.Method,
		RequestBody: requestContent(r.Request.PostData),

		Status:       r.Response.Status.Int(),
		BodySize:     r.Response.BodySize.Int(),
		Error:        r.Response.Error,
		ResponseBody: responseContent(r.Response),
	}

	if elapsed != 0 && r.Timings != nil {
		t := r.Timings
		e.Timings = Timings{
			Blocked: phase(t.Blocked),
			DNS:     phase(t.DNS),
			Connect: phase(t.Connect),
			Send:    phase(t.Send),
			Wait:    phase(t.Wait),
			Receive: phase(t.Receive),
			TLS:     phase(t.SSL),
		}
	}

	return e, nil
}

// phase maps HAR's -1 ("not applicable") and other negatives to zero.
func phase(n har.Number) float64 {
	return math.Max(n.Float(), 0)
}

// ParseTimestamp parses an ISO-8601 timestamp, trying the Z-suffixed form
// first and the explicit offset form second. The result has millisecond
// precision.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(layoutUTC, s)
	if err != nil {
		t, err = time.Parse(layoutOffset, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
		}
	}
	return t.Truncate(time.Millisecond), nil
}

// StatusClass buckets a status code by its first digit; zero means the
// status was missing.
func StatusClass(status int) int {
	return status / 100
}
