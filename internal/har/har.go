package har

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
)

// ErrRootDecode is returned when the archive document cannot be decoded.
var ErrRootDecode = errors.New("decoding HAR document")

// Document is the top-level HAR 1.2 object. Entries are kept raw so that
// callers can decode them one at a time and report progress.
type Document struct {
	Log Log `json:"log"`
}

// Log is the "log" object of a HAR document.
type Log struct {
	Version string            `json:"version"`
	Creator *Creator          `json:"creator,omitempty"`
	Entries []json.RawMessage `json:"entries"`
}

// Creator identifies the tool that created the HAR.
type Creator struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Entry is a single request/response pair.
type Entry struct {
	StartedDateTime string   `json:"startedDateTime"`
	Time            Number   `json:"time"`
	Request         Request  `json:"request"`
	Response        Response `json:"response"`
	Timings         *Timings `json:"timings,omitempty"`
}

// Request is the request portion of an entry.
type Request struct {
	Method   string    `json:"method"`
	URL      string    `json:"url"`
	PostData *PostData `json:"postData,omitempty"`
	BodySize Number    `json:"bodySize"`
}

// Response is the response portion of an entry. Error carries the
// non-standard "_error" field Chromium writes for failed requests.
type Response struct {
	Status   Number   `json:"status"`
	BodySize Number   `json:"bodySize"`
	Content  *Content `json:"content,omitempty"`
	Error    string   `json:"_error"`
}

// PostData is the body of a request.
type PostData struct {
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

// Content is the body of a response.
type Content struct {
	Size     Number `json:"size"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

// Timings holds the phase breakdown of an entry, in milliseconds.
// A value of -1 means the phase does not apply.
type Timings struct {
	Blocked Number `json:"blocked"`
	DNS     Number `json:"dns"`
	Connect Number `json:"connect"`
	Send    Number `json:"send"`
	Wait    Number `json:"wait"`
	Receive Number `json:"receive"`
	SSL     Number `json:"ssl"`
}

// Number is a lenient JSON number: anything that is not a JSON number
// (strings, null, objects) decodes to zero instead of failing the record.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Number(f)
	return nil
}

// Float returns the value as a float64.
func (n Number) Float() float64 { return float64(n) }

// Int returns the value truncated to an int.
func (n Number) Int() int { return int(n) }

// Decode parses a whole HAR document. The entries are left undecoded.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRootDecode, err)
	}
	return &doc, nil
}

// DecodeEntry parses one raw entry record.
func DecodeEntry(raw []byte) (Entry, error) {
	var e Entry
	if err := sonic.Unmarshal(raw, &e); err != nil {
		return Entry{}, fmt.Errorf("decoding HAR entry: %w", err)
	}
	return e, nil
}
