package queuestorage

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"
)

// GeoReplicationStatus is the state of the secondary location.
type GeoReplicationStatus string

const (
	GeoReplicationStatusLive        GeoReplicationStatus = "live"
	GeoReplicationStatusBootstrap   GeoReplicationStatus = "bootstrap"
	GeoReplicationStatusUnavailable GeoReplicationStatus = "unavailable"
)

// PossibleGeoReplicationStatusValues returns the known values for GeoReplicationStatus.
func PossibleGeoReplicationStatusValues() []GeoReplicationStatus {
	return []GeoReplicationStatus{
		GeoReplicationStatusLive,
		GeoReplicationStatusBootstrap,
		GeoReplicationStatusUnavailable,
	}
}

// TimeRFC1123 is a timestamp the queue service writes as
// "Mon, 02 Jan 2006 15:04:05 GMT".
type TimeRFC1123 struct {
	time.Time
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeRFC1123) MarshalText() ([]byte, error) {
	if t.IsZero() {
		return nil, nil
	}
	return []byte(t.UTC().Format(http.TimeFormat)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeRFC1123) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := http.ParseTime(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// Metadata holds user-defined name/value pairs. On the wire it is an
// element per name: <Metadata><owner>ops</owner></Metadata>.
type Metadata map[string]string

// MarshalXML implements xml.Marshaler.
func (m Metadata) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for name, value := range m {
		if err := e.EncodeElement(value, xml.StartElement{Name: xml.Name{Local: name}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// UnmarshalXML implements xml.Unmarshaler.
func (m *Metadata) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	out := Metadata{}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &el); err != nil {
				return err
			}
			out[el.Name.Local] = value
		case xml.EndElement:
			*m = out
			return nil
		}
	}
}

// StorageServiceProperties are the analytics and CORS settings of the account.
type StorageServiceProperties struct {
	XMLName       xml.Name   `xml:"StorageServiceProperties"`
	Logging       *Logging   `xml:"Logging,omitempty"`
	HourMetrics   *Metrics   `xml:"HourMetrics,omitempty"`
	MinuteMetrics *Metrics   `xml:"MinuteMetrics,omitempty"`
	Cors          []CorsRule `xml:"Cors>CorsRule,omitempty"`
}

// Logging configures Azure Analytics logging.
type Logging struct {
	Version         string          `xml:"Version"`
	Delete          bool            `xml:"Delete"`
	Read            bool            `xml:"Read"`
	Write           bool            `xml:"Write"`
	RetentionPolicy RetentionPolicy `xml:"RetentionPolicy"`
}

// Metrics configures hour or minute metrics.
type Metrics struct {
	Version         string           `xml:"Version,omitempty"`
	Enabled         bool             `xml:"Enabled"`
	IncludeAPIs     *bool            `xml:"IncludeAPIs,omitempty"`
	RetentionPolicy *RetentionPolicy `xml:"RetentionPolicy,omitempty"`
}

// RetentionPolicy says how long analytics data is kept.
type RetentionPolicy struct {
	Enabled bool   `xml:"Enabled"`
	Days    *int32 `xml:"Days,omitempty"`
}

// CorsRule allows browser requests from other origins.
type CorsRule struct {
	// AllowedOrigins is a comma separated list or "*"
	AllowedOrigins  string `xml:"AllowedOrigins"`
	AllowedMethods  string `xml:"AllowedMethods"`
	AllowedHeaders  string `xml:"AllowedHeaders"`
	ExposedHeaders  string `xml:"ExposedHeaders"`
	MaxAgeInSeconds int32  `xml:"MaxAgeInSeconds"`
}

// StorageServiceStats reports replication to the secondary location.
type StorageServiceStats struct {
	XMLName        xml.Name        `xml:"StorageServiceStats"`
	GeoReplication *GeoReplication `xml:"GeoReplication,omitempty"`
}

// GeoReplication is the replication state of the account.
type GeoReplication struct {
	Status GeoReplicationStatus `xml:"Status"`

	// LastSyncTime is the point before which every write is readable
	// from the secondary
	LastSyncTime TimeRFC1123 `xml:"LastSyncTime"`
}

// ListQueuesSegmentResponse is one page of queues.
type ListQueuesSegmentResponse struct {
	XMLName         xml.Name    `xml:"EnumerationResults"`
	ServiceEndpoint string      `xml:"ServiceEndpoint,attr"`
	Prefix          string      `xml:"Prefix"`
	Marker          string      `xml:"Marker,omitempty"`
	MaxResults      int32       `xml:"MaxResults"`
	Queues          []QueueItem `xml:"Queues>Queue"`
	NextMarker      string      `xml:"NextMarker"`
}

// QueueItem is one queue of a listing.
type QueueItem struct {
	Name     string   `xml:"Name"`
	Metadata Metadata `xml:"Metadata,omitempty"`
}

// SignedIdentifier is a stored access policy.
type SignedIdentifier struct {
	ID           string       `xml:"Id"`
	AccessPolicy AccessPolicy `xml:"AccessPolicy"`
}

// AccessPolicy bounds a shared access signature.
type AccessPolicy struct {
	Start  time.Time `xml:"Start"`
	Expiry time.Time `xml:"Expiry"`

	// Permission is a combination of r, a, u and p
	Permission string `xml:"Permission"`
}

type signedIdentifiers struct {
	XMLName xml.Name           `xml:"SignedIdentifiers"`
	Items   []SignedIdentifier `xml:"SignedIdentifier"`
}

// QueueMessage is the body of Enqueue and Update.
type QueueMessage struct {
	XMLName     xml.Name `xml:"QueueMessage"`
	MessageText string   `xml:"MessageText"`
}

// DequeuedMessage is a message taken from a queue. It stays invisible
// until TimeNextVisible and is deleted with its PopReceipt.
type DequeuedMessage struct {
	MessageID       string      `xml:"MessageId"`
	InsertionTime   TimeRFC1123 `xml:"InsertionTime"`
	ExpirationTime  TimeRFC1123 `xml:"ExpirationTime"`
	PopReceipt      string      `xml:"PopReceipt"`
	TimeNextVisible TimeRFC1123 `xml:"TimeNextVisible"`
	DequeueCount    int64       `xml:"DequeueCount"`
	MessageText     string      `xml:"MessageText"`
}

// PeekedMessage is a message read without changing its visibility.
type PeekedMessage struct {
	MessageID      string      `xml:"MessageId"`
	InsertionTime  TimeRFC1123 `xml:"InsertionTime"`
	ExpirationTime TimeRFC1123 `xml:"ExpirationTime"`
	DequeueCount   int64       `xml:"DequeueCount"`
	MessageText    string      `xml:"MessageText"`
}

// EnqueuedMessage describes a message just added to a queue.
type EnqueuedMessage struct {
	MessageID       string      `xml:"MessageId"`
	InsertionTime   TimeRFC1123 `xml:"InsertionTime"`
	ExpirationTime  TimeRFC1123 `xml:"ExpirationTime"`
	PopReceipt      string      `xml:"PopReceipt"`
	TimeNextVisible TimeRFC1123 `xml:"TimeNextVisible"`
}

type messagesList[T any] struct {
	XMLName xml.Name `xml:"QueueMessagesList"`
	Items   []T      `xml:"QueueMessage"`
}

// QueueProperties are read from the response headers of GetProperties.
type QueueProperties struct {
	Metadata                 map[string]string
	ApproximateMessagesCount int64
}

// UpdatedMessage carries the new pop receipt of an updated message.
type UpdatedMessage struct {
	PopReceipt      string
	TimeNextVisible time.Time
}
