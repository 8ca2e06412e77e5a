// Package publish broadcasts decoded weather bulletins over NATS, one
// JSON message per subject per station, mirroring the subject-per-entity
// layout the ACARS ingest pipeline uses for its own message stream.
package publish

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// Publisher publishes decoded reports to a NATS server.
type Publisher struct {
	conn *nats.Conn
	// SubjectPrefix namespaces the subjects this Publisher writes to,
	// e.g. "metar" produces "metar.KJFK".
	SubjectPrefix string
}

// Connect dials the given NATS URL and returns a Publisher.
func Connect(url, subjectPrefix string) (*Publisher, error) {
	conn, err := nats.Connect(url, nats.Name("skybound-metar"))
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return &Publisher{conn: conn, SubjectPrefix: subjectPrefix}, nil
}

// Close drains and closes the underlying connection.
func (p *Publisher) Close() {
	_ = p.conn.Drain()
}

// Report is the JSON envelope published for every decoded bulletin,
// tagging the payload with the station and bulletin kind so subscribers
// filtering on subject alone still get that context in the body.
type Report struct {
	Station string `json:"station"`
	Kind    string `json:"kind"` // "metar" or "taf"
	Raw     string `json:"raw"`
	Decoded any    `json:"decoded"`
}

// PublishMETAR publishes a decoded METAR report on "<prefix>.<station>".
func (p *Publisher) PublishMETAR(station, raw string, decoded any) error {
	return p.publish(station, Report{Station: station, Kind: "metar", Raw: raw, Decoded: decoded})
}

// PublishTAF publishes a decoded TAF report on "<prefix>.<station>".
func (p *Publisher) PublishTAF(station, raw string, decoded any) error {
	return p.publish(station, Report{Station: station, Kind: "taf", Raw: raw, Decoded: decoded})
}

func (p *Publisher) publish(station string, r Report) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	subject := fmt.Sprintf("%s.%s", p.SubjectPrefix, station)
	if err := p.conn.Publish(subject, body); err != nil {
		return fmt.Errorf("publish to %s: %w", subject, err)
	}
	return nil
}
