// Package nwwsio decodes the NWWS-OI "x" stanza extension that wraps
// every product delivered over the NOAA Weather Wire Service's XMPP
// feed, and identifies which of those products are aviation bulletins
// this module's parser can decode.
package nwwsio

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"gosrc.io/xmpp/stanza"
)

// MessageExtension is the "nwws-oi" namespaced <x> element NWWS-OI
// attaches to every groupchat message, carrying the raw bulletin text
// alongside its WMO/AWIPS routing identifiers.
//
// Example:
//
//	<x xmlns='nwws-oi' cccc='KARX' ttaaii='SAUS43' issue='2013-05-25T02:20:34Z' awipsid='METARX' id='10313.6'>
//	KARX 250220Z AUTO 00000KT 10SM CLR 18/12 A3002
//	</x>
type MessageExtension struct {
	stanza.MsgExtension
	XMLName xml.Name `xml:"nwws-oi x"`
	Text    string   `xml:",chardata"`
	// Cccc is the four-character issuing center.
	Cccc string `xml:"cccc,attr"`
	// Ttaaii is the six-character WMO product ID.
	Ttaaii string `xml:"ttaaii,attr"`
	// Issue is an ISO_8601 UTC datetime.
	Issue string `xml:"issue,attr"`
	// AwipsID is the six-character AWIPS ID (AFOS PIL).
	AwipsID string `xml:"awipsid,attr"`
	// ID packs the ingest process ID and a per-process sequence number,
	// "pid.sequence", letting a subscriber detect gaps in the feed.
	ID string `xml:"id,attr"`
}

// SequenceID splits ID into its ingest process ID and sequence number.
func (m *MessageExtension) SequenceID() (processID string, sequence int, err error) {
	parts := strings.Split(m.ID, ".")
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("malformed NWWS-OI id %q", m.ID)
	}
	sequence, err = strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, fmt.Errorf("malformed NWWS-OI sequence in id %q: %w", m.ID, err)
	}
	return parts[0], sequence, nil
}

// aviationAwipsPrefixes lists the AWIPS product categories this feed
// cares about: routine and special aviation weather reports and
// terminal forecasts. Every other NWWS-OI product (warnings, climate
// summaries, hydrology) is routed past without decoding.
var aviationAwipsPrefixes = []string{"MET", "SAO", "TAF"}

// IsAviationBulletin reports whether this message's AWIPS ID names an
// aviation product this parser can decode.
func (m *MessageExtension) IsAviationBulletin() bool {
	id := strings.TrimSpace(m.AwipsID)
	for _, prefix := range aviationAwipsPrefixes {
		if strings.HasPrefix(id, prefix) {
			return true
		}
	}
	return false
}

func init() {
	stanza.TypeRegistry.MapExtension(stanza.PKTMessage, xml.Name{Space: "nwws-oi", Local: "x"}, MessageExtension{})
}
