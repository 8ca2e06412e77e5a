// Command nwwsfeed subscribes to the NWWS-OI XMPP product-distribution
// feed, decodes the METAR/TAF bulletins it carries, and logs the result.
// It never blocks the feed on a malformed bulletin: decode failures are
// logged and the feed keeps running.
package main

import (
	"encoding/xml"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-xmlfmt/xmlfmt"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gosrc.io/xmpp"
	"gosrc.io/xmpp/stanza"

	"github.com/skybound-wx/metar"
	"github.com/skybound-wx/metar/nwwsio"
)

const (
	nwwsCollegePark = "nwws-oi-cprk.weather.gov"
	nwwsBoulder     = "nwws-oi-bldr.weather.gov"
	nwwsPort        = "5222"
	nwwsDomain      = "nwws-oi.weather.gov"
	nwwsResource    = "nwws"
	nwwsMUCDomain   = "conference.nwws-oi.weather.gov"
)

func main() {
	_ = godotenv.Load()

	verbose := os.Getenv("LOG_LEVEL") == "debug"
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	username := os.Getenv("NWWSIO_USERNAME")
	password := os.Getenv("NWWSIO_PASSWORD")
	if username == "" || password == "" {
		log.Fatal().Msg("missing NWWSIO_USERNAME or NWWSIO_PASSWORD")
	}

	jid := &stanza.Jid{Node: "nwws", Domain: nwwsMUCDomain, Resource: fmt.Sprintf("%s-feed", username)}

	router := xmpp.NewRouter()
	router.HandleFunc("message", func(s xmpp.Sender, p stanza.Packet) {
		handleMessage(p, verbose)
	})

	config, err := connectConfig(username, password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to reach an NWWS-OI server")
	}

	client, err := xmpp.NewClient(config, router, func(err error) {
		log.Error().Err(err).Msg("xmpp error")
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create xmpp client")
	}

	manager := xmpp.NewStreamManager(client, func(s xmpp.Sender) {
		log.Info().Msg("connected to NWWS-OI, joining product distribution room")
		if err := joinRoom(s, jid); err != nil {
			log.Fatal().Err(err).Msg("failed to join NWWS-OI room")
		}
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info().Msg("shutting down")
		manager.Stop()
		os.Exit(0)
	}()

	if err := manager.Run(); err != nil {
		log.Fatal().Err(err).Msg("feed terminated")
	}
}

// connectConfig probes the College Park site first, falling back to
// Boulder, returning whichever config successfully connected.
func connectConfig(username, password string) (*xmpp.Config, error) {
	for _, host := range []string{nwwsCollegePark, nwwsBoulder} {
		config := &xmpp.Config{
			Jid:            fmt.Sprintf("%s@%s/%s", username, nwwsDomain, nwwsResource),
			Credential:     xmpp.Password(password),
			ConnectTimeout: 5,
			TransportConfiguration: xmpp.TransportConfiguration{
				Address: fmt.Sprintf("%s:%s", host, nwwsPort),
				Domain:  nwwsDomain,
			},
		}
		probe, err := xmpp.NewClient(config, xmpp.NewRouter(), func(error) {})
		if err != nil {
			continue
		}
		if err := probe.Connect(); err != nil {
			log.Warn().Str("site", host).Err(err).Msg("failed to connect, trying next site")
			continue
		}
		_ = probe.Disconnect()
		return config, nil
	}
	return nil, fmt.Errorf("no NWWS-OI site reachable")
}

func joinRoom(s xmpp.Sender, jid *stanza.Jid) error {
	return s.Send(stanza.Presence{
		Attrs: stanza.Attrs{To: jid.Full()},
		Extensions: []stanza.PresExtension{
			stanza.MucPresence{History: stanza.History{MaxStanzas: stanza.NewNullableInt(0)}},
		},
	})
}

func handleMessage(p stanza.Packet, verbose bool) {
	msg, ok := p.(stanza.Message)
	if !ok {
		return
	}

	var ext nwwsio.MessageExtension
	if !msg.Get(&ext) {
		return
	}

	if verbose {
		raw, err := xml.Marshal(msg)
		if err == nil {
			log.Debug().Msg(xmlfmt.FormatXML(string(raw), "", "  "))
		}
	}

	if !ext.IsAviationBulletin() {
		return
	}

	decodeBulletin(ext.Cccc, ext.Text)
}

// decodeBulletin splits a product's text into lines and hands each line
// that begins with METAR, SPECI or TAF, whole, to the matching decoder; a
// single product body may carry more than one bulletin. Lines without one
// of those leading words are skipped.
func decodeBulletin(station, text string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, "TAF"):
			taf, err := metar.ParseTAF(line)
			if err != nil {
				log.Error().Err(err).Str("station", station).Str("line", line).Msg("failed to decode TAF")
				continue
			}
			log.Info().Str("station", taf.Identifier).Time("valid_from", taf.ValidFrom).Msg("decoded TAF")
		case strings.HasPrefix(upper, "METAR"), strings.HasPrefix(upper, "SPECI"):
			report, err := metar.ParseMETAR(line)
			if err != nil {
				log.Error().Err(err).Str("station", station).Str("line", line).Msg("failed to decode METAR")
				continue
			}
			log.Info().Str("station", report.Identifier).Msg("decoded METAR")
		}
	}
}
