package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-age/internal/config"
)

// ErrNoBirthday is returned when no card in the stream carries a full birth date.
var ErrNoBirthday = errors.New(config.ErrNoBirthday)

// maxConsecutiveDecodeErrors stops decoding a stream that keeps failing (e.g. a broken reader).
const maxConsecutiveDecodeErrors = 16

// Importer reads a birth date from a vCard stored locally or behind an http(s) URL.
type Importer struct {
	Fetcher VCardFetcher
}

// NewImporter creates an Importer downloading remote cards with fetcher.
func NewImporter(fetcher VCardFetcher) *Importer {
	return &Importer{Fetcher: fetcher}
}

// Import opens location and returns the first contact with a usable birth date.
func (im *Importer) Import(ctx context.Context, location string) (Contact, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompImporter,
		config.LogKeyLocation, redact(location),
	)
	log.InfoContext(ctx, config.MsgImportStarted)

	rc, err := im.open(ctx, location)
	if err != nil {
		if ctx.Err() != nil {
			return Contact{}, ctx.Err()
		}
		return Contact{}, fmt.Errorf("%s: %w", config.ErrImportFailed, err)
	}
	defer func() { _ = rc.Close() }()

	c, err := ReadContact(ctx, rc)
	if err != nil {
		return Contact{}, err
	}

	log.Info(config.MsgImportDone,
		config.LogKeyName, c.Name,
		config.LogKeyDuration, time.Since(start).Milliseconds())
	return c, nil
}

// open selects the data source from the shape of location.
func (im *Importer) open(ctx context.Context, location string) (io.ReadCloser, error) {
	switch {
	case location == "":
		return nil, errors.New(config.ErrPathEmpty)
	case isRemote(location):
		if im.Fetcher == nil {
			return nil, errors.New(config.ErrFetcherMissing)
		}
		return im.Fetcher.Fetch(ctx, location)
	default:
		return os.Open(location)
	}
}

// ReadContact decodes vCards from r and returns the first one with a full birth date.
// Malformed cards and cards without a birth year are skipped.
func ReadContact(ctx context.Context, r io.Reader) (Contact, error) {
	decoder := vcard.NewDecoder(r)
	seen, failures := 0, 0

	for {
		if err := ctx.Err(); err != nil {
			return Contact{}, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			failures++
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompImporter,
				config.LogKeyError, err)
			if failures >= maxConsecutiveDecodeErrors {
				return Contact{}, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
			}
			continue
		}
		failures = 0
		seen++

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birth, err := parseBirthDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompImporter,
				config.LogKeyValue, bday.Value)
			continue
		}

		return Contact{Name: contactName(card), BirthDate: birth}, nil
	}

	slog.Debug(config.ErrNoBirthday,
		config.LogKeyComponent, config.CompImporter,
		config.LogKeyCards, seen)
	return Contact{}, ErrNoBirthday
}

// contactName applies FN > N > fallback.
func contactName(card vcard.Card) string {
	if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
		return fn.Value
	}
	if n := card.Get(config.VCardN); n != nil && n.Value != "" {
		return n.Value
	}
	return config.FallbackName
}

// parseBirthDate accepts the vCard date forms that carry a year.
// Truncated forms (--MM-DD) cannot produce an age and are rejected.
func parseBirthDate(value string) (CalendarDate, error) {
	formats := []string{
		config.DateFormatISO,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}

	for _, f := range formats {
		if t, err := time.Parse(f, value); err == nil {
			return DateOf(t), nil
		}
	}
	return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, config.SchemeHTTP+"://") ||
		strings.HasPrefix(location, config.SchemeHTTPS+"://")
}

// redact keeps the scheme and host of a URL so credentials never reach the logs.
func redact(location string) string {
	if !isRemote(location) {
		return location
	}
	u, err := url.Parse(location)
	if err != nil {
		return config.ErrInvalidURL
	}
	return u.Scheme + "://" + u.Host
}
