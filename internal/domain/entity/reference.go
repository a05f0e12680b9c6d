package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// The external reference travels through the payment provider and comes back
// on webhooks and return redirects. It is the only link between a payment and
// the buyer, since preferences are never persisted. Format: "<unix-ms>-<email>".

// ErrMalformedReference is returned when an external reference cannot be parsed.
var ErrMalformedReference = errors.New("malformed external reference")

// NewExternalReference builds the reference embedded in a provider preference.
func NewExternalReference(ts time.Time, email string) string {
	return strconv.FormatInt(ts.UnixMilli(), 10) + "-" + email
}

// ParseExternalReference recovers the buyer email from an external reference.
// The email is everything after the first hyphen, so addresses containing
// hyphens survive the round trip.
func ParseExternalReference(ref string) (ts time.Time, email string, err error) {
	head, tail, found := strings.Cut(ref, "-")
	if !found || tail == "" {
		return time.Time{}, "", errors.Wrapf(ErrMalformedReference, "reference %q", ref)
	}

	millis, parseErr := strconv.ParseInt(head, 10, 64)
	if parseErr != nil {
		return time.Time{}, "", errors.Wrapf(ErrMalformedReference, "reference %q has non-numeric timestamp", ref)
	}

	if !strings.Contains(tail, "@") {
		return time.Time{}, "", errors.Wrapf(ErrMalformedReference, "reference %q carries no email", ref)
	}

	return time.UnixMilli(millis), tail, nil
}
