package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mdshopp/storefront/internal/repo"
	"github.com/mdshopp/storefront/pkg/events"
	"github.com/mdshopp/storefront/pkg/logging"
)

var (
	ErrValidation         = errors.New("validation")          // 400
	ErrInvalidCredentials = errors.New("invalid credentials") // 401
	ErrNotFound           = errors.New("not found")           // 404
	ErrConflict           = errors.New("conflict")            // 409
	ErrCorruptStorage     = repo.ErrCorrupt                   // 500
)

// Reason strips the sentinel prefix from errors built as
// fmt.Errorf("%w: reason", sentinel) so the reason can be shown to a user.
func Reason(err error) string {
	msg := err.Error()
	for _, s := range []error{ErrValidation, ErrNotFound, ErrConflict} {
		if errors.Is(err, s) {
			return strings.TrimPrefix(msg, s.Error()+": ")
		}
	}
	return msg
}

func notFound(err error, what string) error {
	if errors.Is(err, repo.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return err
}

// publish is fire-and-log: a broker outage never fails the shop operation.
func publish(ctx context.Context, pub events.Publisher, topic, key string, event map[string]any) {
	if pub == nil {
		return
	}
	if err := pub.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Warn("publish_event_failed", "topic", topic, "type", event["type"], "error", err)
	}
}
