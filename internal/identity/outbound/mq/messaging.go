package mq

import (
	"context"
	"encoding/json"

	"github.com/shandysiswandi/otpgate/internal/identity/usecase"
	"github.com/shandysiswandi/otpgate/internal/pkg/instrument"
	"github.com/shandysiswandi/otpgate/internal/pkg/messaging"
	"github.com/shandysiswandi/otpgate/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Publisher
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Publisher, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishOTPDispatched(ctx context.Context, msg usecase.OTPDispatchedEvent) error {
	return m.publish(ctx, "PublishOTPDispatched", event.OTPDispatchedDestination, msg.Email, event.OTPDispatchedMessage{
		Email:       msg.Email,
		AccountType: msg.AccountType.String(),
		ExpiresAt:   msg.ExpiresAt.Unix(),
	})
}

func (m *Messaging) PublishOTPSpamLocked(ctx context.Context, msg usecase.OTPSpamLockedEvent) error {
	return m.publish(ctx, "PublishOTPSpamLocked", event.OTPSpamLockedDestination, msg.Email, event.OTPSpamLockedMessage{
		Email:       msg.Email,
		LockedUntil: msg.LockedUntil.Unix(),
	})
}

func (m *Messaging) publish(ctx context.Context, name, destination, key string, payload any) error {
	ctx, span := m.ins.Tracer("identity.outbound.mq").Start(ctx, name)
	defer span.End()

	body, err := json.Marshal(payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, destination, messaging.OutgoingMessage{
		Body:        body,
		Key:         []byte(key),
		OrderingKey: key,
		Headers:     []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
