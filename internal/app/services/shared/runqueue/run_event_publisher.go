package runqueue

import (
	"context"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/app/models"
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/exceptions"
	"ecare-automation/internal/pkg/utils"
	"errors"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// confirmingChannel is the part of *amqp.Channel the publisher uses.
type confirmingChannel interface {
	PublishWithDeferredConfirmWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (*amqp.DeferredConfirmation, error)
}

// confirmation is satisfied by *amqp.DeferredConfirmation.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

type publisher struct {
	publish func(ctx context.Context, msg amqp.Publishing) (confirmation, error)
	log     *zap.Logger
}

func newPublisher(ch confirmingChannel, log *zap.Logger) *publisher {
	return &publisher{
		publish: func(ctx context.Context, msg amqp.Publishing) (confirmation, error) {
			deferred, err := ch.PublishWithDeferredConfirmWithContext(ctx, "", constvars.RunEventsQueueName, false, false, msg)
			if err != nil {
				return nil, err
			}
			if deferred == nil {
				return nil, errors.New(constvars.ErrDevRabbitMQConfirmModeOff)
			}
			return deferred, nil
		},
		log: log,
	}
}

// NewRunEventPublisher declares the durable run events queue and enables
// publisher confirms on a dedicated channel.
func NewRunEventPublisher(conn *amqp.Connection, log *zap.Logger) (contracts.RunEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		constvars.RunEventsQueueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return newPublisher(ch, log), nil
}

// PublishRunCompleted publishes a persistent run event and waits for the
// broker to confirm that message. A confirmation arriving after ctx is done
// is discarded with its own deferred handle.
func (p *publisher) PublishRunCompleted(ctx context.Context, run *models.Run) error {
	requestID := utils.GetRequestID(ctx)
	p.log.Info("runEventPublisher.PublishRunCompleted called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, run.ID),
		zap.String(constvars.LoggingQueueKey, constvars.RunEventsQueueName),
	)

	body, err := json.Marshal(run.Event())
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp.Persistent,
		MessageId:     run.ID,
		CorrelationId: run.RequestID,
		Type:          models.RunCompletedEventType,
	}

	confirm, err := p.publish(ctx, msg)
	if err != nil {
		p.log.Error("runEventPublisher.PublishRunCompleted error publishing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, constvars.RunEventsQueueName)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, constvars.RunEventsQueueName)
	}
	if !acked {
		return exceptions.ErrRabbitMQPublishMessage(errors.New(constvars.ErrDevRabbitMQMessageNotAcked), constvars.RunEventsQueueName)
	}

	p.log.Info("runEventPublisher.PublishRunCompleted succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, run.ID),
	)
	return nil
}
