package messaging

import (
	"ecare-automation/internal/app/config"
	"fmt"
	"log"
	"strconv"

	"github.com/rabbitmq/amqp091-go"
)

const connectionName = "ecare-workflow"

func rabbitMQURI(rabbitConfig config.RabbitMQ) (string, error) {
	port, err := strconv.Atoi(rabbitConfig.Port)
	if err != nil {
		return "", fmt.Errorf("invalid rabbitmq port %q: %w", rabbitConfig.Port, err)
	}
	uri := amqp091.URI{
		Scheme:   "amqp",
		Host:     rabbitConfig.Host,
		Port:     port,
		Username: rabbitConfig.Username,
		Password: rabbitConfig.Password,
		Vhost:    rabbitConfig.Vhost,
	}
	return uri.String(), nil
}

// NewRabbitMQ dials the broker used for run events. The connection is named
// so runs can be traced from the management UI.
func NewRabbitMQ(driverConfig *config.DriverConfig) (*amqp091.Connection, error) {
	uri, err := rabbitMQURI(driverConfig.RabbitMQ)
	if err != nil {
		return nil, err
	}

	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(connectionName)
	conn, err := amqp091.DialConfig(uri, amqp091.Config{Properties: properties})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq at %s:%s: %w", driverConfig.RabbitMQ.Host, driverConfig.RabbitMQ.Port, err)
	}
	log.Printf("Successfully connected to rabbitMQ vhost %s", driverConfig.RabbitMQ.Vhost)
	return conn, nil
}
