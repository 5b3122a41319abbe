package messaging

import (
	"ecare-automation/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRabbitMQURI(t *testing.T) {
	t.Run("Escapes Credentials", func(t *testing.T) {
		uri, err := rabbitMQURI(config.RabbitMQ{Host: "broker", Port: "5672", Username: "ops", Password: "p@ss/word", Vhost: "workflow"})

		require.NoError(t, err)
		assert.Contains(t, uri, "broker:5672")
		assert.NotContains(t, uri, "p@ss/word")
	})

	t.Run("Rejects Bad Port", func(t *testing.T) {
		_, err := rabbitMQURI(config.RabbitMQ{Host: "broker", Port: "amqp"})

		assert.ErrorContains(t, err, "invalid rabbitmq port")
	})
}
