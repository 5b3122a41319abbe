package config

type (
	DriverConfig struct {
		MongoDB  MongoDB  `mapstructure:"mongodb"`
		Redis    Redis    `mapstructure:"redis"`
		Logger   Logger   `mapstructure:"logger"`
		RabbitMQ RabbitMQ `mapstructure:"rabbitmq"`
		Minio    Minio    `mapstructure:"minio"`
	}
	MongoDB struct {
		Enabled  bool   `mapstructure:"enabled"`
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		DbName   string `mapstructure:"db_name"`
	}
	Redis struct {
		Enabled  bool   `mapstructure:"enabled"`
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	}
	Logger struct {
		Level               string `mapstructure:"level"`
		Output              string `mapstructure:"output"`
		OutputFileName      string `mapstructure:"output_filename"`
		OutputErrorFileName string `mapstructure:"output_error_filename"`
	}
	RabbitMQ struct {
		Enabled  bool   `mapstructure:"enabled"`
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		Vhost    string `mapstructure:"vhost"`
	}
	Minio struct {
		Enabled    bool   `mapstructure:"enabled"`
		Host       string `mapstructure:"host"`
		Port       string `mapstructure:"port"`
		Username   string `mapstructure:"username"`
		Password   string `mapstructure:"password"`
		UseSSL     bool   `mapstructure:"use_ssl"`
		Region     string `mapstructure:"region"`
		BucketName string `mapstructure:"bucket_name"`
	}
)

var driverDefaults = map[string]interface{}{
	"mongodb.enabled":              false,
	"mongodb.host":                 "localhost",
	"mongodb.port":                 "27017",
	"mongodb.username":             "",
	"mongodb.password":             "",
	"mongodb.db_name":              "ecare_automation",
	"redis.enabled":                false,
	"redis.host":                   "localhost",
	"redis.port":                   "6379",
	"redis.password":               "",
	"redis.db":                     0,
	"logger.level":                 "info",
	"logger.output":                "stdout",
	"logger.output_filename":       "logger.log",
	"logger.output_error_filename": "logger_error.log",
	"rabbitmq.enabled":             false,
	"rabbitmq.host":                "localhost",
	"rabbitmq.port":                "5672",
	"rabbitmq.username":            "guest",
	"rabbitmq.password":            "guest",
	"rabbitmq.vhost":               "/",
	"minio.enabled":                false,
	"minio.host":                   "localhost",
	"minio.port":                   "9000",
	"minio.username":               "minioadmin",
	"minio.password":               "minioadmin",
	"minio.use_ssl":                false,
	"minio.region":                 "",
	"minio.bucket_name":            "ecare-workflow-reports",
}
