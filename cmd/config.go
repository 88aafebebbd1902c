package cmd

type Config struct {
	HTTPPort              string
	PublicBaseURL         string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	RedisAddr             string
	RedisPassword         string
	KafkaHost             string
	KafkaOrderEventsTopic string
	JWTSecret             string
}
