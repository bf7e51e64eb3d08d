package cmd

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	GeocoderBaseURL     string
	GeocoderAPIKey      string
	GeocoderTimeoutMS   string
	CourierSpeedKmh     string
	FallbackPrepMinutes string
	JWTSecret           string
}
