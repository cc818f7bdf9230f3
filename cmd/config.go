package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	// FuelRate is the per-kilometre fuel cost used by order completion.
	FuelRate float64
}
