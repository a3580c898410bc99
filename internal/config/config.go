package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"prod"`
	HTTPServer `yaml:"http_server"`
	DBUser     string `yaml:"db_user" env:"DB_USER" env-required:"true"`
	DBPassword string `yaml:"db_password" env:"DB_PASSWORD" env-required:"false"`
	DBHost     string `yaml:"db_host" env:"DB_HOST" env-default:"localhost"`
	DBPort     int    `yaml:"db_port" env:"DB_PORT" env-default:"3306"`
	DBName     string `yaml:"db_name" env:"DB_NAME" env-required:"true"`
	ParseTime  bool   `yaml:"parse_time" env-default:"true"`

	AdminLogin string `yaml:"admin_login"`
	AdminPass  string `yaml:"admin_pass"`

	Plan PlanDefaults `yaml:"plan"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout"  env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout"  env-default:"60s"`
}

// PlanDefaults holds the scheduling constants that used to live as scattered
// literals. Two call sites historically disagreed on the per-person rate
// (5 vs 14/3 pcs/hour); 5 is the canonical value here.
type PlanDefaults struct {
	PiecesPerPersonHour  float64 `yaml:"pieces_per_person_hour" env-default:"5"`
	DefaultRosterSize    int     `yaml:"default_roster_size" env-default:"3"`
	ShiftCapacitySeconds float64 `yaml:"shift_capacity_seconds" env-default:"14400"`
	DayBound             int     `yaml:"day_bound" env-default:"30"`
	MonthLength          int     `yaml:"month_length" env-default:"30"`
	OffDay               int     `yaml:"off_day" env-default:"0"` // weekday excluded from grouped views, 0 = Sunday
	MaxManpowerPerShift  int     `yaml:"max_manpower_per_shift" env-default:"6"`
}

func MustConfig() *Config {
	var cfg Config
	a := "./config/local.yaml"

	if err := cleanenv.ReadConfig(a, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
