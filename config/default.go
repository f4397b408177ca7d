package config

// DefaultConfigYAML is the built-in configuration. Every key can be
// overridden by an external config file or a CASHTRACK_* environment
// variable.
var DefaultConfigYAML = []byte(`server:
  port: ":5005"
  mode: "debug"

database:
  host: "localhost"
  port: "3306"
  username: "cashtrack"
  password: "cashtrack"
  dbname: "cashtrack"
  charset: "utf8mb4"

jwt:
  secret: "change-me-in-production"
  expire_hours: 24

email:
  enabled: false
  host: "smtp.example.com"
  port: 587
  username: ""
  password: ""
  from: "CashTrack"

rate_limit:
  max_attempts: 10
  window_minutes: 15
`)
