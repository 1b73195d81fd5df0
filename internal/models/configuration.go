package models

type Configuration struct {
	App       AppConfiguration       `mapstructure:"app"       validate:"required"`
	Directory DirectoryConfiguration `mapstructure:"directory" validate:"required"`
	Records   RecordsConfiguration   `mapstructure:"records"   validate:"required"`
	SMS       SMSConfiguration       `mapstructure:"sms"       validate:"required"`
	VPN       VPNConfiguration       `mapstructure:"vpn"       validate:"required"`
	Cache     *CacheConfiguration    `mapstructure:"cache"`
	Sessions  SessionsConfiguration  `mapstructure:"sessions"`
	Audit     AuditConfiguration     `mapstructure:"audit"`
	Notifier  NotifierConfiguration  `mapstructure:"notifier"`
	Tracing   TracingConfiguration   `mapstructure:"tracing"`
}

type AppConfiguration struct {
	Port           int      `mapstructure:"port"            validate:"required"`
	LogLevel       string   `mapstructure:"log_level"`
	JWTSecret      string   `mapstructure:"jwt_secret"      validate:"required"`
	OperatorToken  string   `mapstructure:"operator_token"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DirectoryConfiguration holds the service-account credentials for the
// enterprise directory. The bind DN is derived from the FQDN's first label
// (DOMAIN\user form).
type DirectoryConfiguration struct {
	FQDN         string `mapstructure:"fqdn"          validate:"required"`
	BindUser     string `mapstructure:"bind_user"     validate:"required"`
	BindPassword string `mapstructure:"bind_password" validate:"required"`
}

type RecordsConfiguration struct {
	URL    string `mapstructure:"url"     validate:"required,url"`
	APIKey string `mapstructure:"api_key" validate:"required"`
}

type SMSConfiguration struct {
	URL      string `mapstructure:"url"      validate:"required,url"`
	Username string `mapstructure:"username" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
}

type VPNConfiguration struct {
	URL    string `mapstructure:"url"     validate:"required,url"`
	APIKey string `mapstructure:"api_key" validate:"required"`
}

type CacheConfiguration struct {
	Type  string                   `mapstructure:"type"  validate:"omitempty,oneof=redis valkey"`
	Redis *RedisCacheConfiguration `mapstructure:"redis"`
}

type RedisCacheConfiguration struct {
	Hosts         []string `mapstructure:"hosts" validate:"required"`
	Password      string   `mapstructure:"password"`
	TLSEnabled    bool     `mapstructure:"tls_enabled"`
	TLSServerName string   `mapstructure:"tls_server_name"`
}

type SessionsConfiguration struct {
	Type string `mapstructure:"type" validate:"required,oneof=memory cache"`
}

type AuditConfiguration struct {
	Type       string                        `mapstructure:"type" validate:"required,oneof=filesystem"`
	Filesystem *FilesystemAuditConfiguration `mapstructure:"filesystem"`
}

type FilesystemAuditConfiguration struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

type NotifierConfiguration struct {
	Type       string                           `mapstructure:"type" validate:"omitempty,oneof=smtp filesystem"`
	Recipient  string                           `mapstructure:"recipient"`
	SMTP       *SMTPNotifierConfiguration       `mapstructure:"smtp"`
	Filesystem *FilesystemNotifierConfiguration `mapstructure:"filesystem"`
}

type SMTPNotifierConfiguration struct {
	Host     string `mapstructure:"host"   validate:"required"`
	Port     int    `mapstructure:"port"   validate:"required"`
	Sender   string `mapstructure:"sender" validate:"required,email"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type FilesystemNotifierConfiguration struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

type TracingConfiguration struct {
	Endpoint string `mapstructure:"endpoint"`
}
