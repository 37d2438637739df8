package config

type InternalConfig struct {
	App       App
	MentorHub MentorHub
	JWT       JWT
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	Timezone                  string
	EndpointPrefix            string
	MaxRequests               int
	ShutdownTimeoutInSeconds  int
	BookingRateLimitPerMinute int
	BookingBlockTimeInMinutes int
	AvailabilityCacheTTLInSec int
}

type MentorHub struct {
	BaseUrl                 string
	RequestTimeoutInSeconds int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}
