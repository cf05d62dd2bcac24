package paddle

// AllowedWebhookIPsProduction lists the IP addresses Paddle calls webhook
// endpoints from in the live environment.
var AllowedWebhookIPsProduction = []string{
	"34.232.58.13",
	"34.195.105.136",
	"34.237.3.244",
	"35.155.119.135",
	"52.11.166.252",
	"34.212.5.7",
}

// AllowedWebhookIPsSandbox lists the IP addresses Paddle calls webhook
// endpoints from in the sandbox environment.
var AllowedWebhookIPsSandbox = []string{
	"34.194.127.46",
	"54.234.237.108",
	"3.208.120.145",
	"44.226.236.210",
	"44.241.183.62",
	"100.20.172.113",
}

// AllowedWebhookIP reports whether ip is a known Paddle webhook source in
// either environment. Use it to corroborate webhook origin alongside
// signature verification, never instead of it.
func AllowedWebhookIP(ip string) bool {
	for _, allowed := range AllowedWebhookIPsProduction {
		if ip == allowed {
			return true
		}
	}
	for _, allowed := range AllowedWebhookIPsSandbox {
		if ip == allowed {
			return true
		}
	}
	return false
}
